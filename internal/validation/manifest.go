package validation

import (
	"bufio"
	"bytes"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/zerospeech/zrc2020/internal/assets"
)

// Manifest kinds bundled for each language.
const (
	KindRequired  = "required"
	KindBitrate   = "bitrate"
	KindEmbedding = "embedding"
)

// Languages are the two fixed benchmark languages of the 2019 track.
var Languages = []string{"english", "surprise"}

// Manifest is the reference list of files expected for one (language, kind)
// pair. Entries are paths relative to the submission root, taken from the
// first whitespace-delimited token of each manifest line.
type Manifest struct {
	Language string
	Kind     string
	Entries  []string
}

// Basenames returns the set of entry basenames, the names expected inside a
// single artifact directory.
func (m *Manifest) Basenames() map[string]bool {
	names := make(map[string]bool, len(m.Entries))
	for _, entry := range m.Entries {
		names[filepath.Base(entry)] = true
	}
	return names
}

// ManifestResolver loads manifests from a fixed filesystem, by default the
// bundle compiled into the binary. Tests and operators substitute fixture
// manifests by resolving against another filesystem.
type ManifestResolver struct {
	fsys fs.FS
}

// NewManifestResolver resolves manifests from fsys, laid out as
// <language>/<kind>_filelist.txt.
func NewManifestResolver(fsys fs.FS) *ManifestResolver {
	return &ManifestResolver{fsys: fsys}
}

// DefaultManifestResolver resolves against the embedded bundle.
func DefaultManifestResolver() *ManifestResolver {
	return NewManifestResolver(assets.ManifestsFS())
}

// Resolve loads one manifest. A missing resource is an error: the six
// bundled manifests are part of the tool installation, not of the submission
// under test.
func (r *ManifestResolver) Resolve(language, kind string) (*Manifest, error) {
	name := assets.ManifestPath(language, kind)
	raw, err := fs.ReadFile(r.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("manifest not found: %s", name)
	}

	manifest := &Manifest{Language: language, Kind: kind}
	scanner := bufio.NewScanner(bytes.NewReader(raw))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		manifest.Entries = append(manifest.Entries, fields[0])
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read manifest %s: %v", name, err)
	}
	return manifest, nil
}
