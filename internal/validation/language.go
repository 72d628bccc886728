package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/zerospeech/zrc2020/internal/audio"
	"github.com/zerospeech/zrc2020/internal/features"
	"github.com/zerospeech/zrc2020/pkg/logger"
)

// LanguageValidation checks one language's artifact directories against the
// bundled manifests. Construction resolves the three manifests once; each
// Validate call owns a fresh error log so instances can be reused across
// submissions (sequentially, the log is not safe for concurrent calls).
type LanguageValidation struct {
	language  string
	required  *Manifest
	bitrate   *Manifest
	embedding *Manifest

	strictEmbeddings bool
	audioExt         string

	errors *ErrorLog
}

// NewLanguageValidation resolves the manifests for one of the two fixed
// languages. An unknown language or an unresolvable manifest is an error.
func NewLanguageValidation(language string, opts Options) (*LanguageValidation, error) {
	if !slices.Contains(Languages, language) {
		return nil, fmt.Errorf(
			`language must be "english" or "surprise", it is %q`, language)
	}

	opts = opts.withDefaults()
	v := &LanguageValidation{
		language:         language,
		strictEmbeddings: opts.StrictEmbeddings,
		audioExt:         opts.AudioExtension,
	}

	var err error
	if v.required, err = opts.Resolver.Resolve(language, KindRequired); err != nil {
		return nil, err
	}
	if v.bitrate, err = opts.Resolver.Resolve(language, KindBitrate); err != nil {
		return nil, err
	}
	if v.embedding, err = opts.Resolver.Resolve(language, KindEmbedding); err != nil {
		return nil, err
	}
	return v, nil
}

// Validate runs the existence, embedding format and audio checks over the
// language's artifact directories. Content-level problems accumulate in the
// returned log; a missing artifact directory or a strict-mode format failure
// is returned as an error.
func (v *LanguageValidation) Validate(submission string, hasAux1, hasAux2 bool) (*ErrorLog, error) {
	v.errors = NewErrorLog()

	testDir := filepath.Join(submission, v.language, "test")
	aux1Dir := filepath.Join(submission, v.language, "auxiliary_embedding1")
	aux2Dir := filepath.Join(submission, v.language, "auxiliary_embedding2")

	// the test directory holds the final embeddings and synthesized audio
	if err := v.validateDirectory(submission, testDir, v.required, v.embedding); err != nil {
		return v.errors, err
	}

	// auxiliary embeddings are checked against the bitrate filelist
	if hasAux1 {
		if err := v.validateDirectory(submission, aux1Dir, v.embedding, v.bitrate); err != nil {
			return v.errors, err
		}
	}
	if hasAux2 {
		if err := v.validateDirectory(submission, aux2Dir, v.embedding, v.bitrate); err != nil {
			return v.errors, err
		}
	}
	return v.errors, nil
}

// validateDirectory runs existence, then format, then audio checks on one
// artifact directory. Format and audio checks are skipped once existence
// errors exist for this directory: an incomplete directory would only
// produce cascading, misleading diagnostics. Errors from other directories
// do not suppress anything here.
func (v *LanguageValidation) validateDirectory(submission, directory string, existList, embeddingList *Manifest) error {
	logger.Info(fmt.Sprintf(
		"validating 2019/%s/%s directory ...", v.language, filepath.Base(directory)))

	before := v.errors.Len()
	if err := v.checkExists(directory, existList); err != nil {
		return err
	}

	if v.errors.Len() == before {
		if err := v.checkEmbedding(directory, embeddingList); err != nil {
			return err
		}
	}

	if v.errors.Len() == before {
		v.checkAudio(submission, existList)
	}
	return nil
}

// checkExists verifies the directory holds every basename listed in the
// manifest. Extra files are allowed. A missing directory is raised, a
// missing file is accumulated.
func (v *LanguageValidation) checkExists(directory string, manifest *Manifest) error {
	listing, err := os.ReadDir(directory)
	if err != nil {
		return fmt.Errorf("directory %s does not exist", directory)
	}

	existing := make(map[string]bool, len(listing))
	for _, entry := range listing {
		existing[entry.Name()] = true
	}

	var missing []string
	for name := range manifest.Basenames() {
		if !existing[name] {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)

	root := filepath.Base(directory)
	for _, name := range missing {
		v.errors.Appendf("missing file 2019/%s/%s/%s", v.language, root, name)
	}
	return nil
}

// checkEmbedding delegates per-file format checking to the embedding reader.
// In non-strict mode the reader records recoverable problems in the shared
// log instead of raising.
func (v *LanguageValidation) checkEmbedding(directory string, manifest *Manifest) error {
	return features.ReadAll(manifest.Entries, directory, v.strictEmbeddings, v.errors)
}

// checkAudio verifies every audio file named by the manifest is readable and
// not empty.
func (v *LanguageValidation) checkAudio(submission string, manifest *Manifest) {
	for _, entry := range manifest.Entries {
		if !strings.HasSuffix(entry, v.audioExt) {
			continue
		}
		if err := audio.Check(filepath.Join(submission, entry)); err != nil {
			v.errors.Append(err.Error())
		}
	}
}
