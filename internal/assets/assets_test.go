package assets

import (
	"io/fs"
	"strings"
	"testing"
)

func TestManifestPath(t *testing.T) {
	if got := ManifestPath("english", "required"); got != "english/required_filelist.txt" {
		t.Errorf("ManifestPath = %q", got)
	}
}

func TestManifestsFSContainsAllSix(t *testing.T) {
	fsys := ManifestsFS()
	for _, language := range []string{"english", "surprise"} {
		for _, kind := range []string{"required", "bitrate", "embedding"} {
			name := ManifestPath(language, kind)
			data, err := fs.ReadFile(fsys, name)
			if err != nil {
				t.Fatalf("missing bundled manifest %s: %v", name, err)
			}
			if len(data) == 0 {
				t.Errorf("bundled manifest %s is empty", name)
			}
		}
	}
}

func TestManifestEntriesAreSubmissionRelative(t *testing.T) {
	data, err := fs.ReadFile(ManifestsFS(), ManifestPath("english", "required"))
	if err != nil {
		t.Fatal(err)
	}
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if !strings.HasPrefix(line, "english/") {
			t.Errorf("entry %q is not relative to the submission root", line)
		}
	}
}
