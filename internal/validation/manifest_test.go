package validation

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveParsesFirstToken(t *testing.T) {
	fsys := fstest.MapFS{
		"english/bitrate_filelist.txt": &fstest.MapFile{
			Data: []byte("english/test/a.txt 128\n\nenglish/test/b.txt 256\n"),
		},
	}
	m, err := NewManifestResolver(fsys).Resolve("english", KindBitrate)
	require.NoError(t, err)
	assert.Equal(t, []string{"english/test/a.txt", "english/test/b.txt"}, m.Entries)
	assert.Equal(t, map[string]bool{"a.txt": true, "b.txt": true}, m.Basenames())
}

func TestResolveMissingManifest(t *testing.T) {
	_, err := NewManifestResolver(fstest.MapFS{}).Resolve("english", KindRequired)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "manifest not found")
	assert.Contains(t, err.Error(), "english/required_filelist.txt")
}

func TestDefaultManifestResolverBundlesAllSix(t *testing.T) {
	resolver := DefaultManifestResolver()
	for _, language := range Languages {
		for _, kind := range []string{KindRequired, KindBitrate, KindEmbedding} {
			m, err := resolver.Resolve(language, kind)
			require.NoError(t, err, "%s/%s", language, kind)
			assert.NotEmpty(t, m.Entries, "%s/%s", language, kind)
		}
	}
}
