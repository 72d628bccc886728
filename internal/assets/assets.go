// Package assets bundles the reference filelists shipped with the tool.
//
// The 2019 track defines, per language, three manifests: the files a test
// directory must contain (required), the embedding files whose format is
// checked (embedding) and the filelist used for auxiliary embedding checks
// (bitrate). Each manifest line's first whitespace-delimited token is a path
// relative to the submission root.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed share
var share embed.FS

// ManifestsFS returns the embedded 2019 manifest bundle, rooted at the
// per-language directories.
func ManifestsFS() fs.FS {
	sub, err := fs.Sub(share, "share/2019")
	if err != nil {
		// The embed directive guarantees the directory exists.
		panic(fmt.Sprintf("embedded manifest bundle corrupt: %v", err))
	}
	return sub
}

// ManifestPath returns the bundle-relative path of one manifest.
func ManifestPath(language, kind string) string {
	return fmt.Sprintf("%s/%s_filelist.txt", language, kind)
}
