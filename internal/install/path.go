package install

import (
	"os"
	"path/filepath"
)

// sameFile reports whether found, a PATH lookup result, names the installed
// file at dst. Stat follows symlinks, so a PATH entry linking to dst counts,
// and os.SameFile also matches hard links and bind mounts of the root.
func sameFile(sys System, found string, dst string) bool {
	if filepath.Clean(found) == filepath.Clean(dst) {
		return true
	}
	foundInfo, err := sys.Stat(found)
	if err != nil {
		return false
	}
	dstInfo, err := sys.Stat(dst)
	if err != nil {
		return false
	}
	return os.SameFile(foundInfo, dstInfo)
}
