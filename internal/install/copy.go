package install

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/conn-castle/latex-install/internal/messages"
)

var (
	osOpen       = os.Open
	osCreateTemp = os.CreateTemp
	osRename     = os.Rename
)

// copyFileAtomic writes src into a temp file next to dst and renames it over dst,
// so dst is never observed half-written. The source permission bits are kept.
func copyFileAtomic(src string, dst string) error {
	in, err := osOpen(src)
	if err != nil {
		return fmt.Errorf(messages.InstallCopyOpenSourceFmt, src, err)
	}
	defer func() {
		_ = in.Close()
	}()
	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf(messages.InstallCopyOpenSourceFmt, src, err)
	}

	tmp, err := osCreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".tmp-*")
	if err != nil {
		return fmt.Errorf(messages.InstallCopyCreateTempFmt, err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := io.Copy(tmp, in); err != nil {
		_ = tmp.Close()
		return fmt.Errorf(messages.InstallCopyWriteFmt, err)
	}
	if err := tmp.Chmod(info.Mode().Perm()); err != nil {
		_ = tmp.Close()
		return fmt.Errorf(messages.InstallCopyWriteFmt, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf(messages.InstallCopySyncFmt, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf(messages.InstallCopyCloseFmt, err)
	}
	if err := osRename(tmpName, dst); err != nil {
		return fmt.Errorf(messages.InstallCopyRenameFmt, err)
	}
	committed = true
	return nil
}
