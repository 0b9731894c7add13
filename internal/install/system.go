package install

import (
	"errors"
	"os"
	"os/exec"

	"golang.org/x/sys/unix"
)

// System abstracts the OS operations the installer performs so the workflow
// can be exercised against a fake without touching the real filesystem.
type System interface {
	Stat(name string) (os.FileInfo, error)
	CopyFile(src string, dst string) error
	Chmod(name string, mode os.FileMode) error
	// RunSelfTest runs path with flag, discarding its output, and returns the exit code.
	// A non-nil error means the process could not be run at all.
	RunSelfTest(path string, flag string) (int, error)
	LookPath(name string) (string, error)
	// HasWriteAccess returns nil when the process may create files in dir.
	// A missing dir is reported as an error matching fs.ErrNotExist.
	HasWriteAccess(dir string) error
	// LockDir takes an exclusive lock on dir, held until release is called.
	LockDir(dir string) (release func() error, err error)
}

// RealSystem implements System using the OS.
type RealSystem struct{}

// Stat returns a FileInfo describing the named file.
func (RealSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// CopyFile replaces dst with the contents and permission bits of src.
func (RealSystem) CopyFile(src string, dst string) error {
	return copyFileAtomic(src, dst)
}

// Chmod changes the mode of the named file.
func (RealSystem) Chmod(name string, mode os.FileMode) error {
	return os.Chmod(name, mode)
}

// RunSelfTest runs path with flag and reports its exit status.
func (RealSystem) RunSelfTest(path string, flag string) (int, error) {
	// nil Stdin/Stdout/Stderr connect the child to the null device.
	cmd := exec.Command(path, flag)
	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code <= 0 {
			code = 1
		}
		return code, nil
	}
	return -1, err
}

// LookPath searches PATH for an executable named name.
func (RealSystem) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// HasWriteAccess succeeds for root when dir exists and otherwise asks the
// kernel whether dir is writable.
func (RealSystem) HasWriteAccess(dir string) error {
	if unix.Geteuid() == 0 {
		_, err := os.Stat(dir)
		return err
	}
	if err := unix.Access(dir, unix.W_OK); err != nil {
		return &os.PathError{Op: "access", Path: dir, Err: err}
	}
	return nil
}

// LockDir flocks dir itself, so no lock file is created anywhere.
func (RealSystem) LockDir(dir string) (func() error, error) {
	lock, err := lockRoot(dir)
	if err != nil {
		return nil, err
	}
	return lock.release, nil
}
