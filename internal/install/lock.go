package install

import (
	"errors"
	"fmt"
	"os"
	"time"

	"golang.org/x/sys/unix"

	"github.com/conn-castle/latex-install/internal/messages"
)

// rootLock is an exclusive flock held on the install root directory itself.
// Only read access to the directory is needed and no file is created.
type rootLock struct {
	dir *os.File
}

var openDirFn = os.Open
var flockFn = unix.Flock
var lockSleep = time.Sleep

var (
	lockWaitTimeout = 30 * time.Second
	lockPollEvery   = 100 * time.Millisecond
)

// lockRoot opens dir and polls for an exclusive lock on it until lockWaitTimeout.
func lockRoot(dir string) (*rootLock, error) {
	f, err := openDirFn(dir)
	if err != nil {
		return nil, fmt.Errorf(messages.LockOpenFmt, dir, err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf(messages.LockOpenFmt, dir, err)
	}
	if !info.IsDir() {
		_ = f.Close()
		return nil, fmt.Errorf(messages.LockNotDirFmt, dir)
	}
	if err := waitForFlock(f); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf(messages.LockFmt, dir, err)
	}
	return &rootLock{dir: f}, nil
}

// release unlocks and closes the directory. Closing alone would drop the
// lock too; the explicit unlock surfaces errors.
func (l *rootLock) release() error {
	if l == nil || l.dir == nil {
		return nil
	}
	err := flockFn(int(l.dir.Fd()), unix.LOCK_UN)
	if closeErr := l.dir.Close(); err == nil {
		err = closeErr
	}
	return err
}

func waitForFlock(f *os.File) error {
	deadline := time.Now().Add(lockWaitTimeout)
	for {
		err := flockFn(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB)
		if err == nil {
			return nil
		}
		if !errors.Is(err, unix.EWOULDBLOCK) && !errors.Is(err, unix.EAGAIN) {
			return err
		}
		if time.Now().After(deadline) {
			return fmt.Errorf(messages.LockTimeoutFmt, lockWaitTimeout)
		}
		lockSleep(lockPollEvery)
	}
}
