package install

import (
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

type fakeFile struct {
	data string
	mode os.FileMode
}

type fakeFileInfo struct {
	name string
	size int64
	mode os.FileMode
}

func (fi fakeFileInfo) Name() string       { return fi.name }
func (fi fakeFileInfo) Size() int64        { return fi.size }
func (fi fakeFileInfo) Mode() os.FileMode  { return fi.mode }
func (fi fakeFileInfo) ModTime() time.Time { return time.Time{} }
func (fi fakeFileInfo) IsDir() bool        { return fi.mode.IsDir() }
func (fi fakeFileInfo) Sys() any           { return nil }

// fakeSystem is an in-memory System. Mutating and process-running calls are
// recorded in calls so tests can assert ordering and absence of side effects.
type fakeSystem struct {
	files map[string]fakeFile
	dirs  map[string]bool

	// onPath maps a bare command name to the path LookPath returns.
	onPath map[string]string

	writeErr    error
	lockErr     error
	selfTest    map[string]int
	selfTestErr map[string]error
	copyErr     map[string]error
	chmodErr    map[string]error
	statErr     map[string]error

	calls []string
}

func newFakeSystem() *fakeSystem {
	return &fakeSystem{
		files:       map[string]fakeFile{},
		dirs:        map[string]bool{},
		onPath:      map[string]string{},
		selfTest:    map[string]int{},
		selfTestErr: map[string]error{},
		copyErr:     map[string]error{},
		chmodErr:    map[string]error{},
		statErr:     map[string]error{},
	}
}

func (s *fakeSystem) Stat(name string) (os.FileInfo, error) {
	if err := s.statErr[name]; err != nil {
		return nil, err
	}
	if s.dirs[name] {
		return fakeFileInfo{name: filepath.Base(name), mode: fs.ModeDir | 0o755}, nil
	}
	f, ok := s.files[name]
	if !ok {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
	}
	return fakeFileInfo{name: filepath.Base(name), size: int64(len(f.data)), mode: f.mode}, nil
}

func (s *fakeSystem) CopyFile(src string, dst string) error {
	s.calls = append(s.calls, fmt.Sprintf("copy %s %s", src, dst))
	if err := s.copyErr[dst]; err != nil {
		return err
	}
	f, ok := s.files[src]
	if !ok {
		return &fs.PathError{Op: "open", Path: src, Err: fs.ErrNotExist}
	}
	s.files[dst] = f
	return nil
}

func (s *fakeSystem) Chmod(name string, mode os.FileMode) error {
	s.calls = append(s.calls, fmt.Sprintf("chmod %s %o", name, mode))
	if err := s.chmodErr[name]; err != nil {
		return err
	}
	f, ok := s.files[name]
	if !ok {
		return &fs.PathError{Op: "chmod", Path: name, Err: fs.ErrNotExist}
	}
	f.mode = mode
	s.files[name] = f
	return nil
}

func (s *fakeSystem) RunSelfTest(path string, flag string) (int, error) {
	s.calls = append(s.calls, fmt.Sprintf("selftest %s %s", path, flag))
	if err := s.selfTestErr[path]; err != nil {
		return -1, err
	}
	return s.selfTest[path], nil
}

func (s *fakeSystem) LookPath(name string) (string, error) {
	s.calls = append(s.calls, "lookpath "+name)
	if path, ok := s.onPath[name]; ok {
		return path, nil
	}
	return "", &exec.Error{Name: name, Err: exec.ErrNotFound}
}

func (s *fakeSystem) HasWriteAccess(string) error {
	return s.writeErr
}

func (s *fakeSystem) LockDir(dir string) (func() error, error) {
	s.calls = append(s.calls, "lock "+dir)
	if s.lockErr != nil {
		return nil, s.lockErr
	}
	return func() error {
		s.calls = append(s.calls, "unlock "+dir)
		return nil
	}, nil
}

const (
	fakeRoot      = "/fake/bin"
	fakeSourceDir = "/fake/src"
)

// fakeConfig returns a config rooted in fake paths.
func fakeConfig() Config {
	return Config{
		Root:         fakeRoot,
		SourceDir:    fakeSourceDir,
		Targets:      DefaultTargets(),
		SelfTestFlag: DefaultSelfTestFlag,
		BackupSuffix: DefaultBackupSuffix,
	}
}

// newReadyFake returns a fake where every source exists, passes its self-test
// and resolves on PATH to its install location.
func newReadyFake(cfg Config) *fakeSystem {
	sys := newFakeSystem()
	for _, target := range cfg.Targets {
		sys.files[filepath.Join(cfg.SourceDir, target)] = fakeFile{data: "new " + target, mode: 0o644}
		sys.onPath[target] = cfg.DestPath(target)
	}
	return sys
}

// mutatingCalls returns the recorded copy and chmod calls.
func (s *fakeSystem) mutatingCalls() []string {
	var out []string
	for _, call := range s.calls {
		if strings.HasPrefix(call, "copy ") || strings.HasPrefix(call, "chmod ") {
			out = append(out, call)
		}
	}
	return out
}

func (s *fakeSystem) selfTestCalls() []string {
	var out []string
	for _, call := range s.calls {
		if strings.HasPrefix(call, "selftest ") {
			out = append(out, call)
		}
	}
	return out
}
