package install

import (
	"errors"
	"fmt"
)

// Kind classifies which part of the workflow failed.
type Kind string

const (
	// KindPrecheck covers privilege, source presence and lock failures. Nothing was modified.
	KindPrecheck Kind = "precheck"
	// KindSelfTest means a tool's self-check failed. Nothing was modified.
	KindSelfTest Kind = "self-test"
	// KindInstall means a backup, copy or chmod failed. Earlier targets may already be installed.
	KindInstall Kind = "install"
	// KindVerify means an installed tool does not resolve on PATH.
	KindVerify Kind = "verify"
	// KindUsage means the command line was not understood. Nothing was modified.
	KindUsage Kind = "usage"
)

var (
	// ErrInsufficientPrivilege reports that the install root is not writable.
	ErrInsufficientPrivilege = errors.New("insufficient privilege")
	// ErrInstallRootMissing reports that the install root directory does not exist.
	ErrInstallRootMissing = errors.New("install root missing")
	// ErrMissingSources reports that one or more tools are absent from the source directory.
	ErrMissingSources = errors.New("missing source files")
	// ErrSelfTestFailed reports a tool whose self-check did not pass.
	ErrSelfTestFailed = errors.New("self-test failed")
	// ErrNotOnPath reports installed tools that PATH lookup cannot find.
	ErrNotOnPath = errors.New("not found on PATH")
)

// Error is returned by Run for every failure. Target is empty when the
// failure is not specific to one tool.
type Error struct {
	Kind   Kind
	Target string
	Err    error
}

func (e *Error) Error() string {
	if e.Target != "" {
		return fmt.Sprintf("%s: %v", e.Target, e.Err)
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var installErr *Error
	if errors.As(err, &installErr) {
		return installErr.Kind, true
	}
	return "", false
}
