package install

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/conn-castle/latex-install/internal/messages"
)

// installedMode allows execute by all and write by owner only.
const installedMode = 0o755

var filepathAbs = filepath.Abs

// Options controls installer behavior.
type Options struct {
	System System
	// Out receives progress lines and the usage report. Nil discards them.
	Out io.Writer
}

type installer struct {
	cfg       Config
	sys       System
	out       io.Writer
	sourceDir string
}

// stage is one step of the workflow. Errors that are not already an *Error
// are tagged with kind by runStages.
type stage struct {
	kind Kind
	run  func() error
}

// Run installs every configured target from the source directory into the
// install root and verifies the result. Stages run in order and the first
// failure stops the run; the returned error is always an *Error.
//
// The precheck stages run before the install root is locked so a failing
// precheck leaves no trace on disk.
func Run(cfg Config, opts Options) error {
	if opts.System == nil {
		return &Error{Kind: KindPrecheck, Err: fmt.Errorf(messages.InstallSystemRequired)}
	}
	if err := cfg.Validate(); err != nil {
		return &Error{Kind: KindPrecheck, Err: err}
	}
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	sourceDir, err := filepathAbs(cfg.SourceDir)
	if err != nil {
		return &Error{Kind: KindPrecheck, Err: fmt.Errorf(messages.InstallResolveSourceFmt, cfg.SourceDir, err)}
	}
	inst := &installer{
		cfg:       cfg,
		sys:       opts.System,
		out:       out,
		sourceDir: sourceDir,
	}

	gate := []stage{
		{kind: KindPrecheck, run: inst.checkPrivilege},
		{kind: KindPrecheck, run: inst.checkSources},
	}
	if err := runStages(gate); err != nil {
		return err
	}

	release, err := inst.sys.LockDir(cfg.Root)
	if err != nil {
		return &Error{Kind: KindPrecheck, Err: err}
	}
	defer func() {
		_ = release()
	}()

	steps := []stage{
		{kind: KindSelfTest, run: inst.runSelfTests},
		{kind: KindInstall, run: inst.installTargets},
		{kind: KindVerify, run: inst.verifyPath},
	}
	if err := runStages(steps); err != nil {
		return err
	}
	inst.reportUsage()
	return nil
}

func runStages(stages []stage) error {
	for _, s := range stages {
		if err := s.run(); err != nil {
			var installErr *Error
			if errors.As(err, &installErr) {
				return err
			}
			return &Error{Kind: s.kind, Err: err}
		}
	}
	return nil
}

func (inst *installer) sourcePath(target string) string {
	return filepath.Join(inst.sourceDir, target)
}

func (inst *installer) header(format string, args ...any) {
	_, _ = fmt.Fprintf(inst.out, messages.InstallStageHeaderFmt, color.New(color.Bold).Sprintf(format, args...))
}

// installTargets backs up and replaces each target in order. Targets are not
// installed as a unit: a failure on a later target leaves earlier ones replaced.
func (inst *installer) installTargets() error {
	inst.header(messages.InstallStageInstall, inst.cfg.Root)
	for _, target := range inst.cfg.Targets {
		if err := inst.installTarget(target); err != nil {
			return &Error{Kind: KindInstall, Target: target, Err: err}
		}
	}
	return nil
}

// installTarget follows a symlinked destination when backing it up, then
// renames the new file over the link itself; the linked-to file is not modified.
func (inst *installer) installTarget(target string) error {
	src := inst.sourcePath(target)
	dst := inst.cfg.DestPath(target)

	info, err := inst.sys.Stat(dst)
	switch {
	case err == nil:
		if !info.Mode().IsRegular() {
			return fmt.Errorf(messages.InstallDestNotFileFmt, dst)
		}
		backup := inst.cfg.BackupPath(target)
		if err := inst.sys.CopyFile(dst, backup); err != nil {
			return fmt.Errorf(messages.InstallBackupFailedFmt, dst, backup, err)
		}
		_, _ = fmt.Fprintf(inst.out, messages.InstallBackedUpFmt, dst, backup)
	case errors.Is(err, fs.ErrNotExist):
	default:
		return fmt.Errorf(messages.InstallStatDestFmt, dst, err)
	}

	if err := inst.sys.CopyFile(src, dst); err != nil {
		return fmt.Errorf(messages.InstallCopyFailedFmt, src, dst, err)
	}
	if err := inst.sys.Chmod(dst, installedMode); err != nil {
		return fmt.Errorf(messages.InstallChmodFailedFmt, dst, err)
	}
	_, _ = fmt.Fprintln(inst.out, color.GreenString(messages.InstallInstalledFmt, target, dst))
	return nil
}
