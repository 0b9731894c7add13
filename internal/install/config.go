package install

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/conn-castle/latex-install/internal/messages"
)

const (
	// DefaultRoot is the directory the tools are installed into.
	DefaultRoot = "/usr/local/bin"
	// DefaultSelfTestFlag is passed to each tool to run its internal self-check.
	DefaultSelfTestFlag = "--test"
	// DefaultBackupSuffix is appended to an existing installation before it is replaced.
	DefaultBackupSuffix = ".backup"
)

// DefaultTargets returns the tool names installed by default, in processing order.
func DefaultTargets() []string {
	return []string{"latex-split", "latex-merge"}
}

// Config holds the fixed locations and names used by the installer.
// The CLI always runs with DefaultConfig; tests inject temporary directories.
type Config struct {
	// Root is the absolute install directory.
	Root string
	// SourceDir holds the executables to install. Relative paths resolve against the working directory.
	SourceDir string
	// Targets are the executable names, processed in order.
	Targets []string
	// SelfTestFlag is the argument that makes a tool run its self-check.
	SelfTestFlag string
	// BackupSuffix is appended to the destination path to name its backup.
	BackupSuffix string
}

// DefaultConfig returns the configuration used by the latex-install command.
func DefaultConfig() Config {
	return Config{
		Root:         DefaultRoot,
		SourceDir:    ".",
		Targets:      DefaultTargets(),
		SelfTestFlag: DefaultSelfTestFlag,
		BackupSuffix: DefaultBackupSuffix,
	}
}

// Validate reports the first invalid field in c.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Root) == "" {
		return fmt.Errorf(messages.InstallRootRequired)
	}
	if !filepath.IsAbs(c.Root) {
		return fmt.Errorf(messages.InstallRootNotAbsFmt, c.Root)
	}
	if strings.TrimSpace(c.SourceDir) == "" {
		return fmt.Errorf(messages.InstallSourceDirRequired)
	}
	if len(c.Targets) == 0 {
		return fmt.Errorf(messages.InstallTargetsRequired)
	}
	seen := make(map[string]struct{}, len(c.Targets))
	for _, target := range c.Targets {
		if !validTargetName(target) {
			return fmt.Errorf(messages.InstallTargetInvalidFmt, target)
		}
		if _, ok := seen[target]; ok {
			return fmt.Errorf(messages.InstallTargetDupFmt, target)
		}
		seen[target] = struct{}{}
	}
	if strings.TrimSpace(c.SelfTestFlag) == "" {
		return fmt.Errorf(messages.InstallSelfTestFlagEmpty)
	}
	if strings.TrimSpace(c.BackupSuffix) == "" {
		return fmt.Errorf(messages.InstallBackupSuffixEmpty)
	}
	return nil
}

// validTargetName rejects names that would escape the install root.
func validTargetName(name string) bool {
	if strings.TrimSpace(name) == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsRune(name, '/') && !strings.ContainsRune(name, filepath.Separator)
}

// DestPath returns the installed location of target.
func (c Config) DestPath(target string) string {
	return filepath.Join(c.Root, target)
}

// BackupPath returns where the previous installation of target is kept.
func (c Config) BackupPath(target string) string {
	return c.DestPath(target) + c.BackupSuffix
}
