package install

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/conn-castle/latex-install/internal/messages"
)

// checkPrivilege fails when the install root is missing or not writable.
// Only the second case is a privilege problem.
func (inst *installer) checkPrivilege() error {
	err := inst.sys.HasWriteAccess(inst.cfg.Root)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf(messages.InstallRootMissingFmt, ErrInstallRootMissing, inst.cfg.Root)
	default:
		return fmt.Errorf(messages.InstallPrivilegeRequiredFmt, ErrInsufficientPrivilege, inst.cfg.Root, err, messages.RootUse)
	}
}

// checkSources reports every missing source in one error rather than stopping at the first.
// A directory in place of a tool counts as missing.
func (inst *installer) checkSources() error {
	var missing []string
	for _, target := range inst.cfg.Targets {
		path := inst.sourcePath(target)
		info, err := inst.sys.Stat(path)
		switch {
		case err == nil && info.Mode().IsRegular():
		case err == nil, errors.Is(err, fs.ErrNotExist):
			missing = append(missing, target)
		default:
			return fmt.Errorf(messages.InstallSourceStatFmt, path, err)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf(messages.InstallSourcesMissingFmt, ErrMissingSources, inst.sourceDir, strings.Join(missing, ", "))
	}
	return nil
}
