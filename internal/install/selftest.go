package install

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/conn-castle/latex-install/internal/messages"
)

// runSelfTests runs each tool's self-check in order and stops at the first
// failure, so the later tools are never run and nothing is installed.
func (inst *installer) runSelfTests() error {
	inst.header(messages.InstallStageSelfTest)
	flag := inst.cfg.SelfTestFlag
	for _, target := range inst.cfg.Targets {
		path := inst.sourcePath(target)
		code, err := inst.sys.RunSelfTest(path, flag)
		if err != nil {
			return &Error{Kind: KindSelfTest, Target: target, Err: fmt.Errorf(messages.InstallSelfTestStartFmt, ErrSelfTestFailed, path, flag, err)}
		}
		if code != 0 {
			return &Error{Kind: KindSelfTest, Target: target, Err: fmt.Errorf(messages.InstallSelfTestExitFmt, ErrSelfTestFailed, path, flag, code)}
		}
		_, _ = fmt.Fprintln(inst.out, color.GreenString(messages.InstallSelfTestPassedFmt, target))
	}
	return nil
}
