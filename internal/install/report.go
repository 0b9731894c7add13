package install

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/conn-castle/latex-install/internal/messages"
)

func (inst *installer) reportUsage() {
	_, _ = fmt.Fprintln(inst.out)
	_, _ = fmt.Fprintln(inst.out, color.GreenString(messages.InstallSuccessSummary))
	_, _ = fmt.Fprintln(inst.out)
	_, _ = fmt.Fprintln(inst.out, messages.InstallUsageHeader)
	_, _ = fmt.Fprintln(inst.out, messages.InstallUsageLines)
}
