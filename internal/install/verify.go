package install

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/conn-castle/latex-install/internal/messages"
)

// Status is the outcome of a single PATH check.
type Status string

const (
	StatusOK   Status = "OK"
	StatusWarn Status = "WARN"
	StatusFail Status = "FAIL"
)

// Result describes whether one installed tool is reachable by name.
type Result struct {
	Status         Status
	Name           string
	Message        string
	Recommendation string
}

// CheckOnPath looks up every target by bare name, the way a shell would.
// A name that resolves somewhere other than its install location is a
// warning: the tool runs, but not the copy that was just installed.
func CheckOnPath(sys System, cfg Config) []Result {
	results := make([]Result, 0, len(cfg.Targets))
	for _, target := range cfg.Targets {
		dst := cfg.DestPath(target)
		found, err := sys.LookPath(target)
		switch {
		case err != nil:
			results = append(results, Result{
				Status:         StatusFail,
				Name:           target,
				Message:        fmt.Sprintf(messages.VerifyNotFoundFmt, dst),
				Recommendation: fmt.Sprintf(messages.VerifyNotFoundRecommend, cfg.Root, cfg.Root),
			})
		case !sameFile(sys, found, dst):
			results = append(results, Result{
				Status:         StatusWarn,
				Name:           target,
				Message:        fmt.Sprintf(messages.VerifyShadowedFmt, found, dst),
				Recommendation: fmt.Sprintf(messages.VerifyShadowedRecommend, cfg.Root),
			})
		default:
			results = append(results, Result{
				Status:  StatusOK,
				Name:    target,
				Message: fmt.Sprintf(messages.VerifyFoundFmt, found),
			})
		}
	}
	return results
}

// verifyPath fails when any installed tool cannot be found on PATH. An
// installed-but-unreachable tool counts as a failed install.
func (inst *installer) verifyPath() error {
	inst.header(messages.InstallStageVerify)
	var missing []string
	for _, r := range CheckOnPath(inst.sys, inst.cfg) {
		printResult(inst.out, r)
		if r.Status == StatusFail {
			missing = append(missing, r.Name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf(messages.InstallVerifyFailedFmt, ErrNotOnPath, strings.Join(missing, ", "))
	}
	return nil
}

func printResult(out io.Writer, r Result) {
	var status string
	switch r.Status {
	case StatusOK:
		status = color.GreenString(messages.VerifyStatusOKLabel)
	case StatusWarn:
		status = color.YellowString(messages.VerifyStatusWarnLabel)
	case StatusFail:
		status = color.RedString(messages.VerifyStatusFailLabel)
	}

	_, _ = fmt.Fprintf(out, messages.VerifyResultLineFmt, status, r.Name, r.Message)
	if r.Recommendation != "" {
		printRecommendation(out, r.Recommendation)
	}
}

// printRecommendation renders a multi-line recommendation with consistent indentation.
func printRecommendation(out io.Writer, recommendation string) {
	lines := strings.Split(recommendation, "\n")
	for i, line := range lines {
		if i == 0 {
			_, _ = fmt.Fprintf(out, "%s%s\n", messages.VerifyRecommendationPrefix, line)
			continue
		}
		if line == "" {
			_, _ = fmt.Fprintf(out, "%s\n", messages.VerifyRecommendationIndent)
			continue
		}
		_, _ = fmt.Fprintf(out, "%s%s\n", messages.VerifyRecommendationIndent, line)
	}
}
