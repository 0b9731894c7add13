package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/conn-castle/latex-install/internal/install"
	"github.com/conn-castle/latex-install/internal/messages"
	"github.com/conn-castle/latex-install/internal/terminal"
)

// Exit codes returned by latex-install. Every failure shares ExitFailure.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

var executeFunc = execute
var isTerminalWriter = terminal.IsTerminalWriter

func main() {
	runMain(os.Args, os.Stdout, os.Stderr, os.Exit)
}

// execute runs the CLI command with the provided args and output writers.
func execute(args []string, stdout io.Writer, stderr io.Writer) error {
	cmdArgs := []string{}
	if len(args) > 1 {
		cmdArgs = args[1:]
	}
	if arg, ok := firstUnknownArg(cmdArgs); ok {
		return &install.Error{Kind: install.KindUsage, Err: fmt.Errorf(messages.UnknownOptionFmt, arg)}
	}
	cmd := newRootCmd(install.DefaultConfig(), install.RealSystem{})
	cmd.SetArgs(cmdArgs)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}

// runMain executes the CLI and exits with ExitFailure after printing a single error line.
// Progress output is colored only when stdout is a terminal, the error line
// only when stderr is.
func runMain(args []string, stdout io.Writer, stderr io.Writer, exit func(int)) {
	if !isTerminalWriter(stdout) {
		color.NoColor = true
	}
	if err := executeFunc(args, stdout, stderr); err != nil {
		_, _ = fmt.Fprintln(stderr, errorColor(stderr).Sprintf(messages.ErrorLineFmt, err))
		exit(ExitFailure)
	}
}

// errorColor returns red for a terminal stderr that has not opted out of color.
func errorColor(stderr io.Writer) *color.Color {
	c := color.New(color.FgRed)
	if !isTerminalWriter(stderr) || os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		c.DisableColor()
	} else {
		c.EnableColor()
	}
	return c
}

// firstUnknownArg returns the first argument that is not a help flag.
// Unknown arguments are rejected before cobra parses them so the error
// always echoes the literal argument and nothing is touched on disk.
func firstUnknownArg(args []string) (string, bool) {
	for _, arg := range args {
		switch strings.TrimSpace(arg) {
		case "--help", "-h":
			continue
		default:
			return arg, true
		}
	}
	return "", false
}
