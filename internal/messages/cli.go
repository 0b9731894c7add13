package messages

// CLI messages for the root command.
const (
	// RootUse is the CLI command name.
	RootUse = "latex-install"
	// RootShort is the short description for the root command.
	RootShort = "Install latex-split and latex-merge into the system binary directory"
	RootLong  = `Install latex-split and latex-merge from the current directory into %s.

Both tools must be present in the current directory and must pass their own
self-test (%s) before anything is copied. An existing installation of either
tool is kept as <name>%s before it is replaced. After copying, each tool must
resolve on PATH.

Requires write access to %s (usually: sudo %s).`
	RootHelpFlag = "Show this help and exit"

	// UnknownOptionFmt formats unrecognized command-line arguments.
	UnknownOptionFmt = "unknown option: %s"
	// ErrorLineFmt formats the single error line printed before a failing exit.
	ErrorLineFmt = "Error: %v"
)
