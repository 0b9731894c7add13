package messages

// System messages for internal operations.
const (
	LockOpenFmt    = "open install root %s for locking: %w"
	LockNotDirFmt  = "lock %s: not a directory"
	LockFmt        = "lock install root %s: %w"
	LockTimeoutFmt = "timed out waiting for lock after %s (another install may be running)"
)
