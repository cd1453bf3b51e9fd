package admission

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig indicates a programmer error in a per-action
// configuration. It is returned before any counter state is touched.
var ErrInvalidConfig = errors.New("invalid admission config")

// FailMode decides what happens when the counter backend itself fails:
// admit the request (open) or reject it (closed). The zero value is
// invalid on purpose so every action makes the choice explicitly.
type FailMode int

const (
	failModeUnset FailMode = iota
	// FailOpen admits requests when the admission check cannot run.
	// Appropriate for read-only, low-risk actions.
	FailOpen
	// FailClosed rejects requests when the admission check cannot run.
	// Required for payment and account-mutation actions.
	FailClosed
)

// String returns a human-readable fail mode name for logging.
func (m FailMode) String() string {
	switch m {
	case FailOpen:
		return "open"
	case FailClosed:
		return "closed"
	default:
		return "unset"
	}
}

// Config is the per-action admission configuration. It travels with
// every call and is never cached inside the counter store, so changing
// a limit takes effect on the very next request.
type Config struct {
	// Limit is the maximum number of requests admitted per window.
	Limit int64

	// Window is the fixed window length.
	Window time.Duration

	// FailMode is applied by callers when the counter backend errors.
	FailMode FailMode
}

// Validate reports configuration errors. Action is validated alongside
// because it is part of the same call-time contract.
func (c Config) Validate(action string) error {
	if action == "" {
		return fmt.Errorf("%w: empty action", ErrInvalidConfig)
	}

	if c.Limit <= 0 {
		return fmt.Errorf("%w: limit must be positive, got %d", ErrInvalidConfig, c.Limit)
	}

	if c.Window <= 0 {
		return fmt.Errorf("%w: window must be positive, got %s", ErrInvalidConfig, c.Window)
	}

	if c.FailMode != FailOpen && c.FailMode != FailClosed {
		return fmt.Errorf("%w: fail mode must be set for action %q", ErrInvalidConfig, action)
	}

	return nil
}
