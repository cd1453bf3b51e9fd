package admission

import "time"

// Decision is the outcome of a single admission check. A deny is a
// valid decision, not an error; callers translate it into transport
// artifacts (headers, status) themselves.
type Decision struct {
	// Allowed reports whether the request may proceed.
	Allowed bool

	// Limit echoes the configured ceiling for the action.
	Limit int64

	// Remaining is the quota left in the current window, never negative.
	Remaining int64

	// ResetTime is when the current window ends and the counter resets.
	ResetTime time.Time

	// RetryAfter is the wait until ResetTime, zero when allowed.
	RetryAfter time.Duration
}
