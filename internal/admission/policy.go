package admission

import "time"

// windowEntry is the per-key counter state. Entries are owned
// exclusively by the store; callers only ever see derived decisions.
type windowEntry struct {
	count       int64
	windowStart time.Time
}

// step applies the fixed-window policy to an entry and returns the
// resulting decision. Callers must hold the entry's shard lock; the
// entry is mutated in place.
//
// Fixed window is a deliberate choice over sliding window or token
// bucket: O(1) per request, one integer and one timestamp per key. The
// known tradeoff is that a burst straddling a window boundary can admit
// up to 2x the limit in a short interval.
func step(entry *windowEntry, cfg Config, now time.Time) Decision {
	// A windowStart in the future means the clock moved backward.
	// Treat the window as not yet elapsed rather than resetting, so a
	// clock anomaly never grants a fresh quota or a negative remaining.
	if now.Sub(entry.windowStart) >= cfg.Window && !entry.windowStart.After(now) {
		entry.count = 0
		entry.windowStart = now
	}

	allowed := entry.count < cfg.Limit
	if allowed {
		entry.count++
	}

	remaining := cfg.Limit - entry.count
	if remaining < 0 {
		remaining = 0
	}

	resetTime := entry.windowStart.Add(cfg.Window)

	var retryAfter time.Duration
	if !allowed {
		if retryAfter = resetTime.Sub(now); retryAfter < 0 {
			retryAfter = 0
		}
	}

	return Decision{
		Allowed:    allowed,
		Limit:      cfg.Limit,
		Remaining:  remaining,
		ResetTime:  resetTime,
		RetryAfter: retryAfter,
	}
}
