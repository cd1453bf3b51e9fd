package admission

import (
	"context"
	"time"
)

// Gate is the public admission entry point: one call, one consistent
// decision, one counter mutation. It holds no state beyond its counter
// backend and never logs or formats responses; translating decisions
// into transport artifacts is the caller's job.
type Gate struct {
	counters Counters
	now      func() time.Time
}

// GateOption configures a Gate.
type GateOption func(*Gate)

// WithClock replaces the gate's time source. Tests use this to drive
// window rollover deterministically.
func WithClock(now func() time.Time) GateOption {
	return func(g *Gate) {
		g.now = now
	}
}

// NewGate creates a gate over the given counter backend.
func NewGate(counters Counters, opts ...GateOption) *Gate {
	g := &Gate{
		counters: counters,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Check decides whether one request by identity against action may
// proceed under cfg. The call always counts against the window, allowed
// or not. A deny is a normal Decision; the error return is reserved for
// configuration mistakes and counter backend failures, which the caller
// resolves according to the action's FailMode.
func (g *Gate) Check(ctx context.Context, identity, action string, cfg Config) (Decision, error) {
	if err := cfg.Validate(action); err != nil {
		return Decision{}, err
	}

	return g.counters.Apply(ctx, Key(identity, action), cfg, g.now())
}
