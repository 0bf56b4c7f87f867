// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for the arithmetic kernels.
// This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: options fields are unexported; public APIs consume ...Option.
package sparse

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultFoldDensityThreshold is the combined-density cutoff below which
	// StrategyAuto resolves Add/Sub to fold-in instead of union iteration.
	// Combined density is (a.NonZeroCount()+b.NonZeroCount()) / (rows*cols).
	DefaultFoldDensityThreshold = 0.01
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicThresholdInvalid = "sparse: WithFoldThreshold: threshold must be in [0, 1]"
	panicStrategyInvalid  = "sparse: WithStrategy: unknown strategy"
)

// ---------- Public option type (functional) ----------

// Option mutates internal kernel options. Safe to apply repeatedly.
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*options)

// options carries the resolved configuration of one kernel invocation.
type options struct {
	strategy      Strategy // requested strategy (may be StrategyAuto)
	foldThreshold float64  // density cutoff used by StrategyAuto
	stats         *Stats   // optional sink for operation diagnostics
}

// defaultOptions returns the documented zero-value behavior.
func defaultOptions() options {
	return options{
		strategy:      StrategyAuto,
		foldThreshold: DefaultFoldDensityThreshold,
		stats:         nil,
	}
}

// WithStrategy forces a specific Add/Sub combination strategy.
// Results are identical under every strategy; only cost profiles differ.
// Panics if s is not one of StrategyAuto, StrategyUnion, StrategyFold.
func WithStrategy(s Strategy) Option {
	if s != StrategyAuto && s != StrategyUnion && s != StrategyFold {
		panic(panicStrategyInvalid)
	}
	return func(o *options) { o.strategy = s }
}

// WithFoldThreshold overrides the StrategyAuto density cutoff.
// Panics if t is outside [0, 1]; 0 makes auto always pick union, 1 always fold.
func WithFoldThreshold(t float64) Option {
	if t < 0 || t > 1 {
		panic(panicThresholdInvalid)
	}
	return func(o *options) { o.foldThreshold = t }
}

// WithStats directs the kernel to fill dst with the operation tag, the
// resolved strategy and the elapsed wall-clock time. A nil dst disables
// collection (same as omitting the option).
func WithStats(dst *Stats) Option {
	return func(o *options) { o.stats = dst }
}

// gatherOptions folds user options over the defaults.
// Internal; every kernel entry point funnels through here.
func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
