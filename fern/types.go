package fern

import "math/rand"

// Option configures fern generation via functional arguments.
// Options apply in order, so a later source-setting option overrides an
// earlier one.
type Option func(*Options)

// Options holds the tunable knobs for Generate.
type Options struct {
	// Rand drives the contraction selection. When nil, Generate seeds a
	// private source from the process-global generator, so every unseeded
	// run draws a different fern.
	Rand *rand.Rand
}

// DefaultOptions returns the baseline configuration: no explicit source,
// meaning a fresh, unpredictably seeded one per call.
func DefaultOptions() Options { return Options{} }

// WithSeed makes generation deterministic: the same seed and point count
// reproduce the same fern.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Rand = rand.New(rand.NewSource(seed)) }
}

// WithRand supplies an existing source, e.g. to interleave fern generation
// with other randomized work under one deterministic stream. The source is
// consumed as generation proceeds; it must not be shared across goroutines.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) { o.Rand = r }
}
