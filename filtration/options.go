// SPDX-License-Identifier: MIT

package filtration

// DefaultLinearScan is the face-lookup default: hash index.
const DefaultLinearScan = false

// Option configures a Complex at construction time.
type Option func(*Options)

// Options holds the resolved configuration of a Complex.
type Options struct {
	// LinearScan selects scan-based face lookup instead of the hash index.
	LinearScan bool
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{LinearScan: DefaultLinearScan}
}

// WithLinearScan makes the complex resolve faces by scanning every stored
// simplex, the way the reference algorithm is usually written. Useful as a
// baseline in tests and benchmarks; memory use drops by the index map.
func WithLinearScan() Option {
	return func(o *Options) { o.LinearScan = true }
}

// gatherOptions applies opts over the defaults, last wins.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
