package cluster

import "github.com/cwbudde/algo-kernels/parallel"

// Config holds k-means settings.
type Config struct {
	// MaxIterations bounds the number of Lloyd iterations.
	MaxIterations int
	// Tolerance stops iterating once no centroid moves further than this.
	Tolerance float64
	// Seed drives k-means++ seeding.
	Seed int64
	// Parallel configures the assignment step.
	Parallel []parallel.Option
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the settings used when no option is given.
func DefaultConfig() Config {
	return Config{
		MaxIterations: 300,
		Tolerance:     1e-9,
		Seed:          1,
	}
}

// WithMaxIterations sets the iteration limit. Values <= 0 are ignored.
func WithMaxIterations(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.MaxIterations = n
		}
	}
}

// WithTolerance sets the convergence threshold. Negative values are ignored.
func WithTolerance(tol float64) Option {
	return func(cfg *Config) {
		if tol >= 0 {
			cfg.Tolerance = tol
		}
	}
}

// WithSeed sets the seeding generator's seed.
func WithSeed(seed int64) Option {
	return func(cfg *Config) {
		cfg.Seed = seed
	}
}

// WithParallel passes work-splitting options to the assignment step.
func WithParallel(opts ...parallel.Option) Option {
	return func(cfg *Config) {
		cfg.Parallel = append(cfg.Parallel, opts...)
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
