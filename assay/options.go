package assay

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/AntoniaRiedl/biostats/curve"
	"github.com/AntoniaRiedl/biostats/internal/options"
)

// config holds the tunable parts of an analysis run.
type config struct {
	maxIterations int
	logger        zerolog.Logger
}

// defaultConfig returns the default run configuration: the standard
// solver iteration cap and a no-op logger.
func defaultConfig() config {
	return config{
		maxIterations: curve.DefaultMaxIterations,
		logger:        zerolog.Nop(),
	}
}

// Option is a functional option for Analyze.
type Option = options.Option[*config]

// WithMaxIterations caps the 4PL solver's major iterations. The cap must
// be positive; it exists to bound the fit in finite time on pathological
// input.
func WithMaxIterations(n int) Option {
	return options.New(func(cfg *config) error {
		if n <= 0 {
			return fmt.Errorf("max iterations must be positive, got %d", n)
		}
		cfg.maxIterations = n

		return nil
	})
}

// WithLogger routes per-sample warnings and fit notes to the given
// logger. Without it the run is silent.
func WithLogger(logger zerolog.Logger) Option {
	return options.NoError(func(cfg *config) {
		cfg.logger = logger
	})
}
