package stats

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrInvalidArgument is the common kind of every precondition violation.
var ErrInvalidArgument = errors.New("stats: invalid argument")

var (
	// ErrInvalidSize indicates a grid size n <= 0.
	ErrInvalidSize = fmt.Errorf("%w: grid size must be > 0", ErrInvalidArgument)
	// ErrInvalidTrials indicates a trial count <= 0.
	ErrInvalidTrials = fmt.Errorf("%w: trial count must be > 0", ErrInvalidArgument)
)

// confidence95 is the two-sided 95% quantile of the standard normal.
const confidence95 = 1.96

// Options configures a simulation run.
//   - Seed: base seed for the per-trial RNG streams (0 ⇒ defaultRNGSeed).
//   - Workers: maximum trials running at once (values < 1 mean 1).
//   - Ctx: checked before every trial; nil means context.Background().
//   - Logger: receives a debug entry per trial; nil means zap.NewNop().
type Options struct {
	Seed    int64
	Workers int
	Ctx     context.Context
	Logger  *zap.Logger
}

// Option configures Options.
type Option func(*Options)

// WithSeed sets the base RNG seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithWorkers sets how many trials may run concurrently.
func WithWorkers(k int) Option {
	return func(o *Options) {
		o.Workers = k
	}
}

// WithContext sets the cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		o.Ctx = ctx
	}
}

// WithLogger sets the logger used for per-trial debug output.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns Options for a sequential, deterministic run:
//
//	– Seed    = 0 (defaultRNGSeed)
//	– Workers = 1
//	– Ctx     = context.Background()
//	– Logger  = zap.NewNop()
func DefaultOptions() Options {
	return Options{
		Seed:    0,
		Workers: 1,
		Ctx:     context.Background(),
		Logger:  zap.NewNop(),
	}
}

// normalize fills zero-valued fields with their defaults.
func (o *Options) normalize() {
	if o.Workers < 1 {
		o.Workers = 1
	}
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
}

// Summary is a plain snapshot of the aggregate results.
type Summary struct {
	N            int
	Trials       int
	Mean         float64
	StdDev       float64
	ConfidenceLo float64
	ConfidenceHi float64
}

// Stats holds the per-trial threshold samples and their aggregates.
// All fields are fixed once New returns.
type Stats struct {
	n       int
	samples []float64
	mean    float64
	stddev  float64
}
