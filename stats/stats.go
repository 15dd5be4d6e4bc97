package stats

import (
	"fmt"
	"math"
	"math/rand"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/percolation/percolation"
)

// New runs trials independent percolation experiments on an n×n grid and
// returns their aggregate statistics.
//
// Steps:
//  1. Validate n and trials; normalize options.
//  2. Run every trial on an errgroup limited to opts.Workers goroutines;
//     trial i writes only samples[i].
//  3. After all trials finish, compute mean and sample standard deviation.
//
// Returns ErrInvalidSize (n <= 0 or n > percolation.MaxSize) /
// ErrInvalidTrials on bad input, or the context
// error if opts.Ctx is cancelled before all trials complete.
//
// Complexity: O(trials·n²·α(n²)) time, O(trials + workers·n²) memory.
func New(n, trials int, opts ...Option) (*Stats, error) {
	// 1. Validate and configure.
	if err := validateSize(n); err != nil {
		return nil, err
	}
	if trials <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTrials, trials)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.normalize()
	log := o.Logger.With(zap.Int("n", n), zap.Int("trials", trials))

	// 2. Run trials.
	samples := make([]float64, trials)
	g, ctx := errgroup.WithContext(o.Ctx)
	g.SetLimit(o.Workers)
	scheduled := 0
	for i := 0; i < trials; i++ {
		if ctx.Err() != nil {
			break
		}
		scheduled++
		i := i // per-iteration copy; go directive is below 1.22
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			x, err := RunTrial(n, trialRNG(o.Seed, i))
			if err != nil {
				return fmt.Errorf("stats: trial %d: %w", i, err)
			}
			samples[i] = x
			log.Debug("trial complete", zap.Int("trial", i), zap.Float64("threshold", x))

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// Scheduling only stops early when the parent context is cancelled.
	if scheduled < trials {
		return nil, o.Ctx.Err()
	}

	// 3. Aggregate.
	s := &Stats{
		n:       n,
		samples: samples,
		mean:    stat.Mean(samples, nil),
		stddev:  math.NaN(),
	}
	if trials > 1 {
		s.stddev = stat.StdDev(samples, nil)
	}
	log.Debug("simulation complete", zap.Float64("mean", s.mean), zap.Float64("stddev", s.stddev))

	return s, nil
}

// validateSize reports ErrInvalidSize for n outside [1, percolation.MaxSize].
func validateSize(n int) error {
	if n <= 0 || n > percolation.MaxSize {
		return fmt.Errorf("%w: got %d, want 1..%d", ErrInvalidSize, n, percolation.MaxSize)
	}

	return nil
}

// RunTrial performs one experiment on a fresh n×n grid and returns the open
// fraction at the moment it first percolates. A nil rng uses the stream of
// trial 0 under the default seed.
//
// Complexity: O(n²·α(n²)) expected.
func RunTrial(n int, rng *rand.Rand) (float64, error) {
	if err := validateSize(n); err != nil {
		return 0, err
	}
	g, err := percolation.New(n)
	if err != nil {
		return 0, err
	}
	if err = OpenUntilPercolates(g, rng); err != nil {
		return 0, err
	}

	return g.OpenFraction(), nil
}

// OpenUntilPercolates draws uniform (row, col) pairs from rng and opens each
// drawn site that is still blocked, stopping right after the open that makes
// g percolate. Draws of an already open site are skipped and not counted.
// It returns immediately if g already percolates. A nil rng uses the stream
// of trial 0 under the default seed; a nil g is an ErrInvalidArgument.
//
// The loop terminates because a fully open grid always percolates.
func OpenUntilPercolates(g *percolation.Grid, rng *rand.Rand) error {
	if g == nil {
		return fmt.Errorf("%w: nil grid", ErrInvalidArgument)
	}
	if rng == nil {
		rng = trialRNG(0, 0)
	}
	n := g.Size()
	for !g.Percolates() {
		row, col := rng.Intn(n)+1, rng.Intn(n)+1
		open, err := g.IsOpen(row, col)
		if err != nil {
			return err
		}
		if open {
			continue
		}
		if err = g.Open(row, col); err != nil {
			return err
		}
	}

	return nil
}

// N returns the grid size used by every trial.
func (s *Stats) N() int {
	return s.n
}

// Trials returns the number of trials run.
func (s *Stats) Trials() int {
	return len(s.samples)
}

// Samples returns a copy of the per-trial thresholds in trial order.
func (s *Stats) Samples() []float64 {
	out := make([]float64, len(s.samples))
	copy(out, s.samples)

	return out
}

// Mean returns the sample mean of the percolation threshold.
func (s *Stats) Mean() float64 {
	return s.mean
}

// StdDev returns the sample standard deviation of the percolation threshold
// (divisor T-1). It is NaN when only one trial was run.
func (s *Stats) StdDev() float64 {
	return s.stddev
}

// halfWidth returns 1.96·stddev/√T; NaN propagates from StdDev.
func (s *Stats) halfWidth() float64 {
	return confidence95 * s.stddev / math.Sqrt(float64(len(s.samples)))
}

// ConfidenceLo returns the low endpoint of the 95% confidence interval.
func (s *Stats) ConfidenceLo() float64 {
	return s.mean - s.halfWidth()
}

// ConfidenceHi returns the high endpoint of the 95% confidence interval.
func (s *Stats) ConfidenceHi() float64 {
	return s.mean + s.halfWidth()
}

// Summary returns all aggregates in one value.
func (s *Stats) Summary() Summary {
	return Summary{
		N:            s.n,
		Trials:       len(s.samples),
		Mean:         s.Mean(),
		StdDev:       s.StdDev(),
		ConfidenceLo: s.ConfidenceLo(),
		ConfidenceHi: s.ConfidenceHi(),
	}
}
