// Package stats estimates the site-percolation threshold of an n×n grid by
// Monte Carlo simulation.
//
// What:
//
//   - Each trial builds a fresh percolation.Grid, opens uniformly random
//     blocked sites until the grid percolates, and records the fraction of
//     open sites at that instant.
//   - Stats aggregates the trial samples: mean, sample standard deviation
//     (divisor T-1) and a 95% confidence interval
//     mean ± 1.96·stddev/√T under a normal approximation.
//
// Determinism:
//
//   - Trial i draws from its own RNG stream derived from (Seed, i), so the
//     samples are identical for a given seed whatever the worker count.
//   - Seed == 0 selects a fixed default seed.
//
// Concurrency:
//
//   - Trials share no mutable state; WithWorkers(k) runs up to k trials at a
//     time on an errgroup. Every sample slot is written by exactly one trial
//     and statistics are computed only after all trials finish.
//   - A Stats value is immutable once New returns and safe to read from
//     multiple goroutines.
//
// Undefined values:
//
//   - With a single trial the sample standard deviation is undefined:
//     StdDev, ConfidenceLo and ConfidenceHi return NaN. This is not an error.
//
// Errors:
//
//   - ErrInvalidSize:   n <= 0.
//   - ErrInvalidTrials: trials <= 0.
//
// Both wrap ErrInvalidArgument. Context cancellation is returned as-is.
package stats
