// Command percolation estimates the site-percolation threshold of an n×n
// grid by Monte Carlo simulation.
//
// Usage:
//
//	percolation stats <n> <trials> [--seed S] [--workers W] [--verbose]
//	percolation grid <n> [--seed S]
package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/percolation/percolation"
	"github.com/katalvlaran/percolation/stats"
)

// cli holds flag values and the logger shared by subcommands.
type cli struct {
	verbose bool
	seed    int64
	workers int
	logger  *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:   "percolation",
		Short: "Percolation threshold estimation on n×n grids",
		Long: `percolation opens random sites of an n×n grid until a path of open sites
joins the top row to the bottom row, and estimates the fraction of open
sites at that moment over many independent trials.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			c.logger, err = newLogger(c.verbose)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("seed") {
				c.seed = time.Now().UnixNano()
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log every trial at debug level")
	root.PersistentFlags().Int64Var(&c.seed, "seed", 0, "base RNG seed (random when unset)")

	statsCmd := &cobra.Command{
		Use:   "stats <n> <trials>",
		Short: "Run independent trials and print the threshold estimate",
		Args:  cobra.ExactArgs(2),
		RunE:  c.runStats,
	}
	statsCmd.Flags().IntVarP(&c.workers, "workers", "w", runtime.GOMAXPROCS(0), "trials run concurrently")

	gridCmd := &cobra.Command{
		Use:   "grid <n>",
		Short: "Run one trial and draw the grid when it first percolates",
		Args:  cobra.ExactArgs(1),
		RunE:  c.runGrid,
	}

	root.AddCommand(statsCmd, gridCmd)

	return root
}

// newLogger builds a production logger at info level, or debug when verbose.
func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return logger, nil
}

// positiveArg parses a strictly positive integer argument.
func positiveArg(name, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q: %w", name, s, err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be > 0, got %d", name, v)
	}

	return v, nil
}

func (c *cli) runStats(cmd *cobra.Command, args []string) error {
	n, err := positiveArg("n", args[0])
	if err != nil {
		return err
	}
	trials, err := positiveArg("trials", args[1])
	if err != nil {
		return err
	}

	start := time.Now()
	s, err := stats.New(n, trials,
		stats.WithSeed(c.seed),
		stats.WithWorkers(c.workers),
		stats.WithContext(cmd.Context()),
		stats.WithLogger(c.logger),
	)
	if err != nil {
		return err
	}
	c.logger.Debug("simulation finished",
		zap.Int("n", n),
		zap.Int("trials", trials),
		zap.Int64("seed", c.seed),
		zap.Duration("elapsed", time.Since(start)),
	)

	printSummary(cmd.OutOrStdout(), s.Summary())
	return nil
}

// printSummary writes the aggregates in the classic three-line layout.
func printSummary(w io.Writer, s stats.Summary) {
	fmt.Fprintf(w, "mean                    = %v\n", s.Mean)
	fmt.Fprintf(w, "stddev                  = %v\n", s.StdDev)
	fmt.Fprintf(w, "95%% confidence interval = [%v, %v]\n", s.ConfidenceLo, s.ConfidenceHi)
}

func (c *cli) runGrid(cmd *cobra.Command, args []string) error {
	n, err := positiveArg("n", args[0])
	if err != nil {
		return err
	}
	g, err := percolation.New(n)
	if err != nil {
		return err
	}
	if err = stats.OpenUntilPercolates(g, rand.New(rand.NewSource(c.seed))); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, g)
	fmt.Fprintf(out, "open sites = %d / %d\n", g.NumberOfOpenSites(), n*n)
	fmt.Fprintf(out, "threshold  = %v\n", g.OpenFraction())
	return nil
}
