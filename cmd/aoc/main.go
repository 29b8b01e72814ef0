// Command aoc runs any of the daily puzzle solvers from one binary.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/pbellens/aoc2022/pkg/aoc"
	_ "github.com/pbellens/aoc2022/pkg/day01"
	_ "github.com/pbellens/aoc2022/pkg/day02"
	_ "github.com/pbellens/aoc2022/pkg/day03"
	_ "github.com/pbellens/aoc2022/pkg/day04"
	_ "github.com/pbellens/aoc2022/pkg/day05"
	_ "github.com/pbellens/aoc2022/pkg/day06"
)

type app struct {
	verbose bool
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "aoc",
		Short:        "Advent of Code 2022 solvers",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := aoc.NewLogger(a.verbose)
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	root.AddCommand(a.runCmd(), a.listCmd(), a.verifyCmd())
	return root
}

// selectDays resolves day names, or returns every day when none are given.
func selectDays(names []string) ([]aoc.Day, error) {
	if len(names) == 0 {
		return aoc.Days(), nil
	}
	days := make([]aoc.Day, 0, len(names))
	for _, name := range names {
		d, err := aoc.Lookup(name)
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, nil
}

func (a *app) runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [day...]",
		Short: "Print the answers of the given days, or of every day",
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := selectDays(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, d := range days {
				fmt.Fprintln(out, d.Name())
				if _, err := aoc.Run(a.logger, out, d); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the registered days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, d := range aoc.Days() {
				fmt.Fprintln(cmd.OutOrStdout(), d.Name())
			}
			return nil
		},
	}
}

func (a *app) verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify [day...]",
		Short: "Check the answers of the given days, or of every day, against the known ones",
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := selectDays(args)
			if err != nil {
				return err
			}
			expected, err := aoc.Expected()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var errs error
			for _, d := range days {
				got, err := d.Solve(d.Input)
				if err == nil {
					err = aoc.Check(expected, d, got)
				}
				if err != nil {
					a.logger.Error("verification failed", zap.String("day", d.Name()), zap.Error(err))
					fmt.Fprintf(out, "FAIL %s\n", d.Name())
					errs = multierr.Append(errs, err)
					continue
				}
				a.logger.Debug("verified", zap.String("day", d.Name()))
				fmt.Fprintf(out, "ok   %s\n", d.Name())
			}
			return errs
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
