/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vipcxj/intervals/internal/output"
	"github.com/vipcxj/intervals/internal/timeinterval"
)

func newGenerateCmd(opts *options) *cobra.Command {
	var (
		iv       intervalFlags
		step     string
		others   []string
		parallel int
	)

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "List the points an interval shares with others at a fixed step",
		Long: `For every --other interval that the interval intersects, walk from the start
of the other interval by --step for as long as the point lies in both, and
print every point reached once, in ascending order.

Without --other, list the points of the interval itself.

The step is a number of milliseconds, a number of days ("1d") or a Go
duration ("12h"). Both the interval and every other interval must be valid.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stepMillis, err := timeinterval.ParseStep(step)
			if err != nil {
				return err
			}
			ti, err := iv.build(opts)
			if err != nil {
				return err
			}
			otherIntervals, err := parseIntervals(others, opts.clock)
			if err != nil {
				return err
			}

			opts.log.Debug("generating points", "interval", ti, "step", stepMillis, "others", len(otherIntervals), "parallel", parallel)

			var result []timeinterval.Timestamp
			switch {
			case len(otherIntervals) == 0:
				result, err = ti.GenerateFrom(stepMillis)
			case parallel > 1:
				result, err = ti.GenerateIntersectingParallel(cmd.Context(), parallel, stepMillis, asIntervals(otherIntervals)...)
			default:
				result, err = ti.GenerateIntersecting(stepMillis, asIntervals(otherIntervals)...)
			}
			if err != nil {
				return err
			}

			opts.log.Debug("generated points", "points", len(result))
			return output.Write(cmd.OutOrStdout(), opts.format, points{
				Interval: ti.String(),
				Step:     stepMillis,
				Points:   result,
			})
		},
	}

	iv.register(generateCmd.Flags(), opts)
	generateCmd.Flags().StringVar(&step, "step", opts.conf.Step, "Distance between two points")
	generateCmd.Flags().StringArrayVar(&others, "other", nil, "Other interval, as START,END[,MIN_LENGTH]; repeatable")
	generateCmd.Flags().IntVar(&parallel, "parallel", opts.conf.Parallelism, "Number of other intervals walked at once")
	return generateCmd
}
