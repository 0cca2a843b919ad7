/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vipcxj/intervals/internal/interval"
	"github.com/vipcxj/intervals/internal/output"
	"github.com/vipcxj/intervals/internal/timeinterval"
)

func newContainsCmd(opts *options) *cobra.Command {
	var (
		iv             intervalFlags
		point          timeinterval.Timestamp
		other          string
		exclusiveStart bool
		exclusiveEnd   bool
	)

	containsCmd := &cobra.Command{
		Use:   "contains",
		Short: "Check that an interval contains a point or another interval",
		Long: `With --point, check that the point lies in the interval. Points strictly
between the bounds always do; a point equal to a bound does unless that bound
is made exclusive.

With --other START,END[,MIN_LENGTH], check that both endpoints of the other
interval lie in the interval. Both intervals must be valid.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			withPoint := cmd.Flags().Changed("point")
			if withPoint == (other != "") {
				return errors.Wrap(interval.ErrInvalidArgument, "exactly one of --point and --other is required")
			}

			ti, err := iv.build(opts)
			if err != nil {
				return err
			}

			if withPoint {
				opts.log.Debug("checking point", "interval", ti, "point", point)
				return output.Write(cmd.OutOrStdout(), opts.format, verdict{
					Interval: ti.String(),
					Point:    point.String(),
					Result:   ti.ContainsWith(point, !exclusiveStart, !exclusiveEnd),
				})
			}

			o, err := parseInterval(other, opts.clock)
			if err != nil {
				return err
			}
			opts.log.Debug("checking enclosure", "interval", ti, "other", o)
			return output.Write(cmd.OutOrStdout(), opts.format, verdict{
				Interval: ti.String(),
				Others:   []string{o.String()},
				Result:   ti.Encloses(o),
			})
		},
	}

	iv.register(containsCmd.Flags(), opts)
	containsCmd.Flags().VarP(newTimestampValue(&point, opts.clock), "point", "p", "Point to look for")
	containsCmd.Flags().StringVar(&other, "other", "", "Interval to look for, as START,END[,MIN_LENGTH]")
	containsCmd.Flags().BoolVar(&exclusiveStart, "exclusive-start", false, "Do not count a point equal to the start")
	containsCmd.Flags().BoolVar(&exclusiveEnd, "exclusive-end", false, "Do not count a point equal to the end")
	return containsCmd
}
