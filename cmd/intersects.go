/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vipcxj/intervals/internal/interval"
	"github.com/vipcxj/intervals/internal/output"
	"github.com/vipcxj/intervals/internal/timeinterval"
)

func newIntersectsCmd(opts *options) *cobra.Command {
	var (
		iv    intervalFlags
		other string
		both  bool
	)

	intersectsCmd := &cobra.Command{
		Use:   "intersects",
		Short: "Check that an endpoint of another interval lies in an interval",
		Long: `Check that both intervals are valid and that the start or the end of the
other interval lies in the interval.

Only the endpoints of the other interval are looked at, so an interval nested
strictly inside the other one does not intersect it. Use --both to test from
both sides.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ti, err := iv.build(opts)
			if err != nil {
				return err
			}
			o, err := parseInterval(other, opts.clock)
			if err != nil {
				return err
			}

			result := ti.Intersects(o)
			if both {
				result = interval.IntersectsEither[timeinterval.Timestamp](ti, o)
			}
			opts.log.Debug("checking intersection", "interval", ti, "other", o, "both", both)
			return output.Write(cmd.OutOrStdout(), opts.format, verdict{
				Interval: ti.String(),
				Others:   []string{o.String()},
				Result:   result,
			})
		},
	}

	iv.register(intersectsCmd.Flags(), opts)
	intersectsCmd.Flags().StringVar(&other, "other", "", "Other interval, as START,END[,MIN_LENGTH]")
	intersectsCmd.Flags().BoolVar(&both, "both", false, "Also test the interval against the other one")
	_ = intersectsCmd.MarkFlagRequired("other")
	return intersectsCmd
}
