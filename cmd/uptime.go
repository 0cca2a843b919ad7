/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vipcxj/intervals/internal/output"
	"github.com/vipcxj/intervals/internal/timeinterval"
)

func newUptimeCmd(opts *options) *cobra.Command {
	uptimeCmd := &cobra.Command{
		Use:   "uptime",
		Short: "Show the interval from the last boot of this host until now",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			boot, err := opts.bootTime(cmd.Context())
			if err != nil {
				return errors.Wrap(err, "could not read boot time")
			}

			ti, err := timeinterval.NewWithClock(0, opts.clock)
			if err != nil {
				return err
			}
			ti.Start = timeinterval.Timestamp(int64(boot) * 1000)
			opts.log.Debug("read boot time", "boot", ti.Start)

			return output.Write(cmd.OutOrStdout(), opts.format, describe(ti))
		},
	}
	return uptimeCmd
}
