/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vipcxj/intervals/internal/output"
)

func newDescribeCmd(opts *options) *cobra.Command {
	var iv intervalFlags

	describeCmd := &cobra.Command{
		Use:   "describe",
		Short: "Show the bounds, validity and span of an interval",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ti, err := iv.build(opts)
			if err != nil {
				return err
			}
			opts.log.Debug("describing", "interval", ti, "minLength", ti.MinLength())
			return output.Write(cmd.OutOrStdout(), opts.format, describe(ti))
		},
	}

	iv.register(describeCmd.Flags(), opts)
	return describeCmd
}
