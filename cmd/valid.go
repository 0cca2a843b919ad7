/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vipcxj/intervals/internal/output"
)

func newValidCmd(opts *options) *cobra.Command {
	var iv intervalFlags

	validCmd := &cobra.Command{
		Use:   "valid",
		Short: "Check that an interval is valid",
		Long: `Check that the start of an interval, plus its minimum length in days, is not
after its end. Prints true or false.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ti, err := iv.build(opts)
			if err != nil {
				return err
			}
			opts.log.Debug("checking validity", "interval", ti, "minLength", ti.MinLength())
			return output.Write(cmd.OutOrStdout(), opts.format, verdict{
				Interval: ti.String(),
				Result:   ti.IsValid(),
			})
		},
	}

	iv.register(validCmd.Flags(), opts)
	return validCmd
}
