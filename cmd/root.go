/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/inconshreveable/log15"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/spf13/cobra"

	"github.com/vipcxj/intervals/internal/config"
	"github.com/vipcxj/intervals/internal/logging"
	"github.com/vipcxj/intervals/internal/output"
	"github.com/vipcxj/intervals/internal/timeinterval"
)

// options is the state shared by the commands of one invocation.
type options struct {
	conf     *config.Config
	clock    timeinterval.Clock
	bootTime func(ctx context.Context) (uint64, error)

	format   output.Format
	logLevel string
	debug    bool

	log log15.Logger
}

func newOptions(conf *config.Config, clock timeinterval.Clock) *options {
	return &options{
		conf:     conf,
		clock:    clock,
		bootTime: host.BootTimeWithContext,
		format:   conf.Format,
		logLevel: conf.LogLevel,
		log:      logging.Discard(),
	}
}

func newRootCmd(opts *options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "intervals",
		Short: "Closed interval algebra over timestamps",
		Long: `intervals checks validity, containment and intersection of closed time
intervals and enumerates the points they share at a fixed step.

Timestamps are given as "now", a relative offset ("-1d", "+36h", "-500ms"),
integer milliseconds since the epoch, or RFC3339. A relative offset needs its
unit: "+500" is 500ms after the epoch, "+500ms" is 500ms from now.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(cmd.ErrOrStderr(), opts.logLevel, "cmd", cmd.Name())
			if err != nil {
				return err
			}
			opts.log = logger
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.VarP(&opts.format, "format", "o", fmt.Sprintf("Output format, one of %v", output.FormatStrings()))
	flags.StringVar(&opts.logLevel, "log-level", opts.logLevel, "Log level (debug, info, warn, error, crit)")
	flags.BoolVar(&opts.debug, "debug", false, "Print errors with their stack trace")

	rootCmd.AddCommand(
		newValidCmd(opts),
		newContainsCmd(opts),
		newIntersectsCmd(opts),
		newGenerateCmd(opts),
		newDescribeCmd(opts),
		newUptimeCmd(opts),
	)
	return rootCmd
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	conf, err := config.Parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: could not parse configuration: %v\n", err)
		return 1
	}
	clock, err := newClock(conf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: invalid INTERVALS_NOW: %v\n", err)
		return 1
	}
	return run(newOptions(conf, clock), os.Args[1:], os.Stdout, os.Stderr)
}

// newClock returns the system clock unless the configuration pins it.
func newClock(conf *config.Config) (timeinterval.Clock, error) {
	if conf.Now == "" {
		return timeinterval.SystemClock{}, nil
	}
	now, err := timeinterval.ParseTimestamp(conf.Now, timeinterval.SystemClock{}.Now())
	if err != nil {
		return nil, err
	}
	return timeinterval.FixedClock(now), nil
}

func run(opts *options, args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd(opts)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	if err := rootCmd.Execute(); err != nil {
		if opts.debug {
			fmt.Fprintf(rootCmd.ErrOrStderr(), "error: %+v\n", err)
		} else {
			fmt.Fprintf(rootCmd.ErrOrStderr(), "error: %v\n", err)
		}
		return 1
	}
	return 0
}
