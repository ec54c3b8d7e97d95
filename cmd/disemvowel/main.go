// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the disemvowel CLI.
//
// Usage: disemvowel [flags] <input-path> <output-path>
//
// All failures propagate back here as errors; run maps them to the fixed
// stderr diagnostics and exit codes defined by the driver package.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/disemvowel/internal/config"
	"github.com/pdiddy/disemvowel/internal/driver"
	"github.com/pdiddy/disemvowel/internal/fileio"
	"github.com/pdiddy/disemvowel/internal/logging"
)

// newRootCmd builds the root command. The positional count is checked
// before any configuration is read, so a bad config never masks the fixed
// argument diagnostics.
func newRootCmd(stderr io.Writer) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "disemvowel <input-path> <output-path>",
		Short: "Remove ASCII vowels from a text file",
		Long: `disemvowel reads the whole of <input-path>, removes every a, e, i, o
and u (in either case) and writes the result to <output-path>, replacing the
file if it exists. All other characters, including accented vowels, other
scripts and emoji, are copied unchanged.

Settings are read from --config, ./disemvowel.yaml or
~/.config/disemvowel/disemvowel.yaml, and from DISEMVOWEL_* environment
variables. Flags take precedence over both.

Use -- to pass a path that starts with a dash:

  disemvowel -- -input.txt output.txt`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := driver.CheckArgs(args); err != nil {
				return err
			}

			cfgFile, _ := cmd.Flags().GetString("config")
			config.Configure(v, cfgFile)

			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			mode, err := config.ParseFileMode(cfg.FileMode)
			if err != nil {
				return err
			}

			logger := logging.New(stderr, config.Level(cfg), cfg.LogFormat)
			if used := v.ConfigFileUsed(); used != "" {
				logger.Debug("using config file", "path", used)
			}

			files := fileio.NewOS(fileio.WithFileMode(mode), fileio.WithLogger(logger))
			return driver.New(files, logger).Run(cmd.Context(), args)
		},
	}

	cmd.Flags().String("config", "", "config file (default: ./disemvowel.yaml or ~/.config/disemvowel/disemvowel.yaml)")
	cmd.Flags().String("log-level", "", "log level: debug, info, warn, or error")
	cmd.Flags().String("log-format", "", "log format: text or json")
	cmd.Flags().String("file-mode", "", "octal permissions for a newly created output file")

	mustBind(v, config.KeyLogLevel, cmd, "log-level")
	mustBind(v, config.KeyLogFormat, cmd, "log-format")
	mustBind(v, config.KeyFileMode, cmd, "file-mode")

	setVersion(cmd)
	return cmd
}

// mustBind binds a config key to a flag of cmd and panics if the flag is
// not defined.
func mustBind(v *viper.Viper, key string, cmd *cobra.Command, flag string) {
	f := cmd.Flags().Lookup(flag)
	if f == nil {
		panic(fmt.Sprintf("binding %s: flag --%s is not defined", key, flag))
	}
	if err := v.BindPFlag(key, f); err != nil {
		panic(fmt.Sprintf("binding %s to --%s: %v", key, flag, err))
	}
}

// run executes one invocation and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}

	cmd := newRootCmd(stderr)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(stderr, driver.Message(err))
	}
	return driver.ExitCode(err)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
