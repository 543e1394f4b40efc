// Command decalc evaluates arbitrary-precision integer expressions.
//
// Usage:
//
//	decalc eval 12345 '*' 6789
//	decalc batch exprs.txt --jobs 8 --format json
//
// Settings are read from the nearest decalc.toml unless --config is given.
// Flags always win over the config file.
package main

import (
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	color      string
	verbose    bool

	cfg    config
	logger *log.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{
		logger: log.New(io.Discard, "decalc: ", 0),
	}

	cmd := &cobra.Command{
		Use:           "decalc",
		Short:         "Exact integer arithmetic on decimal digit strings",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.verbose {
				opts.logger.SetOutput(cmd.ErrOrStderr())
			}

			cfg, path, err := loadConfig(opts.configPath, ".")
			if err != nil {
				return err
			}
			if path != "" {
				opts.logger.Println("config:", path)
			}

			if cmd.Flags().Changed("color") {
				cfg.Output.Color = opts.color
				if err := cfg.validate(); err != nil {
					return err
				}
			}
			opts.cfg = cfg

			setupColor(cfg.Output.Color, cmd.OutOrStdout(), cmd.ErrOrStderr())
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to config file (default: nearest "+configFileName+")")
	cmd.PersistentFlags().StringVar(&opts.color, "color", "auto", "colorize output (auto|on|off)")
	cmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "log diagnostics to stderr")

	cmd.AddCommand(newEvalCmd(opts))
	cmd.AddCommand(newBatchCmd(opts))
	return cmd
}

func main() {
	// Errors raised before the config is loaded still need a colour decision.
	setupColor("auto", os.Stdout, os.Stderr)

	if err := newRootCmd().Execute(); err != nil {
		fatalColor.Fprintf(os.Stderr, "decalc: %v\n", err)
		os.Exit(1)
	}
}
