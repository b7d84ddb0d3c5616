package main

import (
	"fmt"
	"os"

	"github.com/georgemunganga/storefront-admin/internal/config"
	"github.com/georgemunganga/storefront-admin/internal/platform/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootOptions struct {
	verbose  bool
	logLevel string
	envFiles []string
	logger   *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setupLogger builds the logger from --log-level, or from LOG_LEVEL once the
// env files have been loaded.
func (o *rootOptions) setupLogger() error {
	level := o.logLevel
	if level == "" {
		var err error
		if level, err = config.LoadLogLevel(o.envFiles...); err != nil {
			return err
		}
	}
	logger, err := logging.New(level, o.verbose)
	if err != nil {
		return err
	}
	o.logger = logger
	return nil
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "api",
		Short:         "Storefront admin API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setupLogger()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (overrides LOG_LEVEL)")
	cmd.PersistentFlags().StringSliceVar(&opts.envFiles, "env-file", nil, "env files to load (default .env)")

	cmd.AddCommand(newServeCmd(opts), newMigrateCmd(opts))
	return cmd
}
