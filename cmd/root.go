// Package cmd is the command line interface to the master-mix calculator.
package cmd

import (
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/genolab/pcrmix/config"
	"github.com/genolab/pcrmix/internal/pcr"
)

// usageError marks cobra/pflag command-line syntax failures so Execute
// exits with the invalid-input code.
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }

// RootCmd assembles the pcrmix command tree. All sub-commands are
// registered here.
func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pcrmix",
		Short: "Calculate reagent volumes for PCR master-mix preparation",
		Long: `pcrmix turns a sample count, an excess percentage and a master-mix
stock strength into per-sample and batch reagent volumes for DDW, mix
and both primers, rounded to pipettable 0.5 µL steps.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
		// invoked bare, print help; a stray first argument is a syntax
		// error like an unknown flag, not an internal failure
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return &usageError{err: errors.Errorf("unknown command %q for %q", args[0], cmd.CommandPath())}
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().String("config", "", "config file (default $HOME/.pcrmix.yaml)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "log debug detail to stderr")

	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	cmd.AddCommand(
		calculateCmd(),
		interactiveCmd(),
		configCmd(),
		versionCmd(),
		docsCmd(),
	)

	return cmd
}

// Execute runs the command tree. Exit codes: 0 on success, 2 when an
// input fails validation, 1 for anything else.
func Execute() {
	ConfigureLogging()

	if err := RootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(exitCode(err))
	}
}

// ConfigureLogging routes human-readable logs to stderr, keeping stdout
// for reports.
func ConfigureLogging() {
	log.SetFormatter(&log.TextFormatter{ForceColors: true, FullTimestamp: true})
	log.SetOutput(os.Stderr)
}

func exitCode(err error) int {
	var invalid *pcr.ErrInvalidInput
	var usage *usageError
	if errors.As(err, &invalid) || errors.As(err, &usage) {
		return 2
	}
	return 1
}

// loadConfig resolves the effective settings, honoring the global
// --config flag.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfgFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return config.Config{}, err
	}
	return config.Load(cfgFile)
}
