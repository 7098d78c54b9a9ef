package cmd

import (
	"fmt"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/genolab/pcrmix/internal/pcr"
	"github.com/genolab/pcrmix/internal/report"
)

// calculateCmd turns flags or a positional sample count into a rendered
// master-mix recipe.
func calculateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "calculate [samples]",
		Aliases: []string{"calc"},
		Short:   "Calculate master-mix volumes for a number of samples",
		Long: `Calculate per-sample and batch reagent volumes for a PCR run.

The sample count comes from the positional argument or --samples. Excess
percent, mix strength and report format fall back to the configured
defaults (builtin: 10 % excess, 2X mix, text output).`,
		Example: `  pcrmix calculate 8
  pcrmix calculate --samples 24 --excess 10 --mix 2X
  pcrmix calculate 96 -e 15 -m 5X -o json`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return &pcr.ErrInvalidInput{
					Field:   "samples",
					Value:   strings.Join(args, " "),
					Message: "pass a single sample count",
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			samples, err := resolveSamples(cmd, args)
			if err != nil {
				return err
			}

			excess := cfg.Defaults.Excess
			if cmd.Flags().Changed("excess") {
				if excess, err = cmd.Flags().GetFloat64("excess"); err != nil {
					return err
				}
			}

			conc := cfg.Defaults.Mix
			if cmd.Flags().Changed("mix") {
				m, _ := cmd.Flags().GetString("mix")
				if conc, err = pcr.ParseConcentration(m); err != nil {
					return err
				}
			}

			format := cfg.Defaults.Output
			if cmd.Flags().Changed("output") {
				format, _ = cmd.Flags().GetString("output")
			}

			recipe, totals, err := pcr.Compute(samples, excess, conc, cfg.Settings())
			if err != nil {
				return err
			}

			log.WithFields(log.Fields{
				"samples":   totals.Samples,
				"effective": totals.EffectiveSamples,
				"excess":    excess,
				"mix":       conc.String(),
			}).Debug("computed master-mix volumes")

			return report.Render(cmd.OutOrStdout(), format, report.Params{
				Excess: excess,
				Mix:    conc,
				Recipe: recipe,
				Totals: totals,
			})
		},
	}

	cmd.Flags().IntP("samples", "n", 0, "number of PCR samples")
	cmd.Flags().Float64P("excess", "e", 0, "percent excess to offset pipetting loss")
	cmd.Flags().StringP("mix", "m", "", "master-mix stock strength, 2X or 5X")
	cmd.Flags().StringP("output", "o", "", "report format, text or json")

	return cmd
}

// resolveSamples merges the positional sample count with --samples,
// rejecting a command line where the two disagree.
func resolveSamples(cmd *cobra.Command, args []string) (int, error) {
	flagged := cmd.Flags().Changed("samples")
	n, err := cmd.Flags().GetInt("samples")
	if err != nil {
		return 0, err
	}

	if len(args) == 1 {
		pos, convErr := strconv.Atoi(args[0])
		if convErr != nil {
			return 0, &pcr.ErrInvalidInput{Field: "samples", Value: args[0], Message: "must be a positive integer"}
		}
		if flagged && pos != n {
			return 0, &pcr.ErrInvalidInput{
				Field:   "samples",
				Value:   fmt.Sprintf("%d and %d", pos, n),
				Message: "positional count and --samples disagree",
			}
		}
		return pos, nil
	}

	if !flagged {
		return 0, &pcr.ErrInvalidInput{Field: "samples", Value: 0, Message: "pass a sample count, positional or --samples"}
	}
	return n, nil
}
