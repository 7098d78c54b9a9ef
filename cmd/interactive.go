package cmd

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/genolab/pcrmix/internal/pcr"
	"github.com/genolab/pcrmix/internal/report"
)

// interactiveCmd walks through the three inputs as terminal prompts,
// then renders the same report the calculate command prints.
func interactiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"prompt", "i"},
		Short:   "Prompt for the inputs, then calculate",
		Long: `Prompt for sample count, excess percent and mix strength on the
terminal. ENTER accepts the configured default; invalid entries ask
again.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			in := bufio.NewScanner(cmd.InOrStdin())
			out := cmd.OutOrStdout()

			samples, err := promptSamples(in, out)
			if err != nil {
				return err
			}
			excess, err := promptExcess(in, out, cfg.Defaults.Excess)
			if err != nil {
				return err
			}
			conc, err := promptConcentration(in, out, cfg.Defaults.Mix)
			if err != nil {
				return err
			}

			recipe, totals, err := pcr.Compute(samples, excess, conc, cfg.Settings())
			if err != nil {
				return err
			}

			return report.Render(out, cfg.Defaults.Output, report.Params{
				Excess: excess,
				Mix:    conc,
				Recipe: recipe,
				Totals: totals,
			})
		},
	}
}

func promptSamples(in *bufio.Scanner, out io.Writer) (int, error) {
	for {
		raw, err := prompt(in, out, "Enter number of PCR samples: ")
		if err != nil {
			return 0, err
		}

		n, convErr := strconv.Atoi(raw)
		if convErr != nil || n < 1 {
			fmt.Fprintln(out, "Error: samples must be a positive integer.")
			continue
		}
		return n, nil
	}
}

func promptExcess(in *bufio.Scanner, out io.Writer, def float64) (float64, error) {
	for {
		raw, err := prompt(in, out, fmt.Sprintf("Excess %% (ENTER for %g%%): ", def))
		if err != nil {
			return 0, err
		}
		if raw == "" {
			return def, nil
		}

		excess, convErr := strconv.ParseFloat(raw, 64)
		if convErr != nil || math.IsNaN(excess) || math.IsInf(excess, 0) || excess < 0 {
			fmt.Fprintln(out, "Error: excess must be a non-negative number.")
			continue
		}
		return excess, nil
	}
}

func promptConcentration(in *bufio.Scanner, out io.Writer, def pcr.Concentration) (pcr.Concentration, error) {
	for {
		raw, err := prompt(in, out, fmt.Sprintf("Mix concentration (2 or 5) [ENTER for %s]: ", def))
		if err != nil {
			return 0, err
		}
		if raw == "" {
			return def, nil
		}

		conc, parseErr := pcr.ParseConcentration(raw)
		if parseErr != nil {
			fmt.Fprintln(out, "Error: mix must be 2 or 5.")
			continue
		}
		return conc, nil
	}
}

// prompt prints the question and returns the next input line, trimmed.
func prompt(in *bufio.Scanner, out io.Writer, question string) (string, error) {
	fmt.Fprint(out, question)

	if !in.Scan() {
		if err := in.Err(); err != nil {
			return "", errors.Wrap(err, "reading input")
		}
		return "", &pcr.ErrInvalidInput{Field: "input", Value: "EOF", Message: "input ended before all values were entered"}
	}
	return strings.TrimSpace(in.Text()), nil
}
