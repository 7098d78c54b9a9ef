package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/genolab/pcrmix/internal/pcr"
)

var rule = strings.Repeat("-", 46)

// Text writes the recipe the way it is read at the bench: the requested
// run on top, the per-sample recipe, the batch totals, and the grand total
// of master mix to prepare.
func Text(w io.Writer, p Params) error {
	tw := tabwriter.NewWriter(w, 1, 1, 1, ' ', 0)

	fmt.Fprintf(tw, "Samples: %d | Excess: %.1f%% | Mix: %s\n", p.Totals.Samples, p.Excess, p.Mix)
	fmt.Fprintf(tw, "Preparing for: %d samples | Per-sample total: %.1f µL\n", p.Totals.EffectiveSamples, p.Recipe.Total)

	fmt.Fprintln(tw, rule)
	fmt.Fprintln(tw, "Per-sample recipe:")
	writeReagents(tw, p.Mix, p.Recipe.DDW, p.Recipe.Mix, p.Recipe.PrimerF, p.Recipe.PrimerR)

	fmt.Fprintln(tw, rule)
	fmt.Fprintln(tw, "Totals to prepare (rounded to 0.5 µL):")
	writeReagents(tw, p.Mix, p.Totals.DDW, p.Totals.Mix, p.Totals.PrimerF, p.Totals.PrimerR)

	fmt.Fprintln(tw, rule)
	fmt.Fprintf(tw, "TOTAL master mix\t= %.1f µL\n", p.Totals.Total)

	return tw.Flush()
}

func writeReagents(tw io.Writer, conc pcr.Concentration, ddw, mix, primerF, primerR float64) {
	fmt.Fprintf(tw, "  DDW\t= %.1f µL\n", ddw)
	fmt.Fprintf(tw, "  Mix %s\t= %.1f µL\n", conc, mix)
	fmt.Fprintf(tw, "  Primer F\t= %.1f µL\n", primerF)
	fmt.Fprintf(tw, "  Primer R\t= %.1f µL\n", primerR)
}
