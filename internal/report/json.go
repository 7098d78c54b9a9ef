package report

import (
	"encoding/json"
	"io"

	"github.com/genolab/pcrmix/internal/pcr"
)

// Result is the stable JSON shape of one computation.
type Result struct {
	Samples       int             `json:"samples"`
	ExcessPercent float64         `json:"excess_percent"`
	Mix           string          `json:"mix"`
	Recipe        pcr.Recipe      `json:"recipe"`
	Totals        pcr.BatchTotals `json:"totals"`
}

// JSON writes the result as an indented JSON document.
func JSON(w io.Writer, p Params) error {
	out := Result{
		Samples:       p.Totals.Samples,
		ExcessPercent: p.Excess,
		Mix:           p.Mix.String(),
		Recipe:        p.Recipe,
		Totals:        p.Totals,
	}

	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')

	_, err = w.Write(b)
	return err
}
