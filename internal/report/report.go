// Package report renders a computed master-mix recipe onto a writer,
// either as the bench-side text table or as JSON for scripting.
package report

import (
	"io"

	"github.com/genolab/pcrmix/internal/pcr"
)

// Formats accepted by Render.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Params couples one computed result with the inputs that produced it.
type Params struct {
	// Excess is the percent excess the batch was prepared with
	Excess float64

	// Mix is the stock strength the recipe doses
	Mix pcr.Concentration

	Recipe pcr.Recipe
	Totals pcr.BatchTotals
}

// Render writes the result in the requested format.
func Render(w io.Writer, format string, p Params) error {
	switch format {
	case FormatText:
		return Text(w, p)
	case FormatJSON:
		return JSON(w, p)
	}
	return &pcr.ErrInvalidInput{Field: "output", Value: format, Message: "must be one of text, json"}
}
