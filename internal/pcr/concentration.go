package pcr

import (
	"fmt"
	"strings"
)

// Concentration is the stock strength of the master mix. Its numeric value
// is the concentration factor, so dividing a reference dose by it scales
// the dispensed volume.
type Concentration int

const (
	// X2 is a 2X master-mix stock
	X2 Concentration = 2

	// X5 is a 5X master-mix stock
	X5 Concentration = 5
)

// Factor is the numeric strength multiplier of the stock, e.g. 5.0 for 5X.
func (c Concentration) Factor() float64 {
	return float64(c)
}

// String renders the strength the way it is printed on the reagent bottle,
// e.g. "2X".
func (c Concentration) String() string {
	return fmt.Sprintf("%dX", int(c))
}

// MarshalYAML writes the strength in its bottle form so config files
// round-trip through ParseConcentration.
func (c Concentration) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

func (c Concentration) valid() bool {
	return c == X2 || c == X5
}

// ParseConcentration reads a stock strength from user input. It accepts
// the bottle form ("2X", "5x") and the bare factor ("2", "5"); anything
// else fails with ErrInvalidInput.
func ParseConcentration(s string) (Concentration, error) {
	norm := strings.TrimSuffix(strings.ToUpper(strings.TrimSpace(s)), "X")
	switch norm {
	case "2":
		return X2, nil
	case "5":
		return X5, nil
	}
	return 0, &ErrInvalidInput{Field: "mix", Value: s, Message: "must be one of 2X, 5X"}
}
