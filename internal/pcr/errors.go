package pcr

import "fmt"

// ErrInvalidInput is returned for any calculator input that violates its
// constraints. Front ends match it with errors.As to separate constraint
// violations from environmental failures; the calculator itself never
// logs, exits, or returns a partial result alongside it.
type ErrInvalidInput struct {
	// Field names the input the constraint applies to, e.g. "samples"
	Field string

	// Value is the rejected value
	Value interface{}

	// Message says why the value was rejected
	Message string
}

func (err *ErrInvalidInput) Error() string {
	if err.Message == "" {
		return fmt.Sprintf("value %v is invalid for %q", err.Value, err.Field)
	}
	return fmt.Sprintf("value %v is invalid for %q; %s", err.Value, err.Field, err.Message)
}
