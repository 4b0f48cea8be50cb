package model

import "fmt"

// InvalidInputError reports a negative monetary value in a field where
// negative is not meaningful. It rejects the single computation; the engine
// itself stays up.
type InvalidInputError struct {
	Field string
	Value float64
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s must not be negative, got %.2f", e.Field, e.Value)
}
