package gravity

import "errors"

// Validation errors for point mass parameters. Evaluation itself never
// errors; singularities surface as non-finite floats.
var (
	// ErrMassNotNumber indicates a mass that is not a finite number.
	ErrMassNotNumber = errors.New("gravity: mass must be a finite number")

	// ErrLocationShape indicates a location with other than 3 components.
	ErrLocationShape = errors.New("gravity: location must have exactly 3 components")

	// ErrLocationNotNumber indicates non-numeric location input.
	ErrLocationNotNumber = errors.New("gravity: location components must be numbers")
)
