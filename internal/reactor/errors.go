package reactor

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors for reactor inputs and simulation.
var (
	// ErrInvalidInput indicates a non-positive volume or time horizon, or a
	// non-finite input.
	ErrInvalidInput = errors.New("reactor: invalid input")

	// ErrConstraintViolation indicates flows that break a mass-balance equation.
	ErrConstraintViolation = errors.New("reactor: flow rates violate mass balance")

	// ErrTooFewPoints indicates a point count below two, for which dt is undefined.
	ErrTooFewPoints = errors.New("reactor: at least two points are required")
)

// InputError names the field that failed a check. Rule is the failed
// validation tag: "gt" for positivity or "finite".
type InputError struct {
	Field string
	Value float64
	Rule  string
}

func (e *InputError) Error() string {
	if e.Rule == "finite" {
		return fmt.Sprintf("%s has to be a finite number, got %g", e.Field, e.Value)
	}
	return fmt.Sprintf("%s has to be greater than zero, got %g", e.Field, e.Value)
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

// ConstraintError lists every violated balance equation.
type ConstraintError struct {
	Violations []Equation
}

func (e *ConstraintError) Error() string {
	names := make([]string, len(e.Violations))
	for i, eq := range e.Violations {
		names[i] = eq.String()
	}
	return fmt.Sprintf("flow rates do not satisfy: %s", strings.Join(names, "; "))
}

func (e *ConstraintError) Unwrap() error {
	return ErrConstraintViolation
}
