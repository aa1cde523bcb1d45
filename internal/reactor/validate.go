package reactor

import (
	"errors"
	"math"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// Equation identifies one of the four volumetric mass-balance equations.
type Equation int

const (
	EqReactor1 Equation = iota
	EqReactor2
	EqReactor3
	EqOverall
)

var equationText = [...]string{
	EqReactor1: "Q01 + Q31 - Q12 = 0",
	EqReactor2: "Q12 - Q23 = 0",
	EqReactor3: "Q03 + Q23 - Q31 - Q33 = 0",
	EqOverall:  "Q01 + Q03 - Q33 = 0",
}

// Equations lists every balance equation in check order.
var Equations = []Equation{EqReactor1, EqReactor2, EqReactor3, EqOverall}

func (e Equation) String() string {
	if e < 0 || int(e) >= len(equationText) {
		return "unknown equation"
	}
	return equationText[e]
}

// Validation is the outcome of checking a flow-rate set.
type Validation struct {
	Residuals  [4]float64
	Violations []Equation
}

func (v Validation) OK() bool {
	return len(v.Violations) == 0
}

func (v Validation) Err() error {
	if v.OK() {
		return nil
	}
	return &ConstraintError{Violations: v.Violations}
}

// ValidateFlows evaluates all four balance residuals. A residual passes only
// when it is exactly zero.
func ValidateFlows(f FlowRates) Validation {
	v := Validation{
		Residuals: [4]float64{
			f.Q01 + f.Q31 - f.Q12,
			f.Q12 - f.Q23,
			f.Q03 + f.Q23 - f.Q31 - f.Q33,
			f.Q01 + f.Q03 - f.Q33,
		},
	}
	for _, eq := range Equations {
		if v.Residuals[eq] != 0.0 {
			v.Violations = append(v.Violations, eq)
		}
	}
	return v
}

var fieldLabels = map[string]string{
	"V1":     "V1",
	"V2":     "V2",
	"V3":     "V3",
	"TFinal": "time",
	"C1":     "C10",
	"C2":     "C20",
	"C3":     "C30",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("finite", isFinite); err != nil {
		panic(err)
	}
	return v
}

func isFinite(fl validator.FieldLevel) bool {
	f := fl.Field()
	if f.Kind() != reflect.Float64 && f.Kind() != reflect.Float32 {
		return false
	}
	x := f.Float()
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// CheckInputs verifies that every volume and the time horizon are positive
// and that every input is finite. All failing fields are reported; each
// wraps ErrInvalidInput.
func CheckInputs(p Params) error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		label, ok := fieldLabels[fe.StructField()]
		if !ok {
			label = fe.Field()
		}
		errs = append(errs, &InputError{Field: label, Value: floatValue(fe.Value()), Rule: fe.Tag()})
	}
	return errors.Join(errs...)
}

func floatValue(v any) float64 {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Float64 || rv.Kind() == reflect.Float32 {
		return rv.Float()
	}
	return 0
}

// Run checks inputs, validates flows and simulates with n points.
func Run(p Params, n int) (*Trajectory, error) {
	if err := CheckInputs(p); err != nil {
		return nil, err
	}
	if err := ValidateFlows(p.Flows).Err(); err != nil {
		return nil, err
	}
	return Simulate(p, n)
}
