package reactor

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"
)

func TestValidateFlows_Balanced(t *testing.T) {
	v := ValidateFlows(balancedParams().Flows)
	if !v.OK() {
		t.Fatalf("expected balanced flows to pass, got violations %v", v.Violations)
	}
	if v.Err() != nil {
		t.Errorf("Err() = %v, want nil", v.Err())
	}
	for i, r := range v.Residuals {
		if r != 0 {
			t.Errorf("residual %d = %v, want 0", i, r)
		}
	}
}

func TestValidateFlows_ZeroFlows(t *testing.T) {
	if v := ValidateFlows(FlowRates{}); !v.OK() {
		t.Errorf("zero flows should satisfy every equation, got %v", v.Violations)
	}
}

func TestValidateFlows_Perturbed(t *testing.T) {
	tests := []struct {
		name    string
		perturb func(*FlowRates)
		want    []Equation
	}{
		{"Q01", func(f *FlowRates) { f.Q01 += 1 }, []Equation{EqReactor1, EqOverall}},
		{"Q03", func(f *FlowRates) { f.Q03 += 1 }, []Equation{EqReactor3, EqOverall}},
		{"Q12", func(f *FlowRates) { f.Q12 += 1 }, []Equation{EqReactor1, EqReactor2}},
		{"Q23", func(f *FlowRates) { f.Q23 -= 2 }, []Equation{EqReactor2, EqReactor3}},
		{"Q31", func(f *FlowRates) { f.Q31 += 0.5 }, []Equation{EqReactor1, EqReactor3}},
		{"Q33", func(f *FlowRates) { f.Q33 += 3 }, []Equation{EqReactor3, EqOverall}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := balancedParams().Flows
			tt.perturb(&f)

			v := ValidateFlows(f)
			if v.OK() {
				t.Fatal("expected validation to fail")
			}
			if !reflect.DeepEqual(v.Violations, tt.want) {
				t.Errorf("violations = %v, want %v", v.Violations, tt.want)
			}

			err := v.Err()
			if !errors.Is(err, ErrConstraintViolation) {
				t.Errorf("expected ErrConstraintViolation, got %v", err)
			}
			var ce *ConstraintError
			if !errors.As(err, &ce) || len(ce.Violations) != len(tt.want) {
				t.Errorf("expected ConstraintError with %d violations, got %v", len(tt.want), err)
			}
		})
	}
}

func TestValidateFlows_AllFourReported(t *testing.T) {
	f := FlowRates{Q01: 1, Q03: 2, Q12: 3, Q23: 4, Q31: 5, Q33: 6}
	v := ValidateFlows(f)
	if len(v.Violations) != 4 {
		t.Fatalf("expected all four equations to fail, got %v", v.Violations)
	}
	msg := v.Err().Error()
	for _, eq := range Equations {
		if !strings.Contains(msg, eq.String()) {
			t.Errorf("error %q does not mention %q", msg, eq)
		}
	}
}

func TestValidateFlows_ExactComparison(t *testing.T) {
	// 0.1 + 0.2 != 0.3 in binary floating point, so this set fails even
	// though it balances on paper.
	f := FlowRates{Q01: 0.1, Q31: 0.2, Q12: 0.3, Q23: 0.3, Q03: 0.1, Q33: 0.2}
	v := ValidateFlows(f)
	if v.OK() {
		t.Fatal("expected exact comparison to reject representation error")
	}
	if v.Violations[0] != EqReactor1 {
		t.Errorf("first violation = %v, want %v", v.Violations[0], EqReactor1)
	}
}

func TestEquationString(t *testing.T) {
	if got := EqReactor2.String(); got != "Q12 - Q23 = 0" {
		t.Errorf("EqReactor2.String() = %q", got)
	}
	if got := Equation(9).String(); got != "unknown equation" {
		t.Errorf("Equation(9).String() = %q", got)
	}
}

func TestCheckInputs(t *testing.T) {
	const positive = "has to be greater than zero"
	const finite = "has to be a finite number"

	tests := []struct {
		name   string
		mutate func(*Params)
		fields []string
		msg    string
	}{
		{"valid", func(p *Params) {}, nil, ""},
		{"zero V1", func(p *Params) { p.Geometry.V1 = 0 }, []string{"V1"}, positive},
		{"negative V3", func(p *Params) { p.Geometry.V3 = -2 }, []string{"V3"}, positive},
		{"zero horizon", func(p *Params) { p.Horizon.TFinal = 0 }, []string{"time"}, positive},
		{"NaN V2", func(p *Params) { p.Geometry.V2 = math.NaN() }, []string{"V2"}, positive},
		{"infinite V1", func(p *Params) { p.Geometry.V1 = math.Inf(1) }, []string{"V1"}, finite},
		{"infinite horizon", func(p *Params) { p.Horizon.TFinal = math.Inf(1) }, []string{"time"}, finite},
		{"negative infinite V3", func(p *Params) { p.Geometry.V3 = math.Inf(-1) }, []string{"V3"}, positive},
		{"infinite flow", func(p *Params) { p.Flows.Q12 = math.Inf(1) }, []string{"Q12"}, finite},
		{"NaN feed", func(p *Params) { p.Feed.C03 = math.NaN() }, []string{"C03"}, finite},
		{"infinite initial", func(p *Params) { p.Initial.C2 = math.Inf(-1) }, []string{"C20"}, finite},
		{"several", func(p *Params) {
			p.Geometry.V1 = -1
			p.Geometry.V2 = 0
			p.Horizon.TFinal = -5
		}, []string{"V1", "V2", "time"}, positive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := balancedParams()
			tt.mutate(&p)

			err := CheckInputs(p)
			if len(tt.fields) == 0 {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			for _, field := range tt.fields {
				if !strings.Contains(err.Error(), field+" "+tt.msg) {
					t.Errorf("error %q does not mention %s", err, field)
				}
			}
		})
	}
}

func TestSimulate_RejectsInfiniteHorizon(t *testing.T) {
	p := balancedParams()
	p.Horizon.TFinal = math.Inf(1)

	if _, err := Simulate(p, 3); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := Run(p, 3); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Run: expected ErrInvalidInput, got %v", err)
	}
}

func TestCheckInputs_InputErrorValue(t *testing.T) {
	p := balancedParams()
	p.Geometry.V1 = -4

	var ie *InputError
	if !errors.As(CheckInputs(p), &ie) {
		t.Fatal("expected an InputError")
	}
	if ie.Field != "V1" || ie.Value != -4 || ie.Rule != "gt" {
		t.Errorf("got %+v, want field V1 value -4 rule gt", ie)
	}
}

func TestRun(t *testing.T) {
	p := balancedParams()
	tr, err := Run(p, DefaultPoints)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if tr.Len() != DefaultPoints {
		t.Errorf("expected %d samples, got %d", DefaultPoints, tr.Len())
	}

	p.Flows.Q12 = 11
	if _, err := Run(p, DefaultPoints); !errors.Is(err, ErrConstraintViolation) {
		t.Errorf("expected ErrConstraintViolation, got %v", err)
	}

	p = balancedParams()
	p.Geometry.V2 = 0
	if _, err := Run(p, DefaultPoints); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}
