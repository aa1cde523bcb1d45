package reactor

// DefaultPoints is the number of samples in a trajectory unless the caller
// asks for another count.
const DefaultPoints = 100

// Geometry holds the three reactor volumes.
type Geometry struct {
	V1 float64 `yaml:"v1" json:"v1" validate:"gt=0,finite"`
	V2 float64 `yaml:"v2" json:"v2" validate:"gt=0,finite"`
	V3 float64 `yaml:"v3" json:"v3" validate:"gt=0,finite"`
}

// FlowRates holds the six directed volumetric flows. Qxy flows from x into y;
// 0 denotes an external feed, Q33 is the outlet of reactor 3.
type FlowRates struct {
	Q01 float64 `yaml:"q01" json:"q01" validate:"finite"`
	Q03 float64 `yaml:"q03" json:"q03" validate:"finite"`
	Q12 float64 `yaml:"q12" json:"q12" validate:"finite"`
	Q23 float64 `yaml:"q23" json:"q23" validate:"finite"`
	Q31 float64 `yaml:"q31" json:"q31" validate:"finite"`
	Q33 float64 `yaml:"q33" json:"q33" validate:"finite"`
}

// Feed holds the concentrations of the two external feed streams.
type Feed struct {
	C01 float64 `yaml:"c01" json:"c01" validate:"finite"`
	C03 float64 `yaml:"c03" json:"c03" validate:"finite"`
}

// Initial holds the reactor concentrations at t=0.
type Initial struct {
	C1 float64 `yaml:"c1" json:"c1" validate:"finite"`
	C2 float64 `yaml:"c2" json:"c2" validate:"finite"`
	C3 float64 `yaml:"c3" json:"c3" validate:"finite"`
}

type Horizon struct {
	TFinal float64 `yaml:"t_final" json:"t_final" validate:"gt=0,finite"`
}

// Params is the complete input bundle for one simulation.
type Params struct {
	Geometry Geometry  `yaml:"geometry" json:"geometry"`
	Flows    FlowRates `yaml:"flows" json:"flows"`
	Feed     Feed      `yaml:"feed" json:"feed"`
	Initial  Initial   `yaml:"initial" json:"initial"`
	Horizon  Horizon   `yaml:"horizon" json:"horizon"`
}

// Step returns the uniform time step for n samples.
func (p Params) Step(n int) float64 {
	return p.Horizon.TFinal / float64(n-1)
}

type Sample struct {
	T  float64 `json:"t"`
	C1 float64 `json:"c1"`
	C2 float64 `json:"c2"`
	C3 float64 `json:"c3"`
}

// Trajectory is the output of one simulation run. The four slices share the
// same length and index.
type Trajectory struct {
	Times []float64
	C1    []float64
	C2    []float64
	C3    []float64
}

func newTrajectory(n int) *Trajectory {
	return &Trajectory{
		Times: make([]float64, n),
		C1:    make([]float64, n),
		C2:    make([]float64, n),
		C3:    make([]float64, n),
	}
}

func (t *Trajectory) Len() int {
	return len(t.Times)
}

func (t *Trajectory) At(i int) Sample {
	return Sample{T: t.Times[i], C1: t.C1[i], C2: t.C2[i], C3: t.C3[i]}
}

func (t *Trajectory) Final() Sample {
	return t.At(t.Len() - 1)
}

func (t *Trajectory) Samples() []Sample {
	out := make([]Sample, t.Len())
	for i := range out {
		out[i] = t.At(i)
	}
	return out
}

// Series returns the three concentration series in reactor order.
func (t *Trajectory) Series() [][]float64 {
	return [][]float64{t.C1, t.C2, t.C3}
}
