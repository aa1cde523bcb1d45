package reactor

import "strings"

// FieldNames lists every scalar input in entry order.
var FieldNames = []string{
	"C01", "C03", "C10", "C20", "C30", "tf",
	"V1", "V2", "V3",
	"Q01", "Q03", "Q12", "Q23", "Q31", "Q33",
}

// Field returns a pointer to the named input. Names match FieldNames
// case-insensitively; "t_final" is accepted for tf.
func (p *Params) Field(name string) (*float64, bool) {
	switch strings.ToUpper(name) {
	case "C01":
		return &p.Feed.C01, true
	case "C03":
		return &p.Feed.C03, true
	case "C10":
		return &p.Initial.C1, true
	case "C20":
		return &p.Initial.C2, true
	case "C30":
		return &p.Initial.C3, true
	case "TF", "T_FINAL":
		return &p.Horizon.TFinal, true
	case "V1":
		return &p.Geometry.V1, true
	case "V2":
		return &p.Geometry.V2, true
	case "V3":
		return &p.Geometry.V3, true
	case "Q01":
		return &p.Flows.Q01, true
	case "Q03":
		return &p.Flows.Q03, true
	case "Q12":
		return &p.Flows.Q12, true
	case "Q23":
		return &p.Flows.Q23, true
	case "Q31":
		return &p.Flows.Q31, true
	case "Q33":
		return &p.Flows.Q33, true
	}
	return nil, false
}
