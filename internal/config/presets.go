package config

import (
	"sort"

	"github.com/san-kum/reactorsim/internal/reactor"
)

var Presets = map[string]*Scenario{
	"balanced": {
		Name:     "balanced",
		Geometry: reactor.Geometry{V1: 10, V2: 10, V3: 10},
		Flows:    reactor.FlowRates{Q01: 5, Q03: 5, Q12: 10, Q23: 10, Q31: 5, Q33: 10},
		Feed:     reactor.Feed{C01: 1, C03: 1},
		TFinal:   10, Points: reactor.DefaultPoints,
	},
	"washout": {
		Name:     "washout",
		Geometry: reactor.Geometry{V1: 10, V2: 10, V3: 10},
		Flows:    reactor.FlowRates{Q01: 2, Q03: 0, Q12: 10, Q23: 10, Q31: 8, Q33: 2},
		Initial:  reactor.Initial{C1: 1, C2: 1, C3: 1},
		TFinal:   20, Points: reactor.DefaultPoints,
	},
	"recycle": {
		Name:     "recycle",
		Geometry: reactor.Geometry{V1: 5, V2: 20, V3: 10},
		Flows:    reactor.FlowRates{Q01: 1, Q03: 1, Q12: 10, Q23: 10, Q31: 9, Q33: 2},
		Feed:     reactor.Feed{C01: 2, C03: 0.5},
		TFinal:   50, Points: reactor.DefaultPoints,
	},
	"stagnant": {
		Name:     "stagnant",
		Geometry: reactor.Geometry{V1: 1, V2: 1, V3: 1},
		Initial:  reactor.Initial{C1: 0.3, C2: 0.6, C3: 0.9},
		TFinal:   10, Points: reactor.DefaultPoints,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Scenario {
	s, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *s
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
