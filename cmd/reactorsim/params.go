package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/san-kum/reactorsim/internal/config"
	"github.com/san-kum/reactorsim/internal/reactor"
)

var paramUsage = map[string]string{
	"C01": "feed concentration into reactor 1",
	"C03": "feed concentration into reactor 3",
	"C10": "initial concentration in reactor 1",
	"C20": "initial concentration in reactor 2",
	"C30": "initial concentration in reactor 3",
	"tf":  "final time",
	"V1":  "volume of reactor 1",
	"V2":  "volume of reactor 2",
	"V3":  "volume of reactor 3",
	"Q01": "feed flow into reactor 1",
	"Q03": "feed flow into reactor 3",
	"Q12": "flow from reactor 1 to 2",
	"Q23": "flow from reactor 2 to 3",
	"Q31": "recycle flow from reactor 3 to 1",
	"Q33": "outflow from reactor 3",
}

func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "scenario file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "start from a built-in scenario")
	cmd.Flags().IntVar(&recordNum, "record", 0, "start from saved record n (1-based)")
	cmd.MarkFlagsMutuallyExclusive("config", "preset", "record")
}

func addParamFlags(cmd *cobra.Command) {
	for _, name := range reactor.FieldNames {
		cmd.Flags().Float64(strings.ToLower(name), 0, paramUsage[name])
	}
}

// resolveParams picks the base scenario from --config, --preset or
// --record (balanced preset otherwise) and applies any per-field flags on
// top of it.
func resolveParams(cmd *cobra.Command) (reactor.Params, int, error) {
	sc, err := baseScenario()
	if err != nil {
		return reactor.Params{}, 0, err
	}

	p := sc.Params()
	for _, name := range reactor.FieldNames {
		flag := strings.ToLower(name)
		if !cmd.Flags().Changed(flag) {
			continue
		}
		v, err := cmd.Flags().GetFloat64(flag)
		if err != nil {
			return reactor.Params{}, 0, err
		}
		ptr, _ := p.Field(name)
		*ptr = v
	}
	return p, pointCount(sc), nil
}

func baseScenario() (*config.Scenario, error) {
	switch {
	case configFile != "":
		sc, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		return sc, nil
	case preset != "":
		sc := config.GetPreset(preset)
		if sc == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		return sc, nil
	case recordNum != 0:
		st, err := openStore()
		if err != nil {
			return nil, err
		}
		defer st.Close()
		rec, err := st.Get(recordNum - 1)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", recordNum, err)
		}
		sc := config.FromParams(fmt.Sprintf("record-%d", recordNum), rec.Params())
		sc.Points = 0
		return sc, nil
	}
	return config.DefaultScenario(), nil
}

// pointCount prefers --points, then the scenario, then the environment.
func pointCount(sc *config.Scenario) int {
	if points > 0 {
		return points
	}
	if sc != nil {
		return sc.PointCount(app.settings.Points)
	}
	return app.settings.Points
}
