package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/reactorsim/internal/reactor"
)

// Scenario is a YAML description of one simulation.
type Scenario struct {
	Name     string            `yaml:"name,omitempty"`
	Geometry reactor.Geometry  `yaml:"geometry"`
	Flows    reactor.FlowRates `yaml:"flows"`
	Feed     reactor.Feed      `yaml:"feed"`
	Initial  reactor.Initial   `yaml:"initial"`
	TFinal   float64           `yaml:"t_final"`
	Points   int               `yaml:"points,omitempty"`
}

func DefaultScenario() *Scenario {
	s := *Presets["balanced"]
	return &s
}

// FromParams wraps p in a scenario sampled at the default point count.
func FromParams(name string, p reactor.Params) *Scenario {
	return &Scenario{
		Name:     name,
		Geometry: p.Geometry,
		Flows:    p.Flows,
		Feed:     p.Feed,
		Initial:  p.Initial,
		TFinal:   p.Horizon.TFinal,
		Points:   reactor.DefaultPoints,
	}
}

func (s *Scenario) Params() reactor.Params {
	return reactor.Params{
		Geometry: s.Geometry,
		Flows:    s.Flows,
		Feed:     s.Feed,
		Initial:  s.Initial,
		Horizon:  reactor.Horizon{TFinal: s.TFinal},
	}
}

// PointCount returns Points, or fallback when the scenario leaves it unset.
func (s *Scenario) PointCount(fallback int) int {
	if s.Points > 0 {
		return s.Points
	}
	return fallback
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s := &Scenario{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return s, nil
}

func Save(path string, s *Scenario) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
