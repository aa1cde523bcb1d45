package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/reactorsim/internal/reactor"
)

func TestDefaultScenario(t *testing.T) {
	s := DefaultScenario()
	if s.Name != "balanced" {
		t.Errorf("expected balanced scenario, got %s", s.Name)
	}
	if s.TFinal <= 0 {
		t.Error("t_final should be positive")
	}
	if s.Points != reactor.DefaultPoints {
		t.Errorf("expected %d points, got %d", reactor.DefaultPoints, s.Points)
	}

	s.TFinal = 99
	if Presets["balanced"].TFinal == 99 {
		t.Error("DefaultScenario should not alias the preset")
	}
}

func TestPresetsAreValid(t *testing.T) {
	for _, name := range ListPresets() {
		p := GetPreset(name).Params()
		if err := reactor.CheckInputs(p); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
		if v := reactor.ValidateFlows(p.Flows); !v.OK() {
			t.Errorf("preset %s violates %v", name, v.Violations)
		}
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(presets))
	}
	for i := 1; i < len(presets); i++ {
		if presets[i-1] > presets[i] {
			t.Errorf("presets not sorted: %v", presets)
		}
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	want := GetPreset("recycle")

	if err := Save(path, want); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *got != *want {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestLoad_YAMLKeys(t *testing.T) {
	doc := `
name: custom
geometry: {v1: 2, v2: 3, v3: 4}
flows: {q01: 1, q03: 1, q12: 2, q23: 2, q31: 1, q33: 2}
feed: {c01: 0.5, c03: 0.25}
initial: {c1: 0.1, c2: 0.2, c3: 0.3}
t_final: 12
`
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	p := s.Params()
	if p.Geometry.V3 != 4 || p.Flows.Q31 != 1 || p.Feed.C03 != 0.25 || p.Initial.C2 != 0.2 {
		t.Errorf("unexpected params: %+v", p)
	}
	if p.Horizon.TFinal != 12 {
		t.Errorf("expected t_final 12, got %v", p.Horizon.TFinal)
	}
	if s.PointCount(reactor.DefaultPoints) != reactor.DefaultPoints {
		t.Errorf("expected fallback point count, got %d", s.PointCount(reactor.DefaultPoints))
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("geometry: [1, 2"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestFromParams(t *testing.T) {
	p := GetPreset("washout").Params()
	s := FromParams("copy", p)
	if s.Params() != p {
		t.Errorf("FromParams lost data: %+v", s)
	}
	if s.Points != reactor.DefaultPoints {
		t.Errorf("expected default points, got %d", s.Points)
	}
}

func TestLoadSettings(t *testing.T) {
	t.Setenv("REACTORSIM_DATA", "/tmp/reactors")
	t.Setenv("REACTORSIM_STORE", "sqlite")
	t.Setenv("REACTORSIM_POINTS", "250")

	s, err := LoadSettings()
	if err != nil {
		t.Fatalf("load settings failed: %v", err)
	}
	if s.DataDir != "/tmp/reactors" || s.Store != "sqlite" || s.Points != 250 {
		t.Errorf("unexpected settings: %+v", s)
	}
	if s.LogLevel != "info" || s.Workers != 4 {
		t.Errorf("defaults not applied: %+v", s)
	}
}

func TestLoadSettings_Invalid(t *testing.T) {
	t.Setenv("REACTORSIM_POINTS", "many")
	if _, err := LoadSettings(); err == nil {
		t.Error("expected error for non-numeric points")
	}
}
