// pkg/sim/scenario_test.go
// Copyright(c) 2023-2025 atcsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package sim

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestGetScenario(t *testing.T) {
	if s := GetScenario("3"); s.AircraftCount != 7 || s.Difficulty != 3 {
		t.Errorf("unexpected level 3 scenario: %+v", s)
	}
	// Unknown ids fall back to level 1.
	if s := GetScenario("bogus"); s.Difficulty != 1 {
		t.Errorf("expected level 1 fallback for unknown id, got %+v", s)
	}
}

func TestScenarioIdsSorted(t *testing.T) {
	ids := ScenarioIds()
	if len(ids) != 5 {
		t.Errorf("expected 5 built-in scenarios, got %d", len(ids))
	}
	if !slices.IsSorted(ids) {
		t.Errorf("scenario ids not sorted: %v", ids)
	}
}

func TestLoadScenario(t *testing.T) {
	dir := t.TempDir()

	write := func(name, contents string) string {
		fn := filepath.Join(dir, name)
		if err := os.WriteFile(fn, []byte(contents), 0o644); err != nil {
			t.Fatal(err)
		}
		return fn
	}

	fn := write("good.json",
		`{"name": "Custom", "description": "test", "aircraft_count": 4,
		  "weather": {"wind_direction": 90, "wind_speed": 15}}`)
	s, err := LoadScenario(fn)
	if err != nil {
		t.Fatalf("LoadScenario: %v", err)
	}
	if s.Name != "Custom" || s.AircraftCount != 4 || s.Weather.WindSpeed != 15 {
		t.Errorf("scenario fields not loaded: %+v", s)
	}
	if s.Difficulty != 1 {
		t.Errorf("expected difficulty to default to 1, got %d", s.Difficulty)
	}

	for _, bad := range []string{
		`{"aircraft_count": 4}`,         // no name
		`{"name": "x"}`,                 // no aircraft
		`{"name": "x", "aircraft_c: 4`, // malformed JSON
	} {
		fn := write("bad.json", bad)
		if _, err := LoadScenario(fn); err == nil {
			t.Errorf("expected error loading %q", bad)
		}
	}

	fn = write("empty.json", `{"name": "x"}`)
	if _, err := LoadScenario(fn); !errors.Is(err, ErrUnknownScenario) {
		t.Errorf("expected ErrUnknownScenario, got %v", err)
	}

	if _, err := LoadScenario(filepath.Join(dir, "missing.json")); err == nil {
		t.Errorf("expected error for missing file")
	}
}

func TestObjectives(t *testing.T) {
	for difficulty := 1; difficulty <= 5; difficulty++ {
		s := Scenario{Difficulty: difficulty}
		// Two base objectives plus one per difficulty level past the first.
		if n := len(s.Objectives()); n != 2+difficulty-1 {
			t.Errorf("difficulty %d: expected %d objectives, got %d", difficulty, 2+difficulty-1, n)
		}
	}
}

func TestFinalScore(t *testing.T) {
	for _, c := range []struct {
		difficulty int
		base, want int
	}{
		{1, 100, 100},
		{2, 100, 150},
		{3, 100, 200},
		{5, 100, 300},
		{3, -50, -100},
	} {
		s := Scenario{Difficulty: c.difficulty}
		if got := s.FinalScore(c.base); got != c.want {
			t.Errorf("difficulty %d base %d: expected %d, got %d",
				c.difficulty, c.base, c.want, got)
		}
	}
}
