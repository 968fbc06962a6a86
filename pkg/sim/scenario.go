// pkg/sim/scenario.go
// Copyright(c) 2023-2025 atcsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package sim

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/averyhw/atcsim/pkg/util"
)

// Scenario configures one simulation session: how much traffic, how hard,
// and what the air is doing.
type Scenario struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	AircraftCount int     `json:"aircraft_count"`
	Difficulty    int     `json:"difficulty"`
	Weather       Weather `json:"weather"`
}

// Weather is the (static) environment for a scenario. Wind is applied as
// drift to every aircraft each tick when WindSpeed is nonzero.
type Weather struct {
	WindDirection float64 `json:"wind_direction"` // degrees, direction of drift
	WindSpeed     float64 `json:"wind_speed"`     // kt
	Visibility    float64 `json:"visibility"`     // sm
	Altimeter     float64 `json:"altimeter"`      // inHg
}

var defaultWeather = Weather{
	WindDirection: 270,
	WindSpeed:     10,
	Visibility:    10,
	Altimeter:     29.92,
}

// Built-in scenarios, keyed by id. These mirror the standard training
// progression from two or three aircraft up to a saturated sector.
var builtinScenarios = map[string]Scenario{
	"1": {
		Name:          "Level 1 - Basic Training",
		Description:   "Simple scenario with 2-3 aircraft",
		AircraftCount: 3,
		Difficulty:    1,
		Weather:       defaultWeather,
	},
	"2": {
		Name:          "Level 2 - Moderate Traffic",
		Description:   "Moderate traffic with 4-5 aircraft",
		AircraftCount: 5,
		Difficulty:    2,
		Weather:       defaultWeather,
	},
	"3": {
		Name:          "Level 3 - Busy Airspace",
		Description:   "Busy airspace with 6-8 aircraft",
		AircraftCount: 7,
		Difficulty:    3,
		Weather:       defaultWeather,
	},
	"4": {
		Name:          "Level 4 - Complex Operations",
		Description:   "Complex operations with 8-10 aircraft",
		AircraftCount: 9,
		Difficulty:    4,
		Weather:       defaultWeather,
	},
	"5": {
		Name:          "Level 5 - Emergency Scenarios",
		Description:   "High-stress emergency situations",
		AircraftCount: 10,
		Difficulty:    5,
		Weather:       defaultWeather,
	},
}

// GetScenario returns the built-in scenario with the given id, falling
// back to level 1 for unknown ids.
func GetScenario(id string) Scenario {
	if s, ok := builtinScenarios[id]; ok {
		return s
	}
	return builtinScenarios["1"]
}

// ScenarioIds returns the built-in scenario ids, sorted.
func ScenarioIds() []string {
	return util.SortedMapKeys(builtinScenarios)
}

// LoadScenario reads a scenario definition from a JSON file.
func LoadScenario(filename string) (Scenario, error) {
	var s Scenario

	b, err := os.ReadFile(filename)
	if err != nil {
		return s, err
	}
	if err := json.Unmarshal(b, &s); err != nil {
		return s, fmt.Errorf("%s: %w", filename, err)
	}

	if s.Name == "" {
		return s, fmt.Errorf("%s: scenario has no name: %w", filename, ErrUnknownScenario)
	}
	if s.AircraftCount <= 0 {
		return s, fmt.Errorf("%s: scenario has no aircraft: %w", filename, ErrUnknownScenario)
	}
	if s.Difficulty == 0 {
		s.Difficulty = 1
	}

	return s, nil
}

// Objectives describes what the controller is being graded on at this
// scenario's difficulty.
func (s Scenario) Objectives() []string {
	objectives := []string{
		"Maintain safe separation between all aircraft",
		"Sequence aircraft for landing efficiently",
	}

	if s.Difficulty >= 2 {
		objectives = append(objectives, "Handle moderate traffic density")
	}
	if s.Difficulty >= 3 {
		objectives = append(objectives, "Manage complex approach patterns")
	}
	if s.Difficulty >= 4 {
		objectives = append(objectives, "Coordinate multiple runway operations")
	}
	if s.Difficulty >= 5 {
		objectives = append(objectives, "Handle emergency situations")
	}

	return objectives
}

// FinalScore applies the difficulty multiplier to a base score.
func (s Scenario) FinalScore(base int) int {
	multiplier := 1 + float64(s.Difficulty-1)*0.5
	return int(float64(base) * multiplier)
}
