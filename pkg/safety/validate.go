// pkg/safety/validate.go
// Copyright(c) 2023-2025 atcsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package safety implements defensive checks layered on top of the
// kinematic core: input validation for states and commands, sanity limits
// on commanded changes, state-change monitoring, and graded conflict
// advisories with avoidance suggestions. None of it mutates aircraft
// state; everything reports and lets the host decide.
package safety

import (
	"github.com/averyhw/atcsim/pkg/math"
	"github.com/averyhw/atcsim/pkg/phys"
)

// Operating limits for state validation. Aircraft outside these bounds
// are rejected by ValidState rather than fed into the simulation.
const (
	MaxRangeNM  = 100 // distance from airspace center
	MaxAltitude = 60000
	MinSpeed    = 100
	MaxSpeed    = 600
)

// ValidState reports whether every field of the aircraft state is finite
// and within operating limits.
func ValidState(ac phys.AircraftState) bool {
	return ValidPosition(ac.X, ac.Y) && ValidAltitude(ac.Altitude) &&
		ValidHeading(ac.Heading) && ValidSpeed(ac.Speed)
}

func ValidPosition(x, y float64) bool {
	return math.Distance(0, 0, x, y) <= MaxRangeNM && math.IsFinite(x) && math.IsFinite(y)
}

func ValidAltitude(altitude float64) bool {
	return altitude >= 0 && altitude <= MaxAltitude && math.IsFinite(altitude)
}

func ValidHeading(heading float64) bool {
	return heading >= 0 && heading < 360 && math.IsFinite(heading)
}

func ValidSpeed(speed float64) bool {
	return speed >= MinSpeed && speed <= MaxSpeed && math.IsFinite(speed)
}

// ValidCommand reports whether the given command value is acceptable for
// the command kind ("heading", "altitude", or "speed").
func ValidCommand(kind string, value float64) bool {
	switch kind {
	case "heading":
		return ValidHeading(value)
	case "altitude":
		return ValidAltitude(value)
	case "speed":
		return ValidSpeed(value)
	default:
		return false
	}
}

// AltitudeSafe reports whether the altitude is acceptable at the given
// position; minimums rise with distance from the field.
func AltitudeSafe(altitude, x, y float64) bool {
	distanceFromAirport := math.Distance(0, 0, x, y)

	if distanceFromAirport > 20 {
		return altitude >= 5000
	} else if distanceFromAirport > 10 {
		return altitude >= 3000
	}
	return altitude >= 0
}

// HeadingChangeSafe reports whether the commanded turn is within limits
// (any turn up to 180 degrees the short way around).
func HeadingChangeSafe(currentHeading, targetHeading float64) bool {
	return math.HeadingDifference(currentHeading, targetHeading) <= 180
}

// SpeedChangeSafe limits commanded speed changes to 150 kt.
func SpeedChangeSafe(currentSpeed, targetSpeed float64) bool {
	return math.Abs(targetSpeed-currentSpeed) <= 150
}

// AltitudeChangeSafe limits commanded altitude changes to 20,000 ft.
func AltitudeChangeSafe(currentAltitude, targetAltitude float64) bool {
	return math.Abs(targetAltitude-currentAltitude) <= 20000
}

// InValidAirspace reports whether the aircraft is within radar coverage
// (50 nm of the airspace center).
func InValidAirspace(ac phys.AircraftState) bool {
	return math.Distance(0, 0, ac.X, ac.Y) <= 50
}

// Sanitize clamps the value into [minVal, maxVal]; non-finite input maps
// to minVal.
func Sanitize(value, minVal, maxVal float64) float64 {
	if !math.IsFinite(value) {
		return minVal
	}
	return math.Clamp(value, minVal, maxVal)
}

// ValidSeparationStandards reports whether the separation minima are
// plausible: non-negative, finite, and no more than 10 nm / 5000 ft.
func ValidSeparationStandards(horizontalMin, verticalMin float64) bool {
	return horizontalMin >= 0 && horizontalMin <= 10 &&
		verticalMin >= 0 && verticalMin <= 5000 &&
		math.IsFinite(horizontalMin) && math.IsFinite(verticalMin)
}

// ConfigurationSafe flags speed/altitude combinations outside the normal
// envelope: too slow down low (approach stall risk) or too fast below
// 10,000 ft.
func ConfigurationSafe(ac phys.AircraftState) bool {
	if ac.Altitude < 5000 && ac.Speed < 140 {
		return false
	}
	if ac.Altitude < 10000 && ac.Speed > 300 {
		return false
	}
	return true
}
