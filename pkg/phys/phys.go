// pkg/phys/phys.go
// Copyright(c) 2023-2025 atcsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package phys implements the point-mass kinematic model for aircraft in
// the 2.5-D airspace: x/y position in nautical miles, altitude in feet,
// heading in compass degrees, and speed in knots. It is a simplified,
// deterministic approximation, not a flight-dynamics simulator: there is
// no lift, drag, or fuel model, just rate-limited easing of heading,
// speed, and altitude toward commanded targets.
package phys

import (
	"log/slog"

	"github.com/averyhw/atcsim/pkg/math"
)

// Rate limits used by UpdateAircraftPosition. Note that ClimbRatePerSecond
// is applied in feet per second: the original system documented the
// constant as feet per minute but multiplied it directly by deltaTime in
// seconds, and that behavior is kept for compatibility.
const (
	ClimbRatePerSecond = 1500 // ft/s
	TurnRatePerSecond  = 3    // deg/s
	AccelPerSecond     = 10   // kt/s
)

// AircraftState is the complete kinematic state of one aircraft plus the
// steady-state targets its live fields are driven toward. It is a plain
// value; the only code that mutates one is UpdateAircraftPosition and
// ApplyWindEffect, and then only the single state passed in. Identity, if
// needed, is the caller's slice index.
type AircraftState struct {
	X, Y     float64 // nm
	Altitude float64 // ft
	Heading  float64 // degrees, [0,360)
	Speed    float64 // kt; assumed non-negative, not enforced

	TargetHeading  float64
	TargetSpeed    float64
	TargetAltitude float64
}

func (ac *AircraftState) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("x", ac.X),
		slog.Float64("y", ac.Y),
		slog.Float64("altitude", ac.Altitude),
		slog.Float64("heading", ac.Heading),
		slog.Float64("speed", ac.Speed))
}

// Velocity returns the aircraft's current ground velocity in nm/s.
func (ac *AircraftState) Velocity() [2]float64 {
	return math.Scale2f(math.HeadingVector(ac.Heading), ac.Speed/3600)
}

// ease moves cur toward target by at most step, snapping exactly to the
// target when it is within one step. No overshoot at any point.
func ease(cur, target, step float64) float64 {
	diff := target - cur
	if math.Abs(diff) < step {
		return target
	}
	return cur + math.Copysign(step, diff)
}

// UpdateAircraftPosition advances the aircraft's state by deltaTime
// seconds: the position is displaced along the current heading at the
// current speed, and then altitude, heading, and speed are each eased
// toward their targets under the fixed rate limits. The three easing steps
// read only pre-step values, so they are independent and order-insensitive.
func UpdateAircraftPosition(ac *AircraftState, deltaTime float64) {
	// Convert speed from knots to nautical miles per second.
	speedNMPerSec := ac.Speed / 3600

	headingRad := math.Radians(ac.Heading)
	ac.X += math.Sin(headingRad) * speedNMPerSec * deltaTime
	ac.Y += math.Cos(headingRad) * speedNMPerSec * deltaTime

	if ac.TargetAltitude != ac.Altitude {
		ac.Altitude = ease(ac.Altitude, ac.TargetAltitude, ClimbRatePerSecond*deltaTime)
	}

	if ac.TargetHeading != ac.Heading {
		hdgDiff := math.HeadingSignedTurn(ac.Heading, ac.TargetHeading)
		turn := TurnRatePerSecond * deltaTime
		if math.Abs(hdgDiff) < turn {
			ac.Heading = ac.TargetHeading
		} else {
			ac.Heading = math.NormalizeHeading(ac.Heading + math.Copysign(turn, hdgDiff))
		}
	}

	if ac.TargetSpeed != ac.Speed {
		ac.Speed = ease(ac.Speed, ac.TargetSpeed, AccelPerSecond*deltaTime)
	}
}

// ApplyWindEffect adds deltaTime seconds of wind drift to the aircraft's
// position. Heading, speed, and altitude are unaffected; the integrator
// never calls this itself, so hosts that model wind apply it as a separate
// step after UpdateAircraftPosition.
func ApplyWindEffect(ac *AircraftState, windDirection, windSpeed, deltaTime float64) {
	wind := math.Scale2f(math.HeadingVector(windDirection), windSpeed/3600)
	ac.X += wind[0] * deltaTime
	ac.Y += wind[1] * deltaTime
}

// TurnRadius estimates the turn radius in nm for a standard-rate turn at
// the given speed in knots.
func TurnRadius(speed float64) float64 {
	return speed / 600
}

// ClimbRate returns an advisory climb/descent rate for the given
// altitudes, derated at higher altitude where climb performance falls off.
// It is not wired into UpdateAircraftPosition's own altitude step, which
// uses the flat ClimbRatePerSecond limit.
func ClimbRate(currentAltitude, targetAltitude, aircraftType float64) float64 {
	baseClimbRate := 1500.0

	if currentAltitude > 20000 {
		baseClimbRate *= 0.7
	} else if currentAltitude > 10000 {
		baseClimbRate *= 0.85
	}

	return baseClimbRate
}
