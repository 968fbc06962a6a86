// pkg/phys/phys_test.go
// Copyright(c) 2023-2025 atcsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package phys

import (
	"testing"

	"github.com/averyhw/atcsim/pkg/math"
)

func TestStraightLineMotion(t *testing.T) {
	// Aircraft flying north at 360 kt covers 0.1 nm/s; with all targets
	// equal to the current values, only x and y may change.
	ac := AircraftState{
		X: 0, Y: 0, Altitude: 10000, Heading: 0, Speed: 360,
		TargetHeading: 0, TargetSpeed: 360, TargetAltitude: 10000,
	}

	UpdateAircraftPosition(&ac, 10)

	if math.Abs(ac.Y-1) > 1e-9 {
		t.Errorf("y = %v, expected 1 nm after 10s at 360 kt", ac.Y)
	}
	if math.Abs(ac.X) > 1e-9 {
		t.Errorf("x = %v, expected 0 for heading 0", ac.X)
	}
	if ac.Altitude != 10000 || ac.Heading != 0 || ac.Speed != 360 {
		t.Errorf("altitude/heading/speed changed in straight-line motion: %+v", ac)
	}
}

func TestHeadingEasing(t *testing.T) {
	ac := AircraftState{Heading: 0, TargetHeading: 90, TargetSpeed: 0, TargetAltitude: 0}

	UpdateAircraftPosition(&ac, 1)
	if ac.Heading != 3 {
		t.Errorf("heading = %v after 1s, expected 3 (3 deg/s turn rate)", ac.Heading)
	}

	// 90 degrees at 3 deg/s is 30 steps; check exact convergence with no
	// overshoot along the way.
	for i := 0; i < 29; i++ {
		prev := ac.Heading
		UpdateAircraftPosition(&ac, 1)
		if ac.Heading < prev && ac.Heading != ac.TargetHeading {
			t.Errorf("step %d: heading went backwards: %v -> %v", i, prev, ac.Heading)
		}
		if ac.Heading > 90 {
			t.Errorf("step %d: heading %v overshot target 90", i, ac.Heading)
		}
	}
	if ac.Heading != 90 {
		t.Errorf("heading = %v after 30s, expected exactly 90", ac.Heading)
	}
}

func TestHeadingEasingWrapsShortWay(t *testing.T) {
	// 350 -> 10 should turn right through north, not the long way around.
	ac := AircraftState{Heading: 350, TargetHeading: 10}

	UpdateAircraftPosition(&ac, 1)
	if ac.Heading != 353 {
		t.Errorf("heading = %v, expected 353", ac.Heading)
	}

	for i := 0; i < 10; i++ {
		UpdateAircraftPosition(&ac, 1)
		if ac.Heading < 0 || ac.Heading >= 360 {
			t.Errorf("heading %v out of [0,360)", ac.Heading)
		}
	}
	if ac.Heading != 10 {
		t.Errorf("heading = %v after turn through north, expected exactly 10", ac.Heading)
	}
}

func TestAltitudeEasing(t *testing.T) {
	// The altitude rate limit is applied per second of deltaTime; 1500
	// ft/s is intentional (longstanding behavior, kept for compatibility
	// even though it is far faster than any real climb).
	ac := AircraftState{Altitude: 10000, TargetAltitude: 14500}

	UpdateAircraftPosition(&ac, 1)
	if ac.Altitude != 11500 {
		t.Errorf("altitude = %v after 1s, expected 11500 (1500 ft per second)", ac.Altitude)
	}

	UpdateAircraftPosition(&ac, 1)
	UpdateAircraftPosition(&ac, 1)
	if ac.Altitude != 14500 {
		t.Errorf("altitude = %v, expected exact snap to 14500", ac.Altitude)
	}

	// Descent, with a partial final step.
	ac = AircraftState{Altitude: 5000, TargetAltitude: 3800}
	UpdateAircraftPosition(&ac, 1)
	if ac.Altitude != 3800 {
		t.Errorf("altitude = %v, expected exact snap to 3800 within one step", ac.Altitude)
	}
}

func TestSpeedEasing(t *testing.T) {
	ac := AircraftState{Speed: 250, TargetSpeed: 210}

	UpdateAircraftPosition(&ac, 1)
	if ac.Speed != 240 {
		t.Errorf("speed = %v after 1s, expected 240 (10 kt/s)", ac.Speed)
	}

	for i := 0; i < 10; i++ {
		UpdateAircraftPosition(&ac, 1)
		if ac.Speed < 210 {
			t.Errorf("speed %v overshot target 210", ac.Speed)
		}
	}
	if ac.Speed != 210 {
		t.Errorf("speed = %v, expected exactly 210", ac.Speed)
	}
}

func TestConvergenceWithinExpectedSteps(t *testing.T) {
	// With fixed targets and 1s steps, all three fields must converge
	// exactly within ceil(gap/rate) steps.
	ac := AircraftState{
		Heading: 40, Speed: 300, Altitude: 20000,
		TargetHeading: 220, TargetSpeed: 180, TargetAltitude: 8000,
	}

	// Gaps: 180 deg / 3 = 60 steps, 120 kt / 10 = 12, 12000 ft / 1500 = 8.
	for i := 0; i < 60; i++ {
		UpdateAircraftPosition(&ac, 1)
	}
	if ac.Heading != 220 || ac.Speed != 180 || ac.Altitude != 8000 {
		t.Errorf("state did not converge exactly: %+v", ac)
	}
}

func TestApplyWindEffect(t *testing.T) {
	ac := AircraftState{X: 1, Y: 2, Altitude: 5000, Heading: 45, Speed: 200}
	before := ac

	// 36 kt wind from due-east vector (blowing toward 90) for 100s drifts
	// 1 nm east.
	ApplyWindEffect(&ac, 90, 36, 100)

	if math.Abs(ac.X-2) > 1e-9 || math.Abs(ac.Y-2) > 1e-9 {
		t.Errorf("wind drift moved aircraft to (%v, %v), expected (2, 2)", ac.X, ac.Y)
	}
	if ac.Heading != before.Heading || ac.Speed != before.Speed || ac.Altitude != before.Altitude {
		t.Errorf("wind changed non-position state: %+v", ac)
	}
}

func TestTurnRadius(t *testing.T) {
	if r := TurnRadius(300); r != 0.5 {
		t.Errorf("TurnRadius(300) = %v, expected 0.5", r)
	}
}

func TestClimbRateDerate(t *testing.T) {
	cases := []struct{ alt, want float64 }{
		{5000, 1500},
		{15000, 1275}, // 0.85 above 10,000
		{25000, 1050}, // 0.70 above 20,000
	}
	for _, c := range cases {
		if got := ClimbRate(c.alt, 30000, 0); got != c.want {
			t.Errorf("ClimbRate at %v ft = %v, expected %v", c.alt, got, c.want)
		}
	}
}

func TestVelocity(t *testing.T) {
	ac := AircraftState{Heading: 90, Speed: 360}
	v := ac.Velocity()
	if math.Abs(v[0]-0.1) > 1e-9 || math.Abs(v[1]) > 1e-9 {
		t.Errorf("Velocity = %v, expected (0.1, 0)", v)
	}
}
