// pkg/sim/spawn_test.go
// Copyright(c) 2023-2025 atcsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package sim

import (
	"slices"
	"testing"

	"github.com/averyhw/atcsim/pkg/math"
)

func TestSpawnBounds(t *testing.T) {
	s := NewAircraftSpawner(12345)

	for i := 0; i < 500; i++ {
		ac := s.Spawn()

		d := math.Distance(0, 0, ac.State.X, ac.State.Y)
		if d < 40 || d > 50 {
			t.Errorf("spawn %d: distance %f outside [40, 50]", i, d)
		}

		if ac.State.Heading < 0 || ac.State.Heading >= 360 {
			t.Errorf("spawn %d: heading %f not normalized", i, ac.State.Heading)
		}

		// Heading must be within 30 degrees of the bearing to the field.
		toField := math.Heading(ac.State.X, ac.State.Y, 0, 0)
		if diff := math.HeadingDifference(ac.State.Heading, toField); diff > 30.001 {
			t.Errorf("spawn %d: heading %f is %f degrees off the field bearing %f",
				i, ac.State.Heading, diff, toField)
		}

		if !slices.Contains(spawnAltitudes, ac.State.Altitude) {
			t.Errorf("spawn %d: altitude %f not a standard crossing altitude", i, ac.State.Altitude)
		}

		if ac.State.Altitude < 10000 {
			if ac.State.Speed < 180 || ac.State.Speed > 250 {
				t.Errorf("spawn %d: low altitude speed %f outside [180, 250]", i, ac.State.Speed)
			}
		} else {
			if ac.State.Speed < 250 || ac.State.Speed > 350 {
				t.Errorf("spawn %d: high altitude speed %f outside [250, 350]", i, ac.State.Speed)
			}
		}

		if ac.State.TargetHeading != ac.State.Heading ||
			ac.State.TargetSpeed != ac.State.Speed ||
			ac.State.TargetAltitude != ac.State.Altitude {
			t.Errorf("spawn %d: targets don't match spawned state: %+v", i, ac.State)
		}
	}
}

func TestSpawnCallsignsUnique(t *testing.T) {
	s := NewAircraftSpawner(777)

	seen := make(map[string]interface{})
	for i := 0; i < 200; i++ {
		ac := s.Spawn()
		if _, ok := seen[ac.Callsign]; ok {
			t.Errorf("duplicate callsign %s", ac.Callsign)
		}
		seen[ac.Callsign] = nil
	}
}

func TestSpawnDeterministic(t *testing.T) {
	a, b := NewAircraftSpawner(31337), NewAircraftSpawner(31337)
	for i := 0; i < 20; i++ {
		acA, acB := a.Spawn(), b.Spawn()
		if acA != acB {
			t.Errorf("spawn %d: %+v != %+v", i, acA, acB)
		}
	}
}
