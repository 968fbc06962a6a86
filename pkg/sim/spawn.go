// pkg/sim/spawn.go
// Copyright(c) 2023-2025 atcsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package sim

import (
	"fmt"

	"github.com/averyhw/atcsim/pkg/math"
	"github.com/averyhw/atcsim/pkg/phys"
	"github.com/averyhw/atcsim/pkg/rand"
)

var (
	airlines = []string{"AAL", "UAL", "DAL", "SWA", "JBU", "ASA", "SKW", "FFT", "NKS", "BAW"}

	aircraftTypes = []string{"B737", "A320", "B777", "A380", "CRJ", "E175"}

	// Arrivals check in at one of the usual crossing altitudes.
	spawnAltitudes = []float64{3000, 5000, 7000, 10000, 15000, 20000}
)

// AircraftSpawner generates random arrivals around the edge of the radar
// range, headed generally toward the field.
type AircraftSpawner struct {
	r             rand.Rand
	usedCallsigns map[string]interface{}
}

func NewAircraftSpawner(seed int64) *AircraftSpawner {
	s := &AircraftSpawner{
		r:             rand.New(),
		usedCallsigns: make(map[string]interface{}),
	}
	s.r.Seed(seed)
	return s
}

// Spawn returns a new aircraft on the 40-50 nm perimeter with a heading
// toward the center plus up to 30 degrees of variation, at a standard
// crossing altitude, with speed set by the altitude band. Targets start
// equal to the spawned values so the aircraft is in steady state until
// commanded.
func (s *AircraftSpawner) Spawn() Aircraft {
	angle := s.r.InRange(0, 360)
	distance := s.r.InRange(40, 50)

	v := math.HeadingVector(angle)
	x, y := distance*v[0], distance*v[1]

	heading := math.NormalizeHeading(math.OppositeHeading(angle) + s.r.InRange(-30, 30))

	altitude := rand.SampleSlice(&s.r, spawnAltitudes)

	var speed float64
	if altitude < 10000 {
		speed = float64(180 + s.r.Intn(71)) // 180-250 kt
	} else {
		speed = float64(250 + s.r.Intn(101)) // 250-350 kt
	}

	return Aircraft{
		Callsign: s.callsign(),
		Type:     rand.SampleSlice(&s.r, aircraftTypes),
		State: phys.AircraftState{
			X: x, Y: y,
			Altitude: altitude,
			Heading:  heading,
			Speed:    speed,

			TargetHeading:  heading,
			TargetSpeed:    speed,
			TargetAltitude: altitude,
		},
	}
}

// callsign returns an airline callsign not yet used this session.
func (s *AircraftSpawner) callsign() string {
	const maxAttempts = 100
	for i := 0; i < maxAttempts; i++ {
		cs := fmt.Sprintf("%s%d", rand.SampleSlice(&s.r, airlines), 100+s.r.Intn(9900))
		if _, ok := s.usedCallsigns[cs]; !ok {
			s.usedCallsigns[cs] = nil
			return cs
		}
	}
	return fmt.Sprintf("TEST%d", 1000+s.r.Intn(9000))
}

// Reset forgets previously-issued callsigns.
func (s *AircraftSpawner) Reset() {
	clear(s.usedCallsigns)
}
