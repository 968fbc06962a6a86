// pkg/safety/monitor.go
// Copyright(c) 2023-2025 atcsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package safety

import (
	"github.com/averyhw/atcsim/pkg/math"
	"github.com/averyhw/atcsim/pkg/phys"
	"github.com/averyhw/atcsim/pkg/util"
)

// StateChange is the delta between two observations of one aircraft. The
// heading change is the signed short-way difference.
type StateChange struct {
	HeadingChange  float64
	SpeedChange    float64
	AltitudeChange float64
}

func CalculateStateChange(previous, current phys.AircraftState) StateChange {
	return StateChange{
		HeadingChange:  math.HeadingSignedTurn(previous.Heading, current.Heading),
		SpeedChange:    current.Speed - previous.Speed,
		AltitudeChange: current.Altitude - previous.Altitude,
	}
}

// Significant reports whether the change is large enough to be worth
// reporting: more than 1 degree, 5 kt, or 100 ft.
func (c StateChange) Significant() bool {
	return math.Abs(c.HeadingChange) > 1 ||
		math.Abs(c.SpeedChange) > 5 ||
		math.Abs(c.AltitudeChange) > 100
}

// History holds a bounded window of recent observations of one aircraft
// for stability and trend queries. It is a monitoring aid, not a persisted
// record; old observations are discarded as new ones arrive.
type History struct {
	states *util.RingBuffer[phys.AircraftState]
}

func NewHistory(maxStates int) *History {
	return &History{states: util.NewRingBuffer[phys.AircraftState](maxStates)}
}

func (h *History) Add(ac phys.AircraftState) {
	h.states.Add(ac)
}

func (h *History) Latest() (phys.AircraftState, bool) {
	if n := h.states.Size(); n > 0 {
		return h.states.Get(n - 1), true
	}
	return phys.AircraftState{}, false
}

func (h *History) Previous() (phys.AircraftState, bool) {
	if n := h.states.Size(); n >= 2 {
		return h.states.Get(n - 2), true
	}
	return phys.AircraftState{}, false
}

// AverageSpeed returns the mean speed over the recorded window; ok is
// false when no observations have been recorded.
func (h *History) AverageSpeed() (float64, bool) {
	n := h.states.Size()
	if n == 0 {
		return 0, false
	}

	var sum float64
	for i := 0; i < n; i++ {
		sum += h.states.Get(i).Speed
	}
	return sum / float64(n), true
}

// Stable reports whether the two most recent observations differ by less
// than the threshold in heading and speed (and ten times the threshold in
// feet of altitude). With fewer than two observations the aircraft is
// considered stable.
func (h *History) Stable(threshold float64) bool {
	latest, ok := h.Latest()
	if !ok {
		return true
	}
	previous, ok := h.Previous()
	if !ok {
		return true
	}

	change := CalculateStateChange(previous, latest)
	return math.Abs(change.HeadingChange) < threshold &&
		math.Abs(change.SpeedChange) < threshold &&
		math.Abs(change.AltitudeChange) < threshold*10
}

// RateOfChange returns the per-second rates of heading, speed, and
// altitude change between two observations timeDelta seconds apart.
func RateOfChange(previous, current phys.AircraftState, timeDelta float64) (headingRate, speedRate, altitudeRate float64) {
	headingRate = math.HeadingSignedTurn(previous.Heading, current.Heading) / timeDelta
	speedRate = (current.Speed - previous.Speed) / timeDelta
	altitudeRate = (current.Altitude - previous.Altitude) / timeDelta
	return
}

// UnusualChange reports rates of change beyond what the kinematic model
// should ever produce: over 5 deg/s of turn, 20 kt/s of acceleration, or
// 50 ft/s of climb (3000 ft/min).
func UnusualChange(previous, current phys.AircraftState, timeDelta float64) bool {
	headingRate, speedRate, altitudeRate := RateOfChange(previous, current, timeDelta)

	const (
		maxTurnRate  = 5.0
		maxAccelRate = 20.0
		maxClimbRate = 3000.0 // ft/min
	)

	return math.Abs(headingRate) > maxTurnRate ||
		math.Abs(speedRate) > maxAccelRate ||
		math.Abs(altitudeRate) > maxClimbRate/60
}
