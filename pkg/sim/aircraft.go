// pkg/sim/aircraft.go
// Copyright(c) 2023-2025 atcsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package sim

import (
	"log/slog"

	"github.com/averyhw/atcsim/pkg/phys"
)

// Aircraft is one simulated aircraft: its kinematic state plus the
// identity and bookkeeping the host layer needs. The kinematic core never
// sees anything but the embedded State.
type Aircraft struct {
	Callsign string
	Type     string // ICAO type designator, e.g. "B737"

	State phys.AircraftState

	InConflict bool
	Landed     bool
}

func (ac *Aircraft) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("callsign", ac.Callsign),
		slog.String("type", ac.Type),
		slog.Any("state", &ac.State))
}

// IsOnApproach reports whether the aircraft has been set up for an
// approach: heading for the field, descending, and slowed.
func (ac *Aircraft) IsOnApproach() bool {
	return ac.State.TargetAltitude <= approachAltitude && ac.State.TargetSpeed <= approachSpeed
}

const (
	approachAltitude = 3000 // ft
	approachSpeed    = 180  // kt
	landingAltitude  = 0
	landingSpeed     = 140
)
