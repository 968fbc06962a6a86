// pkg/sim/commands.go
// Copyright(c) 2023-2025 atcsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package sim

import (
	"fmt"
	"log/slog"

	"github.com/averyhw/atcsim/pkg/math"
	"github.com/averyhw/atcsim/pkg/safety"
)

// headingToField is the bearing from the aircraft to the field at the
// airspace origin.
func headingToField(ac *Aircraft) float64 {
	return math.Heading(ac.State.X, ac.State.Y, 0, 0)
}

// AssignHeading sets the aircraft's target heading; it will turn the
// short way around at the standard rate.
func (s *Sim) AssignHeading(callsign string, heading float64) error {
	ac := s.GetAircraft(callsign)
	if ac == nil {
		return ErrNoAircraftForCallsign
	}
	if !safety.ValidCommand("heading", heading) {
		return ErrInvalidHeading
	}
	if !safety.HeadingChangeSafe(ac.State.Heading, heading) {
		return ErrUnsafeCommand
	}

	ac.State.TargetHeading = heading
	s.commandIssued(ac, fmt.Sprintf("fly heading %03.0f", heading))
	return nil
}

// AssignAltitude sets the aircraft's target altitude.
func (s *Sim) AssignAltitude(callsign string, altitude float64) error {
	ac := s.GetAircraft(callsign)
	if ac == nil {
		return ErrNoAircraftForCallsign
	}
	if !safety.ValidCommand("altitude", altitude) {
		return ErrInvalidAltitude
	}
	if !safety.AltitudeChangeSafe(ac.State.Altitude, altitude) {
		return ErrUnsafeCommand
	}

	verb := "descend and maintain"
	if altitude > ac.State.Altitude {
		verb = "climb and maintain"
	}
	ac.State.TargetAltitude = altitude
	s.commandIssued(ac, fmt.Sprintf("%s %.0f", verb, altitude))
	return nil
}

// AssignSpeed sets the aircraft's target speed.
func (s *Sim) AssignSpeed(callsign string, speed float64) error {
	ac := s.GetAircraft(callsign)
	if ac == nil {
		return ErrNoAircraftForCallsign
	}
	if !safety.ValidCommand("speed", speed) {
		return ErrInvalidSpeed
	}
	if !safety.SpeedChangeSafe(ac.State.Speed, speed) {
		return ErrUnsafeCommand
	}

	ac.State.TargetSpeed = speed
	s.commandIssued(ac, fmt.Sprintf("maintain %.0f knots", speed))
	return nil
}

// VectorForApproach turns the aircraft toward the field and sets it up
// at approach altitude and speed.
func (s *Sim) VectorForApproach(callsign string) error {
	ac := s.GetAircraft(callsign)
	if ac == nil {
		return ErrNoAircraftForCallsign
	}

	ac.State.TargetHeading = headingToField(ac)
	ac.State.TargetAltitude = approachAltitude
	ac.State.TargetSpeed = approachSpeed
	s.commandIssued(ac, "vector for approach")
	return nil
}

// ClearToLand takes the aircraft down to landing configuration. Landing
// itself happens in Update when the aircraft gets low and close enough.
func (s *Sim) ClearToLand(callsign string) error {
	ac := s.GetAircraft(callsign)
	if ac == nil {
		return ErrNoAircraftForCallsign
	}
	if !ac.IsOnApproach() {
		return fmt.Errorf("%s not established on approach: %w", callsign, ErrInvalidCommandSyntax)
	}

	ac.State.TargetHeading = headingToField(ac)
	ac.State.TargetAltitude = landingAltitude
	ac.State.TargetSpeed = landingSpeed
	s.commandIssued(ac, "cleared to land")
	return nil
}

// ExecuteCommand dispatches a (kind, value) command to the named
// aircraft. Recognized kinds are "heading", "altitude", "speed",
// "approach", and "land"; the last two ignore value.
func (s *Sim) ExecuteCommand(callsign, kind string, value float64) error {
	switch kind {
	case "heading":
		return s.AssignHeading(callsign, value)
	case "altitude":
		return s.AssignAltitude(callsign, value)
	case "speed":
		return s.AssignSpeed(callsign, value)
	case "approach":
		return s.VectorForApproach(callsign)
	case "land":
		return s.ClearToLand(callsign)
	default:
		return fmt.Errorf("%q: %w", kind, ErrInvalidCommandSyntax)
	}
}

func (s *Sim) commandIssued(ac *Aircraft, msg string) {
	s.postEvent(Event{Type: CommandEvent, Callsign: ac.Callsign, Message: msg})
	s.lg.Info("command issued", slog.String("callsign", ac.Callsign), slog.String("command", msg))
}
