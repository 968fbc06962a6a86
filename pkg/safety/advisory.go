// pkg/safety/advisory.go
// Copyright(c) 2023-2025 atcsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package safety

import (
	"log/slog"

	"github.com/averyhw/atcsim/pkg/math"
	"github.com/averyhw/atcsim/pkg/phys"
)

// Severity grades a predicted conflict for alerting purposes.
type Severity int

const (
	SeverityNone Severity = iota
	SeverityAdvisory
	SeverityWarning
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityNone:
		return "none"
	case SeverityAdvisory:
		return "advisory"
	case SeverityWarning:
		return "warning"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Advisory describes a predicted conflict between two aircraft.
// TimeToConflict is -1 when no separation violation was found within the
// look-ahead horizon (the severity may still be non-none if the aircraft
// pass close together).
type Advisory struct {
	Severity        Severity
	TimeToConflict  float64 // s, -1 if none
	MinimumDistance float64 // nm
}

func (a Advisory) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("severity", a.Severity.String()),
		slog.Float64("time_to_conflict", a.TimeToConflict),
		slog.Float64("minimum_distance", a.MinimumDistance))
}

// project returns the aircraft's position advanced along its current
// velocity. Unlike the integrator this ignores commanded targets: the
// advisory sweep asks what happens if both aircraft hold what they are
// doing now.
func project(ac phys.AircraftState, seconds float64) phys.AircraftState {
	v := ac.Velocity()
	ac.X += v[0] * seconds
	ac.Y += v[1] * seconds
	return ac
}

// DetectConflict sweeps both aircraft along their current velocities at
// one-second steps over the look-ahead horizon, recording the first time
// separation is violated and the minimum horizontal distance seen, then
// grades the result.
func DetectConflict(a, b phys.AircraftState, hSep, vSep, lookAheadTime float64) Advisory {
	minDistance := math.Distance(a.X, a.Y, b.X, b.Y)
	conflictTime := -1.0

	const timeStep = 1.0
	for t := 0.0; t <= lookAheadTime; t += timeStep {
		a = project(a, timeStep)
		b = project(b, timeStep)

		horizontalDist := math.Distance(a.X, a.Y, b.X, b.Y)
		verticalDist := math.Abs(a.Altitude - b.Altitude)

		minDistance = math.Min(minDistance, horizontalDist)

		if horizontalDist < hSep && verticalDist < vSep && conflictTime < 0 {
			conflictTime = t
		}
	}

	return Advisory{
		Severity:        gradeSeverity(conflictTime, minDistance, hSep),
		TimeToConflict:  conflictTime,
		MinimumDistance: minDistance,
	}
}

// gradeSeverity maps time-to-conflict and miss distance onto an alert
// level: imminent or very close passes are critical, with the thresholds
// relaxing out to two minutes.
func gradeSeverity(timeToConflict, minDistance, hSep float64) Severity {
	if timeToConflict < 0 {
		return SeverityNone
	}

	switch {
	case timeToConflict < 30 || minDistance < hSep*0.5:
		return SeverityCritical
	case timeToConflict < 60 || minDistance < hSep*0.75:
		return SeverityWarning
	case timeToConflict < 120 || minDistance < hSep:
		return SeverityAdvisory
	default:
		return SeverityNone
	}
}

// AvoidanceHeading suggests a heading for aircraft a that turns it 90
// degrees right of the bearing to aircraft b.
func AvoidanceHeading(a, b phys.AircraftState) float64 {
	bearing := math.Degrees(math.Atan2(b.Y-a.Y, b.X-a.X))
	return math.Mod(bearing+90, 360)
}

// ResolutionEffective re-runs conflict detection over a five-minute
// horizon with aircraft a on the proposed heading and reports whether the
// conflict clears entirely.
func ResolutionEffective(a, b phys.AircraftState, newHeading, hSep, vSep float64) bool {
	a.Heading = newHeading
	return DetectConflict(a, b, hSep, vSep, 300).Severity == SeverityNone
}

// Converging reports whether the horizontal distance between the two
// aircraft is decreasing, by comparing against their positions one second
// ahead.
func Converging(a, b phys.AircraftState) bool {
	currentDistance := math.Distance(a.X, a.Y, b.X, b.Y)

	fa, fb := project(a, 1), project(b, 1)
	return math.Distance(fa.X, fa.Y, fb.X, fb.Y) < currentDistance
}
