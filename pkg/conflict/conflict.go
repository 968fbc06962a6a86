// pkg/conflict/conflict.go
// Copyright(c) 2023-2025 atcsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package conflict provides instantaneous and look-ahead separation
// checks between pairs and fleets of aircraft, nearest-neighbor queries,
// protected-airspace containment, and a heuristic conflict score.
//
// A separation violation is the simultaneous loss of both horizontal and
// vertical separation: horizontal distance below hSep AND altitude
// difference below vSep.
package conflict

import (
	"log/slog"

	"github.com/averyhw/atcsim/pkg/math"
	"github.com/averyhw/atcsim/pkg/phys"
)

// CollisionResult reports the outcome of a simulated look-ahead between
// two aircraft. TimeToCollision is -1 when no violation occurs within the
// horizon. MinimumDistance and the Closest point track the global minimum
// horizontal distance over the whole horizon, independent of whether
// separation was ever lost.
type CollisionResult struct {
	WillCollide     bool
	TimeToCollision float64 // s, -1 if none
	MinimumDistance float64 // nm
	ClosestX        float64
	ClosestY        float64
}

func (r CollisionResult) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("will_collide", r.WillCollide),
		slog.Float64("time_to_collision", r.TimeToCollision),
		slog.Float64("minimum_distance", r.MinimumDistance))
}

// CheckCollision reports whether the two aircraft currently violate the
// given separation minima. It is symmetric in its aircraft arguments and
// performs no simulation.
func CheckCollision(a, b phys.AircraftState, hSep, vSep float64) bool {
	horizontalDist := math.Distance(a.X, a.Y, b.X, b.Y)
	verticalDist := math.Abs(a.Altitude - b.Altitude)

	return horizontalDist < hSep && verticalDist < vSep
}

// PredictCollision simulates both aircraft forward at half-second steps
// over the look-ahead horizon. The first step at which separation is
// violated latches WillCollide and TimeToCollision; the latch is never
// re-evaluated even if separation later recovers. The minimum horizontal
// distance and the midpoint where it occurred are tracked at every step
// regardless of violation state.
func PredictCollision(a, b phys.AircraftState, hSep, vSep, lookAheadTime float64) CollisionResult {
	result := CollisionResult{
		TimeToCollision: -1,
		MinimumDistance: math.MaxFloat64,
	}

	const timeStep = 0.5
	for t := 0.0; t <= lookAheadTime; t += timeStep {
		horizontalDist := math.Distance(a.X, a.Y, b.X, b.Y)
		verticalDist := math.Abs(a.Altitude - b.Altitude)

		if horizontalDist < result.MinimumDistance {
			result.MinimumDistance = horizontalDist
			result.ClosestX = (a.X + b.X) / 2
			result.ClosestY = (a.Y + b.Y) / 2
		}

		if horizontalDist < hSep && verticalDist < vSep {
			if !result.WillCollide {
				result.WillCollide = true
				result.TimeToCollision = t
			}
		}

		phys.UpdateAircraftPosition(&a, timeStep)
		phys.UpdateAircraftPosition(&b, timeStep)
	}

	return result
}

// Separation returns the horizontal distance in nm and the altitude
// difference in ft between the two aircraft, with no thresholding.
func Separation(a, b phys.AircraftState) (horizontalDist, verticalDist float64) {
	horizontalDist = math.Distance(a.X, a.Y, b.X, b.Y)
	verticalDist = math.Abs(a.Altitude - b.Altitude)
	return
}

// MultipleAircraftConflicts scans all pairs of the given aircraft and
// returns the index pairs (i,j), i<j, that currently violate separation,
// in ascending i then ascending j order.
func MultipleAircraftConflicts(aircraft []phys.AircraftState, hSep, vSep float64) [][2]int {
	var conflicts [][2]int

	for i := range aircraft {
		for j := i + 1; j < len(aircraft); j++ {
			if CheckCollision(aircraft[i], aircraft[j], hSep, vSep) {
				conflicts = append(conflicts, [2]int{i, j})
			}
		}
	}

	return conflicts
}

// ConflictProbability returns a heuristic score in [0,1] from the current
// horizontal distance and closure rate. It is not a calibrated
// probability. lookAheadTime is accepted for interface compatibility but
// does not enter the computation.
func ConflictProbability(a, b phys.AircraftState, lookAheadTime float64) float64 {
	horizontalDist, _ := Separation(a, b)

	closureRate := math.Length2f(math.Sub2f(b.Velocity(), a.Velocity()))

	distanceFactor := math.Max(0.0, 1-horizontalDist/10)
	rateFactor := math.Min(1.0, closureRate*10)

	return distanceFactor * rateFactor * 0.5
}

// FindNearestAircraft returns the index of the aircraft in others closest
// to ac by horizontal distance, or -1 if others is empty. Ties go to the
// first-seen index.
func FindNearestAircraft(ac phys.AircraftState, others []phys.AircraftState) int {
	nearestIndex := -1
	minDistance := math.MaxFloat64

	for i, other := range others {
		distance := math.Distance(ac.X, ac.Y, other.X, other.Y)
		if distance < minDistance {
			minDistance = distance
			nearestIndex = i
		}
	}

	return nearestIndex
}

// InProtectedAirspace reports whether the point (x, y, altitude) is inside
// the cylindrical volume centered at (cx, cy) with the given radius and
// altitude band.
func InProtectedAirspace(x, y, altitude, cx, cy, radius, minAltitude, maxAltitude float64) bool {
	if math.Distance(x, y, cx, cy) > radius {
		return false
	}
	return altitude >= minAltitude && altitude <= maxAltitude
}
