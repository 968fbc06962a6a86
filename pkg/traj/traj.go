// pkg/traj/traj.go
// Copyright(c) 2023-2025 atcsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package traj predicts where aircraft will be: single future points,
// sampled paths, intercept and closest-approach times, and look-ahead
// separation checks. Everything here is a pure function of its inputs;
// the iterative operations work on local copies of the caller's states.
package traj

import (
	"github.com/averyhw/atcsim/pkg/math"
	"github.com/averyhw/atcsim/pkg/phys"
)

// Point is a snapshot of a predicted position at a time offset (seconds)
// from the prediction's start.
type Point struct {
	X, Y     float64 // nm
	Altitude float64 // ft
	Time     float64 // s
}

// relativeMotion returns b's position and velocity relative to a, in nm
// and nm/s.
func relativeMotion(a, b phys.AircraftState) (dp, dv [2]float64) {
	dp = [2]float64{b.X - a.X, b.Y - a.Y}
	dv = math.Sub2f(b.Velocity(), a.Velocity())
	return
}

// PredictPosition extrapolates the aircraft's position timeAhead seconds
// into the future assuming constant current heading and speed; it is a
// straight-line projection, not a re-simulation, so commanded turns and
// speed changes are ignored. Altitude still moves toward the target,
// bounded by the climb rate over the interval.
func PredictPosition(ac phys.AircraftState, timeAhead float64) Point {
	distanceNM := (ac.Speed / 3600) * timeAhead

	headingRad := math.Radians(ac.Heading)
	p := Point{
		X:    ac.X + math.Sin(headingRad)*distanceNM,
		Y:    ac.Y + math.Cos(headingRad)*distanceNM,
		Time: timeAhead,
	}

	altDiff := ac.TargetAltitude - ac.Altitude
	altChange := math.Copysign(math.Min(math.Abs(altDiff), phys.ClimbRatePerSecond*timeAhead), altDiff)
	p.Altitude = ac.Altitude + altChange

	return p
}

// CalculateTrajectory samples the aircraft's future path by repeated
// integration at timeStep intervals from t=0 through duration inclusive.
// The first point is the unmodified state at t=0. The caller is
// responsible for keeping duration/timeStep to a reasonable step count.
func CalculateTrajectory(ac phys.AircraftState, duration, timeStep float64) []Point {
	var trajectory []Point

	for t := 0.0; t <= duration; t += timeStep {
		trajectory = append(trajectory, Point{X: ac.X, Y: ac.Y, Altitude: ac.Altitude, Time: t})
		phys.UpdateAircraftPosition(&ac, timeStep)
	}

	return trajectory
}

// InterceptPoint solves for the time at which aircraft a, moving along its
// current velocity ray, meets aircraft b moving along its own: the roots
// of |dv|^2 t^2 + 2(dp.dv) t + |dp|^2 = 0. ok is false when the paths are
// parallel (|dv|^2 below 1e-10), when there is no real solution, or when
// the intercept lies in the past. When two future roots exist the earlier
// one is returned.
func InterceptPoint(a, b phys.AircraftState) (x, y, t float64, ok bool) {
	dp, dv := relativeMotion(a, b)

	qa := math.Dot(dv, dv)
	qb := 2 * math.Dot(dp, dv)
	qc := math.Dot(dp, dp)

	if math.Abs(qa) < 1e-10 {
		return 0, 0, 0, false // parallel paths
	}

	discriminant := qb*qb - 4*qa*qc
	if discriminant < 0 {
		return 0, 0, 0, false // no intercept
	}

	t1 := (-qb - math.Sqrt(discriminant)) / (2 * qa)
	t2 := (-qb + math.Sqrt(discriminant)) / (2 * qa)

	t = t2
	if t1 > 0 {
		t = t1
	}
	if t < 0 {
		return 0, 0, 0, false // intercept in the past
	}

	va := a.Velocity()
	return a.X + va[0]*t, a.Y + va[1]*t, t, true
}

// TimeToClosestApproach returns the future time, in seconds, at which the
// two aircraft's separation is minimized under the constant-velocity
// assumption, clamped to zero when the minimum lies in the past. With no
// relative motion the distance is constant and 0 is returned.
func TimeToClosestApproach(a, b phys.AircraftState) float64 {
	dp, dv := relativeMotion(a, b)

	if math.Length2f(dv) < 1e-10 {
		return 0 // no relative motion
	}

	tca := -math.Dot(dp, dv) / math.Dot(dv, dv)
	return math.Max(0.0, tca)
}

// MinimumSeparationDistance simulates both aircraft forward at one-second
// steps over the look-ahead horizon and returns the minimum horizontal
// distance seen, including at t=0.
func MinimumSeparationDistance(a, b phys.AircraftState, lookAheadTime float64) float64 {
	minDistance := math.Distance(a.X, a.Y, b.X, b.Y)

	const timeStep = 1.0
	for t := 0.0; t <= lookAheadTime; t += timeStep {
		phys.UpdateAircraftPosition(&a, timeStep)
		phys.UpdateAircraftPosition(&b, timeStep)

		minDistance = math.Min(minDistance, math.Distance(a.X, a.Y, b.X, b.Y))
	}

	return minDistance
}

// WillViolateSeparation simulates both aircraft forward at one-second
// steps and reports whether at any step within the horizon the horizontal
// distance drops below hSep while the altitude difference is below vSep.
// It returns at the first violating step.
func WillViolateSeparation(a, b phys.AircraftState, hSep, vSep, lookAheadTime float64) bool {
	const timeStep = 1.0
	for t := 0.0; t <= lookAheadTime; t += timeStep {
		horizontalDist := math.Distance(a.X, a.Y, b.X, b.Y)
		verticalDist := math.Abs(a.Altitude - b.Altitude)

		if horizontalDist < hSep && verticalDist < vSep {
			return true
		}

		phys.UpdateAircraftPosition(&a, timeStep)
		phys.UpdateAircraftPosition(&b, timeStep)
	}

	return false
}
