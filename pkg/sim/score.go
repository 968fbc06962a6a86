// pkg/sim/score.go
// Copyright(c) 2023-2025 atcsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package sim

import "log/slog"

const (
	landingPoints    = 100
	violationPenalty = -50
	efficiencyBonus  = 10
)

// ScoreKeeper accumulates the controller's score over a scenario:
// landings earn points (with bonuses for a stabilized approach),
// separation violations cost them.
type ScoreKeeper struct {
	TotalScore      int
	Landings        int
	Violations      int
	EfficiencyBonus int
}

// RecordLanding awards points for a landing, with bonuses for a slow,
// low, stabilized arrival, and returns the points awarded.
func (s *ScoreKeeper) RecordLanding(ac *Aircraft) int {
	points := landingPoints

	if ac.State.Speed < 150 {
		points += 20
	} else if ac.State.Speed < 170 {
		points += 10
	}

	if ac.State.Altitude < 1000 {
		points += 10
	}

	s.TotalScore += points
	s.Landings++
	return points
}

// RecordViolation applies the separation-violation penalty and returns
// it.
func (s *ScoreKeeper) RecordViolation() int {
	s.TotalScore += violationPenalty
	s.Violations++
	return violationPenalty
}

// RecordEfficiency awards the efficiency bonus when a landing beat the
// optimal time; returns the bonus awarded (0 if none).
func (s *ScoreKeeper) RecordEfficiency(landingTime, optimalTime float64) int {
	if landingTime <= optimalTime {
		s.TotalScore += efficiencyBonus
		s.EfficiencyBonus += efficiencyBonus
		return efficiencyBonus
	}
	return 0
}

// Grade returns a letter grade for the session.
func (s *ScoreKeeper) Grade() string {
	switch {
	case s.Violations == 0 && s.Landings >= 5:
		return "A+"
	case s.Violations == 0:
		return "A"
	case s.Violations <= 1 && s.Landings >= 3:
		return "B"
	case s.Violations <= 2:
		return "C"
	case s.Violations <= 3:
		return "D"
	default:
		return "F"
	}
}

// Rating returns a textual performance rating for the session.
func (s *ScoreKeeper) Rating() string {
	switch {
	case s.Violations == 0 && s.Landings >= 5:
		return "Outstanding Performance"
	case s.Violations == 0:
		return "Excellent Performance"
	case s.Violations <= 1:
		return "Good Performance"
	case s.Violations <= 2:
		return "Satisfactory Performance"
	case s.Violations <= 3:
		return "Needs Improvement"
	default:
		return "Unsatisfactory Performance"
	}
}

func (s *ScoreKeeper) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("total_score", s.TotalScore),
		slog.Int("landings", s.Landings),
		slog.Int("violations", s.Violations),
		slog.String("grade", s.Grade()))
}

// Reset clears the score for a new scenario.
func (s *ScoreKeeper) Reset() {
	*s = ScoreKeeper{}
}
