// pkg/sim/score_test.go
// Copyright(c) 2023-2025 atcsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package sim

import "testing"

func TestRecordLanding(t *testing.T) {
	for _, c := range []struct {
		speed, altitude float64
		want            int
	}{
		{140, 400, 130},  // slow and low: both bonuses
		{160, 400, 120},  // moderately slow
		{160, 1500, 110}, // fast-ish, high
		{200, 2000, 100}, // no bonuses
		{149, 999, 130},  // just under both thresholds
		{150, 1000, 100}, // exactly at thresholds: no bonuses
	} {
		var sk ScoreKeeper
		ac := &Aircraft{Callsign: "AAL100", State: steady(0, 0, c.altitude, 0, c.speed)}
		if got := sk.RecordLanding(ac); got != c.want {
			t.Errorf("landing at %f kt / %f ft: expected %d points, got %d",
				c.speed, c.altitude, c.want, got)
		}
		if sk.TotalScore != c.want || sk.Landings != 1 {
			t.Errorf("score not accumulated: %+v", sk)
		}
	}
}

func TestRecordViolation(t *testing.T) {
	var sk ScoreKeeper
	sk.RecordLanding(&Aircraft{State: steady(0, 0, 2000, 0, 200)})

	if got := sk.RecordViolation(); got != -50 {
		t.Errorf("expected -50 penalty, got %d", got)
	}
	if sk.TotalScore != 50 || sk.Violations != 1 {
		t.Errorf("unexpected score state: %+v", sk)
	}
}

func TestRecordEfficiency(t *testing.T) {
	var sk ScoreKeeper
	if got := sk.RecordEfficiency(100, 120); got != 10 {
		t.Errorf("expected efficiency bonus for beating optimal time, got %d", got)
	}
	if got := sk.RecordEfficiency(150, 120); got != 0 {
		t.Errorf("expected no bonus for slow landing, got %d", got)
	}
	if sk.EfficiencyBonus != 10 {
		t.Errorf("expected accumulated bonus 10, got %d", sk.EfficiencyBonus)
	}
}

func TestGrade(t *testing.T) {
	for _, c := range []struct {
		landings, violations int
		grade                string
	}{
		{6, 0, "A+"},
		{2, 0, "A"},
		{3, 1, "B"},
		{1, 1, "C"}, // one violation but too few landings for B
		{0, 2, "C"},
		{0, 3, "D"},
		{0, 4, "F"},
	} {
		sk := ScoreKeeper{Landings: c.landings, Violations: c.violations}
		if got := sk.Grade(); got != c.grade {
			t.Errorf("%d landings, %d violations: expected %s, got %s",
				c.landings, c.violations, c.grade, got)
		}
	}
}

func TestScoreReset(t *testing.T) {
	sk := ScoreKeeper{TotalScore: 100, Landings: 2, Violations: 1}
	sk.Reset()
	if sk != (ScoreKeeper{}) {
		t.Errorf("reset left state: %+v", sk)
	}
}
