// pkg/sim/sim.go
// Copyright(c) 2023-2025 atcsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package sim is the host layer over the kinematic core: it owns the
// fleet of aircraft, advances them on a fixed tick, scans for separation
// violations, scores the session, and reports everything through an event
// stream. All simulation is synchronous and deterministic for a given
// seed; the only concurrency is the optional parallel conflict scan over
// read-only state.
package sim

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/averyhw/atcsim/pkg/conflict"
	"github.com/averyhw/atcsim/pkg/log"
	"github.com/averyhw/atcsim/pkg/math"
	"github.com/averyhw/atcsim/pkg/phys"
	"github.com/averyhw/atcsim/pkg/safety"
	"github.com/averyhw/atcsim/pkg/util"

	"golang.org/x/sync/errgroup"
)

// Default separation standards and simulation constants.
const (
	DefaultTickSeconds = 0.1 // 100 ms

	HorizontalSeparation = 3    // nm
	VerticalSeparation   = 1000 // ft

	// Landing detection: close to the field and low.
	landingRadius   = 2   // nm
	landingCeiling  = 500 // ft

	// Fleets at least this large get a parallel conflict scan.
	parallelScanThreshold = 32
)

type Sim struct {
	Scenario Scenario
	Aircraft []*Aircraft
	SimTime  float64 // seconds since scenario start
	Paused   bool
	Score    ScoreKeeper

	// Set once the last aircraft has landed, so the completion event is
	// only posted once.
	Completed bool

	// Active separation violations, keyed by ordered callsign pair.
	activeConflicts map[[2]string]interface{}

	events  *EventStream
	spawner *AircraftSpawner
	seed    int64
	lg      *log.Logger
}

// New creates a Sim for the given scenario and spawns its initial
// traffic. The seed fixes the spawner's randomness so sessions are
// reproducible.
func New(scenario Scenario, seed int64, lg *log.Logger) *Sim {
	s := &Sim{
		Scenario:        scenario,
		activeConflicts: make(map[[2]string]interface{}),
		events:          NewEventStream(lg),
		spawner:         NewAircraftSpawner(seed),
		seed:            seed,
		lg:              lg,
	}

	for i := 0; i < scenario.AircraftCount; i++ {
		ac := s.spawner.Spawn()
		s.Aircraft = append(s.Aircraft, &ac)
		s.postEvent(Event{Type: SpawnedEvent, Callsign: ac.Callsign,
			Message: fmt.Sprintf("%s arrival, %.0f ft", ac.Type, ac.State.Altitude)})
		lg.Info("spawned aircraft", slog.Any("aircraft", &ac))
	}

	lg.Info("scenario started", slog.String("name", scenario.Name),
		slog.Int("aircraft", len(s.Aircraft)))

	return s
}

// Events returns the sim's event stream for the host to subscribe to.
func (s *Sim) Events() *EventStream {
	return s.events
}

// Update advances the simulation by deltaTime seconds: every aircraft is
// integrated (plus scenario wind drift), landings are handled, and the
// fleet is scanned for separation violations. A paused sim does nothing.
func (s *Sim) Update(deltaTime float64) {
	if s.Paused {
		return
	}

	s.SimTime += deltaTime

	var landed []*Aircraft
	for _, ac := range s.Aircraft {
		phys.UpdateAircraftPosition(&ac.State, deltaTime)
		if s.Scenario.Weather.WindSpeed > 0 {
			phys.ApplyWindEffect(&ac.State, s.Scenario.Weather.WindDirection,
				s.Scenario.Weather.WindSpeed, deltaTime)
		}

		if s.checkLanding(ac) {
			landed = append(landed, ac)
		}
	}

	for _, ac := range landed {
		s.handleLanding(ac)
	}

	s.checkConflicts()

	if len(s.Aircraft) == 0 && !s.Completed {
		s.Completed = true
		s.postEvent(Event{Type: ScenarioCompleteEvent,
			Message: fmt.Sprintf("final score %d (%s)", s.Scenario.FinalScore(s.Score.TotalScore), s.Score.Grade())})
	}
}

// TogglePause flips the pause state and returns the new value.
func (s *Sim) TogglePause() bool {
	s.Paused = !s.Paused
	s.lg.Info("sim pause toggled", slog.Bool("paused", s.Paused))
	return s.Paused
}

// Reset returns the sim to an empty, unpaused state with a zero clock.
func (s *Sim) Reset() {
	s.Aircraft = nil
	s.SimTime = 0
	s.Paused = false
	s.Completed = false
	s.Score.Reset()
	s.spawner.Reset()
	clear(s.activeConflicts)
	s.lg.Info("sim reset")
}

// GetAircraft returns the aircraft with the given callsign, or nil.
func (s *Sim) GetAircraft(callsign string) *Aircraft {
	for _, ac := range s.Aircraft {
		if ac.Callsign == callsign {
			return ac
		}
	}
	return nil
}

func (s *Sim) checkLanding(ac *Aircraft) bool {
	distance := math.Distance(ac.State.X, ac.State.Y, 0, 0)
	return distance < landingRadius && ac.State.Altitude < landingCeiling
}

func (s *Sim) handleLanding(ac *Aircraft) {
	points := s.Score.RecordLanding(ac)
	ac.Landed = true

	s.Aircraft = slices.DeleteFunc(s.Aircraft, func(other *Aircraft) bool {
		return other == ac
	})

	s.postEvent(Event{Type: LandedEvent, Callsign: ac.Callsign, Points: points,
		Message: fmt.Sprintf("landed, %d points", points)})
	s.lg.Info("aircraft landed", slog.Any("aircraft", ac), slog.Int("points", points))
}

// checkConflicts scans all pairs for current separation violations,
// updates per-aircraft conflict flags, and posts events (with a penalty)
// for newly-violating pairs and for pairs whose separation has recovered.
func (s *Sim) checkConflicts() {
	pairs := s.conflictPairs()

	for _, ac := range s.Aircraft {
		ac.InConflict = false
	}

	current := make(map[[2]string]interface{}, len(pairs))
	for _, p := range pairs {
		a, b := s.Aircraft[p[0]], s.Aircraft[p[1]]
		a.InConflict, b.InConflict = true, true

		key := conflictKey(a.Callsign, b.Callsign)
		current[key] = nil

		if _, ok := s.activeConflicts[key]; !ok {
			s.activeConflicts[key] = nil
			s.Score.RecordViolation()

			// Look ahead for the pair so the alert can say how close
			// it's going to get.
			result := conflict.PredictCollision(a.State, b.State,
				HorizontalSeparation, VerticalSeparation, 120)
			adv := safety.DetectConflict(a.State, b.State,
				HorizontalSeparation, VerticalSeparation, 120)

			s.postEvent(Event{Type: SeparationViolationEvent,
				Callsign: a.Callsign, OtherCallsign: b.Callsign,
				Message: fmt.Sprintf("%s: minimum distance %.1f nm", adv.Severity, result.MinimumDistance)})
			s.lg.Warn("separation violation",
				slog.String("callsign", a.Callsign), slog.String("other", b.Callsign),
				slog.Any("prediction", result), slog.Any("advisory", adv))
		}
	}

	for key := range s.activeConflicts {
		if _, ok := current[key]; !ok {
			delete(s.activeConflicts, key)
			s.postEvent(Event{Type: ConflictClearedEvent,
				Callsign: key[0], OtherCallsign: key[1]})
		}
	}
}

// conflictPairs returns the index pairs of aircraft currently violating
// separation, in ascending (i, j) order. Large fleets are scanned with a
// goroutine per row; the checks are pure reads of the fleet state so this
// is safe.
func (s *Sim) conflictPairs() [][2]int {
	states := util.MapSlice(s.Aircraft, func(ac *Aircraft) phys.AircraftState { return ac.State })

	if len(states) < parallelScanThreshold {
		return conflict.MultipleAircraftConflicts(states, HorizontalSeparation, VerticalSeparation)
	}

	rows := make([][][2]int, len(states))
	var eg errgroup.Group
	for i := range states {
		i := i
		eg.Go(func() error {
			for j := i + 1; j < len(states); j++ {
				if conflict.CheckCollision(states[i], states[j], HorizontalSeparation, VerticalSeparation) {
					rows[i] = append(rows[i], [2]int{i, j})
				}
			}
			return nil
		})
	}
	eg.Wait() // the workers never return errors

	var pairs [][2]int
	for _, row := range rows {
		pairs = append(pairs, row...)
	}
	return pairs
}

func conflictKey(a, b string) [2]string {
	if a < b {
		return [2]string{a, b}
	}
	return [2]string{b, a}
}

func (s *Sim) postEvent(e Event) {
	e.SimTime = s.SimTime
	s.events.Post(e)
}
