// cmd/atcsim/main.go
// Copyright(c) 2023-2025 atcsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// atcsim runs a headless air traffic control simulation session: traffic
// is spawned for the selected scenario, advanced on a fixed tick, and
// scored. With -auto, a simple controller vectors everything for the
// approach so a full session can run unattended.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/averyhw/atcsim/pkg/log"
	"github.com/averyhw/atcsim/pkg/sim"
)

var (
	scenarioFlag  = flag.String("scenario", "1", "built-in scenario id to run")
	scenarioFile  = flag.String("scenario-file", "", "load scenario from JSON file instead of a built-in")
	listScenarios = flag.Bool("list-scenarios", false, "print available scenarios and exit")
	seed          = flag.Int64("seed", time.Now().UnixNano(), "random seed for traffic generation")
	logLevel      = flag.String("loglevel", "info", "logging level: debug, info, warn, error")
	logDir        = flag.String("logdir", "", "log file directory (default: user config dir)")
	duration      = flag.Duration("duration", 15*time.Minute, "maximum session length")
	tickRate      = flag.Float64("rate", 1, "simulation rate multiplier")
	saveFile      = flag.String("savestate", "", "save session state to file on exit")
	resumeFile    = flag.String("resume", "", "resume session from a saved state file")
	auto          = flag.Bool("auto", false, "automatically vector traffic for the approach")
)

func main() {
	flag.Parse()

	if *listScenarios {
		for _, id := range sim.ScenarioIds() {
			sc := sim.GetScenario(id)
			fmt.Printf("%s: %s (%d aircraft)\n", id, sc.Name, sc.AircraftCount)
		}
		os.Exit(0)
	}

	lg := log.New(*logLevel, *logDir)

	s, err := makeSim(lg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "atcsim: %v\n", err)
		os.Exit(1)
	}

	run(s)

	if *saveFile != "" {
		if err := s.SaveState(*saveFile); err != nil {
			fmt.Fprintf(os.Stderr, "atcsim: %s: %v\n", *saveFile, err)
			os.Exit(1)
		}
		fmt.Printf("saved session to %s\n", *saveFile)
	}

	printScore(s)
}

func makeSim(lg *log.Logger) (*sim.Sim, error) {
	if *resumeFile != "" {
		return sim.LoadState(*resumeFile, lg)
	}

	if *scenarioFile != "" {
		sc, err := sim.LoadScenario(*scenarioFile)
		if err != nil {
			return nil, err
		}
		return sim.New(sc, *seed, lg), nil
	}

	return sim.New(sim.GetScenario(*scenarioFlag), *seed, lg), nil
}

func run(s *sim.Sim) {
	sub := s.Events().Subscribe()
	defer sub.Unsubscribe()

	interval := time.Duration(float64(time.Second) * sim.DefaultTickSeconds / *tickRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	deadline := time.Now().Add(*duration)
	for range ticker.C {
		s.Update(sim.DefaultTickSeconds)

		if *auto {
			control(s)
		}

		done := false
		for _, e := range sub.Get() {
			fmt.Printf("[%6.1f] %s\n", e.SimTime, describe(e))
			if e.Type == sim.ScenarioCompleteEvent {
				done = true
			}
		}

		if done || time.Now().After(deadline) {
			return
		}
	}
}

// control is the -auto controller: vector everything for the approach,
// then clear it to land once established.
func control(s *sim.Sim) {
	for _, ac := range s.Aircraft {
		if !ac.IsOnApproach() {
			s.ExecuteCommand(ac.Callsign, "approach", 0)
		} else if ac.State.TargetSpeed > 140 {
			if err := s.ExecuteCommand(ac.Callsign, "land", 0); err != nil &&
				!errors.Is(err, sim.ErrInvalidCommandSyntax) {
				fmt.Fprintf(os.Stderr, "atcsim: %s: %v\n", ac.Callsign, err)
			}
		}
	}
}

func describe(e sim.Event) string {
	switch e.Type {
	case sim.SeparationViolationEvent:
		return fmt.Sprintf("LOSS OF SEPARATION %s / %s: %s", e.Callsign, e.OtherCallsign, e.Message)
	case sim.ConflictClearedEvent:
		return fmt.Sprintf("separation restored %s / %s", e.Callsign, e.OtherCallsign)
	default:
		if e.Callsign != "" {
			return fmt.Sprintf("%s %s: %s", e.Type, e.Callsign, e.Message)
		}
		return fmt.Sprintf("%s: %s", e.Type, e.Message)
	}
}

func printScore(s *sim.Sim) {
	fmt.Printf("\n%s\n", s.Scenario.Name)
	fmt.Printf("landings: %d  violations: %d\n", s.Score.Landings, s.Score.Violations)
	fmt.Printf("score: %d (x%.1f difficulty) grade %s: %s\n",
		s.Scenario.FinalScore(s.Score.TotalScore),
		1+float64(s.Scenario.Difficulty-1)*0.5,
		s.Score.Grade(), s.Score.Rating())
}
