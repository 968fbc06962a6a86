// pkg/sim/snapshot.go
// Copyright(c) 2023-2025 atcsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package sim

import (
	"fmt"
	"os"

	"github.com/averyhw/atcsim/pkg/log"

	"github.com/brunoga/deep"
	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
)

// snapshot is the serialized form of a Sim: everything needed to resume
// a session, minus the event stream (subscribers don't survive a restart)
// and the logger.
type snapshot struct {
	Scenario Scenario
	Aircraft []*Aircraft
	SimTime   float64
	Paused    bool
	Completed bool
	Score     ScoreKeeper
	Seed      int64
}

// SaveState writes the sim's current state to filename as
// zstd-compressed msgpack. The aircraft are deep-copied first so a
// concurrent caller mutating the fleet can't tear the snapshot.
func (s *Sim) SaveState(filename string) error {
	snap := snapshot{
		Scenario:  s.Scenario,
		Aircraft:  deep.MustCopy(s.Aircraft),
		SimTime:   s.SimTime,
		Paused:    s.Paused,
		Completed: s.Completed,
		Score:     s.Score,
		Seed:      s.seed,
	}

	raw, err := msgpack.Marshal(snap)
	if err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return err
	}
	defer enc.Close()

	return os.WriteFile(filename, enc.EncodeAll(raw, nil), 0o600)
}

// LoadState restores a sim previously written by SaveState. The restored
// sim gets a fresh event stream; subscriptions don't carry over.
func LoadState(filename string, lg *log.Logger) (*Sim, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	raw, err := dec.DecodeAll(b, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", filename, err, ErrRestoringSavedState)
	}

	var snap snapshot
	if err := msgpack.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", filename, err, ErrRestoringSavedState)
	}

	s := &Sim{
		Scenario:        snap.Scenario,
		Aircraft:        snap.Aircraft,
		SimTime:         snap.SimTime,
		Paused:          snap.Paused,
		Completed:       snap.Completed,
		Score:           snap.Score,
		activeConflicts: make(map[[2]string]interface{}),
		events:          NewEventStream(lg),
		spawner:         NewAircraftSpawner(snap.Seed),
		seed:            snap.Seed,
		lg:              lg,
	}

	// Re-register the restored callsigns so future spawns stay unique.
	for _, ac := range s.Aircraft {
		s.spawner.usedCallsigns[ac.Callsign] = nil
	}

	return s, nil
}
