// pkg/sim/errors.go
// Copyright(c) 2023-2025 atcsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package sim

import "errors"

var (
	ErrNoAircraftForCallsign = errors.New("No aircraft exists with specified callsign")
	ErrInvalidCommandSyntax  = errors.New("Invalid command syntax")
	ErrInvalidHeading        = errors.New("Invalid heading")
	ErrInvalidAltitude       = errors.New("Invalid altitude")
	ErrInvalidSpeed          = errors.New("Invalid speed")
	ErrUnsafeCommand         = errors.New("Commanded change exceeds safety limits")
	ErrUnknownScenario       = errors.New("Unknown scenario")
	ErrRestoringSavedState   = errors.New("Errors during state restoration")
)
