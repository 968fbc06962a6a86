// pkg/rand/rand.go
// Copyright(c) 2023-2025 atcsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package rand

import (
	"github.com/MichaelTJones/pcg"
)

///////////////////////////////////////////////////////////////////////////
// Random numbers.

type Rand struct {
	r *pcg.PCG32
}

func New() Rand {
	return Rand{r: pcg.NewPCG32()}
}

func (r *Rand) Seed(s int64) {
	r.r.Seed(uint64(s), 0xda3e39cb94b95bdb)
}

func (r *Rand) Intn(n int) int {
	return int(r.r.Bounded(uint32(n)))
}

func (r *Rand) Float32() float32 {
	return float32(r.r.Random()) / (1<<32 - 1)
}

func (r *Rand) Float64() float64 {
	return float64(r.r.Random()) / (1<<32 - 1)
}

// InRange returns a uniformly-distributed value in [low, high).
func (r *Rand) InRange(low, high float64) float64 {
	return low + (high-low)*r.Float64()
}

func (r *Rand) Uint32() uint32 {
	return r.r.Random()
}

// SampleSlice returns a uniformly-sampled element of the given slice.
func SampleSlice[T any](r *Rand, s []T) T {
	return s[r.Intn(len(s))]
}

// Drop-in replacement for the subset of math/rand that we use...
var r Rand

func init() {
	r = New()
}

func Seed(s int64) {
	r.Seed(s)
}

func Intn(n int) int {
	return r.Intn(n)
}

func Float32() float32 {
	return r.Float32()
}

func Float64() float64 {
	return r.Float64()
}

func Uint32() uint32 {
	return r.Uint32()
}
