// pkg/math/vec.go
// Copyright(c) 2023-2025 atcsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

// [2]float64 vectors over the x/y plane of the airspace model.

func Add2f(a [2]float64, b [2]float64) [2]float64 {
	return [2]float64{a[0] + b[0], a[1] + b[1]}
}

func Mid2f(a [2]float64, b [2]float64) [2]float64 {
	return [2]float64{(a[0] + b[0]) / 2, (a[1] + b[1]) / 2}
}

func Sub2f(a [2]float64, b [2]float64) [2]float64 {
	return [2]float64{a[0] - b[0], a[1] - b[1]}
}

func Scale2f(a [2]float64, s float64) [2]float64 {
	return [2]float64{s * a[0], s * a[1]}
}

func Dot(a, b [2]float64) float64 {
	return a[0]*b[0] + a[1]*b[1]
}

func Length2f(v [2]float64) float64 {
	return Sqrt(Sqr(v[0]) + Sqr(v[1]))
}

func Distance2f(a [2]float64, b [2]float64) float64 {
	return Length2f(Sub2f(a, b))
}

// HeadingVector returns the unit direction vector for the given compass
// heading: north is (0,1), east is (1,0).
func HeadingVector(hdg float64) [2]float64 {
	r := Radians(hdg)
	return [2]float64{Sin(r), Cos(r)}
}
