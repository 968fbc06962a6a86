// pkg/math/heading.go
// Copyright(c) 2023-2025 atcsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

///////////////////////////////////////////////////////////////////////////
// headings and directions

// Headings follow the aviation compass convention: 0 degrees points along
// the +y axis (north), 90 degrees along +x (east), increasing clockwise.

// NormalizeHeading reduces a heading to [0,360).
func NormalizeHeading(h float64) float64 {
	h = Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// HeadingSignedTurn returns the signed shortest rotation, in [-180,180],
// that takes the heading cur to the heading target. Negative values
// indicate a left turn.
func HeadingSignedTurn(cur, target float64) float64 {
	diff := target - cur
	if diff > 180 {
		diff -= 360
	}
	if diff < -180 {
		diff += 360
	}
	return diff
}

// HeadingDifference returns the minimum difference between two headings
// (i.e., the result is always in the range [0,180].)
func HeadingDifference(a float64, b float64) float64 {
	var d float64
	if a > b {
		d = a - b
	} else {
		d = b - a
	}
	if d > 180 {
		d = 360 - d
	}
	return d
}

func OppositeHeading(h float64) float64 {
	return NormalizeHeading(h + 180)
}

// Heading returns the compass heading from the point (x1,y1) to the point
// (x2,y2). Note that atan2() normally measures w.r.t. the +x axis and
// angles are positive for counter-clockwise. We want to measure w.r.t. +y
// and to have positive angles be clockwise. Happily, swapping the order of
// values passed to atan2()--passing (x,y)--gives what we want.
func Heading(x1, y1, x2, y2 float64) float64 {
	return NormalizeHeading(Degrees(Atan2(x2-x1, y2-y1)))
}

// Distance returns the Euclidean distance between (x1,y1) and (x2,y2).
func Distance(x1, y1, x2, y2 float64) float64 {
	return Sqrt(Sqr(x2-x1) + Sqr(y2-y1))
}
