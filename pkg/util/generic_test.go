// pkg/util/generic_test.go
// Copyright(c) 2023-2025 atcsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"slices"
	"testing"
)

func TestRingBuffer(t *testing.T) {
	rb := NewRingBuffer[int](4)

	if rb.Size() != 0 {
		t.Errorf("empty ring buffer size %d", rb.Size())
	}

	rb.Add(0, 1, 2)
	if rb.Size() != 3 {
		t.Errorf("expected size 3, got %d", rb.Size())
	}
	for i := 0; i < 3; i++ {
		if rb.Get(i) != i {
			t.Errorf("element %d: expected %d, got %d", i, i, rb.Get(i))
		}
	}

	// Overfill; the oldest entries are discarded.
	rb.Add(3, 4, 5)
	if rb.Size() != 4 {
		t.Errorf("expected size 4 after overfill, got %d", rb.Size())
	}
	for i := 0; i < 4; i++ {
		if expected := i + 2; rb.Get(i) != expected {
			t.Errorf("element %d: expected %d, got %d", i, expected, rb.Get(i))
		}
	}
}

func TestSelect(t *testing.T) {
	if Select(true, 1, 2) != 1 || Select(false, 1, 2) != 2 {
		t.Errorf("Select broken")
	}
}

func TestMapSlice(t *testing.T) {
	doubled := MapSlice([]int{1, 2, 3}, func(v int) int { return 2 * v })
	if !slices.Equal(doubled, []int{2, 4, 6}) {
		t.Errorf("expected [2 4 6], got %v", doubled)
	}
}

func TestFilterSlice(t *testing.T) {
	even := FilterSlice([]int{1, 2, 3, 4, 5, 6}, func(v int) bool { return v%2 == 0 })
	if !slices.Equal(even, []int{2, 4, 6}) {
		t.Errorf("expected [2 4 6], got %v", even)
	}
}

func TestSortedMapKeys(t *testing.T) {
	m := map[string]int{"c": 2, "a": 0, "b": 1}
	if keys := SortedMapKeys(m); !slices.Equal(keys, []string{"a", "b", "c"}) {
		t.Errorf("expected sorted keys, got %v", keys)
	}
}
