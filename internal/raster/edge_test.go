// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "testing"

func TestEdgeFunction_SignOnEachSide(t *testing.T) {
	e := NewEdgeFunction(0, 0, 10, 0)
	// y increases downward; a point below the edge (larger y) should be
	// on the opposite sign from a point above it.
	below := e.At(5, 5)
	above := e.At(5, -5)
	if (below > 0) == (above > 0) {
		t.Fatalf("expected opposite signs, got below=%v above=%v", below, above)
	}
}

func TestTopLeft(t *testing.T) {
	tests := []struct {
		name                   string
		x0, y0, x1, y1         float32
		want                   bool
	}{
		{"top edge leftward", 10, 0, 0, 0, true},
		{"top edge rightward", 0, 0, 10, 0, false},
		{"left edge downward", 0, 0, 0, 10, true},
		{"right edge upward", 0, 10, 0, 0, false},
		{"diagonal", 0, 0, 10, 10, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TopLeft(tt.x0, tt.y0, tt.x1, tt.y1); got != tt.want {
				t.Errorf("TopLeft() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCovered(t *testing.T) {
	if !Covered(0, true) {
		t.Error("zero should be covered on a top-left edge")
	}
	if Covered(0, false) {
		t.Error("zero should not be covered on a non-top-left edge")
	}
	if !Covered(1, false) {
		t.Error("positive value should always be covered")
	}
	if Covered(-1, true) {
		t.Error("negative value should never be covered")
	}
}

func TestBarycentric_Normalized(t *testing.T) {
	b := Barycentric{W0: 1, W1: 1, W2: 2}
	u, v, w := b.Normalized(4)
	if u+v+w != 1 {
		t.Errorf("weights sum to %v, want 1", u+v+w)
	}
}
