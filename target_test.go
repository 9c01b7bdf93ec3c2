// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster3d

import "testing"

func TestBuffer2D_GetSet(t *testing.T) {
	b := NewBuffer2D[int](4, 3)
	w, h := b.Size()
	if w != 4 || h != 3 {
		t.Fatalf("Size() = (%d,%d), want (4,3)", w, h)
	}

	b.Set(2, 1, 42)
	if got := b.At(2, 1); got != 42 {
		t.Errorf("At(2,1) = %d, want 42", got)
	}
	if got := b.At(0, 0); got != 0 {
		t.Errorf("At(0,0) = %d, want 0 (zero value)", got)
	}
}

func TestBuffer2D_Fill(t *testing.T) {
	b := NewBuffer2D[int](2, 2)
	b.Fill(7)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if got := b.At(x, y); got != 7 {
				t.Errorf("At(%d,%d) = %d, want 7", x, y, got)
			}
		}
	}
}

func TestNewBuffer2DFilled(t *testing.T) {
	b := NewBuffer2DFilled(3, 3, 1.0)
	if got := b.At(1, 1); got != 1.0 {
		t.Errorf("At(1,1) = %v, want 1.0", got)
	}
}

func TestEmptyTarget(t *testing.T) {
	e := &EmptyTarget[int]{W: 10, H: 10, Fill: -1}
	w, h := e.Size()
	if w != 10 || h != 10 {
		t.Fatalf("Size() = (%d,%d), want (10,10)", w, h)
	}
	e.Set(3, 3, 999)
	if got := e.At(3, 3); got != -1 {
		t.Errorf("At(3,3) = %d, want -1 (Set should be a no-op)", got)
	}
}

func TestSliceTarget(t *testing.T) {
	data := make([]int, 12)
	s := &SliceTarget[int]{W: 4, H: 3, Data: data}
	s.Set(1, 2, 5)
	if got := s.At(1, 2); got != 5 {
		t.Errorf("At(1,2) = %d, want 5", got)
	}
	if data[2*4+1] != 5 {
		t.Error("SliceTarget did not write through to backing slice")
	}
}
