// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "testing"

func screenTri(x0, y0, x1, y1, x2, y2 float64) [3]ScreenVertex[NoVarying] {
	return [3]ScreenVertex[NoVarying]{
		{X: x0, Y: y0, Z: 0, InvW: 1},
		{X: x1, Y: y1, Z: 0, InvW: 1},
		{X: x2, Y: y2, Z: 0, InvW: 1},
	}
}

func TestRasterizeTriangle_CoversInterior(t *testing.T) {
	tri := screenTri(0, 0, 4, 0, 0, 4)
	clip := Bounds{MinX: 0, MinY: 0, MaxX: 4, MaxY: 4}

	var count int
	RasterizeTriangle(tri, clip, func(x, y int, z float64, data NoVarying) {
		count++
	})

	if count == 0 {
		t.Fatal("expected some covered pixels")
	}
}

func TestRasterizeTriangle_Degenerate(t *testing.T) {
	tri := screenTri(0, 0, 4, 0, 8, 0) // collinear, zero area
	clip := Bounds{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}

	called := false
	RasterizeTriangle(tri, clip, func(x, y int, z float64, data NoVarying) {
		called = true
	})
	if called {
		t.Fatal("degenerate triangle should produce no samples")
	}
}

func TestRasterizeTriangle_SharedEdgeNoDoubleCoverage(t *testing.T) {
	// Two triangles making a unit square, split along the diagonal.
	// Every interior pixel must be visited by exactly one of them.
	a := screenTri(0, 0, 4, 0, 0, 4)
	b := screenTri(4, 0, 4, 4, 0, 4)

	clip := Bounds{MinX: 0, MinY: 0, MaxX: 4, MaxY: 4}
	hits := make(map[[2]int]int)
	visit := func(x, y int, z float64, data NoVarying) {
		hits[[2]int{x, y}]++
	}

	RasterizeTriangle(a, clip, visit)
	RasterizeTriangle(b, clip, visit)

	for px, n := range hits {
		if n != 1 {
			t.Errorf("pixel %v visited %d times, want 1", px, n)
		}
	}
	if len(hits) != 16 {
		t.Errorf("covered %d pixels, want 16 (full 4x4 square)", len(hits))
	}
}

func TestRasterizeTriangle_RespectsClip(t *testing.T) {
	tri := screenTri(0, 0, 10, 0, 0, 10)
	clip := Bounds{MinX: 2, MinY: 2, MaxX: 5, MaxY: 5}

	RasterizeTriangle(tri, clip, func(x, y int, z float64, data NoVarying) {
		if x < clip.MinX || x >= clip.MaxX || y < clip.MinY || y >= clip.MaxY {
			t.Fatalf("pixel (%d,%d) outside clip bounds %+v", x, y, clip)
		}
	})
}

func TestRasterizeTriangle_PerspectiveCorrect(t *testing.T) {
	// A triangle where the third vertex has a much smaller
	// w than the other two. At a point near that vertex, the
	// affine (non-perspective-corrected) average of the varyings would
	// differ noticeably from the perspective-correct one, since the two
	// diverge everywhere the triangle isn't fronto-parallel.
	tri := [3]ScreenVertex[colorScalar]{
		{X: 0, Y: 0, Z: 0, InvW: 1, Data: 0},
		{X: 8, Y: 0, Z: 0, InvW: 1, Data: 1},
		{X: 4, Y: 8, Z: 0, InvW: 10, Data: 0},
	}
	clip := Bounds{MinX: 0, MinY: 0, MaxX: 8, MaxY: 8}

	const px, py = 4, 6 // near the low-w apex, where correction matters most

	var got colorScalar
	var found bool
	RasterizeTriangle(tri, clip, func(x, y int, z float64, data colorScalar) {
		if x == px && y == py {
			got = data
			found = true
		}
	})
	if !found {
		t.Fatal("expected pixel to be covered")
	}

	// Recompute the expected perspective-corrected value independently,
	// from the same affine barycentric weights RasterizeTriangle would
	// have derived for this pixel center, to confirm 1/w weighting was
	// actually applied rather than silently skipped.
	cx, cy := float64(px)+0.5, float64(py)+0.5
	area2 := SignedArea2(tri[0], tri[1], tri[2])
	e0 := NewEdgeFunction(float32(tri[1].X), float32(tri[1].Y), float32(tri[2].X), float32(tri[2].Y)).At(float32(cx), float32(cy))
	e1 := NewEdgeFunction(float32(tri[2].X), float32(tri[2].Y), float32(tri[0].X), float32(tri[0].Y)).At(float32(cx), float32(cy))
	e2 := NewEdgeFunction(float32(tri[0].X), float32(tri[0].Y), float32(tri[1].X), float32(tri[1].Y)).At(float32(cx), float32(cy))
	u, v, w := float64(e0)/area2, float64(e1)/area2, float64(e2)/area2

	pu, pv, pw := u*tri[0].InvW, v*tri[1].InvW, w*tri[2].InvW
	sum := pu + pv + pw
	pu, pv, pw = pu/sum, pv/sum, pw/sum
	want := colorScalar(pu*float64(tri[0].Data) + pv*float64(tri[1].Data) + pw*float64(tri[2].Data))

	affine := colorScalar(u*float64(tri[0].Data) + v*float64(tri[1].Data) + w*float64(tri[2].Data))

	const tol = 1e-3
	if d := float64(got - want); d > tol || d < -tol {
		t.Errorf("perspective-corrected data = %v, want %v", got, want)
	}
	if d := float64(got - affine); d > -tol && d < tol {
		t.Errorf("perspective-corrected result %v should differ from naive affine %v", got, affine)
	}
}
