// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "github.com/chewxy/math32"

// Visit is called once per covered, in-bounds pixel sample produced by
// RasterizeTriangle or RasterizeLine. z is normalized depth in [0, 1];
// data is the perspective-correctly interpolated varyings. The caller
// performs depth testing, fragment invocation, and blending; Visit
// itself makes no decision about whether the sample survives.
type Visit[D any] func(x, y int, z float64, data D)

// Bounds is an inclusive-exclusive pixel rectangle: x in [MinX, MaxX),
// y in [MinY, MaxY).
type Bounds struct {
	MinX, MinY, MaxX, MaxY int
}

// Intersect returns the overlap of two bounds, which may be empty
// (MaxX <= MinX or MaxY <= MinY).
func (b Bounds) Intersect(o Bounds) Bounds {
	r := Bounds{
		MinX: max(b.MinX, o.MinX),
		MinY: max(b.MinY, o.MinY),
		MaxX: min(b.MaxX, o.MaxX),
		MaxY: min(b.MaxY, o.MaxY),
	}
	if r.MaxX < r.MinX {
		r.MaxX = r.MinX
	}
	if r.MaxY < r.MinY {
		r.MaxY = r.MinY
	}
	return r
}

func (b Bounds) Empty() bool { return b.MaxX <= b.MinX || b.MaxY <= b.MinY }

// RasterizeTriangle scan-converts one screen-space triangle within clip
// (typically the full target, or a single tile's bounds under parallel
// dispatch), sampling at pixel centers and invoking visit for every
// covered sample. Degenerate triangles (zero screen-space area) produce
// no samples.
func RasterizeTriangle[D Varying[D]](tri [3]ScreenVertex[D], clip Bounds, visit Visit[D]) {
	area2 := float32(SignedArea2(tri[0], tri[1], tri[2]))
	if area2 == 0 {
		return
	}

	minX := math32.Floor(float32(min(tri[0].X, tri[1].X, tri[2].X)))
	minY := math32.Floor(float32(min(tri[0].Y, tri[1].Y, tri[2].Y)))
	maxX := math32.Ceil(float32(max(tri[0].X, tri[1].X, tri[2].X)))
	maxY := math32.Ceil(float32(max(tri[0].Y, tri[1].Y, tri[2].Y)))

	bbox := Bounds{MinX: int(minX), MinY: int(minY), MaxX: int(maxX), MaxY: int(maxY)}
	bbox = bbox.Intersect(clip)
	if bbox.Empty() {
		return
	}

	x0, y0 := float32(tri[0].X), float32(tri[0].Y)
	x1, y1 := float32(tri[1].X), float32(tri[1].Y)
	x2, y2 := float32(tri[2].X), float32(tri[2].Y)

	e12 := NewEdgeFunction(x1, y1, x2, y2)
	e20 := NewEdgeFunction(x2, y2, x0, y0)
	e01 := NewEdgeFunction(x0, y0, x1, y1)

	topLeft := [3]bool{
		TopLeft(x1, y1, x2, y2),
		TopLeft(x2, y2, x0, y0),
		TopLeft(x0, y0, x1, y1),
	}
	if area2 > 0 {
		// TopLeft expects the winding of a negative-area triangle; walk a
		// positive-area triangle's edges in reverse so top and left edges
		// are still the inclusive ones.
		topLeft = [3]bool{
			TopLeft(x2, y2, x1, y1),
			TopLeft(x0, y0, x2, y2),
			TopLeft(x1, y1, x0, y0),
		}
	}

	invW0, invW1, invW2 := float32(tri[0].InvW), float32(tri[1].InvW), float32(tri[2].InvW)

	for py := bbox.MinY; py < bbox.MaxY; py++ {
		cy := float32(py) + 0.5
		for px := bbox.MinX; px < bbox.MaxX; px++ {
			cx := float32(px) + 0.5

			bc := Barycentric{W0: e12.At(cx, cy), W1: e20.At(cx, cy), W2: e01.At(cx, cy)}
			if area2 < 0 {
				neg := Barycentric{W0: -bc.W0, W1: -bc.W1, W2: -bc.W2}
				if !neg.Covered(topLeft) {
					continue
				}
			} else if !bc.Covered(topLeft) {
				continue
			}

			u, v, w := bc.Normalized(area2)
			u, v, w = clampf32(u, 0, 1), clampf32(v, 0, 1), clampf32(w, 0, 1)

			// Perspective-correct barycentric weights: renormalize after
			// dividing each weight by its vertex's clip-w.
			pu := u * invW0
			pv := v * invW1
			pw := w * invW2
			sum := pu + pv + pw
			if sum == 0 {
				continue
			}
			pu, pv, pw = pu/sum, pv/sum, pw/sum

			z := float64(u)*tri[0].Z + float64(v)*tri[1].Z + float64(w)*tri[2].Z

			data := tri[0].Data.
				ScaleVarying(float64(pu)).
				AddVarying(tri[1].Data.ScaleVarying(float64(pv))).
				AddVarying(tri[2].Data.ScaleVarying(float64(pw)))

			visit(px, py, z, data)
		}
	}
}
