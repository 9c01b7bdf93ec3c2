// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

// TrivialReject reports whether all three vertices of a triangle lie
// outside the same clip-space half-space (x<-w, x>w, y<-w, y>w, z>w
// beyond the far plane, or behind the near plane as reported by nearDist), meaning
// the triangle cannot contribute any visible coverage and clipping can be
// skipped entirely. A triangle with any NaN clip coordinate is also
// trivially rejected (spec §7, numeric degeneracy): NaN fails every plain
// comparison below, so it would otherwise survive into ClipNear and
// rasterization with undefined screen-space bounds.
func TrivialReject[D any](tri [3]ClipVertex[D], nearDist func(Vec4) float64) bool {
	for _, v := range tri {
		if hasNaN(v.Pos) {
			return true
		}
	}
	allOutside := func(pred func(Vec4) bool) bool {
		return pred(tri[0].Pos) && pred(tri[1].Pos) && pred(tri[2].Pos)
	}
	if allOutside(func(p Vec4) bool { return p[0] < -p[3] }) {
		return true
	}
	if allOutside(func(p Vec4) bool { return p[0] > p[3] }) {
		return true
	}
	if allOutside(func(p Vec4) bool { return p[1] < -p[3] }) {
		return true
	}
	if allOutside(func(p Vec4) bool { return p[1] > p[3] }) {
		return true
	}
	if allOutside(func(p Vec4) bool { return p[2] > p[3] }) {
		return true
	}
	if allOutside(func(p Vec4) bool { return nearDist(p) < 0 }) {
		return true
	}
	return false
}

// ClipNear clips a triangle against the near plane, defined by nearDist
// returning the signed distance of a clip-space position from the plane
// (non-negative means inside). It returns zero, one, or two triangles:
// fully outside triangles are dropped, fully inside triangles pass
// through unchanged, and triangles straddling the plane are replaced by
// a fan-triangulated clipped polygon (spec §4.3, point 2).
//
// Clipped vertex attributes are linearly interpolated in clip space.
//
// ClipNear does not itself re-derive TrivialReject's NaN guard; callers
// (Render) always call TrivialReject first and skip ClipNear when it
// reports true, so a NaN-positioned triangle never reaches here. ClipNear
// still refuses to operate on one directly, returning nil, in case a
// future caller clips without that precondition.
func ClipNear[D Varying[D]](tri [3]ClipVertex[D], nearDist func(Vec4) float64) [][3]ClipVertex[D] {
	for _, v := range tri {
		if hasNaN(v.Pos) {
			return nil
		}
	}

	d := [3]float64{
		nearDist(tri[0].Pos),
		nearDist(tri[1].Pos),
		nearDist(tri[2].Pos),
	}

	inside := 0
	for _, v := range d {
		if v >= 0 {
			inside++
		}
	}

	switch inside {
	case 0:
		return nil
	case 3:
		return [][3]ClipVertex[D]{tri}
	}

	// Sutherland-Hodgman against one plane: walk the triangle's edges,
	// emitting the entering/leaving vertex pairs. The result is a convex
	// polygon of 3 or 4 vertices.
	var poly []ClipVertex[D]
	for i := 0; i < 3; i++ {
		cur, next := tri[i], tri[(i+1)%3]
		curIn, nextIn := d[i] >= 0, d[(i+1)%3] >= 0

		if curIn {
			poly = append(poly, cur)
		}
		if curIn != nextIn {
			t := d[i] / (d[i] - d[(i+1)%3])
			poly = append(poly, ClipVertex[D]{
				Pos:  LerpVec4(cur.Pos, next.Pos, t),
				Data: LerpVarying(cur.Data, next.Data, t),
			})
		}
	}

	if len(poly) < 3 {
		return nil
	}

	out := make([][3]ClipVertex[D], 0, len(poly)-2)
	for i := 1; i+1 < len(poly); i++ {
		out = append(out, [3]ClipVertex[D]{poly[0], poly[i], poly[i+1]})
	}
	return out
}
