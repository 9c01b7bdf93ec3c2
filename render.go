// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster3d

import (
	"math"

	"github.com/gogpu/raster3d/internal/parallel"
	"github.com/gogpu/raster3d/internal/raster"
)

// RenderOptions configures how Render distributes rasterization work.
type RenderOptions struct {
	parallel bool
	workers  int
}

// RenderOption mutates a RenderOptions.
type RenderOption func(*RenderOptions)

// WithParallel enables tiled parallel dispatch (spec §5, §7). workers
// selects the worker count; 0 uses GOMAXPROCS. Parallel dispatch produces
// bitwise-identical output to the serial path for the same inputs (spec
// §8, invariant 5).
func WithParallel(workers int) RenderOption {
	return func(o *RenderOptions) {
		o.parallel = true
		o.workers = workers
	}
}

// Render is the pipeline dispatcher entry point (spec §4.1): it runs the
// vertex stage over every vertex referenced by the draw (with
// memoization across shared indices), assembles primitives from the
// index stream according to kind, optionally runs the geometry stage,
// clips, culls, and rasterizes each primitive, and composites surviving
// fragments into colorTarget and (if non-nil) depthTarget.
//
// indices may be nil, in which case vertices are consumed sequentially.
// An empty vertex stream is a no-op. Size mismatches between colorTarget
// and depthTarget are rejected before any user shader runs.
func Render[V any, D Varying[D], Px any](
	p *Pipeline[V, D, Px],
	vertices []V,
	indices []int,
	kind PrimitiveKind,
	coord CoordinateMode,
	cull CullMode,
	depth DepthMode,
	pixelMode PixelMode,
	colorTarget Target[Px],
	depthTarget Target[float64],
	opts ...RenderOption,
) error {
	if colorTarget == nil {
		return ErrNilTarget
	}
	cw, ch := colorTarget.Size()
	if depthTarget != nil {
		dw, dh := depthTarget.Size()
		if dw != cw || dh != ch {
			return ErrTargetSizeMismatch
		}
	}
	if len(vertices) == 0 {
		return nil
	}

	idx := indices
	if idx == nil {
		idx = sequentialIndices(len(vertices))
	}
	if bad, ok := ValidateIndices(idx, len(vertices)); !ok {
		return &BadIndexError{Index: bad, Len: len(vertices)}
	}

	var opt RenderOptions
	for _, o := range opts {
		o(&opt)
	}

	cache := make([]*ClipVertex[D], len(vertices))
	shade := func(i int) ClipVertex[D] {
		if cache[i] == nil {
			pos, data := p.Vert(vertices[i])
			cv := ClipVertex[D]{Pos: pos, Data: data}
			cache[i] = &cv
		}
		return *cache[i]
	}

	var triangles [][3]raster.ScreenVertex[D]
	var lines [][2]raster.ScreenVertex[D]
	var points []raster.ScreenVertex[D]

	nearDist := func(v Vec4) float64 {
		if coord.ZRange == ZZeroToOne {
			return v[2]
		}
		return v[2] + v[3]
	}

	toScreen := func(cv ClipVertex[D]) raster.ScreenVertex[D] {
		return raster.ToScreen[D](cv, cw, ch, coord.flipY(), coord.normalizeDepth)
	}

	assembleIndices(kind, idx, func(vertIdx []int) {
		verts := make([]ClipVertex[D], len(vertIdx))
		for i, vi := range vertIdx {
			verts[i] = shade(vi)
		}

		for _, prim := range p.geom(verts) {
			switch len(prim) {
			case 1:
				if !raster.ValidClip(prim[0].Pos) {
					Logger().Debug("raster3d: dropped point with degenerate clip position", "pos", prim[0].Pos)
					continue
				}
				points = append(points, toScreen(prim[0]))

			case 2:
				if !raster.ValidClip(prim[0].Pos) || !raster.ValidClip(prim[1].Pos) {
					Logger().Debug("raster3d: dropped line with degenerate clip position", "a", prim[0].Pos, "b", prim[1].Pos)
					continue
				}
				lines = append(lines, [2]raster.ScreenVertex[D]{toScreen(prim[0]), toScreen(prim[1])})

			case 3:
				tri := [3]ClipVertex[D]{prim[0], prim[1], prim[2]}
				for _, v := range tri {
					if math.IsNaN(v.Pos[0]) || math.IsNaN(v.Pos[1]) || math.IsNaN(v.Pos[2]) || math.IsNaN(v.Pos[3]) {
						Logger().Debug("raster3d: dropped triangle with NaN clip position", "pos", v.Pos)
						break
					}
				}
				if raster.TrivialReject(tri, nearDist) {
					continue
				}
				for _, clipped := range raster.ClipNear(tri, nearDist) {
					a, b, c := toScreen(clipped[0]), toScreen(clipped[1]), toScreen(clipped[2])
					area2 := raster.SignedArea2(a, b, c)
					if area2 == 0 {
						Logger().Debug("raster3d: dropped degenerate triangle")
						continue
					}
					if shouldCull(area2, cull) {
						continue
					}
					triangles = append(triangles, [3]raster.ScreenVertex[D]{a, b, c})
				}
			}
		}
	})

	visit := func(x, y int, z float64, data D) {
		passed := depth.Compare.passes(z, readDepth(depthTarget, x, y))
		if !passed {
			return
		}
		if depth.WriteEnabled && depthTarget != nil {
			depthTarget.Set(x, y, z)
		}
		if pixelMode == PixelPassthrough {
			return
		}
		px := p.Frag(data)
		if pixelMode == PixelBlend {
			px = p.blend(colorTarget.At(x, y), px)
		}
		colorTarget.Set(x, y, px)
	}

	fullBounds := raster.Bounds{MinX: 0, MinY: 0, MaxX: cw, MaxY: ch}

	renderTile := func(b raster.Bounds) {
		for _, tri := range triangles {
			raster.RasterizeTriangle(tri, b, visit)
		}
		for _, ln := range lines {
			raster.RasterizeLine(ln[0], ln[1], b, visit)
		}
		for _, pt := range points {
			raster.RasterizePoint(pt, b, visit)
		}
	}

	if !opt.parallel {
		renderTile(fullBounds)
		return nil
	}

	tiles := parallel.Grid(cw, ch)
	pool := parallel.NewWorkerPool(opt.workers)
	pool.Dispatch(tiles, func(t parallel.Tile) {
		renderTile(raster.Bounds{MinX: t.X, MinY: t.Y, MaxX: t.X + t.W, MaxY: t.Y + t.H})
	})
	return nil
}

func readDepth(depthTarget Target[float64], x, y int) float64 {
	if depthTarget == nil {
		return 0
	}
	return depthTarget.At(x, y)
}

// shouldCull reports whether a screen-space triangle with the given
// doubled signed area should be discarded under cull. Screen space has y
// increasing downward; a triangle whose vertices run clockwise as seen on
// screen (positive area2, by the shoelace formula in that space) is
// front-facing.
// Flipping two vertices of a triangle negates area2, which is what gives
// CullFront on winding W the same result as CullBack on the reverse of W
// (spec §8, invariant 6).
func shouldCull(area2 float64, cull CullMode) bool {
	switch cull {
	case CullBack:
		return area2 < 0
	case CullFront:
		return area2 > 0
	default:
		return false
	}
}
