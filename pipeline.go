// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster3d

// Pipeline is the caller-supplied behavior bound to a render call (spec
// §3). V is the per-vertex input record; D is the interpolated varyings
// type, which must support the [Varying] algebra so the rasterizer can
// blend it across a primitive's vertices; Px is the per-fragment output
// record written into the color target.
//
// Vert and Frag are required. Geom and Blend may be left nil, in which
// case the dispatcher uses a pass-through geometry stage and a
// replace-on-write blend respectively. Vert and Geom run on the calling
// goroutine before rasterization starts; Frag and Blend are invoked
// concurrently from multiple worker goroutines during tiled dispatch. All
// of them must be pure functions of their arguments and the pipeline's
// own immutable fields (spec §5).
type Pipeline[V any, D Varying[D], Px any] struct {
	// Vert transforms one input vertex into a clip-space position and its
	// varyings.
	Vert func(V) (Vec4, D)

	// Geom optionally re-shapes a primitive's already-transformed
	// vertices into a sequence of output primitives of the same vertex
	// count. Most pipelines leave this nil. When non-nil, every returned
	// primitive must have the same vertex count as the input (the
	// dispatcher does not support changing primitive topology, only
	// bounded amplification — spec §1 Non-goals).
	Geom func(in []ClipVertex[D]) [][]ClipVertex[D]

	// Frag computes the fragment output for one sample of interpolated
	// varyings.
	Frag func(D) Px

	// Blend combines an incoming fragment with the color already present
	// in the target. Only consulted when PixelMode is PixelBlend.
	Blend func(old, new Px) Px
}

func (p *Pipeline[V, D, Px]) geom(in []ClipVertex[D]) [][]ClipVertex[D] {
	if p.Geom == nil {
		return [][]ClipVertex[D]{in}
	}
	return p.Geom(in)
}

func (p *Pipeline[V, D, Px]) blend(old, new Px) Px {
	if p.Blend == nil {
		return new
	}
	return p.Blend(old, new)
}
