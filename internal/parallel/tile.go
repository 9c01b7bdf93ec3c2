// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package parallel partitions a render target into independent screen-space
// tiles and distributes per-tile rasterization work across a pool of
// worker goroutines.
//
// Tiles are bounds-only: unlike a pixel-buffer tiler, this package never
// owns pixel storage (targets are caller-supplied and generic over
// element type), so a Tile is just the rectangle a worker is responsible
// for. Partitioning is disjoint, so two workers never write the same
// pixel, which is what gives parallel dispatch the same result as serial
// dispatch (determinism across tile boundaries; see WorkerPool).
package parallel

// TileSize is the edge length of a square tile in pixels. 64 pixels
// balances per-tile overhead against load-balancing granularity.
const TileSize = 64

// Tile is a rectangular, disjoint region of the render target: pixels in
// [X, X+W) x [Y, Y+H).
type Tile struct {
	X, Y, W, H int
}

// Grid partitions a w x h target into row-major TileSize x TileSize
// tiles. Edge tiles are shrunk to fit when w or h isn't an exact
// multiple of TileSize.
func Grid(w, h int) []Tile {
	if w <= 0 || h <= 0 {
		return nil
	}

	cols := (w + TileSize - 1) / TileSize
	rows := (h + TileSize - 1) / TileSize

	tiles := make([]Tile, 0, cols*rows)
	for ty := 0; ty < rows; ty++ {
		for tx := 0; tx < cols; tx++ {
			x := tx * TileSize
			y := ty * TileSize
			tw := min(TileSize, w-x)
			th := min(TileSize, h-y)
			tiles = append(tiles, Tile{X: x, Y: y, W: tw, H: th})
		}
	}
	return tiles
}
