// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster3d is a CPU-resident 3D rasterization pipeline.
//
// It accepts a user-defined [Pipeline] (vertex, optional geometry, fragment
// and blend stages), a stream of vertex attributes, and caller-owned
// [Target] buffers, and rasterizes triangles, lines and points into them.
// The engine has no dependency on graphics hardware, windowing, or file
// I/O: every input and output is an in-memory Go value, which makes it
// suitable for headless rendering, prerendering, tests, and embedded
// displays.
//
// The fixed-function pipeline lives in this package and internal/raster
// (clipping, scan conversion, perspective-correct interpolation, depth
// testing) and internal/parallel (tile partitioning and the worker pool
// used for parallel dispatch). Vertex, fragment, and blend logic is
// supplied entirely by the caller through [Pipeline].
package raster3d
