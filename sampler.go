// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster3d

import "github.com/chewxy/math32"

// Filter selects how a sample between texel centers is reconstructed.
type Filter int

const (
	FilterNearest Filter = iota
	FilterLinear
)

// Address selects how out-of-range texel coordinates are mapped back into
// range.
type Address int

const (
	AddressClamp Address = iota
	AddressRepeat
	AddressMirror
)

func (a Address) wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	switch a {
	case AddressRepeat:
		i %= n
		if i < 0 {
			i += n
		}
		return i
	case AddressMirror:
		period := 2 * n
		i %= period
		if i < 0 {
			i += period
		}
		if i >= n {
			i = period - 1 - i
		}
		return i
	default: // AddressClamp
		if i < 0 {
			return 0
		}
		if i >= n {
			return n - 1
		}
		return i
	}
}

// Lerpable is the algebra a sampled texel type must support for
// FilterLinear: scale by a scalar in [0, 1] and add, the same shape as
// [Varying] but kept distinct since samplers are a caller-side helper
// independent of the rasterizer pipeline (spec §4.6).
type Lerpable[T any] interface {
	ScaleVarying(s float64) T
	AddVarying(o T) T
}

// Sampler reads texels from a w x h row-major slice with a configurable
// filter and addressing mode. It is a pure helper: callers invoke it from
// their own fragment stage; the rasterizer never calls it directly.
type Sampler[T Lerpable[T]] struct {
	W, H    int
	Texels  []T
	Filter  Filter
	Address Address
}

// Sample reads the texel nearest to, or bilinearly filtered around, the
// normalized coordinate (u, v) in [0, 1]^2 (before addressing is applied
// to bring it in range).
func (s Sampler[T]) Sample(u, v float64) T {
	fx := u*float64(s.W) - 0.5
	fy := v*float64(s.H) - 0.5

	if s.Filter == FilterNearest {
		x := s.Address.wrap(int(math32.Round(float32(fx))), s.W)
		y := s.Address.wrap(int(math32.Round(float32(fy))), s.H)
		return s.texel(x, y)
	}

	x0 := int(math32.Floor(float32(fx)))
	y0 := int(math32.Floor(float32(fy)))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	c00 := s.texel(s.Address.wrap(x0, s.W), s.Address.wrap(y0, s.H))
	c10 := s.texel(s.Address.wrap(x0+1, s.W), s.Address.wrap(y0, s.H))
	c01 := s.texel(s.Address.wrap(x0, s.W), s.Address.wrap(y0+1, s.H))
	c11 := s.texel(s.Address.wrap(x0+1, s.W), s.Address.wrap(y0+1, s.H))

	top := c00.ScaleVarying(1 - tx).AddVarying(c10.ScaleVarying(tx))
	bot := c01.ScaleVarying(1 - tx).AddVarying(c11.ScaleVarying(tx))
	return top.ScaleVarying(1 - ty).AddVarying(bot.ScaleVarying(ty))
}

func (s Sampler[T]) texel(x, y int) T {
	return s.Texels[y*s.W+x]
}
