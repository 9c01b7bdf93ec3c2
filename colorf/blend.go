// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package colorf

// Mode selects a Porter-Duff compositing operator (Porter & Duff,
// "Compositing Digital Images", 1984).
type Mode uint8

const (
	Clear           Mode = iota // 0
	Source                      // S
	Destination                 // D
	SourceOver                  // S + D*(1-Sa)
	DestinationOver             // D + S*(1-Da)
	SourceIn                    // S*Da
	DestinationIn               // D*Sa
	SourceOut                   // S*(1-Da)
	DestinationOut              // D*(1-Sa)
	SourceAtop                  // S*Da + D*(1-Sa)
	DestinationAtop             // D*Sa + S*(1-Da)
	Xor                         // S*(1-Da) + D*(1-Sa)
)

// Func composites src over dst (both straight alpha, linear light) under
// m. It is suitable as a raster3d.Pipeline.Blend function when Pixel is
// RGBA.
func Func(m Mode) func(dst, src RGBA) RGBA {
	return func(dst, src RGBA) RGBA {
		return Composite(m, dst, src)
	}
}

// Composite blends src over dst under m, converting to premultiplied
// alpha internally (the space Porter-Duff's algebra is defined in) and
// back to straight alpha on return.
func Composite(m Mode, dst, src RGBA) RGBA {
	s := premultiply(src)
	d := premultiply(dst)

	var out RGBA
	switch m {
	case Clear:
		out = RGBA{}
	case Source:
		out = s
	case Destination:
		out = d
	case SourceOver:
		out = addScaled(s, 1, d, 1-s.A)
	case DestinationOver:
		out = addScaled(d, 1, s, 1-d.A)
	case SourceIn:
		out = scale(s, d.A)
	case DestinationIn:
		out = scale(d, s.A)
	case SourceOut:
		out = scale(s, 1-d.A)
	case DestinationOut:
		out = scale(d, 1-s.A)
	case SourceAtop:
		out = addScaled(s, d.A, d, 1-s.A)
	case DestinationAtop:
		out = addScaled(d, s.A, s, 1-d.A)
	case Xor:
		out = addScaled(s, 1-d.A, d, 1-s.A)
	default:
		out = addScaled(s, 1, d, 1-s.A)
	}
	return unpremultiply(out)
}

func premultiply(c RGBA) RGBA {
	return RGBA{R: c.R * c.A, G: c.G * c.A, B: c.B * c.A, A: c.A}
}

func unpremultiply(c RGBA) RGBA {
	if c.A == 0 {
		return RGBA{}
	}
	return RGBA{R: c.R / c.A, G: c.G / c.A, B: c.B / c.A, A: c.A}
}

func scale(c RGBA, s float64) RGBA {
	return RGBA{R: c.R * s, G: c.G * s, B: c.B * s, A: c.A * s}
}

func addScaled(a RGBA, sa float64, b RGBA, sb float64) RGBA {
	x, y := scale(a, sa), scale(b, sb)
	return RGBA{R: x.R + y.R, G: x.G + y.G, B: x.B + y.B, A: x.A + y.A}
}
