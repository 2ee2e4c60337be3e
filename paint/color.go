// Package paint describes the attributes applied to draw operations:
// colors, blend modes, stroke parameters, color sources and the color,
// image and mask filters. A Paint is a complete snapshot of those
// attributes.
//
// Filters and color sources are sealed interfaces whose implementations
// are pointer types, so interface values may be compared with == (identity)
// without panicking. Structural comparison goes through the Equal* helpers.
package paint

import "fmt"

// Color is a non-premultiplied 32-bit color in 0xAARRGGBB order.
type Color uint32

// Common colors.
const (
	Transparent Color = 0x00000000
	Black       Color = 0xFF000000
	White       Color = 0xFFFFFFFF
	Red         Color = 0xFFFF0000
	Green       Color = 0xFF00FF00
	Blue        Color = 0xFF0000FF
)

// ARGB builds a color from 8-bit channels.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGBA builds a color from float channels in [0, 1]. Values are clamped.
func RGBA(r, g, b, a float64) Color {
	return ARGB(unitToByte(a), unitToByte(r), unitToByte(g), unitToByte(b))
}

// A returns the alpha channel.
func (c Color) A() uint8 { return uint8(c >> 24) }

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c) }

// Opacity returns the alpha channel as a value in [0, 1].
func (c Color) Opacity() float64 { return float64(c.A()) / 255 }

// IsTransparent reports whether the alpha channel is zero.
func (c Color) IsTransparent() bool { return c.A() == 0 }

// IsOpaque reports whether the alpha channel is 255.
func (c Color) IsOpaque() bool { return c.A() == 0xFF }

// WithAlpha returns c with its alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	return c&0x00FFFFFF | Color(a)<<24
}

// ModulateOpacity scales the alpha channel by opacity in [0, 1].
func (c Color) ModulateOpacity(opacity float64) Color {
	if opacity >= 1 {
		return c
	}
	return c.WithAlpha(unitToByte(c.Opacity() * opacity))
}

// Inverted returns the color with its RGB channels inverted.
func (c Color) Inverted() Color {
	return c ^ 0x00FFFFFF
}

// String returns the color as #AARRGGBB.
func (c Color) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

func unitToByte(v float64) uint8 {
	switch {
	case v <= 0 || v != v:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v*255 + 0.5)
	}
}
