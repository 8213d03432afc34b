package internal

import "github.com/veandco/go-sdl2/sdl"

// HexToColor converts 0xRRGGBB to an opaque SDL colour.
func HexToColor(rgb uint32) sdl.Color {
	return sdl.Color{
		R: uint8(rgb >> 16),
		G: uint8(rgb >> 8),
		B: uint8(rgb),
		A: 255,
	}
}

// WithAlpha returns c with its alpha replaced.
func WithAlpha(c sdl.Color, a uint8) sdl.Color {
	c.A = a
	return c
}

// Dim scales a colour's channels by brightness/255, as an LED's glow fades.
func Dim(c sdl.Color, brightness uint8) sdl.Color {
	f := uint32(brightness)
	return sdl.Color{
		R: uint8(uint32(c.R) * f / 255),
		G: uint8(uint32(c.G) * f / 255),
		B: uint8(uint32(c.B) * f / 255),
		A: c.A,
	}
}
