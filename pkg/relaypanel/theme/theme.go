// Package theme provides the stock themes applied to a panel display before its
// screens are built.
package theme

import "github.com/BrandonKowalski/relaypanel/pkg/relaypanel/widget"

// Palette names a main palette colour as 0xRRGGBB.
type Palette uint32

const (
	PaletteRed    Palette = 0xF44336
	PalettePink   Palette = 0xE91E63
	PalettePurple Palette = 0x9C27B0
	PaletteIndigo Palette = 0x3F51B5
	PaletteBlue   Palette = 0x2196F3
	PaletteCyan   Palette = 0x00BCD4
	PaletteTeal   Palette = 0x009688
	PaletteGreen  Palette = 0x4CAF50
	PaletteAmber  Palette = 0xFFC107
	PaletteOrange Palette = 0xFF9800
	PaletteGrey   Palette = 0x9E9E9E
)

// DefaultFontSize is used when a theme is built without an explicit size.
const DefaultFontSize = 14

// Default builds the stock panel theme from a primary and secondary palette
// colour, in light or dark mode, with the given font.
func Default(primary, secondary Palette, dark bool, fontPath string) widget.Theme {
	t := widget.Theme{
		Primary:   uint32(primary),
		Secondary: uint32(secondary),
		OnPrimary: 0xFFFFFF,
		Dark:      dark,
		FontPath:  fontPath,
		FontSize:  DefaultFontSize,
	}
	if dark {
		t.Background = 0x15171A
		t.Surface = 0x3A3D42
		t.Text = 0xE0E0E0
	} else {
		t.Background = 0xFFFFFF
		t.Surface = 0xE0E0E0
		t.Text = 0x212121
	}
	return t
}

// Panel is the theme the relay node screens are designed against: blue
// primary, red secondary, light mode.
func Panel(fontPath string) widget.Theme {
	return Default(PaletteBlue, PaletteRed, false, fontPath)
}
