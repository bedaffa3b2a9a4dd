package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// WarningTheme tints the default theme with the tool's hazard accent.
type WarningTheme struct {
	fyne.Theme
}

// NewWarningTheme creates the application theme.
func NewWarningTheme() fyne.Theme {
	return &WarningTheme{Theme: theme.DefaultTheme()}
}

// Color returns the amber accent for the primary color and defers the
// rest to the base theme.
func (t *WarningTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if name == theme.ColorNamePrimary {
		return color.NRGBA{R: 0xff, G: 0xd9, B: 0x00, A: 0xff}
	}
	return t.Theme.Color(name, variant)
}
