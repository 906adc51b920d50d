package app

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// LineFitterTheme provides a custom theme for the application.
type LineFitterTheme struct{}

var _ fyne.Theme = (*LineFitterTheme)(nil)

func (t *LineFitterTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 0x1E, G: 0x88, B: 0xE5, A: 0xFF} // Blue, matches the scatter
	case theme.ColorNameSelection:
		return color.NRGBA{R: 0xFF, G: 0x8F, B: 0x00, A: 0x60} // Amber, matches the line
	default:
		return theme.DefaultTheme().Color(name, variant)
	}
}

func (t *LineFitterTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *LineFitterTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *LineFitterTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}
