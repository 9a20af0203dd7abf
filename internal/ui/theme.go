package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Theme colors
var (
	colorPrimary    = color.RGBA{R: 31, G: 106, B: 165, A: 255}
	colorSuccess    = color.RGBA{R: 46, G: 160, B: 67, A: 255}
	colorError      = color.RGBA{R: 183, G: 28, B: 28, A: 255}
	colorDarkPanel  = color.RGBA{R: 36, G: 36, B: 36, A: 255}
	colorLightPanel = color.RGBA{R: 235, G: 235, B: 235, A: 255}
)

// AppTheme follows the system light/dark variant with a blue accent and
// slightly larger controls for the single form window.
type AppTheme struct{}

// NewAppTheme creates the application theme
func NewAppTheme() fyne.Theme {
	return &AppTheme{}
}

// Color returns theme colors
func (t *AppTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return colorPrimary
	case theme.ColorNameSuccess:
		return colorSuccess
	case theme.ColorNameError:
		return colorError
	case theme.ColorNameInputBackground:
		if variant == theme.VariantDark {
			return colorDarkPanel
		}
		return colorLightPanel
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *AppTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *AppTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *AppTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameInnerPadding:
		return 10
	case theme.SizeNameInputRadius:
		return 8
	case theme.SizeNameHeadingText:
		return 20
	}

	return theme.DefaultTheme().Size(name)
}
