package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// FormTheme is a light theme for the submitter's small single-column forms
type FormTheme struct{}

// NewFormTheme creates a new form theme
func NewFormTheme() fyne.Theme {
	return &FormTheme{}
}

// Color returns theme colors
func (t *FormTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 0x00, G: 0x79, B: 0xbf, A: 0xff} // Trello blue
	case theme.ColorNameSuccess:
		return color.NRGBA{R: 0x61, G: 0xbd, B: 0x4f, A: 0xff}
	case theme.ColorNameError:
		return color.NRGBA{R: 0xeb, G: 0x5a, B: 0x46, A: 0xff}
	case theme.ColorNameBackground:
		return IdeaPageBackground
	case theme.ColorNameForeground:
		return color.NRGBA{R: 0x17, G: 0x2b, B: 0x4d, A: 0xff}
	case theme.ColorNameInputBackground:
		return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}

	// Always render the light variant; page backgrounds are fixed colors
	return theme.DefaultTheme().Color(name, theme.VariantLight)
}

// Font returns theme fonts
func (t *FormTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *FormTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *FormTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameInputRadius:
		return 3
	case theme.SizeNameSelectionRadius:
		return 2
	}

	return theme.DefaultTheme().Size(name)
}
