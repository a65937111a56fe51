package theme

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"github.com/roffe/scadaplayer/pkg/colors"
)

// ScadaTheme is the dark theme of the viewer window. The window background
// matches the dashboard so letterboxing blends in.
type ScadaTheme struct{}

var _ fyne.Theme = ScadaTheme{}

func (m ScadaTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return colors.Background
	case theme.ColorNameForeground:
		return colors.Foreground
	}
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

func (m ScadaTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (m ScadaTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (m ScadaTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameSeparatorThickness:
		return 0
	case theme.SizeNamePadding, theme.SizeNameInnerPadding:
		return 0
	}
	return theme.DefaultTheme().Size(name)
}
