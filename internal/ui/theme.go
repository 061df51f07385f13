package ui

import (
	"context"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/yt-settings/internal/model"
)

// Semantic colors that do not depend on the seed
var (
	colorSuccess   = color.NRGBA{R: 46, G: 160, B: 67, A: 255}
	colorError     = color.NRGBA{R: 183, G: 28, B: 28, A: 255}
	colorWarning   = color.NRGBA{R: 255, G: 193, B: 7, A: 255}
	backgroundDark = color.NRGBA{R: 18, G: 18, B: 18, A: 255}
	backgroundLite = color.NRGBA{R: 250, G: 250, B: 250, A: 255}
	foregroundDark = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	foregroundLite = color.NRGBA{R: 33, G: 33, B: 33, A: 255}
)

// Alpha applied to the seed for selection and focus highlights
const (
	selectionAlpha = 0x40
	focusAlpha     = 0x80
)

// SeedTheme is a compact theme colored from an AppSettings snapshot
type SeedTheme struct {
	settings model.AppSettings
}

// NewSeedTheme creates a theme for the given appearance snapshot
func NewSeedTheme(settings model.AppSettings) fyne.Theme {
	return &SeedTheme{settings: settings}
}

// Variant resolves the variant the theme renders, applying the dark mode preference
func (t *SeedTheme) Variant(system fyne.ThemeVariant) fyne.ThemeVariant {
	if t.settings.DarkTheme.IsDark(system == theme.VariantDark) {
		return theme.VariantDark
	}
	return theme.VariantLight
}

// Color returns theme colors
func (t *SeedTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	variant = t.Variant(variant)
	seed := t.settings.SeedNRGBA()

	switch name {
	case theme.ColorNamePrimary, theme.ColorNameHyperlink:
		return seed
	case theme.ColorNameFocus:
		return withAlpha(seed, focusAlpha)
	case theme.ColorNameSelection:
		return withAlpha(seed, selectionAlpha)
	case theme.ColorNameSuccess:
		return colorSuccess
	case theme.ColorNameError:
		return colorError
	case theme.ColorNameWarning:
		return colorWarning
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return backgroundDark
		}
		return backgroundLite
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return foregroundDark
		}
		return foregroundLite
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *SeedTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *SeedTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns compact sizes for padding and text
func (t *SeedTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 16
	case theme.SizeNameInputRadius:
		return 3
	}

	return theme.DefaultTheme().Size(name)
}

func withAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}

// ThemeSettings is the part of fyne.Settings the binding writes to
type ThemeSettings interface {
	SetTheme(fyne.Theme)
}

// AppSettingsSource publishes appearance snapshots
type AppSettingsSource interface {
	Subscribe(ctx context.Context, fn func(model.AppSettings))
}

// BindTheme applies a new SeedTheme for every snapshot published by source
// until ctx is done. Theme changes are handed to the Fyne main goroutine.
func BindTheme(ctx context.Context, settings ThemeSettings, source AppSettingsSource) {
	source.Subscribe(ctx, func(s model.AppSettings) {
		th := NewSeedTheme(s)
		fyne.Do(func() {
			settings.SetTheme(th)
		})
	})
}
