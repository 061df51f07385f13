package model

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// DarkThemePreference is the persisted dark mode choice
type DarkThemePreference int

const (
	// DarkThemeFollowSystem follows the platform light/dark variant
	DarkThemeFollowSystem DarkThemePreference = 1

	// DarkThemeOn forces the dark variant
	DarkThemeOn DarkThemePreference = 2

	// DarkThemeOff forces the light variant
	DarkThemeOff DarkThemePreference = 3
)

// DarkThemePreferences lists the choices in display order
var DarkThemePreferences = []DarkThemePreference{DarkThemeFollowSystem, DarkThemeOn, DarkThemeOff}

// IsDark resolves the preference against the system variant.
// Unknown values behave like DarkThemeOff.
func (p DarkThemePreference) IsDark(systemDark bool) bool {
	if p == DarkThemeFollowSystem {
		return systemDark
	}
	return p == DarkThemeOn
}

// DefaultSeedColor is the ARGB seed used until the user picks one
const DefaultSeedColor uint32 = 0xFF415F76

// AppSettings is the appearance aggregate observed by the UI.
// Values are immutable snapshots; use the With* methods to derive a new one.
type AppSettings struct {
	DarkTheme DarkThemePreference
	SeedColor uint32
}

// DefaultAppSettings returns the aggregate for a fresh install
func DefaultAppSettings() AppSettings {
	return AppSettings{DarkTheme: DarkThemeFollowSystem, SeedColor: DefaultSeedColor}
}

// WithDarkTheme returns a copy with only the dark theme preference replaced
func (s AppSettings) WithDarkTheme(p DarkThemePreference) AppSettings {
	s.DarkTheme = p
	return s
}

// WithSeedColor returns a copy with only the seed color replaced
func (s AppSettings) WithSeedColor(argb uint32) AppSettings {
	s.SeedColor = argb
	return s
}

// SeedNRGBA converts the ARGB seed color to a color.NRGBA
func (s AppSettings) SeedNRGBA() color.NRGBA {
	return ARGBToNRGBA(s.SeedColor)
}

// ARGBToNRGBA unpacks a 0xAARRGGBB value
func ARGBToNRGBA(argb uint32) color.NRGBA {
	return color.NRGBA{
		A: uint8(argb >> 24),
		R: uint8(argb >> 16),
		G: uint8(argb >> 8),
		B: uint8(argb),
	}
}

// FormatARGB renders a color as #AARRGGBB
func FormatARGB(argb uint32) string {
	return fmt.Sprintf("#%08X", argb)
}

// ParseARGB parses #AARRGGBB or #RRGGBB (opaque). The leading # is optional.
func ParseARGB(s string) (uint32, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 6:
		hex = "FF" + hex
	case 8:
	default:
		return 0, fmt.Errorf("invalid color %q: want #AARRGGBB or #RRGGBB", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return uint32(v), nil
}
