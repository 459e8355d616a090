package vista

import (
	"os"
	"strings"
)

// ColorCapability describes the level of color support in a terminal.
type ColorCapability int

const (
	// ColorNone indicates a monochrome terminal with no color support.
	ColorNone ColorCapability = iota
	// Color16 indicates basic 16-color support (ANSI standard colors).
	Color16
	// Color256 indicates ANSI 256 palette support.
	Color256
	// ColorTrue indicates 24-bit true color (RGB) support.
	ColorTrue
)

// Capabilities describes what features the console behind a driver supports.
type Capabilities struct {
	// Colors indicates the level of color support.
	Colors ColorCapability
	// Unicode indicates whether the terminal can render Unicode characters.
	Unicode bool
	// TrueColor indicates whether 24-bit RGB colors are supported.
	TrueColor bool
	// Mouse indicates whether mouse reporting is available.
	Mouse bool
}

// DetectCapabilities determines terminal capabilities from environment
// variables. Returns conservative defaults when detection fails.
func DetectCapabilities() Capabilities {
	caps := Capabilities{
		Colors:  Color16,
		Unicode: true,
		Mouse:   true,
	}

	// Explicit true color indicators override everything else.
	colorterm := strings.ToLower(os.Getenv("COLORTERM"))
	if colorterm == "truecolor" || colorterm == "24bit" {
		caps.Colors = ColorTrue
		caps.TrueColor = true
	}

	// Terminal emulators known to support true color.
	for _, env := range []string{"WT_SESSION", "ITERM_SESSION_ID", "KITTY_WINDOW_ID", "KONSOLE_VERSION", "VTE_VERSION"} {
		if os.Getenv(env) != "" {
			caps.Colors = ColorTrue
			caps.TrueColor = true
		}
	}
	if caps.TrueColor {
		return caps
	}

	term := strings.ToLower(os.Getenv("TERM"))
	switch {
	case term == "dumb":
		caps.Colors = ColorNone
		caps.Unicode = false
		caps.Mouse = false
	case strings.Contains(term, "truecolor"):
		caps.Colors = ColorTrue
		caps.TrueColor = true
	case strings.Contains(term, "256color"):
		caps.Colors = Color256
	}

	return caps
}

// SupportsColor returns true if the terminal supports the given color type.
func (c Capabilities) SupportsColor(color Color) bool {
	switch color.Type() {
	case ColorDefault:
		return true
	case ColorANSI:
		return c.Colors >= Color16
	case ColorRGB:
		return c.TrueColor
	}
	return false
}

// EffectiveColor returns the color to use given the terminal's capabilities:
// the original color when supported, otherwise the nearest representable
// approximation.
func (c Capabilities) EffectiveColor(color Color) Color {
	if c.SupportsColor(color) {
		return color
	}
	switch color.Type() {
	case ColorRGB:
		if c.Colors >= Color16 {
			return color.ToANSI()
		}
		return DefaultColor()
	case ColorANSI:
		if c.Colors == ColorNone {
			return DefaultColor()
		}
	}
	return color
}
