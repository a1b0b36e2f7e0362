package theme

import (
	"fmt"
	"strings"
)

// Mode is the active theme mode
type Mode string

const (
	ModeLight  Mode = "light"
	ModeDark   Mode = "dark"
	ModeCustom Mode = "custom"
)

// DefaultCustomColor is the accent used until the user picks one
const DefaultCustomColor = "#6366f1"

// ParseMode validates a mode name
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeLight, ModeDark, ModeCustom:
		return m, nil
	}
	return "", fmt.Errorf("invalid theme mode: %s (must be 'light', 'dark', or 'custom')", s)
}

// IsStatic reports whether the mode is backed by a static stylesheet
func (m Mode) IsStatic() bool {
	return m == ModeLight || m == ModeDark
}

func (m Mode) String() string {
	return string(m)
}

// Title returns the display label
func (m Mode) Title() string {
	switch m {
	case ModeLight:
		return "Light"
	case ModeDark:
		return "Dark"
	case ModeCustom:
		return "Custom"
	}
	return string(m)
}
