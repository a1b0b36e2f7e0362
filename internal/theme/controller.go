// Package theme owns the active theme mode and custom accent color, and
// publishes derived palettes into the style variable store.
package theme

import (
	"fmt"

	"github.com/Justice-Caban/QuickQuotes/internal/color"
	"github.com/Justice-Caban/QuickQuotes/internal/palette"
	"github.com/rs/zerolog"
)

// Preference is the persisted part of the controller state
type Preference struct {
	Mode         Mode
	CustomColor  string
	PreviousMode Mode
}

// Options seed a Controller
type Options struct {
	Mode         Mode
	CustomColor  string
	PreviousMode Mode
	Logger       zerolog.Logger
}

// Controller is the single writer of theme style variables. It is driven
// from the UI goroutine and is not safe for concurrent use.
type Controller struct {
	store  *VarStore
	logger zerolog.Logger

	mode        Mode
	previous    Mode
	customColor string

	palette   palette.Palette
	published bool

	// Values the keys held before this controller first wrote them.
	// A nil entry means the key was absent.
	overwritten map[string]*string
	order       []string
}

// NewController creates a controller and applies the seed mode
func NewController(store *VarStore, opts Options) *Controller {
	c := &Controller{
		store:       store,
		logger:      opts.Logger,
		mode:        ModeLight,
		previous:    ModeLight,
		customColor: DefaultCustomColor,
		overwritten: make(map[string]*string),
	}

	if opts.CustomColor != "" {
		if rgb, err := color.ParseHex(opts.CustomColor); err != nil {
			c.logger.Warn().Err(err).Str("color", opts.CustomColor).Msg("ignoring invalid seed color")
		} else {
			c.customColor = rgb.Hex()
		}
	}

	if opts.PreviousMode.IsStatic() {
		c.previous = opts.PreviousMode
	}

	switch {
	case opts.Mode.IsStatic():
		c.mode = opts.Mode
		c.previous = opts.Mode
	case opts.Mode == ModeCustom:
		c.mode = ModeCustom
		c.publish()
	case opts.Mode != "":
		c.logger.Warn().Str("mode", string(opts.Mode)).Msg("ignoring invalid seed mode")
	}

	return c
}

// CurrentMode returns the active mode
func (c *Controller) CurrentMode() Mode {
	return c.mode
}

// CurrentCustomColor returns the stored custom color as "#rrggbb"
func (c *Controller) CurrentCustomColor() string {
	return c.customColor
}

// PreviousMode returns the last static mode, used by Reset
func (c *Controller) PreviousMode() Mode {
	return c.previous
}

// Preference returns the state to persist
func (c *Controller) Preference() Preference {
	return Preference{Mode: c.mode, CustomColor: c.customColor, PreviousMode: c.previous}
}

// Palette returns the published palette while in custom mode
func (c *Controller) Palette() (palette.Palette, bool) {
	if c.mode != ModeCustom || !c.published {
		return palette.Palette{}, false
	}
	return c.palette, true
}

// Store returns the variable store the controller writes to
func (c *Controller) Store() *VarStore {
	return c.store
}

// SelectMode switches to mode. Entering custom publishes the palette for
// the stored color; entering light or dark undoes every custom write.
func (c *Controller) SelectMode(mode Mode) error {
	switch mode {
	case ModeCustom:
		c.mode = ModeCustom
		c.publish()
	case ModeLight, ModeDark:
		c.cleanup()
		c.mode = mode
		c.previous = mode
	default:
		return fmt.Errorf("invalid theme mode: %q", mode)
	}

	c.logger.Debug().Str("mode", string(mode)).Msg("theme mode selected")
	return nil
}

// SetCustomColor stores hex as the custom color. While in custom mode the
// palette is re-derived and published immediately. Anything other than
// "#" and six hex digits, surrounding whitespace included, is rejected and
// leaves all state unchanged.
func (c *Controller) SetCustomColor(hex string) error {
	rgb, err := color.ParseHex(hex)
	if err != nil {
		c.logger.Warn().Str("color", hex).Msg("rejected custom color")
		return fmt.Errorf("set custom color: %w", err)
	}

	c.customColor = rgb.Hex()
	if c.mode == ModeCustom {
		c.publish()
	}

	return nil
}

// Reset returns to the last static mode recorded before entering custom
func (c *Controller) Reset() error {
	return c.SelectMode(c.previous)
}

func (c *Controller) publish() {
	// customColor is validated on every write
	p, err := palette.DeriveHex(c.customColor)
	if err != nil {
		c.logger.Error().Err(err).Str("color", c.customColor).Msg("failed to derive palette")
		return
	}

	for _, v := range p.Vars() {
		if _, tracked := c.overwritten[v.Key]; !tracked {
			if old, ok := c.store.Get(v.Key); ok {
				c.overwritten[v.Key] = &old
			} else {
				c.overwritten[v.Key] = nil
			}
			c.order = append(c.order, v.Key)
		}
		c.store.Set(v.Key, v.Value)
	}

	c.palette = p
	c.published = true
	c.logger.Debug().Str("color", c.customColor).Str("primary", p.Role(palette.Primary).String()).Msg("palette published")
}

func (c *Controller) cleanup() {
	for _, key := range c.order {
		if old := c.overwritten[key]; old != nil {
			c.store.Set(key, *old)
		} else {
			c.store.Remove(key)
		}
	}

	c.overwritten = make(map[string]*string)
	c.order = nil
	c.published = false
}
