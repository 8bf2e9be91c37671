package stickyheaders

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/xqrs/stickyheaders/keybind"
	"gopkg.in/yaml.v3"
)

// Config configures a StickyList. It is usually loaded from YAML:
//
//	orientation: vertical
//	sticky: true
//	border: round
//	title: Groceries
//	translation_y: 1
//	keys:
//	  down: [down, j]
//	sections:
//	  - title: Fruit
//	    rows: [apple, banana]
type Config struct {
	// Orientation is "vertical" or "horizontal".
	Orientation string `yaml:"orientation"`
	// Reverse lays items out from the bottom (or right) edge.
	Reverse bool `yaml:"reverse"`
	// Sticky turns header pinning on.
	Sticky bool `yaml:"sticky"`

	// Offsets of the line headers are pinned to.
	TranslationX int `yaml:"translation_x"`
	TranslationY int `yaml:"translation_y"`

	// Border is "none", "plain", "round" or "double".
	Border string `yaml:"border"`
	// Title is printed in the top row, inside the border if there is one.
	Title string `yaml:"title"`

	Gap       int  `yaml:"gap"`
	ScrollBar bool `yaml:"scroll_bar"`
	WheelStep int  `yaml:"wheel_step"`

	Keys KeysConfig `yaml:"keys"`

	// Sections, when set, are shown through a SectionAdapter.
	Sections []Section `yaml:"sections,omitempty"`
}

// KeysConfig overrides key bindings. Empty entries keep the default.
type KeysConfig struct {
	Up           []string `yaml:"up,omitempty"`
	Down         []string `yaml:"down,omitempty"`
	PageUp       []string `yaml:"page_up,omitempty"`
	PageDown     []string `yaml:"page_down,omitempty"`
	Top          []string `yaml:"top,omitempty"`
	Bottom       []string `yaml:"bottom,omitempty"`
	ToggleSticky []string `yaml:"toggle_sticky,omitempty"`
}

// DefaultConfig returns the configuration of a new StickyList.
func DefaultConfig() Config {
	return Config{
		Orientation: Vertical.String(),
		Border:      "none",
		Sticky:      true,
		ScrollBar:   true,
		WheelStep:   3,
	}
}

// ParseOrientation parses "vertical" or "horizontal".
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case Vertical.String():
		return Vertical, nil
	case Horizontal.String():
		return Horizontal, nil
	default:
		return Vertical, errors.Errorf("unknown orientation %q", s)
	}
}

var borderSets = map[string]BorderSet{
	"plain":  BorderSetPlain,
	"round":  BorderSetRound,
	"double": BorderSetDouble,
}

// ParseBorder parses a border name. It returns false for "none".
func ParseBorder(s string) (BorderSet, bool, error) {
	if s == "none" || s == "" {
		return BorderSet{}, false, nil
	}
	set, ok := borderSets[s]
	if !ok {
		return BorderSet{}, false, errors.Errorf("unknown border %q", s)
	}
	return set, true, nil
}

// ParseConfig decodes YAML on top of DefaultConfig. Unknown fields are
// rejected.
func ParseConfig(data []byte) (Config, error) {
	config := DefaultConfig()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(err, "failed to parse config")
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// LoadConfig reads and parses the YAML file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "failed to read config %s", path)
	}
	config, err := ParseConfig(data)
	return config, errors.Wrapf(err, "invalid config %s", path)
}

// Validate checks the values decoding cannot.
func (c Config) Validate() error {
	if _, err := ParseOrientation(c.Orientation); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	if _, _, err := ParseBorder(c.Border); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	if c.Gap < 0 {
		return errors.Errorf("invalid config: negative gap %d", c.Gap)
	}
	if c.WheelStep < 1 {
		return errors.Errorf("invalid config: wheel_step must be at least 1, got %d", c.WheelStep)
	}
	return nil
}

// Keymap returns the default keymap with the configured overrides applied.
func (c Config) Keymap() Keymap {
	keymap := DefaultKeymap()
	for _, override := range []struct {
		keys []string
		bind *keybind.Keybind
	}{
		{c.Keys.Up, &keymap.Up},
		{c.Keys.Down, &keymap.Down},
		{c.Keys.PageUp, &keymap.PageUp},
		{c.Keys.PageDown, &keymap.PageDown},
		{c.Keys.Top, &keymap.Top},
		{c.Keys.Bottom, &keymap.Bottom},
		{c.Keys.ToggleSticky, &keymap.ToggleSticky},
	} {
		if len(override.keys) > 0 {
			override.bind.SetKeys(override.keys...)
			override.bind.SetHelp(strings.Join(override.bind.Keys(), "/"), override.bind.Help().Desc)
		}
	}
	return keymap
}

// Apply configures l.
func (c Config) Apply(l *StickyList) error {
	if err := c.Validate(); err != nil {
		return err
	}
	orientation, _ := ParseOrientation(c.Orientation)
	borderSet, border, _ := ParseBorder(c.Border)
	if border {
		l.SetBorderSet(borderSet)
	}
	l.SetBorder(border).SetTitle(c.Title)

	l.SetOrientation(orientation).
		SetReverse(c.Reverse).
		SetGap(c.Gap).
		SetScrollBar(c.ScrollBar).
		SetWheelStep(c.WheelStep).
		SetKeymap(c.Keymap()).
		SetTranslation(c.TranslationX, c.TranslationY).
		SetStickyHeadersEnabled(c.Sticky)
	if len(c.Sections) > 0 {
		l.SetSections(c.Sections...)
	}
	return nil
}
