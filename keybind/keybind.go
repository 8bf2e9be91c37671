// Package keybind matches tcell key events against configurable key names
// such as "ctrl+f", "pgdn" or "G".
package keybind

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

type Keybind struct {
	keys []string
	help Help
}

type Help struct {
	Key  string
	Desc string
}

type Option func(*Keybind)

func NewKeybind(options ...Option) Keybind {
	var k Keybind
	for _, option := range options {
		option(&k)
	}
	return k
}

func WithKeys(keys ...string) Option {
	return func(k *Keybind) {
		k.SetKeys(keys...)
	}
}

func WithHelp(key, desc string) Option {
	return func(k *Keybind) {
		k.SetHelp(key, desc)
	}
}

// SetKeys replaces the bound keys. Names that normalize to nothing are
// dropped.
func (k *Keybind) SetKeys(keys ...string) {
	k.keys = make([]string, 0, len(keys))
	for _, key := range keys {
		if key = normalizeKey(key); key != "" {
			k.keys = append(k.keys, key)
		}
	}
}

func (k Keybind) Keys() []string {
	return k.keys
}

// Enabled reports whether any key is bound.
func (k Keybind) Enabled() bool {
	return len(k.keys) > 0
}

func (k Keybind) String() string {
	return strings.Join(k.keys, ", ")
}

func (k *Keybind) SetHelp(key, desc string) {
	k.help = Help{Key: key, Desc: desc}
}

func (k Keybind) Help() Help {
	return k.help
}

// Matches reports whether event is bound in any of keybinds.
func Matches(event *tcell.EventKey, keybinds ...Keybind) bool {
	if event == nil {
		return false
	}
	key := eventKeyString(event)
	return slices.ContainsFunc(keybinds, func(k Keybind) bool {
		return slices.Contains(k.keys, key)
	})
}

// Modifiers, in the order normalized names spell them.
const (
	modCtrl = iota
	modAlt
	modShift
	modMeta
	modCount
)

var modifierNames = [modCount]string{"ctrl", "alt", "shift", "meta"}

var modifierAliases = map[string]int{
	"ctrl":    modCtrl,
	"control": modCtrl,
	"alt":     modAlt,
	"shift":   modShift,
	"meta":    modMeta,
}

var keyAliases = map[string]string{
	"escape":   "esc",
	"return":   "enter",
	"pageup":   "pgup",
	"pagedown": "pgdn",
}

// normalizeKey turns a user supplied key name into the form eventKeyString
// produces, or "" when it names no key.
func normalizeKey(key string) string {
	var mods [modCount]bool
	primary := ""
	for _, part := range strings.Split(key, "+") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		lower := strings.ToLower(part)
		if mod, ok := modifierAliases[lower]; ok {
			mods[mod] = true
			continue
		}
		if rest, ok := strings.CutPrefix(lower, "ctrl-"); ok && rest != "" {
			mods[modCtrl] = true
			primary = rest
			continue
		}
		primary = primaryKey(part)
	}
	if primary == "" {
		return ""
	}
	if primary == "backtab" {
		mods[modShift] = true
		primary = "tab"
	}
	return join(mods, primary)
}

func primaryKey(key string) string {
	if inner, ok := strings.CutPrefix(key, "Rune["); ok && len(inner) > 1 && strings.HasSuffix(inner, "]") {
		return strings.TrimSuffix(inner, "]")
	}
	if utf8.RuneCountInString(key) == 1 {
		return key
	}
	key = strings.ToLower(key)
	if alias, ok := keyAliases[key]; ok {
		return alias
	}
	return key
}

// join spells mods and primary. Letters are lowercased under a modifier.
func join(mods [modCount]bool, primary string) string {
	var parts []string
	for mod, on := range mods {
		if on {
			parts = append(parts, modifierNames[mod])
		}
	}
	if len(parts) == 0 {
		return primary
	}
	if utf8.RuneCountInString(primary) == 1 {
		primary = strings.ToLower(primary)
	}
	return strings.Join(append(parts, primary), "+")
}

// Tab, enter and backspace share their codes with ctrl+i, ctrl+m and ctrl+h
// and are named before control keys are.
var keyNames = map[tcell.Key]string{
	tcell.KeyEnter:      "enter",
	tcell.KeyEscape:     "esc",
	tcell.KeyTab:        "tab",
	tcell.KeyBacktab:    "tab",
	tcell.KeyHome:       "home",
	tcell.KeyEnd:        "end",
	tcell.KeyUp:         "up",
	tcell.KeyDown:       "down",
	tcell.KeyLeft:       "left",
	tcell.KeyRight:      "right",
	tcell.KeyPgUp:       "pgup",
	tcell.KeyPgDn:       "pgdn",
	tcell.KeyDelete:     "delete",
	tcell.KeyInsert:     "insert",
	tcell.KeyBackspace:  "backspace",
	tcell.KeyBackspace2: "backspace",
}

func eventKeyString(event *tcell.EventKey) string {
	key := event.Key()
	mod := event.Modifiers()

	primary, named := keyNames[key]
	switch {
	case named:
		if key == tcell.KeyBacktab {
			mod |= tcell.ModShift
		}
	case key == tcell.KeyRune:
		primary = string(event.Rune())
		// Shift is implied by the rune itself.
		mod &^= tcell.ModShift
	case key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ:
		return "ctrl+" + string(rune('a'+key-tcell.KeyCtrlA))
	default:
		return normalizeKey(event.Name())
	}

	var mods [modCount]bool
	mods[modCtrl] = mod&tcell.ModCtrl != 0
	mods[modAlt] = mod&tcell.ModAlt != 0
	mods[modShift] = mod&tcell.ModShift != 0
	mods[modMeta] = mod&tcell.ModMeta != 0
	return join(mods, primary)
}
