package keybind

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"  ", ""},
		{"j", "j"},
		{"G", "G"},
		{"PageDown", "pgdn"},
		{"pageup", "pgup"},
		{"Escape", "esc"},
		{"return", "enter"},
		{"Ctrl+F", "ctrl+f"},
		{"control+x", "ctrl+x"},
		{"ctrl-c", "ctrl+c"},
		{"backtab", "shift+tab"},
		{"shift+backtab", "shift+tab"},
		{"alt+ctrl+alt+k", "ctrl+alt+k"},
		{"meta+shift+Up", "shift+meta+up"},
		{"Rune[x]", "x"},
		{"ctrl+", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeKey(tt.in), "normalizeKey(%q)", tt.in)
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		name  string
		keys  []string
		event *tcell.EventKey
		want  bool
	}{
		{"rune", []string{"j"}, tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone), true},
		{"other rune", []string{"j"}, tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone), false},
		{"shifted rune", []string{"G"}, tcell.NewEventKey(tcell.KeyRune, 'G', tcell.ModShift), true},
		{"case matters", []string{"g"}, tcell.NewEventKey(tcell.KeyRune, 'G', tcell.ModShift), false},
		{"alt rune", []string{"alt+x"}, tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt), true},
		{"ctrl letter", []string{"ctrl+f"}, tcell.NewEventKey(tcell.KeyCtrlF, 0, tcell.ModCtrl), true},
		{"named key", []string{"pgdn"}, tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone), true},
		{"tab is not ctrl+i", []string{"tab"}, tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), true},
		{"enter is not ctrl+m", []string{"ctrl+m"}, tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), false},
		{"backspace", []string{"backspace"}, tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), true},
		{"backtab", []string{"backtab"}, tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModShift), true},
		{"modified named key", []string{"ctrl+up"}, tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModCtrl), true},
		{"modifier order does not matter", []string{"alt+ctrl+up"}, tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModCtrl|tcell.ModAlt), true},
		{"unmodified named key", []string{"ctrl+up"}, tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), false},
		{"function key", []string{"f1"}, tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), true},
		{"unbound", nil, tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := NewKeybind(WithKeys(tt.keys...))
			assert.Equal(t, tt.want, Matches(tt.event, k))
		})
	}
}

func TestMatches_AnyOf(t *testing.T) {
	up := NewKeybind(WithKeys("up", "k"))
	down := NewKeybind(WithKeys("down", "j"))
	event := tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone)

	assert.True(t, Matches(event, up, down))
	assert.False(t, Matches(event, up))
	assert.False(t, Matches(nil, up, down))
}

func TestKeybind(t *testing.T) {
	k := NewKeybind(WithKeys("down", " J ", ""), WithHelp("↓/J", "down"))

	assert.Equal(t, []string{"down", "J"}, k.Keys())
	assert.True(t, k.Enabled())
	assert.Equal(t, "down, J", k.String())
	assert.Equal(t, Help{Key: "↓/J", Desc: "down"}, k.Help())

	k.SetKeys()
	assert.False(t, k.Enabled())
	assert.Empty(t, k.String())

	k.SetHelp("x", "other")
	assert.Equal(t, "other", k.Help().Desc)
}
