package stickyheaders

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApplication(t *testing.T, screen tcell.Screen) (*Application, *StickyList) {
	t.Helper()
	l := NewStickyList().SetScrollBar(false)
	l.SetSections(
		Section{Title: "A", Rows: rows("a", 9)},
		Section{Title: "B", Rows: rows("b", 8)},
	)
	app := NewApplication().SetScreen(screen).SetRoot(l)
	require.True(t, app.HandleEvent(tcell.NewEventResize(20, 6)))
	return app, l
}

func TestApplication_ResizeDrawsRoot(t *testing.T) {
	screen := newTestScreen(t, 20, 6)
	_, l := newTestApplication(t, screen)

	assert.Equal(t, "A", rowText(screen, 0))
	x, y, width, height := l.GetRect()
	assert.Equal(t, []int{0, 0, 20, 6}, []int{x, y, width, height})
}

func TestApplication_KeysReachFocus(t *testing.T) {
	screen := newTestScreen(t, 20, 6)
	app, l := newTestApplication(t, screen)
	assert.Same(t, l, app.GetFocus())

	assert.True(t, app.HandleEvent(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone)))
	assert.Equal(t, 0, l.Cursor())
	assert.Equal(t, Styles.SelectedBackgroundColor, cellBackground(screen, 5, 0))

	assert.False(t, app.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)))
}

func TestApplication_CtrlCStops(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	app, _ := newTestApplication(t, screen)

	assert.False(t, app.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))
	assert.Nil(t, app.screen)

	// Stopping twice is harmless.
	app.Stop()
}

func TestApplication_MouseClick(t *testing.T) {
	screen := newTestScreen(t, 20, 6)
	app, l := newTestApplication(t, screen)
	app.HandleEvent(tcell.NewEventMouse(5, 3, tcell.WheelDown, tcell.ModNone))
	require.Equal(t, "  a4", rowText(screen, 1))

	assert.False(t, app.HandleEvent(tcell.NewEventMouse(5, 0, tcell.Button1, tcell.ModNone)))
	assert.True(t, app.HandleEvent(tcell.NewEventMouse(5, 0, tcell.ButtonNone, tcell.ModNone)))

	assert.Equal(t, 0, l.Cursor(), "the click lands on the pinned header")
	assert.Equal(t, "  a1", rowText(screen, 1))
}

func TestApplication_MouseWheel(t *testing.T) {
	screen := newTestScreen(t, 20, 6)
	app, l := newTestApplication(t, screen)

	assert.True(t, app.HandleEvent(tcell.NewEventMouse(5, 2, tcell.WheelDown, tcell.ModNone)))
	assert.Equal(t, 0, l.Manager().StickyHeaderPosition())
	assert.Equal(t, "A", rowText(screen, 0))
	assert.Equal(t, "  a4", rowText(screen, 1))

	assert.True(t, app.HandleEvent(tcell.NewEventMouse(5, 2, tcell.WheelUp, tcell.ModNone)))
	assert.Equal(t, "  a1", rowText(screen, 1))
}

func TestApplication_SetFocusBlursPrevious(t *testing.T) {
	first, second := NewBox(), NewBox()
	app := NewApplication()

	app.SetFocus(first)
	assert.True(t, first.HasFocus())

	app.SetFocus(second)
	assert.False(t, first.HasFocus())
	assert.True(t, second.HasFocus())
	assert.Same(t, second, app.GetFocus())
}

func TestApplication_ExecuteCommand(t *testing.T) {
	box := NewBox()
	app := NewApplication()

	assert.False(t, app.executeCommand(nil))
	assert.False(t, app.executeCommand(ConsumeEventCommand{}))
	assert.True(t, app.executeCommand(RedrawCommand{}))
	assert.True(t, app.executeCommand(BatchCommand{ConsumeEventCommand{}, RedrawCommand{}}))
	assert.False(t, app.executeCommand(SetFocusCommand{}))

	assert.True(t, app.executeCommand(SetFocusCommand{Target: box}))
	assert.False(t, app.executeCommand(SetFocusCommand{Target: box}), "focus did not change")
	assert.False(t, app.executeCommand(QuitCommand{}))
}

func TestAppendCommand(t *testing.T) {
	assert.Nil(t, AppendCommand(nil, nil))
	assert.Equal(t, RedrawCommand{}, AppendCommand(nil, RedrawCommand{}))
	assert.Equal(t, RedrawCommand{}, AppendCommand(RedrawCommand{}, nil))

	batch := AppendCommand(BatchCommand{RedrawCommand{}, QuitCommand{}}, ConsumeEventCommand{})
	assert.Equal(t, BatchCommand{RedrawCommand{}, QuitCommand{}, ConsumeEventCommand{}}, batch)

	batch = AppendCommand(QuitCommand{}, BatchCommand{RedrawCommand{}})
	assert.Equal(t, BatchCommand{QuitCommand{}, RedrawCommand{}}, batch)
}

func TestMouseTracker(t *testing.T) {
	var m mouseTracker
	event := func(x, y int, buttons tcell.ButtonMask) *tcell.EventMouse {
		return tcell.NewEventMouse(x, y, buttons, tcell.ModNone)
	}

	assert.Equal(t, []MouseAction{MouseMove, MouseLeftDown}, m.actions(event(1, 1, tcell.Button1)))
	assert.Equal(t, []MouseAction{MouseLeftUp, MouseLeftClick}, m.actions(event(1, 1, tcell.ButtonNone)))

	m.actions(event(1, 1, tcell.Button1))
	assert.Equal(t, []MouseAction{MouseMove, MouseLeftUp}, m.actions(event(2, 1, tcell.ButtonNone)), "dragging is not a click")

	assert.Equal(t, []MouseAction{MouseScrollDown}, m.actions(event(2, 1, tcell.WheelDown)))
	assert.Empty(t, m.actions(event(2, 1, tcell.ButtonNone)))
}

func TestPasteBuffer(t *testing.T) {
	var p pasteBuffer
	key := tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone)
	assert.False(t, p.collect(key))

	_, done := p.toggle(tcell.NewEventPaste(true))
	assert.False(t, done)
	assert.True(t, p.collect(key))
	assert.True(t, p.collect(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)))
	assert.True(t, p.collect(tcell.NewEventKey(tcell.KeyRune, 'b', tcell.ModNone)))

	text, done := p.toggle(tcell.NewEventPaste(false))
	assert.True(t, done)
	assert.Equal(t, "a\nb", text)
	assert.False(t, p.collect(key))
}
