package stickyheaders

import "github.com/gdamore/tcell/v2"

// Primitive is a rectangle of the screen the Application draws and feeds
// events to.
type Primitive interface {
	Draw(screen tcell.Screen)

	GetRect() (int, int, int, int)
	SetRect(x, y, width, height int)

	// InputHandler receives key events while the primitive has focus.
	InputHandler(event *tcell.EventKey) Command
	// MouseHandler receives the actions derived from mouse events anywhere on
	// the screen. Primitives check the position themselves.
	MouseHandler(action MouseAction, event *tcell.EventMouse) Command
	// PasteHandler receives pasted text while the primitive has focus.
	PasteHandler(text string) Command

	HasFocus() bool
	// Focus is called when the primitive receives focus. It may hand the
	// focus on through delegate.
	Focus(delegate func(p Primitive))
	Blur()
}

// MouseAction is what a mouse event means to a primitive.
type MouseAction int16

const (
	MouseMove MouseAction = iota
	MouseLeftDown
	MouseLeftUp
	// MouseLeftClick follows MouseLeftUp when the button is released where it
	// was pressed.
	MouseLeftClick
	MouseScrollUp
	MouseScrollDown
	MouseScrollLeft
	MouseScrollRight
)
