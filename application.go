package stickyheaders

import (
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// Capacity of the event and update queues.
const queueSize = 100

type queuedUpdate struct {
	f    func()
	done chan struct{}
}

// Application runs the terminal event loop for a root primitive, usually a
// StickyList. All primitives are touched from the loop's goroutine only;
// other goroutines go through QueueUpdate.
//
//	list := stickyheaders.NewStickyList()
//	list.SetSections(sections...)
//	if err := stickyheaders.NewApplication().SetRoot(list).Run(); err != nil {
//	    panic(err)
//	}
type Application struct {
	mu sync.RWMutex

	screen tcell.Screen
	focus  Primitive
	root   Primitive

	updates chan queuedUpdate
	mouse   mouseTracker
}

func NewApplication() *Application {
	return &Application{
		updates: make(chan queuedUpdate, queueSize),
	}
}

// SetScreen sets the screen to draw on. Without one, Run opens the terminal.
// A screen already set is kept.
func (a *Application) SetScreen(screen tcell.Screen) *Application {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.screen == nil {
		a.screen = screen
	}
	return a
}

func (a *Application) currentScreen() tcell.Screen {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.screen
}

func (a *Application) openScreen() (tcell.Screen, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.screen != nil {
		return a.screen, nil
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create screen")
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "failed to initialize screen")
	}
	screen.EnableMouse()
	screen.EnablePaste()
	a.screen = screen
	return screen, nil
}

// Run draws the root primitive and handles events until Stop is called or
// the screen reports an error.
func (a *Application) Run() error {
	screen, err := a.openScreen()
	if err != nil {
		return err
	}

	// The terminal has to be restored before a panic is printed.
	defer func() {
		if p := recover(); p != nil {
			a.Stop()
			panic(p)
		}
	}()

	events := make(chan tcell.Event, queueSize)
	go func() {
		for {
			event := screen.PollEvent()
			events <- event
			if event == nil {
				return
			}
		}
	}()

	a.draw()

	var (
		runErr error
		paste  pasteBuffer
	)
	for {
		select {
		case event := <-events:
			switch event := event.(type) {
			case nil:
				// PollEvent returns nil once the screen is finalized.
				return runErr
			case *tcell.EventPaste:
				if text, done := paste.toggle(event); done {
					a.handlePaste(text)
				}
			case *tcell.EventKey:
				if !paste.collect(event) {
					a.HandleEvent(event)
				}
			case *tcell.EventError:
				runErr = event
				a.Stop()
			default:
				a.HandleEvent(event)
			}
		case update := <-a.updates:
			update.f()
			close(update.done)
		}
	}
}

// pasteBuffer collects the keys between the start and end of a paste.
type pasteBuffer struct {
	active bool
	text   strings.Builder
}

// toggle starts or ends a paste. It returns the pasted text once a paste
// ends.
func (p *pasteBuffer) toggle(event *tcell.EventPaste) (string, bool) {
	if event.Start() {
		p.active = true
		p.text.Reset()
		return "", false
	}
	p.active = false
	return p.text.String(), true
}

// collect adds event to an active paste and reports whether it did.
func (p *pasteBuffer) collect(event *tcell.EventKey) bool {
	if !p.active {
		return false
	}
	switch event.Key() {
	case tcell.KeyRune:
		p.text.WriteRune(event.Rune())
	case tcell.KeyEnter:
		p.text.WriteByte('\n')
	case tcell.KeyTab:
		p.text.WriteByte('\t')
	}
	return true
}

func (a *Application) handlePaste(text string) {
	focus := a.GetFocus()
	if focus == nil || text == "" {
		return
	}
	if a.executeCommand(focus.PasteHandler(text)) {
		a.draw()
	}
}

// HandleEvent dispatches one key, mouse or resize event and redraws when a
// handler asks for it. It reports whether the screen was redrawn. Ctrl+C
// stops the application.
func (a *Application) HandleEvent(event tcell.Event) bool {
	redraw := false
	switch event := event.(type) {
	case *tcell.EventKey:
		if event.Key() == tcell.KeyCtrlC {
			a.Stop()
			return false
		}
		if focus := a.GetFocus(); focus != nil {
			redraw = a.executeCommand(focus.InputHandler(event))
		}
	case *tcell.EventMouse:
		a.mu.RLock()
		root := a.root
		a.mu.RUnlock()
		if root == nil {
			return false
		}
		for _, action := range a.mouse.actions(event) {
			cmd := root.MouseHandler(action, event)
			if a.executeCommand(cmd) {
				redraw = true
			}
		}
	case *tcell.EventResize:
		if screen := a.currentScreen(); screen != nil {
			screen.Sync()
		}
		redraw = true
	}
	if redraw {
		a.draw()
	}
	return redraw
}

// mouseTracker turns raw mouse events into mouse actions. A click is a
// release of the left button where it was pressed.
type mouseTracker struct {
	buttons        tcell.ButtonMask
	downX, downY   int
	lastX, lastY   int
	seenFirstEvent bool
}

var wheelActions = []struct {
	button tcell.ButtonMask
	action MouseAction
}{
	{tcell.WheelUp, MouseScrollUp},
	{tcell.WheelDown, MouseScrollDown},
	{tcell.WheelLeft, MouseScrollLeft},
	{tcell.WheelRight, MouseScrollRight},
}

func (m *mouseTracker) actions(event *tcell.EventMouse) []MouseAction {
	var actions []MouseAction
	x, y := event.Position()
	buttons := event.Buttons()

	if !m.seenFirstEvent || x != m.lastX || y != m.lastY {
		actions = append(actions, MouseMove)
		m.lastX, m.lastY, m.seenFirstEvent = x, y, true
	}

	if (buttons^m.buttons)&tcell.Button1 != 0 {
		if buttons&tcell.Button1 != 0 {
			actions = append(actions, MouseLeftDown)
			m.downX, m.downY = x, y
		} else {
			actions = append(actions, MouseLeftUp)
			if x == m.downX && y == m.downY {
				actions = append(actions, MouseLeftClick)
			}
		}
	}
	m.buttons = buttons

	for _, wheel := range wheelActions {
		if buttons&wheel.button != 0 {
			actions = append(actions, wheel.action)
		}
	}
	return actions
}

// Stop restores the terminal, causing Run to return.
func (a *Application) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.screen == nil {
		return
	}
	a.screen.Fini()
	a.screen = nil
}

// Draw redraws the screen from the event loop.
func (a *Application) Draw() *Application {
	return a.QueueUpdate(a.draw)
}

func (a *Application) draw() {
	a.mu.RLock()
	screen, root := a.screen, a.root
	a.mu.RUnlock()
	if screen == nil || root == nil {
		return
	}

	width, height := screen.Size()
	root.SetRect(0, 0, width, height)
	root.Draw(screen)
	screen.Show()
}

// SetRoot sets the root primitive and focuses it.
func (a *Application) SetRoot(root Primitive) *Application {
	a.mu.Lock()
	a.root = root
	a.mu.Unlock()
	return a.SetFocus(root)
}

// SetFocus blurs the focused primitive and focuses p.
func (a *Application) SetFocus(p Primitive) *Application {
	a.mu.Lock()
	previous := a.focus
	a.focus = p
	a.mu.Unlock()

	if previous != nil && previous != p {
		previous.Blur()
	}
	if p != nil {
		p.Focus(func(delegate Primitive) {
			a.SetFocus(delegate)
		})
	}
	return a
}

func (a *Application) GetFocus() Primitive {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.focus
}

// QueueUpdate runs f on the event loop and returns once it has run. It must
// not be called from the event loop itself.
func (a *Application) QueueUpdate(f func()) *Application {
	done := make(chan struct{})
	a.updates <- queuedUpdate{f: f, done: done}
	<-done
	return a
}

// QueueUpdateDraw works like QueueUpdate and redraws afterwards.
func (a *Application) QueueUpdateDraw(f func()) *Application {
	return a.QueueUpdate(func() {
		f()
		a.draw()
	})
}

// executeCommand performs cmd and reports whether the screen needs a redraw.
func (a *Application) executeCommand(cmd Command) bool {
	switch c := cmd.(type) {
	case BatchCommand:
		redraw := false
		for _, item := range c {
			redraw = a.executeCommand(item) || redraw
		}
		return redraw
	case RedrawCommand:
		return true
	case QuitCommand:
		a.Stop()
	case SetFocusCommand:
		if c.Target != nil && a.GetFocus() != c.Target {
			a.SetFocus(c.Target)
			return true
		}
	}
	return false
}
