package stickyheaders

import (
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/xqrs/stickyheaders/keybind"
)

// maxLayoutPasses bounds the layout passes run by a single Draw. A pass may
// request another one (a pending scroll correction does), which is expected
// to settle after one more.
const maxLayoutPasses = 4

// Keymap holds the key bindings of a StickyList.
type Keymap struct {
	Up           keybind.Keybind
	Down         keybind.Keybind
	PageUp       keybind.Keybind
	PageDown     keybind.Keybind
	Top          keybind.Keybind
	Bottom       keybind.Keybind
	ToggleSticky keybind.Keybind
}

// DefaultKeymap returns the default list key bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		Up:           keybind.NewKeybind(keybind.WithKeys("up", "k"), keybind.WithHelp("↑/k", "up")),
		Down:         keybind.NewKeybind(keybind.WithKeys("down", "j"), keybind.WithHelp("↓/j", "down")),
		PageUp:       keybind.NewKeybind(keybind.WithKeys("pgup", "ctrl+b"), keybind.WithHelp("pgup", "page up")),
		PageDown:     keybind.NewKeybind(keybind.WithKeys("pgdn", "ctrl+f"), keybind.WithHelp("pgdn", "page down")),
		Top:          keybind.NewKeybind(keybind.WithKeys("home", "g"), keybind.WithHelp("home/g", "top")),
		Bottom:       keybind.NewKeybind(keybind.WithKeys("end", "G"), keybind.WithHelp("end/G", "bottom")),
		ToggleSticky: keybind.NewKeybind(keybind.WithKeys("s"), keybind.WithHelp("s", "toggle sticky headers")),
	}
}

// Help returns the help entries of the bound keys.
func (k Keymap) Help() []keybind.Help {
	var help []keybind.Help
	for _, b := range []keybind.Keybind{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom, k.ToggleSticky} {
		if b.Enabled() {
			help = append(help, b.Help())
		}
	}
	return help
}

// StickyList displays a virtual list of adapter items whose section headers
// stay pinned at the leading edge while their section is on screen.
type StickyList struct {
	*Box

	engine  *LinearLayout
	manager *LayoutManager

	keymap    Keymap
	wheelStep int

	scrollBar     *ScrollBar
	showScrollBar bool

	cursor  int
	changed func(position int)

	logger *slog.Logger

	layoutRequested bool
	afterLayout     postLayout

	// Origin of the viewport on screen at the last draw.
	viewX, viewY int
}

// NewStickyList returns an empty vertical list.
func NewStickyList() *StickyList {
	l := &StickyList{
		Box:           NewBox(),
		engine:        NewLinearLayout(Vertical, false),
		keymap:        DefaultKeymap(),
		wheelStep:     3,
		scrollBar:     NewScrollBar(),
		showScrollBar: true,
		cursor:        NoPosition,
		logger:        discardLogger(),
	}
	l.manager = NewLayoutManager(l.engine, l)
	return l
}

// RequestLayout implements Host.
func (l *StickyList) RequestLayout() {
	l.layoutRequested = true
}

// AfterLayout implements Host.
func (l *StickyList) AfterLayout(fn func()) (cancel func()) {
	return l.afterLayout.add(fn)
}

// Manager returns the layout manager driving the list.
func (l *StickyList) Manager() *LayoutManager {
	return l.manager
}

// SetAdapter sets the data source. The cursor is reset.
func (l *StickyList) SetAdapter(adapter Adapter) *StickyList {
	l.cursor = NoPosition
	l.manager.SetAdapter(adapter)
	return l
}

// SetCallback sets which positions are sticky headers.
func (l *StickyList) SetCallback(callback Callback) *StickyList {
	l.manager.SetCallback(callback)
	return l
}

// SetSections shows sections through a SectionAdapter, which is also used as
// the callback.
func (l *StickyList) SetSections(sections ...Section) *SectionAdapter {
	adapter := NewSectionAdapter(sections...)
	l.cursor = NoPosition
	l.manager.SetSource(adapter, adapter)
	return adapter
}

// SetStickyHeadersEnabled turns header pinning on or off.
func (l *StickyList) SetStickyHeadersEnabled(enabled bool) *StickyList {
	l.manager.SetEnabled(enabled)
	return l
}

// StickyHeadersEnabled reports whether header pinning is on.
func (l *StickyList) StickyHeadersEnabled() bool {
	return l.manager.Enabled()
}

// SetTranslation moves the line headers are pinned to.
func (l *StickyList) SetTranslation(x, y int) *StickyList {
	l.manager.SetTranslationX(x)
	l.manager.SetTranslationY(y)
	return l
}

// SetOrientation sets the scroll axis.
func (l *StickyList) SetOrientation(orientation Orientation) *StickyList {
	if l.engine.Orientation() != orientation {
		l.engine.SetOrientation(orientation)
		l.RequestLayout()
	}
	return l
}

// SetReverse lays items out from the bottom (or right) edge.
func (l *StickyList) SetReverse(reverse bool) *StickyList {
	if l.engine.Reverse() != reverse {
		l.engine.SetReverse(reverse)
		l.RequestLayout()
	}
	return l
}

// SetGap sets the number of blank cells between items.
func (l *StickyList) SetGap(gap int) *StickyList {
	l.engine.SetGap(gap)
	l.RequestLayout()
	return l
}

// SetScrollBar toggles the scroll bar of vertical lists.
func (l *StickyList) SetScrollBar(show bool) *StickyList {
	l.showScrollBar = show
	return l
}

// ScrollBar returns the scroll bar for styling.
func (l *StickyList) ScrollBar() *ScrollBar {
	return l.scrollBar
}

// SetWheelStep sets the cells scrolled per mouse wheel notch.
func (l *StickyList) SetWheelStep(step int) *StickyList {
	l.wheelStep = max(step, 1)
	return l
}

// SetKeymap replaces the key bindings.
func (l *StickyList) SetKeymap(keymap Keymap) *StickyList {
	l.keymap = keymap
	return l
}

// Keymap returns the key bindings.
func (l *StickyList) Keymap() Keymap {
	return l.keymap
}

// SetLogger sets the logger of the list and its layout manager.
func (l *StickyList) SetLogger(logger *slog.Logger) *StickyList {
	if logger == nil {
		logger = discardLogger()
	}
	l.logger = logger
	l.manager.SetLogger(logger)
	return l
}

// SetChangedFunc sets a handler called when the cursor moves.
func (l *StickyList) SetChangedFunc(handler func(position int)) *StickyList {
	l.changed = handler
	return l
}

// Cursor returns the position under the cursor or NoPosition.
func (l *StickyList) Cursor() int {
	return l.cursor
}

// SetCursor moves the cursor to position and scrolls it into view, clear of
// the pinned header.
func (l *StickyList) SetCursor(position int) *StickyList {
	count := l.engine.ItemCount()
	if count == 0 {
		position = NoPosition
	} else {
		position = min(max(position, 0), count-1)
	}
	moved := position != l.cursor

	l.cursor = position
	if position != NoPosition {
		l.Layout()
		l.manager.RevealPosition(position)
	}
	if moved && l.changed != nil {
		l.changed(position)
	}
	return l
}

// NextItem moves the cursor to the next item, if any.
func (l *StickyList) NextItem() bool {
	if l.cursor+1 >= l.engine.ItemCount() {
		return false
	}
	l.SetCursor(l.cursor + 1)
	return true
}

// PrevItem moves the cursor to the previous item, if any.
func (l *StickyList) PrevItem() bool {
	if l.cursor <= 0 {
		return false
	}
	l.SetCursor(l.cursor - 1)
	return true
}

// ScrollBy scrolls by delta cells and returns the distance scrolled.
func (l *StickyList) ScrollBy(delta int) int {
	l.Layout()
	return l.manager.ScrollBy(delta)
}

// ScrollToPosition scrolls position into view below its pinned header.
func (l *StickyList) ScrollToPosition(position int) *StickyList {
	l.manager.ScrollToPosition(position)
	return l
}

// ScrollToPositionWithOffset scrolls position to offset cells below its
// pinned header.
func (l *StickyList) ScrollToPositionWithOffset(position, offset int) *StickyList {
	l.manager.ScrollToPositionWithOffset(position, offset)
	return l
}

// page returns the cells a page scroll moves: the viewport minus the
// pinned header.
func (l *StickyList) page() int {
	width, height := l.engine.Size()
	page := height
	if l.engine.Orientation() == Horizontal {
		page = width
	}
	if h := l.manager.StickyHeader(); h != nil {
		if l.engine.Orientation() == Vertical {
			page -= h.Height()
		} else {
			page -= h.Width()
		}
	}
	return max(page, 1)
}

// Layout runs layout passes until none is requested, firing post-layout
// callbacks after each one.
func (l *StickyList) Layout() {
	for pass := 0; pass < maxLayoutPasses && l.layoutRequested; pass++ {
		l.layoutRequested = false
		l.manager.LayoutChildren()
		l.afterLayout.fire()
	}
	if l.layoutRequested {
		l.logger.Warn("layout did not settle", "passes", maxLayoutPasses, "callbacks", l.afterLayout.len())
	}
}

func (l *StickyList) viewport() (x, y, width, height int, bar bool) {
	x, y, width, height = l.GetInnerRect()
	bar = l.showScrollBar && l.engine.Orientation() == Vertical && width > 1
	if bar {
		width--
	}
	return
}

// Draw draws this primitive onto the screen.
func (l *StickyList) Draw(screen tcell.Screen) {
	l.DrawForSubclass(screen, l)

	x, y, width, height, bar := l.viewport()
	if w, h := l.engine.Size(); w != width || h != height {
		l.engine.SetSize(width, height)
		l.RequestLayout()
	}
	l.Layout()

	l.viewX, l.viewY = x, y
	if width <= 0 || height <= 0 {
		return
	}

	clipped := newClippedScreen(screen, x, y, width, height)
	pinned := l.manager.StickyHeader()
	for i := range l.engine.ChildCount() {
		child := l.engine.ChildAt(i)
		if child == nil || child == pinned {
			continue
		}
		l.drawChild(clipped, child)
	}
	// The pinned copy covers whatever scrolled underneath it.
	if pinned != nil {
		l.drawChild(clipped, pinned)
	}

	if bar {
		l.scrollBar.SetRect(x+width, y, 1, height)
		l.scrollBar.SetWindow(l.manager.ScrollRange(), l.manager.ScrollExtent(), l.manager.ScrollOffset())
		l.scrollBar.Draw(screen)
	}
}

func (l *StickyList) drawChild(screen tcell.Screen, h *Holder) {
	r := h.Rect()
	tx, ty := h.Translation()
	h.Item.SetRect(l.viewX+r.X+tx, l.viewY+r.Y+ty, r.Width, r.Height)
	if s, ok := h.Item.(Selectable); ok {
		s.SetSelected(l.cursor != NoPosition && h.Position() == l.cursor)
	}
	h.Item.Draw(screen)
}

// PositionAt returns the adapter position drawn at the given screen cell or
// NoPosition. The pinned header wins over the items it covers.
func (l *StickyList) PositionAt(x, y int) int {
	if pinned := l.manager.StickyHeader(); pinned != nil && l.hit(pinned, x, y) {
		return pinned.Position()
	}
	for i := range l.engine.ChildCount() {
		child := l.engine.ChildAt(i)
		if child == nil || child.Ignored() {
			continue
		}
		if l.hit(child, x, y) {
			return child.Position()
		}
	}
	return NoPosition
}

func (l *StickyList) hit(h *Holder, x, y int) bool {
	width, height := l.engine.Size()
	x, y = x-l.viewX, y-l.viewY
	if x < 0 || y < 0 || x >= width || y >= height {
		return false
	}
	r := h.Rect()
	tx, ty := h.Translation()
	return x >= r.X+tx && x < r.X+tx+r.Width && y >= r.Y+ty && y < r.Y+ty+r.Height
}

// InputHandler handles the list's key bindings.
func (l *StickyList) InputHandler(event *tcell.EventKey) Command {
	switch {
	case keybind.Matches(event, l.keymap.Down):
		l.NextItem()
	case keybind.Matches(event, l.keymap.Up):
		l.PrevItem()
	case keybind.Matches(event, l.keymap.PageDown):
		l.ScrollBy(l.page())
	case keybind.Matches(event, l.keymap.PageUp):
		l.ScrollBy(-l.page())
	case keybind.Matches(event, l.keymap.Top):
		l.SetCursor(0)
	case keybind.Matches(event, l.keymap.Bottom):
		l.SetCursor(l.engine.ItemCount() - 1)
	case keybind.Matches(event, l.keymap.ToggleSticky):
		l.manager.SetEnabled(!l.manager.Enabled())
		l.logger.Info("sticky headers toggled", "enabled", l.manager.Enabled())
	default:
		return nil
	}
	return RedrawCommand{}
}

// MouseHandler moves the cursor on clicks and scrolls on wheel events.
func (l *StickyList) MouseHandler(action MouseAction, event *tcell.EventMouse) Command {
	x, y := event.Position()
	if !l.InRect(x, y) {
		return nil
	}

	switch action {
	case MouseLeftDown:
		return SetFocusCommand{Target: l}
	case MouseLeftClick:
		if position := l.PositionAt(x, y); position != NoPosition {
			l.SetCursor(position)
		}
		return RedrawCommand{}
	case MouseScrollUp, MouseScrollLeft:
		l.ScrollBy(-l.wheelStep)
		return RedrawCommand{}
	case MouseScrollDown, MouseScrollRight:
		l.ScrollBy(l.wheelStep)
		return RedrawCommand{}
	}
	return nil
}

var (
	_ Primitive = &StickyList{}
	_ Host      = &StickyList{}
)

// clippedScreen restricts drawing to a rectangle of the wrapped screen.
type clippedScreen struct {
	tcell.Screen
	x, y, width, height int
}

func newClippedScreen(screen tcell.Screen, x, y, width, height int) *clippedScreen {
	return &clippedScreen{
		Screen: screen,
		x:      x,
		y:      y,
		width:  width,
		height: height,
	}
}

func (s *clippedScreen) inBounds(x, y int) bool {
	return x >= s.x && x < s.x+s.width && y >= s.y && y < s.y+s.height
}

func (s *clippedScreen) SetContent(x int, y int, primary rune, combining []rune, style tcell.Style) {
	if !s.inBounds(x, y) {
		return
	}
	s.Screen.SetContent(x, y, primary, combining, style)
}

func (s *clippedScreen) ShowCursor(x int, y int) {
	if !s.inBounds(x, y) {
		s.Screen.HideCursor()
		return
	}
	s.Screen.ShowCursor(x, y)
}
