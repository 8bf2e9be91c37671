package stickyheaders

import "math"

// NoPosition marks the absence of an adapter position.
const NoPosition = -1

// InvalidOffset asks the engine to scroll as little as possible to make the
// target fully visible instead of aligning it at a fixed offset.
const InvalidOffset = math.MinInt32

// Orientation is the scroll axis of a list.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return "unknown"
	}
}

// Rect is a rectangle in cells, relative to the list viewport.
type Rect struct {
	X, Y, Width, Height int
}

func (r Rect) Left() int   { return r.X }
func (r Rect) Top() int    { return r.Y }
func (r Rect) Right() int  { return r.X + r.Width }
func (r Rect) Bottom() int { return r.Y + r.Height }

// Item is a primitive materialized by the list for one adapter position.
type Item interface {
	Primitive

	// Measure returns the size the item wants when laid out inside a
	// viewport of the given size. Vertical lists use the returned height,
	// horizontal lists the returned width.
	Measure(width, height int) (int, int)
}

// Selectable is implemented by items that render the list cursor.
type Selectable interface {
	SetSelected(selected bool)
}

// Holder wraps an Item together with the bookkeeping the engine keeps for it.
type Holder struct {
	Item Item

	kind     int
	position int
	rect     Rect

	translationX, translationY int

	removed  bool
	invalid  bool
	ignored  bool
	attached bool
}

// Kind returns the item kind the holder was created for.
func (h *Holder) Kind() int { return h.kind }

// Position returns the adapter position the holder is bound to.
func (h *Holder) Position() int { return h.position }

// Rect returns the laid out rectangle, without translation.
func (h *Holder) Rect() Rect { return h.rect }

func (h *Holder) Left() int   { return h.rect.Left() }
func (h *Holder) Top() int    { return h.rect.Top() }
func (h *Holder) Right() int  { return h.rect.Right() }
func (h *Holder) Bottom() int { return h.rect.Bottom() }
func (h *Holder) Width() int  { return h.rect.Width }
func (h *Holder) Height() int { return h.rect.Height }

// Translation returns the drawing offset applied on top of Rect.
func (h *Holder) Translation() (int, int) {
	return h.translationX, h.translationY
}

// SetTranslation sets the drawing offset applied on top of Rect.
func (h *Holder) SetTranslation(x, y int) {
	h.translationX, h.translationY = x, y
}

// Removed reports whether the item behind this holder was removed from the
// adapter since the last layout.
func (h *Holder) Removed() bool { return h.removed }

// Invalid reports whether the holder's content is stale since the last layout.
func (h *Holder) Invalid() bool { return h.invalid }

// Ignored reports whether the engine leaves this holder alone.
func (h *Holder) Ignored() bool { return h.ignored }

// Attached reports whether h is currently one of the engine's children.
func (h *Holder) Attached() bool { return h.attached }

// Recycler materializes and binds holders.
type Recycler interface {
	ItemCount() int
	ItemKind(position int) int
	// ViewForPosition returns a holder bound to position, reusing a recycled
	// one of the same kind when possible.
	ViewForPosition(position int) *Holder
	BindViewToPosition(h *Holder, position int)
	RecycleView(h *Holder)
}

// Engine is the linear layout engine the sticky header logic is layered on.
// Every call is synchronous and runs on the UI goroutine.
type Engine interface {
	Recycler
	DataObserver

	SetAdapter(adapter Adapter)
	Adapter() Adapter

	Orientation() Orientation
	Reverse() bool
	// Size returns the viewport size in cells.
	Size() (width, height int)

	ChildCount() int
	// ChildAt returns the child at index or nil when out of range.
	ChildAt(index int) *Holder

	// Measure returns the size h wants inside the viewport.
	Measure(h *Holder) (width, height int)
	LayoutChild(h *Holder, rect Rect)

	AddView(h *Holder)
	RemoveView(h *Holder)
	DetachView(h *Holder)
	AttachView(h *Holder)
	IgnoreView(h *Holder)
	StopIgnoringView(h *Holder)

	LayoutChildren()
	// ScrollBy scrolls by delta cells along the scroll axis and returns the
	// distance actually scrolled.
	ScrollBy(delta int) int
	ScrollToPositionWithOffset(position, offset int)
	// RevealPosition scrolls the least amount needed for position to be fully
	// visible and returns its child.
	RevealPosition(position int) *Holder

	ScrollRange() int
	ScrollExtent() int
	ScrollOffset() int

	SaveState() ([]byte, error)
	RestoreState(data []byte) error
}

// Host is the environment driving layout passes.
type Host interface {
	RequestLayout()
	// AfterLayout registers fn to run once after the next completed layout
	// pass. The returned function unregisters it.
	AfterLayout(fn func()) (cancel func())
}
