package stickyheaders

import (
	"slices"

	"github.com/pkg/errors"
)

// LinearLayout lays out a virtual window of adapter items along one axis.
// Only the items intersecting the viewport are materialized; everything
// else lives in the recycler.
type LinearLayout struct {
	orientation Orientation
	reverse     bool
	gap         int

	width, height int

	recycler recycler
	children []*Holder

	// Position of the first laid out item and the number of cells of it
	// scrolled past the leading edge.
	anchor int
	offset int

	// Scroll target applied on the next layout.
	jump *scrollTarget

	// Fully visible positions after the last layout.
	firstVisible, lastVisible int
}

type scrollTarget struct {
	position int
	offset   int
}

type linearState struct {
	Anchor int `cbor:"1,keyasint"`
	Offset int `cbor:"2,keyasint"`
}

// NewLinearLayout returns an empty linear layout.
func NewLinearLayout(orientation Orientation, reverse bool) *LinearLayout {
	return &LinearLayout{
		orientation:  orientation,
		reverse:      reverse,
		firstVisible: NoPosition,
		lastVisible:  NoPosition,
	}
}

// SetAdapter replaces the adapter. All children and recycled holders are
// dropped and the scroll position is reset.
func (l *LinearLayout) SetAdapter(adapter Adapter) {
	for _, child := range l.children {
		child.attached = false
	}
	l.children = nil
	l.recycler.setAdapter(adapter)
	l.anchor, l.offset = 0, 0
	l.jump = nil
	l.resetVisible()
}

// Adapter returns the current adapter.
func (l *LinearLayout) Adapter() Adapter {
	return l.recycler.adapter
}

// SetOrientation sets the scroll axis.
func (l *LinearLayout) SetOrientation(orientation Orientation) {
	l.orientation = orientation
}

// SetReverse lays items out from the trailing edge when set.
func (l *LinearLayout) SetReverse(reverse bool) {
	l.reverse = reverse
}

// SetGap sets the number of blank cells between items.
func (l *LinearLayout) SetGap(gap int) {
	l.gap = max(gap, 0)
}

// SetSize sets the viewport size.
func (l *LinearLayout) SetSize(width, height int) {
	l.width, l.height = max(width, 0), max(height, 0)
}

func (l *LinearLayout) Orientation() Orientation { return l.orientation }
func (l *LinearLayout) Reverse() bool            { return l.reverse }
func (l *LinearLayout) Size() (int, int)         { return l.width, l.height }

func (l *LinearLayout) ItemCount() int {
	return l.recycler.itemCount()
}

func (l *LinearLayout) ItemKind(position int) int {
	if l.recycler.adapter == nil {
		return 0
	}
	return l.recycler.adapter.ItemKind(position)
}

func (l *LinearLayout) ViewForPosition(position int) *Holder {
	return l.recycler.obtain(position)
}

func (l *LinearLayout) BindViewToPosition(h *Holder, position int) {
	l.recycler.bind(h, position)
}

func (l *LinearLayout) RecycleView(h *Holder) {
	l.recycler.recycle(h)
}

func (l *LinearLayout) ChildCount() int {
	return len(l.children)
}

func (l *LinearLayout) ChildAt(index int) *Holder {
	if index < 0 || index >= len(l.children) {
		return nil
	}
	return l.children[index]
}

func (l *LinearLayout) Measure(h *Holder) (int, int) {
	width, height := h.Item.Measure(l.width, l.height)
	if l.orientation == Vertical {
		return l.width, max(height, 1)
	}
	return max(width, 1), l.height
}

func (l *LinearLayout) LayoutChild(h *Holder, rect Rect) {
	h.rect = rect
}

// AddView appends h to the children. Adding a holder that is already a
// child does nothing.
func (l *LinearLayout) AddView(h *Holder) {
	if h == nil || h.attached {
		return
	}
	l.children = append(l.children, h)
	h.attached = true
}

func (l *LinearLayout) RemoveView(h *Holder) {
	if h == nil || !h.attached {
		return
	}
	l.children = slices.DeleteFunc(l.children, func(c *Holder) bool {
		return c == h
	})
	h.attached = false
}

// DetachView takes h out of the child list without releasing it. Detaching
// twice is harmless.
func (l *LinearLayout) DetachView(h *Holder) {
	l.RemoveView(h)
}

// AttachView puts a detached holder back at the end of the child list. An
// attached holder stays where it is.
func (l *LinearLayout) AttachView(h *Holder) {
	l.AddView(h)
}

func (l *LinearLayout) IgnoreView(h *Holder) {
	h.ignored = true
}

func (l *LinearLayout) StopIgnoringView(h *Holder) {
	h.ignored = false
}

func (l *LinearLayout) mainLen() int {
	if l.orientation == Vertical {
		return l.height
	}
	return l.width
}

func (l *LinearLayout) span(h *Holder) int {
	width, height := l.Measure(h)
	if l.orientation == Vertical {
		return height
	}
	return width
}

func (l *LinearLayout) spanAt(position int) int {
	h := l.recycler.obtain(position)
	span := l.span(h)
	l.recycler.recycle(h)
	return span
}

// place converts a span along the scroll axis into a viewport rectangle.
func (l *LinearLayout) place(start, span int) Rect {
	switch {
	case l.orientation == Vertical && !l.reverse:
		return Rect{X: 0, Y: start, Width: l.width, Height: span}
	case l.orientation == Vertical:
		return Rect{X: 0, Y: l.height - start - span, Width: l.width, Height: span}
	case !l.reverse:
		return Rect{X: start, Y: 0, Width: span, Height: l.height}
	default:
		return Rect{X: l.width - start - span, Y: 0, Width: span, Height: l.height}
	}
}

func (l *LinearLayout) resetVisible() {
	l.firstVisible, l.lastVisible = NoPosition, NoPosition
}

// LayoutChildren releases every child the engine manages and lays out a
// fresh window starting at the anchor. Ignored children are kept as they
// are, after the laid out ones.
func (l *LinearLayout) LayoutChildren() {
	var kept []*Holder
	for _, child := range l.children {
		if child.ignored {
			kept = append(kept, child)
			continue
		}
		l.recycler.recycle(child)
	}
	l.children = l.children[:0]

	count := l.ItemCount()
	if count == 0 || l.mainLen() <= 0 {
		// A jump requested before the first sized layout is kept for it.
		if count == 0 {
			l.anchor, l.offset = 0, 0
			l.jump = nil
		}
		l.resetVisible()
		l.children = append(l.children, kept...)
		return
	}

	if l.jump != nil {
		l.applyJump(count)
		l.jump = nil
	}
	l.anchor = min(max(l.anchor, 0), count-1)
	l.normalize(count)
	l.clampEnd(count)
	l.fill(count)

	l.children = append(l.children, kept...)
}

func (l *LinearLayout) fill(count int) {
	mainLen := l.mainLen()
	cursor := -l.offset
	l.resetVisible()
	for position := l.anchor; position < count && cursor < mainLen; position++ {
		h := l.recycler.obtain(position)
		span := l.span(h)
		h.rect = l.place(cursor, span)
		h.attached = true
		l.children = append(l.children, h)

		if cursor >= 0 && cursor+span <= mainLen {
			if l.firstVisible == NoPosition {
				l.firstVisible = position
			}
			l.lastVisible = position
		}
		cursor += span + l.gap
	}
}

func (l *LinearLayout) applyJump(count int) {
	position := min(max(l.jump.position, 0), count-1)
	if l.jump.offset != InvalidOffset {
		l.anchor = position
		l.offset = -l.jump.offset
		return
	}

	// Scroll as little as possible.
	if l.firstVisible != NoPosition && position >= l.firstVisible && position <= l.lastVisible {
		return
	}
	l.anchor = position
	if l.firstVisible == NoPosition || position < l.firstVisible {
		l.offset = 0
		return
	}
	// Below the window: align the trailing edges, unless the item does not
	// fit at all.
	l.offset = min(l.spanAt(position)-l.mainLen(), 0)
}

// normalize moves the anchor until the offset falls inside the anchor item.
// It returns how many cells were dropped at the start of the list.
func (l *LinearLayout) normalize(count int) int {
	for l.offset < 0 && l.anchor > 0 {
		l.anchor--
		l.offset += l.spanAt(l.anchor) + l.gap
	}
	clipped := 0
	if l.offset < 0 {
		clipped = -l.offset
		l.offset = 0
	}
	for l.anchor < count-1 {
		step := l.spanAt(l.anchor) + l.gap
		if l.offset < step {
			break
		}
		l.offset -= step
		l.anchor++
	}
	return clipped
}

// clampEnd pulls the window back when the last item ends before the
// trailing edge and returns how far it moved.
func (l *LinearLayout) clampEnd(count int) int {
	mainLen := l.mainLen()
	end := -l.offset
	for position := l.anchor; position < count && end < mainLen; position++ {
		if position > l.anchor {
			end += l.gap
		}
		end += l.spanAt(position)
	}
	short := mainLen - end
	if short <= 0 {
		return 0
	}
	l.offset -= short
	return short - l.normalize(count)
}

func (l *LinearLayout) ScrollBy(delta int) int {
	count := l.ItemCount()
	if delta == 0 || count == 0 || l.mainLen() <= 0 {
		return 0
	}
	if l.jump != nil {
		l.LayoutChildren()
	}

	l.offset += delta
	scrolled := delta + l.normalize(count)
	scrolled -= l.clampEnd(count)
	l.LayoutChildren()
	return scrolled
}

func (l *LinearLayout) ScrollToPositionWithOffset(position, offset int) {
	l.jump = &scrollTarget{position: position, offset: offset}
}

func (l *LinearLayout) RevealPosition(position int) *Holder {
	if position < 0 || position >= l.ItemCount() {
		return nil
	}
	if l.firstVisible != NoPosition && position >= l.firstVisible && position <= l.lastVisible {
		if child := l.childFor(position); child != nil && !child.invalid && !child.removed {
			return child
		}
	}
	l.jump = &scrollTarget{position: position, offset: InvalidOffset}
	l.LayoutChildren()
	return l.childFor(position)
}

func (l *LinearLayout) childFor(position int) *Holder {
	for _, child := range l.children {
		if !child.ignored && child.position == position {
			return child
		}
	}
	return nil
}

// ScrollRange returns the scrollable content length in items.
func (l *LinearLayout) ScrollRange() int {
	return l.ItemCount()
}

// ScrollExtent returns the number of items in the window.
func (l *LinearLayout) ScrollExtent() int {
	extent := 0
	for _, child := range l.children {
		if !child.ignored {
			extent++
		}
	}
	return extent
}

// ScrollOffset returns the position of the first item in the window.
func (l *LinearLayout) ScrollOffset() int {
	if len(l.children) == 0 {
		return 0
	}
	return l.anchor
}

func (l *LinearLayout) SaveState() ([]byte, error) {
	return marshalState(linearState{Anchor: l.anchor, Offset: l.offset})
}

func (l *LinearLayout) RestoreState(data []byte) error {
	var state linearState
	if err := unmarshalState(data, &state); err != nil {
		return errors.Wrap(err, "failed to decode linear layout state")
	}
	l.anchor, l.offset = max(state.Anchor, 0), max(state.Offset, 0)
	l.jump = nil
	l.resetVisible()
	return nil
}

func (l *LinearLayout) markChildren(mark func(h *Holder)) {
	for _, child := range l.children {
		if !child.ignored {
			mark(child)
		}
	}
}

func (l *LinearLayout) OnChanged() {
	l.markChildren(func(h *Holder) { h.invalid = true })
	l.resetVisible()
}

func (l *LinearLayout) OnItemRangeChanged(start, count int) {
	l.markChildren(func(h *Holder) {
		if h.position >= start && h.position < start+count {
			h.invalid = true
		}
	})
}

func (l *LinearLayout) OnItemRangeInserted(start, count int) {
	if start < l.anchor {
		l.anchor += count
	}
	l.markChildren(func(h *Holder) {
		if h.position >= start {
			h.invalid = true
		}
	})
	l.resetVisible()
}

func (l *LinearLayout) OnItemRangeRemoved(start, count int) {
	switch {
	case start+count <= l.anchor:
		l.anchor -= count
	case start <= l.anchor:
		l.anchor, l.offset = start, 0
	}
	l.markChildren(func(h *Holder) {
		switch {
		case h.position >= start && h.position < start+count:
			h.removed = true
		case h.position >= start+count:
			h.invalid = true
		}
	})
	l.resetVisible()
}

func (l *LinearLayout) OnItemRangeMoved(from, to, count int) {
	l.OnChanged()
}

var _ Engine = &LinearLayout{}
