package stickyheaders

import "log/slog"

// LayoutManager layers sticky headers on top of an Engine. The pinned
// header is one of the engine's children, so it is detached around every
// call delegated to the engine and re-attached afterwards.
type LayoutManager struct {
	engine Engine
	host   Host
	sticky *controller
}

// NewLayoutManager returns a layout manager delegating to engine. Layout
// passes are requested from host.
func NewLayoutManager(engine Engine, host Host) *LayoutManager {
	return &LayoutManager{
		engine: engine,
		host:   host,
		sticky: newController(engine, host),
	}
}

// Engine returns the wrapped engine.
func (m *LayoutManager) Engine() Engine {
	return m.engine
}

// SetAdapter hands adapter to the engine and subscribes to its change
// notifications when it is Observable. A callback that is itself another
// adapter describes the old items and is dropped.
func (m *LayoutManager) SetAdapter(adapter Adapter) {
	callback := m.sticky.callback
	if stale, ok := callback.(Adapter); ok && stale != adapter {
		callback = nil
	}
	m.SetSource(adapter, callback)
}

// SetSource replaces the adapter and the callback together, so the header
// index is never built from one with the other.
func (m *LayoutManager) SetSource(adapter Adapter, callback Callback) {
	if old, ok := m.engine.Adapter().(Observable); ok {
		old.UnregisterObserver(m)
	}
	// The pinned header belongs to the old adapter.
	m.sticky.discard(false)
	m.sticky.setPendingScroll(NoPosition, InvalidOffset)

	m.sticky.callback = callback
	m.engine.SetAdapter(adapter)
	if observable, ok := adapter.(Observable); ok {
		observable.RegisterObserver(m)
	}
	m.itemsChanged()
}

// SetCallback sets the sticky header callback and rebuilds the header index.
func (m *LayoutManager) SetCallback(callback Callback) {
	m.sticky.callback = callback
	m.sticky.rebuild()
	m.host.RequestLayout()
}

// SetLogger sets the logger used for sticky header events.
func (m *LayoutManager) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = discardLogger()
	}
	m.sticky.logger = logger
}

// SetEnabled turns sticky headers on or off.
func (m *LayoutManager) SetEnabled(enabled bool) {
	m.sticky.setEnabled(enabled)
}

// Enabled reports whether sticky headers are on.
func (m *LayoutManager) Enabled() bool {
	return m.sticky.enabled
}

// SetTranslationX offsets the pinned header horizontally.
func (m *LayoutManager) SetTranslationX(x int) {
	m.sticky.setTranslationX(x)
}

// SetTranslationY offsets the pinned header vertically.
func (m *LayoutManager) SetTranslationY(y int) {
	m.sticky.setTranslationY(y)
}

// Translation returns the pinned header offsets.
func (m *LayoutManager) Translation() (int, int) {
	return m.sticky.translationX, m.sticky.translationY
}

// IsStickyHeader reports whether item is the pinned header.
func (m *LayoutManager) IsStickyHeader(item Item) bool {
	return item != nil && m.sticky.header != nil && m.sticky.header.Item == item
}

// StickyHeader returns the pinned header's holder, or nil.
func (m *LayoutManager) StickyHeader() *Holder {
	return m.sticky.header
}

// StickyHeaderPosition returns the pinned header's adapter position or
// NoPosition.
func (m *LayoutManager) StickyHeaderPosition() int {
	return m.sticky.headerPosition
}

// Headers returns the positions currently classified as headers.
func (m *LayoutManager) Headers() []int {
	return m.sticky.index.Positions()
}

// LayoutChildren lays out the engine's children and updates the pinned
// header.
func (m *LayoutManager) LayoutChildren() {
	m.sticky.detach()
	m.engine.LayoutChildren()
	m.sticky.attach()

	m.sticky.update(true)
}

// ScrollBy scrolls by delta cells and returns the distance scrolled.
func (m *LayoutManager) ScrollBy(delta int) int {
	m.sticky.detach()
	scrolled := m.engine.ScrollBy(delta)
	m.sticky.attach()

	if scrolled != 0 {
		m.sticky.update(false)
	}
	return scrolled
}

// ScrollToPosition scrolls position into view, below the header pinned for
// it.
func (m *LayoutManager) ScrollToPosition(position int) {
	m.ScrollToPositionWithOffset(position, InvalidOffset)
}

// ScrollToPositionWithOffset scrolls position to offset cells from the
// leading edge, corrected for the pinned header's footprint.
func (m *LayoutManager) ScrollToPositionWithOffset(position, offset int) {
	m.sticky.scrollToPositionWithOffset(position, offset, true)
}

// ScrollToPositionWithOffsetUnadjusted scrolls like
// ScrollToPositionWithOffset but ignores the pinned header.
func (m *LayoutManager) ScrollToPositionWithOffsetUnadjusted(position, offset int) {
	m.sticky.scrollToPositionWithOffset(position, offset, false)
}

// PendingScroll returns the scroll request waiting for the pinned header's
// size, if any.
func (m *LayoutManager) PendingScroll() (position, offset int, ok bool) {
	p := m.sticky.pending
	return p.position, p.offset, p.position != NoPosition
}

// RevealPosition scrolls position fully into view, keeping it clear of the
// pinned header, and returns its child.
func (m *LayoutManager) RevealPosition(position int) *Holder {
	m.sticky.detach()
	child := m.engine.RevealPosition(position)
	m.sticky.attach()
	m.sticky.update(false)

	if overlap := m.sticky.overlap(child); overlap > 0 {
		m.ScrollBy(-overlap)
		child = m.childForPosition(position)
	}
	return child
}

func (m *LayoutManager) childForPosition(position int) *Holder {
	for i := range m.engine.ChildCount() {
		child := m.engine.ChildAt(i)
		if child != nil && child != m.sticky.header && child.Position() == position {
			return child
		}
	}
	return nil
}

func (m *LayoutManager) ScrollRange() int {
	m.sticky.detach()
	defer m.sticky.attach()
	return m.engine.ScrollRange()
}

func (m *LayoutManager) ScrollExtent() int {
	m.sticky.detach()
	defer m.sticky.attach()
	return m.engine.ScrollExtent()
}

func (m *LayoutManager) ScrollOffset() int {
	m.sticky.detach()
	defer m.sticky.attach()
	return m.engine.ScrollOffset()
}

// OnChanged implements DataObserver.
func (m *LayoutManager) OnChanged() {
	m.engine.OnChanged()
	m.itemsChanged()
}

func (m *LayoutManager) OnItemRangeChanged(start, count int) {
	m.engine.OnItemRangeChanged(start, count)
	m.itemsChanged()
}

func (m *LayoutManager) OnItemRangeInserted(start, count int) {
	m.engine.OnItemRangeInserted(start, count)
	m.itemsChanged()
}

func (m *LayoutManager) OnItemRangeRemoved(start, count int) {
	m.engine.OnItemRangeRemoved(start, count)
	m.itemsChanged()
}

func (m *LayoutManager) OnItemRangeMoved(from, to, count int) {
	m.engine.OnItemRangeMoved(from, to, count)
	m.itemsChanged()
}

func (m *LayoutManager) itemsChanged() {
	m.sticky.rebuild()
	m.host.RequestLayout()
}

var _ DataObserver = &LayoutManager{}
