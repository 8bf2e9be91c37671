package stickyheaders

import "log/slog"

// controller owns the pinned header and decides, on every layout or scroll
// pass, which header is pinned and where it is drawn.
type controller struct {
	engine   Engine
	host     Host
	callback Callback
	logger   *slog.Logger

	index HeaderIndex

	// The pinned header, if any. headerPosition is always a member of index
	// while header is non-nil.
	header         *Holder
	headerPosition int

	translationX, translationY int
	enabled                    bool

	pending pendingScroll
}

func newController(engine Engine, host Host) *controller {
	return &controller{
		engine:         engine,
		host:           host,
		logger:         discardLogger(),
		headerPosition: NoPosition,
		enabled:        true,
		pending:        pendingScroll{position: NoPosition, offset: InvalidOffset},
	}
}

func (c *controller) viewport() viewport {
	width, height := c.engine.Size()
	return viewport{
		orientation:  c.engine.Orientation(),
		reverse:      c.engine.Reverse(),
		width:        width,
		height:       height,
		translationX: c.translationX,
		translationY: c.translationY,
	}
}

func (c *controller) isHeader(position int) bool {
	if c.callback == nil {
		return false
	}
	return c.callback.IsStickyHeader(position)
}

// rebuild rescans the data source. A pinned header whose position stopped
// being a header is dropped right away; the layout that follows re-pins.
func (c *controller) rebuild() {
	c.index.Rebuild(c.engine.ItemCount(), c.isHeader)
	c.logger.Debug("header index rebuilt", "headers", c.index.Len())

	if c.header != nil && !c.index.Contains(c.headerPosition) {
		c.discard(false)
	}
}

func (c *controller) setEnabled(enabled bool) {
	if c.enabled == enabled {
		return
	}
	c.enabled = enabled
	if enabled {
		c.host.RequestLayout()
	} else if c.header != nil {
		c.discard(true)
	}
}

func (c *controller) setTranslationX(x int) {
	if c.translationX == x {
		return
	}
	c.translationX = x
	c.host.RequestLayout()
}

func (c *controller) setTranslationY(y int) {
	if c.translationY == y {
		return
	}
	c.translationY = y
	c.host.RequestLayout()
}

// detach hides the pinned header from the engine for the duration of a
// delegated call.
func (c *controller) detach() {
	if c.header != nil {
		c.engine.DetachView(c.header)
	}
}

func (c *controller) attach() {
	if c.header != nil {
		c.engine.AttachView(c.header)
	}
}

// update recomputes the pinned header. layout is true for full layout
// passes and false for scrolls.
func (c *controller) update(layout bool) {
	if !c.enabled {
		return
	}

	if c.index.Len() > 0 && c.engine.ChildCount() > 0 {
		vp := c.viewport()
		if a, ok := findAnchor(c.engine, vp); ok && a.position != NoPosition {
			if c.show(a, vp, layout) {
				return
			}
		}
	}

	if c.header != nil {
		c.discard(true)
	}
}

// show pins the header for anchor a and reports whether one is shown.
func (c *controller) show(a anchor, vp viewport, layout bool) bool {
	headerIndex, ok := c.index.FindAtOrBefore(a.position)
	if !ok {
		return false
	}
	headerPos := c.index.At(headerIndex)
	nextHeaderPos := NoPosition
	if headerIndex+1 < c.index.Len() {
		nextHeaderPos = c.index.At(headerIndex + 1)
	}

	// Pin only when the header is not resting in place as the anchor itself
	// and is not immediately followed by another header.
	if headerPos == a.position && !vp.isOnBoundary(a.holder) {
		return false
	}
	if nextHeaderPos == headerPos+1 {
		return false
	}

	if c.header != nil && c.header.Kind() != c.engine.ItemKind(headerPos) {
		c.discard(true)
	}
	if c.header == nil {
		c.create(headerPos)
	}
	if layout || c.header.Position() != headerPos {
		c.bind(headerPos)
	}

	var next *Holder
	if nextHeaderPos != NoPosition {
		next = c.engine.ChildAt(a.index + (nextHeaderPos - a.position))
		// The pinned header is a child too; it is never its own successor.
		if next == c.header || (next != nil && next.Position() != nextHeaderPos) {
			next = nil
		}
	}
	c.header.SetTranslation(c.headerX(vp, next), c.headerY(vp, next))
	return true
}

func (c *controller) create(position int) {
	h := c.engine.ViewForPosition(position)

	if c.callback != nil {
		c.callback.SetupStickyHeader(h.Item)
	}

	// The header is a regular child so that it is detached and attached
	// around every delegated call, but the engine must not lay it out.
	c.engine.AddView(h)
	c.measureAndLayout(h)
	c.engine.IgnoreView(h)

	c.header = h
	c.headerPosition = position
	c.logger.Debug("sticky header pinned", "position", position)
}

func (c *controller) bind(position int) {
	h := c.header
	if h == nil {
		return
	}

	c.engine.BindViewToPosition(h, position)
	c.headerPosition = position
	c.measureAndLayout(h)

	if c.pending.position != NoPosition {
		c.schedulePendingScroll()
	}
}

func (c *controller) measureAndLayout(h *Holder) {
	width, height := c.engine.Size()
	measuredWidth, measuredHeight := c.engine.Measure(h)
	if c.engine.Orientation() == Vertical {
		c.engine.LayoutChild(h, Rect{X: 0, Y: 0, Width: width, Height: measuredHeight})
	} else {
		c.engine.LayoutChild(h, Rect{X: 0, Y: 0, Width: measuredWidth, Height: height})
	}
}

// discard releases the pinned header. It is a no-op without one.
func (c *controller) discard(recycle bool) {
	h := c.header
	position := c.headerPosition
	c.header = nil
	c.headerPosition = NoPosition
	if h == nil {
		return
	}

	h.SetTranslation(0, 0)
	if c.callback != nil {
		c.callback.TeardownStickyHeader(h.Item)
	}
	c.engine.StopIgnoringView(h)
	c.engine.RemoveView(h)
	if recycle {
		c.engine.RecycleView(h)
	}
	c.logger.Debug("sticky header unpinned", "position", position)
}

func (c *controller) headerY(vp viewport, next *Holder) int {
	if vp.orientation != Vertical {
		return vp.translationY
	}
	y := vp.translationY
	if vp.reverse {
		y += vp.height - c.header.Height()
	}
	if next != nil {
		if vp.reverse {
			y = max(next.Bottom(), y)
		} else {
			y = min(next.Top()-c.header.Height(), y)
		}
	}
	return y
}

func (c *controller) headerX(vp viewport, next *Holder) int {
	if vp.orientation == Vertical {
		return vp.translationX
	}
	x := vp.translationX
	if vp.reverse {
		x += vp.width - c.header.Width()
	}
	if next != nil {
		if vp.reverse {
			x = max(next.Right(), x)
		} else {
			x = min(next.Left()-c.header.Width(), x)
		}
	}
	return x
}

// overlap returns how far the pinned header covers child along the scroll
// axis.
func (c *controller) overlap(child *Holder) int {
	h := c.header
	if h == nil || child == nil || child == h || child.Position() == c.headerPosition {
		return 0
	}
	vp := c.viewport()
	tx, ty := h.Translation()
	var covered int
	switch {
	case vp.orientation == Vertical && !vp.reverse:
		covered = h.Bottom() + ty - child.Top()
	case vp.orientation == Vertical:
		covered = child.Bottom() - (h.Top() + ty)
	case !vp.reverse:
		covered = h.Right() + tx - child.Left()
	default:
		covered = child.Right() - (h.Left() + tx)
	}
	return max(covered, 0)
}
