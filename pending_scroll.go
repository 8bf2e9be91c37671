package stickyheaders

import "slices"

// pendingScroll is a scroll request that has to be repeated once the pinned
// header's real size is known.
type pendingScroll struct {
	position int
	offset   int
	// cancel unregisters the post-layout callback, if one is registered.
	cancel func()
}

func (c *controller) setPendingScroll(position, offset int) {
	if c.pending.cancel != nil {
		c.pending.cancel()
	}
	c.pending = pendingScroll{position: position, offset: offset}
}

// scrollToPositionWithOffset scrolls so that position ends up offset cells
// from the leading edge. With adjust set, the target and offset are
// corrected for the footprint of the pinned header.
func (c *controller) scrollToPositionWithOffset(position, offset int, adjust bool) {
	c.setPendingScroll(NoPosition, InvalidOffset)

	if !adjust {
		c.delegateScroll(position, offset)
		return
	}

	// Nothing to correct without a header above, or when the target is one.
	headerIndex, ok := c.index.FindAtOrBefore(position)
	if !ok || c.index.Contains(position) {
		c.delegateScroll(position, offset)
		return
	}

	// Right below a header: scroll to the header instead.
	if c.index.Contains(position - 1) {
		c.delegateScroll(position-1, offset)
		return
	}

	// The target's header is already pinned, so its height is known.
	if c.header != nil {
		if pinned, ok := c.index.FindExact(c.headerPosition); ok && pinned == headerIndex {
			adjusted := c.header.Height()
			if c.engine.Orientation() == Horizontal {
				adjusted = c.header.Width()
			}
			if offset != InvalidOffset {
				adjusted += offset
			}
			c.delegateScroll(position, adjusted)
			return
		}
	}

	// Scroll unadjusted so the header gets created, then scroll again once
	// its size is known.
	c.setPendingScroll(position, offset)
	c.logger.Debug("pending scroll recorded", "position", position, "offset", offset)
	c.delegateScroll(position, offset)
}

func (c *controller) delegateScroll(position, offset int) {
	c.engine.ScrollToPositionWithOffset(position, offset)
	c.host.RequestLayout()
}

// schedulePendingScroll registers the one-shot correction, replacing any
// earlier registration.
func (c *controller) schedulePendingScroll() {
	if c.pending.cancel != nil {
		c.pending.cancel()
	}
	c.pending.cancel = c.host.AfterLayout(func() {
		c.pending.cancel = nil
		if c.pending.position == NoPosition {
			return
		}
		position, offset := c.pending.position, c.pending.offset
		c.logger.Debug("pending scroll reissued", "position", position, "offset", offset)
		c.scrollToPositionWithOffset(position, offset, true)
		c.setPendingScroll(NoPosition, InvalidOffset)
	})
}

// postLayout is a set of one-shot callbacks run after a layout pass.
type postLayout struct {
	next int
	fns  map[int]func()
}

func (p *postLayout) add(fn func()) (cancel func()) {
	if p.fns == nil {
		p.fns = make(map[int]func())
	}
	id := p.next
	p.next++
	p.fns[id] = fn
	return func() {
		delete(p.fns, id)
	}
}

func (p *postLayout) len() int {
	return len(p.fns)
}

// fire runs and clears the registered callbacks in registration order.
// Callbacks registered while firing run after the next pass.
func (p *postLayout) fire() {
	if len(p.fns) == 0 {
		return
	}
	fns := p.fns
	p.fns = nil
	ids := make([]int, 0, len(fns))
	for id := range fns {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		fns[id]()
	}
}
