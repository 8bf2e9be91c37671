package stickyheaders

// viewport describes the geometry the anchor checks run against.
type viewport struct {
	orientation   Orientation
	reverse       bool
	width, height int
	// Sticky translation offsets.
	translationX, translationY int
}

// anchor is the first valid child still inside the scroll extent.
type anchor struct {
	holder   *Holder
	index    int
	position int
}

// findAnchor walks the engine's children from index 0 and returns the first
// one that is neither removed nor invalid and not yet scrolled past the
// sticky translation line. The pinned header never anchors itself.
func findAnchor(e Engine, vp viewport) (anchor, bool) {
	for i := range e.ChildCount() {
		child := e.ChildAt(i)
		if child == nil || child.Ignored() || !vp.isValidAnchor(child) {
			continue
		}
		return anchor{holder: child, index: i, position: child.Position()}, true
	}
	return anchor{index: -1, position: NoPosition}, false
}

func (vp viewport) isValidAnchor(h *Holder) bool {
	if h.Removed() || h.Invalid() {
		return false
	}
	tx, ty := h.Translation()
	if vp.orientation == Vertical {
		if vp.reverse {
			return h.Top()+ty <= vp.height+vp.translationY
		}
		return h.Bottom()-ty >= vp.translationY
	}
	if vp.reverse {
		return h.Left()+tx <= vp.width+vp.translationX
	}
	return h.Right()-tx >= vp.translationX
}

// isOnBoundary reports whether the near edge of h has crossed the sticky
// translation line, i.e. h is partially scrolled off.
func (vp viewport) isOnBoundary(h *Holder) bool {
	tx, ty := h.Translation()
	if vp.orientation == Vertical {
		if vp.reverse {
			return h.Bottom()-ty > vp.height+vp.translationY
		}
		return h.Top()+ty < vp.translationY
	}
	if vp.reverse {
		return h.Right()-tx > vp.width+vp.translationX
	}
	return h.Left()+tx < vp.translationX
}
