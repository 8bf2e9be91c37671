package stickyheaders

import "github.com/gdamore/tcell/v2"

// eighths is the thumb resolution per cell.
const eighths = 8

// Partial block glyphs, indexed by the number of eighths filled.
var (
	lowerBlocks = [eighths]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	upperBlocks = [eighths]rune{'▔', '🮂', '🮃', '▀', '🮄', '🮅', '🮆', '█'}
)

// ScrollBar draws, in a single column, where a list's window of items lies
// within all of its items.
type ScrollBar struct {
	*Box

	total, visible, first int

	autoHide   bool
	track      rune
	trackStyle tcell.Style
	thumbStyle tcell.Style
}

// NewScrollBar returns a scroll bar that hides while everything fits.
func NewScrollBar() *ScrollBar {
	return &ScrollBar{
		Box:        NewBox(),
		autoHide:   true,
		track:      '│',
		trackStyle: tcell.StyleDefault.Foreground(Styles.BorderColor).Background(Styles.PrimitiveBackgroundColor).Dim(true),
		thumbStyle: tcell.StyleDefault.Foreground(Styles.BorderColor).Background(Styles.PrimitiveBackgroundColor),
	}
}

// SetWindow sets the number of items, how many of them are in the window
// and the position of the first one.
func (s *ScrollBar) SetWindow(total, visible, first int) *ScrollBar {
	s.total = max(total, 0)
	s.visible = max(visible, 0)
	s.first = max(first, 0)
	return s
}

// SetAutoHide hides the bar when the window shows every item.
func (s *ScrollBar) SetAutoHide(autoHide bool) *ScrollBar {
	s.autoHide = autoHide
	return s
}

// SetTrack sets the glyph drawn where the thumb is not.
func (s *ScrollBar) SetTrack(track rune) *ScrollBar {
	s.track = track
	return s
}

// SetStyles sets the track and thumb styles.
func (s *ScrollBar) SetStyles(track, thumb tcell.Style) *ScrollBar {
	s.trackStyle = track
	s.thumbStyle = thumb
	return s
}

func (s *ScrollBar) hidden() bool {
	return s.total == 0 || (s.autoHide && s.visible >= s.total)
}

// thumb returns where the thumb starts and how long it is, in eighths of a
// cell, on a track of the given number of cells. The thumb is never shorter
// than one cell.
func (s *ScrollBar) thumb(cells int) (start, length int) {
	track := cells * eighths
	if track <= 0 {
		return 0, 0
	}
	total := max(s.total, 1)
	visible := min(max(s.visible, 1), total)
	rest := total - visible
	if rest == 0 {
		return 0, track
	}
	length = min(max(track*visible/total, eighths), track)
	first := min(s.first, rest)
	return (track - length) * first / rest, length
}

// glyph returns what to draw in cell for a thumb at start with length.
func (s *ScrollBar) glyph(cell, start, length int) (rune, tcell.Style) {
	top := max(start, cell*eighths)
	bottom := min(start+length, (cell+1)*eighths)
	fill := bottom - top
	switch {
	case fill <= 0:
		return s.track, s.trackStyle
	case fill == eighths:
		return lowerBlocks[eighths-1], s.thumbStyle
	case top == cell*eighths:
		return upperBlocks[fill-1], s.thumbStyle
	default:
		return lowerBlocks[fill-1], s.thumbStyle
	}
}

// Draw draws the scroll bar.
func (s *ScrollBar) Draw(screen tcell.Screen) {
	s.DrawForSubclass(screen, s)

	x, y, width, height := s.GetInnerRect()
	if width <= 0 || height <= 0 || s.hidden() {
		return
	}
	start, length := s.thumb(height)
	for cell := range height {
		glyph, style := s.glyph(cell, start, length)
		screen.SetContent(x, y+cell, glyph, nil, style)
	}
}

var _ Primitive = &ScrollBar{}
