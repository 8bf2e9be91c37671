package stickyheaders

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// TextItem is a list item showing word-wrapped text.
type TextItem struct {
	*Box

	text     string
	style    tcell.Style
	selected bool
	// Padding in cells on both sides of the text along the cross axis.
	padding int
}

// NewTextItem returns a text item with the primary text color.
func NewTextItem(text string) *TextItem {
	t := &TextItem{
		Box:   NewBox(),
		text:  text,
		style: tcell.StyleDefault.Foreground(Styles.PrimaryTextColor).Background(Styles.PrimitiveBackgroundColor),
	}
	return t
}

// SetText sets the displayed text.
func (t *TextItem) SetText(text string) *TextItem {
	t.text = text
	return t
}

// Text returns the displayed text.
func (t *TextItem) Text() string {
	return t.text
}

// SetStyle sets the text style. Its background fills the whole item.
func (t *TextItem) SetStyle(style tcell.Style) *TextItem {
	t.style = style
	_, background, _ := style.Decompose()
	t.SetBackgroundColor(background)
	return t
}

// Style returns the text style.
func (t *TextItem) Style() tcell.Style {
	return t.style
}

// SetPadding sets the blank cells kept on both sides of the text.
func (t *TextItem) SetPadding(padding int) *TextItem {
	t.padding = max(padding, 0)
	return t
}

// SetSelected implements Selectable.
func (t *TextItem) SetSelected(selected bool) {
	t.selected = selected
}

// Selected reports whether the item is under the cursor.
func (t *TextItem) Selected() bool {
	return t.selected
}

func (t *TextItem) lines(width int) []string {
	var lines []string
	for _, paragraph := range strings.Split(t.text, "\n") {
		wrapped := WordWrap(paragraph, width)
		if len(wrapped) == 0 {
			wrapped = []string{""}
		}
		lines = append(lines, wrapped...)
	}
	return lines
}

// Measure implements Item. Height follows the wrapped line count, width the
// widest line.
func (t *TextItem) Measure(width, height int) (int, int) {
	wrapWidth := max(width-2*t.padding, 1)
	lines := t.lines(wrapWidth)
	widest := 0
	for _, line := range strings.Split(t.text, "\n") {
		widest = max(widest, StringWidth(line))
	}
	return widest + 2*t.padding, len(lines)
}

// Draw draws the item's text.
func (t *TextItem) Draw(screen tcell.Screen) {
	style := t.style
	background := t.backgroundColor
	if t.selected {
		style = style.Foreground(Styles.SelectedTextColor).Background(Styles.SelectedBackgroundColor)
		background = Styles.SelectedBackgroundColor
	}
	previous := t.backgroundColor
	t.backgroundColor = background
	t.DrawForSubclass(screen, t)
	t.backgroundColor = previous

	x, y, width, height := t.GetInnerRect()
	x += t.padding
	width -= 2 * t.padding
	if width <= 0 {
		return
	}
	for row, line := range t.lines(width) {
		if row >= height {
			break
		}
		printText(screen, line, x, y+row, width, AlignmentLeft, style, false)
	}
}

var _ Item = &TextItem{}
