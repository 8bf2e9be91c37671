package stickyheaders

import "github.com/gdamore/tcell/v2"

// BorderSet holds the runes of a frame.
type BorderSet struct {
	Horizontal, Vertical                       rune
	TopLeft, TopRight, BottomLeft, BottomRight rune
}

var (
	BorderSetPlain = BorderSet{
		Horizontal: '─', Vertical: '│',
		TopLeft: '┌', TopRight: '┐', BottomLeft: '└', BottomRight: '┘',
	}
	BorderSetRound = BorderSet{
		Horizontal: '─', Vertical: '│',
		TopLeft: '╭', TopRight: '╮', BottomLeft: '╰', BottomRight: '╯',
	}
	BorderSetDouble = BorderSet{
		Horizontal: '═', Vertical: '║',
		TopLeft: '╔', TopRight: '╗', BottomLeft: '╚', BottomRight: '╝',
	}
)

// Box is a rectangle with a background, an optional frame and an optional
// title in its top row. The list and its items embed it.
type Box struct {
	x, y, width, height int

	backgroundColor tcell.Color

	border      bool
	borderSet   BorderSet
	borderStyle tcell.Style

	title          string
	titleStyle     tcell.Style
	titleAlignment Alignment

	hasFocus bool
}

func NewBox() *Box {
	return &Box{
		width:           15,
		height:          10,
		backgroundColor: Styles.PrimitiveBackgroundColor,
		borderSet:       BorderSetPlain,
		borderStyle:     tcell.StyleDefault.Foreground(Styles.BorderColor).Background(Styles.PrimitiveBackgroundColor),
		titleStyle:      tcell.StyleDefault.Foreground(Styles.TitleColor),
		titleAlignment:  AlignmentCenter,
	}
}

func (b *Box) GetRect() (int, int, int, int) {
	return b.x, b.y, b.width, b.height
}

func (b *Box) SetRect(x, y, width, height int) {
	b.x, b.y, b.width, b.height = x, y, width, height
}

// GetInnerRect returns the rectangle inside the frame. A title without a
// frame takes the top row. Width and height never go below 0.
func (b *Box) GetInnerRect() (int, int, int, int) {
	x, y, width, height := b.GetRect()
	switch {
	case b.border:
		x, y, width, height = x+1, y+1, width-2, height-2
	case b.title != "":
		y, height = y+1, height-1
	}
	return x, y, max(width, 0), max(height, 0)
}

// InRect reports whether the cell at x, y lies within the box.
func (b *Box) InRect(x, y int) bool {
	return x >= b.x && x < b.x+b.width && y >= b.y && y < b.y+b.height
}

func (b *Box) SetBackgroundColor(color tcell.Color) *Box {
	b.backgroundColor = color
	b.borderStyle = b.borderStyle.Background(color)
	return b
}

func (b *Box) GetBackgroundColor() tcell.Color {
	return b.backgroundColor
}

// SetBorder turns the frame on or off.
func (b *Box) SetBorder(border bool) *Box {
	b.border = border
	return b
}

func (b *Box) SetBorderSet(borderSet BorderSet) *Box {
	b.borderSet = borderSet
	return b
}

// SetTitle sets the text printed in the top row. An empty title removes it.
func (b *Box) SetTitle(title string) *Box {
	b.title = title
	return b
}

func (b *Box) SetTitleAlignment(alignment Alignment) *Box {
	b.titleAlignment = alignment
	return b
}

func (b *Box) InputHandler(event *tcell.EventKey) Command {
	return nil
}

func (b *Box) PasteHandler(text string) Command {
	return nil
}

// MouseHandler focuses the box when it is pressed.
func (b *Box) MouseHandler(action MouseAction, event *tcell.EventMouse) Command {
	if action == MouseLeftDown && b.InRect(event.Position()) {
		return SetFocusCommand{Target: b}
	}
	return nil
}

func (b *Box) Draw(screen tcell.Screen) {
	b.DrawForSubclass(screen, b)
}

// DrawForSubclass draws the background, frame and title for p, the
// primitive embedding the box. The frame is bold while p has focus.
func (b *Box) DrawForSubclass(screen tcell.Screen, p Primitive) {
	if b.width <= 0 || b.height <= 0 {
		return
	}

	background := tcell.StyleDefault.Background(b.backgroundColor)
	for y := b.y; y < b.y+b.height; y++ {
		for x := b.x; x < b.x+b.width; x++ {
			screen.SetContent(x, y, ' ', nil, background)
		}
	}

	if b.border && b.width >= 2 && b.height >= 2 {
		style := b.borderStyle.Bold(p.HasFocus())
		left, right := b.x, b.x+b.width-1
		top, bottom := b.y, b.y+b.height-1
		for x := left + 1; x < right; x++ {
			screen.SetContent(x, top, b.borderSet.Horizontal, nil, style)
			screen.SetContent(x, bottom, b.borderSet.Horizontal, nil, style)
		}
		for y := top + 1; y < bottom; y++ {
			screen.SetContent(left, y, b.borderSet.Vertical, nil, style)
			screen.SetContent(right, y, b.borderSet.Vertical, nil, style)
		}
		screen.SetContent(left, top, b.borderSet.TopLeft, nil, style)
		screen.SetContent(right, top, b.borderSet.TopRight, nil, style)
		screen.SetContent(left, bottom, b.borderSet.BottomLeft, nil, style)
		screen.SetContent(right, bottom, b.borderSet.BottomRight, nil, style)
	}

	if b.title != "" {
		x, width := b.x, b.width
		if b.border {
			x, width = x+1, width-2
		}
		printText(screen, b.title, x, b.y, width, b.titleAlignment, b.titleStyle, true)
	}
}

func (b *Box) Focus(delegate func(p Primitive)) {
	b.hasFocus = true
}

func (b *Box) Blur() {
	b.hasFocus = false
}

func (b *Box) HasFocus() bool {
	return b.hasFocus
}

var _ Primitive = &Box{}
