package stickyheaders

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

type Alignment int

const (
	AlignmentLeft Alignment = iota
	AlignmentCenter
	AlignmentRight
)

// StringWidth returns the number of cells needed to print text.
func StringWidth(text string) int {
	return uniseg.StringWidth(text)
}

// printText prints text on row y within the width cells starting at x and
// returns the number of cells printed. Text that does not fit is cut at the
// end. With keepBackground the cells keep their background color.
func printText(screen tcell.Screen, text string, x, y, width int, alignment Alignment, style tcell.Style, keepBackground bool) int {
	screenWidth, screenHeight := screen.Size()
	if width <= 0 || text == "" || y < 0 || y >= screenHeight {
		return 0
	}

	end := x + width
	if pad := width - uniseg.StringWidth(text); pad > 0 {
		switch alignment {
		case AlignmentCenter:
			x += pad / 2
		case AlignmentRight:
			x += pad
		}
	}

	printed := 0
	state := -1
	for text != "" && x < screenWidth {
		var (
			cluster    string
			boundaries int
		)
		cluster, text, boundaries, state = uniseg.StepString(text, state)
		w := boundaries >> uniseg.ShiftWidth
		if x+w > end {
			break
		}
		if w == 0 {
			continue
		}

		cellStyle := style
		if keepBackground {
			_, _, current, _ := screen.GetContent(x, y)
			_, background, _ := current.Decompose()
			cellStyle = style.Background(background)
		}
		// Every cell of a wide cluster is written, the first one last.
		for i := w - 1; i > 0; i-- {
			screen.SetContent(x+i, y, ' ', nil, cellStyle)
		}
		runes := []rune(cluster)
		screen.SetContent(x, y, runes[0], runes[1:], cellStyle)

		x += w
		printed += w
	}
	return printed
}

// WordWrap splits text into lines of at most width cells. Lines break at
// line break opportunities when there is one and inside words otherwise.
// Spaces at a break are dropped.
func WordWrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}

	var (
		lines      []string
		lineStart  int
		lineWidth  int
		breakAt    = -1
		widthAtBrk int
	)
	emit := func(end int) {
		lines = append(lines, strings.TrimRight(text[lineStart:end], " \r\n"))
	}

	pos, state := 0, -1
	rest := text
	for rest != "" {
		var (
			cluster    string
			boundaries int
		)
		cluster, rest, boundaries, state = uniseg.StepString(rest, state)
		w := boundaries >> uniseg.ShiftWidth

		if lineWidth+w > width && lineWidth > 0 {
			switch {
			case cluster == " ":
				emit(pos)
				pos += len(cluster)
				lineStart, lineWidth, breakAt = pos, 0, -1
				continue
			case breakAt > lineStart:
				emit(breakAt)
				lineStart, lineWidth = breakAt, lineWidth-widthAtBrk
			default:
				emit(pos)
				lineStart, lineWidth = pos, 0
			}
			breakAt = -1
		}

		pos += len(cluster)
		lineWidth += w
		switch boundaries & uniseg.MaskLine {
		case uniseg.LineMustBreak:
			// The end of the text is a mandatory break too.
			if rest != "" {
				emit(pos)
				lineStart, lineWidth, breakAt = pos, 0, -1
			}
		case uniseg.LineCanBreak:
			breakAt, widthAtBrk = pos, lineWidth
		}
	}
	return append(lines, text[lineStart:])
}
