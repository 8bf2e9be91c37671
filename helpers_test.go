package stickyheaders

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"
)

// testHost collects layout requests and post-layout callbacks.
type testHost struct {
	postLayout
	requests int
}

func (h *testHost) RequestLayout() {
	h.requests++
}

func (h *testHost) AfterLayout(fn func()) func() {
	return h.add(fn)
}

// settle runs a layout pass followed by the post-layout callbacks, the way
// StickyList does.
func (h *testHost) settle(m *LayoutManager) {
	m.LayoutChildren()
	h.fire()
}

// fakeItem is an item of a fixed size along both axes.
type fakeItem struct {
	*Box
	size     int
	text     string
	selected bool
}

func (f *fakeItem) Measure(width, height int) (int, int) {
	return f.size, f.size
}

func (f *fakeItem) SetSelected(selected bool) {
	f.selected = selected
}

// fakeAdapter has count items. Headers are two cells, rows one, unless
// sizes says otherwise.
type fakeAdapter struct {
	AdapterBase

	count   int
	headers map[int]bool
	sizes   map[int]int
	// kindOf overrides the kind of a position when set.
	kindOf func(position int) int

	created   int
	setups    int
	teardowns int
}

// newFakeAdapter returns count items with a header every interval positions,
// starting at 0.
func newFakeAdapter(count, interval int) *fakeAdapter {
	headers := make(map[int]bool)
	for position := 0; position < count; position += interval {
		headers[position] = true
	}
	return newFakeAdapterWithHeaders(count, headers)
}

func newFakeAdapterWithHeaders(count int, headers map[int]bool) *fakeAdapter {
	return &fakeAdapter{count: count, headers: headers, sizes: map[int]int{}}
}

func (a *fakeAdapter) ItemCount() int {
	return a.count
}

func (a *fakeAdapter) ItemKind(position int) int {
	if a.kindOf != nil {
		return a.kindOf(position)
	}
	if a.headers[position] {
		return KindHeader
	}
	return KindRow
}

func (a *fakeAdapter) CreateItem(kind int) Item {
	a.created++
	return &fakeItem{Box: NewBox()}
}

func (a *fakeAdapter) BindItem(item Item, position int) {
	f := item.(*fakeItem)
	f.text = fmt.Sprintf("item %d", position)
	f.size = a.sizeOf(position)
}

func (a *fakeAdapter) sizeOf(position int) int {
	if size, ok := a.sizes[position]; ok {
		return size
	}
	if a.headers[position] {
		return 2
	}
	return 1
}

func (a *fakeAdapter) IsStickyHeader(position int) bool {
	return a.headers[position]
}

func (a *fakeAdapter) SetupStickyHeader(item Item) {
	a.setups++
}

func (a *fakeAdapter) TeardownStickyHeader(item Item) {
	a.teardowns++
}

// countingEngine records the scroll requests reaching the engine.
type countingEngine struct {
	*LinearLayout
	scrolls []scrollTarget
}

func (e *countingEngine) ScrollToPositionWithOffset(position, offset int) {
	e.scrolls = append(e.scrolls, scrollTarget{position: position, offset: offset})
	e.LinearLayout.ScrollToPositionWithOffset(position, offset)
}

type testList struct {
	manager *LayoutManager
	engine  *countingEngine
	host    *testHost
	adapter *fakeAdapter
}

// newTestList lays out adapter in a vertical viewport of the given size.
func newTestList(adapter *fakeAdapter, width, height int) *testList {
	return newTestListWith(adapter, NewLinearLayout(Vertical, false), width, height)
}

func newTestListWith(adapter *fakeAdapter, layout *LinearLayout, width, height int) *testList {
	layout.SetSize(width, height)
	engine := &countingEngine{LinearLayout: layout}
	host := &testHost{}
	m := NewLayoutManager(engine, host)
	m.SetAdapter(adapter)
	m.SetCallback(adapter)
	host.settle(m)
	return &testList{manager: m, engine: engine, host: host, adapter: adapter}
}

// jump scrolls position to offset cells past the leading edge, ignoring the
// pinned header, and lays out.
func (l *testList) jump(position, offset int) {
	l.manager.ScrollToPositionWithOffsetUnadjusted(position, offset)
	l.host.settle(l.manager)
}

func (l *testList) child(position int) *Holder {
	return l.manager.childForPosition(position)
}

// laidOut returns the positions of the children the engine laid out.
func (l *testList) laidOut() []int {
	var positions []int
	for i := range l.engine.ChildCount() {
		if child := l.engine.ChildAt(i); !child.Ignored() {
			positions = append(positions, child.Position())
		}
	}
	return positions
}

func newTestScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(width, height)
	t.Cleanup(screen.Fini)
	return screen
}

// rowText returns the text of a screen row with trailing blanks removed.
func rowText(screen tcell.Screen, y int) string {
	width, _ := screen.Size()
	var b strings.Builder
	for x := range width {
		primary, combining, _, _ := screen.GetContent(x, y)
		if primary == 0 {
			primary = ' '
		}
		b.WriteRune(primary)
		for _, r := range combining {
			b.WriteRune(r)
		}
	}
	return strings.TrimRight(b.String(), " ")
}

func cellBackground(screen tcell.Screen, x, y int) tcell.Color {
	_, _, style, _ := screen.GetContent(x, y)
	_, background, _ := style.Decompose()
	return background
}
