package stickyheaders

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingObserver records change notifications as strings.
type recordingObserver struct {
	events []string
}

func (o *recordingObserver) OnChanged() {
	o.events = append(o.events, "changed")
}

func (o *recordingObserver) OnItemRangeChanged(start, count int) {
	o.events = append(o.events, fmt.Sprintf("changed %d+%d", start, count))
}

func (o *recordingObserver) OnItemRangeInserted(start, count int) {
	o.events = append(o.events, fmt.Sprintf("inserted %d+%d", start, count))
}

func (o *recordingObserver) OnItemRangeRemoved(start, count int) {
	o.events = append(o.events, fmt.Sprintf("removed %d+%d", start, count))
}

func (o *recordingObserver) OnItemRangeMoved(from, to, count int) {
	o.events = append(o.events, fmt.Sprintf("moved %d->%d+%d", from, to, count))
}

func TestSectionAdapter_Flatten(t *testing.T) {
	a := NewSectionAdapter(
		Section{Title: "Fruit", Rows: []string{"apple", "banana"}},
		Section{Title: "Empty"},
		Section{Title: "Veg", Rows: []string{"leek"}},
	)

	require.Equal(t, 6, a.ItemCount())
	var texts []string
	var headers []int
	for position := range a.ItemCount() {
		texts = append(texts, a.Text(position))
		if a.IsStickyHeader(position) {
			headers = append(headers, position)
			assert.Equal(t, KindHeader, a.ItemKind(position))
		} else {
			assert.Equal(t, KindRow, a.ItemKind(position))
		}
	}
	assert.Equal(t, []string{"Fruit", "apple", "banana", "Empty", "Veg", "leek"}, texts)
	assert.Equal(t, []int{0, 3, 4}, headers)

	assert.Equal(t, 3, a.HeaderPosition(1))
	assert.Equal(t, 4, a.HeaderPosition(2))
	assert.Equal(t, NoPosition, a.HeaderPosition(3))
}

func TestSectionAdapter_SectionsIsACopy(t *testing.T) {
	sections := []Section{{Title: "A"}}
	a := NewSectionAdapter(sections...)
	sections[0].Title = "changed"

	got := a.Sections()
	got[0].Title = "changed too"
	assert.Equal(t, "A", a.Sections()[0].Title)
}

func TestSectionAdapter_Notifications(t *testing.T) {
	a := NewSectionAdapter(
		Section{Title: "A", Rows: []string{"a1", "a2"}},
		Section{Title: "B", Rows: []string{"b1"}},
	)
	o := &recordingObserver{}
	a.RegisterObserver(o)
	a.RegisterObserver(o)

	a.InsertSection(1, Section{Title: "Z", Rows: []string{"z1", "z2", "z3"}})
	assert.Equal(t, "Z", a.Text(3))
	assert.Equal(t, "B", a.Text(7))

	a.InsertSection(99, Section{Title: "Last"})
	assert.Equal(t, "Last", a.Text(a.ItemCount()-1))

	a.RemoveSection(0)
	assert.Equal(t, "Z", a.Text(0))
	a.RemoveSection(10)

	a.SetSections(nil)
	assert.Zero(t, a.ItemCount())

	assert.Equal(t, []string{"inserted 3+4", "inserted 9+1", "removed 0+3", "changed"}, o.events)

	a.UnregisterObserver(o)
	a.SetSections([]Section{{Title: "A"}})
	assert.Len(t, o.events, 4)
}

func TestSectionAdapter_SetRowAndMove(t *testing.T) {
	a := NewSectionAdapter(
		Section{Title: "A", Rows: []string{"a1", "a2"}},
		Section{Title: "B", Rows: []string{"b1"}},
		Section{Title: "C"},
	)
	o := &recordingObserver{}
	a.RegisterObserver(o)

	a.SetRow(0, 1, "second")
	assert.Equal(t, "second", a.Text(2))
	a.SetRow(1, 5, "ignored")

	a.MoveSection(0, 2)
	assert.Equal(t, []string{"B", "b1", "C", "A", "a1", "second"}, texts(a))
	a.MoveSection(1, 1)

	assert.Equal(t, []string{"changed 2+1", "moved 0->3+3"}, o.events)
}

func texts(a *SectionAdapter) []string {
	var texts []string
	for position := range a.ItemCount() {
		texts = append(texts, a.Text(position))
	}
	return texts
}

func TestSectionAdapter_OutOfRange(t *testing.T) {
	a := NewSectionAdapter(Section{Title: "A", Rows: []string{"a1"}})

	for _, position := range []int{-1, 2, 50} {
		assert.False(t, a.IsStickyHeader(position))
		assert.Equal(t, KindRow, a.ItemKind(position))
		assert.Empty(t, a.Text(position))
	}
}

func TestSectionAdapter_Items(t *testing.T) {
	a := NewSectionAdapter(Section{Title: "A", Rows: []string{"a1"}})

	row := a.CreateItem(KindRow).(*TextItem)
	a.BindItem(row, 1)
	assert.Equal(t, "a1", row.Text())
	assert.Equal(t, a.RowStyle, row.Style())

	header := a.CreateItem(KindHeader).(*TextItem)
	a.BindItem(header, 0)
	assert.Equal(t, "A", header.Text())
	assert.Equal(t, a.HeaderStyle, header.Style())

	a.SetupStickyHeader(header)
	assert.Equal(t, a.PinnedStyle, header.Style())
	assert.Equal(t, Styles.PinnedHeaderBackground, header.GetBackgroundColor())
	a.TeardownStickyHeader(header)
	assert.Equal(t, a.HeaderStyle, header.Style())

	assert.Nil(t, a.CreateItem(7))
}
