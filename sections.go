package stickyheaders

import (
	"slices"

	"github.com/gdamore/tcell/v2"
)

// Item kinds produced by SectionAdapter.
const (
	KindRow = iota
	KindHeader
)

// Section is a titled group of rows.
type Section struct {
	Title string   `yaml:"title"`
	Rows  []string `yaml:"rows"`
}

type sectionEntry struct {
	text   string
	header bool
}

// SectionAdapter shows sections as a flat list of header and row items. It
// is also the list's Callback: section titles stick, and the pinned title is
// drawn with the pinned header colors.
type SectionAdapter struct {
	AdapterBase

	sections []Section
	entries  []sectionEntry

	RowStyle    tcell.Style
	HeaderStyle tcell.Style
	PinnedStyle tcell.Style
}

// NewSectionAdapter returns an adapter over sections.
func NewSectionAdapter(sections ...Section) *SectionAdapter {
	a := &SectionAdapter{
		RowStyle:    tcell.StyleDefault.Foreground(Styles.PrimaryTextColor).Background(Styles.PrimitiveBackgroundColor),
		HeaderStyle: tcell.StyleDefault.Foreground(Styles.HeaderTextColor).Background(Styles.PrimitiveBackgroundColor).Bold(true),
		PinnedStyle: tcell.StyleDefault.Foreground(Styles.PinnedHeaderTextColor).Background(Styles.PinnedHeaderBackground).Bold(true),
	}
	a.sections = slices.Clone(sections)
	a.flatten()
	return a
}

func (a *SectionAdapter) flatten() {
	a.entries = a.entries[:0]
	for _, section := range a.sections {
		a.entries = append(a.entries, sectionEntry{text: section.Title, header: true})
		for _, row := range section.Rows {
			a.entries = append(a.entries, sectionEntry{text: row})
		}
	}
}

// start returns the adapter position of the header of section i.
func (a *SectionAdapter) start(i int) int {
	position := 0
	for _, section := range a.sections[:i] {
		position += 1 + len(section.Rows)
	}
	return position
}

// SetSections replaces all sections.
func (a *SectionAdapter) SetSections(sections []Section) {
	a.sections = slices.Clone(sections)
	a.flatten()
	a.NotifyChanged()
}

// Sections returns a copy of the sections.
func (a *SectionAdapter) Sections() []Section {
	return slices.Clone(a.sections)
}

// InsertSection inserts section before section index i.
func (a *SectionAdapter) InsertSection(i int, section Section) {
	i = min(max(i, 0), len(a.sections))
	start := a.start(i)
	a.sections = slices.Insert(a.sections, i, section)
	a.flatten()
	a.NotifyItemRangeInserted(start, 1+len(section.Rows))
}

// RemoveSection removes section index i.
func (a *SectionAdapter) RemoveSection(i int) {
	if i < 0 || i >= len(a.sections) {
		return
	}
	start := a.start(i)
	count := 1 + len(a.sections[i].Rows)
	a.sections = slices.Delete(a.sections, i, i+1)
	a.flatten()
	a.NotifyItemRangeRemoved(start, count)
}

// SetRow replaces the text of one row.
func (a *SectionAdapter) SetRow(section, row int, text string) {
	if section < 0 || section >= len(a.sections) || row < 0 || row >= len(a.sections[section].Rows) {
		return
	}
	rows := slices.Clone(a.sections[section].Rows)
	rows[row] = text
	a.sections[section].Rows = rows
	position := a.start(section) + 1 + row
	a.entries[position].text = text
	a.NotifyItemRangeChanged(position, 1)
}

// MoveSection moves section index from so that it ends up at index to. The
// notification carries the first position of the block before and after
// the move.
func (a *SectionAdapter) MoveSection(from, to int) {
	if from < 0 || from >= len(a.sections) || to < 0 || to >= len(a.sections) || from == to {
		return
	}
	oldStart := a.start(from)
	section := a.sections[from]
	a.sections = slices.Insert(slices.Delete(a.sections, from, from+1), to, section)
	a.flatten()
	a.NotifyItemRangeMoved(oldStart, a.start(to), 1+len(section.Rows))
}

// HeaderPosition returns the adapter position of the title of section i.
func (a *SectionAdapter) HeaderPosition(i int) int {
	if i < 0 || i >= len(a.sections) {
		return NoPosition
	}
	return a.start(i)
}

// entry returns the entry at position, or false when position is out of
// range.
func (a *SectionAdapter) entry(position int) (sectionEntry, bool) {
	if position < 0 || position >= len(a.entries) {
		return sectionEntry{}, false
	}
	return a.entries[position], true
}

// Text returns the text shown at position, or "" out of range.
func (a *SectionAdapter) Text(position int) string {
	e, _ := a.entry(position)
	return e.text
}

func (a *SectionAdapter) ItemCount() int {
	return len(a.entries)
}

// ItemKind returns KindRow for positions out of range.
func (a *SectionAdapter) ItemKind(position int) int {
	if e, _ := a.entry(position); e.header {
		return KindHeader
	}
	return KindRow
}

func (a *SectionAdapter) CreateItem(kind int) Item {
	switch kind {
	case KindRow:
		return NewTextItem("").SetPadding(2).SetStyle(a.RowStyle)
	case KindHeader:
		return NewTextItem("").SetStyle(a.HeaderStyle)
	default:
		return nil
	}
}

func (a *SectionAdapter) BindItem(item Item, position int) {
	item.(*TextItem).SetText(a.Text(position))
}

func (a *SectionAdapter) IsStickyHeader(position int) bool {
	e, _ := a.entry(position)
	return e.header
}

func (a *SectionAdapter) SetupStickyHeader(item Item) {
	item.(*TextItem).SetStyle(a.PinnedStyle)
}

func (a *SectionAdapter) TeardownStickyHeader(item Item) {
	item.(*TextItem).SetStyle(a.HeaderStyle)
}

var (
	_ Adapter    = &SectionAdapter{}
	_ Callback   = &SectionAdapter{}
	_ Observable = &SectionAdapter{}
)
