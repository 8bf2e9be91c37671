package stickyheaders

import (
	"slices"
	"sort"
)

// HeaderIndex holds the adapter positions classified as headers, in strictly
// increasing order.
type HeaderIndex struct {
	positions []int
}

// Rebuild replaces the index with every position in [0, itemCount) for which
// isHeader returns true. Change notifications carry no reliable hint about
// what moved, so the whole data source is scanned every time.
func (x *HeaderIndex) Rebuild(itemCount int, isHeader func(position int) bool) {
	x.positions = x.positions[:0]
	if isHeader == nil {
		return
	}
	for position := range itemCount {
		if isHeader(position) {
			x.positions = append(x.positions, position)
		}
	}
}

// Len returns the number of headers.
func (x *HeaderIndex) Len() int {
	return len(x.positions)
}

// At returns the header position stored at index i.
func (x *HeaderIndex) At(i int) int {
	return x.positions[i]
}

// Positions returns a copy of the header positions.
func (x *HeaderIndex) Positions() []int {
	return slices.Clone(x.positions)
}

// Contains reports whether position is a header.
func (x *HeaderIndex) Contains(position int) bool {
	_, ok := x.FindExact(position)
	return ok
}

// FindExact returns the index of position in the header list.
func (x *HeaderIndex) FindExact(position int) (int, bool) {
	i, ok := slices.BinarySearch(x.positions, position)
	if !ok {
		return -1, false
	}
	return i, true
}

// FindAtOrBefore returns the index of the greatest header position that is
// less than or equal to position.
func (x *HeaderIndex) FindAtOrBefore(position int) (int, bool) {
	// First index whose value is past position; the one before it is the
	// largest qualifying index.
	i := sort.Search(len(x.positions), func(i int) bool {
		return x.positions[i] > position
	})
	if i == 0 {
		return -1, false
	}
	return i - 1, true
}
