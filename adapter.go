package stickyheaders

import "slices"

// Adapter provides the items shown by a list.
type Adapter interface {
	ItemCount() int
	// ItemKind returns the kind of the item at position. Holders are only
	// reused between positions of the same kind.
	ItemKind(position int) int
	// CreateItem returns a new, unbound item of the given kind.
	CreateItem(kind int) Item
	// BindItem fills item with the content at position.
	BindItem(item Item, position int)
}

// Callback decides which positions are sticky headers and customizes items
// while they are pinned.
type Callback interface {
	IsStickyHeader(position int) bool
	// SetupStickyHeader is called once when item becomes the pinned header.
	SetupStickyHeader(item Item)
	// TeardownStickyHeader reverts SetupStickyHeader before item is released.
	TeardownStickyHeader(item Item)
}

// DataObserver receives adapter change notifications.
type DataObserver interface {
	OnChanged()
	OnItemRangeChanged(start, count int)
	OnItemRangeInserted(start, count int)
	OnItemRangeRemoved(start, count int)
	OnItemRangeMoved(from, to, count int)
}

// Observable is implemented by adapters that emit change notifications.
type Observable interface {
	RegisterObserver(o DataObserver)
	UnregisterObserver(o DataObserver)
}

// AdapterBase implements Observable and can be embedded by adapters.
type AdapterBase struct {
	observers []DataObserver
}

// RegisterObserver adds o unless it is already registered.
func (b *AdapterBase) RegisterObserver(o DataObserver) {
	if o == nil || slices.Contains(b.observers, o) {
		return
	}
	b.observers = append(b.observers, o)
}

// UnregisterObserver removes o.
func (b *AdapterBase) UnregisterObserver(o DataObserver) {
	b.observers = slices.DeleteFunc(b.observers, func(x DataObserver) bool {
		return x == o
	})
}

func (b *AdapterBase) NotifyChanged() {
	for _, o := range b.observers {
		o.OnChanged()
	}
}

func (b *AdapterBase) NotifyItemRangeChanged(start, count int) {
	for _, o := range b.observers {
		o.OnItemRangeChanged(start, count)
	}
}

func (b *AdapterBase) NotifyItemRangeInserted(start, count int) {
	for _, o := range b.observers {
		o.OnItemRangeInserted(start, count)
	}
}

func (b *AdapterBase) NotifyItemRangeRemoved(start, count int) {
	for _, o := range b.observers {
		o.OnItemRangeRemoved(start, count)
	}
}

func (b *AdapterBase) NotifyItemRangeMoved(from, to, count int) {
	for _, o := range b.observers {
		o.OnItemRangeMoved(from, to, count)
	}
}

var _ Observable = &AdapterBase{}
