package stickyheaders

import "github.com/pkg/errors"

// maxRecycledPerKind bounds the pool of spare holders kept for each kind.
const maxRecycledPerKind = 32

// recycler creates holders from the adapter and keeps released ones for
// reuse, keyed by item kind.
type recycler struct {
	adapter Adapter
	pool    map[int][]*Holder
}

func (r *recycler) setAdapter(adapter Adapter) {
	r.adapter = adapter
	r.pool = nil
}

func (r *recycler) itemCount() int {
	if r.adapter == nil {
		return 0
	}
	return r.adapter.ItemCount()
}

// obtain returns a holder bound to position.
func (r *recycler) obtain(position int) *Holder {
	kind := r.adapter.ItemKind(position)

	var h *Holder
	if spare := r.pool[kind]; len(spare) > 0 {
		h = spare[len(spare)-1]
		r.pool[kind] = spare[:len(spare)-1]
	} else {
		item := r.adapter.CreateItem(kind)
		if item == nil {
			// An adapter that cannot materialize a kind it reported is broken.
			panic(errors.Errorf("stickyheaders: adapter created no item for kind %d at position %d", kind, position))
		}
		h = &Holder{Item: item, kind: kind, position: NoPosition}
	}

	r.bind(h, position)
	return h
}

func (r *recycler) bind(h *Holder, position int) {
	r.adapter.BindItem(h.Item, position)
	h.position = position
	h.removed = false
	h.invalid = false
}

func (r *recycler) recycle(h *Holder) {
	if h == nil || h.ignored {
		return
	}
	h.position = NoPosition
	h.rect = Rect{}
	h.translationX, h.translationY = 0, 0
	h.attached = false
	if s, ok := h.Item.(Selectable); ok {
		s.SetSelected(false)
	}

	if r.pool == nil {
		r.pool = make(map[int][]*Holder)
	}
	if len(r.pool[h.kind]) >= maxRecycledPerKind {
		return
	}
	r.pool[h.kind] = append(r.pool[h.kind], h)
}
