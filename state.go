package stickyheaders

import (
	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"
)

// SavedState is the snapshot written by LayoutManager.SaveState.
type SavedState struct {
	PendingPosition int             `cbor:"1,keyasint"`
	PendingOffset   int             `cbor:"2,keyasint"`
	Engine          cbor.RawMessage `cbor:"3,keyasint,omitempty"`
}

// SaveState returns an opaque snapshot of the pending scroll and the
// engine's own state.
func (m *LayoutManager) SaveState() ([]byte, error) {
	engine, err := m.engine.SaveState()
	if err != nil {
		return nil, errors.Wrap(err, "failed to save engine state")
	}
	data, err := marshalState(SavedState{
		PendingPosition: m.sticky.pending.position,
		PendingOffset:   m.sticky.pending.offset,
		Engine:          engine,
	})
	return data, errors.Wrap(err, "failed to encode state")
}

// RestoreState applies a snapshot produced by SaveState. A restored pending
// scroll is repeated the next time the pinned header is bound.
func (m *LayoutManager) RestoreState(data []byte) error {
	var state SavedState
	if err := unmarshalState(data, &state); err != nil {
		return errors.Wrap(err, "failed to decode state")
	}
	m.sticky.setPendingScroll(state.PendingPosition, state.PendingOffset)
	if len(state.Engine) > 0 {
		if err := m.engine.RestoreState(state.Engine); err != nil {
			return errors.Wrap(err, "failed to restore engine state")
		}
	}
	m.host.RequestLayout()
	return nil
}
