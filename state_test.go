package stickyheaders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_Deterministic(t *testing.T) {
	l := newTestList(newFakeAdapter(1000, 11), 10, 20)
	l.jump(15, 0)

	first, err := l.manager.SaveState()
	require.NoError(t, err)
	second, err := l.manager.SaveState()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestState_PendingScrollRoundTrip(t *testing.T) {
	l := newTestList(newFakeAdapter(1000, 11), 10, 20)
	l.manager.ScrollToPositionWithOffset(40, 0)

	data, err := l.manager.SaveState()
	require.NoError(t, err)

	restored := newTestList(newFakeAdapter(1000, 11), 10, 20)
	require.NoError(t, restored.manager.RestoreState(data))

	position, offset, ok := restored.manager.PendingScroll()
	assert.True(t, ok)
	assert.Equal(t, 40, position)
	assert.Equal(t, 0, offset)
}

func TestState_NoPendingScroll(t *testing.T) {
	l := newTestList(newFakeAdapter(1000, 11), 10, 20)
	l.jump(15, 0)

	data, err := l.manager.SaveState()
	require.NoError(t, err)

	restored := newTestList(newFakeAdapter(1000, 11), 10, 20)
	require.NoError(t, restored.manager.RestoreState(data))
	_, _, ok := restored.manager.PendingScroll()
	assert.False(t, ok)

	restored.host.settle(restored.manager)
	assert.Equal(t, []int{15, 16, 17}, restored.laidOut()[:3])
	assert.Equal(t, 11, restored.manager.StickyHeaderPosition())
	assert.Empty(t, restored.engine.scrolls)
}

// A restored pending scroll is corrected once the header is bound again.
func TestState_RestoredPendingScrollIsReissued(t *testing.T) {
	source := newTestList(newFakeAdapter(1000, 11), 10, 20)
	source.jump(15, 0)
	engine, err := source.engine.SaveState()
	require.NoError(t, err)

	data, err := marshalState(SavedState{PendingPosition: 18, PendingOffset: 0, Engine: engine})
	require.NoError(t, err)

	l := newTestList(newFakeAdapter(1000, 11), 10, 20)
	require.NoError(t, l.manager.RestoreState(data))
	assert.Positive(t, l.host.requests)

	l.host.settle(l.manager)

	assert.Equal(t, []scrollTarget{{18, 2}}, l.engine.scrolls)
	_, _, ok := l.manager.PendingScroll()
	assert.False(t, ok)
}

func TestState_CorruptData(t *testing.T) {
	l := newTestList(newFakeAdapter(100, 11), 10, 20)

	err := l.manager.RestoreState([]byte{0xff, 0x00})
	assert.ErrorContains(t, err, "failed to decode state")

	err = l.engine.RestoreState([]byte{0xa1})
	assert.ErrorContains(t, err, "failed to decode linear layout state")
}
