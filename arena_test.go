package natrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArenaAlignment(t *testing.T) {
	a := NewArena()
	for _, n := range []int{1, 3, 15, 16, 17, 31} {
		buf := a.Alloc(n)
		require.Len(t, buf, n)
	}
	assert.Equal(t, 6, a.Stats().AllocCount)
	// Each allocation is padded to the next 16-byte boundary.
	assert.Equal(t, 16+16+16+16+32+32, a.Stats().PayloadBytes)
}

func TestArenaOversizedAllocGetsOwnChunk(t *testing.T) {
	a := NewArenaSized(64)
	_ = a.Alloc(8)
	before := a.Stats().ChunkCount

	buf := a.Alloc(1000)
	assert.Len(t, buf, 1000)
	assert.Equal(t, before+1, a.Stats().ChunkCount)
}

func TestArenaGrowsChunksWhenExhausted(t *testing.T) {
	a := NewArenaSized(32)
	a.Alloc(16)
	a.Alloc(16)
	require.Equal(t, 1, a.Stats().ChunkCount)

	a.Alloc(16)
	assert.Equal(t, 2, a.Stats().ChunkCount)
}

func TestArenaStatsTracksRequestedBytes(t *testing.T) {
	a := NewArena()
	a.Alloc(3)
	a.Alloc(10)
	stats := a.Stats()
	assert.Equal(t, 2, stats.AllocCount)
	assert.Equal(t, 13, stats.RequestBytes)
	assert.GreaterOrEqual(t, stats.PayloadBytes, 13)
}

func TestAllocNodeZeroed(t *testing.T) {
	a := NewArena()
	n := allocNode[IntLit](a)
	assert.Equal(t, Span{}, n.span)
}

func TestArenaRelease(t *testing.T) {
	a := NewArena()
	a.Alloc(8)
	a.Release()
	assert.Nil(t, a.head)
}
