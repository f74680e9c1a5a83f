package transmute

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// alignedBytes returns n bytes backed by a []uint64 allocation, so the
// base address is aligned for every primitive type up to 8 bytes.
// Offset views are carved from it to get known misalignments.
func alignedBytes(n int) []byte {
	words := make([]uint64, (n+7)/8)
	return ToBytesMany(words)[:n]
}

func TestCheckAlignmentAligned(t *testing.T) {
	b := alignedBytes(16)
	assert.NoError(t, CheckAlignment[uint8](b))
	assert.NoError(t, CheckAlignment[uint16](b))
	assert.NoError(t, CheckAlignment[uint32](b))
	assert.NoError(t, CheckAlignment[uint64](b))
}

func TestCheckAlignmentOffsets(t *testing.T) {
	b := alignedBytes(16)

	// u16: odd offsets are off by exactly one byte.
	for _, off := range []int{1, 3, 5} {
		err := CheckAlignment[uint16](b[off:])
		var ue *UnalignedError[uint16]
		require.ErrorAs(t, err, &ue, "offset %d", off)
		assert.Equal(t, 1, ue.Offset, "offset %d", off)
	}
	assert.NoError(t, CheckAlignment[uint16](b[2:]))

	// u32: discard count is alignment minus the misalignment.
	for off, want := range map[int]int{1: 3, 2: 2, 3: 1, 5: 3} {
		err := CheckAlignment[uint32](b[off:])
		var ue *UnalignedError[uint32]
		require.ErrorAs(t, err, &ue, "offset %d", off)
		assert.Equal(t, want, ue.Offset, "offset %d", off)
	}
	assert.NoError(t, CheckAlignment[uint32](b[4:]))

	// u64: every offset in (0, 8) is off by 8-i.
	for i := 1; i < 8; i++ {
		err := CheckAlignment[uint64](b[i:])
		var ue *UnalignedError[uint64]
		require.ErrorAs(t, err, &ue, "offset %d", i)
		assert.Equal(t, 8-i, ue.Offset, "offset %d", i)
	}
}

// Applying the returned offset must always land on a conforming address.
func TestCheckAlignmentOffsetConsistent(t *testing.T) {
	b := alignedBytes(32)
	for off := 1; off < 8; off++ {
		err := CheckAlignment[uint64](b[off:])
		var ue *UnalignedError[uint64]
		require.ErrorAs(t, err, &ue)
		assert.Greater(t, ue.Offset, 0)
		assert.Less(t, ue.Offset, 8)
		assert.NoError(t, CheckAlignment[uint64](b[off+ue.Offset:]))
	}
}

func TestCheckAlignmentEmpty(t *testing.T) {
	assert.NoError(t, CheckAlignment[uint64](nil))
	assert.NoError(t, CheckAlignment[uint64]([]byte{}))
}

// The discard count comes from the target's alignment, not its size:
// a 12-byte type aligned to 4 is reachable from a misaligned start with
// at most 3 discarded bytes.
func TestCheckAlignmentCompositeAlignment(t *testing.T) {
	type triple struct {
		A, B, C uint32
	}
	b := alignedBytes(32)
	err := CheckAlignment[triple](b[1:])
	var ue *UnalignedError[triple]
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, 3, ue.Offset)
	assert.NoError(t, CheckAlignment[triple](b[4:]))
}

func TestUnalignedErrorCopy(t *testing.T) {
	b := alignedBytes(8)
	copy(b, []byte{0xFF, 0x01, 0xEE, 0x02, 0xDD, 0x03, 0xCC, 0x04})

	err := CheckAlignment[uint16](b[1:])
	var ue *UnalignedError[uint16]
	require.ErrorAs(t, err, &ue)

	got := ue.Copy()
	require.Len(t, got, 3) // 7 bytes, floor to 3 whole elements
	assert.Equal(t, b[1:7], ToBytesMany(got))
	assert.NoError(t, CheckAlignment[uint16](ToBytesMany(got)))
}

func TestUnalignedErrorIsError(t *testing.T) {
	b := alignedBytes(4)
	err := CheckAlignment[uint32](b[2:])
	require.Error(t, err)
	assert.Equal(t, "data is unaligned (off by 2 bytes)", err.Error())
	assert.False(t, errors.Is(err, ErrInvalidValue))
}
