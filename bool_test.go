package transmute

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytesAreBool(t *testing.T) {
	assert.True(t, BytesAreBool(nil))
	assert.True(t, BytesAreBool([]byte{0x00, 0x01, 0x01, 0x00}))
	assert.False(t, BytesAreBool([]byte{0x00, 0x01, 0x02}))
	assert.False(t, BytesAreBool([]byte{0xFF}))
}

func TestBoolsPermissive(t *testing.T) {
	out, err := BoolsPermissive([]byte{0x00, 0x01, 0x00, 0x01})
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, false, true}, out)

	out, err = BoolsPermissive([]byte{})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestBoolsInvalidValue(t *testing.T) {
	_, err := BoolsPermissive([]byte{0x00, 0x01, 0x02})
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = BoolsPedantic([]byte{0x05})
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestBoolsPedanticEmpty(t *testing.T) {
	_, err := BoolsPedantic([]byte{})
	require.Error(t, err)
	assert.Equal(t, NotEnoughBytes, err.(*GuardError).Reason)
}

func TestBoolsAlias(t *testing.T) {
	b := []byte{0x01, 0x00}
	out, err := BoolsPermissive(b)
	require.NoError(t, err)
	b[1] = 0x01
	assert.Equal(t, []bool{true, true}, out)
}

func TestBoolVec(t *testing.T) {
	out, err := BoolVecPermissive([]byte{0x01, 0x00, 0x00, 0x00, 0x01})
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, false, false, true}, out)

	_, err = BoolVecPedantic([]byte{0x04, 0x00, 0xED})
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = BoolVecPedantic([]byte{})
	require.Error(t, err)
	assert.Equal(t, NotEnoughBytes, err.(*GuardError).Reason)
}
