package algonrrd

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeRange(t *testing.T) {
	t.Parallel()

	lo, hi := TypeUint8.Range()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 255.0, hi)

	lo, hi = TypeInt16.Range()
	assert.Equal(t, -32768.0, lo)
	assert.Equal(t, 32767.0, hi)

	_, hi = TypeInt64.Range()
	assert.Less(t, hi, math.Exp2(63))
	assert.Equal(t, int64(math.MaxInt64-1023), int64(hi))

	_, hi = TypeUint64.Range()
	assert.Less(t, hi, math.Exp2(64))

	lo, hi = TypeFloat32.Range()
	assert.True(t, math.IsInf(lo, -1))
	assert.True(t, math.IsInf(hi, 1))
}

func TestTypeNames(t *testing.T) {
	t.Parallel()

	for typ := TypeDefault; typ <= TypeBlock; typ++ {
		got, err := ParseType(typ.String())
		require.NoError(t, err)
		assert.Equal(t, typ, got)
	}

	_, err := ParseType("complex64")
	assert.ErrorIs(t, err, ErrInvalidType)

	assert.Equal(t, 2, TypeUint16.Size())
	assert.Equal(t, 8, TypeFloat64.Size())
	assert.Zero(t, TypeBlock.Size())
	assert.True(t, TypeInt32.IsInteger())
	assert.False(t, TypeFloat32.IsInteger())
	assert.False(t, TypeBlock.Valid())
	assert.False(t, TypeDefault.Valid())
}

func TestParseBoundaryAndCenter(t *testing.T) {
	t.Parallel()

	for _, b := range []Boundary{BoundaryPad, BoundaryBleed, BoundaryWrap, BoundaryWeight, BoundaryMirror} {
		got, err := ParseBoundary(b.String())
		require.NoError(t, err)
		assert.Equal(t, b, got)
	}

	_, err := ParseBoundary("clamp")
	assert.ErrorIs(t, err, ErrInvalidBoundary)

	c, err := ParseCenter("node")
	require.NoError(t, err)
	assert.Equal(t, CenterNode, c)

	_, err = ParseCenter("edge")
	assert.ErrorIs(t, err, ErrInvalidCenter)
}
