package algonrrd

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestBoundaryIndex(t *testing.T) {
	t.Parallel()

	const size = 4

	taps := []int{-5, -4, -3, -2, -1, 0, 3, 4, 5, 6, 7}

	tests := []struct {
		b    Boundary
		want []int
	}{
		{BoundaryPad, []int{4, 4, 4, 4, 4, 0, 3, 4, 4, 4, 4}},
		{BoundaryBleed, []int{0, 0, 0, 0, 0, 0, 3, 3, 3, 3, 3}},
		{BoundaryWrap, []int{3, 0, 1, 2, 3, 0, 3, 0, 1, 2, 3}},
		{BoundaryMirror, []int{1, 2, 3, 2, 1, 0, 3, 2, 1, 0, 1}},
		{BoundaryWeight, []int{0, 0, 0, 0, 0, 0, 3, 3, 3, 3, 3}},
	}

	for _, tt := range tests {
		got := make([]int, len(taps))
		for i, j := range taps {
			got[i] = boundaryIndex(tt.b, j, size)
		}

		assert.Equal(t, tt.want, got, tt.b.String())
	}

	assert.Equal(t, 0, boundaryIndex(BoundaryMirror, -3, 1))
	assert.Equal(t, 0, boundaryIndex(BoundaryWrap, 5, 1))
}

func geometryFor(spec KernelSpec, sizeIn, sizeOut int, cell bool, b Boundary) axisGeometry {
	g := axisGeometry{
		spec:     spec,
		sizeIn:   sizeIn,
		sizeOut:  sizeOut,
		cell:     cell,
		inMax:    float64(sizeIn),
		outMax:   float64(sizeIn),
		boundary: b,
		renorm:   true,
	}

	if !cell {
		g.inMax = float64(sizeIn - 1)
		g.outMax = g.inMax
	}

	return g
}

func TestGeometryRatio(t *testing.T) {
	t.Parallel()

	tent := NewKernelSpec(KernelTent, 1)

	assert.InDelta(t, 2.0, geometryFor(tent, 5, 10, true, BoundaryBleed).ratio(), 1e-15)
	assert.InDelta(t, 0.7, geometryFor(tent, 10, 7, true, BoundaryBleed).ratio(), 1e-15)
	assert.InDelta(t, 2.0, geometryFor(tent, 5, 9, false, BoundaryBleed).ratio(), 1e-15)
	assert.Equal(t, 1.0, geometryFor(tent, 1, 6, false, BoundaryBleed).ratio())

	g := geometryFor(tent, 5, 1, false, BoundaryBleed)
	assert.InDelta(t, 0.25, g.ratio(), 1e-15)
	assert.Equal(t, 2.0, g.position(0))
}

func TestBuildWeightsRowsSumToIntegral(t *testing.T) {
	t.Parallel()

	specs := []KernelSpec{
		NewKernelSpec(KernelBox, 1),
		NewKernelSpec(KernelTent, 1),
		NewKernelSpec(KernelBCCubic, 1, 0, 0.5),
		NewKernelSpec(KernelGaussian, 1, 3),
		NewKernelSpec(KernelHann, 1, 3),
	}

	for _, spec := range specs {
		for _, sizes := range [][2]int{{7, 17}, {17, 7}, {9, 9}} {
			for _, b := range []Boundary{BoundaryBleed, BoundaryWrap, BoundaryMirror, BoundaryWeight} {
				tbl, err := buildWeights[float64](geometryFor(spec, sizes[0], sizes[1], true, b))
				require.NoError(t, err)

				for i := range tbl.sizeOut {
					row := tbl.w[i*tbl.dotLen : (i+1)*tbl.dotLen]
					assert.InDelta(t, 1.0, floats.Sum(row), 1e-12, "%s %v %v row %d", spec, sizes, b, i)

					for _, j := range tbl.idx[i*tbl.dotLen : (i+1)*tbl.dotLen] {
						assert.GreaterOrEqual(t, j, 0)
						assert.Less(t, j, sizes[0], "only pad may address the pad slot")
					}
				}
			}
		}
	}
}

func TestBuildWeightsStretchesWhenDownsampling(t *testing.T) {
	t.Parallel()

	box := NewKernelSpec(KernelBox, 1)

	g := geometryFor(box, 8, 4, true, BoundaryBleed)
	tbl, err := buildWeights[float64](g)
	require.NoError(t, err)
	assert.Equal(t, 1.0, tbl.support)

	// Output sample 1 sits at input index 2.5 and averages samples 2 and 3.
	row := tbl.w[tbl.dotLen : 2*tbl.dotLen]
	idx := tbl.idx[tbl.dotLen : 2*tbl.dotLen]

	got := make(map[int]float64)
	for e, j := range idx {
		got[j] += row[e]
	}

	assert.InDelta(t, 0.5, got[2], 1e-15)
	assert.InDelta(t, 0.5, got[3], 1e-15)

	g.cheap = true
	tbl, err = buildWeights[float64](g)
	require.NoError(t, err)
	assert.Equal(t, 0.5, tbl.support)
}

func TestBuildWeightsPadSlot(t *testing.T) {
	t.Parallel()

	tbl, err := buildWeights[float32](geometryFor(NewKernelSpec(KernelTent, 1), 4, 8, true, BoundaryPad))
	require.NoError(t, err)

	// Output 0 sits at input index -0.25: a quarter from the pad slot.
	var pad, first float32

	for e, j := range tbl.idx[:tbl.dotLen] {
		switch j {
		case 4:
			pad += tbl.w[e]
		case 0:
			first += tbl.w[e]
		}
	}

	assert.InDelta(t, 0.25, pad, 1e-7)
	assert.InDelta(t, 0.75, first, 1e-7)
}

func TestBuildWeightsDegenerate(t *testing.T) {
	t.Parallel()

	// A Hann kernel centred far outside the input leaves only taps that sit
	// on zeros of the sinc.
	g := axisGeometry{
		spec:     NewKernelSpec(KernelHann, 1, 8),
		sizeIn:   3,
		sizeOut:  1,
		cell:     false,
		inMin:    0,
		inMax:    2,
		outMin:   7,
		outMax:   9,
		boundary: BoundaryWeight,
		cheap:    true,
	}

	_, err := buildWeights[float64](g)
	assert.ErrorIs(t, err, ErrDegenerateWeights)
}

func TestRenormalize(t *testing.T) {
	t.Parallel()

	row64 := []float64{1, 2, 1}
	require.True(t, renormalize(row64, 1))
	assert.Equal(t, []float64{0.25, 0.5, 0.25}, row64)

	row32 := []float32{1, 1, 2}
	require.True(t, renormalize(row32, 2))
	assert.Equal(t, []float32{0.5, 0.5, 1}, row32)

	zero := []float64{1, -1}
	assert.False(t, renormalize(zero, 1))
	assert.Equal(t, []float64{1, -1}, zero)
}

func TestGeometryKey(t *testing.T) {
	t.Parallel()

	a := geometryFor(NewKernelSpec(KernelTent, 1), 4, 8, true, BoundaryPad)
	b := a

	assert.Equal(t, a.key("float64"), b.key("float64"))
	assert.NotEqual(t, a.key("float64"), a.key("float32"))

	b.outMax = math.Nextafter(b.outMax, 10)
	assert.NotEqual(t, a.key("float64"), b.key("float64"))

	b = a
	b.spec = NewKernelSpec(KernelBox, 1)
	assert.NotEqual(t, a.key("float64"), b.key("float64"))
}
