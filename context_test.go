package algonrrd

import (
	"context"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustWrap(t *testing.T, data any, sizes ...int) *Array {
	t.Helper()

	a, err := Wrap(data, sizes...)
	require.NoError(t, err)

	return a
}

func mustSpec(t *testing.T, s string) KernelSpec {
	t.Helper()

	spec, err := ParseKernelSpec(s)
	require.NoError(t, err)

	return spec
}

// resample1D runs a single-axis resample of data with kernel spec to n
// samples and returns the float64 output.
func resample1D(t *testing.T, c *Context[float64], data []float64, spec string, n int) []float64 {
	t.Helper()

	require.NoError(t, c.SetInput(mustWrap(t, data, len(data))))
	require.NoError(t, c.SetKernel(0, mustSpec(t, spec)))
	require.NoError(t, c.SetSamples(0, n))

	var dst Array
	require.NoError(t, c.Execute(&dst))

	return dst.Data.([]float64)
}

func downsampleConstant[T Float](t *testing.T) {
	t.Helper()

	src := make([]uint8, 10)
	for i := range src {
		src[i] = 255
	}

	c := NewContextT[T](WithWorkers(2))
	require.NoError(t, c.SetInput(mustWrap(t, src, 10)))
	require.NoError(t, c.SetKernel(0, mustSpec(t, "box")))
	require.NoError(t, c.SetSamples(0, 7))

	var dst Array
	require.NoError(t, c.Execute(&dst))

	assert.Equal(t, TypeUint8, dst.Type)
	assert.Equal(t, []uint8{255, 255, 255, 255, 255, 255, 255}, dst.Data)
}

func TestDownsampleConstantUint8(t *testing.T) {
	t.Parallel()

	t.Run("float32", downsampleConstant[float32])
	t.Run("float64", downsampleConstant[float64])
}

func TestTentIdentity(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(7, 11))

	src := make([]float64, 9)
	for i := range src {
		src[i] = rng.NormFloat64() * 100
	}

	got := resample1D(t, NewContext64(), src, "tent", len(src))
	assert.Equal(t, src, got)
}

func TestWrapMatchesTiling(t *testing.T) {
	t.Parallel()

	ramp := []float64{0, 1, 2, 3, 4, 5, 6, 7}
	tiled := make([]float64, 0, 3*len(ramp))

	for range 3 {
		tiled = append(tiled, ramp...)
	}

	for _, tt := range []struct {
		spec string
		n    int
	}{
		{"tent", 16},
		{"gauss:1,3", 5},
		{"cubic:0,0.5", 13},
	} {
		t.Run(tt.spec, func(t *testing.T) {
			t.Parallel()

			wrapped := NewContext64()
			require.NoError(t, wrapped.SetBoundary(BoundaryWrap))
			want := resample1D(t, wrapped, ramp, tt.spec, tt.n)

			src := mustWrap(t, tiled, len(tiled))
			src.Axes[0].Min, src.Axes[0].Max = -8, 16

			c := NewContext64()
			require.NoError(t, c.SetInput(src))
			require.NoError(t, c.SetKernel(0, mustSpec(t, tt.spec)))
			require.NoError(t, c.SetSamples(0, tt.n))
			require.NoError(t, c.SetRange(0, 0, 8))

			var dst Array
			require.NoError(t, c.Execute(&dst))
			assert.InDeltaSlice(t, want, dst.Data, 1e-9)
		})
	}
}

func TestPadBoundary(t *testing.T) {
	t.Parallel()

	c := NewContext64()
	require.NoError(t, c.SetBoundary(BoundaryPad))
	c.SetPadValue(5)

	got := resample1D(t, c, []float64{1, 1, 1, 1}, "tent", 8)
	assert.InDeltaSlice(t, []float64{2, 1, 1, 1, 1, 1, 1, 2}, got, 1e-12)

	// The pad value is read at execution and needs no replanning.
	builds := c.Stats().TableBuilds
	c.SetPadValue(-3)

	var dst Array
	require.NoError(t, c.Execute(&dst))
	assert.InDelta(t, 0.0, dst.Data.([]float64)[0], 1e-12)
	assert.Equal(t, builds, c.Stats().TableBuilds)
}

func TestWeightBoundaryKeepsConstants(t *testing.T) {
	t.Parallel()

	src := []float64{7, 7, 7, 7, 7, 7}

	for _, n := range []int{4, 6, 11} {
		c := NewContext64()
		require.NoError(t, c.SetBoundary(BoundaryWeight))
		c.SetRenormalize(false)

		got := resample1D(t, c, src, "gauss:1,3", n)
		for i, v := range got {
			assert.InDelta(t, 7.0, v, 1e-12, "n=%d sample %d", n, i)
		}
	}

	// Bleed without renormalization loses the tails of the truncated kernel.
	c := NewContext64()
	c.SetRenormalize(false)
	got := resample1D(t, c, src, "gauss:1,1", 6)
	assert.Less(t, got[3], 7.0)
}

func TestWeightBoundaryRejectsZeroIntegral(t *testing.T) {
	t.Parallel()

	src := mustWrap(t, make([]float64, 20), 4, 5)

	c := NewContext64()
	require.NoError(t, c.SetInput(src))
	require.NoError(t, c.SetKernel(0, mustSpec(t, "tent")))
	require.NoError(t, c.SetKernel(1, mustSpec(t, "tent")))
	require.NoError(t, c.Update())
	require.Equal(t, 2, c.PassCount())

	require.NoError(t, c.SetBoundary(BoundaryWeight))
	require.NoError(t, c.SetKernel(0, mustSpec(t, "cendif")))
	require.NoError(t, c.SetKernel(1, mustSpec(t, "cubicd:1,0,0.5")))

	err := c.Update()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBoundaryKernel)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 2)

	assert.Equal(t, StateSourceSet, c.State())
	assert.Equal(t, 2, c.PassCount(), "previous plan is kept")

	var dst Array
	require.ErrorIs(t, c.Execute(&dst), ErrBoundaryKernel)
	assert.Nil(t, dst.Data)
}

func TestPassOrder(t *testing.T) {
	t.Parallel()

	c := NewContext64(WithWorkers(4))
	require.NoError(t, c.SetInput(mustWrap(t, make([]float64, 4*6*8), 4, 6, 8)))

	tent := mustSpec(t, "tent")
	for ax, n := range []int{8, 3, 8} {
		require.NoError(t, c.SetKernel(ax, tent))
		require.NoError(t, c.SetSamples(ax, n))
	}

	require.NoError(t, c.Update())
	assert.Equal(t, []int{1, 2, 0}, c.PassAxes())
	assert.Equal(t, 3, c.PassCount())

	var dst Array
	require.NoError(t, c.Execute(&dst))
	assert.Equal(t, []int{8, 3, 8}, dst.Sizes())
	assert.Equal(t, 8*3*8, dst.Len())
	assert.Equal(t, int64(4*8+4*3+3*8), c.Stats().Scanlines)
}

func TestSeparableConstantVolume(t *testing.T) {
	t.Parallel()

	src := make([]int16, 5*4*3)
	for i := range src {
		src[i] = -1234
	}

	c := NewContext32(WithWorkers(3))
	require.NoError(t, c.SetInput(mustWrap(t, src, 5, 4, 3)))

	for ax, spec := range []string{"cubic:0,0.5", "gauss:0.8,4", "hann:1,3"} {
		require.NoError(t, c.SetKernel(ax, mustSpec(t, spec)))
		require.NoError(t, c.SetSamples(ax, 2*(ax+2)+1))
	}

	var dst Array
	require.NoError(t, c.Execute(&dst))
	assert.Equal(t, []int{5, 7, 9}, dst.Sizes())

	for _, v := range dst.Data.([]int16) {
		require.Equal(t, int16(-1234), v)
	}
}

func TestDerivativeOfRamp(t *testing.T) {
	t.Parallel()

	src := make([]float64, 12)
	for i := range src {
		src[i] = 3*float64(i) + 1
	}

	got := resample1D(t, NewContext64(), src, "cendif", len(src))
	for i := 1; i < len(src)-1; i++ {
		assert.InDelta(t, 3.0, got[i], 1e-12, "sample %d", i)
	}
}

func TestPassThroughConversion(t *testing.T) {
	t.Parallel()

	c := NewContext64()
	require.NoError(t, c.SetInput(mustWrap(t, []float64{1.4, 2.6, -1, 2.5}, 4)))
	require.NoError(t, c.SetTypeOut(TypeInt16))

	var dst Array
	require.NoError(t, c.Execute(&dst))
	assert.Equal(t, 0, c.PassCount())
	assert.Equal(t, TypeInt16, dst.Type)
	assert.Equal(t, []int16{1, 3, -1, 3}, dst.Data)

	require.NoError(t, c.SetTypeOut(TypeFloat32))
	require.NoError(t, c.Execute(&dst))
	assert.Equal(t, []float32{1.4, 2.6, -1, 2.5}, dst.Data)
}

func TestRoundThenClamp(t *testing.T) {
	t.Parallel()

	c := NewContext64()
	require.NoError(t, c.SetInput(mustWrap(t, []float64{-300, 300, 127.5, -0.5, 2.5, -2.5}, 6)))
	require.NoError(t, c.SetTypeOut(TypeInt8))

	var dst Array
	require.NoError(t, c.Execute(&dst))
	assert.Equal(t, []int8{-128, 127, 127, 0, 3, -2}, dst.Data)

	c.SetRound(false)
	require.NoError(t, c.Execute(&dst))
	assert.Equal(t, []int8{-128, 127, 127, 0, 2, -2}, dst.Data)

	require.NoError(t, c.SetInput(mustWrap(t, []float64{1e20, -5, 0.5}, 3)))
	require.NoError(t, c.SetTypeOut(TypeUint64))
	c.SetRound(true)
	require.NoError(t, c.Execute(&dst))
	assert.Equal(t, []uint64{18446744073709549568, 0, 1}, dst.Data)

	require.NoError(t, c.SetInput(mustWrap(t, []float64{-1e19, 1e19, -7.5}, 3)))
	require.NoError(t, c.SetTypeOut(TypeInt64))
	require.NoError(t, c.Execute(&dst))
	assert.Equal(t, []int64{math.MinInt64, math.MaxInt64 - 1023, -7}, dst.Data)
}

func TestStateMachine(t *testing.T) {
	t.Parallel()

	c := NewContext64()
	assert.Equal(t, StateUnconfigured, c.State())
	assert.ErrorIs(t, c.SetKernel(0, mustSpec(t, "tent")), ErrNotConfigured)
	assert.ErrorIs(t, c.Update(), ErrNotConfigured)
	assert.ErrorIs(t, c.Execute(&Array{}), ErrNotConfigured)

	require.NoError(t, c.SetInput(mustWrap(t, make([]float32, 6), 3, 2)))
	assert.Equal(t, StateSourceSet, c.State())

	assert.ErrorIs(t, c.SetKernel(2, mustSpec(t, "tent")), ErrInvalidAxis)
	assert.ErrorIs(t, c.SetSamples(-1, 4), ErrInvalidAxis)
	assert.ErrorIs(t, c.SetSamples(0, 0), ErrZeroSamples)
	assert.ErrorIs(t, c.SetRange(0, 1, 1), ErrDegenerateRange)
	assert.ErrorIs(t, c.SetRange(0, math.NaN(), 1), ErrDegenerateRange)
	assert.ErrorIs(t, c.SetBoundary(BoundaryUnknown), ErrInvalidBoundary)
	assert.ErrorIs(t, c.SetTypeOut(TypeBlock), ErrBlockType)
	assert.ErrorIs(t, c.SetTypeOut(Type(99)), ErrInvalidType)
	assert.ErrorIs(t, c.SetDefaultCenter(CenterUnknown), ErrInvalidCenter)
	assert.ErrorIs(t, c.Execute(nil), ErrNilArray)

	require.NoError(t, c.SetKernel(0, mustSpec(t, "tent")))
	require.NoError(t, c.SetSamples(0, 5))
	require.NoError(t, c.Update())
	assert.Equal(t, StateAxesConfigured, c.State())

	var dst Array
	require.NoError(t, c.Execute(&dst))
	assert.Equal(t, StateExecuted, c.State())

	// Final-pass policy does not invalidate the plan.
	c.SetRound(false)
	c.SetClamp(false)
	c.SetPadValue(1)
	assert.Equal(t, StateExecuted, c.State())

	require.NoError(t, c.SetSamples(0, 6))
	assert.Equal(t, StateSourceSet, c.State())

	require.NoError(t, c.Execute(&dst))
	assert.Equal(t, StateExecuted, c.State())
	assert.Equal(t, []int{6, 2}, dst.Sizes())

	assert.Equal(t, "axes-configured", StateAxesConfigured.String())
	assert.Equal(t, "State(9)", State(9).String())
}

func TestReexecuteReusesTables(t *testing.T) {
	t.Parallel()

	c := NewContext64()
	require.NoError(t, c.SetInput(mustWrap(t, make([]float64, 25), 5, 5)))

	tent := mustSpec(t, "tent")
	for ax := range 2 {
		require.NoError(t, c.SetKernel(ax, tent))
		require.NoError(t, c.SetSamples(ax, 10))
	}

	var dst Array
	require.NoError(t, c.Execute(&dst))
	assert.Equal(t, int64(1), c.Stats().TableBuilds, "identical axes share a table")

	data := dst.Data

	src := make([]float64, 25)
	for i := range src {
		src[i] = 2
	}

	require.NoError(t, c.SetInput(mustWrap(t, src, 5, 5)))
	assert.Equal(t, StateExecuted, c.State())
	require.NoError(t, c.Execute(&dst))

	st := c.Stats()
	assert.Equal(t, int64(1), st.TableBuilds)
	assert.Equal(t, int64(2), st.Executions)
	assert.Equal(t, int64(4), st.Passes)
	assert.Same(t, &data.([]float64)[0], &dst.Data.([]float64)[0], "output storage is reused")

	for _, v := range dst.Data.([]float64) {
		require.InDelta(t, 2.0, v, 1e-12)
	}

	// A different shape replans but keeps the axis requests.
	require.NoError(t, c.SetInput(mustWrap(t, make([]float64, 30), 6, 5)))
	assert.Equal(t, StateSourceSet, c.State())
	require.NoError(t, c.Execute(&dst))
	assert.Equal(t, []int{10, 10}, dst.Sizes())
	assert.Equal(t, int64(3), c.Stats().TableBuilds)
}

func TestOutputAxes(t *testing.T) {
	t.Parallel()

	src := mustWrap(t, make([]uint16, 4*3*2), 4, 3, 2)
	src.Axes[0] = Axis{Size: 4, Min: 0, Max: 3, Center: CenterNode}
	src.Axes[2] = Axis{Size: 2, Min: -1, Max: 1, Center: CenterCell}

	c := NewContext32()
	require.NoError(t, c.SetInput(src))

	tent := mustSpec(t, "tent")
	require.NoError(t, c.SetKernel(0, tent))
	require.NoError(t, c.SetSamples(0, 7))
	require.NoError(t, c.SetKernel(1, tent))
	require.NoError(t, c.SetSamples(1, 6))
	require.NoError(t, c.SetRange(1, 0.5, 2.5))
	require.NoError(t, c.Update())

	want := []Axis{
		{Size: 7, Min: 0, Max: 3, Center: CenterNode},
		{Size: 6, Min: 0.5, Max: 2.5, Center: CenterCell},
		{Size: 2, Min: -1, Max: 1, Center: CenterCell},
	}
	assert.Equal(t, want, c.OutputAxes())
	assert.Equal(t, TypeUint16, c.OutputType())

	var dst Array
	require.NoError(t, c.Execute(&dst))
	assert.Equal(t, want, dst.Axes)

	// Forcing node centering changes how the unset axis 1 is measured.
	require.NoError(t, c.SetOverrideCenter(CenterNode))
	require.NoError(t, c.SetRangeFull(1))
	require.NoError(t, c.Update())
	assert.Equal(t, Axis{Size: 6, Min: 0, Max: 2, Center: CenterNode}, c.OutputAxes()[1])
}

func TestExecuteCancelled(t *testing.T) {
	t.Parallel()

	c := NewContext64(WithWorkers(2))
	require.NoError(t, c.SetInput(mustWrap(t, make([]float64, 64*8), 64, 8)))
	require.NoError(t, c.SetKernel(1, mustSpec(t, "tent")))
	require.NoError(t, c.SetSamples(1, 16))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var dst Array
	require.ErrorIs(t, c.ExecuteContext(ctx, &dst), context.Canceled)
	assert.Nil(t, dst.Data)
	assert.Equal(t, int64(0), c.Stats().Executions)

	require.NoError(t, c.Execute(&dst))
	assert.Equal(t, []int{64, 16}, dst.Sizes())
}

func TestMetricsAndInvalidKernelLog(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)

	logger, hook := test.NewNullLogger()

	c := NewContext64(WithMetrics(m), WithLogger(logger))
	got := resample1D(t, c, []float64{1, 2, 3, 4}, "tmf:2,3,4", 4)
	assert.Equal(t, []float64{0, 0, 0, 0}, got)

	assert.InDelta(t, 1.0, testutil.ToFloat64(m.Executions), 0)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.Passes), 0)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.Scanlines), 0)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.TableBuilds), 0)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.InvalidKernels), 0)
	assert.InDelta(t, 0.0, testutil.ToFloat64(m.TableCacheHits), 0)

	require.Len(t, hook.AllEntries(), 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, 0, entry.Data["axis"])
	assert.Equal(t, "tmf:2,3,4,1", entry.Data["kernel"])
	assert.ErrorIs(t, entry.Data[logrus.ErrorKey].(error), ErrInvalidTMF)

	// A second set of metrics on the same registry shares the collectors.
	m2, err := NewMetrics(reg)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m2.Executions), 0)

	var nilMetrics *Metrics
	nilMetrics.tableBuilt()
}

func TestTableCacheSharing(t *testing.T) {
	t.Parallel()

	tc := NewTableCache(0, 0)
	src := []float64{1, 5, 2, 8, 3}

	a := NewContext64(WithTableCache(tc))
	want := resample1D(t, a, src, "cubic:0,0.5", 9)
	assert.Equal(t, int64(1), a.Stats().TableBuilds)
	assert.Equal(t, 1, tc.Len())

	b := NewContext64(WithTableCache(tc))
	got := resample1D(t, b, src, "cubic:0,0.5", 9)
	assert.Equal(t, want, got)
	assert.Equal(t, int64(0), b.Stats().TableBuilds)
	assert.Equal(t, int64(1), b.Stats().CacheHits)

	f := NewContext32(WithTableCache(tc))
	require.NoError(t, f.SetInput(mustWrap(t, src, len(src))))
	require.NoError(t, f.SetKernel(0, mustSpec(t, "cubic:0,0.5")))
	require.NoError(t, f.SetSamples(0, 9))
	require.NoError(t, f.Update())
	assert.Equal(t, int64(1), f.Stats().TableBuilds, "precisions do not share tables")
	assert.Equal(t, 2, tc.Len())

	tc.Clear()
	assert.Equal(t, 0, tc.Len())

	var nilCache *TableCache
	assert.Equal(t, 0, nilCache.Len())
}

func TestResample(t *testing.T) {
	t.Parallel()

	src := mustWrap(t, []float32{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, 4, 3)

	req := NewRequest(2)
	req.Axes[0] = AxisRequest{Kernel: mustSpec(t, "tent"), Samples: 8}
	req.Center = CenterNode

	var dst Array
	require.NoError(t, Resample[float64](context.Background(), &dst, src, req))
	assert.Equal(t, TypeFloat32, dst.Type)
	assert.Equal(t, []int{8, 3}, dst.Sizes())

	// Node-centred tent upsampling of a ramp stays on the ramp.
	out := dst.Data.([]float32)
	for i := range 8 {
		assert.InDelta(t, float64(i)*3/7, out[i], 1e-6)
	}

	assert.ErrorIs(t, Resample[float32](context.Background(), &dst, src, NewRequest(3)), ErrShapeMismatch)

	req.Axes[1] = AxisRequest{Kernel: mustSpec(t, "tent"), Min: 2, Max: 2}
	req.TypeOut = TypeBlock
	assert.ErrorIs(t, Resample[float32](context.Background(), &dst, src, req), ErrBlockType)
}

func TestNarrowKernelLeavesGaps(t *testing.T) {
	t.Parallel()

	want := []float64{0, 1, 1, 0, 0, 2, 2, 0, 0, 3, 3, 0, 0, 4, 4, 0}

	for _, b := range []Boundary{BoundaryBleed, BoundaryPad, BoundaryWrap, BoundaryMirror} {
		t.Run(b.String(), func(t *testing.T) {
			t.Parallel()

			c := NewContext64()
			require.NoError(t, c.SetBoundary(b))
			c.SetPadValue(5)

			got := resample1D(t, c, []float64{1, 2, 3, 4}, "tent:0.3", 16)
			assert.InDeltaSlice(t, want, got, 1e-12)
		})
	}
}
