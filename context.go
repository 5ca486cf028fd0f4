package algonrrd

import (
	"context"
	"fmt"
	"math"
	"reflect"
	"slices"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-nrrd/internal/cpu"
	"github.com/cwbudde/algo-nrrd/internal/kernel"
	nmath "github.com/cwbudde/algo-nrrd/internal/math"
)

// State is the configuration stage of a Context.
type State uint8

const (
	StateUnconfigured State = iota
	StateSourceSet
	StateAxesConfigured
	StateExecuted
)

func (s State) String() string {
	switch s {
	case StateUnconfigured:
		return "unconfigured"
	case StateSourceSet:
		return "source-set"
	case StateAxesConfigured:
		return "axes-configured"
	case StateExecuted:
		return "executed"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Stats counts the work a context has done.
type Stats struct {
	Executions  int64
	Passes      int64
	Scanlines   int64
	TableBuilds int64
	CacheHits   int64
}

// Option configures the ambient services of a Context.
type Option func(*options)

type options struct {
	log     logrus.FieldLogger
	workers int
	cache   *TableCache
	metrics *Metrics
}

// WithLogger sets the logger. The default is logrus.StandardLogger().
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) { o.log = l }
}

// WithWorkers sets the number of scanline workers per pass. Values below
// one select GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithTableCache shares weight tables through tc.
func WithTableCache(tc *TableCache) Option {
	return func(o *options) { o.cache = tc }
}

// WithMetrics reports activity to m.
func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}

type axisRequest struct {
	spec    KernelSpec
	samples int // 0 means the input size
	min     float64
	max     float64
	full    bool
}

// Context resamples arrays of one shape. It is configured with the Set
// methods, planned by Update and run by Execute; weight tables survive
// between executions as long as the input geometry and configuration do not
// change. T is the intermediate precision of every pass.
//
// A Context is not safe for concurrent use.
type Context[T Float] struct {
	opts options

	src  *Array
	axes []axisRequest

	boundary       Boundary
	pad            float64
	renormalize    bool
	round          bool
	clamp          bool
	cheap          bool
	typeOut        Type
	defaultCenter  Center
	overrideCenter Center

	state  State
	dirty  bool
	plans  []*axisPlan[T]
	out    []Axis
	outTyp Type
	tables map[string]*weightTable[T]
	stats  Stats

	bufs     [3][]T
	scratch  [][]T
	counters []cpu.Counter
}

// NewContext32 creates a context computing in single precision.
func NewContext32(opts ...Option) *Context[float32] {
	return NewContextT[float32](opts...)
}

// NewContext64 creates a context computing in double precision.
func NewContext64(opts ...Option) *Context[float64] {
	return NewContextT[float64](opts...)
}

// NewContextT creates a context computing in precision T. The numeric
// policy starts at bleed boundary, pad 0, renormalize, round and clamp on,
// cheap off, cell default centering and the input type for output.
func NewContextT[T Float](opts ...Option) *Context[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if o.log == nil {
		o.log = logrus.StandardLogger()
	}

	if o.workers < 1 {
		o.workers = cpu.DefaultWorkers()
	}

	return &Context[T]{
		opts:          o,
		boundary:      BoundaryBleed,
		renormalize:   true,
		round:         true,
		clamp:         true,
		typeOut:       TypeDefault,
		defaultCenter: CenterCell,
		dirty:         true,
	}
}

// State returns the configuration stage.
func (c *Context[T]) State() State { return c.state }

// Stats returns the work counters.
func (c *Context[T]) Stats() Stats { return c.stats }

// touch records a configuration change.
func (c *Context[T]) touch() {
	c.dirty = true
	if c.state > StateSourceSet {
		c.state = StateSourceSet
	}
}

// SetInput sets the array to resample. If the new array has the same type
// and geometry as the current one, the plan is kept and the context can be
// executed again without rebuilding weight tables. If the number of axes
// changes, all axis requests are reset.
func (c *Context[T]) SetInput(a *Array) error {
	if err := a.Validate(); err != nil {
		return err
	}

	if c.src != nil && c.src.Type == a.Type && slices.Equal(c.src.Axes, a.Axes) {
		c.src = a
		return nil
	}

	if c.src == nil || len(c.src.Axes) != len(a.Axes) {
		c.axes = make([]axisRequest, len(a.Axes))
	}

	c.src = a
	c.tables = nil
	c.state = StateSourceSet
	c.dirty = true

	return nil
}

func (c *Context[T]) axis(ax int) (*axisRequest, error) {
	if c.src == nil {
		return nil, ErrNotConfigured
	}

	if ax < 0 || ax >= len(c.axes) {
		return nil, fmt.Errorf("%w: %d of %d", ErrInvalidAxis, ax, len(c.axes))
	}

	return &c.axes[ax], nil
}

// SetKernel sets the kernel for axis ax. The zero KernelSpec leaves the
// axis unresampled.
func (c *Context[T]) SetKernel(ax int, spec KernelSpec) error {
	r, err := c.axis(ax)
	if err != nil {
		return err
	}

	r.spec = spec
	c.touch()

	return nil
}

// SetSamples sets the output size of axis ax.
func (c *Context[T]) SetSamples(ax, n int) error {
	r, err := c.axis(ax)
	if err != nil {
		return err
	}

	if n < 1 {
		return fmt.Errorf("%w: axis %d", ErrZeroSamples, ax)
	}

	r.samples = n
	c.touch()

	return nil
}

// SetRange sets the world range the output samples of axis ax span.
func (c *Context[T]) SetRange(ax int, lo, hi float64) error {
	r, err := c.axis(ax)
	if err != nil {
		return err
	}

	if err := checkRange(lo, hi); err != nil {
		return fmt.Errorf("%w: axis %d", err, ax)
	}

	r.min, r.max, r.full = lo, hi, false
	c.touch()

	return nil
}

// SetRangeFull makes the output of axis ax span the input's own range.
// This is the default.
func (c *Context[T]) SetRangeFull(ax int) error {
	r, err := c.axis(ax)
	if err != nil {
		return err
	}

	r.min, r.max, r.full = 0, 0, true
	c.touch()

	return nil
}

func checkRange(lo, hi float64) error {
	if lo == hi || math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return fmt.Errorf("%w: [%g, %g]", ErrDegenerateRange, lo, hi)
	}

	return nil
}

// SetBoundary sets the policy for taps outside the input.
func (c *Context[T]) SetBoundary(b Boundary) error {
	if b <= BoundaryUnknown || b > BoundaryMirror {
		return fmt.Errorf("%w: %v", ErrInvalidBoundary, b)
	}

	c.boundary = b
	c.touch()

	return nil
}

// SetPadValue sets the value read by taps outside the input under the pad
// boundary.
func (c *Context[T]) SetPadValue(v float64) {
	c.pad = v
}

// SetRenormalize sets whether weight rows are rescaled to the kernel
// integral.
func (c *Context[T]) SetRenormalize(on bool) {
	c.renormalize = on
	c.touch()
}

// SetRound sets whether integer outputs are rounded before conversion.
func (c *Context[T]) SetRound(on bool) { c.round = on }

// SetClamp sets whether integer outputs are clamped to the type range.
func (c *Context[T]) SetClamp(on bool) { c.clamp = on }

// SetCheap sets whether kernels keep their native scale when downsampling.
func (c *Context[T]) SetCheap(on bool) {
	c.cheap = on
	c.touch()
}

// SetTypeOut sets the output element type; TypeDefault keeps the input
// type.
func (c *Context[T]) SetTypeOut(t Type) error {
	if t == TypeBlock {
		return ErrBlockType
	}

	if t != TypeDefault && !t.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidType, t)
	}

	c.typeOut = t
	c.touch()

	return nil
}

// SetDefaultCenter sets the centering assumed for input axes that have
// none.
func (c *Context[T]) SetDefaultCenter(ctr Center) error {
	if ctr != CenterNode && ctr != CenterCell {
		return fmt.Errorf("%w: %v", ErrInvalidCenter, ctr)
	}

	c.defaultCenter = ctr
	c.touch()

	return nil
}

// SetOverrideCenter forces the centering of every input axis. CenterUnknown
// removes the override.
func (c *Context[T]) SetOverrideCenter(ctr Center) error {
	if ctr != CenterUnknown && ctr != CenterNode && ctr != CenterCell {
		return fmt.Errorf("%w: %v", ErrInvalidCenter, ctr)
	}

	c.overrideCenter = ctr
	c.touch()

	return nil
}

func (c *Context[T]) center(ax Axis) Center {
	switch {
	case c.overrideCenter != CenterUnknown:
		return c.overrideCenter
	case ax.Center != CenterUnknown:
		return ax.Center
	default:
		return c.defaultCenter
	}
}

// geometry resolves the request for axis ax against the input.
func (c *Context[T]) geometry(ax int) axisGeometry {
	in := c.src.Axes[ax]
	r := c.axes[ax]
	ctr := c.center(in)
	inMin, inMax := in.Bounds(ctr)

	g := axisGeometry{
		spec:     r.spec,
		sizeIn:   in.Size,
		sizeOut:  r.samples,
		cell:     ctr == CenterCell,
		inMin:    inMin,
		inMax:    inMax,
		outMin:   inMin,
		outMax:   inMax,
		boundary: c.boundary,
		renorm:   c.renormalize,
		cheap:    c.cheap,
	}

	if g.sizeOut == 0 {
		g.sizeOut = in.Size
	}

	if !r.full && r.min != r.max {
		g.outMin, g.outMax = r.min, r.max
	}

	return g
}

// Update validates the configuration and builds the weight tables. Every
// problem is reported at once; on error the previous plan is kept.
func (c *Context[T]) Update() error {
	if c.src == nil {
		return ErrNotConfigured
	}

	if !c.dirty {
		return nil
	}

	var errs *multierror.Error

	outType := c.typeOut
	if outType == TypeDefault {
		outType = c.src.Type
	}

	geoms := make([]axisGeometry, 0, len(c.axes))
	axes := make([]int, 0, len(c.axes))

	for ax, r := range c.axes {
		if r.spec.IsZero() {
			continue
		}

		g := c.geometry(ax)

		if err := checkRange(g.outMin, g.outMax); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("axis %d: %w", ax, err))
		}

		if s := r.spec.Support(); !(s > 0) || math.IsInf(s, 0) {
			errs = multierror.Append(errs, fmt.Errorf("axis %d: %w: %s has support %g", ax, ErrKernelSpec, r.spec, s))
		}

		if c.boundary == BoundaryWeight && r.spec.Kernel.Integral(r.spec.Parm[:]) == 0 {
			errs = multierror.Append(errs, fmt.Errorf("axis %d: %w: %s", ax, ErrBoundaryKernel, r.spec))
		}

		geoms = append(geoms, g)
		axes = append(axes, ax)
	}

	if err := errs.ErrorOrNil(); err != nil {
		return err
	}

	order := make([]int, len(axes))
	for i := range order {
		order[i] = i
	}

	slices.SortStableFunc(order, func(a, b int) int {
		ra := float64(geoms[a].sizeOut) / float64(geoms[a].sizeIn)
		rb := float64(geoms[b].sizeOut) / float64(geoms[b].sizeIn)

		switch {
		case ra < rb:
			return -1
		case ra > rb:
			return 1
		default:
			return 0
		}
	})

	precision := reflect.TypeFor[T]().String()
	tables := make(map[string]*weightTable[T], len(order))
	plans := make([]*axisPlan[T], 0, len(order))

	var stats Stats

	for _, i := range order {
		g, ax := geoms[i], axes[i]

		if err := kernel.Err(g.spec.Kernel); err != nil {
			c.opts.metrics.invalidKernel()
			c.opts.log.WithFields(logrus.Fields{
				"axis":   ax,
				"kernel": g.spec.String(),
			}).WithError(err).Error("kernel evaluates to zero")
		}

		key := g.key(precision)

		t, ok := tables[key]
		if !ok {
			t, ok = c.tables[key]
		}

		if !ok {
			if t, ok = cachedTable[T](c.opts.cache, key); ok {
				stats.CacheHits++
				c.opts.metrics.tableCacheHit()
			}
		}

		if !ok {
			var err error

			t, err = buildWeights[T](g)
			if err != nil {
				return fmt.Errorf("axis %d: %w", ax, err)
			}

			stats.TableBuilds++
			c.opts.metrics.tableBuilt()
			storeTable(c.opts.cache, key, t)
		}

		tables[key] = t
		plans = append(plans, &axisPlan[T]{axis: ax, geom: g, table: t})

		c.opts.log.WithFields(logrus.Fields{
			"axis":    ax,
			"kernel":  g.spec.String(),
			"sizeIn":  g.sizeIn,
			"sizeOut": g.sizeOut,
			"ratio":   t.ratio,
			"support": t.support,
			"dotLen":  t.dotLen,
		}).Debug("axis plan")
	}

	out := slices.Clone(c.src.Axes)
	for _, p := range plans {
		out[p.axis] = Axis{
			Size:   p.geom.sizeOut,
			Min:    p.geom.outMin,
			Max:    p.geom.outMax,
			Center: c.center(c.src.Axes[p.axis]),
		}
	}

	c.plans = plans
	c.tables = tables
	c.out = out
	c.outTyp = outType
	c.stats.TableBuilds += stats.TableBuilds
	c.stats.CacheHits += stats.CacheHits
	c.state = StateAxesConfigured
	c.dirty = false

	c.opts.log.WithFields(logrus.Fields{
		"passes":  len(plans),
		"typeOut": outType,
	}).Debug("resample plan ready")

	return nil
}

// PassAxes returns the resampled axes in the order they are processed.
// Axes shrinking the most go first. Valid after Update.
func (c *Context[T]) PassAxes() []int {
	axes := make([]int, len(c.plans))
	for i, p := range c.plans {
		axes[i] = p.axis
	}

	return axes
}

// PassCount returns the number of convolution passes. Valid after Update.
func (c *Context[T]) PassCount() int { return len(c.plans) }

// OutputAxes returns the axes the output will have. Valid after Update.
func (c *Context[T]) OutputAxes() []Axis { return slices.Clone(c.out) }

// OutputType returns the output element type. Valid after Update.
func (c *Context[T]) OutputType() Type { return c.outTyp }

// Execute resamples the input into dst.
func (c *Context[T]) Execute(dst *Array) error {
	return c.ExecuteContext(context.Background(), dst)
}

// ExecuteContext resamples the input into dst, updating the plan first if
// the configuration changed. dst takes the output type and axes; its data
// slice is reused when it already has the right type and length. dst is
// written only after every pass completed, so a configuration error or a
// cancelled ctx leaves it untouched.
func (c *Context[T]) ExecuteContext(ctx context.Context, dst *Array) error {
	if dst == nil {
		return ErrNilArray
	}

	if err := c.Update(); err != nil {
		return err
	}

	start := time.Now()

	sizes := c.src.Sizes()
	n := nmath.Product(sizes)

	cur := c.buffer(0, n)
	load(cur, c.src.Data)

	var scanlines int64

	for i, p := range c.plans {
		t := p.table
		outSizes := slices.Clone(sizes)
		outSizes[p.axis] = t.sizeOut

		next := c.buffer(1+i%2, nmath.Product(outSizes))
		c.ensureWorkers(t.sizeIn + 1)

		err := runPass(ctx, p, next, cur, sizes, T(c.pad), c.opts.workers, c.scratch, c.counters)
		if err != nil {
			return err
		}

		for w := range c.counters {
			scanlines += c.counters[w].N
			c.counters[w].N = 0
		}

		c.opts.log.WithFields(logrus.Fields{
			"pass":  i,
			"axis":  p.axis,
			"sizes": outSizes,
		}).Debug("pass done")

		cur, sizes = next, outSizes
	}

	conv := conversion{round: c.round, clamp: c.clamp}
	conv.lo, conv.hi = c.outTyp.Range()

	if dst.Type != c.outTyp || dataLen(dst.Data) != len(cur) {
		dst.Data = makeData(c.outTyp, len(cur))
	}

	dst.Type = c.outTyp
	dst.Axes = slices.Clone(c.out)
	store(dst.Data, cur, conv)

	c.stats.Executions++
	c.stats.Passes += int64(len(c.plans))
	c.stats.Scanlines += scanlines
	c.state = StateExecuted
	c.opts.metrics.execution(time.Since(start), len(c.plans), scanlines)

	return nil
}

// buffer returns working buffer i with length n, reusing its storage.
func (c *Context[T]) buffer(i, n int) []T {
	if cap(c.bufs[i]) < n {
		c.bufs[i] = make([]T, n)
	}

	return c.bufs[i][:n]
}

func (c *Context[T]) ensureWorkers(lineLen int) {
	if len(c.scratch) != c.opts.workers {
		c.scratch = make([][]T, c.opts.workers)
		c.counters = make([]cpu.Counter, c.opts.workers)
	}

	for w := range c.scratch {
		if cap(c.scratch[w]) < lineLen {
			c.scratch[w] = make([]T, lineLen)
		}
	}
}
