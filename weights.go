package algonrrd

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-nrrd/internal/kernel"
	nmath "github.com/cwbudde/algo-nrrd/internal/math"
)

// degenerateSum is the relative size below which a weight row is treated as
// summing to zero.
const degenerateSum = 1e-9

// axisGeometry is everything a weight table depends on.
type axisGeometry struct {
	spec     KernelSpec
	sizeIn   int
	sizeOut  int
	cell     bool
	inMin    float64
	inMax    float64
	outMin   float64
	outMax   float64
	boundary Boundary
	renorm   bool
	cheap    bool
}

// key identifies g together with the table precision. Floats are printed
// exactly so equal keys mean equal tables.
func (g axisGeometry) key(precision string) string {
	var b strings.Builder

	b.WriteString(precision)
	b.WriteByte('|')
	b.WriteString(g.spec.Kernel.Name())

	for _, p := range g.spec.Parm {
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(p, 'x', -1, 64))
	}

	fmt.Fprintf(&b, "|%d>%d|%t|%x,%x>%x,%x|%v|%t|%t",
		g.sizeIn, g.sizeOut, g.cell, g.inMin, g.inMax, g.outMin, g.outMax,
		g.boundary, g.renorm, g.cheap)

	return b.String()
}

// ratio returns the input spacing over the output spacing; above one the
// axis is upsampled. A single input sample is constant-extended at ratio 1.
func (g axisGeometry) ratio() float64 {
	if g.sizeIn == 1 {
		return 1
	}

	spcIn := nmath.Spacing(g.cell, g.inMin, g.inMax, g.sizeIn)

	spcOut := g.outMax - g.outMin
	if g.cell || g.sizeOut > 1 {
		spcOut = nmath.Spacing(g.cell, g.outMin, g.outMax, g.sizeOut)
	}

	return math.Abs(spcIn / spcOut)
}

// position returns the input index sampled by output sample i.
func (g axisGeometry) position(i int) float64 {
	if g.sizeIn == 1 {
		return 0
	}

	var pos float64
	if !g.cell && g.sizeOut == 1 {
		pos = (g.outMin + g.outMax) / 2
	} else {
		pos = nmath.Pos(g.cell, g.outMin, g.outMax, g.sizeOut, float64(i))
	}

	return nmath.Idx(g.cell, g.inMin, g.inMax, g.sizeIn, pos)
}

// weightTable holds, for each output sample i, dotLen taps: input indices
// idx[i*dotLen+e] and weights w[i*dotLen+e]. Index sizeIn addresses the pad
// value appended to every gathered scanline. Tables are read-only once
// built and shared between contexts.
type weightTable[T Float] struct {
	sizeIn  int
	sizeOut int
	dotLen  int
	ratio   float64
	support float64
	idx     []int
	w       []T
}

// buildWeights evaluates the kernel for every output sample of an axis.
func buildWeights[T Float](g axisGeometry) (*weightTable[T], error) {
	k := g.spec.Kernel
	parm := g.spec.Parm
	ratio := g.ratio()

	support := k.Support(parm[:])
	if ratio < 1 && !g.cheap {
		parm[0] /= ratio
		support /= ratio
	}

	integral := k.Integral(parm[:])
	half := int(math.Ceil(support))
	dotLen := 2*half + 1

	t := &weightTable[T]{
		sizeIn:  g.sizeIn,
		sizeOut: g.sizeOut,
		dotLen:  dotLen,
		ratio:   ratio,
		support: support,
		idx:     make([]int, g.sizeOut*dotLen),
		w:       make([]T, g.sizeOut*dotLen),
	}

	xs := make([]T, dotLen)

	for i := range g.sizeOut {
		u := g.position(i)
		base := int(math.Floor(u)) - half
		row := t.w[i*dotLen : (i+1)*dotLen]
		idx := t.idx[i*dotLen : (i+1)*dotLen]

		for e := range dotLen {
			j := base + e
			xs[e] = T(u - float64(j))
			idx[e] = j
		}

		kernel.EvalN(k, row, xs, parm[:])

		for e, j := range idx {
			in := j >= 0 && j < g.sizeIn
			idx[e] = boundaryIndex(g.boundary, j, g.sizeIn)

			if !in && g.boundary == BoundaryWeight {
				row[e] = 0
			}
		}

		switch {
		case g.boundary == BoundaryWeight:
			if !renormalize(row, integral) {
				return nil, fmt.Errorf("output sample %d at index %g: %w", i, u, ErrDegenerateWeights)
			}
		case g.renorm && integral != 0:
			// a row that misses every tap keeps its zero weights
			renormalize(row, integral)
		}
	}

	return t, nil
}

// boundaryIndex maps tap j into [0, size], where size is the pad slot.
func boundaryIndex(b Boundary, j, size int) int {
	if j >= 0 && j < size {
		return j
	}

	switch b {
	case BoundaryPad:
		return size
	case BoundaryWrap:
		return ((j % size) + size) % size
	case BoundaryMirror:
		if size == 1 {
			return 0
		}

		period := 2 * (size - 1)

		m := ((j % period) + period) % period
		if m >= size {
			m = period - m
		}

		return m
	default:
		// bleed, and weight whose out-of-range taps carry no weight
		return min(max(j, 0), size-1)
	}
}

// renormalize scales row so that it sums to integral. A row summing to zero
// is left unchanged and reported with false.
func renormalize[T Float](row []T, integral float64) bool {
	var sum float64

	switch r := any(row).(type) {
	case []float64:
		sum = floats.Sum(r)
	default:
		for _, v := range row {
			sum += float64(v)
		}
	}

	if math.Abs(sum) <= degenerateSum*math.Abs(integral) {
		return false
	}

	scale := integral / sum

	switch r := any(row).(type) {
	case []float64:
		floats.Scale(scale, r)
	default:
		for e := range row {
			row[e] *= T(scale)
		}
	}

	return true
}
