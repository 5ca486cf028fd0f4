package algonrrd

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-nrrd/internal/cpu"
	nmath "github.com/cwbudde/algo-nrrd/internal/math"
)

// cancelCheckEvery is the number of scanlines a worker runs between
// cancellation checks.
const cancelCheckEvery = 64

// axisPlan is one convolution pass: the axis it resamples and its table.
type axisPlan[T Float] struct {
	axis  int
	geom  axisGeometry
	table *weightTable[T]
}

// runPass resamples axis p.axis of src, shaped sizes, into dst. Scanlines
// parallel to the axis are gathered into a contiguous buffer with the pad
// value appended, convolved with the weight table and scattered back with
// the same stride. Workers own disjoint scanlines.
func runPass[T Float](ctx context.Context, p *axisPlan[T], dst, src []T, sizes []int, pad T,
	workers int, scratch [][]T, counters []cpu.Counter,
) error {
	t := p.table
	inner, outer := nmath.Scanlines(sizes, p.axis)
	lines := inner * outer
	workers = max(min(workers, lines), 1)
	chunk := (lines + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)

	for w := range workers {
		lo, hi := w*chunk, min((w+1)*chunk, lines)
		if lo >= hi {
			break
		}

		line := scratch[w][:t.sizeIn+1]
		counter := &counters[w]

		g.Go(func() error {
			for s := lo; s < hi; s++ {
				if (s-lo)%cancelCheckEvery == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}

				o, in := s/inner, s%inner
				srcBase := o*inner*t.sizeIn + in
				dstBase := o*inner*t.sizeOut + in

				for j := range t.sizeIn {
					line[j] = src[srcBase+j*inner]
				}

				line[t.sizeIn] = pad

				for i := range t.sizeOut {
					idx := t.idx[i*t.dotLen : (i+1)*t.dotLen]
					wt := t.w[i*t.dotLen : (i+1)*t.dotLen]

					var v T
					for e, j := range idx {
						v += line[j] * wt[e]
					}

					dst[dstBase+i*inner] = v
				}

				atomic.AddInt64(&counter.N, 1)
			}

			return nil
		})
	}

	return g.Wait()
}
