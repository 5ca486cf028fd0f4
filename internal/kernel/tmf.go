package kernel

import (
	"errors"
	"fmt"
	"math"
)

//go:generate go run ./tmfgen -o tmf_table.go

// Ranges of the TMF family indices. D and C use -1 for "n": no derivative
// or interpolation constraint for D, no continuity constraint for C.
const (
	TMFMaxD = 2
	TMFMaxC = 3
	TMFMaxA = 4
)

// ErrInvalidTMF marks a (D,C,A) combination that has no kernel in the table.
var ErrInvalidTMF = errors.New("algonrrd: no TMF kernel for this (D,C,A)")

// tmfEntry is one piecewise polynomial of the family: Width unit phases,
// phase j covering [j-Width/2, j-Width/2+1) in kernel units, with Coef[j]
// the ascending coefficients of a polynomial in the fractional position.
type tmfEntry struct {
	D, C, A int
	Width   int
	Coef    [][]float64
}

var (
	tmfIndex   [TMFMaxD + 2][TMFMaxC + 2][TMFMaxA]*tmfKernel
	tmfKernels []Kernel
)

func init() {
	for i := range tmfTable {
		k := &tmfKernel{e: &tmfTable[i]}
		tmfIndex[k.e.D+1][k.e.C+1][k.e.A-1] = k
		tmfKernels = append(tmfKernels, k)
	}
}

// TMF returns the kernel of derivative order d, continuity c and accuracy
// a. It never returns nil: a combination outside the table yields a kernel
// that evaluates to zero and reports ErrInvalidTMF through Err.
func TMF(d, c, a int) Kernel {
	if d < -1 || d > TMFMaxD || c < -1 || c > TMFMaxC || a < 1 || a > TMFMaxA {
		return &badTMF{d: d, c: c, a: a}
	}

	if k := tmfIndex[d+1][c+1][a-1]; k != nil {
		return k
	}

	return &badTMF{d: d, c: c, a: a}
}

func tmfToken(v int) string {
	if v < 0 {
		return "n"
	}

	return fmt.Sprint(v)
}

func tmfName(d, c, a int) string {
	return "tmf:" + tmfToken(d) + "," + tmfToken(c) + "," + fmt.Sprint(a)
}

type tmfKernel struct {
	e *tmfEntry
}

func (k *tmfKernel) Name() string   { return tmfName(k.e.D, k.e.C, k.e.A) }
func (k *tmfKernel) String() string { return k.Name() }
func (k *tmfKernel) NumParm() int   { return 1 }

// Indices returns the (D,C,A) the kernel was built for.
func (k *tmfKernel) Indices() (d, c, a int) { return k.e.D, k.e.C, k.e.A }

func (k *tmfKernel) Support(parm []float64) float64 {
	return parm[0] * float64(k.e.Width) / 2
}

func (k *tmfKernel) Integral([]float64) float64 {
	if k.e.D > 0 {
		return 0
	}

	return 1
}

func (k *tmfKernel) Eval1f(x float32, parm []float64) float32 { return tmfEval(k.e, x, parm) }
func (k *tmfKernel) Eval1d(x float64, parm []float64) float64 { return tmfEval(k.e, x, parm) }

func (k *tmfKernel) EvalNf(dst, x []float32, parm []float64) {
	for i, v := range x {
		dst[i] = tmfEval(k.e, v, parm)
	}
}

func (k *tmfKernel) EvalNd(dst, x []float64, parm []float64) {
	for i, v := range x {
		dst[i] = tmfEval(k.e, v, parm)
	}
}

func tmfEval[T Float](e *tmfEntry, x T, parm []float64) T {
	s := T(parm[0])

	xs := x/s + T(e.Width)/2
	if xs < 0 || xs >= T(e.Width) {
		return 0
	}

	j := int(math.Floor(float64(xs)))
	if j >= e.Width {
		return 0
	}

	u := xs - T(j)
	c := e.Coef[j]

	var v T
	for m := len(c) - 1; m >= 0; m-- {
		v = v*u + T(c[m])
	}

	v /= s
	for range max(e.D, 0) {
		v /= s
	}

	return v
}

// badTMF stands in for a hole in the table.
type badTMF struct {
	d, c, a int
}

func (k *badTMF) Name() string                      { return tmfName(k.d, k.c, k.a) }
func (k *badTMF) String() string                    { return k.Name() }
func (k *badTMF) NumParm() int                      { return 1 }
func (k *badTMF) Support(parm []float64) float64    { return parm[0] }
func (k *badTMF) Integral([]float64) float64        { return 0 }
func (k *badTMF) Eval1f(float32, []float64) float32 { return 0 }
func (k *badTMF) Eval1d(float64, []float64) float64 { return 0 }

func (k *badTMF) EvalNf(dst, x []float32, _ []float64) { clear(dst[:len(x)]) }
func (k *badTMF) EvalNd(dst, x []float64, _ []float64) { clear(dst[:len(x)]) }

// Indices returns the requested (D,C,A).
func (k *badTMF) Indices() (d, c, a int) { return k.d, k.c, k.a }

// Err reports why the kernel only evaluates to zero.
func (k *badTMF) Err() error {
	return fmt.Errorf("%w: d=%s c=%s a=%d", ErrInvalidTMF, tmfToken(k.d), tmfToken(k.c), k.a)
}

// Err returns the diagnostic carried by k, or nil for a usable kernel.
// Evaluation itself never reports; callers check once before use.
func Err(k Kernel) error {
	if e, ok := k.(interface{ Err() error }); ok {
		return e.Err()
	}

	return nil
}
