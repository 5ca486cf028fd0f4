// Package kernel defines the 1-D reconstruction and derivative filters used
// by the resampling engine.
//
// Every kernel is driven by a parameter vector whose first element is a
// scale (or the Gaussian sigma). Evaluating with a larger scale stretches
// the kernel and divides its value so that the integral is unchanged;
// derivative kernels divide by one extra power of the scale per order.
package kernel

import "github.com/cwbudde/algo-nrrd/internal/nrrdtypes"

// ParmMax is the length of a kernel parameter vector. Built-in kernels use
// at most three entries; the rest is room for externally defined kernels.
const ParmMax = 8

// Float is the shared precision constraint.
type Float = nrrdtypes.Float

// Kernel is a named, parameterized 1-D filter.
//
// Support returns the smallest x > 0 with the kernel zero for all |y| > x.
// Integral returns the nominal integral over [-support, support]; it is 0
// for derivative kernels. Eval1 and EvalN evaluate at one point or at every
// element of x, in single or double precision; EvalN must reproduce Eval1
// element by element, and the two precisions must agree to float tolerance.
type Kernel interface {
	Name() string
	NumParm() int
	Support(parm []float64) float64
	Integral(parm []float64) float64
	Eval1f(x float32, parm []float64) float32
	EvalNf(dst, x []float32, parm []float64)
	Eval1d(x float64, parm []float64) float64
	EvalNd(dst, x []float64, parm []float64)
}

// def is a built-in kernel assembled from generic evaluators instantiated
// once per precision.
type def struct {
	name     string
	numParm  int
	support  func(parm []float64) float64
	integral func(parm []float64) float64
	f        func(x float32, parm []float64) float32
	d        func(x float64, parm []float64) float64
	nominal  bool // integral is 1 by convention, not by quadrature
}

func (k *def) Name() string                    { return k.name }
func (k *def) NumParm() int                    { return k.numParm }
func (k *def) Support(parm []float64) float64  { return k.support(parm) }
func (k *def) Integral(parm []float64) float64 { return k.integral(parm) }
func (k *def) String() string                  { return k.name }

func (k *def) Eval1f(x float32, parm []float64) float32 { return k.f(x, parm) }
func (k *def) Eval1d(x float64, parm []float64) float64 { return k.d(x, parm) }

func (k *def) EvalNf(dst, x []float32, parm []float64) {
	for i, v := range x {
		dst[i] = k.f(v, parm)
	}
}

func (k *def) EvalNd(dst, x []float64, parm []float64) {
	for i, v := range x {
		dst[i] = k.d(v, parm)
	}
}

// Eval1 evaluates k at x in the precision of T.
func Eval1[T Float](k Kernel, x T, parm []float64) T {
	switch v := any(x).(type) {
	case float32:
		return T(k.Eval1f(v, parm))
	case float64:
		return T(k.Eval1d(v, parm))
	default:
		return T(k.Eval1d(float64(x), parm))
	}
}

// EvalN evaluates k at every element of x in the precision of T.
func EvalN[T Float](k Kernel, dst, x []T, parm []float64) {
	switch xs := any(x).(type) {
	case []float32:
		k.EvalNf(any(dst).([]float32), xs, parm)
	case []float64:
		k.EvalNd(any(dst).([]float64), xs, parm)
	default:
		for i, v := range x {
			dst[i] = Eval1(k, v, parm)
		}
	}
}

func unitIntegral([]float64) float64 { return 1 }
func zeroIntegral([]float64) float64 { return 0 }

func abs[T Float](x T) T {
	if x < 0 {
		return -x
	}

	return x
}
