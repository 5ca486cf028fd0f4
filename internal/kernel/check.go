package kernel

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/hashicorp/go-multierror"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/integrate/quad"
)

// ErrCheck is wrapped by every failure reported by Check.
var ErrCheck = errors.New("algonrrd: kernel check failed")

// CheckOptions tunes Check. Zero fields take the defaults below.
type CheckOptions struct {
	// Samples is the number of random points in [-2*support, 2*support].
	Samples int
	// Tolerance bounds the float/double disagreement, relative to both the
	// value and the kernel's peak magnitude.
	Tolerance float64
	// IntegralTolerance bounds |quadrature - Integral|.
	IntegralTolerance float64
	// Segments is the number of equal quadrature panels over the support.
	Segments int
	Seed     uint64
}

const (
	defaultCheckSamples   = 1000
	defaultCheckTolerance = 1e-5
	defaultIntegralTol    = 5e-4
	defaultSegments       = 240
	legendreNodes         = 8
)

func (o CheckOptions) withDefaults() CheckOptions {
	if o.Samples <= 0 {
		o.Samples = defaultCheckSamples
	}

	if o.Tolerance <= 0 {
		o.Tolerance = defaultCheckTolerance
	}

	if o.IntegralTolerance <= 0 {
		o.IntegralTolerance = defaultIntegralTol
	}

	if o.Segments <= 0 {
		o.Segments = defaultSegments
	}

	return o
}

// Check verifies the internal consistency of k at parm: EvalN against
// Eval1 in both precisions, float against double, zero outside the
// support, and the nominal integral against composite Gauss-Legendre
// quadrature. All failures are returned together.
//
// Kernels for which HasNominalIntegral is true skip the quadrature
// comparison. The Gaussian and windowed-sinc kernels evaluate in double
// precision and round the result for float32, so for them the float
// against double comparison only covers that final rounding.
func Check(k Kernel, parm []float64, opts CheckOptions) error {
	if err := Err(k); err != nil {
		return err
	}

	opts = opts.withDefaults()
	name := k.Name()

	support := k.Support(parm)
	if !(support > 0) || math.IsInf(support, 0) {
		return fmt.Errorf("%w: %s: support %g is not positive and finite", ErrCheck, name, support)
	}

	rng := rand.New(rand.NewPCG(opts.Seed, 0x6b65726e656c))

	xf := make([]float32, opts.Samples)
	xd := make([]float64, opts.Samples)

	for i := range xf {
		xf[i] = float32((2*rng.Float64() - 1) * 2 * support)
		xd[i] = float64(xf[i])
	}

	vf := make([]float32, len(xf))
	vd := make([]float64, len(xd))
	k.EvalNf(vf, xf, parm)
	k.EvalNd(vd, xd, parm)

	var result *multierror.Error

	fail := func(format string, args ...any) {
		result = multierror.Append(result, fmt.Errorf("%w: %s: "+format, append([]any{ErrCheck, name}, args...)...))
	}

	absd := make([]float64, len(vd))
	for i, v := range vd {
		absd[i] = math.Abs(v)
	}

	peak := floats.Max(absd)
	if peak == 0 {
		peak = 1
	}

	for i, x := range xd {
		if s := k.Eval1d(x, parm); s != vd[i] {
			fail("evalNd %g != eval1d %g at x=%g", vd[i], s, x)
			break
		}
	}

	for i, x := range xf {
		if s := k.Eval1f(x, parm); s != vf[i] {
			fail("evalNf %g != eval1f %g at x=%g", vf[i], s, x)
			break
		}
	}

	for i, x := range xd {
		if !scalar.EqualWithinAbsOrRel(float64(vf[i]), vd[i], opts.Tolerance*peak, opts.Tolerance) {
			fail("float %g and double %g disagree at x=%g", vf[i], vd[i], x)
			break
		}
	}

	for i, x := range xd {
		if math.Abs(x) > support && vd[i] != 0 {
			fail("value %g at x=%g outside support %g", vd[i], x, support)
			break
		}
	}

	if want := k.Integral(parm); want != 0 && !HasNominalIntegral(k) {
		got := Quadrature(k, parm, opts.Segments)
		if math.Abs(got-want) > opts.IntegralTolerance {
			fail("integral %g, nominal %g", got, want)
		}
	}

	return result.ErrorOrNil()
}

// Quadrature integrates the double-precision kernel over its support with
// segments equal Gauss-Legendre panels.
func Quadrature(k Kernel, parm []float64, segments int) float64 {
	support := k.Support(parm)
	width := 2 * support / float64(segments)
	f := func(x float64) float64 { return k.Eval1d(x, parm) }

	var sum float64

	for i := range segments {
		lo := -support + float64(i)*width
		sum += quad.Fixed(f, lo, lo+width, legendreNodes, quad.Legendre{}, 0)
	}

	return sum
}
