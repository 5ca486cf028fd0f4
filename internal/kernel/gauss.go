package kernel

import "math"

// Gaussian, GaussianD and GaussianDD take parm = {sigma, cut}: the kernel
// is truncated at cut standard deviations. Sigma plays the role of the
// scale, so there is no separate normalization.
var (
	Gaussian Kernel = &def{
		name:     "gauss",
		numParm:  2,
		support:  gaussSupport,
		integral: unitIntegral,
		f:        gaussEval[float32],
		d:        gaussEval[float64],
	}

	GaussianD Kernel = &def{
		name:     "gaussd",
		numParm:  2,
		support:  gaussSupport,
		integral: zeroIntegral,
		f:        gaussDEval[float32],
		d:        gaussDEval[float64],
	}

	GaussianDD Kernel = &def{
		name:     "gaussdd",
		numParm:  2,
		support:  gaussSupport,
		integral: zeroIntegral,
		f:        gaussDDEval[float32],
		d:        gaussDDEval[float64],
	}
)

const invSqrt2Pi = 0.3989422804014327

func gaussSupport(parm []float64) float64 { return parm[0] * parm[1] }

func gauss(x, sig, cut float64) float64 {
	if math.Abs(x) > sig*cut {
		return 0
	}

	return invSqrt2Pi / sig * math.Exp(-x*x/(2*sig*sig))
}

func gaussEval[T Float](x T, parm []float64) T {
	return T(gauss(float64(x), parm[0], parm[1]))
}

func gaussDEval[T Float](x T, parm []float64) T {
	xd, sig := float64(x), parm[0]
	return T(-xd / (sig * sig) * gauss(xd, sig, parm[1]))
}

func gaussDDEval[T Float](x T, parm []float64) T {
	xd, sig := float64(x), parm[0]
	s2 := sig * sig

	return T((xd*xd - s2) / (s2 * s2) * gauss(xd, sig, parm[1]))
}
