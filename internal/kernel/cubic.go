package kernel

// BCCubic is the Mitchell-Netravali two-parameter cubic family:
// parm = {scale, B, C}. B=0,C=0.5 is Catmull-Rom; B=1,C=0 the cubic B-spline.
var BCCubic Kernel = &def{
	name:     "bccubic",
	numParm:  3,
	support:  func(parm []float64) float64 { return 2 * parm[0] },
	integral: unitIntegral,
	f:        bcCubicEval[float32],
	d:        bcCubicEval[float64],
}

// BCCubicD is the first derivative of BCCubic.
var BCCubicD Kernel = &def{
	name:     "bccubicd",
	numParm:  3,
	support:  func(parm []float64) float64 { return 2 * parm[0] },
	integral: zeroIntegral,
	f:        bcCubicDEval[float32],
	d:        bcCubicDEval[float64],
}

// BCCubicDD is the second derivative of BCCubic.
var BCCubicDD Kernel = &def{
	name:     "bccubicdd",
	numParm:  3,
	support:  func(parm []float64) float64 { return 2 * parm[0] },
	integral: zeroIntegral,
	f:        bcCubicDDEval[float32],
	d:        bcCubicDDEval[float64],
}

func bcCubicEval[T Float](x T, parm []float64) T {
	s, b, c := T(parm[0]), T(parm[1]), T(parm[2])

	x = abs(x) / s

	var r T

	switch {
	case x >= 2:
		r = 0
	case x >= 1:
		r = (((-b/6-c)*x+b+5*c)*x-2*b-8*c)*x + 4*b/3 + 4*c
	default:
		r = ((2-3*b/2-c)*x-3+2*b+c)*x*x + 1 - b/3
	}

	return r / s
}

func bcCubicDEval[T Float](x T, parm []float64) T {
	s, b, c := T(parm[0]), T(parm[1]), T(parm[2])

	var sgn T = 1
	if x < 0 {
		sgn = -1
	}

	x = abs(x) / s

	var r T

	switch {
	case x >= 2:
		r = 0
	case x >= 1:
		r = ((-b/2-3*c)*x+2*b+10*c)*x - 2*b - 8*c
	default:
		r = ((6-9*b/2-3*c)*x - 6 + 4*b + 2*c) * x
	}

	return sgn * r / (s * s)
}

func bcCubicDDEval[T Float](x T, parm []float64) T {
	s, b, c := T(parm[0]), T(parm[1]), T(parm[2])

	x = abs(x) / s

	var r T

	switch {
	case x >= 2:
		r = 0
	case x >= 1:
		r = (-b-6*c)*x + 2*b + 10*c
	default:
		r = (12-9*b-6*c)*x - 6 + 4*b + 2*c
	}

	return r / (s * s * s)
}
