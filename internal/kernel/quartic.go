package kernel

// AQuartic is the one-parameter family of C1 quartic interpolators,
// parm = {scale, A}. A=0.25 gives the most accurate member.
var AQuartic Kernel = &def{
	name:     "quartic",
	numParm:  2,
	support:  func(parm []float64) float64 { return 3 * parm[0] },
	integral: unitIntegral,
	f:        aQuarticEval[float32],
	d:        aQuarticEval[float64],
}

// AQuarticD is the first derivative of AQuartic.
var AQuarticD Kernel = &def{
	name:     "quarticd",
	numParm:  2,
	support:  func(parm []float64) float64 { return 3 * parm[0] },
	integral: zeroIntegral,
	f:        aQuarticDEval[float32],
	d:        aQuarticDEval[float64],
}

// AQuarticDD is the second derivative of AQuartic.
var AQuarticDD Kernel = &def{
	name:     "quarticdd",
	numParm:  2,
	support:  func(parm []float64) float64 { return 3 * parm[0] },
	integral: zeroIntegral,
	f:        aQuarticDDEval[float32],
	d:        aQuarticDDEval[float64],
}

func aQuarticEval[T Float](x T, parm []float64) T {
	s, a := T(parm[0]), T(parm[1])

	x = abs(x) / s

	var r T

	switch {
	case x >= 3:
		r = 0
	case x >= 2:
		r = a * (-54 + x*(81+x*(-45+x*(11-x))))
	case x >= 1:
		r = 4 - 6*a + x*(-10+25*a+x*(9-33*a+x*(-3.5+17*a+x*(0.5-3*a))))
	default:
		r = 1 + x*x*(-3+6*a+x*((2.5-10*a)+x*(-0.5+4*a)))
	}

	return r / s
}

func aQuarticDEval[T Float](x T, parm []float64) T {
	s, a := T(parm[0]), T(parm[1])

	var sgn T = 1
	if x < 0 {
		sgn = -1
	}

	x = abs(x) / s

	var r T

	switch {
	case x >= 3:
		r = 0
	case x >= 2:
		r = a * (81 + x*(-90+x*(33-4*x)))
	case x >= 1:
		r = -10 + 25*a + x*(18-66*a+x*(-10.5+51*a+x*(2-12*a)))
	default:
		r = x * (-6 + 12*a + x*(7.5-30*a+x*(-2+16*a)))
	}

	return sgn * r / (s * s)
}

func aQuarticDDEval[T Float](x T, parm []float64) T {
	s, a := T(parm[0]), T(parm[1])

	x = abs(x) / s

	var r T

	switch {
	case x >= 3:
		r = 0
	case x >= 2:
		r = a * (-90 + x*(66-12*x))
	case x >= 1:
		r = 18 - 66*a + x*(-21+102*a+x*(6-36*a))
	default:
		r = -6 + 12*a + x*(15-60*a+x*(-6+48*a))
	}

	return r / (s * s * s)
}
