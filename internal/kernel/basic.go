package kernel

// Zero is identically zero over a support of parm[0].
var Zero Kernel = &def{
	name:     "zero",
	numParm:  1,
	support:  func(parm []float64) float64 { return parm[0] },
	integral: zeroIntegral,
	f:        zeroEval[float32],
	d:        zeroEval[float64],
}

func zeroEval[T Float](T, []float64) T { return 0 }

// Box is the unit-integral box of width parm[0]; the edges take half value.
var Box Kernel = &def{
	name:     "box",
	numParm:  1,
	support:  func(parm []float64) float64 { return parm[0] / 2 },
	integral: unitIntegral,
	f:        boxEval[float32],
	d:        boxEval[float64],
}

func boxStep[T Float](x T) T {
	switch {
	case x > 0.5:
		return 0
	case x < 0.5:
		return 1
	default:
		return 0.5
	}
}

func boxEval[T Float](x T, parm []float64) T {
	s := T(parm[0])
	return boxStep(abs(x)/s) / s
}

// Cheap is the unit box that ignores its scale: stretching it for
// downsampling leaves it a nearest-sample pick.
var Cheap Kernel = &def{
	name:     "cheap",
	numParm:  1,
	support:  func([]float64) float64 { return 0.5 },
	integral: unitIntegral,
	f:        cheapEval[float32],
	d:        cheapEval[float64],
}

func cheapEval[T Float](x T, _ []float64) T {
	return boxStep(abs(x))
}

// Tent is linear interpolation, support parm[0].
var Tent Kernel = &def{
	name:     "tent",
	numParm:  1,
	support:  func(parm []float64) float64 { return parm[0] },
	integral: unitIntegral,
	f:        tentEval[float32],
	d:        tentEval[float64],
}

func tentEval[T Float](x T, parm []float64) T {
	s := T(parm[0])

	x = abs(x) / s
	if x >= 1 {
		return 0
	}

	return (1 - x) / s
}

// ForwardDiff is the forward difference f[i+1]-f[i].
var ForwardDiff Kernel = &def{
	name:     "fordif",
	numParm:  1,
	support:  func(parm []float64) float64 { return parm[0] },
	integral: zeroIntegral,
	f:        forwardDiffEval[float32],
	d:        forwardDiffEval[float64],
}

func forwardDiffEval[T Float](x T, parm []float64) T {
	s := T(parm[0])
	x /= s

	var r T

	switch {
	case x < -1:
		r = 0
	case x < 0:
		r = 1
	case x < 1:
		r = -1
	}

	return r / (s * s)
}

// CentralDiff is the central difference (f[i+1]-f[i-1])/2, linearly
// interpolated between samples.
var CentralDiff Kernel = &def{
	name:     "cendif",
	numParm:  1,
	support:  func(parm []float64) float64 { return 2 * parm[0] },
	integral: zeroIntegral,
	f:        centralDiffEval[float32],
	d:        centralDiffEval[float64],
}

func centralDiffEval[T Float](x T, parm []float64) T {
	s := T(parm[0])
	x /= s

	var r T

	switch {
	case x <= -2:
		r = 0
	case x <= -1:
		r = x/2 + 1
	case x <= 1:
		r = -x / 2
	case x <= 2:
		r = x/2 - 1
	}

	return r / (s * s)
}
