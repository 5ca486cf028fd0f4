package kernel

import "math"

// The windowed-sinc kernels take parm = {scale, radius}: a sinc tapered to
// zero at radius samples by a Hann or Blackman window.
var (
	Hann       Kernel = newWindowedSinc("hann", 0, hannWindow)
	HannD      Kernel = newWindowedSinc("hannd", 1, hannWindow)
	HannDD     Kernel = newWindowedSinc("hanndd", 2, hannWindow)
	Blackman   Kernel = newWindowedSinc("blackman", 0, blackmanWindow)
	BlackmanD  Kernel = newWindowedSinc("blackmand", 1, blackmanWindow)
	BlackmanDD Kernel = newWindowedSinc("blackmandd", 2, blackmanWindow)
)

// window returns w, w' and w'' at x for radius r.
type window func(x, r float64) (w, w1, w2 float64)

func hannWindow(x, r float64) (float64, float64, float64) {
	a := math.Pi / r
	c, s := math.Cos(a*x), math.Sin(a*x)

	return 0.5 * (1 + c), -0.5 * a * s, -0.5 * a * a * c
}

func blackmanWindow(x, r float64) (float64, float64, float64) {
	a := math.Pi / r
	c1, s1 := math.Cos(a*x), math.Sin(a*x)
	c2, s2 := math.Cos(2*a*x), math.Sin(2*a*x)

	return 0.42 + 0.5*c1 + 0.08*c2,
		-0.5*a*s1 - 0.16*a*s2,
		-0.5*a*a*c1 - 0.32*a*a*c2
}

// sinc returns sin(pi x)/(pi x) and its first two derivatives. Close to the
// origin the closed forms cancel badly, so a Taylor expansion takes over.
func sinc(x float64) (float64, float64, float64) {
	const p2 = math.Pi * math.Pi

	if math.Abs(x) < 1e-3 {
		x2 := x * x
		return 1 - p2*x2/6 + p2*p2*x2*x2/120,
			-p2*x/3 + p2*p2*x*x2/30,
			-p2/3 + p2*p2*x2/10
	}

	px := math.Pi * x
	s, c := math.Sin(px), math.Cos(px)

	return s / px,
		c/x - s/(px*x),
		-math.Pi*s/x - 2*c/(x*x) + 2*s/(px*x*x)
}

func windowedSinc(x, r float64, order int, win window) float64 {
	if x > r || x < -r {
		return 0
	}

	w, w1, w2 := win(x, r)
	s, s1, s2 := sinc(x)

	switch order {
	case 0:
		return w * s
	case 1:
		return w1*s + w*s1
	default:
		return w2*s + 2*w1*s1 + w*s2
	}
}

func newWindowedSinc(name string, order int, win window) *def {
	eval := func(x float64, parm []float64) float64 {
		scale := parm[0]
		v := windowedSinc(x/scale, parm[1], order, win)

		for range order + 1 {
			v /= scale
		}

		return v
	}

	integral := unitIntegral
	if order > 0 {
		integral = zeroIntegral
	}

	return &def{
		name:     name,
		numParm:  2,
		support:  func(parm []float64) float64 { return parm[0] * parm[1] },
		integral: integral,
		f:        func(x float32, parm []float64) float32 { return float32(eval(float64(x), parm)) },
		d:        eval,
		nominal:  order == 0,
	}
}
