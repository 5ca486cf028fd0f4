package algonrrd

import "math"

type integer interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64
}

type number interface {
	integer | ~float32 | ~float64
}

func loadSlice[T Float, E number](dst []T, src []E) {
	for i, v := range src {
		dst[i] = T(v)
	}
}

// load converts the array data into the working precision.
func load[T Float](dst []T, data any) {
	switch d := data.(type) {
	case []int8:
		loadSlice(dst, d)
	case []uint8:
		loadSlice(dst, d)
	case []int16:
		loadSlice(dst, d)
	case []uint16:
		loadSlice(dst, d)
	case []int32:
		loadSlice(dst, d)
	case []uint32:
		loadSlice(dst, d)
	case []int64:
		loadSlice(dst, d)
	case []uint64:
		loadSlice(dst, d)
	case []float32:
		loadSlice(dst, d)
	case []float64:
		loadSlice(dst, d)
	}
}

// conversion is the final-pass policy for integer outputs.
type conversion struct {
	round bool
	clamp bool
	lo    float64
	hi    float64
}

// apply rounds half up, then clamps, in that order.
func (c conversion) apply(v float64) float64 {
	if c.round {
		v = math.Floor(v + 0.5)
	}

	if c.clamp {
		v = min(max(v, c.lo), c.hi)
	}

	return v
}

func storeInt[T Float, E integer](dst []E, src []T, c conversion) {
	for i, v := range src {
		dst[i] = E(c.apply(float64(v)))
	}
}

func storeFloat[T Float, E ~float32 | ~float64](dst []E, src []T) {
	for i, v := range src {
		dst[i] = E(v)
	}
}

// store writes src into data, whose element type is t. Integer outputs go
// through c; without clamping, values outside the type range convert with
// Go's implementation-defined semantics.
func store[T Float](data any, src []T, c conversion) {
	switch d := data.(type) {
	case []int8:
		storeInt(d, src, c)
	case []uint8:
		storeInt(d, src, c)
	case []int16:
		storeInt(d, src, c)
	case []uint16:
		storeInt(d, src, c)
	case []int32:
		storeInt(d, src, c)
	case []uint32:
		storeInt(d, src, c)
	case []int64:
		storeInt(d, src, c)
	case []uint64:
		storeInt(d, src, c)
	case []float32:
		storeFloat(d, src)
	case []float64:
		storeFloat(d, src)
	}
}
