package math

// Product returns the number of elements of an array with the given axis
// sizes. It returns 0 for an empty shape.
func Product(sizes []int) int {
	if len(sizes) == 0 {
		return 0
	}

	n := 1
	for _, s := range sizes {
		n *= s
	}

	return n
}

// Scanlines splits a row-major shape (axis 0 fastest) around axis ax.
// inner is the distance between consecutive samples along ax and outer the
// number of inner-sized blocks repeated above it; inner*outer scanlines run
// parallel to ax.
func Scanlines(sizes []int, ax int) (inner, outer int) {
	inner, outer = 1, 1
	for i, s := range sizes {
		switch {
		case i < ax:
			inner *= s
		case i > ax:
			outer *= s
		}
	}

	return inner, outer
}

// MulOverflows reports whether the product of sizes exceeds the int range.
func MulOverflows(sizes []int) bool {
	maxInt := int(^uint(0) >> 1)
	n := 1

	for _, s := range sizes {
		if s <= 0 {
			return false
		}

		if n > maxInt/s {
			return true
		}

		n *= s
	}

	return false
}
