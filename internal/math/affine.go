package math

// Affine maps x from the interval [i, I] onto [o, O].
//
// The operation order is fixed: the position and index conversions below are
// compared bit-for-bit by callers that round-trip through them.
func Affine(i, x, I, o, O float64) float64 {
	return o + (x-i)*(O-o)/(I-i)
}

// CellPos returns the world position of (possibly fractional) index idx on a
// cell-centered axis of size samples spanning [lo, hi].
func CellPos(lo, hi float64, size int, idx float64) float64 {
	return Affine(0, idx+0.5, float64(size), lo, hi)
}

// NodePos returns the world position of index idx on a node-centered axis.
func NodePos(lo, hi float64, size int, idx float64) float64 {
	return Affine(0, idx, float64(size-1), lo, hi)
}

// CellIdx is the inverse of CellPos.
func CellIdx(lo, hi float64, size int, pos float64) float64 {
	return Affine(lo, pos, hi, 0, float64(size)) - 0.5
}

// NodeIdx is the inverse of NodePos.
func NodeIdx(lo, hi float64, size int, pos float64) float64 {
	return Affine(lo, pos, hi, 0, float64(size-1))
}

// Pos dispatches to CellPos or NodePos.
func Pos(cell bool, lo, hi float64, size int, idx float64) float64 {
	if cell {
		return CellPos(lo, hi, size, idx)
	}

	return NodePos(lo, hi, size, idx)
}

// Idx dispatches to CellIdx or NodeIdx.
func Idx(cell bool, lo, hi float64, size int, pos float64) float64 {
	if cell {
		return CellIdx(lo, hi, size, pos)
	}

	return NodeIdx(lo, hi, size, pos)
}

// Spacing is the world distance between neighbouring samples.
func Spacing(cell bool, lo, hi float64, size int) float64 {
	if cell {
		return (hi - lo) / float64(size)
	}

	return (hi - lo) / float64(size-1)
}

// PosRange converts the index interval [loIdx, hiIdx] to world positions.
// On a cell-centered axis the interval covers whole cells, so hiIdx maps to
// the far edge of its cell. A reversed interval yields a reversed result.
func PosRange(cell bool, lo, hi float64, size int, loIdx, hiIdx float64) (float64, float64) {
	flip := loIdx > hiIdx
	if flip {
		loIdx, hiIdx = hiIdx, loIdx
	}

	var loPos, hiPos float64
	if cell {
		loPos = Affine(0, loIdx, float64(size), lo, hi)
		hiPos = Affine(0, hiIdx+1, float64(size), lo, hi)
	} else {
		loPos = Affine(0, loIdx, float64(size-1), lo, hi)
		hiPos = Affine(0, hiIdx, float64(size-1), lo, hi)
	}

	if flip {
		loPos, hiPos = hiPos, loPos
	}

	return loPos, hiPos
}

// IdxRange is the inverse of PosRange.
func IdxRange(cell bool, lo, hi float64, size int, loPos, hiPos float64) (float64, float64) {
	flip := loPos > hiPos
	if flip {
		loPos, hiPos = hiPos, loPos
	}

	var loIdx, hiIdx float64

	switch {
	case cell && lo < hi:
		loIdx = Affine(lo, loPos, hi, 0, float64(size))
		hiIdx = Affine(lo, hiPos, hi, -1, float64(size-1))
	case cell:
		loIdx = Affine(lo, loPos, hi, -1, float64(size-1))
		hiIdx = Affine(lo, hiPos, hi, 0, float64(size))
	default:
		loIdx = Affine(lo, loPos, hi, 0, float64(size-1))
		hiIdx = Affine(lo, hiPos, hi, 0, float64(size-1))
	}

	if flip {
		loIdx, hiIdx = hiIdx, loIdx
	}

	return loIdx, hiIdx
}
