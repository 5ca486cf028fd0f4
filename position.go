package algonrrd

import nmath "github.com/cwbudde/algo-nrrd/internal/math"

// Affine maps x from [i, I] onto [o, O]: o + (x-i)*(O-o)/(I-i).
func Affine(i, x, I, o, O float64) float64 {
	return nmath.Affine(i, x, I, o, O)
}

// CellPos returns the world position of index idx on a cell-centered axis of
// size samples spanning [min, max].
func CellPos(min, max float64, size int, idx float64) float64 {
	return nmath.CellPos(min, max, size, idx)
}

// NodePos returns the world position of index idx on a node-centered axis.
func NodePos(min, max float64, size int, idx float64) float64 {
	return nmath.NodePos(min, max, size, idx)
}

// CellIdx returns the index of world position pos on a cell-centered axis.
func CellIdx(min, max float64, size int, pos float64) float64 {
	return nmath.CellIdx(min, max, size, pos)
}

// NodeIdx returns the index of world position pos on a node-centered axis.
func NodeIdx(min, max float64, size int, pos float64) float64 {
	return nmath.NodeIdx(min, max, size, pos)
}

// Pos maps an index to a world position under centering c. Any centering
// other than node is treated as cell.
func Pos(c Center, min, max float64, size int, idx float64) float64 {
	return nmath.Pos(c != CenterNode, min, max, size, idx)
}

// Idx maps a world position to an index under centering c.
func Idx(c Center, min, max float64, size int, pos float64) float64 {
	return nmath.Idx(c != CenterNode, min, max, size, pos)
}

// Spacing returns the world distance between neighbouring samples.
func Spacing(c Center, min, max float64, size int) float64 {
	return nmath.Spacing(c != CenterNode, min, max, size)
}
