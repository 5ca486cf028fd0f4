package algonrrd

import (
	"fmt"
	"math"
	"slices"

	nmath "github.com/cwbudde/algo-nrrd/internal/math"
)

// Axis is the per-axis metadata of an Array.
//
// Min and Max locate the samples in world space. They are unset when equal
// (the zero value) or NaN; an unset range defaults to [0, Size] for cell
// centering and [0, Size-1] for node centering.
type Axis struct {
	Size   int
	Min    float64
	Max    float64
	Center Center
}

func (ax Axis) rangeSet() bool {
	return !math.IsNaN(ax.Min) && !math.IsNaN(ax.Max) && ax.Min != ax.Max
}

// Bounds returns the effective world range of the axis under centering c.
func (ax Axis) Bounds(c Center) (lo, hi float64) {
	if ax.rangeSet() {
		return ax.Min, ax.Max
	}

	if c == CenterNode && ax.Size > 1 {
		return 0, float64(ax.Size - 1)
	}

	return 0, float64(max(ax.Size, 1))
}

func (ax Axis) center() Center {
	if ax.Center == CenterUnknown {
		return CenterCell
	}

	return ax.Center
}

// Pos returns the world position of index idx. Unknown centering is
// treated as cell.
func (ax Axis) Pos(idx float64) float64 {
	c := ax.center()
	lo, hi := ax.Bounds(c)

	return Pos(c, lo, hi, ax.Size, idx)
}

// Idx returns the index of world position pos.
func (ax Axis) Idx(pos float64) float64 {
	c := ax.center()
	lo, hi := ax.Bounds(c)

	return Idx(c, lo, hi, ax.Size, pos)
}

// PosRange returns the world interval covered by the samples loIdx..hiIdx.
// For cell centering this includes the outer halves of the end cells.
func (ax Axis) PosRange(loIdx, hiIdx float64) (lo, hi float64) {
	c := ax.center()
	axMin, axMax := ax.Bounds(c)

	return nmath.PosRange(c == CenterCell, axMin, axMax, ax.Size, loIdx, hiIdx)
}

// IdxRange is the inverse of PosRange.
func (ax Axis) IdxRange(loPos, hiPos float64) (lo, hi float64) {
	c := ax.center()
	axMin, axMax := ax.Bounds(c)

	return nmath.IdxRange(c == CenterCell, axMin, axMax, ax.Size, loPos, hiPos)
}

// Array is a typed N-dimensional array in row-major order with axis 0
// varying fastest. Data holds a slice of the Go type matching Type, for
// example []uint8 for TypeUint8.
type Array struct {
	Type Type
	Axes []Axis
	Data any
}

// NewArray allocates a zeroed array of type t.
func NewArray(t Type, sizes ...int) (*Array, error) {
	if t == TypeBlock {
		return nil, ErrBlockType
	}

	if !t.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidType, t)
	}

	if err := checkSizes(sizes); err != nil {
		return nil, err
	}

	axes := make([]Axis, len(sizes))
	for i, s := range sizes {
		axes[i] = Axis{Size: s}
	}

	return &Array{Type: t, Axes: axes, Data: makeData(t, nmath.Product(sizes))}, nil
}

// Wrap makes an array around an existing slice, inferring the type.
func Wrap(data any, sizes ...int) (*Array, error) {
	t := typeOf(data)
	if t == TypeDefault {
		return nil, fmt.Errorf("%w: unsupported data %T", ErrInvalidType, data)
	}

	if err := checkSizes(sizes); err != nil {
		return nil, err
	}

	a := &Array{Type: t, Axes: make([]Axis, len(sizes)), Data: data}
	for i, s := range sizes {
		a.Axes[i].Size = s
	}

	if err := a.Validate(); err != nil {
		return nil, err
	}

	return a, nil
}

func checkSizes(sizes []int) error {
	if len(sizes) == 0 {
		return fmt.Errorf("%w: no axes", ErrInvalidAxis)
	}

	for i, s := range sizes {
		if s < 1 {
			return fmt.Errorf("%w: axis %d has size %d", ErrInvalidAxis, i, s)
		}
	}

	if nmath.MulOverflows(sizes) {
		return fmt.Errorf("%w: %v overflows", ErrInvalidAxis, sizes)
	}

	return nil
}

// Validate checks that the data matches the declared type and shape.
func (a *Array) Validate() error {
	if a == nil || a.Data == nil {
		return ErrNilArray
	}

	if a.Type == TypeBlock {
		return ErrBlockType
	}

	if !a.Type.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidType, a.Type)
	}

	if got := typeOf(a.Data); got != a.Type {
		return fmt.Errorf("%w: data is %T, type is %v", ErrInvalidType, a.Data, a.Type)
	}

	sizes := a.Sizes()
	if err := checkSizes(sizes); err != nil {
		return err
	}

	if n, want := dataLen(a.Data), nmath.Product(sizes); n != want {
		return fmt.Errorf("%w: %d elements for shape %v", ErrLengthMismatch, n, sizes)
	}

	return nil
}

// Dim returns the number of axes.
func (a *Array) Dim() int { return len(a.Axes) }

// Sizes returns the axis sizes.
func (a *Array) Sizes() []int {
	s := make([]int, len(a.Axes))
	for i, ax := range a.Axes {
		s[i] = ax.Size
	}

	return s
}

// Len returns the number of elements.
func (a *Array) Len() int { return dataLen(a.Data) }

// Float64 returns element i converted to float64.
func (a *Array) Float64(i int) float64 {
	switch d := a.Data.(type) {
	case []int8:
		return float64(d[i])
	case []uint8:
		return float64(d[i])
	case []int16:
		return float64(d[i])
	case []uint16:
		return float64(d[i])
	case []int32:
		return float64(d[i])
	case []uint32:
		return float64(d[i])
	case []int64:
		return float64(d[i])
	case []uint64:
		return float64(d[i])
	case []float32:
		return float64(d[i])
	case []float64:
		return d[i]
	default:
		panic(fmt.Sprintf("algonrrd: unsupported data %T", a.Data))
	}
}

// SetFloat64 stores v at element i with Go conversion semantics.
func (a *Array) SetFloat64(i int, v float64) {
	switch d := a.Data.(type) {
	case []int8:
		d[i] = int8(v)
	case []uint8:
		d[i] = uint8(v)
	case []int16:
		d[i] = int16(v)
	case []uint16:
		d[i] = uint16(v)
	case []int32:
		d[i] = int32(v)
	case []uint32:
		d[i] = uint32(v)
	case []int64:
		d[i] = int64(v)
	case []uint64:
		d[i] = uint64(v)
	case []float32:
		d[i] = float32(v)
	case []float64:
		d[i] = v
	default:
		panic(fmt.Sprintf("algonrrd: unsupported data %T", a.Data))
	}
}

// Clone returns a deep copy of a.
func (a *Array) Clone() *Array {
	out := &Array{Type: a.Type, Axes: slices.Clone(a.Axes)}

	switch d := a.Data.(type) {
	case []int8:
		out.Data = slices.Clone(d)
	case []uint8:
		out.Data = slices.Clone(d)
	case []int16:
		out.Data = slices.Clone(d)
	case []uint16:
		out.Data = slices.Clone(d)
	case []int32:
		out.Data = slices.Clone(d)
	case []uint32:
		out.Data = slices.Clone(d)
	case []int64:
		out.Data = slices.Clone(d)
	case []uint64:
		out.Data = slices.Clone(d)
	case []float32:
		out.Data = slices.Clone(d)
	case []float64:
		out.Data = slices.Clone(d)
	}

	return out
}

func typeOf(data any) Type {
	switch data.(type) {
	case []int8:
		return TypeInt8
	case []uint8:
		return TypeUint8
	case []int16:
		return TypeInt16
	case []uint16:
		return TypeUint16
	case []int32:
		return TypeInt32
	case []uint32:
		return TypeUint32
	case []int64:
		return TypeInt64
	case []uint64:
		return TypeUint64
	case []float32:
		return TypeFloat32
	case []float64:
		return TypeFloat64
	default:
		return TypeDefault
	}
}

func dataLen(data any) int {
	switch d := data.(type) {
	case []int8:
		return len(d)
	case []uint8:
		return len(d)
	case []int16:
		return len(d)
	case []uint16:
		return len(d)
	case []int32:
		return len(d)
	case []uint32:
		return len(d)
	case []int64:
		return len(d)
	case []uint64:
		return len(d)
	case []float32:
		return len(d)
	case []float64:
		return len(d)
	default:
		return 0
	}
}

func makeData(t Type, n int) any {
	switch t {
	case TypeInt8:
		return make([]int8, n)
	case TypeUint8:
		return make([]uint8, n)
	case TypeInt16:
		return make([]int16, n)
	case TypeUint16:
		return make([]uint16, n)
	case TypeInt32:
		return make([]int32, n)
	case TypeUint32:
		return make([]uint32, n)
	case TypeInt64:
		return make([]int64, n)
	case TypeUint64:
		return make([]uint64, n)
	case TypeFloat32:
		return make([]float32, n)
	case TypeFloat64:
		return make([]float64, n)
	default:
		return nil
	}
}
