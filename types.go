package algonrrd

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-nrrd/internal/nrrdtypes"
)

// Float is the type constraint for the intermediate precision of a
// resampling context. The canonical definition is in internal/nrrdtypes.
type Float = nrrdtypes.Float

// Center is the sample centering of an axis.
type Center = nrrdtypes.Center

// Boundary is the policy for kernel taps outside the input axis.
type Boundary = nrrdtypes.Boundary

const (
	CenterUnknown = nrrdtypes.CenterUnknown
	CenterNode    = nrrdtypes.CenterNode
	CenterCell    = nrrdtypes.CenterCell
)

const (
	BoundaryUnknown = nrrdtypes.BoundaryUnknown
	BoundaryPad     = nrrdtypes.BoundaryPad
	BoundaryBleed   = nrrdtypes.BoundaryBleed
	BoundaryWrap    = nrrdtypes.BoundaryWrap
	BoundaryWeight  = nrrdtypes.BoundaryWeight
	BoundaryMirror  = nrrdtypes.BoundaryMirror
)

// ParseCenter converts "node" or "cell".
func ParseCenter(s string) (Center, error) {
	switch s {
	case "node":
		return CenterNode, nil
	case "cell":
		return CenterCell, nil
	default:
		return CenterUnknown, fmt.Errorf("%w: %q", ErrInvalidCenter, s)
	}
}

// ParseBoundary converts a boundary token such as "bleed".
func ParseBoundary(s string) (Boundary, error) {
	for b := BoundaryPad; b <= BoundaryMirror; b++ {
		if b.String() == s {
			return b, nil
		}
	}

	return BoundaryUnknown, fmt.Errorf("%w: %q", ErrInvalidBoundary, s)
}

// Type is the element type of an array.
type Type uint8

const (
	// TypeDefault as an output type means "same as the input".
	TypeDefault Type = iota
	TypeInt8
	TypeUint8
	TypeInt16
	TypeUint16
	TypeInt32
	TypeUint32
	TypeInt64
	TypeUint64
	TypeFloat32
	TypeFloat64
	// TypeBlock is opaque fixed-size records; it cannot be resampled.
	TypeBlock
)

var typeNames = [...]string{
	TypeDefault: "default",
	TypeInt8:    "int8",
	TypeUint8:   "uint8",
	TypeInt16:   "int16",
	TypeUint16:  "uint16",
	TypeInt32:   "int32",
	TypeUint32:  "uint32",
	TypeInt64:   "int64",
	TypeUint64:  "uint64",
	TypeFloat32: "float32",
	TypeFloat64: "float64",
	TypeBlock:   "block",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}

	return fmt.Sprintf("Type(%d)", uint8(t))
}

// ParseType converts a type name as printed by String.
func ParseType(s string) (Type, error) {
	for i, name := range typeNames {
		if name == s {
			return Type(i), nil
		}
	}

	return TypeDefault, fmt.Errorf("%w: %q", ErrInvalidType, s)
}

// Valid reports whether t is a concrete element type other than block.
func (t Type) Valid() bool {
	return t >= TypeInt8 && t <= TypeFloat64
}

// IsInteger reports whether t is one of the integer types.
func (t Type) IsInteger() bool {
	return t >= TypeInt8 && t <= TypeUint64
}

// Size returns the element size in bytes, or 0 for default and block.
func (t Type) Size() int {
	switch t {
	case TypeInt8, TypeUint8:
		return 1
	case TypeInt16, TypeUint16:
		return 2
	case TypeInt32, TypeUint32, TypeFloat32:
		return 4
	case TypeInt64, TypeUint64, TypeFloat64:
		return 8
	default:
		return 0
	}
}

// Range returns the representable range used when clamping. For the 64-bit
// integers the upper bound is the largest float64 that converts without
// overflow. Floating types report ±Inf.
func (t Type) Range() (lo, hi float64) {
	switch t {
	case TypeInt8:
		return math.MinInt8, math.MaxInt8
	case TypeUint8:
		return 0, math.MaxUint8
	case TypeInt16:
		return math.MinInt16, math.MaxInt16
	case TypeUint16:
		return 0, math.MaxUint16
	case TypeInt32:
		return math.MinInt32, math.MaxInt32
	case TypeUint32:
		return 0, math.MaxUint32
	case TypeInt64:
		return math.MinInt64, math.Nextafter(1<<63, 0)
	case TypeUint64:
		return 0, math.Nextafter(1<<64, 0)
	default:
		return math.Inf(-1), math.Inf(1)
	}
}
