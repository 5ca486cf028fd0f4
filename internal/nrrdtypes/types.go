package nrrdtypes

// Float is a type constraint for the two intermediate precisions of the
// resampling engine. Weight tables, scanline buffers and kernel evaluation
// all run in the same Float type within one context.
type Float interface {
	~float32 | ~float64
}

// Center describes where samples sit along an axis.
type Center uint8

const (
	CenterUnknown Center = iota
	CenterNode           // samples on the grid nodes, first and last at min and max
	CenterCell           // samples at the centers of equal sub-intervals
)

// String returns the token used in configuration files.
func (c Center) String() string {
	switch c {
	case CenterNode:
		return "node"
	case CenterCell:
		return "cell"
	default:
		return "unknown"
	}
}

// Boundary selects how a resample pass treats kernel taps that fall outside
// the input axis.
type Boundary uint8

const (
	BoundaryUnknown Boundary = iota
	BoundaryPad              // out-of-range taps read the pad value
	BoundaryBleed            // clamp to the nearest edge sample
	BoundaryWrap             // periodic
	BoundaryWeight           // drop out-of-range taps, renormalize the rest
	BoundaryMirror           // reflect about the edge sample
)

// String returns the token used in configuration files.
func (b Boundary) String() string {
	switch b {
	case BoundaryPad:
		return "pad"
	case BoundaryBleed:
		return "bleed"
	case BoundaryWrap:
		return "wrap"
	case BoundaryWeight:
		return "weight"
	case BoundaryMirror:
		return "mirror"
	default:
		return "unknown"
	}
}
