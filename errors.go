package algonrrd

import (
	"errors"

	"github.com/cwbudde/algo-nrrd/internal/kernel"
)

// Sentinel errors returned by the resampling API. Wrapped errors carry the
// axis or value involved; test with errors.Is.
var (
	// ErrNilArray is returned when a nil array or nil array data is passed.
	ErrNilArray = errors.New("algonrrd: nil array")

	// ErrLengthMismatch is returned when an array's data length does not
	// equal the product of its axis sizes.
	ErrLengthMismatch = errors.New("algonrrd: data length does not match axis sizes")

	// ErrInvalidAxis is returned for an axis index out of range or an axis
	// with fewer than one sample.
	ErrInvalidAxis = errors.New("algonrrd: invalid axis")

	// ErrZeroSamples is returned when a resampled axis asks for no output.
	ErrZeroSamples = errors.New("algonrrd: zero output samples")

	// ErrDegenerateRange is returned when a resampled axis has min == max or
	// a non-finite bound.
	ErrDegenerateRange = errors.New("algonrrd: degenerate axis range")

	// ErrKernelSpec is matched by every kernel specification error.
	ErrKernelSpec = errors.New("algonrrd: invalid kernel specification")

	// ErrUnknownKernel is returned when a specification names no kernel.
	ErrUnknownKernel = errors.New("algonrrd: unknown kernel")

	// ErrKernelParmCount is returned when a specification supplies the wrong
	// number of kernel parameters.
	ErrKernelParmCount = errors.New("algonrrd: wrong number of kernel parameters")

	// ErrBlockType is returned when a block-typed array takes part in
	// resampling.
	ErrBlockType = errors.New("algonrrd: block type cannot be resampled")

	// ErrInvalidType is returned for an unknown element type or data whose Go
	// type disagrees with the declared element type.
	ErrInvalidType = errors.New("algonrrd: invalid element type")

	// ErrInvalidBoundary is returned for an unknown boundary policy.
	ErrInvalidBoundary = errors.New("algonrrd: invalid boundary")

	// ErrInvalidCenter is returned for an unknown centering where one is
	// required.
	ErrInvalidCenter = errors.New("algonrrd: invalid centering")

	// ErrBoundaryKernel is returned when the weight boundary is combined
	// with a kernel whose integral is zero.
	ErrBoundaryKernel = errors.New("algonrrd: weight boundary needs a kernel with nonzero integral")

	// ErrDegenerateWeights is returned when an output sample's realized
	// weights sum to zero but must be renormalized.
	ErrDegenerateWeights = errors.New("algonrrd: weights sum to zero")

	// ErrNotConfigured is returned when an operation needs an input array
	// that has not been set.
	ErrNotConfigured = errors.New("algonrrd: context has no input")

	// ErrShapeMismatch is returned when an array does not have the shape a
	// context or request was configured for.
	ErrShapeMismatch = errors.New("algonrrd: array shape mismatch")

	// ErrInvalidTMF marks a TMF kernel whose (D,C,A) has no table entry.
	ErrInvalidTMF = kernel.ErrInvalidTMF
)
