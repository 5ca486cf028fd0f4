package algonrrd

import (
	"context"
	"fmt"
)

// AxisRequest describes one axis of a one-shot resample. A zero Kernel
// passes the axis through. Samples 0 keeps the input size, and Min == Max
// spans the input's own range.
type AxisRequest struct {
	Kernel  KernelSpec
	Samples int
	Min     float64
	Max     float64
}

// Request is the full description of a one-shot resample. Start from
// NewRequest, which fills in the default policy.
type Request struct {
	Axes        []AxisRequest
	Boundary    Boundary
	Pad         float64
	TypeOut     Type
	Renormalize bool
	Round       bool
	Clamp       bool
	Cheap       bool
	Center      Center // default centering for axes without one
}

// NewRequest returns a request for dim pass-through axes with bleed
// boundary and renormalization, rounding and clamping on.
func NewRequest(dim int) Request {
	return Request{
		Axes:        make([]AxisRequest, dim),
		Boundary:    BoundaryBleed,
		Renormalize: true,
		Round:       true,
		Clamp:       true,
		Center:      CenterCell,
	}
}

// Resample resamples src into dst as described by req, computing in
// precision T. It builds a context for the single call; to resample many
// arrays of one shape, keep a Context instead.
func Resample[T Float](ctx context.Context, dst, src *Array, req Request, opts ...Option) error {
	if err := src.Validate(); err != nil {
		return err
	}

	if len(req.Axes) != len(src.Axes) {
		return fmt.Errorf("%w: request has %d axes, array has %d", ErrShapeMismatch, len(req.Axes), len(src.Axes))
	}

	c := NewContextT[T](opts...)
	if err := c.SetInput(src); err != nil {
		return err
	}

	if err := c.SetBoundary(req.Boundary); err != nil {
		return err
	}

	if err := c.SetTypeOut(req.TypeOut); err != nil {
		return err
	}

	if req.Center != CenterUnknown {
		if err := c.SetDefaultCenter(req.Center); err != nil {
			return err
		}
	}

	c.SetPadValue(req.Pad)
	c.SetRenormalize(req.Renormalize)
	c.SetRound(req.Round)
	c.SetClamp(req.Clamp)
	c.SetCheap(req.Cheap)

	for ax, r := range req.Axes {
		if r.Kernel.IsZero() {
			continue
		}

		if err := c.SetKernel(ax, r.Kernel); err != nil {
			return err
		}

		if r.Samples != 0 {
			if err := c.SetSamples(ax, r.Samples); err != nil {
				return err
			}
		}

		if r.Min != r.Max {
			if err := c.SetRange(ax, r.Min, r.Max); err != nil {
				return err
			}
		}
	}

	return c.ExecuteContext(ctx, dst)
}
