// Package algonrrd resamples typed N-dimensional arrays by separable
// convolution with 1-D reconstruction and derivative kernels.
//
// A Context is configured once per array shape: which axes to resample,
// with which kernel, to how many samples and over which world range, and
// the numeric policy (boundary handling, renormalization, rounding and
// clamping of integer output). Update validates everything and builds one
// weight table per resampled axis; Execute then runs one convolution pass
// per axis and converts the result to the output type. Executing again with
// another array of the same shape reuses the tables.
//
//	ctx := algonrrd.NewContext64()
//	_ = ctx.SetInput(src)
//	spec, _ := algonrrd.ParseKernelSpec("cubic:0,0.5")
//	_ = ctx.SetKernel(0, spec)
//	_ = ctx.SetSamples(0, 2*src.Axes[0].Size)
//	err := ctx.Execute(dst)
//
// Kernels are named by a short textual specification, "name[:p0,p1,...]"
// or "tmf:D,C,A[,scale]"; see ParseOptions.Parse. Arrays are stored in
// row-major order with axis 0 varying fastest, and sample positions follow
// the node and cell centering conventions of Pos and Idx.
package algonrrd
