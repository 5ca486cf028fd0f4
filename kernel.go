package algonrrd

import "github.com/cwbudde/algo-nrrd/internal/kernel"

// Kernel is a named, parameterized 1-D reconstruction or derivative filter.
type Kernel = kernel.Kernel

// KernelCheckOptions tunes CheckKernel.
type KernelCheckOptions = kernel.CheckOptions

// ParmMax is the length of a kernel parameter vector.
const ParmMax = kernel.ParmMax

// Built-in kernels.
var (
	KernelZero        = kernel.Zero
	KernelBox         = kernel.Box
	KernelCheap       = kernel.Cheap
	KernelTent        = kernel.Tent
	KernelForwardDiff = kernel.ForwardDiff
	KernelCentralDiff = kernel.CentralDiff
	KernelBCCubic     = kernel.BCCubic
	KernelBCCubicD    = kernel.BCCubicD
	KernelBCCubicDD   = kernel.BCCubicDD
	KernelAQuartic    = kernel.AQuartic
	KernelAQuarticD   = kernel.AQuarticD
	KernelAQuarticDD  = kernel.AQuarticDD
	KernelGaussian    = kernel.Gaussian
	KernelGaussianD   = kernel.GaussianD
	KernelGaussianDD  = kernel.GaussianDD
	KernelHann        = kernel.Hann
	KernelHannD       = kernel.HannD
	KernelHannDD      = kernel.HannDD
	KernelBlackman    = kernel.Blackman
	KernelBlackmanD   = kernel.BlackmanD
	KernelBlackmanDD  = kernel.BlackmanDD
)

// ErrKernelCheck is wrapped by every failure reported by CheckKernel.
var ErrKernelCheck = kernel.ErrCheck

// KernelTMF returns the TMF kernel for derivative order d, continuity c and
// accuracy a; -1 for d or c means "n". A combination missing from the table
// yields a kernel that evaluates to zero and reports through KernelErr.
func KernelTMF(d, c, a int) Kernel { return kernel.TMF(d, c, a) }

// LookupKernel returns the built-in kernel registered under name.
func LookupKernel(name string) (Kernel, bool) { return kernel.Lookup(name) }

// Kernels returns every fixed-shape built-in kernel.
func Kernels() []Kernel { return kernel.Builtins() }

// KernelsTMF returns every TMF kernel present in the table.
func KernelsTMF() []Kernel { return kernel.TMFAll() }

// KernelAliases returns the accepted spellings of k, canonical name first.
func KernelAliases(k Kernel) []string { return kernel.Aliases(k) }

// KernelErr returns the diagnostic carried by k, or nil when k is usable.
func KernelErr(k Kernel) error { return kernel.Err(k) }

// CheckKernel runs the kernel self-test at the given parameters.
func CheckKernel(k Kernel, parm []float64, opts KernelCheckOptions) error {
	return kernel.Check(k, parm, opts)
}
