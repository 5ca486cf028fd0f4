package kernel

import "slices"

var builtins = []Kernel{
	Zero, Box, Cheap, Tent, ForwardDiff, CentralDiff,
	BCCubic, BCCubicD, BCCubicDD,
	AQuartic, AQuarticD, AQuarticDD,
	Gaussian, GaussianD, GaussianDD,
	Hann, HannD, HannDD,
	Blackman, BlackmanD, BlackmanDD,
}

var aliasTable = []struct {
	k     Kernel
	names []string
}{
	{Zero, []string{"zero", "z"}},
	{Box, []string{"box", "b"}},
	{Cheap, []string{"cheap"}},
	{Tent, []string{"tent", "t"}},
	{ForwardDiff, []string{"fordif", "forwdiff", "fd"}},
	{CentralDiff, []string{"cendif", "centdiff", "cd"}},
	{BCCubic, []string{"bccubic", "cubic", "c"}},
	{BCCubicD, []string{"bccubicd", "cubicd", "c1"}},
	{BCCubicDD, []string{"bccubicdd", "cubicdd", "c2"}},
	{AQuartic, []string{"quartic", "aquartic", "q"}},
	{AQuarticD, []string{"quarticd", "aquarticd", "q1"}},
	{AQuarticDD, []string{"quarticdd", "aquarticdd", "q2"}},
	{Gaussian, []string{"gauss", "gaussian", "g"}},
	{GaussianD, []string{"gaussd", "gaussiand", "gd"}},
	{GaussianDD, []string{"gaussdd", "gaussiandd", "gdd"}},
	{Hann, []string{"hann", "h"}},
	{HannD, []string{"hannd", "h1"}},
	{HannDD, []string{"hanndd", "h2"}},
	{Blackman, []string{"blackman", "black", "bk"}},
	{BlackmanD, []string{"blackmand", "blackd", "bk1"}},
	{BlackmanDD, []string{"blackmandd", "blackdd", "bk2"}},
}

// aliases maps every accepted spelling to its kernel. Matching is case
// sensitive.
var aliases = make(map[string]Kernel)

func init() {
	for _, e := range aliasTable {
		for _, name := range e.names {
			aliases[name] = e.k
		}
	}
}

// Lookup returns the built-in kernel registered under name.
func Lookup(name string) (Kernel, bool) {
	k, ok := aliases[name]
	return k, ok
}

// Builtins returns the fixed-shape kernels in registry order. The TMF
// family is not included; see TMFAll.
func Builtins() []Kernel {
	return slices.Clone(builtins)
}

// TMFAll returns every kernel present in the TMF table.
func TMFAll() []Kernel {
	return slices.Clone(tmfKernels)
}

// Aliases returns the accepted spellings of k, canonical name first.
func Aliases(k Kernel) []string {
	for _, e := range aliasTable {
		if e.k == k {
			return slices.Clone(e.names)
		}
	}

	return []string{k.Name()}
}

// IsGaussian reports whether k is one of the Gaussian kernels, which take
// no default for their leading parameter.
func IsGaussian(k Kernel) bool {
	return k == Gaussian || k == GaussianD || k == GaussianDD
}

// HasNominalIntegral reports whether the Integral of k is a nominal 1 that
// quadrature over its truncated support only approximates, as for the
// windowed sincs.
func HasNominalIntegral(k Kernel) bool {
	d, ok := k.(*def)
	return ok && d.nominal
}

// IsTMF reports whether k belongs to the TMF family, including the
// placeholder for a missing table entry.
func IsTMF(k Kernel) bool {
	switch k.(type) {
	case *tmfKernel, *badTMF:
		return true
	default:
		return false
	}
}
