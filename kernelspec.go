package algonrrd

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-nrrd/internal/kernel"
)

// DefaultKernelParm0 is the scale given to a kernel whose specification
// omits it.
const DefaultKernelParm0 = 1.0

// KernelSpec is a kernel with its parameter vector. The zero value has no
// kernel; an axis configured with it is passed through unchanged.
type KernelSpec struct {
	Kernel Kernel
	Parm   [ParmMax]float64
}

// NewKernelSpec pairs k with parm. Entries beyond ParmMax are ignored.
func NewKernelSpec(k Kernel, parm ...float64) KernelSpec {
	ks := KernelSpec{Kernel: k}
	copy(ks.Parm[:], parm)

	return ks
}

// IsZero reports whether ks names no kernel.
func (ks KernelSpec) IsZero() bool { return ks.Kernel == nil }

// Parms returns the parameters the kernel uses.
func (ks KernelSpec) Parms() []float64 {
	if ks.Kernel == nil {
		return nil
	}

	return ks.Parm[:ks.Kernel.NumParm()]
}

// Support returns the kernel support at the stored parameters.
func (ks KernelSpec) Support() float64 {
	if ks.Kernel == nil {
		return 0
	}

	return ks.Kernel.Support(ks.Parm[:])
}

// String prints ks in the form accepted by ParseKernelSpec. A TMF kernel
// always prints its scale, so the output parses back to the same spec.
func (ks KernelSpec) String() string {
	if ks.Kernel == nil {
		return ""
	}

	name := ks.Kernel.Name()
	if kernel.IsTMF(ks.Kernel) {
		return name + "," + formatParm(ks.Parm[0])
	}

	parms := ks.Parms()
	if len(parms) == 0 {
		return name
	}

	s := make([]string, len(parms))
	for i, p := range parms {
		s[i] = formatParm(p)
	}

	return name + ":" + strings.Join(s, ",")
}

func formatParm(p float64) string {
	return strconv.FormatFloat(p, 'g', -1, 64)
}

// Set parses s with the default scale. It implements pflag.Value.
func (ks *KernelSpec) Set(s string) error {
	parsed, err := ParseKernelSpec(s)
	if err != nil {
		return err
	}

	*ks = parsed

	return nil
}

// Type implements pflag.Value.
func (ks *KernelSpec) Type() string { return "kernel" }

// MarshalText implements encoding.TextMarshaler.
func (ks KernelSpec) MarshalText() ([]byte, error) {
	return []byte(ks.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Empty text clears the
// spec.
func (ks *KernelSpec) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*ks = KernelSpec{}
		return nil
	}

	return ks.Set(string(text))
}

// KernelSpecError describes why a kernel specification was rejected. It
// matches ErrKernelSpec and the more specific sentinel in Err.
type KernelSpecError struct {
	Spec   string
	Reason string
	Err    error
}

func (e *KernelSpecError) Error() string {
	return fmt.Sprintf("%v: %q: %s", e.Err, e.Spec, e.Reason)
}

func (e *KernelSpecError) Unwrap() error { return e.Err }

// Is makes every KernelSpecError match ErrKernelSpec.
func (e *KernelSpecError) Is(target error) bool { return target == ErrKernelSpec }

// ParseOptions carries the parser configuration.
type ParseOptions struct {
	// DefaultParm0 is the scale used when a specification omits it. Zero
	// means DefaultKernelParm0.
	DefaultParm0 float64
}

// ParseKernelSpec parses spec with DefaultKernelParm0 as the default scale.
func ParseKernelSpec(spec string) (KernelSpec, error) {
	return ParseOptions{}.Parse(spec)
}

// Parse converts "name[:p0,p1,...]" or "tmf:D,C,A[,scale]" into a
// KernelSpec.
//
// Names are matched case-sensitively against the kernel aliases. The
// Gaussian kernels need every parameter. Any other kernel accepts either
// all of its parameters or all but the scale, which then takes the default.
// On error the returned spec is the zero value.
//
// The optional fourth TMF field is the kernel scale, parm[0], like the
// leading parameter of every other kernel. It is not a shape parameter:
// the D=n entries are fixed approximating kernels of the requested
// accuracy and take no phase count at run time.
func (o ParseOptions) Parse(spec string) (KernelSpec, error) {
	def := o.DefaultParm0
	if def == 0 {
		def = DefaultKernelParm0
	}

	fail := func(sentinel error, format string, args ...any) (KernelSpec, error) {
		return KernelSpec{}, &KernelSpecError{Spec: spec, Reason: fmt.Sprintf(format, args...), Err: sentinel}
	}

	name, rest, hasParms := strings.Cut(strings.TrimSpace(spec), ":")
	if name == "" {
		return fail(ErrKernelSpec, "empty kernel name")
	}

	if name == "tmf" {
		return o.parseTMF(spec, rest, def)
	}

	k, ok := kernel.Lookup(name)
	if !ok {
		return fail(ErrUnknownKernel, "no kernel named %q", name)
	}

	var parms []float64

	if hasParms {
		for _, field := range strings.Split(rest, ",") {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return fail(ErrKernelSpec, "parameter %q is not a number", field)
			}

			parms = append(parms, v)
		}
	}

	n, np := len(parms), k.NumParm()

	var ks KernelSpec

	ks.Kernel = k

	switch {
	case n == np:
		copy(ks.Parm[:], parms)
	case kernel.IsGaussian(k):
		return fail(ErrKernelParmCount, "%s needs all %d parameters, got %d", k.Name(), np, n)
	case n == np-1:
		ks.Parm[0] = def
		copy(ks.Parm[1:], parms)
	default:
		return fail(ErrKernelParmCount, "%s takes %d or %d parameters, got %d", k.Name(), np-1, np, n)
	}

	if p := ks.Parm[0]; !(p > 0) || math.IsInf(p, 0) {
		return fail(ErrKernelSpec, "scale %g must be positive and finite", p)
	}

	for _, p := range ks.Parms() {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return fail(ErrKernelSpec, "parameter %g is not finite", p)
		}
	}

	return ks, nil
}

func (o ParseOptions) parseTMF(spec, rest string, def float64) (KernelSpec, error) {
	fail := func(format string, args ...any) (KernelSpec, error) {
		return KernelSpec{}, &KernelSpecError{Spec: spec, Reason: fmt.Sprintf(format, args...), Err: ErrKernelSpec}
	}

	fields := strings.Split(rest, ",")
	if len(fields) != 3 && len(fields) != 4 {
		return KernelSpec{}, &KernelSpecError{
			Spec:   spec,
			Reason: fmt.Sprintf("tmf takes D,C,A[,scale], got %d fields", len(fields)),
			Err:    ErrKernelParmCount,
		}
	}

	index := func(s string, allowN bool) (int, bool) {
		s = strings.TrimSpace(s)
		if allowN && s == "n" {
			return -1, true
		}

		v, err := strconv.Atoi(s)

		return v, err == nil
	}

	d, ok := index(fields[0], true)
	if !ok || d < -1 || d > kernel.TMFMaxD {
		return fail("tmf D %q not in n..%d", fields[0], kernel.TMFMaxD)
	}

	c, ok := index(fields[1], true)
	if !ok || c < -1 || c > kernel.TMFMaxC {
		return fail("tmf C %q not in n..%d", fields[1], kernel.TMFMaxC)
	}

	a, ok := index(fields[2], false)
	if !ok || a < 1 || a > kernel.TMFMaxA {
		return fail("tmf A %q not in 1..%d", fields[2], kernel.TMFMaxA)
	}

	ks := KernelSpec{Kernel: kernel.TMF(d, c, a)}
	ks.Parm[0] = def

	if len(fields) == 4 {
		v, err := strconv.ParseFloat(strings.TrimSpace(fields[3]), 64)
		if err != nil || !(v > 0) || math.IsInf(v, 0) {
			return fail("tmf scale %q must be a positive number", fields[3])
		}

		ks.Parm[0] = v
	}

	return ks, nil
}
