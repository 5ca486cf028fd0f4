package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	algonrrd "github.com/cwbudde/algo-nrrd"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, stderr bytes.Buffer

	a := newApp()
	a.root.SetOut(&out)
	a.root.SetErr(&stderr)
	a.root.SetArgs(args)

	err := a.root.Execute()

	return out.String(), err
}

func TestVersion(t *testing.T) {
	t.Parallel()

	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "nrrdresample v"+version+"\n", out)
}

func TestKernelList(t *testing.T) {
	t.Parallel()

	out, err := run(t, "kernel", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "bccubic")
	assert.Contains(t, out, "cubic,c")
	assert.NotContains(t, out, "tmf:")

	out, err = run(t, "kernel", "list", "--tmf")
	require.NoError(t, err)
	assert.Contains(t, out, "tmf:1,0,2")
}

func TestKernelEval(t *testing.T) {
	t.Parallel()

	out, err := run(t, "kernel", "eval", "tent", "--from=-1", "--to=1", "-n", "5")
	require.NoError(t, err)

	want := "# tent:1 support=1 integral=1\n-1\t0\n-0.5\t0.5\n0\t1\n0.5\t0.5\n1\t0\n"
	assert.Equal(t, want, out)

	_, err = run(t, "kernel", "eval", "gauss")
	require.ErrorIs(t, err, algonrrd.ErrKernelParmCount)

	_, err = run(t, "kernel", "eval", "tent", "-n", "0")
	require.ErrorIs(t, err, algonrrd.ErrZeroSamples)
}

func TestDefaultParm0FromEnvironment(t *testing.T) {
	t.Setenv("NRRD_DEFAULT_KERNEL_PARM0", "2")

	out, err := run(t, "kernel", "eval", "box", "--from=0", "--to=0", "-n", "1")
	require.NoError(t, err)
	assert.Equal(t, "# box:2 support=1 integral=1\n0\t0.5\n", out)

	out, err = run(t, "info")
	require.NoError(t, err)
	assert.Contains(t, out, "parm0:    2\n")
}

func TestKernelCheck(t *testing.T) {
	t.Parallel()

	out, err := run(t, "kernel", "check", "--samples", "200", "tent", "cubic:1,0,0.5", "tmf:1,0,2")
	require.NoError(t, err)
	assert.Equal(t, "tent:1\tok\nbccubic:1,0,0.5\tok\ntmf:1,0,2,1\tok\n", out)

	out, err = run(t, "kernel", "check", "tent", "tmf:2,3,4")
	require.ErrorIs(t, err, errCheckFailed)
	assert.Contains(t, out, "tmf:2,3,4,1\tFAIL")

	_, err = run(t, "kernel", "check", "bogus")
	require.ErrorIs(t, err, algonrrd.ErrUnknownKernel)
}

func TestConfigFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nrrd.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log-level: debug\ndefault-kernel-parm0: 3\n"), 0o600))

	out, err := run(t, "--config", path, "info")
	require.NoError(t, err)
	assert.Contains(t, out, "parm0:    3\n")
	assert.Contains(t, out, "kernels:  21 built-in")

	_, err = run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "info")
	require.Error(t, err)

	_, err = run(t, "--log-level", "loud", "version")
	require.Error(t, err)
}

func TestSplitKernels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   []string
		want []string
	}{
		{[]string{"tent"}, []string{"tent"}},
		{[]string{"cubic:0", "0.5", "cubic:0", "0.5"}, []string{"cubic:0,0.5", "cubic:0,0.5"}},
		{[]string{"tmf:n", "n", "3", "box"}, []string{"tmf:n,n,3", "box"}},
		{[]string{"-", "gauss:1", "3"}, []string{"-", "gauss:1,3"}},
		{[]string{"cubic:0,0.5;tent"}, []string{"cubic:0,0.5", "tent"}},
		{[]string{"tent", "", "box"}, []string{"tent", "", "box"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, splitKernels(tt.in), "%q", tt.in)
	}
}

const yamlJob = `
input: in.raw
output: out.raw
type: uint16
sizes: [10, 20, 3]
center: node
typeOut: float32
boundary: wrap
pad: 4
renormalize: false
precision: float32
axes:
  - {kernel: "cubic:0,0.5", samples: 5}
  - {kernel: "-"}
  - {kernel: "gauss:1,3", samples: 6, min: 0.5, max: 1.5}
`

const tomlJob = `
input = "in.raw"
output = "out.raw"
type = "uint16"
sizes = [10, 20, 3]
center = "node"
typeOut = "float32"
boundary = "wrap"
pad = 4.0
renormalize = false
precision = "float32"

[[axes]]
kernel = "cubic:0,0.5"
samples = 5

[[axes]]
kernel = "-"

[[axes]]
kernel = "gauss:1,3"
samples = 6
min = 0.5
max = 1.5
`

func TestDecodeJob(t *testing.T) {
	t.Parallel()

	for format, text := range map[string]string{"yaml": yamlJob, "toml": tomlJob} {
		t.Run(format, func(t *testing.T) {
			t.Parallel()

			j, err := decodeJob(strings.NewReader(text), format)
			require.NoError(t, err)
			assert.Equal(t, "in.raw", j.Input)
			assert.Equal(t, []int{10, 20, 3}, j.Sizes)
			require.NotNil(t, j.Renormalize)
			assert.False(t, *j.Renormalize)
			assert.Nil(t, j.Round)

			typ, req, err := j.request(algonrrd.ParseOptions{})
			require.NoError(t, err)
			assert.Equal(t, algonrrd.TypeUint16, typ)
			assert.Equal(t, algonrrd.BoundaryWrap, req.Boundary)
			assert.Equal(t, algonrrd.CenterNode, req.Center)
			assert.Equal(t, algonrrd.TypeFloat32, req.TypeOut)
			assert.Equal(t, 4.0, req.Pad)
			assert.False(t, req.Renormalize)
			assert.True(t, req.Round)
			assert.True(t, req.Clamp)

			require.Len(t, req.Axes, 3)
			assert.Equal(t, "bccubic:1,0,0.5", req.Axes[0].Kernel.String())
			assert.Equal(t, 5, req.Axes[0].Samples)
			assert.True(t, req.Axes[1].Kernel.IsZero())
			assert.Equal(t, algonrrd.AxisRequest{
				Kernel:  algonrrd.NewKernelSpec(algonrrd.KernelGaussian, 1, 3),
				Samples: 6,
				Min:     0.5,
				Max:     1.5,
			}, req.Axes[2])
		})
	}
}

func TestDecodeJobErrors(t *testing.T) {
	t.Parallel()

	_, err := decodeJob(strings.NewReader("inptu: x\n"), "yaml")
	require.Error(t, err)

	_, err = decodeJob(strings.NewReader("inptu = \"x\"\n"), "toml")
	require.Error(t, err)

	_, err = decodeJob(strings.NewReader("{}"), "json")
	require.ErrorIs(t, err, errJobFormat)

	bad := []struct {
		j    job
		want error
	}{
		{job{Type: "complex", Sizes: []int{2}}, algonrrd.ErrInvalidType},
		{job{Type: "block", Sizes: []int{2}}, algonrrd.ErrInvalidType},
		{job{Type: "uint8", Sizes: []int{2}, Boundary: "clamp"}, algonrrd.ErrInvalidBoundary},
		{job{Type: "uint8", Sizes: []int{2}, Center: "middle"}, algonrrd.ErrInvalidCenter},
		{job{Type: "uint8", Sizes: []int{2}, Axes: []jobAxis{{}, {}}}, algonrrd.ErrShapeMismatch},
		{job{Type: "uint8", Sizes: []int{2}, Axes: []jobAxis{{Kernel: "bogus"}}}, algonrrd.ErrUnknownKernel},
	}

	for _, tt := range bad {
		_, _, err := tt.j.request(algonrrd.ParseOptions{})
		assert.ErrorIs(t, err, tt.want, "%+v", tt.j)
	}
}

func TestResampleFlags(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in, out := filepath.Join(dir, "in.raw"), filepath.Join(dir, "out.raw")
	require.NoError(t, os.WriteFile(in, bytes.Repeat([]byte{100}, 8), 0o600))

	_, err := run(t, "resample", "-i", in, "-o", out, "-t", "uint8", "-s", "4,2", "-k", "box,-", "--samples-out", "3")
	require.NoError(t, err)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, bytes.Repeat([]byte{100}, 6), got)

	_, err = run(t, "resample", "-i", in, "-t", "uint8", "-s", "4,2")
	require.ErrorIs(t, err, errNoIO)

	_, err = run(t, "resample", "-i", in, "-o", out, "-t", "uint8", "-s", "4,3")
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)

	_, err = run(t, "resample", "-i", in, "-o", out, "-t", "uint8", "-s", "7")
	require.ErrorIs(t, err, errTrailingData)
}

func TestResampleJobFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in, out := filepath.Join(dir, "in.raw"), filepath.Join(dir, "out.raw")

	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, []float32{0, 1, 2, 3}))
	require.NoError(t, os.WriteFile(in, buf.Bytes(), 0o600))

	jobPath := filepath.Join(dir, "job.toml")
	text := fmt.Sprintf(`input = %q
output = %q
type = "float32"
sizes = [4]
center = "node"
precision = "float32"

[[axes]]
kernel = "tent"
samples = 7
`, in, out)
	require.NoError(t, os.WriteFile(jobPath, []byte(text), 0o600))

	_, err := run(t, "resample", "--job", jobPath, "--log-level", "warn")
	require.NoError(t, err)

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Len(t, raw, 7*4)

	got := make([]float32, 7)
	require.NoError(t, binary.Read(bytes.NewReader(raw), binary.LittleEndian, got))
	assert.Equal(t, []float32{0, 0.5, 1, 1.5, 2, 2.5, 3}, got)
}

func TestRawRoundTrip(t *testing.T) {
	t.Parallel()

	a, err := algonrrd.Wrap([]int16{-2, 7, math.MaxInt16}, 3)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeRaw(&buf, a))
	assert.Equal(t, []byte{0xfe, 0xff, 7, 0, 0xff, 0x7f}, buf.Bytes())

	b, err := algonrrd.NewArray(algonrrd.TypeInt16, 3)
	require.NoError(t, err)
	require.NoError(t, readRaw(&buf, b))
	assert.Equal(t, a.Data, b.Data)
}

func TestBench(t *testing.T) {
	t.Parallel()

	out, err := run(t, "bench", "--bench-sizes", "8,8", "--iters", "2", "--kernel", "tent", "--precision", "float32")
	require.NoError(t, err)
	assert.Contains(t, out, "cpu: ")
	assert.Contains(t, out, "tent:1")
	assert.Contains(t, out, "[8 8] -> [12 12]")
	assert.Contains(t, out, "passes=2")

	_, err = run(t, "bench", "--iters", "0")
	require.ErrorIs(t, err, errBenchConfig)
}
