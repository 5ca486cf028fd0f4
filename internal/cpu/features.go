// Package cpu reports the host features relevant to scanline parallelism and
// provides padding for per-worker counters.
package cpu

import (
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// Features describes the host as seen by the resampling engine.
type Features struct {
	HasSSE2      bool
	HasAVX       bool
	HasAVX2      bool
	HasAVX512    bool
	HasFMA       bool
	HasNEON      bool
	Architecture string
	NumCPU       int
}

// DetectFeatures reports the available CPU features for the current process.
func DetectFeatures() Features {
	return Features{
		HasSSE2:      cpu.X86.HasSSE2,
		HasAVX:       cpu.X86.HasAVX,
		HasAVX2:      cpu.X86.HasAVX2,
		HasAVX512:    cpu.X86.HasAVX512F,
		HasFMA:       cpu.X86.HasFMA,
		HasNEON:      cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
		NumCPU:       runtime.NumCPU(),
	}
}

// String lists the detected vector extensions, e.g. "amd64 sse2,avx,avx2".
func (f Features) String() string {
	var ext []string

	for _, e := range []struct {
		ok   bool
		name string
	}{
		{f.HasSSE2, "sse2"},
		{f.HasAVX, "avx"},
		{f.HasAVX2, "avx2"},
		{f.HasAVX512, "avx512"},
		{f.HasFMA, "fma"},
		{f.HasNEON, "neon"},
	} {
		if e.ok {
			ext = append(ext, e.name)
		}
	}

	if len(ext) == 0 {
		return f.Architecture + " generic"
	}

	return f.Architecture + " " + strings.Join(ext, ",")
}

// DefaultWorkers is the scanline worker count used when none is configured.
func DefaultWorkers() int {
	return runtime.GOMAXPROCS(0)
}

// Counter is an int64 padded to its own cache line so that per-worker
// counters in a slice do not share lines.
type Counter struct {
	_ cpu.CacheLinePad
	N int64
	_ cpu.CacheLinePad
}
