package cpu

import (
	"runtime"
	"strings"
	"testing"
	"unsafe"
)

func TestDetectFeatures(t *testing.T) {
	t.Parallel()

	f := DetectFeatures()
	if f.Architecture != runtime.GOARCH {
		t.Fatalf("Architecture = %q, want %q", f.Architecture, runtime.GOARCH)
	}

	if f.NumCPU < 1 {
		t.Fatalf("NumCPU = %d", f.NumCPU)
	}

	if !strings.HasPrefix(f.String(), runtime.GOARCH) {
		t.Fatalf("String() = %q, want prefix %q", f.String(), runtime.GOARCH)
	}
}

func TestFeaturesStringGeneric(t *testing.T) {
	t.Parallel()

	f := Features{Architecture: "wasm"}
	if got := f.String(); got != "wasm generic" {
		t.Fatalf("String() = %q", got)
	}

	f.HasSSE2, f.HasAVX2 = true, true
	if got := f.String(); got != "wasm sse2,avx2" {
		t.Fatalf("String() = %q", got)
	}
}

func TestCounterPadding(t *testing.T) {
	t.Parallel()

	var c Counter
	if unsafe.Sizeof(c) <= unsafe.Sizeof(c.N) {
		t.Fatalf("Counter is not padded: %d bytes", unsafe.Sizeof(c))
	}
}

func TestTicksMonotonic(t *testing.T) {
	t.Parallel()

	start := Ticks()
	if TicksSince(start) < 0 {
		t.Fatal("TicksSince went backwards")
	}
}
