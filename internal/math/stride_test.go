package math

import "testing"

func TestScanlines(t *testing.T) {
	t.Parallel()

	sizes := []int{3, 4, 5}

	tests := []struct {
		ax           int
		inner, outer int
	}{
		{0, 1, 20},
		{1, 3, 5},
		{2, 12, 1},
	}

	for _, tt := range tests {
		inner, outer := Scanlines(sizes, tt.ax)
		if inner != tt.inner || outer != tt.outer {
			t.Errorf("Scanlines(%v, %d) = (%d,%d), want (%d,%d)", sizes, tt.ax, inner, outer, tt.inner, tt.outer)
		}
	}
}

func TestProduct(t *testing.T) {
	t.Parallel()

	if got := Product(nil); got != 0 {
		t.Fatalf("Product(nil) = %d, want 0", got)
	}

	if got := Product([]int{2, 3, 7}); got != 42 {
		t.Fatalf("Product = %d, want 42", got)
	}
}

func TestMulOverflows(t *testing.T) {
	t.Parallel()

	maxInt := int(^uint(0) >> 1)

	if MulOverflows([]int{1 << 10, 1 << 10}) {
		t.Fatal("small product reported as overflow")
	}

	if !MulOverflows([]int{maxInt/2 + 1, 2}) {
		t.Fatal("overflowing product not detected")
	}
}
