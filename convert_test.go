package simd128

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-simd128/internal/arch/generic"
	"github.com/cwbudde/algo-simd128/internal/arch/sse2"
)

func TestConvertIntWidths(t *testing.T) {
	v := Int32x4{-1, math.MaxInt32, 5, 6}
	if got, want := v.ConvertToInt64(), (Int64x2{-1, math.MaxInt32}); got != want {
		t.Errorf("ConvertToInt64: got %v, want %v", got, want)
	}

	w := Int64x2{-1, 0x1_00000002}
	// Truncation keeps the low 32 bits; high lanes are zeroed.
	if got, want := w.ConvertToInt32(), (Int32x4{-1, 2, 0, 0}); got != want {
		t.Errorf("ConvertToInt32: got %v, want %v", got, want)
	}
}

func TestConvertIntToFloat(t *testing.T) {
	v := Int32x4{-3, 0, 7, 1 << 24}
	if got, want := v.ConvertToFloat32(), (Float32x4{-3, 0, 7, 1 << 24}); !got.BitEqual(want) {
		t.Errorf("ConvertToFloat32: got %v, want %v", got, want)
	}
	if got, want := v.ConvertToFloat64(), (Float64x2{-3, 0}); !got.BitEqual(want) {
		t.Errorf("ConvertToFloat64: got %v, want %v", got, want)
	}

	w := Int64x2{-10, 1 << 40}
	if got, want := w.ConvertToFloat64(), (Float64x2{-10, 1 << 40}); !got.BitEqual(want) {
		t.Errorf("64->float64: got %v, want %v", got, want)
	}
	if got, want := w.ConvertToFloat32(), (Float32x4{-10, 1 << 40, 0, 0}); !got.BitEqual(want) {
		t.Errorf("64->float32: got %v, want %v", got, want)
	}

	// Values needing more precision than the target mantissa round to
	// nearest even.
	odd := Int32x4{1<<24 + 1, 1<<24 + 3, 0, 0}
	got := odd.ConvertToFloat32()
	if got[0] != 1<<24 || got[1] != 1<<24+4 {
		t.Errorf("rounding: got %v, %v", got[0], got[1])
	}
}

func TestConvertTiesToEven(t *testing.T) {
	v := SplatFloat32x4(2.5)
	if got, want := v.ConvertToInt32(), SplatInt32x4(2); got != want {
		t.Errorf("2.5: got %v, want %v", got, want)
	}
	if got, want := v.Neg().ConvertToInt32(), SplatInt32x4(-2); got != want {
		t.Errorf("-2.5: got %v, want %v", got, want)
	}
	// 3.5 rounds away from zero; even neighbor is 4.
	if got, want := SplatFloat64x2(3.5).ConvertToInt64(), SplatInt64x2(4); got != want {
		t.Errorf("3.5: got %v, want %v", got, want)
	}
	if got, want := SplatFloat64x2(-0.5).ConvertToInt64(), SplatInt64x2(0); got != want {
		t.Errorf("-0.5: got %v, want %v", got, want)
	}
}

func TestTruncateAndFloor(t *testing.T) {
	v := Float32x4{2.9, -2.9, 0.5, -0.5}
	if got, want := v.TruncateToInt32(), (Int32x4{2, -2, 0, 0}); got != want {
		t.Errorf("Truncate: got %v, want %v", got, want)
	}
	if got, want := v.FloorToInt32(), (Int32x4{2, -3, 0, -1}); got != want {
		t.Errorf("Floor: got %v, want %v", got, want)
	}

	d := Float64x2{-7.25, 7.75}
	if got, want := d.TruncateToInt64(), (Int64x2{-7, 7}); got != want {
		t.Errorf("Truncate64: got %v, want %v", got, want)
	}
	if got, want := d.FloorToInt64(), (Int64x2{-8, 7}); got != want {
		t.Errorf("Floor64: got %v, want %v", got, want)
	}
	// Narrowing places results in the low lanes and zeroes the rest.
	if got, want := d.FloorToInt32(), (Int32x4{-8, 7, 0, 0}); got != want {
		t.Errorf("Floor64->32: got %v, want %v", got, want)
	}
}

// Representable integers survive a round trip through the float kind.
func TestConvertRoundTrip(t *testing.T) {
	ints := []int32{0, 1, -1, 1 << 23, -(1 << 23), 9999999, -9999999}
	for _, n := range ints {
		v := SplatInt32x4(n)
		if got := v.ConvertToFloat32().ConvertToInt32(); got != v {
			t.Errorf("%d: got %v", n, got)
		}
	}
	longs := []int64{0, -1, 1 << 50, -(1 << 50), math.MaxInt32}
	for _, n := range longs {
		v := SplatInt64x2(n)
		if got := v.ConvertToFloat64().ConvertToInt64(); got != v {
			t.Errorf("%d: got %v", n, got)
		}
	}
}

func TestConvertFloatWidths(t *testing.T) {
	d := Float64x2{1.5, -2.25}
	if got, want := d.ConvertToFloat32(), (Float32x4{1.5, -2.25, 0, 0}); !got.BitEqual(want) {
		t.Errorf("narrow: got %v, want %v", got, want)
	}

	f := Float32x4{0.5, -0.75, 99, 99}
	if got, want := f.ConvertToFloat64(), (Float64x2{0.5, -0.75}); !got.BitEqual(want) {
		t.Errorf("widen: got %v, want %v", got, want)
	}
}

// Out-of-range conversion is backend-defined; each strategy's rule is
// pinned on the kernel directly.
func TestConvertOutOfRangeKernels(t *testing.T) {
	big := 1e12
	nan := math.NaN()

	t.Run("sse2", func(t *testing.T) {
		if got := sse2.ConvertFloat64ToInt32(big); got != math.MinInt32 {
			t.Errorf("overflow: got %d, want sentinel", got)
		}
		if got := sse2.ConvertFloat64ToInt32(-big); got != math.MinInt32 {
			t.Errorf("underflow: got %d, want sentinel", got)
		}
		if got := sse2.ConvertFloat64ToInt32(nan); got != math.MinInt32 {
			t.Errorf("NaN: got %d, want sentinel", got)
		}
		if got := sse2.ConvertFloat64ToInt64(1e20); got != math.MinInt64 {
			t.Errorf("64 overflow: got %d, want sentinel", got)
		}
		if got := sse2.ConvertFloat64ToInt64(nan); got != math.MinInt64 {
			t.Errorf("64 NaN: got %d, want sentinel", got)
		}
	})

	t.Run("generic", func(t *testing.T) {
		if got := generic.ConvertFloat64ToInt32(big); got != math.MaxInt32 {
			t.Errorf("overflow: got %d, want saturation", got)
		}
		if got := generic.ConvertFloat64ToInt32(-big); got != math.MinInt32 {
			t.Errorf("underflow: got %d, want saturation", got)
		}
		if got := generic.ConvertFloat64ToInt32(nan); got != 0 {
			t.Errorf("NaN: got %d, want 0", got)
		}
		if got := generic.ConvertFloat64ToInt64(1e20); got != math.MaxInt64 {
			t.Errorf("64 overflow: got %d, want saturation", got)
		}
		if got := generic.ConvertFloat64ToInt64(-1e20); got != math.MinInt64 {
			t.Errorf("64 underflow: got %d, want saturation", got)
		}
		if got := generic.ConvertFloat64ToInt64(nan); got != 0 {
			t.Errorf("64 NaN: got %d, want 0", got)
		}
	})

	// In-range values agree across strategies.
	for _, x := range []float64{0, 1, -1, 2147483647, -2147483648, 1e9} {
		if g, s := generic.ConvertFloat64ToInt32(x), sse2.ConvertFloat64ToInt32(x); g != s {
			t.Errorf("in-range %v: generic %d, sse2 %d", x, g, s)
		}
	}
}
