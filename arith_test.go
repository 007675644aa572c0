package simd128

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-simd128/internal/arch/generic"
	"github.com/cwbudde/algo-simd128/internal/arch/sse2"
)

func TestInt32x4AddSubWrap(t *testing.T) {
	a := Int32x4{math.MaxInt32, math.MinInt32, 1, -1}
	b := Int32x4{1, -1, 2, 3}
	if got, want := a.Add(b), (Int32x4{math.MinInt32, math.MaxInt32, 3, 2}); got != want {
		t.Errorf("Add: got %v, want %v", got, want)
	}
	if got, want := a.Sub(b), (Int32x4{math.MaxInt32 - 1, math.MinInt32 + 1, -1, -4}); got != want {
		t.Errorf("Sub: got %v, want %v", got, want)
	}
}

func TestInt32x4Mul(t *testing.T) {
	a := Int32x4{-17, -11, -5, -1}
	b := Int32x4{13, 7, 3, 2}
	want := Int32x4{-221, -77, -15, -2}
	if got := a.Mul(b); got != want {
		t.Errorf("Mul: got %v, want %v", got, want)
	}
}

// The SSE2 strategy splits signs and recombines pmuludq halves; it must
// match the plain wrapping multiply for every sign and magnitude
// combination, including the asymmetric minimum.
func TestMulInt32Strategies(t *testing.T) {
	vals := []int32{0, 1, -1, 2, -2, 3, 7, -13, 4096, -4097,
		math.MaxInt32, math.MinInt32, math.MinInt32 + 1, 0x7FFF, -0x8000,
		123456789, -987654321}
	for _, x := range vals {
		for _, y := range vals {
			a := [4]int32{x, y, x, y}
			b := [4]int32{y, x, x, y}
			g := generic.MulInt32(a, b)
			s := sse2.MulInt32(a, b)
			if g != s {
				t.Fatalf("MulInt32(%d,%d): generic %v, sse2 %v", x, y, g, s)
			}
			if g[0] != x*y {
				t.Fatalf("MulInt32(%d,%d): got %d, want %d", x, y, g[0], x*y)
			}
		}
	}
}

func TestInt64x2MulWrap(t *testing.T) {
	a := Int64x2{math.MaxInt64, -3}
	b := Int64x2{2, 5}
	if got, want := a.Mul(b), (Int64x2{-2, -15}); got != want {
		t.Errorf("Mul: got %v, want %v", got, want)
	}
}

func TestIntDivPanicsOnZero(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Div by zero lane did not panic")
		}
	}()
	Int32x4{1, 2, 3, 4}.Div(Int32x4{1, 0, 1, 1})
}

func TestSafeDiv(t *testing.T) {
	t.Run("int32", func(t *testing.T) {
		a := Int32x4{8, 9, -12, 5}
		b := Int32x4{2, 0, 3, 0}
		if got, want := a.SafeDiv(b), (Int32x4{4, 9, -4, 5}); got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		// Non-zero divisors agree with Div.
		c := Int32x4{2, 3, 3, 5}
		if got, want := a.SafeDiv(c), a.Div(c); got != want {
			t.Errorf("nonzero: got %v, want %v", got, want)
		}
	})
	t.Run("int64", func(t *testing.T) {
		a := Int64x2{100, -7}
		if got, want := a.SafeDiv(Int64x2{0, 2}), (Int64x2{100, -3}); got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	})
	t.Run("float32", func(t *testing.T) {
		a := Float32x4{8, 8, 8, 8}
		b := Float32x4{4, 0, float32(math.Copysign(0, -1)), 4}
		want := Float32x4{2, 8, 8, 2}
		if got := a.SafeDiv(b); !got.BitEqual(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})
	t.Run("float64", func(t *testing.T) {
		a := Float64x2{9, 9}
		b := Float64x2{3, math.Copysign(0, -1)}
		if got, want := a.SafeDiv(b), (Float64x2{3, 9}); !got.BitEqual(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})
}

func TestIntNegAbsEdges(t *testing.T) {
	v := Int32x4{math.MinInt32, -5, 0, 7}
	if got, want := v.Neg(), (Int32x4{math.MinInt32, 5, 0, -7}); got != want {
		t.Errorf("Neg: got %v, want %v", got, want)
	}
	if got, want := v.Abs(), (Int32x4{math.MinInt32, 5, 0, 7}); got != want {
		t.Errorf("Abs: got %v, want %v", got, want)
	}
	w := Int64x2{math.MinInt64, -9}
	if got, want := w.Abs(), (Int64x2{math.MinInt64, 9}); got != want {
		t.Errorf("Abs64: got %v, want %v", got, want)
	}
}

func TestFloatNegSignedZero(t *testing.T) {
	v := Float32x4{0, float32(math.Copysign(0, -1)), 1.5, -1.5}
	got := v.Neg()
	want := Float32x4FromBits(0x80000000, 0, math.Float32bits(-1.5), math.Float32bits(1.5))
	if !got.BitEqual(want) {
		t.Errorf("Neg: got %#v, want %#v", got, want)
	}

	d := Float64x2{0, -2.5}
	if gotd, wantd := d.Neg(), Float64x2FromBits(1<<63, math.Float64bits(2.5)); !gotd.BitEqual(wantd) {
		t.Errorf("Neg64: got %#v, want %#v", gotd, wantd)
	}
}

func TestFloatAbs(t *testing.T) {
	v := Float32x4{-1.5, float32(math.Copysign(0, -1)), float32(math.Inf(-1)), 2}
	want := Float32x4{1.5, 0, float32(math.Inf(1)), 2}
	if got := v.Abs(); !got.BitEqual(want) {
		t.Errorf("Abs: got %v, want %v", got, want)
	}
}

func TestMulAdd(t *testing.T) {
	a := Float32x4{2, 3, -4, 0.5}
	b := Float32x4{5, 7, 2, 8}
	c := Float32x4{1, -1, 0, 0.25}
	got := a.MulAdd(b, c)
	for i := range got {
		want := fmaFloat32(a[i], b[i], c[i])
		if got[i] != want {
			t.Errorf("lane %d: got %v, want %v", i, got[i], want)
		}
	}

	// On exactly representable products every backend agrees.
	if got[0] != 11 || got[1] != 20 || got[2] != -8 || got[3] != 4.25 {
		t.Errorf("exact products: got %v", got)
	}
}

func TestFloatDivByZero(t *testing.T) {
	v := Float64x2{1, 0}
	got := v.Div(Float64x2{0, 0})
	if !math.IsInf(got[0], 1) {
		t.Errorf("1/0: got %v, want +Inf", got[0])
	}
	if !math.IsNaN(got[1]) {
		t.Errorf("0/0: got %v, want NaN", got[1])
	}
}
