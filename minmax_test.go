package simd128

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-simd128/internal/arch/generic"
	"github.com/cwbudde/algo-simd128/internal/arch/sse2"
)

func TestIntMinMax(t *testing.T) {
	a := Int32x4{1, -5, math.MaxInt32, 0}
	b := Int32x4{2, -4, math.MinInt32, 0}
	if got, want := a.Min(b), (Int32x4{1, -5, math.MinInt32, 0}); got != want {
		t.Errorf("Min: got %v, want %v", got, want)
	}
	if got, want := a.Max(b), (Int32x4{2, -4, math.MaxInt32, 0}); got != want {
		t.Errorf("Max: got %v, want %v", got, want)
	}

	c := Int64x2{math.MinInt64, 7}
	d := Int64x2{-1, 7}
	if got, want := c.Min(d), (Int64x2{math.MinInt64, 7}); got != want {
		t.Errorf("Min64: got %v, want %v", got, want)
	}
	if got, want := c.Max(d), (Int64x2{-1, 7}); got != want {
		t.Errorf("Max64: got %v, want %v", got, want)
	}
}

func TestClamp(t *testing.T) {
	v := Int32x4{-10, 0, 5, 99}
	lo := SplatInt32x4(-2)
	hi := SplatInt32x4(7)
	if got, want := v.Clamp(lo, hi), (Int32x4{-2, 0, 5, 7}); got != want {
		t.Errorf("int Clamp: got %v, want %v", got, want)
	}

	f := Float64x2{-1.5, 3.25}
	if got, want := f.Clamp(SplatFloat64x2(0), SplatFloat64x2(1)), (Float64x2{0, 1}); !got.BitEqual(want) {
		t.Errorf("float Clamp: got %v, want %v", got, want)
	}
}

func TestFloatMinMaxFastOrderedValues(t *testing.T) {
	// On ordered, distinct values every backend agrees.
	a := Float32x4{1, -2, 3.5, -0.25}
	b := Float32x4{2, -3, 3.25, 0.25}
	if got, want := a.MinFast(b), (Float32x4{1, -3, 3.25, -0.25}); !got.BitEqual(want) {
		t.Errorf("MinFast: got %v, want %v", got, want)
	}
	if got, want := a.MaxFast(b), (Float32x4{2, -2, 3.5, 0.25}); !got.BitEqual(want) {
		t.Errorf("MaxFast: got %v, want %v", got, want)
	}
}

// The two strategy sets intentionally disagree on NaN and on
// opposite-signed-zero ties; each is pinned here.
func TestMinMaxStrategyRules(t *testing.T) {
	nan := float32(math.NaN())
	nz := float32(math.Copysign(0, -1))

	t.Run("sse2", func(t *testing.T) {
		// minps/maxps: the second operand wins whenever a < b (or a > b)
		// fails to hold, so NaN anywhere yields b.
		if got := sse2.MinFloat32(nan, 1); got != 1 {
			t.Errorf("Min(NaN, 1): got %v, want 1", got)
		}
		if got := sse2.MinFloat32(1, nan); !isNaN32(got) {
			t.Errorf("Min(1, NaN): got %v, want NaN", got)
		}
		if got := sse2.MinFloat32(nz, 0); math.Float32bits(got) != 0 {
			t.Errorf("Min(-0, +0): got %#x, want +0", math.Float32bits(got))
		}
	})

	t.Run("generic", func(t *testing.T) {
		// fmin/fmax: NaN propagates, -0 orders below +0.
		if got := generic.MinFloat32(nan, 1); !isNaN32(got) {
			t.Errorf("Min(NaN, 1): got %v, want NaN", got)
		}
		if got := generic.MinFloat32(1, nan); !isNaN32(got) {
			t.Errorf("Min(1, NaN): got %v, want NaN", got)
		}
		if got := generic.MinFloat32(nz, 0); math.Float32bits(got) != 0x80000000 {
			t.Errorf("Min(-0, +0): got %#x, want -0", math.Float32bits(got))
		}
		if got := generic.MaxFloat32(nz, 0); math.Float32bits(got) != 0 {
			t.Errorf("Max(-0, +0): got %#x, want +0", math.Float32bits(got))
		}
		if got := generic.MinFloat64(math.Copysign(0, -1), 0); !math.Signbit(got) {
			t.Errorf("Min64(-0, +0): got +0, want -0")
		}
		if got := generic.MaxFloat64(3, math.NaN()); !math.IsNaN(got) {
			t.Errorf("Max64(3, NaN): got %v, want NaN", got)
		}
	})
}

func isNaN32(x float32) bool { return x != x }

func TestRemoveSignedZero(t *testing.T) {
	nz := float32(math.Copysign(0, -1))
	v := Float32x4{nz, 0, -1.5, float32(math.NaN())}
	got := v.RemoveSignedZero()
	if math.Float32bits(got[0]) != 0 {
		t.Errorf("-0 not normalized: %#x", math.Float32bits(got[0]))
	}
	if math.Float32bits(got[1]) != 0 {
		t.Errorf("+0 changed: %#x", math.Float32bits(got[1]))
	}
	if got[2] != -1.5 {
		t.Errorf("ordinary value changed: %v", got[2])
	}
	if math.Float32bits(got[3]) != math.Float32bits(v[3]) {
		t.Errorf("NaN payload changed: %#x", math.Float32bits(got[3]))
	}

	d := Float64x2FromBits(1<<63, 0x7FF8000000000001)
	gotd := d.RemoveSignedZero()
	if math.Float64bits(gotd[0]) != 0 {
		t.Errorf("float64 -0 not normalized: %#x", math.Float64bits(gotd[0]))
	}
	if math.Float64bits(gotd[1]) != 0x7FF8000000000001 {
		t.Errorf("float64 NaN payload changed: %#x", math.Float64bits(gotd[1]))
	}
}
