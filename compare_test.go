package simd128

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-simd128/internal/arch/generic"
	"github.com/cwbudde/algo-simd128/internal/arch/sse2"
)

func TestInt32x4Compare(t *testing.T) {
	a := Int32x4{1, 5, -3, 0}
	b := Int32x4{2, 5, -4, 0}
	if got, want := a.Less(b), Mask32x4Of(true, false, false, false); got != want {
		t.Errorf("Less: got %v, want %v", got, want)
	}
	if got, want := a.LessEqual(b), Mask32x4Of(true, true, false, true); got != want {
		t.Errorf("LessEqual: got %v, want %v", got, want)
	}
	if got, want := a.Equal(b), Mask32x4Of(false, true, false, true); got != want {
		t.Errorf("Equal: got %v, want %v", got, want)
	}
	if got, want := a.NotEqual(b), Mask32x4Of(true, false, true, false); got != want {
		t.Errorf("NotEqual: got %v, want %v", got, want)
	}
	if got, want := a.GreaterEqual(b), Mask32x4Of(false, true, true, true); got != want {
		t.Errorf("GreaterEqual: got %v, want %v", got, want)
	}
	if got, want := a.Greater(b), Mask32x4Of(false, false, true, false); got != want {
		t.Errorf("Greater: got %v, want %v", got, want)
	}
}

// The SSE2 64-bit equality is composed from 32-bit halves; values that
// agree in one half but not the other are the regression surface.
func TestEqualInt64Strategies(t *testing.T) {
	vals := []int64{
		0, 1, -1, math.MaxInt64, math.MinInt64,
		1 << 32, -1 << 32, 0x00000001_00000000, 0x00000000_00000001,
		0x12345678_9ABCDEF0, 0x12345678_00000000, 0x00000000_9ABCDEF0,
		-0x12345678_9ABCDEF0,
	}
	for _, x := range vals {
		for _, y := range vals {
			a := [2]int64{x, y}
			b := [2]int64{y, y}
			g := generic.EqualInt64(a, b)
			s := sse2.EqualInt64(a, b)
			if g != s {
				t.Fatalf("EqualInt64(%#x,%#x): generic %v, sse2 %v", x, y, g, s)
			}
			wantLane0 := uint64(0)
			if x == y {
				wantLane0 = ^uint64(0)
			}
			if g[0] != wantLane0 || g[1] != ^uint64(0) {
				t.Fatalf("EqualInt64(%#x,%#x): got %v", x, y, g)
			}
		}
	}
}

func TestInt64x2Compare(t *testing.T) {
	a := Int64x2{-1, 1 << 40}
	b := Int64x2{-1, 1}
	if got, want := a.Equal(b), Mask64x2Of(true, false); got != want {
		t.Errorf("Equal: got %v, want %v", got, want)
	}
	if got, want := a.NotEqual(b), Mask64x2Of(false, true); got != want {
		t.Errorf("NotEqual: got %v, want %v", got, want)
	}
	if got, want := a.Less(b), Mask64x2Of(false, false); got != want {
		t.Errorf("Less: got %v, want %v", got, want)
	}
	if got, want := a.Greater(b), Mask64x2Of(false, true); got != want {
		t.Errorf("Greater: got %v, want %v", got, want)
	}
}

func TestFloatCompareNaN(t *testing.T) {
	nan := float32(math.NaN())
	a := Float32x4{nan, 1, nan, 0}
	b := Float32x4{nan, nan, 2, 0}

	// Every ordered predicate is false on a NaN lane.
	if got := a.Less(b); got != MaskF32x4Of(false, false, false, false) {
		t.Errorf("Less: got %v", got)
	}
	if got := a.LessEqual(b); got != MaskF32x4Of(false, false, false, true) {
		t.Errorf("LessEqual: got %v", got)
	}
	if got := a.Equal(b); got != MaskF32x4Of(false, false, false, true) {
		t.Errorf("Equal: got %v", got)
	}
	// NotEqual is the one predicate true on NaN lanes.
	if got := a.NotEqual(b); got != MaskF32x4Of(true, true, true, false) {
		t.Errorf("NotEqual: got %v", got)
	}
	if got := a.GreaterEqual(b); got != MaskF32x4Of(false, false, false, true) {
		t.Errorf("GreaterEqual: got %v", got)
	}
}

func TestFloatCompareSignedZero(t *testing.T) {
	pz := Float32x4{0, 0, 1, -1}
	nz := Float32x4FromBits(0x80000000, 0, math.Float32bits(1), math.Float32bits(-1))
	if got := pz.Equal(nz); got != MaskF32x4Of(true, true, true, true) {
		t.Errorf("+0 == -0 should hold: got %v", got)
	}
	if got := pz.Less(nz); got.AnyTrue() {
		t.Errorf("+0 < -0 should be false: got %v", got)
	}

	d := Float64x2{0, 2.5}
	dn := Float64x2FromBits(1<<63, math.Float64bits(2.5))
	if got := d.Equal(dn); !got.AllTrue() {
		t.Errorf("float64 +0 == -0: got %v", got)
	}
}

func TestFloat64x2CompareNaN(t *testing.T) {
	nan := math.NaN()
	a := Float64x2{nan, 1}
	if got := a.Equal(a); got != MaskF64x2Of(false, true) {
		t.Errorf("NaN != NaN even against itself: got %v", got)
	}
	if got := a.NotEqual(a); got != MaskF64x2Of(true, false) {
		t.Errorf("NotEqual: got %v", got)
	}
}
