package simd128

import (
	"math"
	"testing"
)

// End-to-end scenarios with literal inputs, exercising the public API
// paths that cross backend strategies. Every result here is required to
// be bit-identical on all backends.

func TestScenarioShuffleReverse(t *testing.T) {
	got := Int32x4{0, 1, 2, 3}.Shuffle(3, 2, 1, 0)
	if want := (Int32x4{3, 2, 1, 0}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestScenarioConvertHalfTies(t *testing.T) {
	if got, want := SplatFloat32x4(2.5).ConvertToInt32(), SplatInt32x4(2); got != want {
		t.Errorf("2.5: got %v, want %v", got, want)
	}
	if got, want := SplatFloat32x4(-2.5).ConvertToInt32(), SplatInt32x4(-2); got != want {
		t.Errorf("-2.5: got %v, want %v", got, want)
	}
}

func TestScenarioSignedMultiply(t *testing.T) {
	got := Int32x4{-1, -5, -11, -17}.Mul(Int32x4{2, 3, 7, 13})
	if want := (Int32x4{-2, -15, -77, -221}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestScenarioArithmeticShift64(t *testing.T) {
	got := Int64x2{-4, -2}.ShiftRightArithmetic(1)
	if want := (Int64x2{-2, -1}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestScenarioSafeDivFloat(t *testing.T) {
	a := SplatFloat32x4(8)
	b := Float32x4{4, 0, float32(math.Copysign(0, -1)), 4}
	got := a.SafeDiv(b)
	if want := (Float32x4{2, 8, 8, 2}); !got.BitEqual(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

// 64-bit equality through a 32-bit bitcast: lanes that match in only
// one 32-bit half must compare unequal.
func TestScenarioEqual64HalfMatches(t *testing.T) {
	a := Int32x4{7, 7, 8, 8}.AsInt64x2()
	b := Int32x4{8, 7, 7, 8}.AsInt64x2()
	got := a.Equal(b)
	if want := Mask64x2Of(false, false); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
