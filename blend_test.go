package simd128

import (
	"math"
	"testing"
)

func TestIfThenElseInt32x4(t *testing.T) {
	m := Mask32x4Of(true, false, false, true)
	yes := Int32x4{1, 2, 3, 4}
	no := Int32x4{-1, -2, -3, -4}
	if got, want := m.IfThenElse(yes, no), (Int32x4{1, -2, -3, 4}); got != want {
		t.Errorf("IfThenElse: got %v, want %v", got, want)
	}
	if got, want := m.IfThenElseZero(yes), (Int32x4{1, 0, 0, 4}); got != want {
		t.Errorf("IfThenElseZero: got %v, want %v", got, want)
	}
}

func TestIfThenElseInt64x2(t *testing.T) {
	m := Mask64x2Of(false, true)
	if got, want := m.IfThenElse(Int64x2{1, 2}, Int64x2{-1, -2}), (Int64x2{-1, 2}); got != want {
		t.Errorf("IfThenElse: got %v, want %v", got, want)
	}
	if got, want := m.IfThenElseZero(Int64x2{7, 8}), (Int64x2{0, 8}); got != want {
		t.Errorf("IfThenElseZero: got %v, want %v", got, want)
	}
}

// The float blend is bitwise, so NaN payloads and signed zeros must
// survive selection untouched.
func TestIfThenElseFloatBitExact(t *testing.T) {
	nanPayload := uint32(0x7FC00123)
	yes := Float32x4FromBits(nanPayload, 0x80000000, math.Float32bits(1.5), 0)
	no := Float32x4{9, 9, 9, 9}
	m := MaskF32x4Of(true, true, false, true)

	got := m.IfThenElse(yes, no)
	want := Float32x4FromBits(nanPayload, 0x80000000, math.Float32bits(9), 0)
	if !got.BitEqual(want) {
		t.Errorf("IfThenElse: got %#v, want %#v", got, want)
	}

	gotZ := m.IfThenElseZero(yes)
	wantZ := Float32x4FromBits(nanPayload, 0x80000000, 0, 0)
	if !gotZ.BitEqual(wantZ) {
		t.Errorf("IfThenElseZero: got %#v, want %#v", gotZ, wantZ)
	}
}

func TestIfThenElseFloat64x2(t *testing.T) {
	m := MaskF64x2Of(true, false)
	yes := Float64x2FromBits(1<<63, math.Float64bits(3.5))
	no := Float64x2{7, 7}
	got := m.IfThenElse(yes, no)
	want := Float64x2FromBits(1<<63, math.Float64bits(7))
	if !got.BitEqual(want) {
		t.Errorf("IfThenElse: got %#v, want %#v", got, want)
	}
	if gotZ, wantZ := m.IfThenElseZero(no), (Float64x2{7, 0}); !gotZ.BitEqual(wantZ) {
		t.Errorf("IfThenElseZero: got %#v, want %#v", gotZ, wantZ)
	}
}
