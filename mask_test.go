package simd128

import "testing"

// Masks from all 16 boolean patterns of a 4-lane mask.
func allMask32x4() []Mask32x4 {
	var ms []Mask32x4
	for bits := 0; bits < 16; bits++ {
		ms = append(ms, Mask32x4Of(bits&1 != 0, bits&2 != 0, bits&4 != 0, bits&8 != 0))
	}
	return ms
}

func TestMaskDeMorgan(t *testing.T) {
	for _, m1 := range allMask32x4() {
		for _, m2 := range allMask32x4() {
			if got, want := m1.And(m2), m1.Not().Or(m2.Not()).Not(); got != want {
				t.Fatalf("De Morgan: %v AND %v = %v, want %v", m1, m2, got, want)
			}
			if got, want := m1.Or(m2), m1.Not().And(m2.Not()).Not(); got != want {
				t.Fatalf("De Morgan: %v OR %v = %v, want %v", m1, m2, got, want)
			}
			// Xor is per-lane "not equal"; Equal is its complement.
			if got, want := m1.Equal(m2), m1.Xor(m2).Not(); got != want {
				t.Fatalf("Equal: got %v, want %v", got, want)
			}
			if got, want := m1.AndNot(m2), m1.Not().And(m2); got != want {
				t.Fatalf("AndNot: got %v, want %v", got, want)
			}
		}
	}
}

func TestMaskReductions(t *testing.T) {
	if !Mask32x4Of(true, true, true, true).AllTrue() {
		t.Error("AllTrue on full mask")
	}
	if Mask32x4Of(true, true, false, true).AllTrue() {
		t.Error("AllTrue on partial mask")
	}
	if !Mask32x4Of(false, false, true, false).AnyTrue() {
		t.Error("AnyTrue on partial mask")
	}
	if Mask32x4Of(false, false, false, false).AnyTrue() {
		t.Error("AnyTrue on empty mask")
	}
	if !Mask64x2Of(true, true).AllTrue() || Mask64x2Of(true, false).AllTrue() {
		t.Error("64-bit AllTrue")
	}
	if !Mask64x2Of(false, true).AnyTrue() || Mask64x2Of(false, false).AnyTrue() {
		t.Error("64-bit AnyTrue")
	}
}

func TestMaskWidthConversions(t *testing.T) {
	m := Mask32x4Of(true, false, true, true)
	// Only the low two lanes survive widening, each duplicated across
	// its 64-bit lane.
	if got, want := m.ToMask64x2(), Mask64x2Of(true, false); got != want {
		t.Errorf("ToMask64x2: got %v, want %v", got, want)
	}

	w := Mask64x2Of(false, true)
	if got, want := w.ToMask32x4(), Mask32x4Of(false, true, false, false); got != want {
		t.Errorf("ToMask32x4: got %v, want %v", got, want)
	}

	// Round trip through the wide kind preserves the low two lanes.
	if got, want := m.ToMask64x2().ToMask32x4(), Mask32x4Of(true, false, false, false); got != want {
		t.Errorf("round trip: got %v, want %v", got, want)
	}

	fm := MaskF32x4Of(true, true, false, false)
	if got, want := fm.ToMaskF64x2(), MaskF64x2Of(true, true); got != want {
		t.Errorf("ToMaskF64x2: got %v, want %v", got, want)
	}
	fw := MaskF64x2Of(true, false)
	if got, want := fw.ToMaskF32x4(), MaskF32x4Of(true, false, false, false); got != want {
		t.Errorf("ToMaskF32x4: got %v, want %v", got, want)
	}
}

func TestMaskFromCompareFeedsBlend(t *testing.T) {
	a := Int32x4{1, 5, 3, 9}
	b := Int32x4{4, 2, 3, 8}
	// max(a, b) via compare + blend.
	got := a.Greater(b).IfThenElse(a, b)
	if want := (Int32x4{4, 5, 3, 9}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
