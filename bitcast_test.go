package simd128

import (
	"math"
	"testing"
)

// Same-width bitcast pairs must be exact inverses at the bit level.
func TestBitcastRoundTrips(t *testing.T) {
	i32 := Int32x4{math.MinInt32, -1, 0, math.MaxInt32}
	if got := i32.AsInt64x2().AsInt32x4(); got != i32 {
		t.Errorf("int32->int64->int32: got %v, want %v", got, i32)
	}
	if got := i32.AsFloat32x4().AsInt32x4(); got != i32 {
		t.Errorf("int32->float32->int32: got %v, want %v", got, i32)
	}
	if got := i32.AsFloat64x2().AsInt32x4(); got != i32 {
		t.Errorf("int32->float64->int32: got %v, want %v", got, i32)
	}

	// NaN payloads and signed zeros survive the float routes.
	f32 := Float32x4FromBits(0x7FC00001, 0x80000000, 0xFF800000, 0x00000001)
	if got := f32.AsInt32x4().AsFloat32x4(); !got.BitEqual(f32) {
		t.Errorf("float32 round trip lost bits: got %#v", got)
	}
	if got := f32.AsInt64x2().AsFloat32x4(); !got.BitEqual(f32) {
		t.Errorf("float32->int64 round trip lost bits: got %#v", got)
	}

	f64 := Float64x2FromBits(0x7FF8000000000001, 1<<63)
	if got := f64.AsInt64x2().AsFloat64x2(); !got.BitEqual(f64) {
		t.Errorf("float64 round trip lost bits: got %#v", got)
	}
	if got := f64.AsInt32x4().AsFloat64x2(); !got.BitEqual(f64) {
		t.Errorf("float64->int32 round trip lost bits: got %#v", got)
	}
}

// Width-changing integer casts repartition bytes little-endian: the low
// 32-bit lane of a pair is the low half of the 64-bit lane.
func TestBitcastWidthPacking(t *testing.T) {
	v := Int32x4{0x11111111, 0x22222222, 0x33333333, 0x44444444}
	got := v.AsInt64x2()
	want := Int64x2{0x22222222_11111111, 0x44444444_33333333}
	if got != want {
		t.Errorf("AsInt64x2: got %#x, want %#x", got, want)
	}
	if back := got.AsInt32x4(); back != v {
		t.Errorf("AsInt32x4: got %#x, want %#x", back, v)
	}
}

func TestBitcastFloatIntSameBits(t *testing.T) {
	f := Float32x4{1.5, -2.25, 0, -0.0}
	got := f.AsInt32x4()
	for i := range got {
		if uint32(got[i]) != math.Float32bits(f[i]) {
			t.Errorf("lane %d: got %#x, want %#x", i, uint32(got[i]), math.Float32bits(f[i]))
		}
	}

	d := Float64x2{math.Pi, -math.E}
	gotd := d.AsInt64x2()
	for i := range gotd {
		if uint64(gotd[i]) != math.Float64bits(d[i]) {
			t.Errorf("lane %d: got %#x, want %#x", i, uint64(gotd[i]), math.Float64bits(d[i]))
		}
	}
}

func TestMaskBitcasts(t *testing.T) {
	m := Mask32x4Of(true, true, false, false)
	if got := MaskF32x4(m).AsMask32x4(); got != m {
		t.Errorf("float mask round trip: got %v, want %v", got, m)
	}

	// Halves that agree within each 64-bit lane stay valid masks.
	if got, want := m.AsMask64x2(), Mask64x2Of(true, false); got != want {
		t.Errorf("AsMask64x2: got %v, want %v", got, want)
	}
	w := Mask64x2Of(false, true)
	if got, want := w.AsMask32x4(), Mask32x4Of(false, false, true, true); got != want {
		t.Errorf("AsMask32x4: got %v, want %v", got, want)
	}
	if got := m.AsMask64x2().AsMask32x4(); got != m {
		t.Errorf("mask width round trip: got %v, want %v", got, m)
	}
}
