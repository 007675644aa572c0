package simd128

import (
	"math"
	"testing"
)

func TestConstructors(t *testing.T) {
	if ZeroInt32x4() != (Int32x4{}) || ZeroInt64x2() != (Int64x2{}) {
		t.Error("integer zero constructors")
	}
	if !ZeroFloat32x4().BitEqual(Float32x4{}) || !ZeroFloat64x2().BitEqual(Float64x2{}) {
		t.Error("float zero constructors")
	}
	if got := SplatInt32x4(-7); got != (Int32x4{-7, -7, -7, -7}) {
		t.Errorf("SplatInt32x4: got %v", got)
	}
	if got := SplatFloat64x2(2.5); got != (Float64x2{2.5, 2.5}) {
		t.Errorf("SplatFloat64x2: got %v", got)
	}
}

func TestFromBits(t *testing.T) {
	v := Float32x4FromBits(0x3FC00000, 0x80000000, 0x7FC00001, 0)
	if v[0] != 1.5 {
		t.Errorf("lane 0: got %v, want 1.5", v[0])
	}
	if math.Float32bits(v[1]) != 0x80000000 {
		t.Errorf("lane 1 lost -0")
	}
	if math.Float32bits(v[2]) != 0x7FC00001 {
		t.Errorf("lane 2 lost NaN payload")
	}

	d := Float64x2FromBits(math.Float64bits(-0.5), 1<<63)
	if d[0] != -0.5 || math.Float64bits(d[1]) != 1<<63 {
		t.Errorf("Float64x2FromBits: got %#v", d)
	}
}

func TestLoadStore(t *testing.T) {
	src := []int32{1, 2, 3, 4, 5}
	v := LoadInt32x4(src)
	if v != (Int32x4{1, 2, 3, 4}) {
		t.Errorf("LoadInt32x4: got %v", v)
	}

	dst := make([]int32, 5)
	dst[4] = 99
	v.Store(dst)
	if dst[0] != 1 || dst[3] != 4 || dst[4] != 99 {
		t.Errorf("Store: got %v", dst)
	}

	f := LoadFloat64x2([]float64{0.5, -0.5})
	out := make([]float64, 2)
	f.Store(out)
	if out[0] != 0.5 || out[1] != -0.5 {
		t.Errorf("float64 load/store: got %v", out)
	}
}

func TestLoadPanicsOnShortSlice(t *testing.T) {
	cases := []struct {
		name string
		fn   func()
	}{
		{"LoadInt32x4", func() { LoadInt32x4([]int32{1, 2, 3}) }},
		{"LoadInt64x2", func() { LoadInt64x2([]int64{1}) }},
		{"LoadFloat32x4", func() { LoadFloat32x4(nil) }},
		{"LoadFloat64x2", func() { LoadFloat64x2([]float64{1}) }},
		{"Store", func() { Int32x4{}.Store(make([]int32, 3)) }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			c.fn()
		})
	}
}

func TestLaneAccess(t *testing.T) {
	v := Int32x4{10, 20, 30, 40}
	if v.Lane(0) != 10 || v.Lane(3) != 40 {
		t.Errorf("Lane: got %d, %d", v.Lane(0), v.Lane(3))
	}

	w := v.WithLane(2, -1)
	if w != (Int32x4{10, 20, -1, 40}) {
		t.Errorf("WithLane: got %v", w)
	}
	// The receiver is unchanged.
	if v.Lane(2) != 30 {
		t.Errorf("WithLane mutated receiver: %v", v)
	}

	m := Mask64x2Of(true, false)
	if !m.Lane(0) || m.Lane(1) {
		t.Errorf("mask Lane: got %v, %v", m.Lane(0), m.Lane(1))
	}
}
