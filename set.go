package simd128

import "math"

// Constructors, lane access and contiguous-memory interop. Loads and
// stores have no alignment requirement; lane 0 maps to the lowest
// slice index. Load and Store panic if the slice is shorter than the
// lane count.

// ZeroInt32x4 returns a register with all lanes zero.
func ZeroInt32x4() Int32x4 { return Int32x4{} }

// ZeroInt64x2 returns a register with all lanes zero.
func ZeroInt64x2() Int64x2 { return Int64x2{} }

// ZeroFloat32x4 returns a register with all lanes positive zero.
func ZeroFloat32x4() Float32x4 { return Float32x4{} }

// ZeroFloat64x2 returns a register with all lanes positive zero.
func ZeroFloat64x2() Float64x2 { return Float64x2{} }

// SplatInt32x4 broadcasts x to all four lanes.
func SplatInt32x4(x int32) Int32x4 { return Int32x4{x, x, x, x} }

// SplatInt64x2 broadcasts x to both lanes.
func SplatInt64x2(x int64) Int64x2 { return Int64x2{x, x} }

// SplatFloat32x4 broadcasts x to all four lanes.
func SplatFloat32x4(x float32) Float32x4 { return Float32x4{x, x, x, x} }

// SplatFloat64x2 broadcasts x to both lanes.
func SplatFloat64x2(x float64) Float64x2 { return Float64x2{x, x} }

// Float32x4FromBits builds a register from raw lane bit patterns, for
// injecting NaN payloads or mask-shaped values.
func Float32x4FromBits(b0, b1, b2, b3 uint32) Float32x4 {
	return Float32x4{
		math.Float32frombits(b0),
		math.Float32frombits(b1),
		math.Float32frombits(b2),
		math.Float32frombits(b3),
	}
}

// Float64x2FromBits builds a register from raw lane bit patterns.
func Float64x2FromBits(b0, b1 uint64) Float64x2 {
	return Float64x2{
		math.Float64frombits(b0),
		math.Float64frombits(b1),
	}
}

// Mask32x4Of builds a valid mask from per-lane booleans.
func Mask32x4Of(l0, l1, l2, l3 bool) Mask32x4 {
	var m Mask32x4
	for i, b := range [4]bool{l0, l1, l2, l3} {
		if b {
			m[i] = ^uint32(0)
		}
	}
	return m
}

// Mask64x2Of builds a valid mask from per-lane booleans.
func Mask64x2Of(l0, l1 bool) Mask64x2 {
	var m Mask64x2
	for i, b := range [2]bool{l0, l1} {
		if b {
			m[i] = ^uint64(0)
		}
	}
	return m
}

// MaskF32x4Of builds a valid mask from per-lane booleans.
func MaskF32x4Of(l0, l1, l2, l3 bool) MaskF32x4 {
	return MaskF32x4(Mask32x4Of(l0, l1, l2, l3))
}

// MaskF64x2Of builds a valid mask from per-lane booleans.
func MaskF64x2Of(l0, l1 bool) MaskF64x2 {
	return MaskF64x2(Mask64x2Of(l0, l1))
}

// LoadInt32x4 loads four lanes from src, lane 0 from src[0].
func LoadInt32x4(src []int32) Int32x4 {
	if len(src) < 4 {
		panic("simd128: slice too short")
	}
	return Int32x4{src[0], src[1], src[2], src[3]}
}

// LoadInt64x2 loads two lanes from src, lane 0 from src[0].
func LoadInt64x2(src []int64) Int64x2 {
	if len(src) < 2 {
		panic("simd128: slice too short")
	}
	return Int64x2{src[0], src[1]}
}

// LoadFloat32x4 loads four lanes from src, lane 0 from src[0].
func LoadFloat32x4(src []float32) Float32x4 {
	if len(src) < 4 {
		panic("simd128: slice too short")
	}
	return Float32x4{src[0], src[1], src[2], src[3]}
}

// LoadFloat64x2 loads two lanes from src, lane 0 from src[0].
func LoadFloat64x2(src []float64) Float64x2 {
	if len(src) < 2 {
		panic("simd128: slice too short")
	}
	return Float64x2{src[0], src[1]}
}

// Store writes the lanes to dst, lane 0 to dst[0].
func (v Int32x4) Store(dst []int32) {
	if len(dst) < 4 {
		panic("simd128: slice too short")
	}
	copy(dst[:4], v[:])
}

// Store writes the lanes to dst, lane 0 to dst[0].
func (v Int64x2) Store(dst []int64) {
	if len(dst) < 2 {
		panic("simd128: slice too short")
	}
	copy(dst[:2], v[:])
}

// Store writes the lanes to dst, lane 0 to dst[0].
func (v Float32x4) Store(dst []float32) {
	if len(dst) < 4 {
		panic("simd128: slice too short")
	}
	copy(dst[:4], v[:])
}

// Store writes the lanes to dst, lane 0 to dst[0].
func (v Float64x2) Store(dst []float64) {
	if len(dst) < 2 {
		panic("simd128: slice too short")
	}
	copy(dst[:2], v[:])
}

// Lane returns lane i. Panics if i is out of range.
func (v Int32x4) Lane(i int) int32 { return v[i] }

// Lane returns lane i. Panics if i is out of range.
func (v Int64x2) Lane(i int) int64 { return v[i] }

// Lane returns lane i. Panics if i is out of range.
func (v Float32x4) Lane(i int) float32 { return v[i] }

// Lane returns lane i. Panics if i is out of range.
func (v Float64x2) Lane(i int) float64 { return v[i] }

// Lane reports whether mask lane i is true.
func (m Mask32x4) Lane(i int) bool { return m[i] != 0 }

// Lane reports whether mask lane i is true.
func (m Mask64x2) Lane(i int) bool { return m[i] != 0 }

// Lane reports whether mask lane i is true.
func (m MaskF32x4) Lane(i int) bool { return m[i] != 0 }

// Lane reports whether mask lane i is true.
func (m MaskF64x2) Lane(i int) bool { return m[i] != 0 }

// WithLane returns v with lane i replaced by x.
func (v Int32x4) WithLane(i int, x int32) Int32x4 {
	v[i] = x
	return v
}

// WithLane returns v with lane i replaced by x.
func (v Int64x2) WithLane(i int, x int64) Int64x2 {
	v[i] = x
	return v
}

// WithLane returns v with lane i replaced by x.
func (v Float32x4) WithLane(i int, x float32) Float32x4 {
	v[i] = x
	return v
}

// WithLane returns v with lane i replaced by x.
func (v Float64x2) WithLane(i int, x float64) Float64x2 {
	v[i] = x
	return v
}
