package simd128

import "github.com/cwbudde/algo-simd128/internal/arch"

// Bitcasts reinterpret the 128-bit pattern under another kind without
// changing any bit. Width-changing casts repartition the bytes in
// little-endian order: the low 32-bit lane of a pair becomes the low
// half of the 64-bit lane. All casts funnel through a canonical
// four-word image so the packing rule lives in one place.

func (v Int32x4) words() [4]uint32 {
	return [4]uint32{uint32(v[0]), uint32(v[1]), uint32(v[2]), uint32(v[3])}
}

func (v Int64x2) words() [4]uint32 {
	return [4]uint32{
		uint32(uint64(v[0])), uint32(uint64(v[0]) >> 32),
		uint32(uint64(v[1])), uint32(uint64(v[1]) >> 32),
	}
}

func (v Float32x4) words() [4]uint32 {
	return [4]uint32{
		arch.U32FromF32(v[0]), arch.U32FromF32(v[1]),
		arch.U32FromF32(v[2]), arch.U32FromF32(v[3]),
	}
}

func (v Float64x2) words() [4]uint32 {
	b0 := arch.U64FromF64(v[0])
	b1 := arch.U64FromF64(v[1])
	return [4]uint32{uint32(b0), uint32(b0 >> 32), uint32(b1), uint32(b1 >> 32)}
}

func int32x4FromWords(w [4]uint32) Int32x4 {
	return Int32x4{int32(w[0]), int32(w[1]), int32(w[2]), int32(w[3])}
}

func int64x2FromWords(w [4]uint32) Int64x2 {
	return Int64x2{
		int64(uint64(w[0]) | uint64(w[1])<<32),
		int64(uint64(w[2]) | uint64(w[3])<<32),
	}
}

func float32x4FromWords(w [4]uint32) Float32x4 {
	return Float32x4{
		arch.F32FromU32(w[0]), arch.F32FromU32(w[1]),
		arch.F32FromU32(w[2]), arch.F32FromU32(w[3]),
	}
}

func float64x2FromWords(w [4]uint32) Float64x2 {
	return Float64x2{
		arch.F64FromU64(uint64(w[0]) | uint64(w[1])<<32),
		arch.F64FromU64(uint64(w[2]) | uint64(w[3])<<32),
	}
}

// AsInt64x2 reinterprets the bit pattern as two 64-bit integer lanes.
// This is not the sign-extending conversion; see ConvertToInt64.
func (v Int32x4) AsInt64x2() Int64x2 { return int64x2FromWords(v.words()) }

// AsFloat32x4 reinterprets the bit pattern as four float32 lanes.
func (v Int32x4) AsFloat32x4() Float32x4 { return float32x4FromWords(v.words()) }

// AsFloat64x2 reinterprets the bit pattern as two float64 lanes.
func (v Int32x4) AsFloat64x2() Float64x2 { return float64x2FromWords(v.words()) }

// AsInt32x4 reinterprets the bit pattern as four 32-bit integer lanes.
func (v Int64x2) AsInt32x4() Int32x4 { return int32x4FromWords(v.words()) }

// AsFloat32x4 reinterprets the bit pattern as four float32 lanes.
func (v Int64x2) AsFloat32x4() Float32x4 { return float32x4FromWords(v.words()) }

// AsFloat64x2 reinterprets the bit pattern as two float64 lanes.
func (v Int64x2) AsFloat64x2() Float64x2 { return float64x2FromWords(v.words()) }

// AsInt32x4 reinterprets the bit pattern as four 32-bit integer lanes.
func (v Float32x4) AsInt32x4() Int32x4 { return int32x4FromWords(v.words()) }

// AsInt64x2 reinterprets the bit pattern as two 64-bit integer lanes.
func (v Float32x4) AsInt64x2() Int64x2 { return int64x2FromWords(v.words()) }

// AsFloat64x2 reinterprets the bit pattern as two float64 lanes.
func (v Float32x4) AsFloat64x2() Float64x2 { return float64x2FromWords(v.words()) }

// AsInt32x4 reinterprets the bit pattern as four 32-bit integer lanes.
func (v Float64x2) AsInt32x4() Int32x4 { return int32x4FromWords(v.words()) }

// AsInt64x2 reinterprets the bit pattern as two 64-bit integer lanes.
func (v Float64x2) AsInt64x2() Int64x2 { return int64x2FromWords(v.words()) }

// AsFloat32x4 reinterprets the bit pattern as four float32 lanes.
func (v Float64x2) AsFloat32x4() Float32x4 { return float32x4FromWords(v.words()) }

// Mask bitcasts are bit identities as well. A width-changing bitcast of
// a mask whose 32-bit halves disagree yields an invalid mask; use the
// ToMask conversions for lane-width changes that preserve validity.

// AsMaskF32x4 reinterprets the mask for float32 comparisons.
func (m Mask32x4) AsMaskF32x4() MaskF32x4 { return MaskF32x4(m) }

// AsMask64x2 reinterprets the bit pattern as a 64-bit lane mask.
func (m Mask32x4) AsMask64x2() Mask64x2 {
	return Mask64x2{
		uint64(m[0]) | uint64(m[1])<<32,
		uint64(m[2]) | uint64(m[3])<<32,
	}
}

// AsMaskF64x2 reinterprets the bit pattern as a float64 lane mask.
func (m Mask32x4) AsMaskF64x2() MaskF64x2 { return MaskF64x2(m.AsMask64x2()) }

// AsMaskF64x2 reinterprets the mask for float64 comparisons.
func (m Mask64x2) AsMaskF64x2() MaskF64x2 { return MaskF64x2(m) }

// AsMask32x4 reinterprets the bit pattern as a 32-bit lane mask.
func (m Mask64x2) AsMask32x4() Mask32x4 {
	return Mask32x4{
		uint32(m[0]), uint32(m[0] >> 32),
		uint32(m[1]), uint32(m[1] >> 32),
	}
}

// AsMaskF32x4 reinterprets the bit pattern as a float32 lane mask.
func (m Mask64x2) AsMaskF32x4() MaskF32x4 { return MaskF32x4(m.AsMask32x4()) }

// AsMask32x4 reinterprets the mask for 32-bit integer comparisons.
func (m MaskF32x4) AsMask32x4() Mask32x4 { return Mask32x4(m) }

// AsMask64x2 reinterprets the bit pattern as a 64-bit lane mask.
func (m MaskF32x4) AsMask64x2() Mask64x2 { return Mask32x4(m).AsMask64x2() }

// AsMaskF64x2 reinterprets the bit pattern as a float64 lane mask.
func (m MaskF32x4) AsMaskF64x2() MaskF64x2 { return MaskF64x2(Mask32x4(m).AsMask64x2()) }

// AsMask64x2 reinterprets the mask for 64-bit integer comparisons.
func (m MaskF64x2) AsMask64x2() Mask64x2 { return Mask64x2(m) }

// AsMask32x4 reinterprets the bit pattern as a 32-bit lane mask.
func (m MaskF64x2) AsMask32x4() Mask32x4 { return Mask64x2(m).AsMask32x4() }

// AsMaskF32x4 reinterprets the bit pattern as a float32 lane mask.
func (m MaskF64x2) AsMaskF32x4() MaskF32x4 { return MaskF32x4(Mask64x2(m).AsMask32x4()) }
