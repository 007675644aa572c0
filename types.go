package simd128

import "math"

// Int32x4 is a 128-bit register of four signed 32-bit integer lanes.
// Index order is lane order: v[0] is lane 0, the least significant.
type Int32x4 [4]int32

// Int64x2 is a 128-bit register of two signed 64-bit integer lanes.
type Int64x2 [2]int64

// Float32x4 is a 128-bit register of four IEEE-754 binary32 lanes.
type Float32x4 [4]float32

// Float64x2 is a 128-bit register of two IEEE-754 binary64 lanes.
type Float64x2 [2]float64

// Mask32x4 is the result of a 32-bit integer lane comparison. Each lane
// is all-ones (true) or all-zeros (false); any other bit pattern
// violates the mask invariant and yields unspecified blend results.
type Mask32x4 [4]uint32

// Mask64x2 is the result of a 64-bit integer lane comparison.
type Mask64x2 [2]uint64

// MaskF32x4 is the result of a float32 lane comparison.
type MaskF32x4 [4]uint32

// MaskF64x2 is the result of a float64 lane comparison.
type MaskF64x2 [2]uint64

// BitEqual reports whether v and w hold the identical 128-bit pattern.
func (v Int32x4) BitEqual(w Int32x4) bool { return v == w }

// BitEqual reports whether v and w hold the identical 128-bit pattern.
func (v Int64x2) BitEqual(w Int64x2) bool { return v == w }

// BitEqual reports whether v and w hold the identical 128-bit pattern.
// Unlike Equal it distinguishes the signed zeros and treats lanes with
// the same NaN payload as equal.
func (v Float32x4) BitEqual(w Float32x4) bool {
	for i := range v {
		if math.Float32bits(v[i]) != math.Float32bits(w[i]) {
			return false
		}
	}
	return true
}

// BitEqual reports whether v and w hold the identical 128-bit pattern.
// Unlike Equal it distinguishes the signed zeros and treats lanes with
// the same NaN payload as equal.
func (v Float64x2) BitEqual(w Float64x2) bool {
	for i := range v {
		if math.Float64bits(v[i]) != math.Float64bits(w[i]) {
			return false
		}
	}
	return true
}

// BitEqual reports whether the masks hold the identical bit pattern.
func (m Mask32x4) BitEqual(w Mask32x4) bool { return m == w }

// BitEqual reports whether the masks hold the identical bit pattern.
func (m Mask64x2) BitEqual(w Mask64x2) bool { return m == w }

// BitEqual reports whether the masks hold the identical bit pattern.
func (m MaskF32x4) BitEqual(w MaskF32x4) bool { return m == w }

// BitEqual reports whether the masks hold the identical bit pattern.
func (m MaskF64x2) BitEqual(w MaskF64x2) bool { return m == w }
