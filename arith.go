package simd128

import "math"

// Integer add, subtract and multiply wrap modulo 2^W. Float arithmetic
// follows IEEE-754 round-to-nearest-even. Integer Div exposes the host
// division and panics on a zero divisor; SafeDiv is the total variant.

// Add returns the per-lane sum, wrapping on overflow.
func (v Int32x4) Add(w Int32x4) Int32x4 {
	return Int32x4{v[0] + w[0], v[1] + w[1], v[2] + w[2], v[3] + w[3]}
}

// Sub returns the per-lane difference, wrapping on overflow.
func (v Int32x4) Sub(w Int32x4) Int32x4 {
	return Int32x4{v[0] - w[0], v[1] - w[1], v[2] - w[2], v[3] - w[3]}
}

// Mul returns the per-lane product, wrapping modulo 2^32.
func (v Int32x4) Mul(w Int32x4) Int32x4 {
	return Int32x4(mulInt32([4]int32(v), [4]int32(w)))
}

// Div returns the per-lane quotient, truncated toward zero. Panics on a
// zero divisor; use SafeDiv when the divisor may be zero.
func (v Int32x4) Div(w Int32x4) Int32x4 {
	return Int32x4{v[0] / w[0], v[1] / w[1], v[2] / w[2], v[3] / w[3]}
}

// SafeDiv divides per lane, passing the dividend lane through unchanged
// wherever the divisor lane is zero. Equivalent to dividing by 1 in
// those lanes, so a later mask select can discard the result without
// any division fault having occurred.
func (v Int32x4) SafeDiv(w Int32x4) Int32x4 {
	var r Int32x4
	for i := range r {
		if w[i] == 0 {
			r[i] = v[i]
		} else {
			r[i] = v[i] / w[i]
		}
	}
	return r
}

// Neg returns the per-lane negation (subtract from zero); the minimum
// value wraps to itself.
func (v Int32x4) Neg() Int32x4 {
	return Int32x4{-v[0], -v[1], -v[2], -v[3]}
}

// Abs returns the per-lane absolute value; Abs of the minimum value
// wraps to itself.
func (v Int32x4) Abs() Int32x4 {
	var r Int32x4
	for i := range r {
		if v[i] < 0 {
			r[i] = -v[i]
		} else {
			r[i] = v[i]
		}
	}
	return r
}

// Add returns the per-lane sum, wrapping on overflow.
func (v Int64x2) Add(w Int64x2) Int64x2 {
	return Int64x2{v[0] + w[0], v[1] + w[1]}
}

// Sub returns the per-lane difference, wrapping on overflow.
func (v Int64x2) Sub(w Int64x2) Int64x2 {
	return Int64x2{v[0] - w[0], v[1] - w[1]}
}

// Mul returns the per-lane product, wrapping modulo 2^64. Neither SSE2
// nor NEON has a packed 64-bit multiply; every backend extracts,
// multiplies as host integers and reinserts.
func (v Int64x2) Mul(w Int64x2) Int64x2 {
	return Int64x2{v[0] * w[0], v[1] * w[1]}
}

// Div returns the per-lane quotient, truncated toward zero. Panics on a
// zero divisor; use SafeDiv when the divisor may be zero.
func (v Int64x2) Div(w Int64x2) Int64x2 {
	return Int64x2{v[0] / w[0], v[1] / w[1]}
}

// SafeDiv divides per lane, passing the dividend lane through unchanged
// wherever the divisor lane is zero.
func (v Int64x2) SafeDiv(w Int64x2) Int64x2 {
	var r Int64x2
	for i := range r {
		if w[i] == 0 {
			r[i] = v[i]
		} else {
			r[i] = v[i] / w[i]
		}
	}
	return r
}

// Neg returns the per-lane negation (subtract from zero); the minimum
// value wraps to itself.
func (v Int64x2) Neg() Int64x2 { return Int64x2{-v[0], -v[1]} }

// Abs returns the per-lane absolute value; Abs of the minimum value
// wraps to itself.
func (v Int64x2) Abs() Int64x2 {
	var r Int64x2
	for i := range r {
		if v[i] < 0 {
			r[i] = -v[i]
		} else {
			r[i] = v[i]
		}
	}
	return r
}

// Add returns the per-lane IEEE-754 sum.
func (v Float32x4) Add(w Float32x4) Float32x4 {
	return Float32x4{v[0] + w[0], v[1] + w[1], v[2] + w[2], v[3] + w[3]}
}

// Sub returns the per-lane IEEE-754 difference.
func (v Float32x4) Sub(w Float32x4) Float32x4 {
	return Float32x4{v[0] - w[0], v[1] - w[1], v[2] - w[2], v[3] - w[3]}
}

// Mul returns the per-lane IEEE-754 product.
func (v Float32x4) Mul(w Float32x4) Float32x4 {
	return Float32x4{v[0] * w[0], v[1] * w[1], v[2] * w[2], v[3] * w[3]}
}

// Div returns the per-lane IEEE-754 quotient (signed infinity for x/0,
// NaN for 0/0).
func (v Float32x4) Div(w Float32x4) Float32x4 {
	return Float32x4{v[0] / w[0], v[1] / w[1], v[2] / w[2], v[3] / w[3]}
}

// SafeDiv divides per lane, passing the dividend lane through unchanged
// wherever the divisor lane is zero of either sign.
func (v Float32x4) SafeDiv(w Float32x4) Float32x4 {
	var r Float32x4
	for i := range r {
		if w[i] == 0 {
			r[i] = v[i]
		} else {
			r[i] = v[i] / w[i]
		}
	}
	return r
}

// MulAdd returns v*w + a per lane. The NEON backend fuses (single
// rounding, as fmla does); SSE2 and generic use a separate multiply and
// add. The difference is at most one ULP and is part of the contract.
func (v Float32x4) MulAdd(w, a Float32x4) Float32x4 {
	var r Float32x4
	for i := range r {
		r[i] = fmaFloat32(v[i], w[i], a[i])
	}
	return r
}

// Neg flips the sign bit of every lane, preserving signed-zero polarity
// (Neg of +0 is -0).
func (v Float32x4) Neg() Float32x4 {
	var r Float32x4
	for i := range r {
		r[i] = math.Float32frombits(math.Float32bits(v[i]) ^ 0x80000000)
	}
	return r
}

// Abs clears the sign bit of every lane; Abs of -0 is +0.
func (v Float32x4) Abs() Float32x4 {
	var r Float32x4
	for i := range r {
		r[i] = math.Float32frombits(math.Float32bits(v[i]) &^ 0x80000000)
	}
	return r
}

// Add returns the per-lane IEEE-754 sum.
func (v Float64x2) Add(w Float64x2) Float64x2 {
	return Float64x2{v[0] + w[0], v[1] + w[1]}
}

// Sub returns the per-lane IEEE-754 difference.
func (v Float64x2) Sub(w Float64x2) Float64x2 {
	return Float64x2{v[0] - w[0], v[1] - w[1]}
}

// Mul returns the per-lane IEEE-754 product.
func (v Float64x2) Mul(w Float64x2) Float64x2 {
	return Float64x2{v[0] * w[0], v[1] * w[1]}
}

// Div returns the per-lane IEEE-754 quotient (signed infinity for x/0,
// NaN for 0/0).
func (v Float64x2) Div(w Float64x2) Float64x2 {
	return Float64x2{v[0] / w[0], v[1] / w[1]}
}

// SafeDiv divides per lane, passing the dividend lane through unchanged
// wherever the divisor lane is zero of either sign.
func (v Float64x2) SafeDiv(w Float64x2) Float64x2 {
	var r Float64x2
	for i := range r {
		if w[i] == 0 {
			r[i] = v[i]
		} else {
			r[i] = v[i] / w[i]
		}
	}
	return r
}

// MulAdd returns v*w + a per lane. The NEON backend fuses; SSE2 and
// generic use a separate multiply and add.
func (v Float64x2) MulAdd(w, a Float64x2) Float64x2 {
	return Float64x2{fmaFloat64(v[0], w[0], a[0]), fmaFloat64(v[1], w[1], a[1])}
}

// Neg flips the sign bit of every lane, preserving signed-zero polarity.
func (v Float64x2) Neg() Float64x2 {
	return Float64x2{
		math.Float64frombits(math.Float64bits(v[0]) ^ (1 << 63)),
		math.Float64frombits(math.Float64bits(v[1]) ^ (1 << 63)),
	}
}

// Abs clears the sign bit of every lane; Abs of -0 is +0.
func (v Float64x2) Abs() Float64x2 {
	return Float64x2{
		math.Float64frombits(math.Float64bits(v[0]) &^ (1 << 63)),
		math.Float64frombits(math.Float64bits(v[1]) &^ (1 << 63)),
	}
}
