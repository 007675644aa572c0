package simd128

// Shifts by immediate amount and by per-lane vector amount. Amounts at
// or above the lane width yield zero for left and logical-right shifts
// and the sign fill for arithmetic right shifts; negative per-lane
// counts are treated as out of range the same way.

// ShiftLeft shifts every lane left by n, filling with zeros.
func (v Int32x4) ShiftLeft(n uint) Int32x4 {
	return Int32x4{v[0] << n, v[1] << n, v[2] << n, v[3] << n}
}

// ShiftRightLogical shifts every lane right by n, filling with zeros.
func (v Int32x4) ShiftRightLogical(n uint) Int32x4 {
	return Int32x4{
		int32(uint32(v[0]) >> n), int32(uint32(v[1]) >> n),
		int32(uint32(v[2]) >> n), int32(uint32(v[3]) >> n),
	}
}

// ShiftRightArithmetic shifts every lane right by n, filling with the
// sign bit.
func (v Int32x4) ShiftRightArithmetic(n uint) Int32x4 {
	return Int32x4{v[0] >> n, v[1] >> n, v[2] >> n, v[3] >> n}
}

// ShiftLeft shifts every lane left by n, filling with zeros.
func (v Int64x2) ShiftLeft(n uint) Int64x2 {
	return Int64x2{v[0] << n, v[1] << n}
}

// ShiftRightLogical shifts every lane right by n, filling with zeros.
func (v Int64x2) ShiftRightLogical(n uint) Int64x2 {
	return Int64x2{int64(uint64(v[0]) >> n), int64(uint64(v[1]) >> n)}
}

// ShiftRightArithmetic shifts every lane right by n, filling with the
// sign bit. SSE2 has no packed 64-bit arithmetic right shift; that
// backend dispatches over the amount and ORs sign bits into a logical
// shift (see internal/arch/sse2).
func (v Int64x2) ShiftRightArithmetic(n uint) Int64x2 {
	return Int64x2(shiftRightArithInt64([2]int64(v), n))
}

// ShiftLeftEach shifts lane i left by counts lane i.
func (v Int32x4) ShiftLeftEach(counts Int32x4) Int32x4 {
	var r Int32x4
	for i := range r {
		if n := counts[i]; n >= 0 && n < 32 {
			r[i] = v[i] << uint(n)
		}
	}
	return r
}

// ShiftRightLogicalEach shifts lane i right by counts lane i, filling
// with zeros.
func (v Int32x4) ShiftRightLogicalEach(counts Int32x4) Int32x4 {
	var r Int32x4
	for i := range r {
		if n := counts[i]; n >= 0 && n < 32 {
			r[i] = int32(uint32(v[i]) >> uint(n))
		}
	}
	return r
}

// ShiftRightArithmeticEach shifts lane i right by counts lane i,
// filling with the sign bit; out-of-range counts produce the sign fill.
func (v Int32x4) ShiftRightArithmeticEach(counts Int32x4) Int32x4 {
	var r Int32x4
	for i := range r {
		n := counts[i]
		if n < 0 || n > 31 {
			n = 31
		}
		r[i] = v[i] >> uint(n)
	}
	return r
}

// ShiftLeftEach shifts lane i left by counts lane i.
func (v Int64x2) ShiftLeftEach(counts Int64x2) Int64x2 {
	var r Int64x2
	for i := range r {
		if n := counts[i]; n >= 0 && n < 64 {
			r[i] = v[i] << uint(n)
		}
	}
	return r
}

// ShiftRightLogicalEach shifts lane i right by counts lane i, filling
// with zeros.
func (v Int64x2) ShiftRightLogicalEach(counts Int64x2) Int64x2 {
	var r Int64x2
	for i := range r {
		if n := counts[i]; n >= 0 && n < 64 {
			r[i] = int64(uint64(v[i]) >> uint(n))
		}
	}
	return r
}

// ShiftRightArithmeticEach shifts lane i right by counts lane i,
// filling with the sign bit; out-of-range counts produce the sign fill.
func (v Int64x2) ShiftRightArithmeticEach(counts Int64x2) Int64x2 {
	var r Int64x2
	for i := range r {
		n := counts[i]
		if n < 0 || n > 63 {
			n = 63
		}
		r[i] = v[i] >> uint(n)
	}
	return r
}
