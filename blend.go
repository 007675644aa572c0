package simd128

// Lane selection. IfThenElse picks the yes lane where the mask lane is
// true and the no lane where it is false; IfThenElseZero blends against
// zero, which reduces to a single AND of bit patterns. Masks violating
// the all-ones/all-zeros invariant give unspecified results.

// IfThenElse returns yes lanes where m is true and no lanes elsewhere.
func (m Mask32x4) IfThenElse(yes, no Int32x4) Int32x4 {
	var r Int32x4
	for i := range r {
		r[i] = int32(uint32(yes[i])&m[i] | uint32(no[i])&^m[i])
	}
	return r
}

// IfThenElseZero returns yes lanes where m is true and zero elsewhere.
func (m Mask32x4) IfThenElseZero(yes Int32x4) Int32x4 {
	var r Int32x4
	for i := range r {
		r[i] = int32(uint32(yes[i]) & m[i])
	}
	return r
}

// IfThenElse returns yes lanes where m is true and no lanes elsewhere.
func (m Mask64x2) IfThenElse(yes, no Int64x2) Int64x2 {
	var r Int64x2
	for i := range r {
		r[i] = int64(uint64(yes[i])&m[i] | uint64(no[i])&^m[i])
	}
	return r
}

// IfThenElseZero returns yes lanes where m is true and zero elsewhere.
func (m Mask64x2) IfThenElseZero(yes Int64x2) Int64x2 {
	var r Int64x2
	for i := range r {
		r[i] = int64(uint64(yes[i]) & m[i])
	}
	return r
}

// IfThenElse returns yes lanes where m is true and no lanes elsewhere.
// The blend is bitwise, so NaN payloads and signed zeros pass through.
func (m MaskF32x4) IfThenElse(yes, no Float32x4) Float32x4 {
	y, n := yes.words(), no.words()
	var w [4]uint32
	for i := range w {
		w[i] = y[i]&m[i] | n[i]&^m[i]
	}
	return float32x4FromWords(w)
}

// IfThenElseZero returns yes lanes where m is true and +0 elsewhere.
func (m MaskF32x4) IfThenElseZero(yes Float32x4) Float32x4 {
	y := yes.words()
	var w [4]uint32
	for i := range w {
		w[i] = y[i] & m[i]
	}
	return float32x4FromWords(w)
}

// IfThenElse returns yes lanes where m is true and no lanes elsewhere.
// The blend is bitwise, so NaN payloads and signed zeros pass through.
func (m MaskF64x2) IfThenElse(yes, no Float64x2) Float64x2 {
	y := yes.AsInt64x2()
	n := no.AsInt64x2()
	var r Int64x2
	for i := range r {
		r[i] = int64(uint64(y[i])&m[i] | uint64(n[i])&^m[i])
	}
	return r.AsFloat64x2()
}

// IfThenElseZero returns yes lanes where m is true and +0 elsewhere.
func (m MaskF64x2) IfThenElseZero(yes Float64x2) Float64x2 {
	y := yes.AsInt64x2()
	var r Int64x2
	for i := range r {
		r[i] = int64(uint64(y[i]) & m[i])
	}
	return r.AsFloat64x2()
}
