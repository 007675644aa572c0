package simd128

// Six relational predicates per vector kind, each producing the mask
// kind of matching width: a lane is all-ones when the predicate holds
// and all-zeros otherwise. Float comparisons are IEEE: +0 equals -0,
// and every ordered predicate is false when a lane holds NaN (so
// NotEqual is true there).

func mask32(b bool) uint32 {
	if b {
		return ^uint32(0)
	}
	return 0
}

func mask64(b bool) uint64 {
	if b {
		return ^uint64(0)
	}
	return 0
}

// Less returns the per-lane v < w mask.
func (v Int32x4) Less(w Int32x4) Mask32x4 {
	return Mask32x4{mask32(v[0] < w[0]), mask32(v[1] < w[1]), mask32(v[2] < w[2]), mask32(v[3] < w[3])}
}

// LessEqual returns the per-lane v <= w mask.
func (v Int32x4) LessEqual(w Int32x4) Mask32x4 {
	return Mask32x4{mask32(v[0] <= w[0]), mask32(v[1] <= w[1]), mask32(v[2] <= w[2]), mask32(v[3] <= w[3])}
}

// Equal returns the per-lane v == w mask.
func (v Int32x4) Equal(w Int32x4) Mask32x4 {
	return Mask32x4{mask32(v[0] == w[0]), mask32(v[1] == w[1]), mask32(v[2] == w[2]), mask32(v[3] == w[3])}
}

// NotEqual returns the per-lane v != w mask.
func (v Int32x4) NotEqual(w Int32x4) Mask32x4 {
	return Mask32x4{mask32(v[0] != w[0]), mask32(v[1] != w[1]), mask32(v[2] != w[2]), mask32(v[3] != w[3])}
}

// GreaterEqual returns the per-lane v >= w mask.
func (v Int32x4) GreaterEqual(w Int32x4) Mask32x4 {
	return Mask32x4{mask32(v[0] >= w[0]), mask32(v[1] >= w[1]), mask32(v[2] >= w[2]), mask32(v[3] >= w[3])}
}

// Greater returns the per-lane v > w mask.
func (v Int32x4) Greater(w Int32x4) Mask32x4 {
	return Mask32x4{mask32(v[0] > w[0]), mask32(v[1] > w[1]), mask32(v[2] > w[2]), mask32(v[3] > w[3])}
}

// Equal returns the per-lane v == w mask. SSE2 has no 64-bit equality;
// that backend composes it from a 32-bit compare, a half-swapping
// shuffle and an AND (see internal/arch/sse2).
func (v Int64x2) Equal(w Int64x2) Mask64x2 {
	return Mask64x2(cmpEqInt64([2]int64(v), [2]int64(w)))
}

// NotEqual returns the per-lane v != w mask.
func (v Int64x2) NotEqual(w Int64x2) Mask64x2 {
	return v.Equal(w).Not()
}

// Less returns the per-lane v < w mask. Ordered 64-bit comparison has
// no SSE2 instruction; it is lane extraction on that backend too.
func (v Int64x2) Less(w Int64x2) Mask64x2 {
	return Mask64x2{mask64(v[0] < w[0]), mask64(v[1] < w[1])}
}

// LessEqual returns the per-lane v <= w mask.
func (v Int64x2) LessEqual(w Int64x2) Mask64x2 {
	return Mask64x2{mask64(v[0] <= w[0]), mask64(v[1] <= w[1])}
}

// GreaterEqual returns the per-lane v >= w mask.
func (v Int64x2) GreaterEqual(w Int64x2) Mask64x2 {
	return Mask64x2{mask64(v[0] >= w[0]), mask64(v[1] >= w[1])}
}

// Greater returns the per-lane v > w mask.
func (v Int64x2) Greater(w Int64x2) Mask64x2 {
	return Mask64x2{mask64(v[0] > w[0]), mask64(v[1] > w[1])}
}

// Less returns the per-lane v < w mask; false for NaN lanes.
func (v Float32x4) Less(w Float32x4) MaskF32x4 {
	return MaskF32x4{mask32(v[0] < w[0]), mask32(v[1] < w[1]), mask32(v[2] < w[2]), mask32(v[3] < w[3])}
}

// LessEqual returns the per-lane v <= w mask; false for NaN lanes.
func (v Float32x4) LessEqual(w Float32x4) MaskF32x4 {
	return MaskF32x4{mask32(v[0] <= w[0]), mask32(v[1] <= w[1]), mask32(v[2] <= w[2]), mask32(v[3] <= w[3])}
}

// Equal returns the per-lane v == w mask. +0 equals -0; NaN lanes
// compare unequal, including to themselves.
func (v Float32x4) Equal(w Float32x4) MaskF32x4 {
	return MaskF32x4{mask32(v[0] == w[0]), mask32(v[1] == w[1]), mask32(v[2] == w[2]), mask32(v[3] == w[3])}
}

// NotEqual returns the per-lane v != w mask; true for NaN lanes.
func (v Float32x4) NotEqual(w Float32x4) MaskF32x4 {
	return MaskF32x4{mask32(v[0] != w[0]), mask32(v[1] != w[1]), mask32(v[2] != w[2]), mask32(v[3] != w[3])}
}

// GreaterEqual returns the per-lane v >= w mask; false for NaN lanes.
func (v Float32x4) GreaterEqual(w Float32x4) MaskF32x4 {
	return MaskF32x4{mask32(v[0] >= w[0]), mask32(v[1] >= w[1]), mask32(v[2] >= w[2]), mask32(v[3] >= w[3])}
}

// Greater returns the per-lane v > w mask; false for NaN lanes.
func (v Float32x4) Greater(w Float32x4) MaskF32x4 {
	return MaskF32x4{mask32(v[0] > w[0]), mask32(v[1] > w[1]), mask32(v[2] > w[2]), mask32(v[3] > w[3])}
}

// Less returns the per-lane v < w mask; false for NaN lanes.
func (v Float64x2) Less(w Float64x2) MaskF64x2 {
	return MaskF64x2{mask64(v[0] < w[0]), mask64(v[1] < w[1])}
}

// LessEqual returns the per-lane v <= w mask; false for NaN lanes.
func (v Float64x2) LessEqual(w Float64x2) MaskF64x2 {
	return MaskF64x2{mask64(v[0] <= w[0]), mask64(v[1] <= w[1])}
}

// Equal returns the per-lane v == w mask. +0 equals -0; NaN lanes
// compare unequal, including to themselves.
func (v Float64x2) Equal(w Float64x2) MaskF64x2 {
	return MaskF64x2{mask64(v[0] == w[0]), mask64(v[1] == w[1])}
}

// NotEqual returns the per-lane v != w mask; true for NaN lanes.
func (v Float64x2) NotEqual(w Float64x2) MaskF64x2 {
	return MaskF64x2{mask64(v[0] != w[0]), mask64(v[1] != w[1])}
}

// GreaterEqual returns the per-lane v >= w mask; false for NaN lanes.
func (v Float64x2) GreaterEqual(w Float64x2) MaskF64x2 {
	return MaskF64x2{mask64(v[0] >= w[0]), mask64(v[1] >= w[1])}
}

// Greater returns the per-lane v > w mask; false for NaN lanes.
func (v Float64x2) Greater(w Float64x2) MaskF64x2 {
	return MaskF64x2{mask64(v[0] > w[0]), mask64(v[1] > w[1])}
}
