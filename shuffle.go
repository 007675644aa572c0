package simd128

// Shuffle permutes lanes by constant selectors: result lane i is input
// lane s_i. Selectors are masked to the lane-index range, so any int is
// accepted. The selector order follows lane order (s0 picks lane 0 of
// the result), which packs into the hardware immediate as
// s0 | s1<<2 | s2<<4 | s3<<6; the identity shuffle is (0, 1, 2, 3).

// Shuffle returns {v[s0&3], v[s1&3], v[s2&3], v[s3&3]}.
func (v Int32x4) Shuffle(s0, s1, s2, s3 int) Int32x4 {
	sel := uint8(s0&3) | uint8(s1&3)<<2 | uint8(s2&3)<<4 | uint8(s3&3)<<6
	return Int32x4(shuffleLanes32([4]int32(v), sel))
}

// Shuffle returns {v[s0&3], v[s1&3], v[s2&3], v[s3&3]}.
func (v Float32x4) Shuffle(s0, s1, s2, s3 int) Float32x4 {
	sel := uint8(s0&3) | uint8(s1&3)<<2 | uint8(s2&3)<<4 | uint8(s3&3)<<6
	return Float32x4(shuffleLanes32([4]float32(v), sel))
}

// Shuffle returns {v[s0&1], v[s1&1]}.
func (v Int64x2) Shuffle(s0, s1 int) Int64x2 {
	return Int64x2{v[s0&1], v[s1&1]}
}

// Shuffle returns {v[s0&1], v[s1&1]}.
func (v Float64x2) Shuffle(s0, s1 int) Float64x2 {
	return Float64x2{v[s0&1], v[s1&1]}
}
