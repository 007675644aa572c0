package simd128

// Boolean operations are defined on all eight kinds; on the float kinds
// they operate on the bit patterns and underpin the compare-and-blend
// masking idioms. AndNot follows the hardware convention: the receiver
// (first operand) is the one complemented, v.AndNot(w) = (^v) & w.

// And returns the per-lane bitwise AND.
func (v Int32x4) And(w Int32x4) Int32x4 {
	return Int32x4{v[0] & w[0], v[1] & w[1], v[2] & w[2], v[3] & w[3]}
}

// AndNot returns (^v) & w per lane.
func (v Int32x4) AndNot(w Int32x4) Int32x4 {
	return Int32x4{^v[0] & w[0], ^v[1] & w[1], ^v[2] & w[2], ^v[3] & w[3]}
}

// Or returns the per-lane bitwise OR.
func (v Int32x4) Or(w Int32x4) Int32x4 {
	return Int32x4{v[0] | w[0], v[1] | w[1], v[2] | w[2], v[3] | w[3]}
}

// Xor returns the per-lane bitwise XOR.
func (v Int32x4) Xor(w Int32x4) Int32x4 {
	return Int32x4{v[0] ^ w[0], v[1] ^ w[1], v[2] ^ w[2], v[3] ^ w[3]}
}

// Not returns the per-lane bitwise complement.
func (v Int32x4) Not() Int32x4 {
	return Int32x4{^v[0], ^v[1], ^v[2], ^v[3]}
}

// And returns the per-lane bitwise AND.
func (v Int64x2) And(w Int64x2) Int64x2 {
	return Int64x2{v[0] & w[0], v[1] & w[1]}
}

// AndNot returns (^v) & w per lane.
func (v Int64x2) AndNot(w Int64x2) Int64x2 {
	return Int64x2{^v[0] & w[0], ^v[1] & w[1]}
}

// Or returns the per-lane bitwise OR.
func (v Int64x2) Or(w Int64x2) Int64x2 {
	return Int64x2{v[0] | w[0], v[1] | w[1]}
}

// Xor returns the per-lane bitwise XOR.
func (v Int64x2) Xor(w Int64x2) Int64x2 {
	return Int64x2{v[0] ^ w[0], v[1] ^ w[1]}
}

// Not returns the per-lane bitwise complement.
func (v Int64x2) Not() Int64x2 { return Int64x2{^v[0], ^v[1]} }

// And combines the bit patterns with AND.
func (v Float32x4) And(w Float32x4) Float32x4 {
	a, b := v.words(), w.words()
	return float32x4FromWords([4]uint32{a[0] & b[0], a[1] & b[1], a[2] & b[2], a[3] & b[3]})
}

// AndNot combines the bit patterns as (^v) & w.
func (v Float32x4) AndNot(w Float32x4) Float32x4 {
	a, b := v.words(), w.words()
	return float32x4FromWords([4]uint32{^a[0] & b[0], ^a[1] & b[1], ^a[2] & b[2], ^a[3] & b[3]})
}

// Or combines the bit patterns with OR.
func (v Float32x4) Or(w Float32x4) Float32x4 {
	a, b := v.words(), w.words()
	return float32x4FromWords([4]uint32{a[0] | b[0], a[1] | b[1], a[2] | b[2], a[3] | b[3]})
}

// Xor combines the bit patterns with XOR.
func (v Float32x4) Xor(w Float32x4) Float32x4 {
	a, b := v.words(), w.words()
	return float32x4FromWords([4]uint32{a[0] ^ b[0], a[1] ^ b[1], a[2] ^ b[2], a[3] ^ b[3]})
}

// Not complements the bit pattern.
func (v Float32x4) Not() Float32x4 {
	a := v.words()
	return float32x4FromWords([4]uint32{^a[0], ^a[1], ^a[2], ^a[3]})
}

// And combines the bit patterns with AND.
func (v Float64x2) And(w Float64x2) Float64x2 {
	return v.AsInt64x2().And(w.AsInt64x2()).AsFloat64x2()
}

// AndNot combines the bit patterns as (^v) & w.
func (v Float64x2) AndNot(w Float64x2) Float64x2 {
	return v.AsInt64x2().AndNot(w.AsInt64x2()).AsFloat64x2()
}

// Or combines the bit patterns with OR.
func (v Float64x2) Or(w Float64x2) Float64x2 {
	return v.AsInt64x2().Or(w.AsInt64x2()).AsFloat64x2()
}

// Xor combines the bit patterns with XOR.
func (v Float64x2) Xor(w Float64x2) Float64x2 {
	return v.AsInt64x2().Xor(w.AsInt64x2()).AsFloat64x2()
}

// Not complements the bit pattern.
func (v Float64x2) Not() Float64x2 {
	return v.AsInt64x2().Not().AsFloat64x2()
}
