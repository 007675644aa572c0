package simd128

// Boolean combinators over masks, lane-width conversions, and
// reductions. Xor doubles as per-lane "not equal" of two masks; Equal
// is its complement.

// And returns the per-lane conjunction.
func (m Mask32x4) And(w Mask32x4) Mask32x4 {
	return Mask32x4{m[0] & w[0], m[1] & w[1], m[2] & w[2], m[3] & w[3]}
}

// AndNot returns (^m) & w per lane; the receiver is the complemented
// operand, as in the hardware instruction.
func (m Mask32x4) AndNot(w Mask32x4) Mask32x4 {
	return Mask32x4{^m[0] & w[0], ^m[1] & w[1], ^m[2] & w[2], ^m[3] & w[3]}
}

// Or returns the per-lane disjunction.
func (m Mask32x4) Or(w Mask32x4) Mask32x4 {
	return Mask32x4{m[0] | w[0], m[1] | w[1], m[2] | w[2], m[3] | w[3]}
}

// Xor returns the per-lane exclusive or (per-lane "not equal").
func (m Mask32x4) Xor(w Mask32x4) Mask32x4 {
	return Mask32x4{m[0] ^ w[0], m[1] ^ w[1], m[2] ^ w[2], m[3] ^ w[3]}
}

// Not returns the per-lane complement.
func (m Mask32x4) Not() Mask32x4 {
	return Mask32x4{^m[0], ^m[1], ^m[2], ^m[3]}
}

// Equal returns the per-lane equivalence (the complement of Xor).
func (m Mask32x4) Equal(w Mask32x4) Mask32x4 { return m.Xor(w).Not() }

// AllTrue reports whether every lane is true.
func (m Mask32x4) AllTrue() bool {
	return m[0]&m[1]&m[2]&m[3] != 0
}

// AnyTrue reports whether at least one lane is true.
func (m Mask32x4) AnyTrue() bool {
	return m[0]|m[1]|m[2]|m[3] != 0
}

// And returns the per-lane conjunction.
func (m Mask64x2) And(w Mask64x2) Mask64x2 {
	return Mask64x2{m[0] & w[0], m[1] & w[1]}
}

// AndNot returns (^m) & w per lane.
func (m Mask64x2) AndNot(w Mask64x2) Mask64x2 {
	return Mask64x2{^m[0] & w[0], ^m[1] & w[1]}
}

// Or returns the per-lane disjunction.
func (m Mask64x2) Or(w Mask64x2) Mask64x2 {
	return Mask64x2{m[0] | w[0], m[1] | w[1]}
}

// Xor returns the per-lane exclusive or (per-lane "not equal").
func (m Mask64x2) Xor(w Mask64x2) Mask64x2 {
	return Mask64x2{m[0] ^ w[0], m[1] ^ w[1]}
}

// Not returns the per-lane complement.
func (m Mask64x2) Not() Mask64x2 { return Mask64x2{^m[0], ^m[1]} }

// Equal returns the per-lane equivalence (the complement of Xor).
func (m Mask64x2) Equal(w Mask64x2) Mask64x2 { return m.Xor(w).Not() }

// AllTrue reports whether every lane is true.
func (m Mask64x2) AllTrue() bool { return m[0]&m[1] != 0 }

// AnyTrue reports whether at least one lane is true.
func (m Mask64x2) AnyTrue() bool { return m[0]|m[1] != 0 }

// And returns the per-lane conjunction.
func (m MaskF32x4) And(w MaskF32x4) MaskF32x4 {
	return MaskF32x4(Mask32x4(m).And(Mask32x4(w)))
}

// AndNot returns (^m) & w per lane.
func (m MaskF32x4) AndNot(w MaskF32x4) MaskF32x4 {
	return MaskF32x4(Mask32x4(m).AndNot(Mask32x4(w)))
}

// Or returns the per-lane disjunction.
func (m MaskF32x4) Or(w MaskF32x4) MaskF32x4 {
	return MaskF32x4(Mask32x4(m).Or(Mask32x4(w)))
}

// Xor returns the per-lane exclusive or (per-lane "not equal").
func (m MaskF32x4) Xor(w MaskF32x4) MaskF32x4 {
	return MaskF32x4(Mask32x4(m).Xor(Mask32x4(w)))
}

// Not returns the per-lane complement.
func (m MaskF32x4) Not() MaskF32x4 { return MaskF32x4(Mask32x4(m).Not()) }

// Equal returns the per-lane equivalence (the complement of Xor).
func (m MaskF32x4) Equal(w MaskF32x4) MaskF32x4 { return m.Xor(w).Not() }

// AllTrue reports whether every lane is true.
func (m MaskF32x4) AllTrue() bool { return Mask32x4(m).AllTrue() }

// AnyTrue reports whether at least one lane is true.
func (m MaskF32x4) AnyTrue() bool { return Mask32x4(m).AnyTrue() }

// And returns the per-lane conjunction.
func (m MaskF64x2) And(w MaskF64x2) MaskF64x2 {
	return MaskF64x2(Mask64x2(m).And(Mask64x2(w)))
}

// AndNot returns (^m) & w per lane.
func (m MaskF64x2) AndNot(w MaskF64x2) MaskF64x2 {
	return MaskF64x2(Mask64x2(m).AndNot(Mask64x2(w)))
}

// Or returns the per-lane disjunction.
func (m MaskF64x2) Or(w MaskF64x2) MaskF64x2 {
	return MaskF64x2(Mask64x2(m).Or(Mask64x2(w)))
}

// Xor returns the per-lane exclusive or (per-lane "not equal").
func (m MaskF64x2) Xor(w MaskF64x2) MaskF64x2 {
	return MaskF64x2(Mask64x2(m).Xor(Mask64x2(w)))
}

// Not returns the per-lane complement.
func (m MaskF64x2) Not() MaskF64x2 { return MaskF64x2(Mask64x2(m).Not()) }

// Equal returns the per-lane equivalence (the complement of Xor).
func (m MaskF64x2) Equal(w MaskF64x2) MaskF64x2 { return m.Xor(w).Not() }

// AllTrue reports whether every lane is true.
func (m MaskF64x2) AllTrue() bool { return Mask64x2(m).AllTrue() }

// AnyTrue reports whether at least one lane is true.
func (m MaskF64x2) AnyTrue() bool { return Mask64x2(m).AnyTrue() }

// ToMask64x2 widens the low two lanes: lane 0 fills the low 64-bit
// lane, lane 1 the high one. The upper two input lanes are dropped.
func (m Mask32x4) ToMask64x2() Mask64x2 {
	return Mask64x2{
		uint64(m[0])<<32 | uint64(m[0]),
		uint64(m[1])<<32 | uint64(m[1]),
	}
}

// ToMask32x4 narrows both lanes into the low two 32-bit lanes and
// zeroes (sets false) the upper two.
func (m Mask64x2) ToMask32x4() Mask32x4 {
	return Mask32x4{uint32(m[0]), uint32(m[1]), 0, 0}
}

// ToMaskF64x2 widens the low two lanes to a float64 mask.
func (m MaskF32x4) ToMaskF64x2() MaskF64x2 {
	return MaskF64x2(Mask32x4(m).ToMask64x2())
}

// ToMaskF32x4 narrows both lanes into the low two 32-bit lanes and
// sets the upper two false.
func (m MaskF64x2) ToMaskF32x4() MaskF32x4 {
	return MaskF32x4(Mask64x2(m).ToMask32x4())
}
