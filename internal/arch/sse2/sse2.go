// Package sse2 provides the SSE2-shaped strategies for the operations
// that have no single-instruction realization on that ISA. Each
// function reproduces, in portable Go, the exact bit patterns the SSE2
// instruction sequence computes, so the compiled amd64 backend and the
// other backends stay observably identical wherever the contract
// requires it. Conversion and fast min/max follow the x86 hardware
// where the contract leaves the behavior backend-defined.
package sse2

import "math"

// MulInt32 multiplies four 32-bit lanes, wrapping modulo 2^32. SSE2 has
// no packed 32x32->32 multiply, so the strategy separates the signs,
// multiplies the even and odd lanes as unsigned 32x32->64 (pmuludq),
// shuffles the low halves back together and reapplies the sign.
func MulInt32(a, b [4]int32) [4]int32 {
	var ua, ub, sign [4]uint32
	for i := 0; i < 4; i++ {
		ua[i] = uint32(a[i])
		ub[i] = uint32(b[i])
		if a[i] < 0 {
			ua[i] = -ua[i]
		}
		if b[i] < 0 {
			ub[i] = -ub[i]
		}
		if (a[i] < 0) != (b[i] < 0) {
			sign[i] = ^uint32(0)
		}
	}

	// pmuludq consumes lanes 0 and 2; the odd lanes are shuffled down
	// for the second multiply.
	p0 := uint64(ua[0]) * uint64(ub[0])
	p2 := uint64(ua[2]) * uint64(ub[2])
	p1 := uint64(ua[1]) * uint64(ub[1])
	p3 := uint64(ua[3]) * uint64(ub[3])

	lo := [4]uint32{uint32(p0), uint32(p1), uint32(p2), uint32(p3)}

	var r [4]int32
	for i := 0; i < 4; i++ {
		r[i] = int32((lo[i] ^ sign[i]) - sign[i])
	}
	return r
}

// EqualInt64 emulates the 64-bit lane equality SSE2 lacks: a 32-bit
// lane compare (pcmpeqd), a shuffle that swaps the two halves of each
// 64-bit lane, and an AND of the swapped result with the original.
func EqualInt64(a, b [2]int64) [2]uint64 {
	la := [4]uint32{
		uint32(uint64(a[0])), uint32(uint64(a[0]) >> 32),
		uint32(uint64(a[1])), uint32(uint64(a[1]) >> 32),
	}
	lb := [4]uint32{
		uint32(uint64(b[0])), uint32(uint64(b[0]) >> 32),
		uint32(uint64(b[1])), uint32(uint64(b[1]) >> 32),
	}

	var eq [4]uint32
	for i := 0; i < 4; i++ {
		if la[i] == lb[i] {
			eq[i] = ^uint32(0)
		}
	}

	swapped := ShuffleLanes32(eq, 0xB1) // lanes 1,0,3,2
	for i := 0; i < 4; i++ {
		eq[i] &= swapped[i]
	}

	return [2]uint64{
		uint64(eq[1])<<32 | uint64(eq[0]),
		uint64(eq[3])<<32 | uint64(eq[2]),
	}
}

// MinFloat32 follows minps: a < b ? a : b, so NaN operands and
// opposite-signed zero ties take the second operand.
func MinFloat32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// MaxFloat32 follows maxps: a > b ? a : b.
func MaxFloat32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// MinFloat64 follows minpd.
func MinFloat64(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// MaxFloat64 follows maxpd.
func MaxFloat64(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// ConvertFloat64ToInt32 converts a value already rounded to an integral
// float64. Out-of-range and NaN inputs yield the cvtps2dq sentinel.
func ConvertFloat64ToInt32(x float64) int32 {
	if x != x || x > math.MaxInt32 || x < math.MinInt32 {
		return math.MinInt32
	}
	return int32(x)
}

// ConvertFloat64ToInt64 converts a rounded integral float64 with the
// cvtsd2si sentinel for out-of-range and NaN inputs. 2^63 is the first
// float64 above the int64 range.
func ConvertFloat64ToInt64(x float64) int64 {
	const limit = 9223372036854775808.0 // 2^63
	if x != x || x >= limit || x < -limit {
		return math.MinInt64
	}
	return int64(x)
}
