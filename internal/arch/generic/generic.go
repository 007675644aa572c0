// Package generic provides the portable reference strategies for the
// operations whose hardware realization differs between the SSE2 and
// NEON instruction sets. Every other operation in the library has a
// single per-lane meaning and lives in the root package; the functions
// here define the canonical bit patterns that the ISA-shaped strategy
// packages (sse2, neon) must reproduce exactly, except where the
// contract explicitly leaves behavior backend-defined (fast min/max,
// out-of-range float-to-integer conversion, fused multiply-add).
package generic

import (
	"math"

	"github.com/cwbudde/algo-simd128/internal/arch"
)

// ShuffleLanes32 permutes the four lanes of v. Lane i of the result is
// lane (sel >> (2*i)) & 3 of the input, copied through a scratch array.
func ShuffleLanes32[E arch.Lane32](v [4]E, sel uint8) [4]E {
	var r [4]E
	for i := 0; i < 4; i++ {
		r[i] = v[(sel>>(2*uint(i)))&3]
	}
	return r
}

// MulInt32 multiplies per lane, wrapping modulo 2^32.
func MulInt32(a, b [4]int32) [4]int32 {
	var r [4]int32
	for i := range r {
		r[i] = a[i] * b[i]
	}
	return r
}

// EqualInt64 compares per lane for equality, producing an all-ones or
// all-zeros 64-bit mask lane.
func EqualInt64(a, b [2]int64) [2]uint64 {
	var r [2]uint64
	for i := range r {
		if a[i] == b[i] {
			r[i] = ^uint64(0)
		}
	}
	return r
}

// ShiftRightArithInt64 shifts each lane right by n, filling with the
// sign bit. Amounts of 64 or more yield the sign fill.
func ShiftRightArithInt64(v [2]int64, n uint) [2]int64 {
	if n > 63 {
		n = 63
	}
	return [2]int64{v[0] >> n, v[1] >> n}
}

// MinFloat32 mirrors the AArch64 fmin rule: NaN operands propagate and
// negative zero orders below positive zero.
func MinFloat32(a, b float32) float32 {
	switch {
	case a != a:
		return a
	case b != b:
		return b
	case a == 0 && b == 0:
		if math.Signbit(float64(a)) {
			return a
		}
		return b
	case a < b:
		return a
	default:
		return b
	}
}

// MaxFloat32 mirrors the AArch64 fmax rule.
func MaxFloat32(a, b float32) float32 {
	switch {
	case a != a:
		return a
	case b != b:
		return b
	case a == 0 && b == 0:
		if !math.Signbit(float64(a)) {
			return a
		}
		return b
	case a > b:
		return a
	default:
		return b
	}
}

// MinFloat64 mirrors the AArch64 fmin rule for 64-bit lanes.
func MinFloat64(a, b float64) float64 {
	switch {
	case a != a:
		return a
	case b != b:
		return b
	case a == 0 && b == 0:
		if math.Signbit(a) {
			return a
		}
		return b
	case a < b:
		return a
	default:
		return b
	}
}

// MaxFloat64 mirrors the AArch64 fmax rule for 64-bit lanes.
func MaxFloat64(a, b float64) float64 {
	switch {
	case a != a:
		return a
	case b != b:
		return b
	case a == 0 && b == 0:
		if !math.Signbit(a) {
			return a
		}
		return b
	case a > b:
		return a
	default:
		return b
	}
}

// ConvertFloat64ToInt32 converts a value that has already been rounded
// to an integral float64. Out-of-range inputs saturate and NaN becomes
// zero, matching the AArch64 fcvt family; Go's own out-of-range
// conversion behavior is unspecified and must not leak through.
func ConvertFloat64ToInt32(x float64) int32 {
	switch {
	case x != x:
		return 0
	case x > math.MaxInt32:
		return math.MaxInt32
	case x < math.MinInt32:
		return math.MinInt32
	default:
		return int32(x)
	}
}

// ConvertFloat64ToInt64 converts a rounded integral float64, saturating
// out-of-range inputs. 2^63 is the first float64 above the int64 range.
func ConvertFloat64ToInt64(x float64) int64 {
	const limit = 9223372036854775808.0 // 2^63
	switch {
	case x != x:
		return 0
	case x >= limit:
		return math.MaxInt64
	case x < -limit:
		return math.MinInt64
	default:
		return int64(x)
	}
}

// FMAFloat32 computes a*b + c with a separate multiply and add (no
// fusion), the behavior of the scalar and SSE2 targets.
func FMAFloat32(a, b, c float32) float32 { return a*b + c }

// FMAFloat64 computes a*b + c without fusion.
func FMAFloat64(a, b, c float64) float64 { return a*b + c }
