// Package arch holds the shared lane constraints and scalar bit
// reinterpretation primitives used by the backend strategy packages.
//
// The reinterpretation helpers copy bit patterns between same-width
// integer and floating-point scalars. They are built on the math
// package's bits functions, which are the aliasing-safe equivalent of a
// byte-wise value copy; no unsafe pointer punning is involved.
package arch

import "math"

// Lane32 constrains the element types that share the 32-bit lane shape.
type Lane32 interface {
	~int32 | ~uint32 | ~float32
}

// F32FromU32 reinterprets the bits of an unsigned 32-bit integer as a float32.
func F32FromU32(x uint32) float32 { return math.Float32frombits(x) }

// U32FromF32 reinterprets the bits of a float32 as an unsigned 32-bit integer.
func U32FromF32(x float32) uint32 { return math.Float32bits(x) }

// F64FromU64 reinterprets the bits of an unsigned 64-bit integer as a float64.
func F64FromU64(x uint64) float64 { return math.Float64frombits(x) }

// U64FromF64 reinterprets the bits of a float64 as an unsigned 64-bit integer.
func U64FromF64(x float64) uint64 { return math.Float64bits(x) }
