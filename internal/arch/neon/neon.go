// Package neon provides the NEON-shaped strategies for the operations
// whose hardware realization differs from SSE2. The 4-lane shuffle is
// the dominant piece (shuffle.go, a generated 256-entry dispatch).
// Fused multiply-add is implemented here because AArch64 fuses by
// default (fmla); conversion and fast min/max on this target share the
// saturating / NaN-propagating reference semantics in the generic
// package.
package neon

import "math"

// FMAFloat32 computes a*b + c with a single rounding, the fmla
// behavior. The product of two float32 values is exact in float64, so
// one fused float64 step keeps the intermediate unrounded.
func FMAFloat32(a, b, c float32) float32 {
	return float32(math.FMA(float64(a), float64(b), float64(c)))
}

// FMAFloat64 computes a*b + c with a single rounding.
func FMAFloat64(a, b, c float64) float64 {
	return math.FMA(a, b, c)
}
