//go:build !purego

package simd128

import (
	"github.com/cwbudde/algo-simd128/internal/arch"
	"github.com/cwbudde/algo-simd128/internal/arch/generic"
	"github.com/cwbudde/algo-simd128/internal/arch/neon"
)

const currentBackend = BackendNEON

func shuffleLanes32[E arch.Lane32](v [4]E, sel uint8) [4]E {
	return neon.ShuffleLanes32(v, sel)
}

// NEON covers these with single instructions whose results match the
// portable reference bit for bit, so the reference serves directly.
func mulInt32(a, b [4]int32) [4]int32 { return generic.MulInt32(a, b) }

func cmpEqInt64(a, b [2]int64) [2]uint64 { return generic.EqualInt64(a, b) }

func shiftRightArithInt64(v [2]int64, n uint) [2]int64 {
	return generic.ShiftRightArithInt64(v, n)
}

func minFloat32(a, b float32) float32 { return generic.MinFloat32(a, b) }
func maxFloat32(a, b float32) float32 { return generic.MaxFloat32(a, b) }
func minFloat64(a, b float64) float64 { return generic.MinFloat64(a, b) }
func maxFloat64(a, b float64) float64 { return generic.MaxFloat64(a, b) }

func convertFloat64ToInt32(x float64) int32 { return generic.ConvertFloat64ToInt32(x) }
func convertFloat64ToInt64(x float64) int64 { return generic.ConvertFloat64ToInt64(x) }

func fmaFloat32(a, b, c float32) float32 { return neon.FMAFloat32(a, b, c) }
func fmaFloat64(a, b, c float64) float64 { return neon.FMAFloat64(a, b, c) }
