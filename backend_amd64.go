//go:build !purego

package simd128

import (
	"github.com/cwbudde/algo-simd128/internal/arch"
	"github.com/cwbudde/algo-simd128/internal/arch/generic"
	"github.com/cwbudde/algo-simd128/internal/arch/sse2"
)

const currentBackend = BackendSSE2

func shuffleLanes32[E arch.Lane32](v [4]E, sel uint8) [4]E {
	return sse2.ShuffleLanes32(v, sel)
}

func mulInt32(a, b [4]int32) [4]int32 { return sse2.MulInt32(a, b) }

func cmpEqInt64(a, b [2]int64) [2]uint64 { return sse2.EqualInt64(a, b) }

func shiftRightArithInt64(v [2]int64, n uint) [2]int64 {
	return sse2.ShiftRightArithInt64(v, n)
}

func minFloat32(a, b float32) float32 { return sse2.MinFloat32(a, b) }
func maxFloat32(a, b float32) float32 { return sse2.MaxFloat32(a, b) }
func minFloat64(a, b float64) float64 { return sse2.MinFloat64(a, b) }
func maxFloat64(a, b float64) float64 { return sse2.MaxFloat64(a, b) }

func convertFloat64ToInt32(x float64) int32 { return sse2.ConvertFloat64ToInt32(x) }
func convertFloat64ToInt64(x float64) int64 { return sse2.ConvertFloat64ToInt64(x) }

// SSE2 has no packed FMA; multiply and add round separately.
func fmaFloat32(a, b, c float32) float32 { return generic.FMAFloat32(a, b, c) }
func fmaFloat64(a, b, c float64) float64 { return generic.FMAFloat64(a, b, c) }
