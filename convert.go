package simd128

import "math"

// Lane-type conversions. Widening conversions consume the low lanes of
// the input; narrowing conversions produce into the low lanes and zero
// the high ones. Float-to-integer conversion comes in three rounding
// flavors (nearest-even, truncate, floor); the rounding happens in
// float64 and the final integer step goes through the backend kernel,
// so out-of-range and NaN lanes take the backend's native rule: the
// SSE2 sentinel MinInt32/MinInt64 or the NEON/generic saturation with
// NaN mapping to zero.

// ConvertToInt64 sign-extends the low two lanes.
func (v Int32x4) ConvertToInt64() Int64x2 {
	return Int64x2{int64(v[0]), int64(v[1])}
}

// ConvertToInt32 truncates each lane to its low 32 bits, placing the
// results in the low two lanes and zeroing the high two.
func (v Int64x2) ConvertToInt32() Int32x4 {
	return Int32x4{int32(v[0]), int32(v[1]), 0, 0}
}

// ConvertToFloat32 converts each lane, rounding to nearest even.
func (v Int32x4) ConvertToFloat32() Float32x4 {
	return Float32x4{float32(v[0]), float32(v[1]), float32(v[2]), float32(v[3])}
}

// ConvertToFloat64 converts the low two lanes exactly.
func (v Int32x4) ConvertToFloat64() Float64x2 {
	return Float64x2{float64(v[0]), float64(v[1])}
}

// ConvertToFloat64 converts each lane, rounding to nearest even.
func (v Int64x2) ConvertToFloat64() Float64x2 {
	return Float64x2{float64(v[0]), float64(v[1])}
}

// ConvertToFloat32 converts each lane into the low two lanes, rounding
// to nearest even, and zeroes the high two.
func (v Int64x2) ConvertToFloat32() Float32x4 {
	return Float32x4{float32(v[0]), float32(v[1]), 0, 0}
}

// ConvertToInt32 converts each lane, rounding to nearest with ties to
// even. Out-of-range and NaN lanes follow the backend rule.
func (v Float32x4) ConvertToInt32() Int32x4 {
	var r Int32x4
	for i := range r {
		r[i] = convertFloat64ToInt32(math.RoundToEven(float64(v[i])))
	}
	return r
}

// TruncateToInt32 converts each lane, rounding toward zero.
func (v Float32x4) TruncateToInt32() Int32x4 {
	var r Int32x4
	for i := range r {
		r[i] = convertFloat64ToInt32(math.Trunc(float64(v[i])))
	}
	return r
}

// FloorToInt32 converts each lane, rounding toward negative infinity.
func (v Float32x4) FloorToInt32() Int32x4 {
	var r Int32x4
	for i := range r {
		r[i] = convertFloat64ToInt32(math.Floor(float64(v[i])))
	}
	return r
}

// ConvertToInt64 converts the low two lanes, rounding to nearest with
// ties to even.
func (v Float32x4) ConvertToInt64() Int64x2 {
	return Int64x2{
		convertFloat64ToInt64(math.RoundToEven(float64(v[0]))),
		convertFloat64ToInt64(math.RoundToEven(float64(v[1]))),
	}
}

// TruncateToInt64 converts the low two lanes, rounding toward zero.
func (v Float32x4) TruncateToInt64() Int64x2 {
	return Int64x2{
		convertFloat64ToInt64(math.Trunc(float64(v[0]))),
		convertFloat64ToInt64(math.Trunc(float64(v[1]))),
	}
}

// FloorToInt64 converts the low two lanes, rounding toward negative
// infinity.
func (v Float32x4) FloorToInt64() Int64x2 {
	return Int64x2{
		convertFloat64ToInt64(math.Floor(float64(v[0]))),
		convertFloat64ToInt64(math.Floor(float64(v[1]))),
	}
}

// ConvertToInt64 converts each lane, rounding to nearest with ties to
// even. Out-of-range and NaN lanes follow the backend rule.
func (v Float64x2) ConvertToInt64() Int64x2 {
	return Int64x2{
		convertFloat64ToInt64(math.RoundToEven(v[0])),
		convertFloat64ToInt64(math.RoundToEven(v[1])),
	}
}

// TruncateToInt64 converts each lane, rounding toward zero.
func (v Float64x2) TruncateToInt64() Int64x2 {
	return Int64x2{
		convertFloat64ToInt64(math.Trunc(v[0])),
		convertFloat64ToInt64(math.Trunc(v[1])),
	}
}

// FloorToInt64 converts each lane, rounding toward negative infinity.
func (v Float64x2) FloorToInt64() Int64x2 {
	return Int64x2{
		convertFloat64ToInt64(math.Floor(v[0])),
		convertFloat64ToInt64(math.Floor(v[1])),
	}
}

// ConvertToInt32 converts each lane into the low two lanes, rounding to
// nearest with ties to even, and zeroes the high two.
func (v Float64x2) ConvertToInt32() Int32x4 {
	return Int32x4{
		convertFloat64ToInt32(math.RoundToEven(v[0])),
		convertFloat64ToInt32(math.RoundToEven(v[1])),
		0, 0,
	}
}

// TruncateToInt32 converts each lane into the low two lanes, rounding
// toward zero, and zeroes the high two.
func (v Float64x2) TruncateToInt32() Int32x4 {
	return Int32x4{
		convertFloat64ToInt32(math.Trunc(v[0])),
		convertFloat64ToInt32(math.Trunc(v[1])),
		0, 0,
	}
}

// FloorToInt32 converts each lane into the low two lanes, rounding
// toward negative infinity, and zeroes the high two.
func (v Float64x2) FloorToInt32() Int32x4 {
	return Int32x4{
		convertFloat64ToInt32(math.Floor(v[0])),
		convertFloat64ToInt32(math.Floor(v[1])),
		0, 0,
	}
}

// ConvertToFloat32 narrows each lane into the low two lanes, rounding
// to nearest even, and zeroes the high two.
func (v Float64x2) ConvertToFloat32() Float32x4 {
	return Float32x4{float32(v[0]), float32(v[1]), 0, 0}
}

// ConvertToFloat64 widens the low two lanes exactly.
func (v Float32x4) ConvertToFloat64() Float64x2 {
	return Float64x2{float64(v[0]), float64(v[1])}
}
