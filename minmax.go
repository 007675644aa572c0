package simd128

import "math"

// Integer min and max are exact per lane. The float variants carry the
// Fast suffix because their behavior is backend-defined when a lane
// holds NaN or when one operand is a signed zero of opposite sign: the
// SSE2 backend keeps the second operand in those cases (minps/maxps),
// while NEON and generic propagate NaN and order -0 below +0
// (fmin/fmax). Callers needing deterministic zero handling should
// normalize with RemoveSignedZero first.

// Min returns the per-lane minimum.
func (v Int32x4) Min(w Int32x4) Int32x4 {
	var r Int32x4
	for i := range r {
		r[i] = min(v[i], w[i])
	}
	return r
}

// Max returns the per-lane maximum.
func (v Int32x4) Max(w Int32x4) Int32x4 {
	var r Int32x4
	for i := range r {
		r[i] = max(v[i], w[i])
	}
	return r
}

// Clamp limits every lane to [lo, hi], as min(max(lo, v), hi).
func (v Int32x4) Clamp(lo, hi Int32x4) Int32x4 {
	return lo.Max(v).Min(hi)
}

// Min returns the per-lane minimum.
func (v Int64x2) Min(w Int64x2) Int64x2 {
	return Int64x2{min(v[0], w[0]), min(v[1], w[1])}
}

// Max returns the per-lane maximum.
func (v Int64x2) Max(w Int64x2) Int64x2 {
	return Int64x2{max(v[0], w[0]), max(v[1], w[1])}
}

// Clamp limits every lane to [lo, hi], as min(max(lo, v), hi).
func (v Int64x2) Clamp(lo, hi Int64x2) Int64x2 {
	return lo.Max(v).Min(hi)
}

// MinFast returns the per-lane minimum using the backend's native rule;
// NaN and opposite-signed-zero lanes are backend-defined.
func (v Float32x4) MinFast(w Float32x4) Float32x4 {
	var r Float32x4
	for i := range r {
		r[i] = minFloat32(v[i], w[i])
	}
	return r
}

// MaxFast returns the per-lane maximum using the backend's native rule;
// NaN and opposite-signed-zero lanes are backend-defined.
func (v Float32x4) MaxFast(w Float32x4) Float32x4 {
	var r Float32x4
	for i := range r {
		r[i] = maxFloat32(v[i], w[i])
	}
	return r
}

// Clamp limits every lane to [lo, hi], as min(max(lo, v), hi) with the
// fast min/max rules.
func (v Float32x4) Clamp(lo, hi Float32x4) Float32x4 {
	return lo.MaxFast(v).MinFast(hi)
}

// MinFast returns the per-lane minimum using the backend's native rule;
// NaN and opposite-signed-zero lanes are backend-defined.
func (v Float64x2) MinFast(w Float64x2) Float64x2 {
	return Float64x2{minFloat64(v[0], w[0]), minFloat64(v[1], w[1])}
}

// MaxFast returns the per-lane maximum using the backend's native rule;
// NaN and opposite-signed-zero lanes are backend-defined.
func (v Float64x2) MaxFast(w Float64x2) Float64x2 {
	return Float64x2{maxFloat64(v[0], w[0]), maxFloat64(v[1], w[1])}
}

// Clamp limits every lane to [lo, hi], as min(max(lo, v), hi) with the
// fast min/max rules.
func (v Float64x2) Clamp(lo, hi Float64x2) Float64x2 {
	return lo.MaxFast(v).MinFast(hi)
}

// RemoveSignedZero normalizes -0 lanes to +0 and leaves every other bit
// pattern, including NaN payloads, untouched.
func (v Float32x4) RemoveSignedZero() Float32x4 {
	var r Float32x4
	for i := range r {
		if math.Float32bits(v[i]) == 0x80000000 {
			continue // lane stays +0
		}
		r[i] = v[i]
	}
	return r
}

// RemoveSignedZero normalizes -0 lanes to +0 and leaves every other bit
// pattern, including NaN payloads, untouched.
func (v Float64x2) RemoveSignedZero() Float64x2 {
	var r Float64x2
	for i := range r {
		if math.Float64bits(v[i]) == 1<<63 {
			continue
		}
		r[i] = v[i]
	}
	return r
}
