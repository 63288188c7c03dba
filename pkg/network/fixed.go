package network

import "math"

// Fixed-point formats with N fractional bits over a signed 32-bit (Q8/Q12)
// or signed 16-bit (Q10) base. These mirror the saturating round-to-nearest
// convention golang.org/x/image/math/fixed uses for its Int26_6 type: we
// don't reuse Int26_6 directly since its fractional-bit count is hard-coded
// to 6, but QuantizeFixed/DequantizeFixed follow the same
// "round(f*2^n) with saturation" shape x/image/math/fixed.Int26_6 uses when
// converting from a float.

// Q8Frac, Q10Frac, Q12Frac name the fractional-bit counts used by the
// CSG engine's PrismPipe radius (Q8), join angle quantization (Q10), and
// the network graph's metric-position quantization (Q12) respectively.
const (
	Q8Frac  = 8
	Q10Frac = 10
	Q12Frac = 12
)

// QuantizeFixed is round(f * 2^fracBits), saturated into the signed 32-bit
// range. Used as Q12 for metric positions.
func QuantizeFixed(f float64, fracBits uint) int32 {
	scaled := math.Round(f * float64(int64(1)<<fracBits))
	if scaled > math.MaxInt32 {
		return math.MaxInt32
	}
	if scaled < math.MinInt32 {
		return math.MinInt32
	}
	return int32(scaled)
}

// DequantizeFixed is the exact inverse scale of QuantizeFixed.
func DequantizeFixed(q int32, fracBits uint) float64 {
	return float64(q) / float64(int64(1)<<fracBits)
}

// QuantizeAngleDegQ10 wraps deg into (-180, 180] via symmetric remainder,
// scales by 1024/180, rounds to nearest, and saturates into the signed
// 16-bit range.
func QuantizeAngleDegQ10(deg float64) int16 {
	wrapped := wrapSymmetric180(deg)
	scaled := math.Round(wrapped * (1024.0 / 180.0))
	if scaled > math.MaxInt16 {
		return math.MaxInt16
	}
	if scaled < math.MinInt16 {
		return math.MinInt16
	}
	return int16(scaled)
}

// DequantizeAngleDegQ10 is the exact inverse scale of QuantizeAngleDegQ10.
func DequantizeAngleDegQ10(q int16) float64 {
	return float64(q) * (180.0 / 1024.0)
}

// wrapSymmetric180 folds deg into (-180, 180].
func wrapSymmetric180(deg float64) float64 {
	wrapped := math.Mod(deg+180.0, 360.0)
	if wrapped <= 0 {
		wrapped += 360.0
	}
	return wrapped - 180.0
}
