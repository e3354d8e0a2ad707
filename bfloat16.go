// Package bfloat16 implements the bfloat16 ("brain float") storage format:
// a 16-bit floating point number that keeps the full float32 exponent range
// and trades mantissa precision for compactness.
//
// The package is a pure conversion engine. Values are immutable 16-bit
// patterns; widening to float32 is exact, narrowing from float32 rounds to
// nearest (ties to even) and is intentionally lossy:
//
//   - float32 subnormals flush to zero, keeping the sign
//   - magnitudes above MaxFinite (including the float32 maximum) become
//     signed infinity
//   - signaling NaNs are quieted: the narrowed pattern has mantissa bit 6
//     forced on, so a widened signaling-NaN pattern re-narrows to its raw
//     value plus 0x40; quiet NaNs are stable across round trips
//
// Whole numbers up to 256 in magnitude convert exactly (7 explicit mantissa
// bits plus the implicit leading 1). Arithmetic stays in float32; this
// package only moves values in and out of the 16-bit layout.
package bfloat16

import (
	"math"

	"golang.org/x/exp/constraints"
)

// BFloat16 is the raw bfloat16 bit-pattern.
//
// Layout:
//
//	sign: 1 bit
//	exp:  8 bits (bias 127, same as float32)
//	frac: 7 bits
//
// The zero value is +0. Two values compare equal exactly when their bit
// patterns are equal; note that NaN != NaN under float comparison but NaN
// patterns still compare equal as BFloat16.
type BFloat16 uint16

const (
	signMask BFloat16 = 0x8000
	expMask  BFloat16 = 0x7F80
	fracMask BFloat16 = 0x007F

	// quietBit is the most significant mantissa bit. NaNs produced by
	// FromFloat32 always carry it.
	quietBit BFloat16 = 0x0040

	f32ExpMask  uint32 = 0x7F800000
	f32FracMask uint32 = 0x007FFFFF
)

// Distinguished bit patterns, usable as compile-time constants.
const (
	// PositiveInfinity and NegativeInfinity are the two infinity encodings.
	PositiveInfinity BFloat16 = 0x7F80
	NegativeInfinity BFloat16 = 0xFF80

	// QuietNaN is the canonical quiet NaN, the pattern float32 NaN narrows to.
	QuietNaN BFloat16 = 0x7FC0

	// MaxFinite is the largest finite value, 3.38953139e38. It sits slightly
	// below the float32 maximum of 3.402823466e38, which is why the float32
	// maximum narrows to infinity rather than saturating.
	MaxFinite BFloat16 = 0x7F7F

	// SmallestNormal is the smallest positive normal value, 2^-126.
	SmallestNormal BFloat16 = 0x0080

	// SmallestNonzero is the smallest positive subnormal pattern, 2^-133.
	// FromFloat32 never produces subnormals; the pattern exists only through
	// FromBits and still widens to a genuine float32 subnormal.
	SmallestNonzero BFloat16 = 0x0001

	// Epsilon is the gap between 1 and the next representable value, 2^-7.
	Epsilon BFloat16 = 0x3C00
)

// FromBits returns the value with the given bit pattern, interpreting the
// integer as raw bits rather than converting it numerically (for that, use
// FromInt). FromBits(u).Bits() == u for every pattern.
func FromBits(u uint16) BFloat16 {
	return BFloat16(u)
}

// Bits returns the raw bit pattern.
func (b BFloat16) Bits() uint16 {
	return uint16(b)
}

// FromFloat32 converts a float32 value into a bfloat16 bit-pattern.
//
// Rounding mode: round-to-nearest, ties-to-even. Subnormal inputs flush to
// signed zero and NaN inputs are quieted; see the package comment.
func FromFloat32(f float32) BFloat16 {
	bits := math.Float32bits(f)
	sign := BFloat16(bits>>16) & signMask
	exp := bits & f32ExpMask

	// Inf / NaN
	if exp == f32ExpMask {
		frac := bits & f32FracMask
		if frac == 0 {
			return sign | expMask // infinity
		}
		// Keep the top payload bits and force the quiet bit. Signaling
		// NaN patterns therefore come back 0x40 above a bare truncation.
		return sign | expMask | (BFloat16(frac>>16) & fracMask) | quietBit
	}

	// Zero, or a float32 subnormal: flush to zero. A narrowed value is
	// never subnormal. Normal inputs cannot underflow here because the
	// exponent ranges of the two formats coincide.
	if exp == 0 {
		return sign
	}

	// Round the 16 discarded bits to nearest, ties to even. The bias add
	// carries a mantissa overflow into the exponent field; saturating the
	// exponent lands exactly on the infinity encoding, which is the
	// required overflow behavior.
	bits += 0x7FFF + (bits>>16)&1
	return BFloat16(bits >> 16)
}

// FromInt converts an integer value. The result is defined as bit-for-bit
// identical to FromFloat32(float32(v)) for every integer type and value;
// whole numbers up to 256 in magnitude convert exactly.
func FromInt[T constraints.Integer](v T) BFloat16 {
	return FromFloat32(float32(v))
}

// Float32 widens the bfloat16 bit-pattern to float32.
//
// Widening is exact and total: the pattern becomes the high 16 bits of the
// float32, the low 16 bits are zero. Raw subnormal patterns widen to the
// float32 subnormal they denote (and flush to signed zero if narrowed again).
func (b BFloat16) Float32() float32 {
	return math.Float32frombits(uint32(b) << 16)
}

// IsNaN reports whether b is a NaN encoding, quiet or signaling.
func (b BFloat16) IsNaN() bool {
	return b&expMask == expMask && b&fracMask != 0
}

// IsInf reports whether b is an infinity, according to sign.
// If sign > 0, IsInf reports whether b is positive infinity.
// If sign < 0, IsInf reports whether b is negative infinity.
// If sign == 0, IsInf reports whether b is either infinity.
func (b BFloat16) IsInf(sign int) bool {
	return (sign >= 0 && b == PositiveInfinity) || (sign <= 0 && b == NegativeInfinity)
}

// Signbit reports whether the sign bit is set (true for negative zero).
func (b BFloat16) Signbit() bool {
	return b&signMask != 0
}

// Inf returns positive infinity if sign >= 0, negative infinity if sign < 0.
func Inf(sign int) BFloat16 {
	if sign >= 0 {
		return PositiveInfinity
	}
	return NegativeInfinity
}

// NaN returns the canonical quiet NaN.
func NaN() BFloat16 {
	return QuietNaN
}
