// Package floats: elementary function surface.
// Two families, split by whether the operation can newly invalidate its
// input:
//
//   - same-kind: Neg, Abs, Signum, Floor, Ceil, Round, Trunc map every
//     representable input of their wrapper to another valid one, so they
//     return the wrapper kind they were called on;
//   - tainting: everything that can produce NaN or Inf from a verified
//     operand (Sqrt of a negative, Log of zero, overflowing Exp, trig of
//     an infinity, ...) returns Unverified.
//
// These are raw pass-throughs: no diagnostic capture happens here, and a
// NaN input — payload bits included — is forwarded untouched, so a
// diagnosed failure stays sticky through any chain of them. 32-bit
// values route through the float64 math package and back.

package floats

import (
	"math"

	"github.com/floatlab/cleanfloat/nanbits"
)

// same1 applies fn through float64, forwarding NaN inputs bit-for-bit
// (a float32→float64 round-trip would canonicalize payload bits).
func same1[F nanbits.Float](f F, fn func(float64) float64) F {
	if nanbits.IsNaN(f) {
		return f
	}
	return F(fn(float64(f)))
}

// taint1 is same1 returning the unverified state.
func taint1[F nanbits.Float](f F, fn func(float64) float64) Unverified[F] {
	return Unverified[F]{raw: same1(f, fn)}
}

// taint2 applies a two-argument function, forwarding the first NaN
// operand untouched (left operand wins when both are NaN).
func taint2[F nanbits.Float](a, b F, fn func(float64, float64) float64) Unverified[F] {
	if nanbits.IsNaN(a) {
		return Unverified[F]{raw: a}
	}
	if nanbits.IsNaN(b) {
		return Unverified[F]{raw: b}
	}
	return Unverified[F]{raw: F(fn(float64(a), float64(b)))}
}

// signum returns +1 for positively signed values (including +0), -1 for
// negatively signed ones (including -0), and forwards NaN.
func signum[F nanbits.Float](f F) F {
	if nanbits.IsNaN(f) {
		return f
	}
	if nanbits.Signbit(f) {
		return -1
	}
	return 1
}

// recip returns 1/f at native width.
func recip[F nanbits.Float](f F) F {
	if nanbits.IsNaN(f) {
		return f
	}
	return 1 / f
}

// Same-kind operations on Verified.

// Neg returns -self.
func (v Verified[F]) Neg() Verified[F] { return Verified[F]{raw: -v.raw} }

// Abs returns |self|.
func (v Verified[F]) Abs() Verified[F] { return Verified[F]{raw: same1(v.raw, math.Abs)} }

// Signum returns ±1 by sign (zero included).
func (v Verified[F]) Signum() Verified[F] { return Verified[F]{raw: signum(v.raw)} }

// Floor rounds toward negative infinity.
func (v Verified[F]) Floor() Verified[F] { return Verified[F]{raw: same1(v.raw, math.Floor)} }

// Ceil rounds toward positive infinity.
func (v Verified[F]) Ceil() Verified[F] { return Verified[F]{raw: same1(v.raw, math.Ceil)} }

// Round rounds half away from zero.
func (v Verified[F]) Round() Verified[F] { return Verified[F]{raw: same1(v.raw, math.Round)} }

// Trunc rounds toward zero.
func (v Verified[F]) Trunc() Verified[F] { return Verified[F]{raw: same1(v.raw, math.Trunc)} }

// Same-kind operations on Unverified. NaN inputs pass through untouched.

// Neg returns -self.
func (u Unverified[F]) Neg() Unverified[F] { return Unverified[F]{raw: -u.raw} }

// Abs returns |self|.
func (u Unverified[F]) Abs() Unverified[F] { return Unverified[F]{raw: same1(u.raw, math.Abs)} }

// Signum returns ±1 by sign (zero included).
func (u Unverified[F]) Signum() Unverified[F] { return Unverified[F]{raw: signum(u.raw)} }

// Floor rounds toward negative infinity.
func (u Unverified[F]) Floor() Unverified[F] { return Unverified[F]{raw: same1(u.raw, math.Floor)} }

// Ceil rounds toward positive infinity.
func (u Unverified[F]) Ceil() Unverified[F] { return Unverified[F]{raw: same1(u.raw, math.Ceil)} }

// Round rounds half away from zero.
func (u Unverified[F]) Round() Unverified[F] { return Unverified[F]{raw: same1(u.raw, math.Round)} }

// Trunc rounds toward zero.
func (u Unverified[F]) Trunc() Unverified[F] { return Unverified[F]{raw: same1(u.raw, math.Trunc)} }

// Tainting operations on Verified.

// Sqrt returns the square root, unverified (negative input yields NaN).
func (v Verified[F]) Sqrt() Unverified[F] { return taint1(v.raw, math.Sqrt) }

// Cbrt returns the cube root, unverified.
func (v Verified[F]) Cbrt() Unverified[F] { return taint1(v.raw, math.Cbrt) }

// Recip returns 1/self, unverified (zero input yields ±Inf).
func (v Verified[F]) Recip() Unverified[F] { return Unverified[F]{raw: recip(v.raw)} }

// Exp returns e**self, unverified (large input overflows to +Inf).
func (v Verified[F]) Exp() Unverified[F] { return taint1(v.raw, math.Exp) }

// Exp2 returns 2**self, unverified.
func (v Verified[F]) Exp2() Unverified[F] { return taint1(v.raw, math.Exp2) }

// Expm1 returns e**self - 1, unverified.
func (v Verified[F]) Expm1() Unverified[F] { return taint1(v.raw, math.Expm1) }

// Log returns the natural logarithm, unverified (non-positive input
// yields -Inf or NaN).
func (v Verified[F]) Log() Unverified[F] { return taint1(v.raw, math.Log) }

// Log1p returns log(1+self), unverified.
func (v Verified[F]) Log1p() Unverified[F] { return taint1(v.raw, math.Log1p) }

// Log2 returns the base-2 logarithm, unverified.
func (v Verified[F]) Log2() Unverified[F] { return taint1(v.raw, math.Log2) }

// Log10 returns the base-10 logarithm, unverified.
func (v Verified[F]) Log10() Unverified[F] { return taint1(v.raw, math.Log10) }

// Pow returns self**o, unverified.
func (v Verified[F]) Pow(o Operand[F]) Unverified[F] { return taint2(v.raw, o.Raw(), math.Pow) }

// Powi returns self**n for an integer exponent, unverified.
func (v Verified[F]) Powi(n int) Unverified[F] {
	return taint1(v.raw, func(x float64) float64 { return math.Pow(x, float64(n)) })
}

// Hypot returns sqrt(self²+o²), unverified (may overflow to +Inf).
func (v Verified[F]) Hypot(o Operand[F]) Unverified[F] { return taint2(v.raw, o.Raw(), math.Hypot) }

// MulAdd returns self*a + b fused, unverified.
func (v Verified[F]) MulAdd(a, b Operand[F]) Unverified[F] {
	return mulAdd(v.raw, a.Raw(), b.Raw())
}

// Sin returns the sine, unverified (infinite input yields NaN).
func (v Verified[F]) Sin() Unverified[F] { return taint1(v.raw, math.Sin) }

// Cos returns the cosine, unverified.
func (v Verified[F]) Cos() Unverified[F] { return taint1(v.raw, math.Cos) }

// Tan returns the tangent, unverified.
func (v Verified[F]) Tan() Unverified[F] { return taint1(v.raw, math.Tan) }

// Asin returns the arcsine, unverified (|self|>1 yields NaN).
func (v Verified[F]) Asin() Unverified[F] { return taint1(v.raw, math.Asin) }

// Acos returns the arccosine, unverified.
func (v Verified[F]) Acos() Unverified[F] { return taint1(v.raw, math.Acos) }

// Atan returns the arctangent, unverified.
func (v Verified[F]) Atan() Unverified[F] { return taint1(v.raw, math.Atan) }

// Atan2 returns atan(self/o) using both signs, unverified.
func (v Verified[F]) Atan2(o Operand[F]) Unverified[F] { return taint2(v.raw, o.Raw(), math.Atan2) }

// Sinh returns the hyperbolic sine, unverified.
func (v Verified[F]) Sinh() Unverified[F] { return taint1(v.raw, math.Sinh) }

// Cosh returns the hyperbolic cosine, unverified.
func (v Verified[F]) Cosh() Unverified[F] { return taint1(v.raw, math.Cosh) }

// Tanh returns the hyperbolic tangent, unverified.
func (v Verified[F]) Tanh() Unverified[F] { return taint1(v.raw, math.Tanh) }

// Asinh returns the inverse hyperbolic sine, unverified.
func (v Verified[F]) Asinh() Unverified[F] { return taint1(v.raw, math.Asinh) }

// Acosh returns the inverse hyperbolic cosine, unverified (input < 1
// yields NaN).
func (v Verified[F]) Acosh() Unverified[F] { return taint1(v.raw, math.Acosh) }

// Atanh returns the inverse hyperbolic tangent, unverified.
func (v Verified[F]) Atanh() Unverified[F] { return taint1(v.raw, math.Atanh) }

// Tainting operations on Unverified. NaN inputs pass through untouched.

// Sqrt returns the square root, unverified.
func (u Unverified[F]) Sqrt() Unverified[F] { return taint1(u.raw, math.Sqrt) }

// Cbrt returns the cube root, unverified.
func (u Unverified[F]) Cbrt() Unverified[F] { return taint1(u.raw, math.Cbrt) }

// Recip returns 1/self, unverified.
func (u Unverified[F]) Recip() Unverified[F] { return Unverified[F]{raw: recip(u.raw)} }

// Exp returns e**self, unverified.
func (u Unverified[F]) Exp() Unverified[F] { return taint1(u.raw, math.Exp) }

// Exp2 returns 2**self, unverified.
func (u Unverified[F]) Exp2() Unverified[F] { return taint1(u.raw, math.Exp2) }

// Expm1 returns e**self - 1, unverified.
func (u Unverified[F]) Expm1() Unverified[F] { return taint1(u.raw, math.Expm1) }

// Log returns the natural logarithm, unverified.
func (u Unverified[F]) Log() Unverified[F] { return taint1(u.raw, math.Log) }

// Log1p returns log(1+self), unverified.
func (u Unverified[F]) Log1p() Unverified[F] { return taint1(u.raw, math.Log1p) }

// Log2 returns the base-2 logarithm, unverified.
func (u Unverified[F]) Log2() Unverified[F] { return taint1(u.raw, math.Log2) }

// Log10 returns the base-10 logarithm, unverified.
func (u Unverified[F]) Log10() Unverified[F] { return taint1(u.raw, math.Log10) }

// Pow returns self**o, unverified.
func (u Unverified[F]) Pow(o Operand[F]) Unverified[F] { return taint2(u.raw, o.Raw(), math.Pow) }

// Powi returns self**n for an integer exponent, unverified.
func (u Unverified[F]) Powi(n int) Unverified[F] {
	return taint1(u.raw, func(x float64) float64 { return math.Pow(x, float64(n)) })
}

// Hypot returns sqrt(self²+o²), unverified.
func (u Unverified[F]) Hypot(o Operand[F]) Unverified[F] { return taint2(u.raw, o.Raw(), math.Hypot) }

// MulAdd returns self*a + b fused, unverified.
func (u Unverified[F]) MulAdd(a, b Operand[F]) Unverified[F] {
	return mulAdd(u.raw, a.Raw(), b.Raw())
}

// Sin returns the sine, unverified.
func (u Unverified[F]) Sin() Unverified[F] { return taint1(u.raw, math.Sin) }

// Cos returns the cosine, unverified.
func (u Unverified[F]) Cos() Unverified[F] { return taint1(u.raw, math.Cos) }

// Tan returns the tangent, unverified.
func (u Unverified[F]) Tan() Unverified[F] { return taint1(u.raw, math.Tan) }

// Asin returns the arcsine, unverified.
func (u Unverified[F]) Asin() Unverified[F] { return taint1(u.raw, math.Asin) }

// Acos returns the arccosine, unverified.
func (u Unverified[F]) Acos() Unverified[F] { return taint1(u.raw, math.Acos) }

// Atan returns the arctangent, unverified.
func (u Unverified[F]) Atan() Unverified[F] { return taint1(u.raw, math.Atan) }

// Atan2 returns atan(self/o) using both signs, unverified.
func (u Unverified[F]) Atan2(o Operand[F]) Unverified[F] { return taint2(u.raw, o.Raw(), math.Atan2) }

// Sinh returns the hyperbolic sine, unverified.
func (u Unverified[F]) Sinh() Unverified[F] { return taint1(u.raw, math.Sinh) }

// Cosh returns the hyperbolic cosine, unverified.
func (u Unverified[F]) Cosh() Unverified[F] { return taint1(u.raw, math.Cosh) }

// Tanh returns the hyperbolic tangent, unverified.
func (u Unverified[F]) Tanh() Unverified[F] { return taint1(u.raw, math.Tanh) }

// Asinh returns the inverse hyperbolic sine, unverified.
func (u Unverified[F]) Asinh() Unverified[F] { return taint1(u.raw, math.Asinh) }

// Acosh returns the inverse hyperbolic cosine, unverified.
func (u Unverified[F]) Acosh() Unverified[F] { return taint1(u.raw, math.Acosh) }

// Atanh returns the inverse hyperbolic tangent, unverified.
func (u Unverified[F]) Atanh() Unverified[F] { return taint1(u.raw, math.Atanh) }

// mulAdd computes a fused multiply-add, forwarding the first NaN operand.
func mulAdd[F nanbits.Float](x, a, b F) Unverified[F] {
	switch {
	case nanbits.IsNaN(x):
		return Unverified[F]{raw: x}
	case nanbits.IsNaN(a):
		return Unverified[F]{raw: a}
	case nanbits.IsNaN(b):
		return Unverified[F]{raw: b}
	}
	return Unverified[F]{raw: F(math.FMA(float64(x), float64(a), float64(b)))}
}
