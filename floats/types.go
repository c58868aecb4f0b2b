// Package floats: wrapper types and the narrowing conversion.
// This file declares Verified, Unverified, the Operand interface,
// the width aliases, and TryNew/Taint/Sanitize.

package floats

import (
	"fmt"

	"github.com/floatlab/cleanfloat/nanbits"
)

// Verified wraps a raw float that is guaranteed not to be NaN
// (and, under the bounded policy, not infinite). The unexported field is
// the seal: only this package constructs a Verified, and only through
// validation.
type Verified[F nanbits.Float] struct {
	raw F
}

// Unverified wraps any raw float with no constraint: just computed,
// not yet trusted.
type Unverified[F nanbits.Float] struct {
	raw F
}

// Width aliases for the common instantiations.
type (
	// F64 is a verified float64.
	F64 = Verified[float64]

	// DirtyF64 is an unverified float64.
	DirtyF64 = Unverified[float64]

	// F32 is a verified float32.
	F32 = Verified[float32]

	// DirtyF32 is an unverified float32.
	DirtyF32 = Unverified[float32]
)

// Operand is anything that exposes an underlying raw float: both wrapper
// kinds qualify, so binary operations accept any mixture. Raw values
// enter through Taint.
type Operand[F nanbits.Float] interface {
	Raw() F
}

// TryNew validates raw and wraps it.
//
//   - NaN fails with a *NaNError (errors.Is: ErrNaN). A payload-carrying
//     NaN resolves and consumes its registry record exactly once; other
//     NaNs get a generic classification-based message.
//   - Under the bounded policy, ±Inf fails with ErrPosInf / ErrNegInf.
//   - Anything else succeeds, wrapping raw unchanged.
func TryNew[F nanbits.Float](raw F) (Verified[F], error) {
	if nanbits.IsNaN(raw) {
		return Verified[F]{}, nanError(raw)
	}
	if boundedVerified {
		switch nanbits.ClassOf(raw) {
		case nanbits.PosInf:
			return Verified[F]{}, ErrPosInf
		case nanbits.NegInf:
			return Verified[F]{}, ErrNegInf
		}
	}
	return Verified[F]{raw: raw}, nil
}

// Taint wraps raw as Unverified. Always succeeds, no validation.
func Taint[F nanbits.Float](raw F) Unverified[F] {
	return Unverified[F]{raw: raw}
}

// Sanitize is the single narrowing conversion from unverified to
// verified; it delegates to TryNew on the underlying raw value.
func (u Unverified[F]) Sanitize() (Verified[F], error) {
	return TryNew(u.raw)
}

// Raw returns the underlying value unchanged.
func (v Verified[F]) Raw() F { return v.raw }

// Raw returns the underlying value unchanged, payload bits included.
func (u Unverified[F]) Raw() F { return u.raw }

// Taint widens a verified value back into the unverified state.
func (v Verified[F]) Taint() Unverified[F] {
	return Unverified[F]{raw: v.raw}
}

// String renders the underlying value with %g.
func (v Verified[F]) String() string { return fmt.Sprintf("%g", v.raw) }

// String renders the underlying value with %g.
func (u Unverified[F]) String() string { return fmt.Sprintf("%g", u.raw) }
