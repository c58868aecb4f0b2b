// SPDX-License-Identifier: MIT
// Package nanbits: IEEE-754 value classifier.
// Classification feeds the human-readable diagnostic messages in diag;
// the six classes cover exactly the cases those messages distinguish.

package nanbits

import (
	"fmt"
	"math"
)

// Class categorizes a float by sign bit and IEEE-754 category.
type Class uint8

const (
	// Finite: any ordinary value — normal, subnormal, nonzero.
	Finite Class = iota

	// PosZero: +0.0.
	PosZero

	// NegZero: -0.0.
	NegZero

	// PosInf: +Inf.
	PosInf

	// NegInf: -Inf.
	NegInf

	// NaN: any not-a-number value, payloaded or not.
	NaN
)

// ClassOf classifies f. The sign bit is read from the exact bit pattern,
// so negative zero and negative NaNs are observed faithfully.
func ClassOf[F Float](f F) Class {
	switch {
	case IsNaN(f):
		return NaN
	case f == 0:
		if Signbit(f) {
			return NegZero
		}
		return PosZero
	case math.IsInf(float64(f), 0):
		if Signbit(f) {
			return NegInf
		}
		return PosInf
	default:
		return Finite
	}
}

// String returns the class name used in diagnostic messages.
func (c Class) String() string {
	switch c {
	case Finite:
		return "value"
	case PosZero:
		return "zero"
	case NegZero:
		return "negative zero"
	case PosInf:
		return "infinity"
	case NegInf:
		return "negative infinity"
	case NaN:
		return "NaN"
	default:
		return fmt.Sprintf("Class(%d)", uint8(c))
	}
}
