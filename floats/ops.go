// Package floats: binary arithmetic surface.
// Every binary operation accepts any mixture of verified and unverified
// operands and returns Unverified — arithmetic never fails synchronously,
// failure is deferred to Sanitize. Detection of newly invalid results
// lives in check_diag.go / check_release.go.

package floats

import (
	"fmt"

	"github.com/floatlab/cleanfloat/diag"
	"github.com/floatlab/cleanfloat/nanbits"
)

// apply computes a raw binary result with native float semantics.
func apply[F nanbits.Float](op diag.Op, a, b F) F {
	switch op {
	case diag.OpAdd:
		return a + b
	case diag.OpSub:
		return a - b
	case diag.OpMul:
		return a * b
	case diag.OpDiv:
		return a / b
	default:
		panic(fmt.Sprintf("floats: apply called with non-binary op %v", op))
	}
}

// Add returns self + o, unverified.
func (v Verified[F]) Add(o Operand[F]) Unverified[F] {
	return Unverified[F]{raw: checkBinary(diag.OpAdd, v.raw, o.Raw())}
}

// Sub returns self - o, unverified.
func (v Verified[F]) Sub(o Operand[F]) Unverified[F] {
	return Unverified[F]{raw: checkBinary(diag.OpSub, v.raw, o.Raw())}
}

// Mul returns self * o, unverified.
func (v Verified[F]) Mul(o Operand[F]) Unverified[F] {
	return Unverified[F]{raw: checkBinary(diag.OpMul, v.raw, o.Raw())}
}

// Div returns self / o, unverified.
func (v Verified[F]) Div(o Operand[F]) Unverified[F] {
	return Unverified[F]{raw: checkBinary(diag.OpDiv, v.raw, o.Raw())}
}

// Add returns self + o, unverified.
func (u Unverified[F]) Add(o Operand[F]) Unverified[F] {
	return Unverified[F]{raw: checkBinary(diag.OpAdd, u.raw, o.Raw())}
}

// Sub returns self - o, unverified.
func (u Unverified[F]) Sub(o Operand[F]) Unverified[F] {
	return Unverified[F]{raw: checkBinary(diag.OpSub, u.raw, o.Raw())}
}

// Mul returns self * o, unverified.
func (u Unverified[F]) Mul(o Operand[F]) Unverified[F] {
	return Unverified[F]{raw: checkBinary(diag.OpMul, u.raw, o.Raw())}
}

// Div returns self / o, unverified.
func (u Unverified[F]) Div(o Operand[F]) Unverified[F] {
	return Unverified[F]{raw: checkBinary(diag.OpDiv, u.raw, o.Raw())}
}
