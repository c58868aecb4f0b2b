// Package floats: comparison surface.
// Partial comparisons (Eq/Lt/Le/Gt/Ge) follow native float semantics and
// accept any operand mixture; Cmp is a total three-valued order. On
// Verified, Cmp is straightforward because NaN cannot occur; on
// Unverified, NaN sorts above +Inf so that sorting never loses values.

package floats

// Eq reports self == o under native float semantics.
func (v Verified[F]) Eq(o Operand[F]) bool { return v.raw == o.Raw() }

// Lt reports self < o.
func (v Verified[F]) Lt(o Operand[F]) bool { return v.raw < o.Raw() }

// Le reports self <= o.
func (v Verified[F]) Le(o Operand[F]) bool { return v.raw <= o.Raw() }

// Gt reports self > o.
func (v Verified[F]) Gt(o Operand[F]) bool { return v.raw > o.Raw() }

// Ge reports self >= o.
func (v Verified[F]) Ge(o Operand[F]) bool { return v.raw >= o.Raw() }

// Cmp returns -1, 0 or +1. Total: verified values are never NaN.
func (v Verified[F]) Cmp(o Verified[F]) int {
	switch {
	case v.raw < o.raw:
		return -1
	case v.raw > o.raw:
		return +1
	default:
		return 0
	}
}

// Eq reports self == o under native float semantics (false for NaN).
func (u Unverified[F]) Eq(o Operand[F]) bool { return u.raw == o.Raw() }

// Lt reports self < o.
func (u Unverified[F]) Lt(o Operand[F]) bool { return u.raw < o.Raw() }

// Le reports self <= o.
func (u Unverified[F]) Le(o Operand[F]) bool { return u.raw <= o.Raw() }

// Gt reports self > o.
func (u Unverified[F]) Gt(o Operand[F]) bool { return u.raw > o.Raw() }

// Ge reports self >= o.
func (u Unverified[F]) Ge(o Operand[F]) bool { return u.raw >= o.Raw() }

// Cmp returns a total three-valued comparison with NaN > +Inf; two NaNs
// compare equal regardless of payload.
func (u Unverified[F]) Cmp(o Unverified[F]) int {
	x, y := u.raw, o.raw
	switch {
	case x > y:
		return +1
	case x < y:
		return -1
	case x == y:
		return 0
	}
	// At least one operand is NaN.
	if x == x {
		return -1 // y is NaN
	}
	if y == y {
		return +1 // x is NaN
	}
	return 0 // both NaN
}
