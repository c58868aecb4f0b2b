// Package floats implements the dual-state float model: Verified values
// are statically known not to be NaN, Unverified values are fresh
// arithmetic results that have not been checked yet, and Sanitize is the
// single narrowing conversion between the two.
//
// 🚀 The model:
//
//	Verified[F]   — wraps a raw float that passed validation. Invariant:
//	                never NaN. Under the default (unbounded) policy,
//	                ±Inf is allowed; build with -tags cleanfloat_bounded
//	                to exclude infinities as well.
//	Unverified[F] — wraps any raw float, no constraint. Produced by every
//	                arithmetic operation; arithmetic never fails
//	                synchronously.
//	Sanitize      — decodes any diagnostic payload, resolves and consumes
//	                its registry record, and returns a typed error or a
//	                fresh Verified value. No other path narrows.
//
// ✨ The operator contract (diagnostic builds):
//
//   - An operand already carrying a diagnostic payload is returned
//     unchanged — the earliest failure site is sticky and is never
//     overwritten by later operations. When both operands carry one,
//     the left operand wins.
//   - A result that is newly NaN gets classified operands, a registry
//     record with best-effort file:line, and the record's index embedded
//     in its payload bits.
//   - Release builds (-tags cleanfloat_release) skip all of the above:
//     plain native arithmetic, no registry, generic errors from Sanitize.
//
// ⚙️ Usage:
//
//	a, err := floats.TryNew(0.0)        // Verified[float64]
//	q := a.Div(a)                       // Unverified, carries a payload
//	_, err = q.Sanitize()               // "...: Division of zero by zero resulted in NaN"
//
// Errors: match with errors.Is(err, floats.ErrNaN / ErrPosInf / ErrNegInf),
// extract the full diagnostic with errors.As into *floats.NaNError.
//
// Elementary functions that cannot invalidate their input (Neg, Abs,
// Signum, Floor, Ceil, Round, Trunc) return the same wrapper kind;
// everything that can newly produce NaN or Inf (Sqrt, Log, Pow, Recip,
// MulAdd, trigonometry, ...) returns Unverified.
//
// All values are plain immutable structs, safe to copy and to use from
// multiple goroutines.
package floats
