// Package floats: diagnostic-build detection path.
// checkBinary inspects every binary result for newly introduced
// invalidity and records it; nanError resolves payloads at the Sanitize
// boundary.

//go:build !cleanfloat_release

package floats

import (
	"github.com/floatlab/cleanfloat/diag"
	"github.com/floatlab/cleanfloat/nanbits"
)

// Stack frames between user code and runtime.Caller inside diag.Capture:
// user -> operator method -> checkBinary -> Capture.
const opCallerSkip = 2

// checkBinary computes op over a and b and handles invalidity:
//
//  1. An operand already carrying a payload is returned unchanged — the
//     earliest failure is sticky and never overwritten. When both carry
//     one, the left operand wins (deterministic tie-break).
//  2. A result that is newly NaN gets a registry record (operation,
//     operand classes, best-effort location) and the record's index
//     embedded in its payload bits.
func checkBinary[F nanbits.Float](op diag.Op, a, b F) F {
	if nanbits.IsPayloaded(a) {
		return a
	}
	if nanbits.IsPayloaded(b) {
		return b
	}
	result := apply(op, a, b)
	if !nanbits.IsNaN(result) {
		return result
	}
	rec := diag.Capture(op, nanbits.ClassOf(a), nanbits.ClassOf(b), opCallerSkip)
	index := diag.Insert(rec)
	carrier, err := nanbits.Encode[F](index)
	if err != nil {
		// Payload space exhausted for this width (2^21 pending float32
		// diagnostics). Drop the record and return the plain NaN.
		diag.Remove(index)
		return result
	}
	return carrier
}

// nanError builds the error for a NaN hitting the Sanitize boundary,
// consuming its registry record when one is attached.
//
// Index 0 is never issued (the registry counter starts at 1); Go's own
// math.NaN() bit pattern decodes to it, so such NaNs deliberately fall
// through to the generic path instead of a registry lookup.
func nanError[F nanbits.Float](raw F) error {
	if index, kind := nanbits.Decode(raw); kind == nanbits.Payloaded && index > 0 {
		rec := diag.Remove(index)
		return &NaNError{Class: nanbits.NaN, Record: &rec}
	}
	return &NaNError{Class: nanbits.ClassOf(raw)}
}
