// Package diag turns an invalid floating-point result into a story:
// which operation failed, what its operands looked like, and (best
// effort) where in the source it happened.
//
// 🚀 What is diag?
//
//	Two cooperating pieces:
//	  • Record — an immutable description of one failure: the operation
//	    kind, the IEEE-754 class of each operand, and an optional
//	    file:line captured at the failure site. Message() renders it as
//	    "Division of zero by zero resulted in NaN" or
//	    "Sanitization of NaN", optionally prefixed with the location.
//	  • The registry — a process-wide, mutex-protected side table mapping
//	    a monotonically issued index to a Record. Arithmetic inserts a
//	    record when it newly produces NaN and embeds the index into the
//	    result's NaN payload; the narrowing conversion removes it exactly
//	    once when the payload is decoded.
//
// ⚙️ Contract:
//
//	idx := diag.Insert(rec)   // indices start at 1, never reused
//	rec := diag.Remove(idx)   // panics if idx is absent — double
//	                          // consumption or payload corruption is a
//	                          // programming defect, not a runtime error
//
// The registry compiles only in diagnostic builds; under the
// cleanfloat_release tag the package shrinks to the Record type and its
// rendering, and nothing references the side table.
//
// Concurrency: Insert and Remove serialize on one internal lock, held
// only for the duration of the call. Records are plain values.
package diag
