// Package nanbits provides exact, bit-level access to IEEE-754 values:
// a NaN payload codec and a value classifier, generic over float32
// and float64.
//
// 🚀 What is nanbits?
//
//	The low-level substrate of cleanfloat:
//	  • Bits / FromBits — same-width reinterpretation of a float's bit
//	    pattern. Never a value conversion, so signaling-NaN patterns
//	    round-trip unchanged instead of being silently quieted.
//	  • Encode / Decode — store a small non-negative integer inside the
//	    mantissa of a quiet NaN, and read it back. Payload 0 is reserved:
//	    a NaN whose payload bits are all zero (the pattern hardware
//	    produces for 0.0/0.0) is an "empty" NaN carrying no index.
//	  • ClassOf — categorize a value as finite, ±0, ±Inf or NaN, with
//	    human-readable names for diagnostic messages.
//
// Payload capacity:
//
//	float32 — 21 payload bits, indices 0 .. 2^21-2
//	float64 — 51 payload bits, indices 0 .. 2^51-2
//
// Encode stores index+1 so that index 0 remains distinguishable from the
// empty NaN; Decode undoes the shift. Indices outside the mask fail with
// ErrPayloadOverflow.
//
// ⚙️ Usage:
//
//	f, err := nanbits.Encode[float64](42)   // a quiet NaN carrying 42
//	idx, kind := nanbits.Decode(f)          // 42, nanbits.Payloaded
//
// All functions are pure and safe for concurrent use.
package nanbits
