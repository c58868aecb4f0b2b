// Package cleanfloat keeps NaN out of your domain logic: it splits every
// floating-point value into one of two compile-time states — verified
// (guaranteed not NaN) or unverified (just computed, not yet trusted) —
// and explains, after the fact, exactly why a value went bad.
//
// 🚀 What is cleanfloat?
//
//	A small, thread-safe library that brings together:
//		• Verified / Unverified wrappers: the type system tracks trust, not runtime flags
//		• A single narrowing conversion: Sanitize, the only road back to verified
//		• NaN-payload diagnostics: invalid results smuggle a registry index
//		  inside the NaN's mantissa bits, resolved later into a full story
//		  ("Division of zero by zero resulted in NaN", with file:line)
//		• Sticky first error: once a computation goes bad, the earliest
//		  failure site survives any number of further operations
//
// ✨ Why choose cleanfloat?
//
//   - Deferred checking — arithmetic never fails synchronously; all
//     validation happens once, at the Sanitize boundary
//   - Rich forensics — diagnostic builds record the operation, both operand
//     classes and a best-effort source location for every new NaN
//   - Release mode — build with -tags cleanfloat_release and the registry,
//     classification and capture machinery vanish entirely
//   - Pure Go — no cgo, generic over float32 and float64
//
// Under the hood, everything is organized under three subpackages:
//
//	nanbits/ — exact bit-level NaN payload codec + IEEE-754 classifier
//	diag/    — diagnostic records, rendering, and the process-wide registry
//	floats/  — Verified/Unverified types, arithmetic, elementary functions
//
// Quick sketch of the state machine:
//
//	Verified --(op)--> Unverified[±diagnostic] --(Sanitize)--> Verified | error
//
// Build tags:
//
//	cleanfloat_release — release mode: no registry, generic errors only
//	cleanfloat_bounded — bounded policy: verified floats also exclude ±Inf
//
//	go get github.com/floatlab/cleanfloat/floats
package cleanfloat
