// SPDX-License-Identifier: MIT
// Package nanbits: payload codec over exact float bit patterns.
// This file defines the Float constraint, the same-width reinterpretation
// primitives (Bits/FromBits), and the Encode/Decode payload codec.

package nanbits

import (
	"errors"
	"fmt"
	"unsafe"

	"fortio.org/safecast"
	"golang.org/x/exp/constraints"
)

// Float is the set of types a payload can be carried in.
type Float interface {
	constraints.Float
}

// Bit-layout constants per width. The payload occupies every mantissa bit
// below the quiet bit; the empty-NaN pattern is the canonical quiet NaN
// hardware produces for invalid operations (payload bits all zero).
const (
	f32PayloadMask uint64 = 0x1F_FFFF
	f32EmptyNaN    uint64 = 0x7FC0_0000
	f32SignMask    uint64 = 1 << 31

	f64PayloadMask uint64 = 0x3_FFFF_FFFF_FFFF
	f64EmptyNaN    uint64 = 0x7FF8_0000_0000_0000
	f64SignMask    uint64 = 1 << 63
)

// ErrPayloadOverflow indicates an index too large (or negative) to embed
// in the mantissa of the target float width.
var ErrPayloadOverflow = errors.New("nanbits: payload index exceeds mask")

// DecodeKind describes what Decode found in a value.
type DecodeKind uint8

const (
	// NotNaN: the value is an ordinary (non-NaN) float.
	NotNaN DecodeKind = iota

	// EmptyNaN: a NaN whose payload bits are all zero — a genuine,
	// externally produced NaN carrying no diagnostic index.
	EmptyNaN

	// Payloaded: a NaN carrying an embedded index.
	Payloaded
)

// String returns a short human-readable name for the kind.
func (k DecodeKind) String() string {
	switch k {
	case NotNaN:
		return "not-a-NaN"
	case EmptyNaN:
		return "empty NaN"
	case Payloaded:
		return "payloaded"
	default:
		return fmt.Sprintf("DecodeKind(%d)", uint8(k))
	}
}

// layout reports the payload mask, empty-NaN pattern and sign mask for
// the width of F. Bit patterns for float32 live in the low 32 bits.
func layout[F Float]() (payloadMask, emptyNaN, signMask uint64) {
	var zero F
	if unsafe.Sizeof(zero) == 4 {
		return f32PayloadMask, f32EmptyNaN, f32SignMask
	}
	return f64PayloadMask, f64EmptyNaN, f64SignMask
}

// Bits reinterprets f as its raw bit pattern at the same width.
// Unlike a value conversion, this never normalizes: signaling-NaN
// patterns come back bit-for-bit.
func Bits[F Float](f F) uint64 {
	if unsafe.Sizeof(f) == 4 {
		return uint64(*(*uint32)(unsafe.Pointer(&f)))
	}
	return *(*uint64)(unsafe.Pointer(&f))
}

// FromBits reinterprets a raw bit pattern as a float of type F.
// For 32-bit floats the pattern is taken from the low 32 bits of w.
func FromBits[F Float](w uint64) F {
	var f F
	if unsafe.Sizeof(f) == 4 {
		u := uint32(w)
		return *(*F)(unsafe.Pointer(&u))
	}
	return *(*F)(unsafe.Pointer(&w))
}

// IsNaN reports whether f is an IEEE-754 "not-a-number" value.
// Only NaNs satisfy f != f.
func IsNaN[F Float](f F) bool {
	return f != f
}

// Signbit reports whether the sign bit of f is set, reading the bit
// pattern directly so that NaN signs are observed exactly.
func Signbit[F Float](f F) bool {
	_, _, signMask := layout[F]()
	return Bits(f)&signMask != 0
}

// Encode embeds index into the mantissa of a fresh quiet NaN of type F.
//
// The stored payload is index+1, keeping payload 0 reserved for the
// empty NaN. Returns ErrPayloadOverflow when index is negative or
// index+1 does not fit the width's payload mask.
func Encode[F Float](index int) (F, error) {
	var zero F
	payloadMask, emptyNaN, _ := layout[F]()
	word, err := safecast.Conv[uint64](index)
	if err != nil {
		return zero, fmt.Errorf("encode index %d: %w", index, ErrPayloadOverflow)
	}
	word++
	if word > payloadMask {
		return zero, fmt.Errorf("encode index %d: %w", index, ErrPayloadOverflow)
	}
	return FromBits[F](emptyNaN | word), nil
}

// Decode inspects f and reports what it carries:
//
//	NotNaN    — f is not a NaN; index is 0 and meaningless.
//	EmptyNaN  — f is a NaN with zero payload bits; no index attached.
//	Payloaded — f carries an index; index = payload-1.
func Decode[F Float](f F) (index int, kind DecodeKind) {
	if !IsNaN(f) {
		return 0, NotNaN
	}
	payloadMask, _, _ := layout[F]()
	payload := Bits(f) & payloadMask
	if payload == 0 {
		return 0, EmptyNaN
	}
	index, err := safecast.Conv[int](payload - 1)
	if err != nil {
		// Unreachable on 64-bit platforms: the widest payload is 51 bits.
		panic(fmt.Sprintf("nanbits: payload %#x does not fit int", payload))
	}
	return index, Payloaded
}

// IsPayloaded reports whether f is a NaN carrying an embedded index.
func IsPayloaded[F Float](f F) bool {
	_, kind := Decode(f)
	return kind == Payloaded
}
