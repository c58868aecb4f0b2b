// SPDX-License-Identifier: MIT
// Package diag: diagnostic record type and rendering.
// This file is build-tag free: records and their messages exist in both
// diagnostic and release builds (release builds render generic messages).

package diag

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/floatlab/cleanfloat/nanbits"
)

// Op identifies the operation that produced an invalid result.
type Op uint8

const (
	// OpAdd — binary addition.
	OpAdd Op = iota + 1

	// OpSub — binary subtraction.
	OpSub

	// OpMul — binary multiplication.
	OpMul

	// OpDiv — binary division.
	OpDiv

	// OpSanitize — the narrowing conversion itself; used for generic
	// errors on NaNs that carry no diagnostic payload.
	OpSanitize
)

// String returns the operation name as it appears in messages.
func (o Op) String() string {
	switch o {
	case OpAdd:
		return "Addition"
	case OpSub:
		return "Subtraction"
	case OpMul:
		return "Multiplication"
	case OpDiv:
		return "Division"
	case OpSanitize:
		return "Sanitization"
	default:
		return fmt.Sprintf("Op(%d)", uint8(o))
	}
}

// Record describes why one operation produced an invalid float.
// A Record is immutable once created; Sanitization records use only Left.
type Record struct {
	// Op is the operation that failed.
	Op Op

	// Left and Right are the IEEE-754 classes of the operands at the
	// moment of failure.
	Left, Right nanbits.Class

	// File and Line locate the failure site, best effort.
	// File is empty when no location was captured.
	File string
	Line int
}

// Message renders the record for humans:
//
//	"<op> of <left-class> by <right-class> resulted in NaN"
//	"Sanitization of <class>"
//
// optionally prefixed with "<file>:<line>: " when a location is present.
func (r Record) Message() string {
	var b strings.Builder
	if r.File != "" {
		fmt.Fprintf(&b, "%s:%d: ", r.File, r.Line)
	}
	if r.Op == OpSanitize {
		fmt.Fprintf(&b, "Sanitization of %s", r.Left)
	} else {
		fmt.Fprintf(&b, "%s of %s by %s resulted in NaN", r.Op, r.Left, r.Right)
	}
	return b.String()
}

// Capture builds a Record for op over operands of the given classes and
// attaches the caller's source location. skip counts stack frames above
// Capture itself, as in runtime.Caller; location capture is best effort
// and the record is still valid when it fails.
func Capture(op Op, left, right nanbits.Class, skip int) Record {
	r := Record{Op: op, Left: left, Right: right}
	if _, file, line, ok := runtime.Caller(skip + 1); ok {
		r.File = filepath.Base(file)
		r.Line = line
	}
	return r
}
