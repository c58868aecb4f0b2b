// Package floats: release-build path. No registry, no classification,
// no branching beyond the native float operation; Sanitize reports
// generic classification-based errors only.

//go:build cleanfloat_release

package floats

import (
	"github.com/floatlab/cleanfloat/diag"
	"github.com/floatlab/cleanfloat/nanbits"
)

// checkBinary is plain native arithmetic in release builds.
func checkBinary[F nanbits.Float](op diag.Op, a, b F) F {
	return apply(op, a, b)
}

// nanError reports a generic classification-based error; no registry
// exists in release builds and payload bits are never inspected.
func nanError[F nanbits.Float](raw F) error {
	return &NaNError{Class: nanbits.ClassOf(raw)}
}
