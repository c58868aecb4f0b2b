// Package floats_test verifies the diagnostic operator contract:
// capture of newly invalid results, sticky first error, tie-breaks,
// and exactly-once consumption of registry records.

//go:build !cleanfloat_release

package floats_test

import (
	"errors"
	"math"
	"testing"

	"github.com/floatlab/cleanfloat/diag"
	"github.com/floatlab/cleanfloat/floats"
	"github.com/floatlab/cleanfloat/nanbits"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustVerified is a small helper for operands the test knows are valid.
func mustVerified(t *testing.T, raw float64) floats.F64 {
	t.Helper()
	v, err := floats.TryNew(raw)
	require.NoError(t, err)
	return v
}

// TestDiv_ZeroByZero: 0/0 yields an unverified value whose Sanitize
// fails naming the division and both operands as "zero", and drains the
// registry record it created.
func TestDiv_ZeroByZero(t *testing.T) {
	before := diag.Len()
	zero := mustVerified(t, 0)

	q := zero.Div(zero)
	require.True(t, nanbits.IsPayloaded(q.Raw()), "newly invalid result must carry a payload")
	require.Equal(t, before+1, diag.Len(), "one record per new invalidity")

	_, err := q.Sanitize()
	require.Error(t, err)
	assert.ErrorIs(t, err, floats.ErrNaN)

	var nerr *floats.NaNError
	require.True(t, errors.As(err, &nerr))
	require.NotNil(t, nerr.Record)
	assert.Equal(t, diag.OpDiv, nerr.Record.Op)
	assert.Equal(t, nanbits.PosZero, nerr.Record.Left)
	assert.Equal(t, nanbits.PosZero, nerr.Record.Right)
	assert.Contains(t, err.Error(), "Division of zero by zero resulted in NaN")
	assert.Contains(t, err.Error(), "ops_test.go:", "best-effort location names this file")

	assert.Equal(t, before, diag.Len(), "record consumed exactly once at sanitize")
}

// TestMul_InfByZero captures the operand classes of a multiplication
// failure.
func TestMul_InfByZero(t *testing.T) {
	inf := floats.Taint(math.Inf(1))
	zero := mustVerified(t, 0)

	_, err := inf.Mul(zero).Sanitize()
	require.Error(t, err)

	var nerr *floats.NaNError
	require.True(t, errors.As(err, &nerr))
	require.NotNil(t, nerr.Record)
	assert.Equal(t, diag.OpMul, nerr.Record.Op)
	assert.Equal(t, nanbits.PosInf, nerr.Record.Left)
	assert.Equal(t, nanbits.PosZero, nerr.Record.Right)
}

// TestStickyFirstError: a value already carrying diagnostic A keeps
// reporting A through any chain of further binary operations.
func TestStickyFirstError(t *testing.T) {
	zero := mustVerified(t, 0)
	one := mustVerified(t, 1)

	bad := zero.Div(zero) // diagnostic A: Division of zero by zero
	badBits := nanbits.Bits(bad.Raw())

	chained := bad.Add(one).Mul(floats.Taint(2.5)).Sub(one).Div(one)
	assert.Equal(t, badBits, nanbits.Bits(chained.Raw()),
		"further operations must forward the diagnosed NaN unchanged")

	_, err := chained.Sanitize()
	var nerr *floats.NaNError
	require.True(t, errors.As(err, &nerr))
	require.NotNil(t, nerr.Record)
	assert.Equal(t, diag.OpDiv, nerr.Record.Op, "earliest failure survives")
	assert.Equal(t, nanbits.PosZero, nerr.Record.Left)

	// The operand on the right of a sticky operation also stays intact.
	sticky := one.Add(bad2(t))
	_, err = sticky.Sanitize()
	require.True(t, errors.As(err, &nerr))
	require.NotNil(t, nerr.Record)
	assert.Equal(t, diag.OpAdd, nerr.Record.Op)
}

// bad2 produces a fresh diagnosed NaN from Inf + (-Inf).
func bad2(t *testing.T) floats.DirtyF64 {
	t.Helper()
	u := floats.Taint(math.Inf(1)).Add(floats.Taint(math.Inf(-1)))
	require.True(t, nanbits.IsPayloaded(u.Raw()))
	return u
}

// TestTieBreak_LeftWins: when both operands carry payloads, the left
// operand's diagnostic propagates.
func TestTieBreak_LeftWins(t *testing.T) {
	zero := mustVerified(t, 0)
	left := zero.Div(zero) // Division record
	right := bad2(t)       // Addition record

	out := left.Mul(right)
	assert.Equal(t, nanbits.Bits(left.Raw()), nanbits.Bits(out.Raw()),
		"left payload must win the tie-break")

	var nerr *floats.NaNError
	_, err := out.Sanitize()
	require.True(t, errors.As(err, &nerr))
	require.NotNil(t, nerr.Record)
	assert.Equal(t, diag.OpDiv, nerr.Record.Op)

	// The loser's record is still pending; drain it through its own value.
	_, err = right.Sanitize()
	require.True(t, errors.As(err, &nerr))
	assert.Equal(t, diag.OpAdd, nerr.Record.Op)
}

// TestDoubleConsumePanics: decoding the same payload twice is a
// programming defect and panics in the registry.
func TestDoubleConsumePanics(t *testing.T) {
	zero := mustVerified(t, 0)
	bad := zero.Div(zero)

	_, err := bad.Sanitize()
	require.Error(t, err)

	assert.Panics(t, func() { _, _ = bad.Sanitize() },
		"second sanitize of the same payload must panic")
}

// TestElementary_ForwardsPayload: elementary pass-throughs keep a
// diagnosed NaN bit-for-bit, so stickiness survives them too.
func TestElementary_ForwardsPayload(t *testing.T) {
	zero := mustVerified(t, 0)
	bad := zero.Div(zero)
	badBits := nanbits.Bits(bad.Raw())

	through := bad.Sqrt().Floor().Abs().Exp().Signum()
	assert.Equal(t, badBits, nanbits.Bits(through.Raw()))

	var nerr *floats.NaNError
	_, err := through.Sanitize()
	require.True(t, errors.As(err, &nerr))
	require.NotNil(t, nerr.Record)
	assert.Equal(t, diag.OpDiv, nerr.Record.Op)
}

// TestFloat32_Diagnostics: the contract holds at 32-bit width.
func TestFloat32_Diagnostics(t *testing.T) {
	zero32, err := floats.TryNew(float32(0))
	require.NoError(t, err)

	q := zero32.Div(zero32)
	require.True(t, nanbits.IsPayloaded(q.Raw()))

	var nerr *floats.NaNError
	_, err = q.Sanitize()
	require.Error(t, err)
	require.True(t, errors.As(err, &nerr))
	require.NotNil(t, nerr.Record)
	assert.Equal(t, diag.OpDiv, nerr.Record.Op)
	assert.Equal(t, nanbits.PosZero, nerr.Record.Left)
	assert.Equal(t, nanbits.PosZero, nerr.Record.Right)
}

// TestGoCanonicalNaNOperand: math.NaN() is not a registry carrier; it
// propagates sticky but sanitizes to a generic error, never a lookup.
func TestGoCanonicalNaNOperand(t *testing.T) {
	one := mustVerified(t, 1)
	u := floats.Taint(math.NaN()).Add(one)

	var nerr *floats.NaNError
	_, err := u.Sanitize()
	require.Error(t, err)
	require.True(t, errors.As(err, &nerr))
	assert.Nil(t, nerr.Record, "canonical NaN resolves no record")
}
