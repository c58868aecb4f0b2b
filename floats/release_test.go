// Package floats_test verifies release-mode behavior: no payloads, no
// registry, generic classification-based errors only.

//go:build cleanfloat_release

package floats_test

import (
	"errors"
	"math"
	"testing"

	"github.com/floatlab/cleanfloat/floats"
	"github.com/floatlab/cleanfloat/nanbits"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRelease_NoPayloadOnNaNResults: arithmetic produces plain NaNs with
// empty payload bits.
func TestRelease_NoPayloadOnNaNResults(t *testing.T) {
	zero, err := floats.TryNew(0.0)
	require.NoError(t, err)

	q := zero.Div(zero)
	require.True(t, nanbits.IsNaN(q.Raw()))
	assert.False(t, nanbits.IsPayloaded(q.Raw()), "release builds embed no payloads")
}

// TestRelease_GenericSanitizeError: sanitize reports a classification-
// based message with no record attached.
func TestRelease_GenericSanitizeError(t *testing.T) {
	zero, err := floats.TryNew(0.0)
	require.NoError(t, err)

	_, err = zero.Div(zero).Sanitize()
	require.Error(t, err)
	assert.ErrorIs(t, err, floats.ErrNaN)

	var nerr *floats.NaNError
	require.True(t, errors.As(err, &nerr))
	assert.Nil(t, nerr.Record, "release builds resolve no records")
	assert.Equal(t, "Sanitization of NaN", nerr.Error())
}

// TestRelease_PayloadedInputNotResolved: even a NaN whose bits happen to
// look like a carrier gets the generic path — payloads are never read.
func TestRelease_PayloadedInputNotResolved(t *testing.T) {
	carrier, err := nanbits.Encode[float64](7)
	require.NoError(t, err)

	var nerr *floats.NaNError
	_, err = floats.Taint(carrier).Sanitize()
	require.Error(t, err)
	require.True(t, errors.As(err, &nerr))
	assert.Nil(t, nerr.Record)

	_, err = floats.Taint(math.NaN()).Add(floats.Taint(1.0)).Sanitize()
	assert.ErrorIs(t, err, floats.ErrNaN)
}
