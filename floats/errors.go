// Package floats: sentinel error set.
// All user-facing failures surface here; tests match them via errors.Is.
// The one record-carrying error (NaNError) matches ErrNaN through Is and
// is extracted with errors.As. Public operations never panic on
// user-triggered conditions.

package floats

import (
	"errors"

	"github.com/floatlab/cleanfloat/diag"
	"github.com/floatlab/cleanfloat/nanbits"
)

var (
	// ErrNaN indicates a NaN was encountered while validating a value.
	ErrNaN = errors.New("floats: NaN encountered")

	// ErrPosInf indicates +Inf was rejected by the bounded-verified policy.
	ErrPosInf = errors.New("floats: positive infinity rejected by bounded policy")

	// ErrNegInf indicates -Inf was rejected by the bounded-verified policy.
	ErrNegInf = errors.New("floats: negative infinity rejected by bounded policy")
)

// NaNError reports a NaN rejected by TryNew or Sanitize. When the NaN
// carried a diagnostic payload, Record holds the resolved registry entry
// explaining the original failure; otherwise Record is nil and the error
// renders a generic classification-based message.
type NaNError struct {
	// Class of the rejected raw value (always nanbits.NaN today; kept
	// explicit so messages stay truthful if validation grows).
	Class nanbits.Class

	// Record is the consumed diagnostic, nil when none was attached.
	Record *diag.Record
}

// Error renders the diagnostic story when present, or the generic
// "Sanitization of <class>" form.
func (e *NaNError) Error() string {
	if e.Record != nil {
		return e.Record.Message()
	}
	return diag.Record{Op: diag.OpSanitize, Left: e.Class}.Message()
}

// Is lets errors.Is(err, ErrNaN) match a NaNError.
func (e *NaNError) Is(target error) bool { return target == ErrNaN }
