//go:build !cleanfloat_release

package floats_test

import (
	"errors"
	"fmt"

	"github.com/floatlab/cleanfloat/floats"
)

// //////////////////////////////////////////////////////////////////////////////
// Example (diagnostic build)
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A computation goes bad deep inside a pipeline; the caller only finds
//	out at the trust boundary — and still learns which operation failed
//	and what the operands looked like, because the NaN smuggled a
//	registry index in its payload bits.
//
// The rendered message also carries a "<file>:<line>: " prefix naming
// the failure site; the example prints the structured fields instead,
// since line numbers shift.
func Example_diagnosticStory() {
	zero, _ := floats.TryNew(0.0)
	one, _ := floats.TryNew(1.0)

	bad := zero.Div(zero) // failure happens here...
	bad = bad.Add(one)    // ...and survives further arithmetic
	bad = bad.Mul(bad)

	_, err := bad.Sanitize()
	var nerr *floats.NaNError
	if errors.As(err, &nerr) && nerr.Record != nil {
		fmt.Println(nerr.Record.Op, "|", nerr.Record.Left, "|", nerr.Record.Right)
	}
	// Output: Division | zero | zero
}
