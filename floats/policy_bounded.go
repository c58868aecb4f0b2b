// Bounded-verified policy: Verified values exclude NaN and ±Inf.
// Selected with -tags cleanfloat_bounded.

//go:build cleanfloat_bounded

package floats

const boundedVerified = true
