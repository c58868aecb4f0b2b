// Default policy: unbounded-verified. Verified values exclude NaN only;
// ±Inf passes validation. Build with -tags cleanfloat_bounded to exclude
// infinities as well.

//go:build !cleanfloat_bounded

package floats

const boundedVerified = false
