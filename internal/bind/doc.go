// Package bind bridges variable vectors into HCL expression evaluation.
// Callback and expand-function arguments are written as expression strings
// in grammar definitions; bind exposes the matched variable vector as an
// evaluation scope and resolves those expressions to cty values.
//
// This is the one consumer of the vector package's process-wide
// keyword-exclusion mode: when it is on, keyword entries are left out of
// the evaluation scope.
package bind
