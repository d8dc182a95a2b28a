// Package densemat is a small, well-specified dense matrix library.
//
// What is densemat?
//
//	A zero-surprise float64 matrix value type with:
//		• Construction from shapes, rows or columns
//		• Checked element access (errors, never panics)
//		• Add, Mul, Transpose and friends, always returning new values
//		• Row-vector Dot and Cross products
//		• Interop with gonum/mat
//
// Under the hood, everything lives in one subpackage:
//
//	matrix/   — Dense, validators, options, kernels, gonum converters
//	examples/ — runnable programs using the public API
//
// Quick example (rows (1,2),(3,4) squared):
//
//	[1 2]   [1 2]   [ 7 10]
//	[3 4] × [3 4] = [15 22]
//
//	go get github.com/katalvlaran/densemat/matrix
package densemat
