// SPDX-License-Identifier: MIT

// Package matrix: the Matrix interface shared by every kernel.
// Dense (impl_dense.go) is the only implementation shipped here; kernels
// accept the interface and take flat-slice fast paths for *Dense.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Indices are always (row, col), zero-based.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (row, col).
	// Returns ErrOutOfRange if row<0, row>=Rows(), col<0 or col>=Cols().
	// Complexity: O(1).
	At(row, col int) (float64, error)

	// Set assigns the value v at position (row, col).
	// Returns ErrOutOfRange if indices are invalid; the matrix is unchanged then.
	// Complexity: O(1).
	Set(row, col int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}
