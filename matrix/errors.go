// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Kernels return these sentinels (optionally wrapped with an
// operation tag) and tests check them via errors.Is. No exported function
// panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap with fmt.Errorf("Op: %w", ErrX);
// callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> shape mismatch -> vector restriction -> empty reduction.

var (
	// ErrBadShape is returned when caller-supplied data is not rectangular or
	// carries no rows/columns at all (FromRows, FromColumns, FromGonum).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNotVector signals that an operand is not a row vector of the shape an
	// operation requires (Dot: 1×n, Cross: 1×3).
	ErrNotVector = errors.New("matrix: operand is not a row vector of the required length")

	// ErrEmptyReduction signals a reduction over zero elements (Dot of two 1×0
	// vectors). It is distinct from a numeric zero result.
	ErrEmptyReduction = errors.New("matrix: reduction over empty vector")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (Set under WithValidateNaNInf, tolerances).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// ErrIndexOutOfBounds is a synonym of ErrOutOfRange; errors.Is matches either.
var ErrIndexOutOfBounds = ErrOutOfRange
