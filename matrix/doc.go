// Package matrix offers a small dense float64 matrix value type.
//
// The matrix package provides:
//
//   - Dense, a row-major matrix that owns its storage. Indices are always
//     (row, col); Size reports (width, height) = (cols, rows).
//   - Constructors: NewDense(rows, cols), New(width, height), FromRows,
//     FromColumns, NewRowVector, NewIdentity.
//   - Checked access: At and Set return ErrOutOfRange instead of panicking.
//   - Algebra that always returns a fresh matrix: Add, Sub, Mul, Transpose,
//     Scale, Hadamard, MatVec, and the row-vector products Dot and Cross.
//   - Interop with gonum.org/v1/gonum/mat via ToGonum and FromGonum.
//
// Vectors are 1×n row matrices. Dot needs two of the same width and reports
// ErrEmptyReduction, not 0, for width 0; Cross needs two 1×3 vectors.
//
// Readers may share a Dense freely; Set and Apply need exclusive access.
//
// See the examples in this package for usage patterns.
package matrix
