// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition and subtraction, matrix multiplication, transpose,
// scalar scaling, and the row-vector products Dot and Cross. All functions
// perform strict fail-fast validation and return clear errors on dimension
// mismatches. Operands are never mutated; every result is a fresh *Dense.
//
// Notes:
//   - All kernels use the central validators and wrap failures via matrixErrorf.
//   - Arithmetic is plain IEEE-754: NaN and ±Inf propagate, nothing is clamped.

package matrix

import "fmt"

// ZeroSum is the initial value of every accumulator.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opHadamard  = "Hadamard"
	opMatVec    = "MatVec"
	opDot       = "Dot"
	opCross     = "Cross"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At/Set with fixed i→j order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Implementation:
//   - Stage 1: Validate both operands are non-nil and have identical shapes.
//   - Stage 2: If both are *Dense, run a single flat loop; otherwise fall back to i→j.
//
// Behavior highlights:
//   - Commutative bit-for-bit (IEEE addition is commutative).
//   - NaN/Inf propagate under standard IEEE-754 rules.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
// Same contract as Add.
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// In Size() terms the precondition reads a.width == b.height.
// Implementation:
//   - Stage 1: Validate A,B (not nil) and the contraction dimension (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides;
//     otherwise use i→j→k through At.
//
// Behavior highlights:
//   - C[i,j] = Σ_k A[i,k]·B[k,j]. For rows (1,2),(3,4) squared the result is
//     rows (7,10),(15,22).
//   - No zero-skipping: 0·Inf yields NaN exactly as IEEE-754 prescribes.
//   - A failing lookup in the generic path is returned as an error, never
//     treated as a zero contribution.
//   - An empty contraction (A is r×0, B is 0×c) yields the r×c zero matrix.
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - Matrix: new Dense C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (A.Cols != B.Rows).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
//
// AI-Hints:
//   - To multiply by a 1×n row vector from the left, pass it as A; its Cols must match B.Rows.
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + k; db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < res.r; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * res.c
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					rowOffsetB = k * bCols
					for j = 0; j < res.c; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k).
	for i = 0; i < res.r; i++ {
		for j = 0; j < res.c; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				current += av * bv
			}
			res.data[i*res.c+j] = current
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate Dense(cols, rows).
//   - Stage 2: If m is *Dense, use flat index mapping; else generic i→j loop.
//
// Behavior highlights:
//   - Involutive on every shape, the zero-sized ones included.
//   - An r×0 input has no entries to carry; the result is the empty 0×r matrix.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	if len(res.data) == 0 {
		return res, nil
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	if dm, ok := m.(*Dense); ok {
		for idx := range res.data {
			res.data[idx] = dm.data[idx] * alpha
		}

		return res, nil
	}

	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
			res.data[i*cols+j] = v * alpha
		}
	}

	return res, nil
}

// Hadamard computes the elementwise product (a ⊙ b) with a fresh Dense result.
// Both inputs must be non-nil and have identical shapes.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Hadamard(a, b Matrix) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				res.data[idx] = da.data[idx] * db.data[idx]
			}

			return res, nil
		}
	}

	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opHadamard, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opHadamard, err)
			}
			res.data[i*cols+j] = av * bv
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// Dot computes the inner product of two row vectors: Σ_j a[0,j]·b[0,j].
// MAIN DESCRIPTION:
//   - Defined only for two 1×n operands of identical shape with n >= 1.
//
// Implementation:
//   - Stage 1: NotNil → SameShape → RowVector → non-empty.
//   - Stage 2: accumulate products left to right (j = 0..n-1).
//
// Returns:
//   - float64: the inner product.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (shapes differ),
//     ErrNotVector (Rows != 1), ErrEmptyReduction (n == 0).
//
// Determinism:
//   - Fixed summation order, so results are reproducible bit-for-bit.
//
// Complexity:
//   - Time O(n), Space O(1).
//
// Notes:
//   - Two 1×0 vectors do NOT yield 0; they yield ErrEmptyReduction.
func Dot(a, b Matrix) (float64, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return 0, matrixErrorf(opDot, err)
	}
	if err := ValidateRowVector(a, -1); err != nil {
		return 0, matrixErrorf(opDot, err)
	}
	n := a.Cols()
	if n == 0 {
		return 0, matrixErrorf(opDot, ErrEmptyReduction)
	}

	sum := ZeroSum
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for j := 0; j < n; j++ {
				sum += da.data[j] * db.data[j]
			}

			return sum, nil
		}
	}

	var av, bv float64
	var err error
	for j := 0; j < n; j++ {
		if av, err = a.At(0, j); err != nil {
			return 0, matrixErrorf(opDot, err)
		}
		if bv, err = b.At(0, j); err != nil {
			return 0, matrixErrorf(opDot, err)
		}
		sum += av * bv
	}

	return sum, nil
}

// Cross computes the 3-dimensional cross product of two 1×3 row vectors.
//
//	c0 = a1·b2 − a2·b1
//	c1 = a2·b0 − a0·b2
//	c2 = a0·b1 − a1·b0
//
// Errors: ErrNilMatrix, ErrNotVector (either operand is not exactly 1×3).
// Complexity: O(1).
func Cross(a, b Matrix) (Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opCross, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opCross, err)
	}
	if err := ValidateRowVector(a, crossLen); err != nil {
		return nil, matrixErrorf(opCross, err)
	}
	if err := ValidateRowVector(b, crossLen); err != nil {
		return nil, matrixErrorf(opCross, err)
	}

	x, err := rowValues(a, crossLen)
	if err != nil {
		return nil, matrixErrorf(opCross, err)
	}
	y, err := rowValues(b, crossLen)
	if err != nil {
		return nil, matrixErrorf(opCross, err)
	}

	res, err := NewDense(1, crossLen)
	if err != nil {
		return nil, matrixErrorf(opCross, err)
	}
	res.data[0] = x[1]*y[2] - x[2]*y[1]
	res.data[1] = x[2]*y[0] - x[0]*y[2]
	res.data[2] = x[0]*y[1] - x[1]*y[0]

	return res, nil
}

// rowValues reads the first n entries of row 0.
func rowValues(m Matrix, n int) ([]float64, error) {
	if d, ok := m.(*Dense); ok {
		return d.data[:n], nil
	}
	out := make([]float64, n)
	var err error
	for j := 0; j < n; j++ {
		if out[j], err = m.At(0, j); err != nil {
			return nil, err
		}
	}

	return out, nil
}
