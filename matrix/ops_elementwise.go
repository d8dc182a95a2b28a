// SPDX-License-Identifier: MIT
// Package matrix: element-wise numeric comparison.
//
// Purpose:
//   - AllClose: tolerance comparison with relative and absolute terms.
//   - Equal: shape + absolute-eps comparison driven by Options.
//
// Both walk the operands in fixed row-major order and exit on the first
// violation. NaN never compares close to anything; ±Inf is close only to
// the same infinity.

package matrix

import "math"

const opAllClose = "AllClose"

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol must be finite; negative values are normalized to |rtol|, |atol|.
//
// Errors:
//   - ErrNaNInf (bad tolerance), ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	r, c := a.Rows(), a.Cols()
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !closeEnough(da.data[idx], db.data[idx], rtol, atol) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	var av, bv float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if !closeEnough(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// Equal reports whether a and b have the same shape and every pair of
// entries differs by at most eps (WithEpsilon, default DefaultEpsilon).
// Nil operands or mismatched shapes compare unequal.
//
// AI-Hints:
//   - Equal(a, b, WithEpsilon(0)) is exact equality (still NaN-unequal).
func Equal(a, b Matrix, opts ...Option) bool {
	o := gatherOptions(opts...)
	ok, err := AllClose(a, b, 0, o.eps)

	return err == nil && ok
}

// closeEnough is the scalar predicate shared by AllClose and Equal.
func closeEnough(av, bv, rtol, atol float64) bool {
	if math.IsNaN(av) || math.IsNaN(bv) {
		return false
	}
	if math.IsInf(av, 0) || math.IsInf(bv, 0) {
		return av == bv
	}

	return math.Abs(av-bv) <= atol+rtol*math.Abs(bv)
}
