// SPDX-License-Identifier: MIT
// Package matrix: converters between Dense and gonum's mat package, for
// callers that need decompositions or BLAS-backed kernels on top of the
// values built here.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	ctxToGonum   = "ToGonum"
	ctxFromGonum = "FromGonum"
)

// ToGonum copies m into a freshly allocated *mat.Dense.
// gonum cannot represent zero-sized dense matrices, so empty inputs fail.
//
// Errors:
//   - ErrNilMatrix, ErrBadShape (zero rows or columns).
//
// Complexity: Time O(r*c), Space O(r*c).
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(ctxToGonum, err)
	}
	r, c := m.Rows(), m.Cols()
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("%s: %dx%d: %w", ctxToGonum, r, c, ErrBadShape)
	}

	buf := make([]float64, r*c)
	if d, ok := m.(*Dense); ok {
		copy(buf, d.data) // both layouts are row-major with stride == cols
	} else {
		var err error
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				if buf[i*c+j], err = m.At(i, j); err != nil {
					return nil, matrixErrorf(ctxToGonum, err)
				}
			}
		}
	}

	return mat.NewDense(r, c, buf), nil
}

// FromGonum copies any gonum mat.Matrix (Dense, transposes, views, ...) into
// a new *Dense owning its own buffer.
//
// Errors:
//   - ErrNilMatrix when src is nil.
func FromGonum(src mat.Matrix, opts ...Option) (*Dense, error) {
	if src == nil {
		return nil, matrixErrorf(ctxFromGonum, ErrNilMatrix)
	}
	r, c := src.Dims()
	out, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, matrixErrorf(ctxFromGonum, err)
	}
	for i := 0; i < out.r; i++ {
		for j := 0; j < out.c; j++ {
			out.data[i*out.c+j] = src.At(i, j)
		}
	}

	return out, nil
}
