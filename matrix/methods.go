// SPDX-License-Identifier: MIT
// Package matrix: value-style methods on *Dense.
//
// Every method here delegates to the canonical kernel in
// impl_linear_algebra.go and narrows the result back to *Dense, so chains
// like a.MulWith(b) → .T() keep the concrete type. The receiver is never
// mutated.

package matrix

// asDense narrows a kernel result. Kernels always allocate *Dense.
func asDense(m Matrix, err error) (*Dense, error) {
	if err != nil {
		return nil, err
	}

	return m.(*Dense), nil
}

// AddWith returns m + other. See Add.
func (m *Dense) AddWith(other Matrix) (*Dense, error) { return asDense(Add(m, other)) }

// SubWith returns m − other. See Sub.
func (m *Dense) SubWith(other Matrix) (*Dense, error) { return asDense(Sub(m, other)) }

// MulWith returns the product m × other; m.Cols() must equal other.Rows(),
// i.e. m's width must equal other's height. See Mul.
func (m *Dense) MulWith(other Matrix) (*Dense, error) { return asDense(Mul(m, other)) }

// T returns the transpose of m. See Transpose.
func (m *Dense) T() (*Dense, error) { return asDense(Transpose(m)) }

// ScaleBy returns alpha·m. See Scale.
func (m *Dense) ScaleBy(alpha float64) (*Dense, error) { return asDense(Scale(m, alpha)) }

// DotWith returns the inner product of two 1×n row vectors. See Dot.
func (m *Dense) DotWith(other Matrix) (float64, error) { return Dot(m, other) }

// CrossWith returns the cross product of two 1×3 row vectors. See Cross.
func (m *Dense) CrossWith(other Matrix) (*Dense, error) { return asDense(Cross(m, other)) }
