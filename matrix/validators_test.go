package matrix_test

import (
	"testing"

	"github.com/katalvlaran/densemat/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidators(t *testing.T) {
	a := MustDense(t, 2, 3)
	b := MustDense(t, 3, 2)

	require.NoError(t, matrix.ValidateNotNil(a))
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	var typedNil *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(typedNil), matrix.ErrNilMatrix)

	require.ErrorIs(t, matrix.ValidateSameShape(a, b), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateBinarySameShape(a, a.Clone()))
	require.ErrorIs(t, matrix.ValidateBinarySameShape(a, nil), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateMulCompatible(a, b))
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, a), matrix.ErrDimensionMismatch)

	require.NoError(t, matrix.ValidateRowVector(matrix.NewRowVector(1, 2, 3), 3))
	require.NoError(t, matrix.ValidateRowVector(matrix.NewRowVector(), -1))
	require.ErrorIs(t, matrix.ValidateRowVector(matrix.NewRowVector(1, 2), 3), matrix.ErrNotVector)
	require.ErrorIs(t, matrix.ValidateRowVector(a, -1), matrix.ErrNotVector)

	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
	require.NoError(t, matrix.ValidateVecLen(nil, 0))
	require.ErrorIs(t, matrix.ValidateVecLen(nil, 2), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
}

func TestAPIFacades(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2}, {3, 4}})

	z, err := matrix.ZerosLike(m)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0, 0}, {0, 0}}, z)

	_, err = matrix.ZerosLike(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	z2, err := matrix.NewZeros(1, 2)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0, 0}}, z2)

	p, err := matrix.Product(m, m)
	require.NoError(t, err)
	s, err := matrix.Sum(p, m)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{8, 12}, {18, 26}}, s)

	tr, err := matrix.T(m)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 3}, {2, 4}}, tr)

	c := matrix.CloneMatrix(m)
	require.NoError(t, c.Set(0, 0, -1))
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
}
