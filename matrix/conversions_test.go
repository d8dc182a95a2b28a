package matrix_test

import (
	"testing"

	"github.com/katalvlaran/densemat/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestGonumRoundTrip(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	g, err := matrix.ToGonum(m)
	require.NoError(t, err)
	r, c := g.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.Equal(t, 6.0, g.At(1, 2))

	// ToGonum copies; writes on the gonum side do not leak back.
	g.Set(0, 0, 42)
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))

	back, err := matrix.FromGonum(g.T())
	require.NoError(t, err)
	CompareExact(t, [][]float64{{42, 4}, {2, 5}, {3, 6}}, back)
}

func TestGonumGenericPath(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	g, err := matrix.ToGonum(hide{m})
	require.NoError(t, err)
	require.Equal(t, 3.0, g.At(1, 0))
}

func TestGonumErrors(t *testing.T) {
	_, err := matrix.ToGonum(matrix.NewRowVector())
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.ToGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.FromGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestKernelsAgainstGonum cross-checks Mul, Add and Transpose with gonum/mat.
func TestKernelsAgainstGonum(t *testing.T) {
	a := RandFilledDense(t, 5, 4, 11)
	b := RandFilledDense(t, 4, 6, 12)
	c := RandFilledDense(t, 5, 4, 13)

	ga, err := matrix.ToGonum(a)
	require.NoError(t, err)
	gb, err := matrix.ToGonum(b)
	require.NoError(t, err)
	gc, err := matrix.ToGonum(c)
	require.NoError(t, err)

	var wantMul, wantAdd mat.Dense
	wantMul.Mul(ga, gb)
	wantAdd.Add(ga, gc)

	gotMul, err := matrix.Mul(a, b)
	require.NoError(t, err)
	gotAdd, err := matrix.Add(a, c)
	require.NoError(t, err)
	gotT, err := matrix.Transpose(a)
	require.NoError(t, err)

	for name, pair := range map[string]struct {
		got  matrix.Matrix
		want mat.Matrix
	}{
		"mul":       {gotMul, &wantMul},
		"add":       {gotAdd, &wantAdd},
		"transpose": {gotT, ga.T()},
	} {
		t.Run(name, func(t *testing.T) {
			want, err := matrix.FromGonum(pair.want)
			require.NoError(t, err)
			CompareClose(t, pair.got, want, 1e-12, 1e-12)
		})
	}
}
