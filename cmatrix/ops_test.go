package cmatrix_test

import (
	"testing"

	"github.com/katalvlaran/qsim/cmatrix"
	"github.com/stretchr/testify/require"
)

// TestKronecker_HandComputed compares X ⊗ Z against its literal expansion.
func TestKronecker_HandComputed(t *testing.T) {
	got, err := cmatrix.Kronecker(pauliX(t), pauliZ(t))
	require.NoError(t, err)

	want := mustRows(t, [][]complex128{
		{0, 0, 1, 0},
		{0, 0, 0, -1},
		{1, 0, 0, 0},
		{0, -1, 0, 0},
	})
	ok, err := cmatrix.AllClose(got, want, 0)
	require.NoError(t, err)
	require.True(t, ok, "X⊗Z:\n%v", got)
}

// TestKronecker_Rectangular checks shape arithmetic on non-square operands.
func TestKronecker_Rectangular(t *testing.T) {
	a := mustRows(t, [][]complex128{{1, 2, 3}})
	b := mustRows(t, [][]complex128{{1}, {1i}})
	got, err := cmatrix.Kronecker(a, b)
	require.NoError(t, err)
	require.Equal(t, 2, got.Rows())
	require.Equal(t, 3, got.Cols())
	require.Equal(t, 3i, mustAt(t, got, 1, 2))
}

// TestKroneckerChain_Order verifies factor 0 is the most significant.
func TestKroneckerChain_Order(t *testing.T) {
	id := mustRows(t, [][]complex128{{1, 0}, {0, 1}})
	x := pauliX(t)

	// X on the first factor flips the high bit: |00> -> |10>.
	op, err := cmatrix.KroneckerChain(x, id)
	require.NoError(t, err)
	y, err := cmatrix.MatVec(op, []complex128{1, 0, 0, 0})
	require.NoError(t, err)
	require.Equal(t, []complex128{0, 0, 1, 0}, y)

	// X on the second factor flips the low bit: |00> -> |01>.
	op, err = cmatrix.KroneckerChain(id, x)
	require.NoError(t, err)
	y, err = cmatrix.MatVec(op, []complex128{1, 0, 0, 0})
	require.NoError(t, err)
	require.Equal(t, []complex128{0, 1, 0, 0}, y)

	_, err = cmatrix.KroneckerChain()
	require.ErrorIs(t, err, cmatrix.ErrBadShape)
	_, err = cmatrix.KroneckerChain(id, nil)
	require.ErrorIs(t, err, cmatrix.ErrNilMatrix)
}

// TestMul_AgainstPauliAlgebra uses XY = iZ.
func TestMul_AgainstPauliAlgebra(t *testing.T) {
	xy, err := cmatrix.Mul(pauliX(t), pauliY(t))
	require.NoError(t, err)
	iz, err := cmatrix.Scale(pauliZ(t), 1i)
	require.NoError(t, err)

	ok, err := cmatrix.AllClose(xy, iz, epsTight)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = cmatrix.Mul(mustRows(t, [][]complex128{{1, 2}}), mustRows(t, [][]complex128{{1, 2}}))
	require.ErrorIs(t, err, cmatrix.ErrDimensionMismatch)
}

// TestAdd_Shapes covers the happy path and shape mismatch.
func TestAdd_Shapes(t *testing.T) {
	sum, err := cmatrix.Add(pauliX(t), pauliZ(t))
	require.NoError(t, err)
	require.Equal(t, complex128(1), mustAt(t, sum, 0, 0))
	require.Equal(t, complex128(-1), mustAt(t, sum, 1, 1))

	_, err = cmatrix.Add(pauliX(t), mustRows(t, [][]complex128{{1}}))
	require.ErrorIs(t, err, cmatrix.ErrDimensionMismatch)
	_, err = cmatrix.Add(nil, pauliX(t))
	require.ErrorIs(t, err, cmatrix.ErrNilMatrix)
}

// TestConjTranspose_Y checks Y† = Y and a rectangular case.
func TestConjTranspose_Y(t *testing.T) {
	yd, err := cmatrix.ConjTranspose(pauliY(t))
	require.NoError(t, err)
	ok, err := cmatrix.AllClose(yd, pauliY(t), 0)
	require.NoError(t, err)
	require.True(t, ok)

	r, err := cmatrix.ConjTranspose(mustRows(t, [][]complex128{{1 + 2i, 3}}))
	require.NoError(t, err)
	require.Equal(t, 2, r.Rows())
	require.Equal(t, 1-2i, mustAt(t, r, 0, 0))
}

// TestIsUnitary_Catalog covers unitary, non-unitary and non-square inputs.
func TestIsUnitary_Catalog(t *testing.T) {
	for name, m := range map[string]*cmatrix.Dense{
		"X": pauliX(t), "Y": pauliY(t), "Z": pauliZ(t), "H": hadamard(t),
	} {
		ok, err := cmatrix.IsUnitary(m)
		require.NoError(t, err, name)
		require.True(t, ok, name)
	}

	ok, err := cmatrix.IsUnitary(mustRows(t, [][]complex128{{1, 1}, {0, 1}}))
	require.NoError(t, err)
	require.False(t, ok)

	_, err = cmatrix.IsUnitary(mustRows(t, [][]complex128{{1, 0}}))
	require.ErrorIs(t, err, cmatrix.ErrNonSquare)
}

// TestIsHermitian covers Hermitian Paulis and a non-Hermitian ladder operator.
func TestIsHermitian(t *testing.T) {
	ok, err := cmatrix.IsHermitian(pauliY(t))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = cmatrix.IsHermitian(mustRows(t, [][]complex128{{0, 1}, {0, 0}}))
	require.NoError(t, err)
	require.False(t, ok)

	// A loose epsilon accepts a tiny perturbation.
	ok, err = cmatrix.IsHermitian(mustRows(t, [][]complex128{{1, 1e-6}, {0, 1}}), cmatrix.WithEpsilon(1e-3))
	require.NoError(t, err)
	require.True(t, ok)
}

// TestAllClose_InvalidTolerance rejects NaN tolerances.
func TestAllClose_InvalidTolerance(t *testing.T) {
	_, err := cmatrix.AllClose(pauliX(t), pauliX(t), nan())
	require.ErrorIs(t, err, cmatrix.ErrNaNInf)
}

// TestOptions_PanicOnNonsense mirrors the constructor policy.
func TestOptions_PanicOnNonsense(t *testing.T) {
	require.Panics(t, func() { cmatrix.WithEpsilon(-1) })
	require.Panics(t, func() { cmatrix.WithWorkers(0) })

	o := cmatrix.NewOptions(cmatrix.WithWorkers(4), nil)
	require.Equal(t, 4, o.Workers())
	require.Equal(t, cmatrix.DefaultEpsilon, o.Epsilon())
}
