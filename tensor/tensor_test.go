package tensor_test

import (
	"math"
	"math/cmplx"
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/qsim/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seq returns a tensor of the given shape filled with 0, 1, 2, … .
func seq(t *testing.T, shape ...int) *tensor.Dense {
	t.Helper()
	x, err := tensor.New(shape...)
	require.NoError(t, err)
	for i := range x.Data() {
		x.Data()[i] = complex(float64(i), 0)
	}
	return x
}

func randTensor(t *testing.T, seed uint64, shape ...int) *tensor.Dense {
	t.Helper()
	x, err := tensor.New(shape...)
	require.NoError(t, err)
	rng := rand.New(rand.NewPCG(seed, ^seed))
	for i := range x.Data() {
		x.Data()[i] = complex(rng.NormFloat64(), rng.NormFloat64())
	}
	return x
}

// TestNewAndFromSlice covers shape validation and aliasing semantics.
func TestNewAndFromSlice(t *testing.T) {
	_, err := tensor.New()
	assert.ErrorIs(t, err, tensor.ErrBadShape)
	_, err = tensor.New(2, 0)
	assert.ErrorIs(t, err, tensor.ErrBadShape)

	data := []complex128{1, 2, 3, 4, 5, 6}
	x, err := tensor.FromSlice(data, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, x.Rank())
	assert.Equal(t, []int{2, 3}, x.Shape())
	data[5] = 60
	v, err := x.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, complex128(60), v, "FromSlice must alias")

	_, err = tensor.FromSlice(data, 4, 2)
	assert.ErrorIs(t, err, tensor.ErrBadShape)
	_, err = x.At(2, 0)
	assert.ErrorIs(t, err, tensor.ErrAxisOutOfRange)
	_, err = x.At(0)
	assert.ErrorIs(t, err, tensor.ErrAxisOutOfRange)

	assert.Equal(t, []int{2, 2, 2}, tensor.Qubits(3))
}

// TestReshape keeps data and rejects size changes.
func TestReshape(t *testing.T) {
	x := seq(t, 2, 3)
	y, err := x.Reshape(3, 2)
	require.NoError(t, err)
	v, _ := y.At(2, 1)
	assert.Equal(t, complex128(5), v)

	_, err = x.Reshape(4)
	assert.ErrorIs(t, err, tensor.ErrBadShape)
}

// TestTranspose_Matrix matches the ordinary matrix transpose.
func TestTranspose_Matrix(t *testing.T) {
	x := seq(t, 2, 3)
	y, err := tensor.Transpose(x, []int{1, 0})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, y.Shape())
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			a, _ := x.At(i, j)
			b, _ := y.At(j, i)
			assert.Equal(t, a, b)
		}
	}
}

// TestTranspose_Rank3 checks every element of a 3-axis permutation.
func TestTranspose_Rank3(t *testing.T) {
	x := seq(t, 2, 3, 4)
	perm := []int{2, 0, 1}
	y, err := tensor.Transpose(x, perm)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 2, 3}, y.Shape())
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 4; k++ {
				a, _ := x.At(i, j, k)
				b, _ := y.At(k, i, j)
				require.Equal(t, a, b)
			}
		}
	}

	_, err = tensor.Transpose(x, []int{0, 0, 1})
	assert.ErrorIs(t, err, tensor.ErrDuplicateAxis)
	_, err = tensor.Transpose(x, []int{0, 1})
	assert.ErrorIs(t, err, tensor.ErrDimensionMismatch)
	_, err = tensor.Transpose(nil, nil)
	assert.ErrorIs(t, err, tensor.ErrNilTensor)
}

// TestMoveAxesPerm pins the reordering rule on known cases.
func TestMoveAxesPerm(t *testing.T) {
	cases := []struct {
		name     string
		rank     int
		src, dst []int
		want     []int
	}{
		{"front to back", 3, []int{0}, []int{2}, []int{1, 2, 0}},
		{"back to front", 3, []int{2}, []int{0}, []int{2, 0, 1}},
		{"front to middle", 4, []int{0}, []int{2}, []int{1, 2, 0, 3}},
		{"no-op", 3, []int{1}, []int{1}, []int{0, 1, 2}},
		{"two axes", 3, []int{0, 1}, []int{2, 0}, []int{1, 2, 0}},
		{"two leading to split", 5, []int{0, 1}, []int{1, 3}, []int{2, 0, 3, 1, 4}},
		{"empty", 2, nil, nil, []int{0, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tensor.MoveAxesPerm(tc.rank, tc.src, tc.dst)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			for i := range tc.src {
				assert.Equal(t, tc.src[i], got[tc.dst[i]])
			}
		})
	}

	_, err := tensor.MoveAxesPerm(3, []int{0}, nil)
	assert.ErrorIs(t, err, tensor.ErrDimensionMismatch)
	_, err = tensor.MoveAxesPerm(3, []int{3}, []int{0})
	assert.ErrorIs(t, err, tensor.ErrAxisOutOfRange)
	_, err = tensor.MoveAxesPerm(3, []int{0, 1}, []int{2, 2})
	assert.ErrorIs(t, err, tensor.ErrDuplicateAxis)
}

// TestMoveAxes_RoundTrip moving there and back restores the tensor exactly.
func TestMoveAxes_RoundTrip(t *testing.T) {
	x := randTensor(t, 3, 2, 2, 2, 2, 2)
	for src := 0; src < 5; src++ {
		for dst := 0; dst < 5; dst++ {
			y, err := tensor.MoveAxes(x, []int{src}, []int{dst})
			require.NoError(t, err)
			z, err := tensor.MoveAxes(y, []int{dst}, []int{src})
			require.NoError(t, err)
			require.Equal(t, x.Data(), z.Data(), "src=%d dst=%d", src, dst)
		}
	}
}

// TestContract_MatrixProduct treats rank-2 contraction as A·B.
func TestContract_MatrixProduct(t *testing.T) {
	a, _ := tensor.FromSlice([]complex128{1, 2, 3, 4}, 2, 2)
	b, _ := tensor.FromSlice([]complex128{5, 6, 7, 8}, 2, 2)
	c, err := tensor.Contract(a, b, []int{1}, []int{0})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2}, c.Shape())
	assert.Equal(t, []complex128{19, 22, 43, 50}, c.Data())

	// Contracting a's rows against b's rows computes Aᵀ·B.
	c, err = tensor.Contract(a, b, []int{0}, []int{0})
	require.NoError(t, err)
	assert.Equal(t, []complex128{26, 30, 38, 44}, c.Data())
}

// TestContract_FullAndShapes covers inner products and free-axis ordering.
func TestContract_FullAndShapes(t *testing.T) {
	a, _ := tensor.FromSlice([]complex128{1, 2, 3}, 3)
	b, _ := tensor.FromSlice([]complex128{4, 5, 6}, 3)
	c, err := tensor.Contract(a, b, []int{0}, []int{0})
	require.NoError(t, err)
	assert.Equal(t, []int{1}, c.Shape())
	assert.Equal(t, complex128(32), c.Data()[0])

	x := seq(t, 2, 3, 4)
	g := seq(t, 5, 3)
	y, err := tensor.Contract(g, x, []int{1}, []int{1})
	require.NoError(t, err)
	assert.Equal(t, []int{5, 2, 4}, y.Shape())
	// y[p,i,k] = Σ_j g[p,j] x[i,j,k]
	want := complex128(0)
	for j := 0; j < 3; j++ {
		gv, _ := g.At(4, j)
		xv, _ := x.At(1, j, 3)
		want += gv * xv
	}
	got, _ := y.At(4, 1, 3)
	assert.Equal(t, want, got)

	_, err = tensor.Contract(g, x, []int{1}, []int{2})
	assert.ErrorIs(t, err, tensor.ErrDimensionMismatch)
	_, err = tensor.Contract(g, x, []int{1}, nil)
	assert.ErrorIs(t, err, tensor.ErrDimensionMismatch)
	_, err = tensor.Contract(g, x, []int{2}, []int{1})
	assert.ErrorIs(t, err, tensor.ErrAxisOutOfRange)
	_, err = tensor.Contract(nil, x, nil, nil)
	assert.ErrorIs(t, err, tensor.ErrNilTensor)
}

// TestContract_WorkerIndependence requires identical output for any worker count.
func TestContract_WorkerIndependence(t *testing.T) {
	g := randTensor(t, 1, 2, 2)
	x := randTensor(t, 2, tensor.Qubits(12)...)
	base, err := tensor.Contract(g, x, []int{1}, []int{5})
	require.NoError(t, err)
	for _, w := range []int{2, 4, 16} {
		y, err := tensor.Contract(g, x, []int{1}, []int{5}, tensor.WithWorkers(w))
		require.NoError(t, err)
		require.Equal(t, base.Data(), y.Data(), "workers=%d", w)
	}
	require.Panics(t, func() { tensor.WithWorkers(0) })
}

// TestContract_NonFinitePropagates: a NaN operand entry reaches the output
// even where the other factor is zero.
func TestContract_NonFinitePropagates(t *testing.T) {
	g, err := tensor.FromSlice([]complex128{1, 0, 0, 1}, 2, 2)
	require.NoError(t, err)
	x, err := tensor.FromSlice([]complex128{1, complex(math.NaN(), 0)}, 2)
	require.NoError(t, err)

	out, err := tensor.Contract(g, x, []int{1}, []int{0})
	require.NoError(t, err)
	assert.True(t, cmplx.IsNaN(out.Data()[0]))
	assert.True(t, cmplx.IsNaN(out.Data()[1]))
}
