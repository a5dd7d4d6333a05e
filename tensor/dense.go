// SPDX-License-Identifier: MIT

package tensor

import "fmt"

// Dense is a row-major rank-n tensor of complex128 values.
type Dense struct {
	shape   []int
	strides []int
	data    []complex128
}

// New allocates a zero tensor with the given shape.
// Errors: ErrBadShape for an empty shape or a non-positive extent.
func New(shape ...int) (*Dense, error) {
	size, err := volume(shape)
	if err != nil {
		return nil, fmt.Errorf("New%v: %w", shape, err)
	}
	return build(shape, make([]complex128, size)), nil
}

// FromSlice views data as a tensor of the given shape WITHOUT copying.
// The caller keeps ownership of data; mutating it is visible through the view.
// Errors: ErrBadShape if len(data) != Π shape.
func FromSlice(data []complex128, shape ...int) (*Dense, error) {
	size, err := volume(shape)
	if err != nil {
		return nil, fmt.Errorf("FromSlice%v: %w", shape, err)
	}
	if len(data) != size {
		return nil, fmt.Errorf("FromSlice%v: len %d, want %d: %w", shape, len(data), size, ErrBadShape)
	}
	return build(shape, data), nil
}

// Qubits returns the shape (2, 2, …, 2) of an n-qubit register.
func Qubits(n int) []int {
	shape := make([]int, n)
	for i := range shape {
		shape[i] = 2
	}
	return shape
}

func build(shape []int, data []complex128) *Dense {
	s := append([]int(nil), shape...)
	return &Dense{shape: s, strides: rowMajorStrides(s), data: data}
}

func volume(shape []int) (int, error) {
	if len(shape) == 0 {
		return 0, ErrBadShape
	}
	size := 1
	for _, d := range shape {
		if d <= 0 {
			return 0, ErrBadShape
		}
		size *= d
	}
	return size, nil
}

func rowMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))
	acc := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= shape[i]
	}
	return strides
}

// Rank returns the number of axes.
func (t *Dense) Rank() int { return len(t.shape) }

// Len returns the number of elements.
func (t *Dense) Len() int { return len(t.data) }

// Shape returns a copy of the extents.
func (t *Dense) Shape() []int { return append([]int(nil), t.shape...) }

// Data returns the backing slice in row-major order (not a copy).
func (t *Dense) Data() []complex128 { return t.data }

// At returns the element at the multi-index idx.
// Errors: ErrAxisOutOfRange for a wrong index count or an index outside its extent.
func (t *Dense) At(idx ...int) (complex128, error) {
	if len(idx) != len(t.shape) {
		return 0, fmt.Errorf("At%v: rank %d: %w", idx, len(t.shape), ErrAxisOutOfRange)
	}
	off := 0
	for ax, i := range idx {
		if i < 0 || i >= t.shape[ax] {
			return 0, fmt.Errorf("At%v: axis %d: %w", idx, ax, ErrAxisOutOfRange)
		}
		off += i * t.strides[ax]
	}
	return t.data[off], nil
}

// Reshape returns a view with a new shape over the same data.
// Errors: ErrBadShape if the element count changes.
func (t *Dense) Reshape(shape ...int) (*Dense, error) {
	size, err := volume(shape)
	if err != nil {
		return nil, fmt.Errorf("Reshape%v: %w", shape, err)
	}
	if size != len(t.data) {
		return nil, fmt.Errorf("Reshape%v: %d elements, want %d: %w", shape, size, len(t.data), ErrBadShape)
	}
	return build(shape, t.data), nil
}
