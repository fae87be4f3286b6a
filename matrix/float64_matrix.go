// Package matrix provides the dense row-major storage behind the
// translation table and the expected counts.
package matrix

import "errors"

var (
	ErrIndexOutOfRange = errors.New("matrix: index out of range")
	ErrBadShape        = errors.New("matrix: non-positive dimension not allowed")
)

// internal Float64 matrix representation
type Float64Matrix struct {
	nrow uint32
	ncol uint32
	data []float64
}

// NewFloat64Matrix creates a new Float64Matrix with r rows and c columns.
// If r or c is zero, it will panic. A float64 slice is used as the
// underlying storage and the data layout is in row major order, i.e. the
// (i*c + j)-th element in the data slice is the [i, j]-th element in the
// matrix.
func NewFloat64Matrix(r, c uint32) *Float64Matrix {
	if r == 0 || c == 0 {
		panic(ErrBadShape)
	}
	return &Float64Matrix{
		nrow: r,
		ncol: c,
		data: make([]float64, uint64(r)*uint64(c)),
	}
}

// get the shape of the matrix
func (m *Float64Matrix) Shape() (uint32, uint32) {
	return m.nrow, m.ncol
}

// get the [r, c]-th element of the matrix
func (m *Float64Matrix) Get(r, c uint32) float64 {
	if r >= m.nrow || c >= m.ncol {
		panic(ErrIndexOutOfRange)
	}
	return m.data[m.offset(r, c)]
}

// set val to the [r, c]-th element of the matrix
func (m *Float64Matrix) Set(r, c uint32, val float64) {
	if r >= m.nrow || c >= m.ncol {
		panic(ErrIndexOutOfRange)
	}
	m.data[m.offset(r, c)] = val
}

// increment the [r, c]-th element of the matrix by val
func (m *Float64Matrix) Incr(r, c uint32, val float64) {
	if r >= m.nrow || c >= m.ncol {
		panic(ErrIndexOutOfRange)
	}
	m.data[m.offset(r, c)] += val
}

// get the c-th column of the matrix
func (m *Float64Matrix) GetCol(c uint32) []float64 {
	if c >= m.ncol {
		panic(ErrIndexOutOfRange)
	}

	column := make([]float64, 0, m.nrow)
	for r := uint32(0); r < m.nrow; r += 1 {
		column = append(column, m.data[m.offset(r, c)])
	}
	return column
}

// ColSum sums the c-th column of the matrix.
func (m *Float64Matrix) ColSum(c uint32) float64 {
	return VectorSum(m.GetCol(c))
}

// Reset zeroes the matrix in place.
func (m *Float64Matrix) Reset() {
	clear(m.data)
}

// Clone returns a deep copy of the matrix.
func (m *Float64Matrix) Clone() *Float64Matrix {
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return &Float64Matrix{
		nrow: m.nrow,
		ncol: m.ncol,
		data: data,
	}
}

func (m *Float64Matrix) offset(r, c uint32) uint64 {
	return uint64(r)*uint64(m.ncol) + uint64(c)
}

// Distance returns the total absolute element-wise difference between
// m and o, which must have the same shape.
func (m *Float64Matrix) Distance(o *Float64Matrix) float64 {
	if m.nrow != o.nrow || m.ncol != o.ncol {
		panic(ErrBadShape)
	}
	return AbsDiffSum(m.data, o.data)
}
