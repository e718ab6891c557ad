package hopfield

import "math/rand"

// Matrix is a square weight matrix stored row-major in a flat buffer.
// Entry (i, j) is the coupling strength from unit j to unit i.
//
// Zero-diagonal and symmetry are not enforced on construction; the owner
// applies them explicitly via ZeroDiagonal and Symmetrize.
type Matrix struct {
	dim  int
	data []float64
}

// NewMatrix returns a dim x dim zero matrix.
func NewMatrix(dim int) *Matrix {
	return &Matrix{dim: dim, data: make([]float64, dim*dim)}
}

// NewRandomMatrix returns a dim x dim matrix with standard Gaussian entries
// drawn from rng.
func NewRandomMatrix(dim int, rng *rand.Rand) *Matrix {
	m := NewMatrix(dim)
	for i := range m.data {
		m.data[i] = rng.NormFloat64()
	}
	return m
}

func (m *Matrix) Dim() int { return m.dim }

func (m *Matrix) At(i, j int) float64 { return m.data[i*m.dim+j] }

func (m *Matrix) Set(i, j int, v float64) { m.data[i*m.dim+j] = v }

// Clone returns an independent copy. Batch relaxation hands one clone to
// each worker so the matrix is never shared across goroutines.
func (m *Matrix) Clone() *Matrix {
	c := &Matrix{dim: m.dim, data: make([]float64, len(m.data))}
	copy(c.data, m.data)
	return c
}

// MulVec computes dst = M * v. dst must have length Dim and must not alias v.
func (m *Matrix) MulVec(v State, dst State) {
	for i := 0; i < m.dim; i++ {
		row := m.data[i*m.dim : (i+1)*m.dim]
		sum := 0.0
		for j, w := range row {
			sum += w * v[j]
		}
		dst[i] = sum
	}
}

// RowDot returns the dot product of row i with v.
func (m *Matrix) RowDot(i int, v State) float64 {
	row := m.data[i*m.dim : (i+1)*m.dim]
	sum := 0.0
	for j, w := range row {
		sum += w * v[j]
	}
	return sum
}

// ZeroDiagonal sets every diagonal entry to zero.
func (m *Matrix) ZeroDiagonal() {
	for i := 0; i < m.dim; i++ {
		m.data[i*m.dim+i] = 0.0
	}
}

// Symmetrize copies the upper triangle into the lower triangle, so that
// afterwards At(i, j) == At(j, i) for all i, j.
func (m *Matrix) Symmetrize() {
	for i := 1; i < m.dim; i++ {
		for j := 0; j < i; j++ {
			m.data[i*m.dim+j] = m.data[j*m.dim+i]
		}
	}
}

// IsSymmetric reports whether At(i, j) == At(j, i) for all i, j.
func (m *Matrix) IsSymmetric() bool {
	for i := 1; i < m.dim; i++ {
		for j := 0; j < i; j++ {
			if m.data[i*m.dim+j] != m.data[j*m.dim+i] {
				return false
			}
		}
	}
	return true
}
