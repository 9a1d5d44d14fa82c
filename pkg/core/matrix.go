package core

// Matrix is a square symmetric matrix whose rows and columns share one set
// of labels, such as a correlation matrix.
type Matrix struct {
	Labels []string
	data   []float64
}

// NewMatrix allocates a zero matrix sized by its labels.
func NewMatrix(labels ...string) *Matrix {
	n := len(labels)
	return &Matrix{Labels: labels, data: make([]float64, n*n)}
}

// Size is the number of rows (and columns).
func (m *Matrix) Size() int { return len(m.Labels) }

// At returns element (i, j).
func (m *Matrix) At(i, j int) float64 { return m.data[i*m.Size()+j] }

// Set writes v at (i, j) and (j, i).
func (m *Matrix) Set(i, j int, v float64) {
	n := m.Size()
	m.data[i*n+j] = v
	m.data[j*n+i] = v
}

// The methods below satisfy plotter.GridXYZ so a Matrix can be drawn as a
// heat map. Row 0 is drawn at the top.

func (m *Matrix) Dims() (c, r int) { return m.Size(), m.Size() }

func (m *Matrix) Z(c, r int) float64 { return m.At(m.Size()-1-r, c) }

func (m *Matrix) X(c int) float64 { return float64(c) }

func (m *Matrix) Y(r int) float64 { return float64(r) }
