package utils

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

// DOK wraps the map-backed sparse matrix used while a system is under
// construction: scatter-add during assembly, then row/column surgery for
// constraint enforcement. Convert to CSR before repeated multiplication.
type DOK struct {
	M        *sparse.DOK
	readOnly bool
	name     string
}

func NewDOK(nr, nc int) (R DOK) {
	R = DOK{
		sparse.NewDOK(nr, nc),
		false,
		"unnamed - hint: pass a variable name to SetReadOnly()",
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m DOK) Dims() (r, c int)    { return m.M.Dims() }
func (m DOK) At(i, j int) float64 { return m.M.At(i, j) }
func (m DOK) T() mat.Matrix       { return m.M.T() }
func (m DOK) NNZ() int            { return m.M.NNZ() }

func (m *DOK) SetReadOnly(name ...string) DOK {
	if len(name) != 0 {
		m.name = name[0]
	}
	m.readOnly = true
	return *m
}

func (m DOK) Set(i, j int, val float64) {
	m.checkWritable()
	m.M.Set(i, j, val)
}

// Accum adds val to entry (i,j). Additive accumulation is the scatter-add
// primitive of global assembly: contributions from adjacent elements sharing
// a DOF sum.
func (m DOK) Accum(i, j int, val float64) {
	m.checkWritable()
	m.M.Set(i, j, m.M.At(i, j)+val)
}

func (m DOK) DoNonZero(fn func(i, j int, v float64)) {
	m.M.DoNonZero(fn)
}

func (m DOK) ToCSR() CSR {
	return CSR{
		M:    m.M.ToCSR(),
		name: m.name,
	}
}

func (m DOK) checkWritable() {
	if m.readOnly {
		err := fmt.Errorf("attempt to write to a read only matrix named: \"%v\"", m.name)
		panic(err)
	}
}

// CSR wraps the compressed sparse row form used by the iterative solver.
type CSR struct {
	M    *sparse.CSR
	name string
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m CSR) Dims() (r, c int)    { return m.M.Dims() }
func (m CSR) At(i, j int) float64 { return m.M.At(i, j) }
func (m CSR) T() mat.Matrix       { return m.M.T() }
func (m CSR) NNZ() int            { return m.M.NNZ() }

func (m CSR) DoNonZero(fn func(i, j int, v float64)) {
	m.M.DoNonZero(fn)
}

// MulVec computes y = A*x over the stored nonzeros.
func (m CSR) MulVec(x, y []float64) {
	var (
		nr, nc = m.Dims()
	)
	if len(x) != nc || len(y) != nr {
		err := fmt.Errorf("dimension mismatch in MulVec: A is %dx%d, len(x) = %d, len(y) = %d", nr, nc, len(x), len(y))
		panic(err)
	}
	for i := range y {
		y[i] = 0
	}
	m.M.DoNonZero(func(i, j int, v float64) {
		y[i] += v * x[j]
	})
}

// Diagonal extracts the matrix diagonal, used by the Jacobi preconditioner.
func (m CSR) Diagonal() (d []float64) {
	var (
		nr, _ = m.Dims()
	)
	d = make([]float64, nr)
	for i := 0; i < nr; i++ {
		d[i] = m.M.At(i, i)
	}
	return
}

// Triplet is an ordered coordinate-format accumulation buffer. Workers fill
// private triplet buffers during parallel assembly; buffers merge into one
// DOK in worker order so the reduction is deterministic.
type Triplet struct {
	RI, CI Index
	V      []float64
}

func NewTriplet(sizeHint int) (T *Triplet) {
	T = &Triplet{
		RI: make(Index, 0, sizeHint),
		CI: make(Index, 0, sizeHint),
		V:  make([]float64, 0, sizeHint),
	}
	return
}

func (t *Triplet) Put(i, j int, val float64) {
	t.RI = append(t.RI, i)
	t.CI = append(t.CI, j)
	t.V = append(t.V, val)
}

func (t *Triplet) Len() int { return len(t.V) }

// AccumInto scatter-adds the buffered entries into m in insertion order.
func (t *Triplet) AccumInto(m DOK) {
	for n, val := range t.V {
		m.Accum(t.RI[n], t.CI[n], val)
	}
}
