package FE2D

import (
	"errors"
	"testing"

	"github.com/notargets/gofea/utils"
	"github.com/stretchr/testify/assert"
)

// The analytic 1D conduction check: [0,2]x[0,1] at 16x8, k=1, s=0, u=1 on
// the bottom edge, u=0 on the top, side walls natural. The solution is
// linear in y alone, u = 1-y, with domain average 0.5.
func TestSteadyConduction(t *testing.T) {
	msh, err := NewCartesianMesh([2]float64{0, 0}, [2]float64{2, 1}, [2]int{16, 8})
	assert.NoError(t, err)
	u := NewField(msh, 1, "u")

	sys, err := AssembleSystem(msh, ConstCoef(1), ConstCoef(0))
	assert.NoError(t, err)

	spec := NewBoundarySpec(u)
	assert.NoError(t, spec.SetEdge(EdgeBottom, 1))
	assert.NoError(t, spec.SetEdge(EdgeTop, 0))
	assert.NoError(t, ApplyDirichlet(sys, spec))
	assert.NoError(t, sys.SolveInto(u))

	// Linear in the vertical coordinate only
	for n := 0; n < msh.Np; n++ {
		assert.True(t, near(1-msh.VY[n], u.At(n), 1.e-8))
	}
	// Prescribed values reproduced to solver tolerance
	bottom, _ := msh.EdgeSet(EdgeBottom)
	top, _ := msh.EdgeSet(EdgeTop)
	for _, n := range bottom {
		assert.True(t, near(1, u.At(n), 1.e-10))
	}
	for _, n := range top {
		assert.True(t, near(0, u.At(n), 1.e-10))
	}
	// Domain average matches the analytic 0.5
	avg, err := Average(msh, u)
	assert.NoError(t, err)
	assert.True(t, near(0.5, avg, 1.e-10))
}

func TestSingularSystem(t *testing.T) {
	// Zero diffusivity with no Dirichlet constraints anywhere: the assembled
	// matrix is identically zero and must be detected singular, not solved.
	msh, _ := NewCartesianMesh([2]float64{0, 0}, [2]float64{1, 1}, [2]int{4, 4})
	sys, err := AssembleSystem(msh, ConstCoef(0), ConstCoef(1))
	assert.NoError(t, err)

	var singErr *SingularSystemError
	_, err = sys.Solve()
	assert.Error(t, err)
	assert.True(t, errors.As(err, &singErr))
}

func TestConvergenceFailure(t *testing.T) {
	msh, _ := NewCartesianMesh([2]float64{0, 0}, [2]float64{1, 1}, [2]int{8, 8})
	u := NewField(msh, 1)
	sys, _ := AssembleSystem(msh, ConstCoef(1), ConstCoef(1))
	spec := NewBoundarySpec(u)
	assert.NoError(t, spec.SetEdge(EdgeBottom, 0))
	assert.NoError(t, ApplyDirichlet(sys, spec))

	var convErr *ConvergenceError
	_, err := sys.Solve(WithMaxIterations(2))
	assert.Error(t, err)
	assert.True(t, errors.As(err, &convErr))
	assert.Equal(t, 2, convErr.Iterations)
}

func TestSolveAgainstDenseReference(t *testing.T) {
	// CG on the sparse system against a dense LU factorization of the same
	// matrix.
	msh, _ := NewCartesianMesh([2]float64{0, 0}, [2]float64{1, 2}, [2]int{3, 4})
	u := NewField(msh, 1)
	sys, _ := AssembleSystem(msh, VarCoef(func(x, y float64) float64 { return 1 + x*y }), ConstCoef(2))
	spec := NewBoundarySpec(u)
	assert.NoError(t, spec.SetEdge(EdgeLeft, 1))
	assert.NoError(t, spec.SetEdge(EdgeRight, -1))
	assert.NoError(t, ApplyDirichlet(sys, spec))

	n := sys.Dims()
	dense := utils.NewMatrix(n, n)
	sys.A.DoNonZero(func(i, j int, v float64) {
		dense.Set(i, j, v)
	})
	ref, err := dense.LUSolve(sys.RHS.Copy())
	assert.NoError(t, err)

	X, err := sys.Solve()
	assert.NoError(t, err)
	assert.True(t, nearVec(ref.DataP, X.DataP, 1.e-8))
}

func TestSolveZeroRHS(t *testing.T) {
	// Homogeneous everything: the solution is identically zero.
	msh, _ := NewCartesianMesh([2]float64{0, 0}, [2]float64{1, 1}, [2]int{2, 2})
	sys, _ := AssembleSystem(msh, ConstCoef(1), ConstCoef(0))
	u := NewField(msh, 1)
	spec := NewBoundarySpec(u)
	assert.NoError(t, spec.SetEdge(EdgeBottom, 0))
	assert.NoError(t, ApplyDirichlet(sys, spec))
	X, err := sys.Solve()
	assert.NoError(t, err)
	assert.True(t, nearVec(make([]float64, sys.Dims()), X.DataP, 1.e-14))
}

func TestSolveIntoSizeMismatch(t *testing.T) {
	msh, _ := NewCartesianMesh([2]float64{0, 0}, [2]float64{1, 1}, [2]int{2, 2})
	other, _ := NewCartesianMesh([2]float64{0, 0}, [2]float64{1, 1}, [2]int{5, 5})
	sys, _ := AssembleSystem(msh, ConstCoef(1), ConstCoef(1))
	u := NewField(other, 1)
	assert.Error(t, sys.SolveInto(u))
}
