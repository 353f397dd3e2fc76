package FE2D

import (
	"math"

	"github.com/notargets/gofea/utils"
)

// LinearSystem is the square sparse matrix and RHS produced by assembly,
// constrained by ApplyDirichlet, and consumed once by Solve. Systems are
// built fresh per solve; a failed assembly or solve invalidates the instance.
type LinearSystem struct {
	A           utils.DOK
	RHS         utils.Vector
	n           int
	constrained bool
}

func NewLinearSystem(n int) (sys *LinearSystem) {
	sys = &LinearSystem{
		A:   utils.NewDOK(n, n),
		RHS: utils.NewVector(n),
		n:   n,
	}
	return
}

func (sys *LinearSystem) Dims() int { return sys.n }

type solveConfig struct {
	tol     float64
	maxIter int
}

type SolveOption func(*solveConfig)

// WithTolerance sets the relative residual tolerance (default 1e-12).
func WithTolerance(tol float64) SolveOption {
	return func(c *solveConfig) { c.tol = tol }
}

// WithMaxIterations caps the CG iteration count (default 10*n).
func WithMaxIterations(maxIter int) SolveOption {
	return func(c *solveConfig) { c.maxIter = maxIter }
}

// Solve runs Jacobi-preconditioned conjugate gradients on the system. The
// pure-diffusion matrix is symmetric positive definite after Dirichlet
// enforcement, which CG requires. A zero or negative diagonal entry, or loss
// of positive curvature during iteration, reports SingularSystemError;
// exhausting the iteration budget reports ConvergenceError.
func (sys *LinearSystem) Solve(opts ...SolveOption) (X utils.Vector, err error) {
	cfg := &solveConfig{tol: 1.e-12, maxIter: 10 * sys.n}
	for _, opt := range opts {
		opt(cfg)
	}
	var (
		n    = sys.n
		csr  = sys.A.ToCSR()
		diag = csr.Diagonal()
	)
	for i, d := range diag {
		if d <= 0 {
			err = &SingularSystemError{Dof: i, Reason: "non-positive diagonal pivot"}
			return
		}
	}
	var (
		x = make([]float64, n)
		r = make([]float64, n)
		z = make([]float64, n)
		p = make([]float64, n)
		q = make([]float64, n)
	)
	copy(r, sys.RHS.DataP) // r = b - A*0
	bNorm := norm2(r)
	if bNorm == 0 {
		// Zero RHS: the SPD solution is identically zero.
		X = utils.NewVector(n, x)
		return
	}
	target := cfg.tol * bNorm
	for i := range z {
		z[i] = r[i] / diag[i]
	}
	copy(p, z)
	rz := dot(r, z)
	var iter int
	for iter = 0; iter < cfg.maxIter; iter++ {
		csr.MulVec(p, q)
		pq := dot(p, q)
		if pq <= 0 {
			err = &SingularSystemError{Dof: -1, Reason: "matrix is not positive definite"}
			return
		}
		alpha := rz / pq
		for i := range x {
			x[i] += alpha * p[i]
			r[i] -= alpha * q[i]
		}
		if norm2(r) <= target {
			X = utils.NewVector(n, x)
			return
		}
		for i := range z {
			z[i] = r[i] / diag[i]
		}
		rzNext := dot(r, z)
		beta := rzNext / rz
		rz = rzNext
		for i := range p {
			p[i] = z[i] + beta*p[i]
		}
	}
	err = &ConvergenceError{Iterations: iter, Residual: norm2(r), Target: target}
	return
}

// SolveInto solves the system and writes the DOF values back into the
// originating field's storage.
func (sys *LinearSystem) SolveInto(f *Field, opts ...SolveOption) (err error) {
	if f.NumDofs() != sys.n {
		return &UnknownDofError{Dof: sys.n - 1, Size: f.NumDofs()}
	}
	X, err := sys.Solve(opts...)
	if err != nil {
		return
	}
	copy(f.DataP, X.DataP)
	return
}

func dot(a, b []float64) (d float64) {
	for i, val := range a {
		d += val * b[i]
	}
	return
}

func norm2(a []float64) float64 {
	return math.Sqrt(dot(a, a))
}
