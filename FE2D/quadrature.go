package FE2D

// QuadratureRule is a fixed set of reference-square sample points and
// weights, shared read-only across all element assemblies. The tensor-product
// Gauss-Legendre rules below are exact for polynomials of degree 2n-1 per
// axis, so GQ2 (the assembly default) integrates the bilinear stiffness and
// mass integrands on affine quads exactly.
type QuadratureRule struct {
	Order   int
	R, S, W []float64
}

func (q *QuadratureRule) Len() int { return len(q.W) }

var (
	GQ1 = tensorGauss(1)
	GQ2 = tensorGauss(2)
	GQ3 = tensorGauss(3)
)

// DefaultQuadrature returns the rule shared by assembly and integration.
func DefaultQuadrature() *QuadratureRule { return GQ2 }

var gauss1D = map[int]struct {
	x, w []float64
}{
	1: {[]float64{0}, []float64{2}},
	2: {[]float64{-0.5773502691896257, 0.5773502691896257}, []float64{1, 1}},
	3: {[]float64{-0.7745966692414834, 0, 0.7745966692414834},
		[]float64{0.5555555555555556, 0.8888888888888888, 0.5555555555555556}},
}

func tensorGauss(n int) (q *QuadratureRule) {
	var (
		g  = gauss1D[n]
		np = n * n
	)
	q = &QuadratureRule{
		Order: n,
		R:     make([]float64, 0, np),
		S:     make([]float64, 0, np),
		W:     make([]float64, 0, np),
	}
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			q.R = append(q.R, g.x[i])
			q.S = append(q.S, g.x[j])
			q.W = append(q.W, g.w[i]*g.w[j])
		}
	}
	return
}

// GaussLegendre returns the tensor rule with n points per axis, n in [1,3].
func GaussLegendre(n int) *QuadratureRule {
	switch n {
	case 1:
		return GQ1
	case 2:
		return GQ2
	case 3:
		return GQ3
	default:
		panic("unsupported quadrature order: only 1, 2, 3 point tensor rules are tabulated")
	}
}
