package FE2D

// ElementBasis is the strategy interface over element types: the continuous
// bilinear quad and its piecewise-constant companion. Reference coordinates
// (r,s) live on the biunit square [-1,1]x[-1,1].
type ElementBasis interface {
	Name() string
	NumDofs() int
	// ShapeFunctions evaluates N_i(r,s) for each basis function i.
	ShapeFunctions(r, s float64) []float64
	// ShapeGradients evaluates (dN_i/dr, dN_i/ds) for each basis function i.
	ShapeGradients(r, s float64) [][2]float64
}

// Q1Basis is the continuous bilinear basis with one DOF at each corner node,
// ordered counterclockwise from the lower-left: SW, SE, NE, NW.
type Q1Basis struct{}

func (Q1Basis) Name() string { return "Q1" }
func (Q1Basis) NumDofs() int { return 4 }

func (Q1Basis) ShapeFunctions(r, s float64) []float64 {
	return []float64{
		0.25 * (1 - r) * (1 - s),
		0.25 * (1 + r) * (1 - s),
		0.25 * (1 + r) * (1 + s),
		0.25 * (1 - r) * (1 + s),
	}
}

func (Q1Basis) ShapeGradients(r, s float64) [][2]float64 {
	return [][2]float64{
		{-0.25 * (1 - s), -0.25 * (1 - r)},
		{0.25 * (1 - s), -0.25 * (1 + r)},
		{0.25 * (1 + s), 0.25 * (1 + r)},
		{-0.25 * (1 + s), 0.25 * (1 - r)},
	}
}

// DQ0Basis is the discontinuous piecewise-constant companion basis with a
// single cell-centered DOF per element.
type DQ0Basis struct{}

func (DQ0Basis) Name() string { return "dQ0" }
func (DQ0Basis) NumDofs() int { return 1 }

func (DQ0Basis) ShapeFunctions(r, s float64) []float64 {
	return []float64{1}
}

func (DQ0Basis) ShapeGradients(r, s float64) [][2]float64 {
	return [][2]float64{{0, 0}}
}
