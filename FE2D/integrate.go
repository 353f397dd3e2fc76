package FE2D

// Integrate computes the domain integral of a scalar field by element-wise
// quadrature summation, with the same rule and basis interpolation as
// assembly: Sum_e Sum_q w_q * u_h(x_q) * |J(x_q)|. Fields exactly
// representable by the basis integrate exactly up to rounding. Read-only
// over mesh and field.
func Integrate(msh *CartesianMesh, f *Field, ruleO ...*QuadratureRule) (total float64, err error) {
	var (
		basis Q1Basis
		nd    = basis.NumDofs()
		rule  = DefaultQuadrature()
	)
	if len(ruleO) != 0 {
		rule = ruleO[0]
	}
	for k := 0; k < msh.K; k++ {
		x, y := msh.ElementCoords(k)
		for q := 0; q < rule.Len(); q++ {
			var (
				r, s = rule.R[q], rule.S[q]
				dN   = basis.ShapeGradients(r, s)
			)
			var dxdr, dxds, dydr, dyds float64
			for m := 0; m < nd; m++ {
				dxdr += dN[m][0] * x[m]
				dxds += dN[m][1] * x[m]
				dydr += dN[m][0] * y[m]
				dyds += dN[m][1] * y[m]
			}
			detJ := dxdr*dyds - dxds*dydr
			if detJ <= 0 {
				err = &DegenerateElementError{Element: k, Point: q, DetJ: detJ}
				return
			}
			total += rule.W[q] * f.InterpElement(k, r, s) * detJ
		}
	}
	return
}

// Average returns the integral divided by the domain measure.
func Average(msh *CartesianMesh, f *Field, ruleO ...*QuadratureRule) (avg float64, err error) {
	total, err := Integrate(msh, f, ruleO...)
	if err != nil {
		return
	}
	avg = total / msh.Area()
	return
}
