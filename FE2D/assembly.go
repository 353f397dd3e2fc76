package FE2D

import (
	"runtime"
	"sync"

	"github.com/notargets/gofea/utils"
)

// CoefFunc supplies the diffusivity or source value at a physical position.
// Constant implementations advertise it so the assembler can evaluate them
// once per element instead of once per quadrature point; the result is
// numerically identical either way.
type CoefFunc interface {
	Eval(x, y float64) float64
	IsConstant() bool
}

// ConstCoef is a spatially uniform coefficient or source value.
type ConstCoef float64

func (c ConstCoef) Eval(x, y float64) float64 { return float64(c) }
func (c ConstCoef) IsConstant() bool          { return true }

// VarCoef adapts a plain function of physical position.
type VarCoef func(x, y float64) float64

func (f VarCoef) Eval(x, y float64) float64 { return f(x, y) }
func (f VarCoef) IsConstant() bool          { return false }

// AssembleElement computes the local stiffness matrix and load vector of
// element k by quadrature over the bilinear reference-to-physical mapping:
//
//	Ke[i,j] = Sum_q w_q * coef(x_q) * (gradN_i . gradN_j) * |J(x_q)|
//	Fe[i]   = Sum_q w_q * src(x_q)  * N_i               * |J(x_q)|
//
// Reference gradients map to physical space through the inverse Jacobian.
func AssembleElement(msh *CartesianMesh, k int, coef, src CoefFunc, rule *QuadratureRule) (Ke utils.Matrix, Fe utils.Vector, err error) {
	var (
		basis   Q1Basis
		nd      = basis.NumDofs()
		x, y    = msh.ElementCoords(k)
		kConst  float64
		sConst  float64
		gradPhy = make([][2]float64, nd)
	)
	Ke = utils.NewMatrix(nd, nd)
	Fe = utils.NewVector(nd)
	if coef.IsConstant() {
		kConst = coef.Eval(x[0], y[0])
	}
	if src.IsConstant() {
		sConst = src.Eval(x[0], y[0])
	}
	for q := 0; q < rule.Len(); q++ {
		var (
			r, s = rule.R[q], rule.S[q]
			N    = basis.ShapeFunctions(r, s)
			dN   = basis.ShapeGradients(r, s)
		)
		// Jacobian of the reference-to-physical map at (r,s)
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
		// Physical-space gradients: gradN = J^-1 * (dN/dr, dN/ds)
		oDetJ := 1 / detJ
		for m := 0; m < nd; m++ {
			gradPhy[m][0] = oDetJ * (dyds*dN[m][0] - dydr*dN[m][1])
			gradPhy[m][1] = oDetJ * (-dxds*dN[m][0] + dxdr*dN[m][1])
		}
		// Physical quadrature point position
		var xq, yq float64
		for m := 0; m < nd; m++ {
			xq += N[m] * x[m]
			yq += N[m] * y[m]
		}
		kval, sval := kConst, sConst
		if !coef.IsConstant() {
			kval = coef.Eval(xq, yq)
		}
		if !src.IsConstant() {
			sval = src.Eval(xq, yq)
		}
		wJ := rule.W[q] * detJ
		for i := 0; i < nd; i++ {
			Fe.DataP[i] += wJ * sval * N[i]
			for j := 0; j < nd; j++ {
				Ke.DataP[i*nd+j] += wJ * kval *
					(gradPhy[i][0]*gradPhy[j][0] + gradPhy[i][1]*gradPhy[j][1])
			}
		}
	}
	return
}

type assemblyConfig struct {
	rule *QuadratureRule
	np   int
}

type AssemblyOption func(*assemblyConfig)

// WithQuadrature overrides the default 2x2 Gauss rule.
func WithQuadrature(rule *QuadratureRule) AssemblyOption {
	return func(c *assemblyConfig) { c.rule = rule }
}

// WithParallel sets the worker count for element assembly. np <= 1 assembles
// serially.
func WithParallel(np int) AssemblyOption {
	return func(c *assemblyConfig) { c.np = np }
}

// AssembleSystem builds the unconstrained global system for the scalar Q1
// field: every element's local matrix/vector scatter-adds into a global
// sparse matrix and RHS through the element's node map, entries shared by
// adjacent elements accumulating. No boundary conditions are applied here.
//
// Elements partition into contiguous ranges, one private triplet buffer and
// RHS per worker, merged in worker order after the pool drains, so the
// reduction is deterministic.
func AssembleSystem(msh *CartesianMesh, coef, src CoefFunc, opts ...AssemblyOption) (sys *LinearSystem, err error) {
	cfg := &assemblyConfig{rule: DefaultQuadrature(), np: runtime.NumCPU()}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.np < 1 {
		cfg.np = 1
	}
	if cfg.np > msh.K {
		cfg.np = msh.K
	}
	sys = NewLinearSystem(msh.Np)

	var (
		np      = cfg.np
		chunk   = (msh.K + np - 1) / np
		bufs    = make([]*utils.Triplet, np)
		rhsPart = make([][]float64, np)
		errs    = make([]error, np)
		wg      sync.WaitGroup
	)
	for n := 0; n < np; n++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			var (
				k0 = n * chunk
				k1 = k0 + chunk
			)
			if k1 > msh.K {
				k1 = msh.K
			}
			buf := utils.NewTriplet(16 * (k1 - k0))
			rhs := make([]float64, msh.Np)
			for k := k0; k < k1; k++ {
				Ke, Fe, eErr := AssembleElement(msh, k, coef, src, cfg.rule)
				if eErr != nil {
					errs[n] = eErr
					return
				}
				dofs := msh.ElementDofs(k)
				for i, I := range dofs {
					rhs[I] += Fe.DataP[i]
					for j, J := range dofs {
						buf.Put(I, J, Ke.At(i, j))
					}
				}
			}
			bufs[n] = buf
			rhsPart[n] = rhs
		}(n)
	}
	wg.Wait()
	for n := 0; n < np; n++ {
		if errs[n] != nil {
			return nil, errs[n]
		}
	}
	for n := 0; n < np; n++ {
		bufs[n].AccumInto(sys.A)
		for i, val := range rhsPart[n] {
			sys.RHS.DataP[i] += val
		}
	}
	return
}
