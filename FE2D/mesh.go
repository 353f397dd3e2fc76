package FE2D

import (
	"github.com/notargets/gofea/utils"
)

// Edge names for the boundary node sets of a rectangular domain.
const (
	EdgeBottom = "bottom"
	EdgeRight  = "right"
	EdgeTop    = "top"
	EdgeLeft   = "left"
)

// CartesianMesh is a structured quadrilateral mesh over a rectangular
// domain, uniformly subdivided along each axis. Elements are numbered
// row-major, corner nodes per element counterclockwise (SW, SE, NE, NW).
// Immutable once built.
type CartesianMesh struct {
	Min, Max [2]float64
	Res      [2]int
	K        int // Number of elements = Res[0]*Res[1]
	Np       int // Number of nodes = (Res[0]+1)*(Res[1]+1)
	VX, VY   []float64
	EToV     utils.Index // 4 node indices per element, row-major by element
	edgeSets map[string]utils.Index
}

// NewCartesianMesh builds node coordinates and element connectivity for the
// rectangle [min[0],max[0]]x[min[1],max[1]] subdivided res[0] x res[1].
func NewCartesianMesh(min, max [2]float64, res [2]int) (msh *CartesianMesh, err error) {
	if res[0] <= 0 || res[1] <= 0 {
		err = &InvalidResolutionError{Res: res}
		return
	}
	if min[0] >= max[0] || min[1] >= max[1] {
		err = &InvalidDomainError{Min: min, Max: max}
		return
	}
	var (
		nx, ny = res[0], res[1]
		npx    = nx + 1
		npy    = ny + 1
		dx     = (max[0] - min[0]) / float64(nx)
		dy     = (max[1] - min[1]) / float64(ny)
	)
	msh = &CartesianMesh{
		Min: min,
		Max: max,
		Res: res,
		K:   nx * ny,
		Np:  npx * npy,
	}
	msh.VX = make([]float64, msh.Np)
	msh.VY = make([]float64, msh.Np)
	for j := 0; j < npy; j++ {
		for i := 0; i < npx; i++ {
			n := i + npx*j
			msh.VX[n] = min[0] + float64(i)*dx
			msh.VY[n] = min[1] + float64(j)*dy
		}
	}
	msh.EToV = make(utils.Index, 0, 4*msh.K)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			sw := i + npx*j
			msh.EToV = append(msh.EToV, sw, sw+1, sw+1+npx, sw+npx)
		}
	}
	msh.buildEdgeSets()
	return
}

// buildEdgeSets precomputes the named boundary node sets, ordered along each
// edge with increasing coordinate.
func (msh *CartesianMesh) buildEdgeSets() {
	var (
		npx = msh.Res[0] + 1
		npy = msh.Res[1] + 1
	)
	bottom := make(utils.Index, npx)
	top := make(utils.Index, npx)
	for i := 0; i < npx; i++ {
		bottom[i] = i
		top[i] = i + npx*(npy-1)
	}
	left := make(utils.Index, npy)
	right := make(utils.Index, npy)
	for j := 0; j < npy; j++ {
		left[j] = npx * j
		right[j] = npx*j + npx - 1
	}
	msh.edgeSets = map[string]utils.Index{
		EdgeBottom: bottom,
		EdgeRight:  right,
		EdgeTop:    top,
		EdgeLeft:   left,
	}
}

// EdgeSet returns the ordered node indices on the named boundary edge.
func (msh *CartesianMesh) EdgeSet(name string) (I utils.Index, ok bool) {
	I, ok = msh.edgeSets[name]
	return
}

func (msh *CartesianMesh) EdgeNames() []string {
	return []string{EdgeBottom, EdgeRight, EdgeTop, EdgeLeft}
}

// ElementDofs returns the node indices of element k, which double as the
// global DOF indices for a scalar Q1 field.
func (msh *CartesianMesh) ElementDofs(k int) utils.Index {
	return msh.EToV[4*k : 4*k+4]
}

// ElementCenterDof returns the global DOF index of element k's cell-centered
// dQ0 DOF. Element DOFs occupy their own contiguous index space.
func (msh *CartesianMesh) ElementCenterDof(k int) int {
	return k
}

// ElementCoords returns the physical corner coordinates of element k in the
// basis ordering SW, SE, NE, NW.
func (msh *CartesianMesh) ElementCoords(k int) (x, y [4]float64) {
	verts := msh.ElementDofs(k)
	for m, n := range verts {
		x[m] = msh.VX[n]
		y[m] = msh.VY[n]
	}
	return
}

// Spacing returns the uniform element size along each axis.
func (msh *CartesianMesh) Spacing() (dx, dy float64) {
	dx = (msh.Max[0] - msh.Min[0]) / float64(msh.Res[0])
	dy = (msh.Max[1] - msh.Min[1]) / float64(msh.Res[1])
	return
}

// Area returns the measure of the whole domain.
func (msh *CartesianMesh) Area() float64 {
	return (msh.Max[0] - msh.Min[0]) * (msh.Max[1] - msh.Min[1])
}
