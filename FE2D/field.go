package FE2D

import (
	"github.com/notargets/gofea/utils"
)

// Field stores DOF values over a mesh, either per node (continuous Q1) or
// per element (dQ0). The DOF index space is contiguous:
// dof = entity*perEntity + component. Values are zero-initialized, mutable.
// A Field references its mesh but does not own it, and two fields over the
// same mesh never share storage.
type Field struct {
	Name       string
	DataP      []float64
	msh        *CartesianMesh
	perEntity  int
	onElements bool
}

// NewField allocates a node-based field with dofsPerNode components per node.
func NewField(msh *CartesianMesh, dofsPerNode int, name ...string) (f *Field) {
	f = &Field{
		DataP:     make([]float64, msh.Np*dofsPerNode),
		msh:       msh,
		perEntity: dofsPerNode,
	}
	if len(name) != 0 {
		f.Name = name[0]
	}
	return
}

// NewElementField allocates an element-based field with dofsPerElement
// components per element, holding the dQ0 companion DOFs.
func NewElementField(msh *CartesianMesh, dofsPerElement int, name ...string) (f *Field) {
	f = &Field{
		DataP:      make([]float64, msh.K*dofsPerElement),
		msh:        msh,
		perEntity:  dofsPerElement,
		onElements: true,
	}
	if len(name) != 0 {
		f.Name = name[0]
	}
	return
}

func (f *Field) Mesh() *CartesianMesh { return f.msh }
func (f *Field) NumDofs() int         { return len(f.DataP) }
func (f *Field) DofsPerEntity() int   { return f.perEntity }
func (f *Field) OnElements() bool     { return f.onElements }

func (f *Field) At(dof int) float64 { return f.DataP[dof] }

func (f *Field) Assign(dof int, val float64) (err error) {
	if dof < 0 || dof >= len(f.DataP) {
		err = &UnknownDofError{Dof: dof, Size: len(f.DataP)}
		return
	}
	f.DataP[dof] = val
	return
}

// AssignSet bulk-assigns val to every DOF index in I.
func (f *Field) AssignSet(I utils.Index, val float64) (err error) {
	for _, dof := range I {
		if dof < 0 || dof >= len(f.DataP) {
			err = &UnknownDofError{Dof: dof, Size: len(f.DataP)}
			return
		}
	}
	for _, dof := range I {
		f.DataP[dof] = val
	}
	return
}

// InterpElement evaluates the scalar field at reference point (r,s) of
// element k by basis interpolation. Element fields return the cell value.
func (f *Field) InterpElement(k int, r, s float64) (val float64) {
	if f.onElements {
		return f.DataP[f.msh.ElementCenterDof(k)*f.perEntity]
	}
	var (
		basis Q1Basis
		N     = basis.ShapeFunctions(r, s)
	)
	for m, n := range f.msh.ElementDofs(k) {
		val += N[m] * f.DataP[n*f.perEntity]
	}
	return
}
