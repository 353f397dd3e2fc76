package FE2D

import (
	"sort"

	"github.com/notargets/gofea/utils"
)

// BoundarySpec is an ordered list of (DOF set, prescribed value) pairs
// targeting one field. When sets overlap, the later-applied set wins: Set
// calls append in order and flattening keeps the last value written per DOF.
type BoundarySpec struct {
	field *Field
	names []string
	sets  []utils.Index
	vals  []float64
}

func NewBoundarySpec(field *Field) *BoundarySpec {
	return &BoundarySpec{field: field}
}

// Set adds a named DOF set with its prescribed value. Validation of the
// indices against the field happens here so a bad specification fails before
// touching the system.
func (b *BoundarySpec) Set(name string, I utils.Index, val float64) (err error) {
	for _, dof := range I {
		if dof < 0 || dof >= b.field.NumDofs() {
			err = &UnknownDofError{Dof: dof, Size: b.field.NumDofs()}
			return
		}
	}
	b.names = append(b.names, name)
	b.sets = append(b.sets, I.Copy())
	b.vals = append(b.vals, val)
	return
}

// SetEdge constrains all nodes of a named mesh edge of the field's mesh.
func (b *BoundarySpec) SetEdge(edge string, val float64) (err error) {
	I, ok := b.field.Mesh().EdgeSet(edge)
	if !ok {
		err = &UnknownDofError{Dof: -1, Size: b.field.NumDofs()}
		return
	}
	return b.Set(edge, I, val)
}

// Constraints flattens the spec to a sorted DOF list with one value per DOF,
// last-applied set winning on overlap.
func (b *BoundarySpec) Constraints() (I utils.Index, vals []float64) {
	byDof := make(map[int]float64)
	for n, set := range b.sets {
		for _, dof := range set {
			byDof[dof] = b.vals[n]
		}
	}
	I = make(utils.Index, 0, len(byDof))
	for dof := range byDof {
		I = append(I, dof)
	}
	sort.Ints(I)
	vals = make([]float64, len(I))
	for i, dof := range I {
		vals[i] = byDof[dof]
	}
	return
}

// ApplyDirichlet imposes the prescribed values on the assembled system in
// place. For each constrained DOF d with value v:
//
//	(a) RHS[r] -= A[r,d]*v and A[r,d] = 0 for every row r != d
//	(b) row d and column d zero except A[d,d] = 1, RHS[d] = v
//
// Symmetry of the matrix is preserved. The operation is idempotent: once the
// off-diagonal entries of constrained rows/columns are zero, a second
// application subtracts nothing and rewrites the same diagonal and RHS.
func ApplyDirichlet(sys *LinearSystem, spec *BoundarySpec) (err error) {
	n := sys.Dims()
	I, vals := spec.Constraints()
	for _, dof := range I {
		if dof < 0 || dof >= n {
			return &UnknownDofError{Dof: dof, Size: n}
		}
	}
	var (
		constrained = make(map[int]float64, len(I))
		zeroList    [][2]int
	)
	for i, dof := range I {
		constrained[dof] = vals[i]
	}
	// Single pass over stored nonzeros: correct the RHS for eliminated
	// columns and collect every entry in a constrained row or column.
	sys.A.DoNonZero(func(r, c int, v float64) {
		_, rCon := constrained[r]
		vc, cCon := constrained[c]
		if cCon && r != c {
			sys.RHS.DataP[r] -= v * vc
		}
		if (rCon || cCon) && r != c {
			zeroList = append(zeroList, [2]int{r, c})
		}
	})
	for _, rc := range zeroList {
		sys.A.Set(rc[0], rc[1], 0)
	}
	for dof, val := range constrained {
		sys.A.Set(dof, dof, 1)
		sys.RHS.DataP[dof] = val
	}
	sys.constrained = true
	return
}
