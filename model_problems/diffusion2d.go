package model_problems

import (
	"fmt"
	"math"
	"sort"

	"github.com/notargets/gofea/FE2D"
)

// SteadyDiffusion2D drives the full engine pipeline for the steady scalar
// diffusion equation -div(k grad u) = s on a rectangular domain: structured
// mesh, assembly, Dirichlet enforcement, sparse solve, verification
// integral.
type SteadyDiffusion2D struct {
	Min, Max [2]float64
	Res      [2]int
	Coef     FE2D.CoefFunc
	Source   FE2D.CoefFunc
	// EdgeValues holds the prescribed Dirichlet value per named edge
	// ("bottom", "right", "top", "left"). Edges absent from the map are left
	// unconstrained (natural/no-flux). Sets apply in sorted edge-name order,
	// later sets winning on shared corner nodes.
	EdgeValues map[string]float64

	Tolerance     float64
	MaxIterations int
	NP            int // assembly workers; 0 lets the engine choose

	// Populated by Run
	Mesh     *FE2D.CartesianMesh
	U        *FE2D.Field
	Integral float64
	Mean     float64
}

func NewSteadyDiffusion2D(min, max [2]float64, res [2]int, k, s float64) (mp *SteadyDiffusion2D) {
	mp = &SteadyDiffusion2D{
		Min:        min,
		Max:        max,
		Res:        res,
		Coef:       FE2D.ConstCoef(k),
		Source:     FE2D.ConstCoef(s),
		EdgeValues: make(map[string]float64),
	}
	return
}

// Run executes mesh -> assemble -> constrain -> solve -> integrate and
// leaves the solved field plus its integral/mean on the receiver.
func (mp *SteadyDiffusion2D) Run() (err error) {
	mp.Mesh, err = FE2D.NewCartesianMesh(mp.Min, mp.Max, mp.Res)
	if err != nil {
		return
	}
	mp.U = FE2D.NewField(mp.Mesh, 1, "u")

	var aOpts []FE2D.AssemblyOption
	if mp.NP > 0 {
		aOpts = append(aOpts, FE2D.WithParallel(mp.NP))
	}
	sys, err := FE2D.AssembleSystem(mp.Mesh, mp.Coef, mp.Source, aOpts...)
	if err != nil {
		return
	}

	spec := FE2D.NewBoundarySpec(mp.U)
	for _, edge := range sortedEdges(mp.EdgeValues) {
		if err = spec.SetEdge(edge, mp.EdgeValues[edge]); err != nil {
			return
		}
	}
	if err = FE2D.ApplyDirichlet(sys, spec); err != nil {
		return
	}

	var sOpts []FE2D.SolveOption
	if mp.Tolerance > 0 {
		sOpts = append(sOpts, FE2D.WithTolerance(mp.Tolerance))
	}
	if mp.MaxIterations > 0 {
		sOpts = append(sOpts, FE2D.WithMaxIterations(mp.MaxIterations))
	}
	if err = sys.SolveInto(mp.U, sOpts...); err != nil {
		return
	}

	if mp.Integral, err = FE2D.Integrate(mp.Mesh, mp.U); err != nil {
		return
	}
	mp.Mean = mp.Integral / mp.Mesh.Area()
	return
}

// Report prints a solution summary in the style of the solver drivers.
func (mp *SteadyDiffusion2D) Report() {
	fmt.Printf("%dx%d mesh, %d nodes, %d elements\n",
		mp.Res[0], mp.Res[1], mp.Mesh.Np, mp.Mesh.K)
	min, max := math.Inf(1), math.Inf(-1)
	for _, val := range mp.U.DataP {
		if val < min {
			min = val
		}
		if val > max {
			max = val
		}
	}
	fmt.Printf("%12.8f\t= u min\n", min)
	fmt.Printf("%12.8f\t= u max\n", max)
	fmt.Printf("%12.8f\t= domain integral of u\n", mp.Integral)
	fmt.Printf("%12.8f\t= domain mean of u\n", mp.Mean)
}

func sortedEdges(m map[string]float64) (edges []string) {
	edges = make([]string, 0, len(m))
	for edge := range m {
		edges = append(edges, edge)
	}
	sort.Strings(edges)
	return
}
