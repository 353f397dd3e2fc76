package utils

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

type Vector struct {
	V     *mat.VecDense
	DataP []float64 // Direct access to the vector storage
}

func NewVector(n int, dataO ...[]float64) (V Vector) {
	var v *mat.VecDense
	if len(dataO) != 0 {
		if len(dataO[0]) != n {
			err := fmt.Errorf("mismatch in allocation: NewVector n = %v, len(data[0]) = %v\n", n, len(dataO[0]))
			panic(err)
		}
		v = mat.NewVecDense(n, dataO[0])
	} else {
		v = mat.NewVecDense(n, make([]float64, n))
	}
	V = Vector{v, v.RawVector().Data}
	return
}

func NewVectorConst(n int, val float64) (V Vector) {
	V = NewVector(n)
	for i := range V.DataP {
		V.DataP[i] = val
	}
	return
}

func (v Vector) Len() int             { return v.V.Len() }
func (v Vector) AtVec(i int) float64  { return v.V.AtVec(i) }
func (v Vector) Data() []float64      { return v.DataP }
func (v Vector) Set(i int, d float64) { v.V.SetVec(i, d) }

func (v Vector) Copy() (R Vector) {
	R = NewVector(v.Len())
	copy(R.DataP, v.DataP)
	return
}

func (v Vector) Add(a Vector) Vector { // Changes receiver
	for i, val := range a.DataP {
		v.DataP[i] += val
	}
	return v
}

func (v Vector) Subtract(a Vector) Vector { // Changes receiver
	for i, val := range a.DataP {
		v.DataP[i] -= val
	}
	return v
}

func (v Vector) Scale(a float64) Vector { // Changes receiver
	for i := range v.DataP {
		v.DataP[i] *= a
	}
	return v
}

func (v Vector) Dot(a Vector) (d float64) {
	for i, val := range v.DataP {
		d += val * a.DataP[i]
	}
	return
}

func (v Vector) Norm() (n float64) {
	return math.Sqrt(v.Dot(v))
}

func (v Vector) Min() (min float64) {
	min = v.DataP[0]
	for _, val := range v.DataP {
		if val < min {
			min = val
		}
	}
	return
}

func (v Vector) Max() (max float64) {
	max = v.DataP[0]
	for _, val := range v.DataP {
		if val > max {
			max = val
		}
	}
	return
}

// SubsetAssign sets v[I[i]] = vals[i] for each i.
func (v Vector) SubsetAssign(I Index, vals []float64) Vector { // Changes receiver
	if len(I) != len(vals) {
		err := fmt.Errorf("length of index and values are not equal: len(I) = %v, len(vals) = %v\n", len(I), len(vals))
		panic(err)
	}
	for i, ind := range I {
		v.DataP[ind] = vals[i]
	}
	return v
}

func (v Vector) Print(label string) (o string) {
	o = fmt.Sprintf("%s =\n%8.5f\n", label, mat.Formatted(v.V, mat.Squeeze()))
	return
}
