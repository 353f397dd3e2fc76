package model_problems

import (
	"math"
	"testing"

	"github.com/notargets/gofea/FE2D"
	"github.com/stretchr/testify/assert"
)

func TestSteadyDiffusion2D(t *testing.T) {
	// The reference conduction problem end to end through the model driver
	mp := NewSteadyDiffusion2D([2]float64{0, 0}, [2]float64{2, 1}, [2]int{16, 8}, 1, 0)
	mp.EdgeValues[FE2D.EdgeBottom] = 1
	mp.EdgeValues[FE2D.EdgeTop] = 0
	assert.NoError(t, mp.Run())

	assert.InDelta(t, 0.5, mp.Mean, 1.e-10)
	assert.InDelta(t, 1.0, mp.Integral, 1.e-10)
	for n := 0; n < mp.Mesh.Np; n++ {
		assert.InDelta(t, 1-mp.Mesh.VY[n], mp.U.At(n), 1.e-8)
	}
}

func TestSteadyDiffusion2DSource(t *testing.T) {
	// -u'' = 1 on [0,1] with u(0)=u(1)=0 has u = y(1-y)/2, mean 1/12.
	// Constrained top and bottom, natural sides: the 2D solve reduces to it.
	mp := NewSteadyDiffusion2D([2]float64{0, 0}, [2]float64{1, 1}, [2]int{4, 32}, 1, 1)
	mp.EdgeValues[FE2D.EdgeBottom] = 0
	mp.EdgeValues[FE2D.EdgeTop] = 0
	assert.NoError(t, mp.Run())

	for n := 0; n < mp.Mesh.Np; n++ {
		y := mp.Mesh.VY[n]
		assert.True(t, math.Abs(y*(1-y)/2-mp.U.At(n)) < 1.e-3)
	}
	assert.InDelta(t, 1./12., mp.Mean, 1.e-3)
}

func TestSteadyDiffusion2DBadMesh(t *testing.T) {
	mp := NewSteadyDiffusion2D([2]float64{0, 0}, [2]float64{1, 1}, [2]int{0, 8}, 1, 0)
	assert.Error(t, mp.Run())
}
