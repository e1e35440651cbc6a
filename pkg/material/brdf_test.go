package material

import (
	"math"
	"testing"

	"github.com/matteoilardi/goray/pkg/colors"
	"github.com/matteoilardi/goray/pkg/geometry"
	"github.com/matteoilardi/goray/pkg/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffuseBRDFEval(t *testing.T) {
	brdf := NewDiffuseBRDF(NewUniformPigment(colors.New(1, 1, 1)), 0.5)
	n := geometry.NewNormal(0, 0, 1)
	got := brdf.Eval(n, geometry.NewVec(0, 0, 1), geometry.NewVec(0, 0, 1), geometry.NewVec2d(0, 0))
	want := 0.5 / math.Pi
	assert.InDelta(t, want, got.R, 1e-9)
}

func TestDiffuseBRDFScatterRayStaysInHemisphere(t *testing.T) {
	brdf := NewDiffuseBRDF(NewUniformPigment(colors.White), 1)
	rng := random.NewDefaultPCG()
	normal := geometry.NewNormal(0, 0, 1)
	origin := geometry.NewPoint(0, 0, 0)

	for i := 0; i < 200; i++ {
		ray := brdf.ScatterRay(rng, geometry.NewVec(0, 0, -1), origin, normal, 3)
		require.Equal(t, 4, ray.Depth)
		dir, err := ray.Direction.Normalize()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, dir.Dot(geometry.NewVec(0, 0, 1)), -1e-9)
	}
}

func TestSpecularBRDFReflection(t *testing.T) {
	brdf := NewSpecularBRDF(NewUniformPigment(colors.New(1, 1, 1)))
	n := geometry.NewNormal(0, 0, 1)
	origin := geometry.NewPoint(0, 0, 0)
	rng := random.NewDefaultPCG()

	inDir := geometry.NewVec(1, 0, -1)
	ray := brdf.ScatterRay(rng, inDir, origin, n, 0)
	// Mirror reflection of (1,0,-1) about (0,0,1) is (1,0,1).
	assert.InDelta(t, 1, ray.Direction.X, 1e-9)
	assert.InDelta(t, 0, ray.Direction.Y, 1e-9)
	assert.InDelta(t, 1, ray.Direction.Z, 1e-9)

	got := brdf.Eval(n, inDir, ray.Direction, geometry.NewVec2d(0, 0))
	assert.Equal(t, colors.New(1, 1, 1), got)

	zero := brdf.Eval(n, inDir, geometry.NewVec(0, 1, 0), geometry.NewVec2d(0, 0))
	assert.Equal(t, colors.Black, zero)
}
