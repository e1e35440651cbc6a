package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matteoilardi/goray/pkg/camera"
	"github.com/matteoilardi/goray/pkg/colors"
	"github.com/matteoilardi/goray/pkg/geometry"
	"github.com/matteoilardi/goray/pkg/material"
	"github.com/matteoilardi/goray/pkg/shapes"
)

const workedExampleSource = `
float clock(150)

material sky_material(
    diffuse(uniform(<0, 0, 0>)),
    uniform(<0.7, 0.5, 1>)
)

# Here is a comment

material ground_material(
    diffuse(checkered(<0.3, 0.5, 0.1>,
                      <0.1, 0.2, 0.5>, 4)),
    uniform(<0, 0, 0>)
)

material sphere_material(
    specular(uniform(<0.5, 0.5, 0.5>)),
    uniform(<0, 0, 0>)
)

plane (translation([0, 0, 100]) * rotation_y(clock), sky_material)
plane(identity, ground_material)

sphere(translation([0, 0, 1]), sphere_material)

camera(perspective, rotation_z(30) * translation([-4, 0, 1]), 1.0, 2.0)
`

// transformsClose probes two transformations against a handful of points
// and vectors rather than comparing internal matrices directly.
func transformsClose(t *testing.T, got, want geometry.Transformation) {
	t.Helper()
	probes := []geometry.Point{
		geometry.NewPoint(0, 0, 0),
		geometry.NewPoint(1, 0, 0),
		geometry.NewPoint(0, 1, 0),
		geometry.NewPoint(0, 0, 1),
		geometry.NewPoint(1, 2, 3),
	}
	for _, p := range probes {
		assert.True(t, got.ApplyToPoint(p).IsClose(want.ApplyToPoint(p), 1e-5))
	}
}

func TestParseSceneWorkedExample(t *testing.T) {
	sc, err := ParseScene(workedExampleSource)
	require.NoError(t, err)

	require.Len(t, sc.FloatVariables, 1)
	assert.Equal(t, 150.0, sc.FloatVariables["clock"])

	require.Len(t, sc.Materials, 3)
	skyMat, ok := sc.Materials["sky_material"]
	require.True(t, ok)
	groundMat, ok := sc.Materials["ground_material"]
	require.True(t, ok)
	sphereMat, ok := sc.Materials["sphere_material"]
	require.True(t, ok)

	skyBRDF, ok := skyMat.BRDF.(*material.DiffuseBRDF)
	require.True(t, ok)
	skyPigment, ok := skyBRDF.Pigment().(*material.UniformPigment)
	require.True(t, ok)
	assert.True(t, skyPigment.Color.IsClose(colors.Black, 1e-5))

	groundBRDF, ok := groundMat.BRDF.(*material.DiffuseBRDF)
	require.True(t, ok)
	groundPigment, ok := groundBRDF.Pigment().(*material.CheckeredPigment)
	require.True(t, ok)
	assert.True(t, groundPigment.Color1.IsClose(colors.New(0.3, 0.5, 0.1), 1e-5))
	assert.True(t, groundPigment.Color2.IsClose(colors.New(0.1, 0.2, 0.5), 1e-5))
	assert.Equal(t, 4, groundPigment.NIntervals)

	sphereBRDF, ok := sphereMat.BRDF.(*material.SpecularBRDF)
	require.True(t, ok)
	spherePigment, ok := sphereBRDF.Pigment().(*material.UniformPigment)
	require.True(t, ok)
	assert.True(t, spherePigment.Color.IsClose(colors.New(0.5, 0.5, 0.5), 1e-5))

	skyEmitted, ok := skyMat.EmittedRadiance.(*material.UniformPigment)
	require.True(t, ok)
	assert.True(t, skyEmitted.Color.IsClose(colors.New(0.7, 0.5, 1), 1e-5))

	groundEmitted, ok := groundMat.EmittedRadiance.(*material.UniformPigment)
	require.True(t, ok)
	assert.True(t, groundEmitted.Color.IsClose(colors.Black, 1e-5))

	sphereEmitted, ok := sphereMat.EmittedRadiance.(*material.UniformPigment)
	require.True(t, ok)
	assert.True(t, sphereEmitted.Color.IsClose(colors.Black, 1e-5))

	require.Len(t, sc.World.Shapes, 3)

	plane0, ok := sc.World.Shapes[0].(*shapes.Plane)
	require.True(t, ok)
	transformsClose(t, plane0.Transformation,
		geometry.Translation(geometry.NewVec(0, 0, 100)).Compose(geometry.RotationY(geometry.DegToRads(150))))

	plane1, ok := sc.World.Shapes[1].(*shapes.Plane)
	require.True(t, ok)
	transformsClose(t, plane1.Transformation, geometry.Identity())

	sphere, ok := sc.World.Shapes[2].(*shapes.Sphere)
	require.True(t, ok)
	transformsClose(t, sphere.Transformation, geometry.Translation(geometry.NewVec(0, 0, 1)))

	cam, ok := sc.Camera.(*camera.PerspectiveCamera)
	require.True(t, ok)
	transformsClose(t, cam.Transformation,
		geometry.RotationZ(geometry.DegToRads(30)).Compose(geometry.Translation(geometry.NewVec(-4, 0, 1))))
	assert.InDelta(t, 1.0, cam.AspectRatio, 1e-5)
	assert.InDelta(t, 2.0, cam.Distance, 1e-5)
}

func TestParseSceneUndefinedMaterial(t *testing.T) {
	_, err := ParseScene("plane(identity, this_material_does_not_exist)")
	require.Error(t, err)
	var grammarErr *GrammarError
	require.ErrorAs(t, err, &grammarErr)
	assert.Contains(t, grammarErr.Message, "unknown material")
}

func TestParseSceneDoubleCameraRejected(t *testing.T) {
	src := "camera(perspective, rotation_z(30) * translation([-4, 0, 1]), 1.0, 1.0)\n" +
		"camera(orthogonal, identity, 1.0, 1.0)"
	_, err := ParseScene(src)
	require.Error(t, err)
	var grammarErr *GrammarError
	require.ErrorAs(t, err, &grammarErr)
}

func TestParseSceneTransformIsLeftAssociative(t *testing.T) {
	src := "camera(orthogonal, translation([1, 0, 0]) * scaling([2, 1, 1]) * translation([0, 1, 0]), 1.0, 1.0)"
	sc, err := ParseScene(src)
	require.NoError(t, err)

	cam, ok := sc.Camera.(*camera.OrthogonalCamera)
	require.True(t, ok)

	want := geometry.Translation(geometry.NewVec(1, 0, 0)).
		Compose(geometry.Scaling(2, 1, 1)).
		Compose(geometry.Translation(geometry.NewVec(0, 1, 0)))
	transformsClose(t, cam.Transformation, want)
}
