package scene

import (
	"github.com/matteoilardi/goray/pkg/camera"
	"github.com/matteoilardi/goray/pkg/material"
	"github.com/matteoilardi/goray/pkg/shapes"
)

// Scene is the immutable result of parsing a scene DSL source: the
// resolved float variables, the named material table, the populated
// world, and the single declared camera.
type Scene struct {
	FloatVariables map[string]float64
	Materials      map[string]material.Material
	World          *shapes.World
	Camera         camera.Camera
}
