package material

import "github.com/matteoilardi/goray/pkg/colors"

// Material combines a BRDF (how a surface scatters light) with an emitted
// radiance pigment (how much light it emits on its own).
type Material struct {
	BRDF            BRDF
	EmittedRadiance Pigment
}

// NewDefaultMaterial returns the neutral material: a black diffuse BRDF
// and zero emission, used when a shape is not assigned one explicitly.
func NewDefaultMaterial() Material {
	return Material{
		BRDF:            NewDiffuseBRDF(NewUniformPigment(colors.Black), 1.0),
		EmittedRadiance: NewUniformPigment(colors.Black),
	}
}
