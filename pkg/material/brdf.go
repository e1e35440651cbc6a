package material

import (
	"math"

	"github.com/matteoilardi/goray/pkg/colors"
	"github.com/matteoilardi/goray/pkg/geometry"
	"github.com/matteoilardi/goray/pkg/random"
)

// SpecularCosineTolerance bounds how close out_dir must be to the mirror
// reflection of in_dir for SpecularBRDF.Eval to return a nonzero color.
const SpecularCosineTolerance = 1e-3

// BRDF is a bidirectional reflectance distribution function: it evaluates
// the ratio of outgoing radiance to incident irradiance, and it knows how to
// importance-sample a scattered ray for a path tracer.
type BRDF interface {
	Pigment() Pigment
	Eval(normal geometry.Normal, inDir, outDir geometry.Vec, uv geometry.Vec2d) colors.Color
	ScatterRay(rng *random.PCG, inDir geometry.Vec, origin geometry.Point, normal geometry.Normal, depth int) geometry.Ray
}

// DiffuseBRDF is a perfectly Lambertian reflector with reflectance rho.
type DiffuseBRDF struct {
	Pig         Pigment
	Reflectance float64
}

// NewDiffuseBRDF returns a diffuse BRDF. A nil pigment defaults to uniform
// black.
func NewDiffuseBRDF(pigment Pigment, reflectance float64) *DiffuseBRDF {
	if pigment == nil {
		pigment = NewUniformPigment(colors.Black)
	}
	return &DiffuseBRDF{Pig: pigment, Reflectance: reflectance}
}

func (b *DiffuseBRDF) Pigment() Pigment { return b.Pig }

func (b *DiffuseBRDF) Eval(normal geometry.Normal, inDir, outDir geometry.Vec, uv geometry.Vec2d) colors.Color {
	return b.Pig.At(uv).Scale(b.Reflectance / math.Pi)
}

// ScatterRay samples the cosine-weighted (Phong-1) hemisphere about normal
// and emits a ray from origin.
func (b *DiffuseBRDF) ScatterRay(rng *random.PCG, inDir geometry.Vec, origin geometry.Point, normal geometry.Normal, depth int) geometry.Ray {
	e1, e2, e3 := onb(normal)
	theta, phi := rng.RandomPhong(1)
	sinTheta, cosTheta := math.Sin(theta), math.Cos(theta)
	direction := e1.Multiply(math.Cos(phi) * sinTheta).
		Add(e2.Multiply(math.Sin(phi) * sinTheta)).
		Add(e3.Multiply(cosTheta))

	return geometry.Ray{
		Origin:    origin,
		Direction: direction,
		TMin:      1e-3,
		TMax:      math.Inf(1),
		Depth:     depth + 1,
	}
}

// SpecularBRDF is a perfect mirror.
type SpecularBRDF struct {
	Pig Pigment
}

func NewSpecularBRDF(pigment Pigment) *SpecularBRDF {
	if pigment == nil {
		pigment = NewUniformPigment(colors.Black)
	}
	return &SpecularBRDF{Pig: pigment}
}

func (b *SpecularBRDF) Pigment() Pigment { return b.Pig }

func (b *SpecularBRDF) Eval(normal geometry.Normal, inDir, outDir geometry.Vec, uv geometry.Vec2d) colors.Color {
	reflected := reflect(inDir, normal)
	outN, errOut := outDir.Normalize()
	reflN, errR := reflected.Normalize()
	if errOut != nil || errR != nil {
		return colors.Black
	}
	angleCos := outN.Dot(reflN)
	if angleCos > 1-SpecularCosineTolerance {
		return b.Pig.At(uv)
	}
	return colors.Black
}

// ScatterRay deterministically reflects in_dir about normal.
func (b *SpecularBRDF) ScatterRay(rng *random.PCG, inDir geometry.Vec, origin geometry.Point, normal geometry.Normal, depth int) geometry.Ray {
	direction := reflect(inDir, normal)
	return geometry.Ray{
		Origin:    origin,
		Direction: direction,
		TMin:      1e-3,
		TMax:      math.Inf(1),
		Depth:     depth + 1,
	}
}

// reflect computes d - 2(n.d)n.
func reflect(d geometry.Vec, n geometry.Normal) geometry.Vec {
	nv := n.ToVec()
	return d.Subtract(nv.Multiply(2 * nv.Dot(d)))
}

// onb builds an orthonormal basis (e1, e2, e3=n) from the surface normal.
// Uses the branch-based construction: pick whichever of x/y has the larger
// magnitude to avoid a near-degenerate cross product.
func onb(n geometry.Normal) (geometry.Vec, geometry.Vec, geometry.Vec) {
	e3 := n.ToVec()
	var e1 geometry.Vec
	if math.Abs(e3.X) > math.Abs(e3.Y) {
		invLen := 1 / math.Sqrt(e3.X*e3.X+e3.Z*e3.Z)
		e1 = geometry.NewVec(-e3.Z*invLen, 0, e3.X*invLen)
	} else {
		invLen := 1 / math.Sqrt(e3.Y*e3.Y+e3.Z*e3.Z)
		e1 = geometry.NewVec(0, e3.Z*invLen, -e3.Y*invLen)
	}
	e2 := e3.Cross(e1)
	return e1, e2, e3
}
