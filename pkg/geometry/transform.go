package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var identity3 = mgl64.Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}

// Transformation is a pair of a 3x3 linear map and a translation, together
// with the cached inverse of each half. Inversion is O(1): the two halves
// are simply swapped. Composition multiplies both halves in opposite order
// and never recomputes an inverse at runtime.
type Transformation struct {
	linear         mgl64.Mat3
	translation    Vec
	invLinear      mgl64.Mat3
	invTranslation Vec
}

func vecToMgl(v Vec) mgl64.Vec3 { return mgl64.Vec3{v.X, v.Y, v.Z} }
func mglToVec(v mgl64.Vec3) Vec { return Vec{v[0], v[1], v[2]} }

// Identity returns the identity transformation.
func Identity() Transformation {
	return Transformation{linear: identity3, invLinear: identity3}
}

// Translation returns the transformation that translates by v.
func Translation(v Vec) Transformation {
	return Transformation{
		linear:         identity3,
		translation:    v,
		invLinear:      identity3,
		invTranslation: v.Negate(),
	}
}

// Scaling returns the transformation that scales each axis independently.
// sx, sy, sz must be nonzero.
func Scaling(sx, sy, sz float64) Transformation {
	return Transformation{
		linear:    mgl64.Mat3{sx, 0, 0, 0, sy, 0, 0, 0, sz},
		invLinear: mgl64.Mat3{1 / sx, 0, 0, 0, 1 / sy, 0, 0, 0, 1 / sz},
	}
}

// RotationX returns a rotation of angle radians about the x axis.
func RotationX(angle float64) Transformation {
	s, c := math.Sin(angle), math.Cos(angle)
	m := mgl64.Mat3{1, 0, 0, 0, c, s, 0, -s, c}
	return Transformation{linear: m, invLinear: m.Transpose()}
}

// RotationY returns a rotation of angle radians about the y axis.
func RotationY(angle float64) Transformation {
	s, c := math.Sin(angle), math.Cos(angle)
	m := mgl64.Mat3{c, 0, -s, 0, 1, 0, s, 0, c}
	return Transformation{linear: m, invLinear: m.Transpose()}
}

// RotationZ returns a rotation of angle radians about the z axis.
func RotationZ(angle float64) Transformation {
	s, c := math.Sin(angle), math.Cos(angle)
	m := mgl64.Mat3{c, s, 0, -s, c, 0, 0, 0, 1}
	return Transformation{linear: m, invLinear: m.Transpose()}
}

// Compose returns t1 ∘ t2, i.e. the transformation obtained by applying t2
// first and then t1. Composition is left-associative: A.Compose(B).Compose(C)
// evaluates as (A∘B)∘C, matching the DSL's left-to-right reading of `*`.
func (t1 Transformation) Compose(t2 Transformation) Transformation {
	return Transformation{
		linear:         t1.linear.Mul3(t2.linear),
		translation:    mglToVec(t1.linear.Mul3x1(vecToMgl(t2.translation))).Add(t1.translation),
		invLinear:      t2.invLinear.Mul3(t1.invLinear),
		invTranslation: mglToVec(t2.invLinear.Mul3x1(vecToMgl(t1.invTranslation))).Add(t2.invTranslation),
	}
}

// Inverse returns the inverse transformation. This is O(1): it swaps the
// forward and cached-inverse halves.
func (t Transformation) Inverse() Transformation {
	return Transformation{
		linear:         t.invLinear,
		translation:    t.invTranslation,
		invLinear:      t.linear,
		invTranslation: t.translation,
	}
}

// IsConsistent reports whether the cached inverse genuinely inverts the
// linear part, within tolerance.
func (t Transformation) IsConsistent() bool {
	product := t.linear.Mul3(t.invLinear)
	for i := 0; i < 9; i++ {
		want := identity3[i]
		if math.Abs(product[i]-want) > DefaultErrorTolerance {
			return false
		}
	}
	return true
}

// ApplyToVec applies the linear part only.
func (t Transformation) ApplyToVec(v Vec) Vec {
	return mglToVec(t.linear.Mul3x1(vecToMgl(v)))
}

// ApplyToPoint applies the linear part and then the translation.
func (t Transformation) ApplyToPoint(p Point) Point {
	v := mglToVec(t.linear.Mul3x1(mgl64.Vec3{p.X, p.Y, p.Z}))
	return Point{v.X + t.translation.X, v.Y + t.translation.Y, v.Z + t.translation.Z}
}

// ApplyToNormal applies the inverse-transpose of the linear part. The
// result is not renormalized; callers normalize explicitly when required.
func (t Transformation) ApplyToNormal(n Normal) Normal {
	nt := t.invLinear.Transpose()
	v := nt.Mul3x1(mgl64.Vec3{n.X, n.Y, n.Z})
	return Normal{v[0], v[1], v[2]}
}
