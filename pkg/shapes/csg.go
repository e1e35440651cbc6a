package shapes

import (
	"sort"

	"github.com/matteoilardi/goray/pkg/geometry"
	"github.com/matteoilardi/goray/pkg/material"
)

// CSGOperation enumerates the boolean set operations a CSG node can apply
// to its two children.
type CSGOperation int

const (
	CSGUnion CSGOperation = iota
	CSGIntersection
	CSGDifference
	CSGFusion
)

// CSG combines two shapes with a boolean set operation. Its own
// transformation places the combined solid in the parent frame; the
// children are defined directly in the CSG's local frame.
type CSG struct {
	Left, Right    Shape
	Operation      CSGOperation
	Transformation geometry.Transformation
	Material       material.Material
}

func NewCSG(left, right Shape, op CSGOperation, t geometry.Transformation) *CSG {
	return &CSG{Left: left, Right: right, Operation: op, Transformation: t}
}

// IsPointInside reduces recursively over the two children per the CSG
// operation. Boundary points (on either child's surface) count as outside,
// matching the convention of the source implementation.
func (c *CSG) IsPointInside(p geometry.Point) bool {
	local := c.Transformation.Inverse().ApplyToPoint(p)
	inLeft := c.Left.IsPointInside(local)
	inRight := c.Right.IsPointInside(local)
	switch c.Operation {
	case CSGUnion, CSGFusion:
		return inLeft || inRight
	case CSGIntersection:
		return inLeft && inRight
	case CSGDifference:
		return inLeft && !inRight
	default:
		return false
	}
}

// Intersections enumerates Left's and Right's hits, keeps each one
// according to the CSG operation's boundary-trimming predicate, and merges
// the two filtered, ascending-t lists.
func (c *CSG) Intersections(rayWorld geometry.Ray) []HitRecord {
	ray := rayWorld.Transform(c.Transformation.Inverse())

	leftHits := c.Left.Intersections(ray)
	rightHits := c.Right.Intersections(ray)

	var kept []HitRecord
	for _, hit := range leftHits {
		if c.keepLeftHit(c.Right.IsPointInside(hit.WorldPoint)) {
			kept = append(kept, c.liftToParentFrame(hit, rayWorld, false))
		}
	}
	for _, hit := range rightHits {
		pointInsideLeft := c.Left.IsPointInside(hit.WorldPoint)
		if c.keepRightHit(pointInsideLeft) {
			flipNormal := c.Operation == CSGDifference
			kept = append(kept, c.liftToParentFrame(hit, rayWorld, flipNormal))
		}
	}

	sort.SliceStable(kept, func(i, j int) bool { return kept[i].T < kept[j].T })
	return kept
}

func (c *CSG) keepLeftHit(pointInsideRight bool) bool {
	switch c.Operation {
	case CSGUnion:
		return true
	case CSGIntersection:
		return pointInsideRight
	case CSGDifference:
		return !pointInsideRight
	case CSGFusion:
		return !pointInsideRight
	default:
		return false
	}
}

func (c *CSG) keepRightHit(pointInsideLeft bool) bool {
	switch c.Operation {
	case CSGUnion:
		return true
	case CSGIntersection:
		return pointInsideLeft
	case CSGDifference:
		return pointInsideLeft
	case CSGFusion:
		return !pointInsideLeft
	default:
		return false
	}
}

// liftToParentFrame re-expresses a child's hit (computed against the
// CSG-local ray) in the parent frame: the world point and normal are
// carried through the CSG's own transformation, and the original
// parent-frame ray is restored.
func (c *CSG) liftToParentFrame(hit HitRecord, rayWorld geometry.Ray, flipNormal bool) HitRecord {
	normal := c.Transformation.ApplyToNormal(hit.Normal)
	if flipNormal {
		normal = normal.Negate()
	}
	return HitRecord{
		Material:     hit.Material,
		WorldPoint:   c.Transformation.ApplyToPoint(hit.WorldPoint),
		Normal:       normal,
		SurfacePoint: hit.SurfacePoint,
		Ray:          rayWorld,
		T:            hit.T,
	}
}
