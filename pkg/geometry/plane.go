package geometry

import (
	"math"

	"github.com/prismtrace/go-prism-tracer/pkg/core"
	"github.com/prismtrace/go-prism-tracer/pkg/material"
)

// Plane represents a bounded parallelogram spanned by two axes from an origin
// corner. The axes must be unit length and mutually orthogonal; the normal is
// computed once as XAxis × YAxis and not renormalized.
type Plane struct {
	Origin   core.Vec3
	XAxis    core.Vec3
	YAxis    core.Vec3
	ExtentX  float64
	ExtentY  float64
	Normal   core.Vec3
	Material material.Material
}

// NewPlane creates a new bounded plane
func NewPlane(origin, xAxis, yAxis core.Vec3, extentX, extentY float64, mat material.Material) *Plane {
	return &Plane{
		Origin:   origin,
		XAxis:    xAxis,
		YAxis:    yAxis,
		ExtentX:  extentX,
		ExtentY:  extentY,
		Normal:   xAxis.Cross(yAxis),
		Material: mat,
	}
}

// Intersect tests if a ray intersects with the plane
func (p *Plane) Intersect(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Ray parallel to the plane
	if math.Abs(denominator) < 1e-4 {
		return nil, false
	}

	// t = (origin_plane - origin_ray) · normal / (direction · normal)
	t := p.Origin.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t < tMin || t > tMax {
		return nil, false
	}

	// Project the intersection point into the plane's local (x, y) basis.
	// The bounds test is strictly interior: edge-exact hits are misses.
	point := ray.At(t)
	local := point.Subtract(p.Origin)
	x := local.Dot(p.XAxis)
	y := local.Dot(p.YAxis)
	if x <= 0 || x >= p.ExtentX || y <= 0 || y >= p.ExtentY {
		return nil, false
	}

	return &material.HitRecord{
		T:        t,
		Point:    point,
		Normal:   p.Normal,
		Material: p.Material,
	}, true
}
