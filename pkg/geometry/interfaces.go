package geometry

import (
	"github.com/prismtrace/go-prism-tracer/pkg/core"
	"github.com/prismtrace/go-prism-tracer/pkg/material"
)

// Body is a renderable shape supporting nearest-intersection queries
type Body interface {
	// Intersect returns the nearest hit with t in [tMin, tMax], if any
	Intersect(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
}
