package scene

import (
	"github.com/prismtrace/go-prism-tracer/pkg/core"
)

// CameraConfig describes a simple viewport camera
type CameraConfig struct {
	Origin         core.Vec3 // Eye position
	FocalLength    float64   // Distance from the eye to the viewport
	AspectRatio    float64   // Viewport width / height
	ViewportHeight float64   // Viewport height in world units
	Horizontal     core.Vec3 // Direction of increasing u (normalized internally)
	Vertical       core.Vec3 // Direction of increasing v (normalized internally)
}

// DefaultCameraConfig returns the standard 16:9 camera at the world origin
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Origin:         core.NewVec3(0, 0, 0),
		FocalLength:    1.0,
		AspectRatio:    16.0 / 9.0,
		ViewportHeight: 2.0,
		Horizontal:     core.NewVec3(1, 0, 0),
		Vertical:       core.NewVec3(0, 1, 0),
	}
}

// Camera generates primary rays from normalized viewport coordinates
type Camera struct {
	origin      core.Vec3
	horizontal  core.Vec3
	vertical    core.Vec3
	imageOrigin core.Vec3
}

// NewCamera creates a viewport camera from a config
func NewCamera(config CameraConfig) *Camera {
	viewportWidth := config.AspectRatio * config.ViewportHeight

	horizontal := config.Horizontal.Normalize().Multiply(viewportWidth)
	vertical := config.Vertical.Normalize().Multiply(config.ViewportHeight)
	imageOrigin := config.Origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(core.NewVec3(0, 0, config.FocalLength))

	return &Camera{
		origin:      config.Origin,
		horizontal:  horizontal,
		vertical:    vertical,
		imageOrigin: imageOrigin,
	}
}

// GetRay generates a White primary ray for viewport coordinates (u, v) in [0,1]
func (c *Camera) GetRay(u, v float64) core.Ray {
	direction := c.imageOrigin.
		Add(c.horizontal.Multiply(u)).
		Add(c.vertical.Multiply(v)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction)
}
