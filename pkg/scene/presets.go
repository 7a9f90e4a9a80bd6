package scene

import (
	"github.com/prismtrace/go-prism-tracer/pkg/core"
	"github.com/prismtrace/go-prism-tracer/pkg/geometry"
	"github.com/prismtrace/go-prism-tracer/pkg/material"
)

// NewDefaultScene creates the default scene: a glass sphere flanked by two
// diffuse spheres above a large green ground sphere.
func NewDefaultScene() *Scene {
	camera := NewCamera(DefaultCameraConfig())

	glass := material.NewDielectric(core.NewVec3(0.9, 0.8, 0.9), 1.5)
	diffuseRed := material.NewDiffuse(core.NewVec3(0.9, 0.1, 0.2))
	diffuseBlue := material.NewDiffuse(core.NewVec3(0.2, 0.2, 0.9))
	diffuseGreen := material.NewDiffuse(core.NewVec3(0.5, 0.8, 0.3))

	return NewScene(camera,
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, glass),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.4, diffuseRed),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.2, diffuseBlue),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, diffuseGreen),
	)
}

// NewPrismScene creates a scene with a dispersive glass sphere over a metal
// floor plane, with diffuse backdrop spheres to catch the split rays.
func NewPrismScene() *Scene {
	camera := NewCamera(DefaultCameraConfig())

	prism := material.NewDispersiveDielectric(
		core.NewVec3(0.95, 0.95, 0.95),
		[3]float64{1.51, 1.53, 1.55},
	)
	mirror := material.NewMetal(core.NewVec3(0.8, 0.8, 0.8))
	diffuseWhite := material.NewDiffuse(core.NewVec3(0.8, 0.8, 0.8))
	diffuseGrey := material.NewDiffuse(core.NewVec3(0.4, 0.4, 0.4))

	// Floor plane centred under the prism; x̂ × (-ẑ) = ŷ, so the normal faces
	// up and rays arriving from above reflect instead of being absorbed.
	floor := geometry.NewPlane(
		core.NewVec3(-4, -0.5, 3),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 0, -1),
		8, 8,
		mirror,
	)

	return NewScene(camera,
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, prism),
		floor,
		geometry.NewSphere(core.NewVec3(-1.2, 0.2, -2), 0.6, diffuseWhite),
		geometry.NewSphere(core.NewVec3(1.2, 0.2, -2), 0.6, diffuseGrey),
	)
}
