package scene

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/prismtrace/go-prism-tracer/pkg/core"
	"github.com/prismtrace/go-prism-tracer/pkg/geometry"
	"github.com/prismtrace/go-prism-tracer/pkg/material"
)

// CameraCfg describes the camera section of a scene file
type CameraCfg struct {
	Origin         [3]float64 `json:"origin"`
	FocalLength    float64    `json:"focalLength,omitempty"`
	AspectRatio    float64    `json:"aspectRatio,omitempty"`
	ViewportHeight float64    `json:"viewportHeight,omitempty"`
}

// BackgroundCfg describes the background gradient endpoints
type BackgroundCfg struct {
	Top    [3]float64 `json:"top"`
	Bottom [3]float64 `json:"bottom"`
}

// MaterialCfg describes one named material
type MaterialCfg struct {
	Type              string     `json:"type"` // diffuse | metal | dielectric | dispersive
	Albedo            [3]float64 `json:"albedo"`
	RefractiveIndex   float64    `json:"refractiveIndex,omitempty"`
	RefractiveIndices [3]float64 `json:"refractiveIndices,omitempty"`
}

// SphereCfg describes one sphere body
type SphereCfg struct {
	Center   [3]float64 `json:"center"`
	Radius   float64    `json:"radius"`
	Material string     `json:"material"`
}

// PlaneCfg describes one bounded plane body
type PlaneCfg struct {
	Origin   [3]float64 `json:"origin"`
	XAxis    [3]float64 `json:"xAxis"`
	YAxis    [3]float64 `json:"yAxis"`
	ExtentX  float64    `json:"extentX"`
	ExtentY  float64    `json:"extentY"`
	Material string     `json:"material"`
}

// FileCfg is the top-level scene file schema
type FileCfg struct {
	Camera     *CameraCfg             `json:"camera,omitempty"`
	Background *BackgroundCfg         `json:"background,omitempty"`
	Materials  map[string]MaterialCfg `json:"materials"`
	Spheres    []SphereCfg            `json:"spheres,omitempty"`
	Planes     []PlaneCfg             `json:"planes,omitempty"`
}

// LoadFile reads a JSON scene description and assembles a Scene from it.
// Bodies reference materials by name; dangling references and unknown
// material types are errors.
func LoadFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	var cfg FileCfg
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene file %s: %w", path, err)
	}

	cameraConfig := DefaultCameraConfig()
	if cfg.Camera != nil {
		cameraConfig.Origin = vec3(cfg.Camera.Origin)
		if cfg.Camera.FocalLength > 0 {
			cameraConfig.FocalLength = cfg.Camera.FocalLength
		}
		if cfg.Camera.AspectRatio > 0 {
			cameraConfig.AspectRatio = cfg.Camera.AspectRatio
		}
		if cfg.Camera.ViewportHeight > 0 {
			cameraConfig.ViewportHeight = cfg.Camera.ViewportHeight
		}
	}

	// Materials arena: bodies borrow from it by name
	materials := make(map[string]material.Material, len(cfg.Materials))
	for name, mc := range cfg.Materials {
		mat, err := buildMaterial(mc)
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", name, err)
		}
		materials[name] = mat
	}

	s := NewScene(NewCamera(cameraConfig))
	if cfg.Background != nil {
		s.TopColor = vec3(cfg.Background.Top)
		s.BottomColor = vec3(cfg.Background.Bottom)
	}

	for i, sc := range cfg.Spheres {
		mat, ok := materials[sc.Material]
		if !ok {
			return nil, fmt.Errorf("sphere %d references unknown material %q", i, sc.Material)
		}
		if sc.Radius <= 0 {
			return nil, fmt.Errorf("sphere %d has non-positive radius %g", i, sc.Radius)
		}
		s.Bodies = append(s.Bodies, geometry.NewSphere(vec3(sc.Center), sc.Radius, mat))
	}

	for i, pc := range cfg.Planes {
		mat, ok := materials[pc.Material]
		if !ok {
			return nil, fmt.Errorf("plane %d references unknown material %q", i, pc.Material)
		}
		if pc.ExtentX <= 0 || pc.ExtentY <= 0 {
			return nil, fmt.Errorf("plane %d has non-positive extents (%g, %g)", i, pc.ExtentX, pc.ExtentY)
		}
		s.Bodies = append(s.Bodies, geometry.NewPlane(
			vec3(pc.Origin), vec3(pc.XAxis), vec3(pc.YAxis), pc.ExtentX, pc.ExtentY, mat))
	}

	return s, nil
}

func buildMaterial(cfg MaterialCfg) (material.Material, error) {
	albedo := vec3(cfg.Albedo)
	switch cfg.Type {
	case "diffuse":
		return material.NewDiffuse(albedo), nil
	case "metal":
		return material.NewMetal(albedo), nil
	case "dielectric":
		if cfg.RefractiveIndex <= 0 {
			return nil, fmt.Errorf("dielectric requires a positive refractiveIndex, got %g", cfg.RefractiveIndex)
		}
		return material.NewDielectric(albedo, cfg.RefractiveIndex), nil
	case "dispersive":
		for _, index := range cfg.RefractiveIndices {
			if index <= 0 {
				return nil, fmt.Errorf("dispersive requires three positive refractiveIndices, got %v", cfg.RefractiveIndices)
			}
		}
		return material.NewDispersiveDielectric(albedo, cfg.RefractiveIndices), nil
	default:
		return nil, fmt.Errorf("unknown material type %q", cfg.Type)
	}
}

func vec3(v [3]float64) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}
