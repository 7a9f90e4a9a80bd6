package scene

import (
	"math"
	"testing"

	"github.com/prismtrace/go-prism-tracer/pkg/core"
	"github.com/prismtrace/go-prism-tracer/pkg/geometry"
	"github.com/prismtrace/go-prism-tracer/pkg/material"
)

const tolerance = 1e-9

func TestScene_NearestHit_Empty(t *testing.T) {
	s := NewScene(nil)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if hit, isHit := s.NearestHit(ray, 1e-4, math.Inf(1)); isHit {
		t.Errorf("Expected no hit in an empty scene, got t=%f", hit.T)
	}
}

func TestScene_NearestHit_PicksClosest(t *testing.T) {
	near := material.NewDiffuse(core.NewVec3(1, 0, 0))
	far := material.NewDiffuse(core.NewVec3(0, 1, 0))

	// Scan order deliberately lists the farther sphere first
	s := NewScene(nil,
		geometry.NewSphere(core.NewVec3(0, 0, -5), 1, far),
		geometry.NewSphere(core.NewVec3(0, 0, -3), 1, near),
	)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, isHit := s.NearestHit(ray, 1e-4, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit")
	}
	if math.Abs(hit.T-2.0) > tolerance {
		t.Errorf("Expected nearest hit at t=2, got t=%f", hit.T)
	}
	if hit.Material != near {
		t.Error("Expected the nearer sphere's material")
	}
}

func TestScene_NearestHit_TieGoesToFirstBody(t *testing.T) {
	first := material.NewDiffuse(core.NewVec3(1, 0, 0))
	second := material.NewDiffuse(core.NewVec3(0, 1, 0))

	// Identical spheres: the intersection t is exactly equal
	s := NewScene(nil,
		geometry.NewSphere(core.NewVec3(0, 0, -3), 1, first),
		geometry.NewSphere(core.NewVec3(0, 0, -3), 1, second),
	)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, isHit := s.NearestHit(ray, 1e-4, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit")
	}
	if hit.Material != first {
		t.Error("Exact tie should resolve to the first body in scan order")
	}
}

func TestScene_NearestHit_RespectsWindow(t *testing.T) {
	s := NewScene(nil,
		geometry.NewSphere(core.NewVec3(0, 0, -3), 1, material.NewDiffuse(core.NewVec3(1, 1, 1))),
		geometry.NewSphere(core.NewVec3(0, 0, -8), 1, material.NewDiffuse(core.NewVec3(1, 1, 1))),
	)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	tests := []struct {
		name      string
		tMin      float64
		tMax      float64
		expectHit bool
		expectedT float64
	}{
		{"full window", 1e-4, math.Inf(1), true, 2.0},
		{"skip first sphere", 5.0, math.Inf(1), true, 7.0},
		{"between spheres", 4.5, 6.5, false, 0},
		{"inside first sphere window", 2.5, 4.5, true, 4.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := s.NearestHit(ray, tt.tMin, tt.tMax)
			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%t, got %t", tt.expectHit, isHit)
			}
			if !isHit {
				return
			}
			if math.Abs(hit.T-tt.expectedT) > tolerance {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.T < tt.tMin || hit.T > tt.tMax {
				t.Errorf("Hit t=%f outside window [%f, %f]", hit.T, tt.tMin, tt.tMax)
			}
		})
	}
}

func TestScene_ShrinkingBoundSelectsLaterSpheresFarRoot(t *testing.T) {
	// The first body tightens the bound so the second body's near root falls
	// outside it; required scan semantics reject the second body entirely
	// rather than reporting its far root.
	blocker := material.NewDiffuse(core.NewVec3(1, 0, 0))
	behind := material.NewDiffuse(core.NewVec3(0, 1, 0))

	s := NewScene(nil,
		geometry.NewSphere(core.NewVec3(0, 0, -2), 0.5, blocker),   // hits at t=1.5
		geometry.NewSphere(core.NewVec3(0, 0, -4), 1.0, behind),    // roots at t=3 and t=5
	)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, isHit := s.NearestHit(ray, 1e-4, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit")
	}
	if hit.Material != blocker {
		t.Error("Expected the blocking sphere to win")
	}
	if math.Abs(hit.T-1.5) > tolerance {
		t.Errorf("Expected t=1.5, got t=%f", hit.T)
	}
}

func TestScene_DefaultBackground(t *testing.T) {
	s := NewScene(nil)
	top, bottom := s.BackgroundColors()

	if top.Subtract(core.NewVec3(0.5, 0.7, 1.0)).Length() > tolerance {
		t.Errorf("Expected sky blue top, got %v", top)
	}
	if bottom.Subtract(core.NewVec3(1, 1, 1)).Length() > tolerance {
		t.Errorf("Expected white bottom, got %v", bottom)
	}
}

func TestPresetScenes(t *testing.T) {
	defaultScene := NewDefaultScene()
	if len(defaultScene.Bodies) != 4 {
		t.Errorf("Expected 4 bodies in the default scene, got %d", len(defaultScene.Bodies))
	}
	if defaultScene.GetCamera() == nil {
		t.Error("Default scene has no camera")
	}

	// Straight ahead hits the central glass sphere
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, isHit := defaultScene.NearestHit(ray, 1e-4, math.Inf(1))
	if !isHit {
		t.Fatal("Expected the default scene to block the forward ray")
	}
	if math.Abs(hit.T-0.5) > tolerance {
		t.Errorf("Expected the glass sphere at t=0.5, got t=%f", hit.T)
	}

	prismScene := NewPrismScene()
	if len(prismScene.Bodies) != 4 {
		t.Errorf("Expected 4 bodies in the prism scene, got %d", len(prismScene.Bodies))
	}

	// The floor plane catches a downward ray beside the prism sphere
	down := core.NewRay(core.NewVec3(1.5, 1, -1), core.NewVec3(0, -1, 0))
	floorHit, isHit := prismScene.NearestHit(down, 1e-4, math.Inf(1))
	if !isHit {
		t.Fatal("Expected the prism scene floor to catch a downward ray")
	}
	if math.Abs(floorHit.T-1.5) > tolerance {
		t.Errorf("Expected floor hit at t=1.5, got t=%f", floorHit.T)
	}
}
