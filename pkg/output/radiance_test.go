package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prismtrace/go-prism-tracer/pkg/core"
	"github.com/prismtrace/go-prism-tracer/pkg/renderer"
)

func TestRadianceMap_Roundtrip(t *testing.T) {
	original := &renderer.RadianceMap{
		Width:   3,
		Height:  2,
		Samples: 128,
		Pixels: []core.Vec3{
			core.NewVec3(0, 0, 0),
			core.NewVec3(0.25, 0.5, 1.0),
			core.NewVec3(1e-9, 2.5, 0.125),
			core.NewVec3(0.1, 0.2, 0.3),
			core.NewVec3(4.0, 0, 0),
			core.NewVec3(0.5, 0.7, 1.0),
		},
	}

	path := filepath.Join(t.TempDir(), "maps", "render.prrd")
	if err := WriteRadianceMap(path, original); err != nil {
		t.Fatalf("Unexpected write error: %v", err)
	}

	loaded, err := ReadRadianceMap(path)
	if err != nil {
		t.Fatalf("Unexpected read error: %v", err)
	}

	if loaded.Width != original.Width || loaded.Height != original.Height {
		t.Errorf("Expected %dx%d, got %dx%d",
			original.Width, original.Height, loaded.Width, loaded.Height)
	}
	if loaded.Samples != original.Samples {
		t.Errorf("Expected %d samples, got %d", original.Samples, loaded.Samples)
	}

	// Linear radiance must survive the roundtrip bit-exactly
	for i, p := range original.Pixels {
		if loaded.Pixels[i] != p {
			t.Errorf("Pixel %d: expected %v, got %v", i, p, loaded.Pixels[i])
		}
	}
}

func TestReadRadianceMap_RejectsBadMagic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.prrd")
	if err := os.WriteFile(path, []byte("NOPE0000000000000000"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	if _, err := ReadRadianceMap(path); err == nil {
		t.Error("Expected an error for a bad magic number")
	}
}

func TestReadRadianceMap_MissingFile(t *testing.T) {
	if _, err := ReadRadianceMap(filepath.Join(t.TempDir(), "nope.prrd")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}
