package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// DefaultWidth is the rendered image width in pixels.
	DefaultWidth = 400
	// DefaultHeight is the rendered image height in pixels.
	DefaultHeight = 225
	// DefaultSamples is the number of jittered camera rays per pixel.
	DefaultSamples = 200
	// DefaultMaxDepth bounds the scattering recursion per ray.
	DefaultMaxDepth = 50
	// DefaultWorkers of zero means one worker per CPU.
	DefaultWorkers = 0
	// DefaultSeed makes renders reproducible for a fixed worker count.
	DefaultSeed int64 = 42
	// DefaultScene is the preset rendered when no scene is selected.
	DefaultScene = "default"
	// DefaultOutputDir is the root directory for render artifacts.
	DefaultOutputDir = "output"
)

// Config captures runtime tunables for the renderer CLI
type Config struct {
	Width     int
	Height    int
	Samples   int
	MaxDepth  int
	Workers   int
	Seed      int64
	Scene     string
	OutputDir string
	S3Bucket  string
	S3Prefix  string
	S3Region  string
}

// Load reads configuration from a .env file (best effort) and the
// environment, applying defaults and collecting every invalid override into
// one joined error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		Samples:   DefaultSamples,
		MaxDepth:  DefaultMaxDepth,
		Workers:   DefaultWorkers,
		Seed:      DefaultSeed,
		Scene:     getString("PRISM_SCENE", DefaultScene),
		OutputDir: getString("PRISM_OUTPUT_DIR", DefaultOutputDir),
		S3Bucket:  strings.TrimSpace(os.Getenv("PRISM_S3_BUCKET")),
		S3Prefix:  strings.TrimSpace(os.Getenv("PRISM_S3_PREFIX")),
		S3Region:  strings.TrimSpace(os.Getenv("PRISM_S3_REGION")),
	}

	var problems []error

	setInt := func(name string, dest *int, min int) {
		raw := strings.TrimSpace(os.Getenv(name))
		if raw == "" {
			return
		}
		value, err := strconv.Atoi(raw)
		if err != nil || value < min {
			problems = append(problems, fmt.Errorf("%s must be an integer >= %d, got %q", name, min, raw))
			return
		}
		*dest = value
	}

	setInt("PRISM_WIDTH", &cfg.Width, 2)
	setInt("PRISM_HEIGHT", &cfg.Height, 2)
	setInt("PRISM_SAMPLES", &cfg.Samples, 1)
	setInt("PRISM_MAX_DEPTH", &cfg.MaxDepth, 1)
	setInt("PRISM_WORKERS", &cfg.Workers, 0)

	if raw := strings.TrimSpace(os.Getenv("PRISM_SEED")); raw != "" {
		value, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			problems = append(problems, fmt.Errorf("PRISM_SEED must be an integer, got %q", raw))
		} else {
			cfg.Seed = value
		}
	}

	if len(problems) > 0 {
		return nil, fmt.Errorf("invalid configuration: %w", errors.Join(problems...))
	}
	return cfg, nil
}

func getString(name, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(name)); value != "" {
		return value
	}
	return fallback
}
