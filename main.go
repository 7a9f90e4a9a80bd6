package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/prismtrace/go-prism-tracer/pkg/config"
	"github.com/prismtrace/go-prism-tracer/pkg/output"
	"github.com/prismtrace/go-prism-tracer/pkg/renderer"
	"github.com/prismtrace/go-prism-tracer/pkg/scene"
)

const uploadTimeout = 30 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Flags override environment configuration
	sceneName := flag.String("scene", cfg.Scene, "Scene: 'default', 'prism' or a path to a .json scene file")
	outputDir := flag.String("output", cfg.OutputDir, "Output directory")
	width := flag.Int("width", cfg.Width, "Image width in pixels")
	height := flag.Int("height", cfg.Height, "Image height in pixels")
	samples := flag.Int("samples", cfg.Samples, "Samples per pixel")
	maxDepth := flag.Int("max-depth", cfg.MaxDepth, "Maximum ray bounce depth")
	workers := flag.Int("workers", cfg.Workers, "Parallel workers (0 = one per CPU)")
	seed := flag.Int64("seed", cfg.Seed, "Base RNG seed (0 = time-based)")
	useBMP := flag.Bool("bmp", false, "Write BMP instead of PNG")
	thumbSize := flag.Int("thumb", 0, "Also write a thumbnail bounded by this size (0 = off)")
	saveRadiance := flag.Bool("radiance", false, "Also write the compressed linear radiance map")
	saveTrace := flag.Bool("trace", false, "Also write the compressed per-row trace log")
	upload := flag.Bool("upload", false, "Upload the rendered image to S3")
	flag.Parse()

	if *width < 2 || *height < 2 {
		return fmt.Errorf("image dimensions must be at least 2x2, got %dx%d", *width, *height)
	}

	selectedScene, err := buildScene(*sceneName)
	if err != nil {
		return err
	}

	logger := log.New(os.Stdout, "", log.LstdFlags)

	samplingConfig := renderer.SamplingConfig{
		SamplesPerPixel: *samples,
		MaxDepth:        *maxDepth,
		NumWorkers:      *workers,
		Seed:            *seed,
	}
	r := renderer.NewRenderer(selectedScene, *width, *height, samplingConfig, logger)

	sceneDir := filepath.Join(*outputDir, sceneLabel(*sceneName))
	timestamp := time.Now().Format("20060102_150405")

	// Optional per-row trace log, fed from the renderer's row callback
	var onRow func(renderer.RowStats)
	var trace *output.TraceLog
	if *saveTrace {
		trace, err = output.NewTraceLog(filepath.Join(sceneDir, fmt.Sprintf("trace_%s.jsonl.sz", timestamp)))
		if err != nil {
			return err
		}
		onRow = func(stats renderer.RowStats) {
			if err := trace.Append(stats); err != nil {
				logger.Printf("Trace log append failed: %v", err)
			}
		}
	}

	fb, stats := r.Render(onRow)

	if trace != nil {
		if err := trace.Close(); err != nil {
			return err
		}
	}

	ext := "png"
	if *useBMP {
		ext = "bmp"
	}
	imagePath := filepath.Join(sceneDir, fmt.Sprintf("render_%s.%s", timestamp, ext))
	img := fb.Image()
	if err := output.SaveImage(img, imagePath); err != nil {
		return err
	}
	logger.Printf("Render saved as %s (%dx%d, %d samples, %d workers, %v)",
		imagePath, stats.Width, stats.Height, stats.Samples, stats.Workers, stats.Duration)

	if *thumbSize > 0 {
		thumbPath := filepath.Join(sceneDir, fmt.Sprintf("thumb_%s.png", timestamp))
		if err := output.SaveThumbnail(img, thumbPath, *thumbSize); err != nil {
			return err
		}
		logger.Printf("Thumbnail saved as %s", thumbPath)
	}

	if *saveRadiance {
		radiancePath := filepath.Join(sceneDir, fmt.Sprintf("radiance_%s.prrd.zst", timestamp))
		if err := output.WriteRadianceMap(radiancePath, fb.Radiance(stats.Samples)); err != nil {
			return err
		}
		logger.Printf("Radiance map saved as %s", radiancePath)
	}

	if *upload {
		uploader, err := output.NewUploader(cfg.S3Region, cfg.S3Bucket, cfg.S3Prefix)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), uploadTimeout)
		defer cancel()
		if err := uploader.Upload(ctx, imagePath, filepath.Base(imagePath)); err != nil {
			return err
		}
		logger.Printf("Uploaded %s to s3://%s", filepath.Base(imagePath), cfg.S3Bucket)
	}

	return nil
}

// buildScene resolves a scene name or .json scene file path into a scene
func buildScene(name string) (*scene.Scene, error) {
	switch {
	case name == "default":
		return scene.NewDefaultScene(), nil
	case name == "prism":
		return scene.NewPrismScene(), nil
	case strings.HasSuffix(name, ".json"):
		return scene.LoadFile(name)
	default:
		return nil, fmt.Errorf("unknown scene %q (want 'default', 'prism' or a .json file)", name)
	}
}

// sceneLabel converts a scene selector into an output directory name
func sceneLabel(name string) string {
	if strings.HasSuffix(name, ".json") {
		base := filepath.Base(name)
		return strings.TrimSuffix(base, ".json")
	}
	return name
}
