package renderer

import (
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prismtrace/go-prism-tracer/pkg/core"
	"github.com/prismtrace/go-prism-tracer/pkg/integrator"
	"github.com/prismtrace/go-prism-tracer/pkg/material"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	NumWorkers      int   // Parallel workers; <= 0 uses runtime.NumCPU()
	Seed            int64 // Base RNG seed; 0 selects time-based seeding
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 200,
		MaxDepth:        50,
		NumWorkers:      0,
		Seed:            42, // Deterministic for a fixed worker count
	}
}

// Scene interface to avoid circular imports with the scene package
type Scene interface {
	GetCamera() core.Camera
	NearestHit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
	BackgroundColors() (top, bottom core.Vec3)
}

// Renderer schedules a row-partitioned parallel render into a framebuffer
type Renderer struct {
	scene  Scene
	width  int
	height int
	config SamplingConfig
	logger core.Logger
}

// NewRenderer creates a new renderer. A nil logger disables logging.
func NewRenderer(scene Scene, width, height int, config SamplingConfig, logger core.Logger) *Renderer {
	if config.NumWorkers <= 0 {
		config.NumWorkers = runtime.NumCPU()
	}
	if logger == nil {
		logger = noopLogger{}
	}
	return &Renderer{
		scene:  scene,
		width:  width,
		height: height,
		config: config,
		logger: logger,
	}
}

// workerSeed derives the RNG seed for one worker. A zero base seed selects
// non-reproducible time-based seeds, decorrelated per worker with a
// golden-ratio multiplier.
func workerSeed(base int64, workerID int) int64 {
	if base == 0 {
		return time.Now().UnixNano() ^ int64(uint64(workerID)*0x9e3779b97f4a7c15)
	}
	return base + int64(workerID)
}

// Render runs the full parallel render and returns the filled framebuffer.
// Worker w renders rows {j : j % N == w}; every row is rendered exactly once.
// The optional onRow callback is invoked after each completed row.
func (r *Renderer) Render(onRow func(RowStats)) (*Framebuffer, RenderStats) {
	fb := NewFramebuffer(r.width, r.height)
	camera := r.scene.GetCamera()
	numWorkers := r.config.NumWorkers

	r.logger.Printf("Rendering %dx%d with %d samples/pixel on %d workers",
		r.width, r.height, r.config.SamplesPerPixel, numWorkers)

	// Progress logging roughly every 10% of rows
	var rowsDone int64
	progressStep := int64(r.height / 10)
	if progressStep < 1 {
		progressStep = 1
	}

	var callbackMu sync.Mutex
	start := time.Now()

	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for w := 0; w < numWorkers; w++ {
		go func(workerID int) {
			defer wg.Done()
			random := rand.New(rand.NewSource(workerSeed(r.config.Seed, workerID)))

			for j := workerID; j < r.height; j += numWorkers {
				rowStart := time.Now()
				r.renderRow(fb, camera, j, random)

				done := atomic.AddInt64(&rowsDone, 1)
				if done%progressStep == 0 {
					r.logger.Printf("Progress: %d/%d rows", done, r.height)
				}

				if onRow != nil {
					stats := RowStats{
						Row:      j,
						Worker:   workerID,
						Samples:  r.config.SamplesPerPixel,
						Duration: time.Since(rowStart),
					}
					callbackMu.Lock()
					onRow(stats)
					callbackMu.Unlock()
				}
			}
		}(w)
	}
	wg.Wait()

	stats := RenderStats{
		Width:    r.width,
		Height:   r.height,
		Samples:  r.config.SamplesPerPixel,
		Workers:  numWorkers,
		Rows:     r.height,
		Duration: time.Since(start),
	}
	r.logger.Printf("Render completed in %v", stats.Duration)

	return fb, stats
}

// renderRow renders all columns of one image row. Row 0 is the image top, so
// the viewport v coordinate is vertically flipped.
func (r *Renderer) renderRow(fb *Framebuffer, camera core.Camera, j int, random *rand.Rand) {
	samples := r.config.SamplesPerPixel

	for i := 0; i < r.width; i++ {
		accum := core.Vec3{}
		for s := 0; s < samples; s++ {
			u := (float64(i) + random.Float64()) / float64(r.width-1)
			v := (float64(r.height-1-j) + random.Float64()) / float64(r.height-1)

			ray := camera.GetRay(u, v)
			accum = accum.Add(integrator.RayColor(ray, r.scene, random, r.config.MaxDepth))
		}
		fb.SetPixel(i, j, accum.Multiply(1.0/float64(samples)))
	}
}
