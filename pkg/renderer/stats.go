package renderer

import "time"

// RowStats describes one completed row of rendering
type RowStats struct {
	Row      int           // Image row index (0 = top)
	Worker   int           // Worker that rendered the row
	Samples  int           // Samples per pixel used
	Duration time.Duration // Wall time spent on the row
}

// RenderStats contains statistics about a completed render
type RenderStats struct {
	Width    int           // Image width in pixels
	Height   int           // Image height in pixels
	Samples  int           // Samples per pixel
	Workers  int           // Number of parallel workers
	Rows     int           // Rows rendered (equals Height)
	Duration time.Duration // Total wall time of the parallel phase
}

// noopLogger discards all log output
type noopLogger struct{}

func (noopLogger) Printf(format string, args ...interface{}) {}
