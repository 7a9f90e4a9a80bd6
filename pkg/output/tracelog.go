package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/golang/snappy"

	"github.com/prismtrace/go-prism-tracer/pkg/renderer"
)

// TraceEvent is one per-row record in the render trace log
type TraceEvent struct {
	Row     int   `json:"row"`
	Worker  int   `json:"worker"`
	Samples int   `json:"samples"`
	Ms      int64 `json:"ms"`
}

// TraceLog streams per-row render events to a snappy-compressed JSONL file.
// Append is safe to call from the renderer's row callback.
type TraceLog struct {
	mu     sync.Mutex
	file   *os.File
	stream *snappy.Writer
}

// NewTraceLog creates the trace log file and opens the compressed sink
func NewTraceLog(path string) (*TraceLog, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create trace log: %w", err)
	}

	return &TraceLog{
		file:   file,
		stream: snappy.NewBufferedWriter(file),
	}, nil
}

// Append records one completed row
func (t *TraceLog) Append(stats renderer.RowStats) error {
	event := TraceEvent{
		Row:     stats.Row,
		Worker:  stats.Worker,
		Samples: stats.Samples,
		Ms:      stats.Duration.Milliseconds(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode trace event: %w", err)
	}
	data = append(data, '\n')

	t.mu.Lock()
	defer t.mu.Unlock()
	if _, err := t.stream.Write(data); err != nil {
		return fmt.Errorf("failed to write trace event: %w", err)
	}
	return nil
}

// Close flushes the compressed stream and closes the file
func (t *TraceLog) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.stream.Close(); err != nil {
		t.file.Close()
		return fmt.Errorf("failed to close trace stream: %w", err)
	}
	if err := t.file.Close(); err != nil {
		return fmt.Errorf("failed to close trace log: %w", err)
	}
	return nil
}

// ReadTraceLog decodes every event from a trace log file
func ReadTraceLog(path string) ([]TraceEvent, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace log: %w", err)
	}
	defer file.Close()

	decoder := json.NewDecoder(snappy.NewReader(file))
	var events []TraceEvent
	for {
		var event TraceEvent
		if err := decoder.Decode(&event); err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("failed to decode trace event: %w", err)
		}
		events = append(events, event)
	}
	return events, nil
}
