package output

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"

	"github.com/prismtrace/go-prism-tracer/pkg/core"
	"github.com/prismtrace/go-prism-tracer/pkg/renderer"
)

// Radiance map file layout: a 16-byte plain header (magic, version, width,
// height) followed by a zstd stream of the sample count and the little-endian
// float64 RGB triples in row-major order.
const (
	radianceMagic   = "PRRD"
	radianceVersion = 1
)

// WriteRadianceMap persists the linear radiance snapshot to a compressed file
func WriteRadianceMap(path string, rm *renderer.RadianceMap) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create radiance file: %w", err)
	}
	defer file.Close()

	header := make([]byte, 16)
	copy(header, radianceMagic)
	binary.LittleEndian.PutUint32(header[4:], radianceVersion)
	binary.LittleEndian.PutUint32(header[8:], uint32(rm.Width))
	binary.LittleEndian.PutUint32(header[12:], uint32(rm.Height))
	if _, err := file.Write(header); err != nil {
		return fmt.Errorf("failed to write radiance header: %w", err)
	}

	stream, err := zstd.NewWriter(file)
	if err != nil {
		return fmt.Errorf("failed to create zstd writer: %w", err)
	}

	if err := binary.Write(stream, binary.LittleEndian, uint32(rm.Samples)); err != nil {
		stream.Close()
		return fmt.Errorf("failed to write sample count: %w", err)
	}

	for _, p := range rm.Pixels {
		if err := binary.Write(stream, binary.LittleEndian, [3]float64{p.X, p.Y, p.Z}); err != nil {
			stream.Close()
			return fmt.Errorf("failed to write radiance pixels: %w", err)
		}
	}

	if err := stream.Close(); err != nil {
		return fmt.Errorf("failed to finish zstd stream: %w", err)
	}
	return nil
}

// ReadRadianceMap loads a radiance snapshot written by WriteRadianceMap
func ReadRadianceMap(path string) (*renderer.RadianceMap, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open radiance file: %w", err)
	}
	defer file.Close()

	header := make([]byte, 16)
	if _, err := file.Read(header); err != nil {
		return nil, fmt.Errorf("failed to read radiance header: %w", err)
	}
	if !bytes.Equal(header[:4], []byte(radianceMagic)) {
		return nil, fmt.Errorf("not a radiance file: bad magic %q", header[:4])
	}
	if version := binary.LittleEndian.Uint32(header[4:]); version != radianceVersion {
		return nil, fmt.Errorf("unsupported radiance file version %d", version)
	}

	width := int(binary.LittleEndian.Uint32(header[8:]))
	height := int(binary.LittleEndian.Uint32(header[12:]))
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("invalid radiance dimensions %dx%d", width, height)
	}

	stream, err := zstd.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %w", err)
	}
	defer stream.Close()

	var samples uint32
	if err := binary.Read(stream, binary.LittleEndian, &samples); err != nil {
		return nil, fmt.Errorf("failed to read sample count: %w", err)
	}

	pixels := make([]core.Vec3, width*height)
	for i := range pixels {
		var triple [3]float64
		if err := binary.Read(stream, binary.LittleEndian, &triple); err != nil {
			return nil, fmt.Errorf("failed to read radiance pixels: %w", err)
		}
		pixels[i] = core.NewVec3(triple[0], triple[1], triple[2])
	}

	return &renderer.RadianceMap{
		Width:   width,
		Height:  height,
		Samples: int(samples),
		Pixels:  pixels,
	}, nil
}
