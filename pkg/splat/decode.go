package splat

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// Records are read in chunks so a header declaring more vertices than the
// stream holds fails before it can force a huge allocation.
const chunkRecords = 4096

// maxRecords is the largest vertex count whose payload size fits in an int.
const maxRecords = math.MaxInt / RecordSize

// decodeBinary reads exactly count little-endian vertex records from r.
func decodeBinary(r io.Reader, count uint64) ([]Splat, error) {
	if count > maxRecords {
		return nil, fmt.Errorf("%w: %d vertices declared", ErrTruncatedPLYData, count)
	}

	n := int(count)
	splats := make([]Splat, 0, min(n, chunkRecords))
	buf := make([]byte, min(n, chunkRecords)*RecordSize)

	for len(splats) < n {
		batch := min(n-len(splats), chunkRecords)
		chunk := buf[:batch*RecordSize]

		if _, err := io.ReadFull(r, chunk); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, fmt.Errorf("%w: expected %d vertices (%d bytes), stream ended in vertex %d",
					ErrTruncatedPLYData, count, count*RecordSize, len(splats))
			}
			return nil, fmt.Errorf("%w: vertex data: %w", ErrReadPLY, err)
		}

		for off := 0; off < len(chunk); off += RecordSize {
			var s Splat
			decodeSplat(chunk[off:off+RecordSize], &s)
			splats = append(splats, s)
		}
	}

	return splats, nil
}

// decodeSplat fills s from one RecordSize-byte record.
func decodeSplat(b []byte, s *Splat) {
	_ = b[RecordSize-1]

	readFloats(b[offPosition:], s.Position[:])
	readFloats(b[offNormal:], s.Normal[:])
	readFloats(b[offColorDC:], s.ColorDC[:])
	readFloats(b[offColorRest:], s.ColorRest[:])
	s.Opacity = readFloat(b[offOpacity:])
	readFloats(b[offScale:], s.Scale[:])
	readFloats(b[offRotation:], s.Rotation[:])
}

func readFloats(b []byte, dst []float32) {
	for i := range dst {
		dst[i] = readFloat(b[i*4:])
	}
}

func readFloat(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}
