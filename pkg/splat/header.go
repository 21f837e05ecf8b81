package splat

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const endHeader = "end_header"

// Header holds the header directives the loader understands.
type Header struct {
	// Format is the encoding token of the "format" line, verbatim.
	// Empty when the header has no format line.
	Format string
	// Version is the optional version token of the "format" line.
	// It is recorded but never interpreted.
	Version string
	// VertexCount is the record count from the "element vertex" line.
	VertexCount uint64
	// Size is the number of header bytes consumed, terminator included.
	Size int64
}

// Encoding classifies the Format string.
func (h *Header) Encoding() Encoding {
	return ParseEncoding(h.Format)
}

// PayloadSize returns the number of bytes the vertex records occupy.
// ok is false when the size does not fit in an int.
func (h *Header) PayloadSize() (size int64, ok bool) {
	if h.VertexCount > maxRecords {
		return 0, false
	}
	return int64(h.VertexCount) * RecordSize, true
}

// ScanHeader reads header lines from r up to and including the end_header
// line. On success r is positioned at the first payload byte.
func ScanHeader(r *bufio.Reader) (*Header, error) {
	hdr := &Header{}

	for lineNo := 1; ; lineNo++ {
		line, err := r.ReadString('\n')
		hdr.Size += int64(len(line))

		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: header line %d: %w", ErrReadPLY, lineNo, err)
		}

		if strings.TrimSpace(line) == endHeader {
			return hdr, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: missing %s", ErrInvalidPLYHeader, endHeader)
		}

		if err := hdr.parseLine(line); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidPLYHeader, lineNo, err)
		}
	}
}

// parseLine records the directive on one header line, if it is one we use.
func (h *Header) parseLine(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	switch {
	case fields[0] == "format":
		h.Format, h.Version = "", ""
		if len(fields) > 1 {
			h.Format = fields[1]
		}
		if len(fields) > 2 {
			h.Version = fields[2]
		}

	case fields[0] == "element" && len(fields) > 1 && fields[1] == "vertex":
		if len(fields) < 3 {
			return errors.New("element vertex without a count")
		}
		count, err := strconv.ParseUint(fields[2], 10, 64)
		if err != nil {
			return fmt.Errorf("element vertex count %q: %w", fields[2], err)
		}
		h.VertexCount = count
	}

	return nil
}

// ReadHeaderFile reads only the header of a PLY file.
func ReadHeaderFile(path string) (*Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadPLY, err)
	}
	defer f.Close()

	return ScanHeader(bufio.NewReader(f))
}
