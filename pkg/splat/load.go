package splat

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Load reads the splat file at path and returns its records in file order,
// with opacity and scale already activated.
func Load(path string) ([]Splat, error) {
	return LoadWithOptions(path, DefaultOptions())
}

// LoadWithOptions is Load with explicit transform options.
func LoadWithOptions(path string, opts Options) ([]Splat, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadPLY, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadPLY, err)
	}

	r := bufio.NewReader(f)
	hdr, err := ScanHeader(r)
	if err != nil {
		return nil, err
	}
	if _, err := checkEncoding(hdr); err != nil {
		return nil, err
	}

	// Regular files tell us up front whether the payload can be complete.
	if info.Mode().IsRegular() {
		need, ok := hdr.PayloadSize()
		if !ok {
			return nil, fmt.Errorf("%w: %d vertices declared", ErrTruncatedPLYData, hdr.VertexCount)
		}
		if have := info.Size() - hdr.Size; have < need {
			return nil, fmt.Errorf("%w: %d vertices need %d bytes, file has %d after the header",
				ErrTruncatedPLYData, hdr.VertexCount, need, max(have, 0))
		}
	}

	return decodeRecords(r, hdr, opts)
}

// Decode runs the full load pipeline over r.
func Decode(r io.Reader) ([]Splat, error) {
	return DecodeWithOptions(r, DefaultOptions())
}

// DecodeWithOptions is Decode with explicit transform options.
func DecodeWithOptions(r io.Reader, opts Options) ([]Splat, error) {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}

	hdr, err := ScanHeader(br)
	if err != nil {
		return nil, err
	}
	if _, err := checkEncoding(hdr); err != nil {
		return nil, err
	}

	return decodeRecords(br, hdr, opts)
}

// decodeRecords decodes the binary payload and activates it.
func decodeRecords(r io.Reader, hdr *Header, opts Options) ([]Splat, error) {
	splats, err := decodeBinary(r, hdr.VertexCount)
	if err != nil {
		return nil, err
	}

	activateAll(splats, opts)
	return splats, nil
}
