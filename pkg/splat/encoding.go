package splat

import (
	"fmt"
	"strings"
)

// Encoding is the payload representation declared by the format line.
type Encoding uint8

// Encodings recognized by the loader.
const (
	EncodingUnknown Encoding = iota
	EncodingBinary
	EncodingASCII
)

// String returns a human-readable encoding name.
func (e Encoding) String() string {
	switch e {
	case EncodingBinary:
		return "binary"
	case EncodingASCII:
		return "ascii"
	default:
		return "unknown"
	}
}

// ParseEncoding classifies a format token by prefix. Anything that is not a
// binary or ascii variant, including the empty string, is EncodingUnknown.
func ParseEncoding(format string) Encoding {
	switch {
	case strings.HasPrefix(format, "binary"):
		return EncodingBinary
	case strings.HasPrefix(format, "ascii"):
		return EncodingASCII
	default:
		return EncodingUnknown
	}
}

// checkEncoding resolves the header encoding once and rejects everything
// the loader cannot decode.
func checkEncoding(hdr *Header) (Encoding, error) {
	enc := hdr.Encoding()
	switch enc {
	case EncodingBinary:
		return enc, nil
	case EncodingASCII:
		return enc, fmt.Errorf("%w: %q has no decoder", ErrUnsupportedPLYFormat, hdr.Format)
	default:
		return enc, fmt.Errorf("%w: %q", ErrUnknownPLYFormat, hdr.Format)
	}
}
