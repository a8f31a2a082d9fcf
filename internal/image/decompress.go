package image

import (
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"

	"github.com/ulikunitz/xz"

	"github.com/jmylchreest/swatch/internal/security"
)

// MaxDecompressedSize bounds how much data a compressed image may expand to.
const MaxDecompressedSize = 256 * 1024 * 1024

// Compression identifies a container format wrapped around image data.
type Compression string

const (
	CompressionNone  Compression = "none"
	CompressionGzip  Compression = "gzip"
	CompressionBzip2 Compression = "bzip2"
	CompressionXz    Compression = "xz"
)

var (
	gzipMagic  = []byte{0x1f, 0x8b}
	bzip2Magic = []byte("BZh")
	xzMagic    = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}
)

// DetectCompression sniffs the container format from the leading bytes.
func DetectCompression(data []byte) Compression {
	switch {
	case bytes.HasPrefix(data, gzipMagic):
		return CompressionGzip
	case bytes.HasPrefix(data, xzMagic):
		return CompressionXz
	case bytes.HasPrefix(data, bzip2Magic):
		return CompressionBzip2
	default:
		return CompressionNone
	}
}

// Decompress unwraps gzip, bzip2 or xz compressed data.
// Uncompressed data is returned unchanged.
func Decompress(data []byte) ([]byte, error) {
	var r io.Reader
	switch kind := DetectCompression(data); kind {
	case CompressionNone:
		return data, nil
	case CompressionGzip:
		gzr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzr.Close()
		r = gzr
	case CompressionBzip2:
		r = bzip2.NewReader(bytes.NewReader(data))
	case CompressionXz:
		xzr, err := xz.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		r = xzr
	}

	out, err := io.ReadAll(security.NewLimitedReader(r, MaxDecompressedSize))
	if err != nil {
		return nil, fmt.Errorf("failed to decompress image: %w", err)
	}
	return out, nil
}
