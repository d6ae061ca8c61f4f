// Package compression reads optionally compressed preset bundle files.
// Bundles are plain YAML, gzip or xz; the format is detected from the file's
// magic bytes rather than its extension.
package compression

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"github.com/ulikunitz/xz"

	"github.com/jmylchreest/prism/internal/security"
)

// maxBundleSize caps decompressed bundle content. Preset collections are
// small text files; anything larger is suspect.
const maxBundleSize = 16 * 1024 * 1024

var (
	gzipMagic = []byte{0x1f, 0x8b}
	xzMagic   = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}
)

// ReadFile reads a bundle file, transparently decompressing gzip and xz
// content.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path) // #nosec G304 - User-specified bundle file, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to read bundle: %w", err)
	}
	return Decompress(data)
}

// Decompress returns the uncompressed content of data, which may be plain,
// gzip-compressed or xz-compressed.
func Decompress(data []byte) ([]byte, error) {
	switch {
	case bytes.HasPrefix(data, gzipMagic):
		gzr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzr.Close()
		return readLimited(gzr)
	case bytes.HasPrefix(data, xzMagic):
		xzr, err := xz.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		return readLimited(xzr)
	default:
		return data, nil
	}
}

func readLimited(r io.Reader) ([]byte, error) {
	out, err := io.ReadAll(security.NewLimitedReader(r, maxBundleSize))
	if err != nil {
		return nil, fmt.Errorf("failed to decompress bundle: %w", err)
	}
	return out, nil
}
