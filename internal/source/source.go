// Package source turns a filesystem path into the (buffer, file) pair
// internal/lexer consumes. It is deliberately thin: no parsing, no
// caching, just reading bytes through a swappable filesystem and
// stripping a leading byte-order mark if present.
package source

import (
	"github.com/spf13/afero"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Load reads path from fs and returns its contents with any leading
// UTF-8 byte-order mark removed. Passing afero.NewOsFs() reads a real
// file; tests pass afero.NewMemMapFs() so the lexer's tests never touch
// disk.
func Load(fs afero.Fs, path string) ([]byte, error) {
	raw, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	return StripBOM(raw)
}

// StripBOM removes a leading UTF-8 byte-order mark from buf, if present.
// A valid UTF-8 buffer without a BOM is returned unchanged
// (byte-for-byte). Invalid UTF-8 sequences are replaced with U+FFFD.
func StripBOM(buf []byte) ([]byte, error) {
	transformer := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(transformer, buf)
	if err != nil {
		return nil, err
	}
	return out, nil
}
