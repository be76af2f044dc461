package mesh

import (
	"bytes"
	"fmt"
	"path"
	"strings"
)

// Decode parses mesh data by the file extension of name and returns the
// de-indexed model, ready for per-face coloring.
func Decode(name string, data []byte) (*Model, error) {
	base := path.Base(name)
	ext := strings.ToLower(path.Ext(base))
	stem := strings.TrimSuffix(base, path.Ext(base))

	var (
		indexed *Indexed
		err     error
	)
	switch ext {
	case ".obj":
		indexed, err = ParseOBJ(bytes.NewReader(data), stem)
	case ".stl":
		indexed, err = ParseSTL(data, stem)
	default:
		return nil, fmt.Errorf("unsupported mesh type: %s (expected .obj or .stl)", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", base, err)
	}

	return indexed.ToNonIndexed()
}
