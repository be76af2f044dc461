package mesh

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/philipparndt/meshcompare/pkg/geometry"
)

// ParseOBJ reads Wavefront OBJ geometry. Only positions and faces are used;
// polygons with more than three corners are split into a triangle fan
// around their first corner, so face numbering matches loaders that do the same.
func ParseOBJ(reader io.Reader, name string) (*Indexed, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	m := NewIndexed(name)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "o":
			if m.Name == "" && len(fields) > 1 {
				m.Name = strings.Join(fields[1:], " ")
			}

		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: vertex needs 3 coordinates", lineNo)
			}
			var xyz [3]float64
			for i := range xyz {
				value, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: invalid coordinate %q: %w", lineNo, fields[i+1], err)
				}
				xyz[i] = value
			}
			m.AddVertex(geometry.NewVector3(xyz[0], xyz[1], xyz[2]))

		case "f":
			corners := make([]int, 0, len(fields)-1)
			for _, word := range fields[1:] {
				idx, err := resolveIndex(word, len(m.Vertices))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				corners = append(corners, idx)
			}
			if len(corners) < 3 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices", lineNo)
			}
			for j := 1; j+1 < len(corners); j++ {
				m.AddFace(corners[0], corners[j], corners[j+1])
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading OBJ: %w", err)
	}

	return m, nil
}

// resolveIndex turns an OBJ face token (v, v/vt, v//vn, v/vt/vn) into a
// 0-based vertex index. Negative indices count back from the last vertex.
func resolveIndex(token string, vertexCount int) (int, error) {
	position, _, _ := strings.Cut(token, "/")
	value, err := strconv.Atoi(position)
	if err != nil {
		return 0, fmt.Errorf("invalid face index %q: %w", token, err)
	}

	var idx int
	switch {
	case value > 0:
		idx = value - 1
	case value < 0:
		idx = vertexCount + value
	default:
		return 0, fmt.Errorf("face index 0 is not valid")
	}

	if idx < 0 || idx >= vertexCount {
		return 0, fmt.Errorf("face index %d out of range (%d vertices)", value, vertexCount)
	}
	return idx, nil
}
