package mesh

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/philipparndt/meshcompare/pkg/geometry"
)

const (
	stlHeaderSize   = 80
	stlTriangleSize = 50
)

// ParseSTL reads ASCII or binary STL data. Identical corner positions are
// merged into shared vertices.
func ParseSTL(data []byte, name string) (*Indexed, error) {
	var (
		tris []geometry.Triangle
		err  error
	)
	if isASCII(data) {
		tris, err = parseASCII(bytes.NewReader(data))
	} else {
		tris, err = parseBinary(bytes.NewReader(data), len(data))
	}
	if err != nil {
		return nil, err
	}

	m := NewIndexed(name)
	lookup := make(map[geometry.Vector3]int)
	index := func(v geometry.Vector3) int {
		if idx, ok := lookup[v]; ok {
			return idx
		}
		idx := m.AddVertex(v)
		lookup[v] = idx
		return idx
	}
	for _, tri := range tris {
		m.AddFace(index(tri.V1), index(tri.V2), index(tri.V3))
	}
	return m, nil
}

// isASCII checks for the "solid" keyword. Some exporters write "solid" into
// binary headers too, so a size that matches the binary layout wins.
func isASCII(data []byte) bool {
	if !bytes.HasPrefix(data, []byte("solid")) {
		return false
	}
	if len(data) >= stlHeaderSize+4 {
		count := binary.LittleEndian.Uint32(data[stlHeaderSize:])
		if len(data) == stlHeaderSize+4+int(count)*stlTriangleSize {
			return false
		}
	}
	return true
}

// parseASCII parses an ASCII STL file
func parseASCII(reader io.Reader) ([]geometry.Triangle, error) {
	scanner := bufio.NewScanner(reader)
	var tris []geometry.Triangle
	var vertices []geometry.Vector3

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "vertex":
			if len(fields) < 4 {
				return nil, fmt.Errorf("vertex needs 3 coordinates")
			}
			var xyz [3]float64
			for i := range xyz {
				value, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, fmt.Errorf("invalid coordinate %q: %w", fields[i+1], err)
				}
				xyz[i] = value
			}
			vertices = append(vertices, geometry.NewVector3(xyz[0], xyz[1], xyz[2]))

		case "endfacet":
			if len(vertices) == 3 {
				tris = append(tris, geometry.NewTriangle(vertices[0], vertices[1], vertices[2]))
			}
			vertices = vertices[:0]
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ASCII STL: %w", err)
	}

	return tris, nil
}

// parseBinary parses a binary STL file of size bytes. The triangle count in
// the header is checked against size before anything is allocated for it.
func parseBinary(reader io.Reader, size int) ([]geometry.Triangle, error) {
	header := make([]byte, stlHeaderSize)
	if _, err := io.ReadFull(reader, header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var triangleCount uint32
	if err := binary.Read(reader, binary.LittleEndian, &triangleCount); err != nil {
		return nil, fmt.Errorf("failed to read triangle count: %w", err)
	}

	available := uint64(size-stlHeaderSize-4) / stlTriangleSize
	if uint64(triangleCount) > available {
		return nil, fmt.Errorf("header declares %d triangles but data holds %d", triangleCount, available)
	}

	tris := make([]geometry.Triangle, 0, triangleCount)
	for i := uint32(0); i < triangleCount; i++ {
		var facet struct {
			Normal     [3]float32
			V1, V2, V3 [3]float32
			Attribute  uint16
		}
		if err := binary.Read(reader, binary.LittleEndian, &facet); err != nil {
			return nil, fmt.Errorf("failed to read triangle %d: %w", i, err)
		}

		tris = append(tris, geometry.NewTriangle(
			toVector(facet.V1),
			toVector(facet.V2),
			toVector(facet.V3),
		))
	}

	return tris, nil
}

func toVector(v [3]float32) geometry.Vector3 {
	return geometry.NewVector3(float64(v[0]), float64(v[1]), float64(v[2]))
}
