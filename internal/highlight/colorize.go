// Package highlight builds per-vertex color buffers that mark
// self-intersecting faces of a non-indexed mesh.
package highlight

import (
	"encoding/json"
	"fmt"
)

// Channels per vertex and vertices per face in a color buffer.
const (
	Channels      = 3
	VertexPerFace = 3
	floatsPerFace = Channels * VertexPerFace
)

var (
	// Red marks an intersecting face.
	Red = [Channels]float32{1, 0, 0}
	// White is the color of every other face.
	White = [Channels]float32{1, 1, 1}
)

// Set holds 0-based face indices into a mesh's de-indexed triangle list.
type Set map[int]struct{}

// NewSet builds a set from face indices; duplicates collapse.
func NewSet(faces ...int) Set {
	s := make(Set, len(faces))
	for _, f := range faces {
		s[f] = struct{}{}
	}
	return s
}

// ParseSet decodes a JSON array of integers.
func ParseSet(data []byte) (Set, error) {
	var faces []int
	if err := json.Unmarshal(data, &faces); err != nil {
		return nil, fmt.Errorf("invalid intersection data: %w", err)
	}
	return NewSet(faces...), nil
}

// Contains reports whether face i is marked.
func (s Set) Contains(i int) bool {
	_, ok := s[i]
	return ok
}

// Len returns the number of marked faces.
func (s Set) Len() int {
	return len(s)
}

// CountIn returns how many marked faces exist in a mesh of faceCount faces.
func (s Set) CountIn(faceCount int) int {
	n := 0
	for f := range s {
		if f >= 0 && f < faceCount {
			n++
		}
	}
	return n
}

// Colorize returns a buffer of faceCount*9 floats: each face's three
// vertices get Red when the face is in set, White otherwise. Indices in set
// outside [0, faceCount) are ignored. A nil set yields an all white buffer.
func Colorize(faceCount int, set Set) []float32 {
	colors := make([]float32, faceCount*floatsPerFace)
	for i := 0; i < faceCount; i++ {
		color := White
		if set.Contains(i) {
			color = Red
		}
		for j := 0; j < VertexPerFace; j++ {
			copy(colors[(i*VertexPerFace+j)*Channels:], color[:])
		}
	}
	return colors
}

// Plain returns the all white buffer used for repaired meshes.
func Plain(faceCount int) []float32 {
	return Colorize(faceCount, nil)
}

// FaceColor reads the color of face i back out of a buffer built by Colorize.
func FaceColor(colors []float32, i int) [Channels]float32 {
	var c [Channels]float32
	copy(c[:], colors[i*floatsPerFace:])
	return c
}
