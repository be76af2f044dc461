package highlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorizeSingleFace(t *testing.T) {
	colors := Colorize(5, NewSet(2))

	require.Len(t, colors, 3*3*5)
	for v := 0; v < 15; v++ {
		rgb := colors[v*3 : v*3+3]
		if v >= 6 && v <= 8 {
			assert.Equal(t, []float32{1, 0, 0}, rgb, "vertex %d belongs to face 2", v)
		} else {
			assert.Equal(t, []float32{1, 1, 1}, rgb, "vertex %d", v)
		}
	}
}

func TestColorizeIgnoresOutOfRange(t *testing.T) {
	colors := Colorize(2, NewSet(-1, 2, 7))

	assert.Equal(t, Plain(2), colors)
}

func TestColorizeEveryMarkedFace(t *testing.T) {
	set := NewSet(0, 3, 4)
	colors := Colorize(6, set)

	for face := 0; face < 6; face++ {
		want := White
		if set.Contains(face) {
			want = Red
		}
		assert.Equal(t, want, FaceColor(colors, face), "face %d", face)
	}
}

func TestPlainIsWhite(t *testing.T) {
	colors := Plain(3)
	require.Len(t, colors, 27)
	for _, c := range colors {
		assert.Equal(t, float32(1), c)
	}
	assert.Empty(t, Plain(0))
}

func TestParseSet(t *testing.T) {
	set, err := ParseSet([]byte("[4, 1, 4, 9]"))
	require.NoError(t, err)

	assert.Equal(t, 3, set.Len())
	assert.Equal(t, NewSet(1, 4, 9), set)
	assert.Equal(t, 2, set.CountIn(5))
}

func TestParseSetRejectsNonIntegers(t *testing.T) {
	for _, data := range []string{`{"faces": [1]}`, `[1.5]`, `["1"]`, ``} {
		_, err := ParseSet([]byte(data))
		assert.Error(t, err, "input %q", data)
	}
}
