package libscn_test

import (
	"strings"
	"testing"

	"shading-gl/libscn"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const quadOBJ = `# unit quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vn 0 0 1
f 1//1 2//1 3//1 4//1
`

func TestDecodeOBJ(t *testing.T) {
	mesh, err := libscn.DecodeOBJ(strings.NewReader(quadOBJ), "quad")
	require.NoError(t, err)
	assert.Equal(t, "quad", mesh.Name)
	assert.Len(t, mesh.Vertices, 4)
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, mesh.Indices)
	for _, v := range mesh.Vertices {
		assert.Equal(t, float32(1), v.Normal.Z())
	}
}

func TestDecodeOBJComputesNormals(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 0 -1\nf -3 -2 -1\n"
	mesh, err := libscn.DecodeOBJ(strings.NewReader(src), "tri")
	require.NoError(t, err)
	require.Len(t, mesh.Vertices, 3)
	for _, v := range mesh.Vertices {
		assert.InDelta(t, 1, v.Normal.Y(), 1e-6)
	}
}

func TestDecodeOBJErrors(t *testing.T) {
	_, err := libscn.DecodeOBJ(strings.NewReader("v 0 0 0\nf 1 2 3\n"), "bad")
	assert.ErrorContains(t, err, "line 2")

	_, err = libscn.DecodeOBJ(strings.NewReader("v 0 0\n"), "bad")
	assert.Error(t, err)

	_, err = libscn.DecodeOBJ(strings.NewReader("v 0 0 0\n"), "empty")
	assert.ErrorContains(t, err, "no faces")
}
