package main

import (
	"os"
	"path/filepath"
	"testing"

	"shading-gl/libscn"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputName(t *testing.T) {
	assert.Equal(t, "bunny.geo.lz4", outputName("bunny.obj"))
	assert.Equal(t, filepath.Join("models", "cow.geo.lz4"), outputName(filepath.Join("models", "cow.tar.glb")))
	assert.Equal(t, ".hidden.geo.lz4", outputName(".hidden"))
}

func TestWriteMeshes(t *testing.T) {
	cube := libscn.GenerateCube()
	torus := libscn.GenerateTorus(12, 8)
	out := filepath.Join(t.TempDir(), "pair.geo.lz4")
	require.NoError(t, writeMeshes(out, []*libscn.Mesh{cube, torus}))

	file, err := os.Open(out)
	require.NoError(t, err)
	defer file.Close()
	stream, err := libscn.OpenMeshStream(file)
	require.NoError(t, err)
	meshes, err := libscn.DecodeMeshes(stream)
	require.NoError(t, err)
	require.Len(t, meshes, 2)
	assert.Equal(t, cube.Name, meshes[0].Name)
	assert.Equal(t, cube.Indices, meshes[0].Indices)
	assert.Equal(t, len(torus.Vertices), len(meshes[1].Vertices))
}
