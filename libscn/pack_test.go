package libscn_test

import (
	"os"
	"path/filepath"
	"testing"

	"shading-gl/libscn"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeshPackFallback(t *testing.T) {
	pack := libscn.NewMeshPack()
	require.NoError(t, pack.AddDir(filepath.Join(t.TempDir(), "missing")))

	meshes := pack.LoadAll()
	require.Len(t, meshes, 7)
	for _, kind := range libscn.MeshKinds() {
		assert.NotEmpty(t, meshes[kind].Indices, "%v should always have geometry", kind)
	}
	assert.Equal(t, "bunny", meshes[libscn.MeshBunny].Name)
	assert.Equal(t, "cube", meshes[libscn.MeshCube].Name)

	_, err := pack.Load(libscn.MeshNone)
	assert.Error(t, err)
}

func TestMeshPackPrefersFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Bunny.obj"), []byte(quadOBJ), 0o644))

	pack := libscn.NewMeshPack()
	require.NoError(t, pack.AddDir(dir))
	assert.Contains(t, pack.MeshIndex, "bunny")

	bunny, err := pack.Load(libscn.MeshBunny)
	require.NoError(t, err)
	assert.Len(t, bunny.Indices, 6)

	_, err = pack.Load(libscn.MeshCow)
	assert.ErrorContains(t, err, "not registered")
}

func TestLoadMeshFileComputesMissingNormals(t *testing.T) {
	pyramid := libscn.GeneratePyramid()
	for i := range pyramid.Vertices {
		pyramid.Vertices[i].Normal = [3]float32{}
	}
	require.False(t, pyramid.HasNormals())

	name := filepath.Join(t.TempDir(), "pyramid.geo")
	file, err := os.Create(name)
	require.NoError(t, err)
	require.NoError(t, libscn.EncodeMesh(file, pyramid))
	require.NoError(t, file.Close())

	got, err := libscn.LoadMeshFile(name)
	require.NoError(t, err)
	assert.True(t, got.HasNormals())
	for _, v := range got.Vertices {
		assert.InDelta(t, 1, v.Normal.Len(), 1e-4)
	}
}
