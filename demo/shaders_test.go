package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShaderLibraryEmbedded(t *testing.T) {
	lib, err := NewShaderLibrary("")
	require.NoError(t, err)
	assert.Equal(t, "3", lib.Defines["MAX_LIGHTS"])

	for _, name := range []string{ProgramGouraud, ProgramPhong, ProgramImGui} {
		src, err := lib.Source(name)
		require.NoError(t, err, name)
		assert.NotContains(t, src.Vertex, "#include", name)
		assert.NotContains(t, src.Fragment, "#include", name)
	}

	src, err := lib.Source(ProgramGouraud)
	require.NoError(t, err)
	assert.Contains(t, src.Vertex, "vec3 illuminate(")
	assert.NotContains(t, src.Fragment, "vec3 illuminate(")

	src, err = lib.Source(ProgramPhong)
	require.NoError(t, err)
	assert.Contains(t, src.Fragment, "vec3 illuminate(")
	assert.Contains(t, src.Fragment, "uniform int u_lightType[MAX_LIGHTS];")
}

func TestLightingSkipsZeroDirections(t *testing.T) {
	lib, err := NewShaderLibrary("")
	require.NoError(t, err)
	src, err := lib.read("lighting.glsl")
	require.NoError(t, err)

	// the default camera light is directional with position (0, 0, 0)
	guard := strings.Index(src, "if (dot(toLight, toLight) == 0.0) continue;")
	normalize := strings.Index(src, "normalize(toLight)")
	ambient := strings.Index(src, "color += u_light[i].Ia * u_material.Ka;")
	require.NotEqual(t, -1, guard)
	require.NotEqual(t, -1, normalize)
	require.NotEqual(t, -1, ambient)
	assert.Less(t, ambient, guard, "ambient light is added for every enabled light")
	assert.Less(t, guard, normalize)
}

func TestShaderLibraryDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "flat.vert"), []byte("#version 450 core\n#include \"common.glsl\"\nvoid main() {}\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "flat.frag"), []byte("#version 450 core\nvoid main() {}\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "common.glsl"), []byte("const float PI = 3.14159;\n"), 0o644))

	lib, err := NewShaderLibrary(dir)
	require.NoError(t, err)
	src, err := lib.Source("flat")
	require.NoError(t, err)
	assert.Contains(t, src.Vertex, "const float PI = 3.14159;")
	assert.NotContains(t, src.Vertex, "#include")

	_, err = lib.Source("missing")
	assert.ErrorContains(t, err, "missing.vert")
}
