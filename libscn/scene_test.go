package libscn_test

import (
	"testing"

	"shading-gl/libscn"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCameraClipClamp(t *testing.T) {
	cam := libscn.Camera{Near: 0.1, Far: 20}

	cam.SetNear(25)
	assert.InDelta(t, 19.5, cam.Near, 1e-6, "near should stay below far")

	cam.SetNear(1)
	cam.SetFar(0.2)
	assert.InDelta(t, 1.5, cam.Far, 1e-6, "far should stay above near")

	cam.SetFar(10)
	cam.SetNear(10)
	assert.InDelta(t, 9.5, cam.Near, 1e-6)
	assert.Less(t, cam.Near, cam.Far)
}

func TestModelMatrixOrder(t *testing.T) {
	obj := libscn.Object{
		Position: mgl32.Vec3{1, 2, 3},
		Scale:    mgl32.Vec3{2, 1, 1},
		Rotation: mgl32.Vec3{0, 90, 0},
	}
	// T * S * Ry: rotate first, then scale along the world x axis
	p := obj.ModelMatrix().Mul4x1(mgl32.Vec4{0, 0, -1, 1})
	assertVec4(t, mgl32.Vec4{1 - 2, 2, 3, 1}, p, 1e-5, "got %v", p)

	frame := obj.Frame().Mul4x1(mgl32.Vec4{0, 0, -1, 1})
	assertVec4(t, mgl32.Vec4{0, 2, 3, 1}, frame, 1e-5, "frame should not scale, got %v", frame)
}

func TestDirectionalToggle(t *testing.T) {
	light := libscn.Light{Position: mgl32.Vec4{2, 2, 2, 1}}

	light.SetDirectional(true)
	assert.Equal(t, float32(0), light.Position[3])
	assert.True(t, light.Directional())

	light.SetDirectional(false)
	assert.Equal(t, float32(1), light.Position[3])
	assert.False(t, light.Directional())
	assert.Equal(t, mgl32.Vec3{2, 2, 2}, light.Position.Vec3(), "toggle should only touch w")
}

func TestLightingCountsEnabled(t *testing.T) {
	scene := libscn.DefaultScene()
	view := scene.Camera.ViewMatrix()

	toggles := []libscn.LightType{libscn.LightObject, libscn.LightWorld, libscn.LightObject, libscn.LightCamera, libscn.LightWorld}
	for _, lt := range toggles {
		scene.Light(lt).Enabled = !scene.Light(lt).Enabled

		enabled := 0
		for _, l := range scene.Lights {
			if l.Enabled {
				enabled++
			}
		}
		block := scene.Lighting(view)
		assert.Equal(t, int32(enabled), block.NumLights)
		for i, l := range scene.Lights {
			if l.Enabled {
				assert.NotEqual(t, libscn.LightTypeDisabled, block.Lights[i].Type)
			} else {
				assert.Equal(t, libscn.LightTypeDisabled, block.Lights[i].Type)
			}
		}
	}
}

func TestLightingEncoding(t *testing.T) {
	scene := libscn.DefaultScene()
	view := scene.Camera.ViewMatrix()

	world := scene.Light(libscn.LightWorld)
	world.SetDirectional(false)
	camera := scene.Light(libscn.LightCamera)
	camera.Position = mgl32.Vec4{1, 2, 3, 1}

	block := scene.Lighting(view)
	assert.Equal(t, libscn.LightTypePositional, block.Lights[libscn.LightWorld].Type)
	assert.Equal(t, libscn.LightTypeDirectional, block.Lights[libscn.LightObject].Type)
	assert.Equal(t, libscn.LightTypePositional, block.Lights[libscn.LightCamera].Type)

	assertVec4(t, view.Mul4x1(world.Position), block.Lights[libscn.LightWorld].Position, 1e-5)
	assert.Equal(t, camera.Position, block.Lights[libscn.LightCamera].Position, "camera lights are already in view space")

	assertVec3(t, mgl32.Vec3{1, 1, 1}, block.Lights[libscn.LightWorld].Is, 1e-6)
	assertVec3(t, mgl32.Vec3{50. / 255, 50. / 255, 50. / 255}, block.Lights[libscn.LightWorld].Ia, 1e-6)

	for i, l := range block.Lights {
		assert.NotEqual(t, libscn.LightTypeDisabledPositional, l.Type, "slot %d", i)
	}
}

func TestLightingObjectFrame(t *testing.T) {
	scene := libscn.DefaultScene()
	scene.Object.Position = mgl32.Vec3{1, 0, 0}
	scene.Object.Rotation = mgl32.Vec3{0, 180, 0}
	scene.Object.Scale = mgl32.Vec3{5, 5, 5}
	light := scene.Light(libscn.LightObject)
	light.Position = mgl32.Vec4{1, 0, 0, 1}

	block := scene.Lighting(mgl32.Ident4())
	got := block.Lights[libscn.LightObject].Position
	assertVec4(t, mgl32.Vec4{0, 0, 0, 1}, got, 1e-5, "object light should follow the object, got %v", got)
}

func TestDefaultCameraLightHasNoDirection(t *testing.T) {
	scene := libscn.DefaultScene()
	block := scene.Lighting(scene.Camera.ViewMatrix())

	// the lighting shader must skip diffuse and specular for this slot instead of normalizing zero
	camera := block.Lights[libscn.LightCamera]
	assert.Equal(t, libscn.LightTypeDirectional, camera.Type)
	assert.Equal(t, mgl32.Vec3{}, camera.Position.Vec3())
	assert.NotEqual(t, mgl32.Vec3{}, camera.Ia)
}

func TestDisabledSlotsCarryOnlyType(t *testing.T) {
	scene := libscn.DefaultScene()
	for i := range scene.Lights {
		scene.Lights[i].Enabled = false
	}
	block := scene.Lighting(scene.Camera.ViewMatrix())
	assert.Equal(t, int32(0), block.NumLights)
	for _, l := range block.Lights {
		assert.Equal(t, libscn.LightUniform{Type: libscn.LightTypeDisabled}, l)
	}
}

func TestResetKeepsPointers(t *testing.T) {
	scene := libscn.DefaultScene()
	initial, err := scene.Clone()
	require.NoError(t, err)

	fovy := &scene.Camera.Fovy
	light := scene.Light(libscn.LightWorld)

	scene.Camera.Fovy = 90
	scene.Camera.Eye = mgl32.Vec3{1, 1, 1}
	light.Enabled = false
	scene.Options.Mesh = libscn.MeshTorus

	require.NoError(t, scene.ResetTo(initial))
	assert.Equal(t, float32(40), *fovy)
	assert.True(t, light.Enabled)
	assert.Equal(t, mgl32.Vec3{-5, 2, 5}, scene.Camera.Eye)
	assert.Equal(t, libscn.MeshBunny, scene.Options.Mesh)

	scene.Camera.Fovy = 10
	assert.Equal(t, float32(40), initial.Camera.Fovy, "clone should not share state")
}
