package libscn_test

import (
	"testing"

	"shading-gl/libscn"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func defaultCamera() libscn.Camera {
	return libscn.Camera{
		Eye:    mgl32.Vec3{-5, 2, 5},
		At:     mgl32.Vec3{0, 0, 0},
		Up:     mgl32.Vec3{0, 1, 0},
		Fovy:   40,
		Aspect: 1,
		Near:   0.1,
		Far:    20,
	}
}

func TestOrbitZeroDelta(t *testing.T) {
	cam := defaultCamera()
	libscn.Orbit(&cam, 0, 0)
	assert.Equal(t, defaultCamera(), cam)
}

func TestOrbitKeepsDistance(t *testing.T) {
	cam := defaultCamera()
	dist := cam.Eye.Sub(cam.At).Len()

	drags := [][2]float32{{10, 0}, {0, -25}, {13, 7}, {-40, 3}}
	for _, d := range drags {
		libscn.Orbit(&cam, d[0], d[1])
		assert.InDelta(t, dist, cam.Eye.Sub(cam.At).Len(), 1e-4)
		assert.InDelta(t, 1, cam.Up.Len(), 1e-4, "up should stay unit length")
	}
	assert.Equal(t, mgl32.Vec3{}, cam.At, "orbit should not move the target")
}

func TestOrbitHorizontalTurnsAroundUp(t *testing.T) {
	cam := defaultCamera()
	cam.Eye = mgl32.Vec3{0, 0, 5}

	// 180 pixels is a quarter turn
	libscn.Orbit(&cam, 180, 0)
	assertVec3(t, mgl32.Vec3{0, 1, 0}, cam.Up, 1e-5, "up %v", cam.Up)
	assert.InDelta(t, 0, cam.Eye.Y(), 1e-4)
	assert.InDelta(t, 5, mgl32.Vec2{cam.Eye.X(), cam.Eye.Z()}.Len(), 1e-4)
	assert.InDelta(t, 0, cam.Eye.Z(), 1e-4)
}

func TestOrbitFullTurn(t *testing.T) {
	cam := defaultCamera()
	libscn.Orbit(&cam, 720, 0)
	assertVec3(t, defaultCamera().Eye, cam.Eye, 1e-4, "eye %v", cam.Eye)
	assertVec3(t, defaultCamera().Up, cam.Up, 1e-4, "up %v", cam.Up)
}

func TestZoomClamp(t *testing.T) {
	cam := defaultCamera()
	deltas := []float32{-300, -900, -2000, 500, 999, 2500, -100, 800, 800, 800}
	for _, d := range deltas {
		libscn.Wheel(&cam, d, libscn.Modifiers{})
		assert.GreaterOrEqual(t, cam.Fovy, float32(libscn.MinFovy))
		assert.LessOrEqual(t, cam.Fovy, float32(libscn.MaxFovy))
	}

	cam = defaultCamera()
	libscn.Zoom(&cam, 100)
	assert.InDelta(t, 36, cam.Fovy, 1e-4)
}

func TestWheelDolly(t *testing.T) {
	cam := defaultCamera()
	cam.Eye = mgl32.Vec3{0, 0, 5}

	libscn.Wheel(&cam, 1000, libscn.Modifiers{Super: true})
	assertVec3(t, mgl32.Vec3{0, 0, 4}, cam.Eye, 1e-5, "eye %v", cam.Eye)
	assert.Equal(t, mgl32.Vec3{}, cam.At)
	assert.Equal(t, float32(40), cam.Fovy, "dolly should not zoom")

	libscn.Wheel(&cam, -500, libscn.Modifiers{Ctrl: true})
	assertVec3(t, mgl32.Vec3{0, 0, 4.5}, cam.Eye, 1e-5, "eye %v", cam.Eye)
	assertVec3(t, mgl32.Vec3{0, 0, 0.5}, cam.At, 1e-5, "at %v", cam.At)
}

func TestWheelAltIgnored(t *testing.T) {
	cam := defaultCamera()
	libscn.Wheel(&cam, 400, libscn.Modifiers{Alt: true})
	assert.Equal(t, defaultCamera(), cam)
}

func TestDollyDegenerate(t *testing.T) {
	cam := defaultCamera()
	cam.Eye = cam.At
	libscn.Dolly(&cam, 100, true)
	assert.Equal(t, cam.At, cam.Eye)
}
