package main

import (
	"testing"

	"shading-gl/libscn"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func testCamera() libscn.Camera {
	return libscn.Camera{
		Eye:    mgl32.Vec3{-5, 2, 5},
		Up:     mgl32.Vec3{0, 1, 0},
		Fovy:   40,
		Aspect: 1,
		Near:   0.1,
		Far:    20,
	}
}

func TestCameraControllerDrag(t *testing.T) {
	cam := testCamera()
	cc := NewCameraController()
	assert.Equal(t, clearColorIdle, cc.ClearColor)

	cc.Update(&cam, FrameInput{Pressed: true})
	assert.True(t, cc.Dragging)
	assert.Equal(t, clearColorDragging, cc.ClearColor)
	assert.Equal(t, mgl32.Vec3{-5, 2, 5}, cam.Eye)

	cc.Update(&cam, FrameInput{CursorDelta: mgl32.Vec2{40, 0}})
	assert.NotEqual(t, mgl32.Vec3{-5, 2, 5}, cam.Eye)
	assert.InDelta(t, mgl32.Vec3{-5, 2, 5}.Len(), cam.Eye.Len(), 1e-4)

	cc.Update(&cam, FrameInput{Released: true})
	assert.False(t, cc.Dragging)
	assert.Equal(t, clearColorIdle, cc.ClearColor)

	eye := cam.Eye
	cc.Update(&cam, FrameInput{CursorDelta: mgl32.Vec2{40, 10}})
	assert.Equal(t, eye, cam.Eye)
}

func TestCameraControllerPressDoesNotOrbit(t *testing.T) {
	cam := testCamera()
	cc := NewCameraController()

	cc.Update(&cam, FrameInput{Pressed: true, CursorDelta: mgl32.Vec2{40, 25}})
	assert.True(t, cc.Dragging)
	assert.Equal(t, mgl32.Vec3{-5, 2, 5}, cam.Eye)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, cam.Up)

	cc.Update(&cam, FrameInput{CursorDelta: mgl32.Vec2{40, 25}})
	assert.NotEqual(t, mgl32.Vec3{-5, 2, 5}, cam.Eye)
}

func TestCameraControllerCaptured(t *testing.T) {
	cam := testCamera()
	cc := NewCameraController()

	cc.Update(&cam, FrameInput{Pressed: true, Captured: true, ScrollY: 1})
	assert.False(t, cc.Dragging)
	assert.Equal(t, clearColorIdle, cc.ClearColor)
	assert.Equal(t, float32(40), cam.Fovy)

	// a drag started over the scene continues over a panel
	cc.Update(&cam, FrameInput{Pressed: true})
	cc.Update(&cam, FrameInput{CursorDelta: mgl32.Vec2{0, 30}, Captured: true})
	assert.True(t, cc.Dragging)
	assert.NotEqual(t, mgl32.Vec3{-5, 2, 5}, cam.Eye)
}

func TestCameraControllerWheel(t *testing.T) {
	cam := testCamera()
	cc := NewCameraController()

	// scrolling up widens the field of view
	cc.Update(&cam, FrameInput{ScrollY: 1})
	assert.InDelta(t, 40*1.1, cam.Fovy, 1e-4)

	cc.Update(&cam, FrameInput{ScrollY: -1})
	assert.InDelta(t, 40*1.1*0.9, cam.Fovy, 1e-4)

	dist := cam.Eye.Sub(cam.At).Len()
	cc.Update(&cam, FrameInput{ScrollY: -1, Modifiers: libscn.Modifiers{Super: true}})
	assert.InDelta(t, dist-0.1, cam.Eye.Sub(cam.At).Len(), 1e-4)
	assert.Equal(t, mgl32.Vec3{}, cam.At)

	cc.Update(&cam, FrameInput{ScrollY: -1, Modifiers: libscn.Modifiers{Ctrl: true}})
	assert.InDelta(t, dist-0.1, cam.Eye.Sub(cam.At).Len(), 1e-4)
	assert.NotEqual(t, mgl32.Vec3{}, cam.At)
}
