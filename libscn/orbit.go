package libscn

import (
	"shading-gl/libutil"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// degrees of rotation per pixel dragged
	OrbitSpeed = 0.5
	// wheel delta units per offset unit / zoom factor
	WheelScale = 1000
	MinFovy    = 1
	MaxFovy    = 100
)

type Modifiers struct {
	Ctrl, Super, Alt bool
}

// Orbit rotates eye and up around the target. The drag is interpreted in camera space,
// so horizontal drags always turn around the screen's vertical axis.
func Orbit(cam *Camera, dx, dy float32) {
	if dx == 0 && dy == 0 {
		return
	}

	d := mgl32.Vec2{dx, dy}
	axis := mgl32.Vec3{-dy, -dx, 0}.Normalize()
	rotation := mgl32.HomogRotate3D(OrbitSpeed*d.Len()*libutil.Deg2Rad, axis)

	view := cam.ViewMatrix()
	inCameraSpace := view.Inv().Mul4(rotation).Mul4(view)

	eyeAt := inCameraSpace.Mul4x1(cam.Eye.Sub(cam.At).Vec4(0))
	up := inCameraSpace.Mul4x1(cam.Up.Vec4(0))

	cam.Eye = cam.At.Add(eyeAt.Vec3())
	cam.Up = up.Vec3()
}

// Dolly moves the eye along the viewing direction, optionally dragging the target with it.
// A positive delta moves towards the target.
func Dolly(cam *Camera, deltaY float32, moveTarget bool) {
	dir := cam.At.Sub(cam.Eye)
	if dir.LenSqr() == 0 {
		return
	}
	step := dir.Normalize().Mul(deltaY / WheelScale)

	cam.Eye = cam.Eye.Add(step)
	if moveTarget {
		cam.At = cam.At.Add(step)
	}
}

// Zoom scales the field of view, a positive delta narrows it
func Zoom(cam *Camera, deltaY float32) {
	factor := 1 - deltaY/WheelScale
	cam.Fovy = libutil.Clamp(cam.Fovy*factor, MinFovy, MaxFovy)
}

// Wheel dispatches a browser style wheel delta: plain wheel zooms, super dollies the eye,
// ctrl dollies eye and target. Alt on its own does nothing.
func Wheel(cam *Camera, deltaY float32, mods Modifiers) {
	if !mods.Alt && !mods.Super && !mods.Ctrl {
		Zoom(cam, deltaY)
	} else if mods.Super || mods.Ctrl {
		Dolly(cam, deltaY, mods.Ctrl)
	}
}
