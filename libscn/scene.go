package libscn

import (
	"shading-gl/libutil"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jinzhu/copier"
)

const MaxLights = 3

// Minimum distance kept between the near and far clipping planes
const ClipGap = 0.5

type Camera struct {
	Eye    mgl32.Vec3
	At     mgl32.Vec3
	Up     mgl32.Vec3
	Fovy   float32 // degrees
	Aspect float32
	Near   float32
	Far    float32
}

func (cam *Camera) SetNear(v float32) {
	cam.Near = libutil.Min(cam.Far-ClipGap, v)
}

func (cam *Camera) SetFar(v float32) {
	cam.Far = libutil.Max(cam.Near+ClipGap, v)
}

func (cam *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(cam.Eye, cam.At, cam.Up)
}

func (cam *Camera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(cam.Fovy*libutil.Deg2Rad, cam.Aspect, cam.Near, cam.Far)
}

type Material struct {
	// 0-255
	Ka, Kd, Ks mgl32.Vec3
	Shininess  float32
}

type Object struct {
	Name     string
	Position mgl32.Vec3
	Scale    mgl32.Vec3
	// x, y, z in degrees
	Rotation mgl32.Vec3
	Material Material
}

// ModelMatrix is T * S * Ry * Rx * Rz
func (o *Object) ModelMatrix() mgl32.Mat4 {
	t := mgl32.Translate3D(o.Position[0], o.Position[1], o.Position[2])
	s := mgl32.Scale3D(o.Scale[0], o.Scale[1], o.Scale[2])
	return t.Mul4(s).Mul4(o.rotationMatrix())
}

// Frame is the object's placement without its scale, T * Ry * Rx * Rz.
// Object lights are positioned in this frame.
func (o *Object) Frame() mgl32.Mat4 {
	t := mgl32.Translate3D(o.Position[0], o.Position[1], o.Position[2])
	return t.Mul4(o.rotationMatrix())
}

func (o *Object) rotationMatrix() mgl32.Mat4 {
	ry := mgl32.HomogRotate3DY(o.Rotation[1] * libutil.Deg2Rad)
	rx := mgl32.HomogRotate3DX(o.Rotation[0] * libutil.Deg2Rad)
	rz := mgl32.HomogRotate3DZ(o.Rotation[2] * libutil.Deg2Rad)
	return ry.Mul4(rx).Mul4(rz)
}

type Options struct {
	Wireframe          bool
	DrawLightPositions bool
	Mesh               MeshKind
	Shading            ShadingMode
}

type Scene struct {
	Camera Camera
	// indexed by LightType
	Lights  [MaxLights]Light
	Object  Object
	Ground  Object
	Options Options
}

func (s *Scene) Light(t LightType) *Light {
	return &s.Lights[t]
}

func (s *Scene) ActiveLights() int {
	n := 0
	for i := range s.Lights {
		if s.Lights[i].Enabled {
			n++
		}
	}
	return n
}

// LightFrame returns the transform that light positions of the given type are expressed in,
// relative to view space.
func (s *Scene) LightFrame(t LightType, view mgl32.Mat4) mgl32.Mat4 {
	switch t {
	case LightObject:
		return view.Mul4(s.Object.Frame())
	case LightCamera:
		return mgl32.Ident4()
	}
	return view
}

func (s *Scene) Clone() (*Scene, error) {
	clone := &Scene{}
	err := copier.CopyWithOption(clone, s, copier.Option{DeepCopy: true})
	return clone, err
}

// ResetTo overwrites the scene in place so pointers into it stay valid.
func (s *Scene) ResetTo(src *Scene) error {
	return copier.CopyWithOption(s, src, copier.Option{DeepCopy: true})
}
