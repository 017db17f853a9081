package libutil

import (
	"log"

	"github.com/go-gl/mathgl/mgl32"
)

// MatrixStack composes nested transforms. The top is the current model-view.
type MatrixStack struct {
	stack []mgl32.Mat4
}

func NewMatrixStack() *MatrixStack {
	return &MatrixStack{
		stack: []mgl32.Mat4{mgl32.Ident4()},
	}
}

func (ms *MatrixStack) Top() mgl32.Mat4 {
	return ms.stack[len(ms.stack)-1]
}

func (ms *MatrixStack) Depth() int {
	return len(ms.stack)
}

// Load replaces the top
func (ms *MatrixStack) Load(m mgl32.Mat4) {
	ms.stack[len(ms.stack)-1] = m
}

func (ms *MatrixStack) LoadIdentity() {
	ms.Load(mgl32.Ident4())
}

func (ms *MatrixStack) Push() {
	ms.stack = append(ms.stack, ms.Top())
}

func (ms *MatrixStack) Pop() {
	if len(ms.stack) == 1 {
		log.Panicf("matrix stack underflow")
	}
	ms.stack = ms.stack[:len(ms.stack)-1]
}

// Reset leaves a single identity matrix on the stack
func (ms *MatrixStack) Reset() {
	ms.stack = append(ms.stack[:0], mgl32.Ident4())
}

func (ms *MatrixStack) Mult(m mgl32.Mat4) {
	ms.Load(ms.Top().Mul4(m))
}

func (ms *MatrixStack) MultTranslation(t mgl32.Vec3) {
	ms.Mult(mgl32.Translate3D(t[0], t[1], t[2]))
}

func (ms *MatrixStack) MultScale(s mgl32.Vec3) {
	ms.Mult(mgl32.Scale3D(s[0], s[1], s[2]))
}

// angles are in degrees
func (ms *MatrixStack) MultRotationX(angle float32) {
	ms.Mult(mgl32.HomogRotate3DX(angle * Deg2Rad))
}

func (ms *MatrixStack) MultRotationY(angle float32) {
	ms.Mult(mgl32.HomogRotate3DY(angle * Deg2Rad))
}

func (ms *MatrixStack) MultRotationZ(angle float32) {
	ms.Mult(mgl32.HomogRotate3DZ(angle * Deg2Rad))
}
