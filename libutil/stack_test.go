package libutil_test

import (
	"testing"

	"shading-gl/libutil"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestStackPushPop(t *testing.T) {
	ms := libutil.NewMatrixStack()
	view := mgl32.LookAtV(mgl32.Vec3{-5, 2, 5}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	ms.Load(view)

	ms.Push()
	ms.MultTranslation(mgl32.Vec3{1, 2, 3})
	ms.MultScale(mgl32.Vec3{2, 2, 2})
	assert.Equal(t, 2, ms.Depth())
	assert.NotEqual(t, view, ms.Top())
	ms.Pop()

	assert.Equal(t, 1, ms.Depth())
	assert.Equal(t, view, ms.Top())
}

func TestStackUnderflow(t *testing.T) {
	ms := libutil.NewMatrixStack()
	assert.Panics(t, ms.Pop)
}

func TestStackComposition(t *testing.T) {
	ms := libutil.NewMatrixStack()
	ms.MultTranslation(mgl32.Vec3{0, 0.5, 0})
	ms.MultScale(mgl32.Vec3{2, 2, 2})
	ms.MultRotationY(90)

	p := ms.Top().Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	should := mgl32.Vec4{0, 0.5, -2, 1}
	assertVec4(t, should, p, 1e-5, "should be %v but is %v", should, p)
}

func TestStackIdentityRoot(t *testing.T) {
	ms := libutil.NewMatrixStack()
	ms.Load(mgl32.Translate3D(4, 5, 6))
	ms.Push()
	ms.LoadIdentity()
	ms.MultTranslation(mgl32.Vec3{1, 0, 0})
	assert.Equal(t, mgl32.Translate3D(1, 0, 0), ms.Top())
	ms.Pop()
	assert.Equal(t, mgl32.Translate3D(4, 5, 6), ms.Top())

	ms.Push()
	ms.Push()
	ms.Reset()
	assert.Equal(t, 1, ms.Depth())
	assert.Equal(t, mgl32.Ident4(), ms.Top())
}

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(1), libutil.Clamp(float32(0.2), 1, 100))
	assert.Equal(t, float32(100), libutil.Clamp(float32(250), 1, 100))
	assert.Equal(t, 5, libutil.Clamp(5, 1, 10))
	assert.Equal(t, mgl32.Vec3{1, 0.5, 0}, libutil.Unorm(mgl32.Vec3{255, 127.5, 0}))
}

func assertVec4(t *testing.T, want, got mgl32.Vec4, delta float64, msgAndArgs ...any) bool {
	t.Helper()
	return assert.InDeltaSlice(t, want[:], got[:], delta, msgAndArgs...)
}
