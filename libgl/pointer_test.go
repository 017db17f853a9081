package libgl_test

import (
	"testing"
	"unsafe"

	"shading-gl/libgl"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestPointer(t *testing.T) {
	data := []uint32{1, 2, 3}
	assert.Equal(t, unsafe.Pointer(&data[0]), libgl.Pointer(data))

	mat := mgl32.Ident4()
	assert.Equal(t, unsafe.Pointer(&mat), libgl.Pointer(&mat))

	assert.Nil(t, libgl.Pointer(nil))
	assert.Nil(t, libgl.Pointer([]float32{}))
	assert.Nil(t, libgl.Pointer((*mgl32.Vec3)(nil)))

	assert.Panics(t, func() { libgl.Pointer(42) })
}

func TestByteSize(t *testing.T) {
	vertices := make([]mgl32.Vec3, 5)
	assert.Equal(t, 5*12, libgl.ByteSize(vertices))

	mat := mgl32.Ident4()
	assert.Equal(t, 64, libgl.ByteSize(&mat))
	assert.Equal(t, 0, libgl.ByteSize([]uint16{}))
}
