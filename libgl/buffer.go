package libgl

import (
	"fmt"
	"log"

	"github.com/go-gl/gl/v4.5-core/gl"
)

type buffer struct {
	glId      uint32
	size      int
	flags     uint32
	immutable bool
}

type UnboundBuffer interface {
	LabeledGlObject
	Id() uint32
	// Immutable storage initialized with data
	Allocate(data any, flags int)
	// Immutable, uninitialized storage
	AllocateEmpty(size int, flags int)
	// Replaces the storage if it is smaller than size; returns true when it did
	Grow(size int) bool
	Write(offset int, data any)
	Size() int
	Delete()
}

func NewBuffer() UnboundBuffer {
	var id uint32
	gl.CreateBuffers(1, &id)
	return &buffer{
		glId: id,
	}
}

func (vbo *buffer) Id() uint32 {
	return vbo.glId
}

func (vbo *buffer) Size() int {
	return vbo.size
}

func (vbo *buffer) SetDebugLabel(label string) {
	setObjectLabel(gl.BUFFER, vbo.glId, label)
}

func (vbo *buffer) Allocate(data any, flags int) {
	if vbo.immutable {
		log.Panicf("buffer %d is immutable", vbo.glId)
	}
	size := ByteSize(data)
	if vbo.warnAllocationSizeZero(size) {
		return
	}
	gl.NamedBufferStorage(vbo.glId, size, Pointer(data), uint32(flags))
	vbo.size = size
	vbo.flags = uint32(flags)
	vbo.immutable = true
}

func (vbo *buffer) AllocateEmpty(size int, flags int) {
	if vbo.immutable {
		log.Panicf("buffer %d is immutable", vbo.glId)
	}
	if vbo.warnAllocationSizeZero(size) {
		return
	}
	gl.NamedBufferStorage(vbo.glId, size, nil, uint32(flags))
	vbo.size = size
	vbo.flags = uint32(flags)
	vbo.immutable = true
}

func (vbo *buffer) warnAllocationSizeZero(size int) bool {
	if size != 0 {
		return false
	}
	msg := "Zero size buffer allocation\x00"
	gl.DebugMessageInsert(gl.DEBUG_SOURCE_APPLICATION, gl.DEBUG_TYPE_ERROR, 1, gl.DEBUG_SEVERITY_MEDIUM, -1, gl.Str(msg))
	return true
}

// Immutable storage cannot be resized, so the buffer object is replaced and the
// old contents are dropped. Callers rebind the new Id.
func (vbo *buffer) Grow(size int) bool {
	if size <= vbo.size {
		return false
	}
	newSize := GrowSize(vbo.size, size)
	if vbo.flags == 0 {
		vbo.flags = gl.DYNAMIC_STORAGE_BIT
	}
	if vbo.immutable {
		gl.DeleteBuffers(1, &vbo.glId)
		gl.CreateBuffers(1, &vbo.glId)
	}
	gl.NamedBufferStorage(vbo.glId, newSize, nil, vbo.flags)
	vbo.size = newSize
	vbo.immutable = true
	return true
}

// GrowSize doubles small buffers and grows larger ones by 1.25x until size fits
func GrowSize(current, size int) int {
	newSize := current
	doubleSize := newSize + newSize
	if size > doubleSize {
		return size
	}
	if current < 16_384 {
		return doubleSize
	}
	for 0 < newSize && newSize < size {
		newSize += newSize / 4
	}
	if newSize <= 0 {
		newSize = size
	}
	return newSize
}

func (vbo *buffer) Write(offset int, data any) {
	size := ByteSize(data)
	if size == 0 {
		return
	}
	if offset+size > vbo.size {
		panic(fmt.Errorf("write of %d bytes at %d exceeds buffer %d of size %d", size, offset, vbo.glId, vbo.size))
	}
	gl.NamedBufferSubData(vbo.glId, offset, size, Pointer(data))
}

func (vbo *buffer) Delete() {
	gl.DeleteBuffers(1, &vbo.glId)
	vbo.glId = 0
}

type vertexArray struct {
	glId uint32
}

type UnboundVertexArray interface {
	LabeledGlObject
	Layout(bufferIndex int, attributeIndex int, size int, dataType int, normalized bool, offset int)
	BindBuffer(bufferIndex int, vbo UnboundBuffer, offset int, stride int)
	BindElementBuffer(ebo UnboundBuffer)
	Id() uint32
	Bind()
	Delete()
}

func NewVertexArray() UnboundVertexArray {
	var id uint32
	gl.CreateVertexArrays(1, &id)
	return &vertexArray{
		glId: id,
	}
}

func (vao *vertexArray) Bind() {
	State.BindVertexArray(vao.glId)
}

func (vao *vertexArray) Id() uint32 {
	return vao.glId
}

func (vao *vertexArray) SetDebugLabel(label string) {
	setObjectLabel(gl.VERTEX_ARRAY, vao.glId, label)
}

func (vao *vertexArray) Layout(bufferIndex int, attributeIndex int, size int, dataType int, normalized bool, offset int) {
	gl.EnableVertexArrayAttrib(vao.glId, uint32(attributeIndex))
	gl.VertexArrayAttribFormat(vao.glId, uint32(attributeIndex), int32(size), uint32(dataType), normalized, uint32(offset))
	gl.VertexArrayAttribBinding(vao.glId, uint32(attributeIndex), uint32(bufferIndex))
}

func (vao *vertexArray) BindBuffer(bufferIndex int, vbo UnboundBuffer, offset int, stride int) {
	gl.VertexArrayVertexBuffer(vao.glId, uint32(bufferIndex), vbo.Id(), offset, int32(stride))
}

func (vao *vertexArray) BindElementBuffer(ebo UnboundBuffer) {
	gl.VertexArrayElementBuffer(vao.glId, ebo.Id())
}

func (vao *vertexArray) Delete() {
	gl.DeleteVertexArrays(1, &vao.glId)
	vao.glId = 0
}
