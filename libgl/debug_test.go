package libgl_test

import (
	"testing"

	"shading-gl/libgl"

	"github.com/go-gl/gl/v4.5-core/gl"
	"github.com/stretchr/testify/assert"
)

func TestFormatDebugMessage(t *testing.T) {
	msg := libgl.FormatDebugMessage(gl.DEBUG_SOURCE_SHADER_COMPILER, gl.DEBUG_TYPE_ERROR, 7, gl.DEBUG_SEVERITY_MEDIUM, "oops")
	assert.Equal(t, "[ERROR] ERROR #7 from SHADER_COMPILER: oops", msg)

	msg = libgl.FormatDebugMessage(gl.DEBUG_SOURCE_APPLICATION, gl.DEBUG_TYPE_PERFORMANCE, 1, gl.DEBUG_SEVERITY_NOTIFICATION, "slow")
	assert.Equal(t, "[INFO] PERFORMANCE #1 from APPLICATION: slow", msg)
}

func TestDebugGroupStack(t *testing.T) {
	groups := libgl.DebugGroupStack{"top"}
	groups.Push("frame")
	groups.Push("markers")
	assert.Equal(t, "top > frame > markers", groups.String())

	groups.Pop()
	groups.Pop()
	groups.Pop()
	assert.Equal(t, "top", groups.String(), "the root group is never popped")
}
