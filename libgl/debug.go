package libgl

import (
	"fmt"
	"log"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.5-core/gl"
)

type LabeledGlObject interface {
	SetDebugLabel(string)
}

func setObjectLabel(namespace, id uint32, label string) {
	if label == "" {
		return
	}
	bytes := []byte(label)
	gl.ObjectLabel(namespace, id, int32(len(bytes)), (*uint8)(unsafe.Pointer(&bytes[0])))
}

func PushDebugGroup(name string) {
	gl.PushDebugGroup(gl.DEBUG_SOURCE_APPLICATION, 0, -1, gl.Str(name+"\x00"))
}

func PopDebugGroup() {
	gl.PopDebugGroup()
}

var debugSeverityNames = map[uint32]string{
	gl.DEBUG_SEVERITY_HIGH:         "CRITICAL_ERROR",
	gl.DEBUG_SEVERITY_MEDIUM:       "ERROR",
	gl.DEBUG_SEVERITY_LOW:          "WARNING",
	gl.DEBUG_SEVERITY_NOTIFICATION: "INFO",
}

var debugTypeNames = map[uint32]string{
	gl.DEBUG_TYPE_ERROR:               "ERROR",
	gl.DEBUG_TYPE_DEPRECATED_BEHAVIOR: "DEPRECATED_BEHAVIOR",
	gl.DEBUG_TYPE_UNDEFINED_BEHAVIOR:  "UNDEFINED_BEHAVIOR",
	gl.DEBUG_TYPE_PERFORMANCE:         "PERFORMANCE",
	gl.DEBUG_TYPE_PORTABILITY:         "PORTABILITY",
	gl.DEBUG_TYPE_OTHER:               "OTHER",
	gl.DEBUG_TYPE_MARKER:              "MARKER",
	gl.DEBUG_TYPE_PUSH_GROUP:          "PUSH_GROUP",
	gl.DEBUG_TYPE_POP_GROUP:           "POP_GROUP",
}

var debugSourceNames = map[uint32]string{
	gl.DEBUG_SOURCE_API:             "GRAPHICS_LIBRARY",
	gl.DEBUG_SOURCE_SHADER_COMPILER: "SHADER_COMPILER",
	gl.DEBUG_SOURCE_WINDOW_SYSTEM:   "WINDOW_SYSTEM",
	gl.DEBUG_SOURCE_THIRD_PARTY:     "THIRD_PARTY",
	gl.DEBUG_SOURCE_APPLICATION:     "APPLICATION",
	gl.DEBUG_SOURCE_OTHER:           "OTHER",
}

func FormatDebugMessage(source, gltype, id, severity uint32, message string) string {
	return fmt.Sprintf("[%v] %v #%v from %v: %v", debugSeverityNames[severity], debugTypeNames[gltype], id, debugSourceNames[source], message)
}

// DebugGroupStack tracks the names of the currently pushed debug groups
type DebugGroupStack []string

func (s *DebugGroupStack) Push(name string) {
	*s = append(*s, name)
}

func (s *DebugGroupStack) Pop() {
	if len(*s) > 1 {
		*s = (*s)[:len(*s)-1]
	}
}

func (s DebugGroupStack) String() string {
	return strings.Join(s, " > ")
}

// EnableDebugOutput routes driver messages to the log. High severity messages panic
// with the debug group stack they occurred in.
func EnableDebugOutput() {
	gl.Enable(gl.DEBUG_OUTPUT)
	gl.Enable(gl.DEBUG_OUTPUT_SYNCHRONOUS)
	groups := DebugGroupStack{"top"}
	gl.DebugMessageCallback(
		func(source, gltype, id, severity uint32, length int32, message string, userParam unsafe.Pointer) {
			switch gltype {
			case gl.DEBUG_TYPE_PUSH_GROUP:
				groups.Push(message)
				return
			case gl.DEBUG_TYPE_POP_GROUP:
				groups.Pop()
				return
			}
			msg := FormatDebugMessage(source, gltype, id, severity, message)
			if severity == gl.DEBUG_SEVERITY_HIGH {
				log.Panicf("%v\ndebug stack: %v", msg, groups)
			}
			log.Println(msg)
		}, nil)
}
