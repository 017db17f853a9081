package libgl

import (
	"fmt"
	"log"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-gl/gl/v4.5-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

var shaderVersionPattern = regexp.MustCompile(`(?m)^\s*#version.+$`)
var shaderDefinePattern = regexp.MustCompile(`(?m)^[ \t]*#define[ \t]+(\w+)[^\n]*$`)
var shaderIncludePattern = regexp.MustCompile(`(?m)^[ \t]*#include[ \t]+"([^"]+)"[ \t]*$`)

type ShaderSource struct {
	Vertex, Fragment string
}

type program struct {
	uniformLocations map[string]int32
	glId             uint32
	name             string
}

type ShaderProgram interface {
	LabeledGlObject
	Id() uint32
	Name() string
	Use()
	GetUniformLocation(name string) int32
	SetUniform(name string, value any)
	Delete()
}

// NewProgram compiles and links a vertex and fragment shader into one program.
// defs are injected as #define directives, replacing existing ones of the same name.
func NewProgram(name string, src ShaderSource, defs map[string]string) (ShaderProgram, error) {
	vsh := InjectDefines(src.Vertex, defs)
	fsh := InjectDefines(src.Fragment, defs)

	var id uint32
	cached := false
	if ok, buf, format := ShaderCache.Get(vsh + fsh); ok {
		id = gl.CreateProgram()
		gl.ProgramBinary(id, format, Pointer(buf), int32(len(buf)))
		var status int32
		gl.GetProgramiv(id, gl.LINK_STATUS, &status)
		if status == gl.TRUE {
			cached = true
		} else {
			// driver rejected the binary
			gl.DeleteProgram(id)
		}
	}

	if !cached {
		var err error
		id, err = linkProgram(name, vsh, fsh)
		if err != nil {
			return nil, err
		}
		ShaderCache.Put(vsh+fsh, id)
	}

	prog := &program{
		uniformLocations: map[string]int32{},
		glId:             id,
		name:             name,
	}
	prog.SetDebugLabel(name)
	return prog, nil
}

func linkProgram(name, vsh, fsh string) (uint32, error) {
	vertex, err := compileShader(name, vsh, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertex)
	fragment, err := compileShader(name, fsh, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragment)

	id := gl.CreateProgram()
	gl.ProgramParameteri(id, gl.PROGRAM_BINARY_RETRIEVABLE_HINT, gl.TRUE)
	gl.AttachShader(id, vertex)
	gl.AttachShader(id, fragment)
	gl.LinkProgram(id)
	gl.DetachShader(id, vertex)
	gl.DetachShader(id, fragment)

	var ok int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &ok)
	if ok == gl.FALSE {
		infoLog := readProgramInfoLog(id)
		gl.DeleteProgram(id)
		return 0, fmt.Errorf("failed to link %v shader, log: %v", name, infoLog)
	}
	return id, nil
}

func compileShader(name, source string, stage uint32) (uint32, error) {
	id := gl.CreateShader(stage)
	cStrs, free := gl.Strs(source + "\x00")
	gl.ShaderSource(id, 1, cStrs, nil)
	free()
	gl.CompileShader(id)

	var ok int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &ok)
	if ok == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(id, logLength, nil, gl.Str(infoLog))
		gl.DeleteShader(id)
		return 0, fmt.Errorf("failed to compile %v %v shader, log: %v", name, stageName(stage), strings.TrimRight(infoLog, "\x00"))
	}
	return id, nil
}

func stageName(stage uint32) string {
	if stage == gl.VERTEX_SHADER {
		return "vertex"
	}
	return "fragment"
}

// InjectDefines replaces the value of existing #define directives and inserts the
// others right after #version
func InjectDefines(source string, defs map[string]string) string {
	if len(defs) == 0 {
		return source
	}
	pending := make(map[string]string, len(defs))
	for k, v := range defs {
		pending[k] = v
	}

	source = shaderDefinePattern.ReplaceAllStringFunc(source, func(line string) string {
		name := shaderDefinePattern.FindStringSubmatch(line)[1]
		value, ok := pending[name]
		if !ok {
			return line
		}
		delete(pending, name)
		return defineLine(name, value)
	})

	if len(pending) == 0 {
		return source
	}
	names := make([]string, 0, len(pending))
	for name := range pending {
		names = append(names, name)
	}
	sort.Strings(names)
	var sb strings.Builder
	for _, name := range names {
		sb.WriteString(defineLine(name, pending[name]))
		sb.WriteByte('\n')
	}

	loc := shaderVersionPattern.FindStringIndex(source)
	if loc == nil {
		return sb.String() + source
	}
	rest := strings.TrimPrefix(source[loc[1]:], "\n")
	return source[:loc[1]] + "\n" + sb.String() + rest
}

// ResolveIncludes replaces #include "name" lines with the file returned by open.
// Included files may include others; a file is only included once.
func ResolveIncludes(source string, open func(name string) (string, error)) (string, error) {
	return resolveIncludes(source, open, map[string]bool{})
}

func resolveIncludes(source string, open func(name string) (string, error), seen map[string]bool) (string, error) {
	var err error
	resolved := shaderIncludePattern.ReplaceAllStringFunc(source, func(line string) string {
		if err != nil {
			return line
		}
		name := shaderIncludePattern.FindStringSubmatch(line)[1]
		if seen[name] {
			return ""
		}
		seen[name] = true
		var included string
		included, err = open(name)
		if err != nil {
			err = fmt.Errorf("could not include %q: %w", name, err)
			return line
		}
		included, err = resolveIncludes(included, open, seen)
		return strings.TrimRight(included, "\n")
	})
	return resolved, err
}

func defineLine(name, value string) string {
	if value == "" {
		return "#define " + name
	}
	return "#define " + name + " " + value
}

func readProgramInfoLog(id uint32) string {
	var logLength int32
	gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLength)

	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(id, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (prog *program) Name() string {
	return prog.name
}

func (prog *program) Id() uint32 {
	return prog.glId
}

func (prog *program) SetDebugLabel(label string) {
	setObjectLabel(gl.PROGRAM, prog.glId, label)
}

func (prog *program) Use() {
	State.UseProgram(prog.glId)
}

func (prog *program) Delete() {
	if State.Program == prog.glId {
		State.UseProgram(0)
	}
	gl.DeleteProgram(prog.glId)
	prog.glId = 0
}

// GetUniformLocation caches lookups. Unknown or optimized out uniforms resolve to -1
// and setting them is a no-op.
func (prog *program) GetUniformLocation(name string) int32 {
	if location, ok := prog.uniformLocations[name]; ok {
		return location
	}

	location := gl.GetUniformLocation(prog.glId, gl.Str(name+"\x00"))
	prog.uniformLocations[name] = location
	return location
}

func (prog *program) SetUniform(name string, value any) {
	location := prog.GetUniformLocation(name)
	if location == -1 {
		return
	}
	setProgramUniformAny(prog.glId, location, value)
}

func setProgramUniformAny(prog uint32, location int32, value any) {
	for refVal := reflect.ValueOf(value); refVal.Kind() == reflect.Ptr; refVal = reflect.ValueOf(value) {
		value = refVal.Elem().Interface()
	}

	switch v := value.(type) {
	case float32:
		gl.ProgramUniform1f(prog, location, v)
	case int:
		gl.ProgramUniform1i(prog, location, int32(v))
	case int32:
		gl.ProgramUniform1i(prog, location, v)
	case bool:
		var i int32
		if v {
			i = 1
		}
		gl.ProgramUniform1i(prog, location, i)
	case uint32:
		gl.ProgramUniform1ui(prog, location, v)
	case mgl32.Vec2:
		gl.ProgramUniform2f(prog, location, v.X(), v.Y())
	case mgl32.Vec3:
		gl.ProgramUniform3f(prog, location, v.X(), v.Y(), v.Z())
	case mgl32.Vec4:
		gl.ProgramUniform4f(prog, location, v.X(), v.Y(), v.Z(), v.W())
	case mgl32.Mat3:
		gl.ProgramUniformMatrix3fv(prog, location, 1, false, &v[0])
	case mgl32.Mat4:
		gl.ProgramUniformMatrix4fv(prog, location, 1, false, &v[0])
	default:
		log.Panicf("Unsupported uniform type %T", value)
	}
}
