package libgl

import (
	"github.com/go-gl/gl/v4.5-core/gl"
)

type Capability uint32

const (
	DepthTest   Capability = gl.DEPTH_TEST
	Blend       Capability = gl.BLEND
	ScissorTest Capability = gl.SCISSOR_TEST
	CullFace    Capability = gl.CULL_FACE
)

type BlendFactor uint32

const (
	BlendZero             BlendFactor = gl.ZERO
	BlendOne              BlendFactor = gl.ONE
	BlendSrcAlpha         BlendFactor = gl.SRC_ALPHA
	BlendOneMinusSrcAlpha BlendFactor = gl.ONE_MINUS_SRC_ALPHA
)

type DepthFunc uint32

const (
	DepthFuncLess   DepthFunc = gl.LESS
	DepthFuncLEqual DepthFunc = gl.LEQUAL
)

// StateManager shadows the GL state it sets and skips calls that would not change anything.
// It assumes nothing else changes that state behind its back.
type StateManager struct {
	Caps                              map[Capability]bool
	Program, VertexArray, Texture2D   uint32
	ViewportRect, ScissorRect         [4]int
	BlendFactorSrc, BlendFactorDst    BlendFactor
	DepthFuncFn                       DepthFunc
	DepthWriteMask                    bool
	CullFaceMask                      uint32
	ClearColorRGBA                    [4]float32
	PolygonModeFront, PolygonModeBack uint32
}

var State *StateManager

// Initial values of a fresh context
func NewStateManager() *StateManager {
	return &StateManager{
		Caps:             map[Capability]bool{},
		DepthFuncFn:      DepthFuncLess,
		DepthWriteMask:   true,
		CullFaceMask:     gl.BACK,
		BlendFactorSrc:   BlendOne,
		BlendFactorDst:   BlendZero,
		PolygonModeFront: gl.FILL,
		PolygonModeBack:  gl.FILL,
	}
}

func (s *StateManager) Enable(cap Capability) {
	if s.Caps[cap] {
		return
	}
	gl.Enable(uint32(cap))
	s.Caps[cap] = true
}

func (s *StateManager) Disable(cap Capability) {
	if !s.Caps[cap] {
		return
	}
	gl.Disable(uint32(cap))
	s.Caps[cap] = false
}

// SetEnabled enables exactly the given capabilities and disables all others
func (s *StateManager) SetEnabled(caps ...Capability) {
	want := make(map[Capability]bool, len(caps))
	for _, c := range caps {
		want[c] = true
	}
	for c, on := range s.Caps {
		if on && !want[c] {
			s.Disable(c)
		}
	}
	for c := range want {
		s.Enable(c)
	}
}

func (s *StateManager) CullBack() {
	if s.CullFaceMask == gl.BACK {
		return
	}
	gl.CullFace(gl.BACK)
	s.CullFaceMask = gl.BACK
}

func (s *StateManager) BlendFunc(sfactor, dfactor BlendFactor) {
	if s.BlendFactorSrc == sfactor && s.BlendFactorDst == dfactor {
		return
	}
	gl.BlendFunc(uint32(sfactor), uint32(dfactor))
	s.BlendFactorSrc = sfactor
	s.BlendFactorDst = dfactor
}

func (s *StateManager) DepthFunc(fn DepthFunc) {
	if s.DepthFuncFn == fn {
		return
	}
	gl.DepthFunc(uint32(fn))
	s.DepthFuncFn = fn
}

func (s *StateManager) DepthMask(flag bool) {
	if s.DepthWriteMask == flag {
		return
	}
	gl.DepthMask(flag)
	s.DepthWriteMask = flag
}

func (s *StateManager) PolygonMode(mode uint32) {
	if s.PolygonModeFront == mode && s.PolygonModeBack == mode {
		return
	}
	gl.PolygonMode(gl.FRONT_AND_BACK, mode)
	s.PolygonModeFront = mode
	s.PolygonModeBack = mode
}

func (s *StateManager) UseProgram(program uint32) {
	if s.Program == program {
		return
	}
	gl.UseProgram(program)
	s.Program = program
}

func (s *StateManager) BindVertexArray(array uint32) {
	if s.VertexArray == array {
		return
	}
	gl.BindVertexArray(array)
	s.VertexArray = array
}

// BindTexture2D binds to unit 0
func (s *StateManager) BindTexture2D(texture uint32) {
	if s.Texture2D == texture {
		return
	}
	gl.BindTextureUnit(0, texture)
	s.Texture2D = texture
}

func (s *StateManager) Viewport(x, y, w, h int) {
	if s.ViewportRect == [4]int{x, y, w, h} {
		return
	}
	gl.Viewport(int32(x), int32(y), int32(w), int32(h))
	s.ViewportRect = [4]int{x, y, w, h}
}

func (s *StateManager) Scissor(x, y, w, h int) {
	if s.ScissorRect == [4]int{x, y, w, h} {
		return
	}
	gl.Scissor(int32(x), int32(y), int32(w), int32(h))
	s.ScissorRect = [4]int{x, y, w, h}
}

func (s *StateManager) ClearColor(r, g, b, a float32) {
	if s.ClearColorRGBA == [4]float32{r, g, b, a} {
		return
	}
	gl.ClearColor(r, g, b, a)
	s.ClearColorRGBA = [4]float32{r, g, b, a}
}
