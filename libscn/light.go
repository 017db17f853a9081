package libscn

import (
	"fmt"
	"strings"

	"shading-gl/libutil"

	"github.com/go-gl/mathgl/mgl32"
)

type LightType int

const (
	LightWorld LightType = iota
	LightObject
	LightCamera
)

var lightTypeNames = [MaxLights]string{"world", "object", "camera"}

func (t LightType) String() string {
	if t < 0 || int(t) >= len(lightTypeNames) {
		return fmt.Sprintf("LightType(%d)", int(t))
	}
	return lightTypeNames[t]
}

func ParseLightType(name string) (LightType, error) {
	for i, n := range lightTypeNames {
		if strings.EqualFold(n, name) {
			return LightType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown light type %q", name)
}

type Light struct {
	Type LightType
	// w = 0 for directional lights, w = 1 for point lights
	Position mgl32.Vec4
	// 0-255
	Ambient, Diffuse, Specular mgl32.Vec3
	Enabled                    bool
}

func (l *Light) Directional() bool {
	return l.Position[3] == 0
}

func (l *Light) SetDirectional(directional bool) {
	if directional {
		l.Position[3] = 0
	} else {
		l.Position[3] = 1
	}
}

// Values of u_lightType
const (
	LightTypeDisabled    int32 = -1
	LightTypeDirectional int32 = 0
	LightTypePositional  int32 = 1
	// Reserved by the shaders, never uploaded
	LightTypeDisabledPositional int32 = 2
)

func (l *Light) ShaderType() int32 {
	if !l.Enabled {
		return LightTypeDisabled
	}
	if l.Directional() {
		return LightTypeDirectional
	}
	return LightTypePositional
}

type LightUniform struct {
	Type int32
	// view space
	Position   mgl32.Vec4
	Ia, Id, Is mgl32.Vec3
}

type LightingUniforms struct {
	NumLights int32
	Lights    [MaxLights]LightUniform
}

// Lighting encodes the light slots the way the shaders expect them.
// Disabled slots only carry their type.
func (s *Scene) Lighting(view mgl32.Mat4) LightingUniforms {
	block := LightingUniforms{
		NumLights: int32(s.ActiveLights()),
	}
	for i := range s.Lights {
		light := &s.Lights[i]
		block.Lights[i].Type = light.ShaderType()
		if !light.Enabled {
			continue
		}
		block.Lights[i].Position = s.LightFrame(light.Type, view).Mul4x1(light.Position)
		block.Lights[i].Ia = libutil.Unorm(light.Ambient)
		block.Lights[i].Id = libutil.Unorm(light.Diffuse)
		block.Lights[i].Is = libutil.Unorm(light.Specular)
	}
	return block
}
