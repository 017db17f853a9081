package libscn

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

//go:embed default_scene.yaml
var defaultSceneYAML []byte

type SceneDesc struct {
	Camera  CameraDesc   `yaml:"camera"`
	Lights  []LightDesc  `yaml:"lights"`
	Objects []ObjectDesc `yaml:"objects"`
	Options OptionsDesc  `yaml:"options"`
}

type CameraDesc struct {
	Eye    [3]float32 `yaml:"eye"`
	At     [3]float32 `yaml:"at"`
	Up     [3]float32 `yaml:"up"`
	Fovy   float32    `yaml:"fovy"`
	Aspect float32    `yaml:"aspect"`
	Near   float32    `yaml:"near"`
	Far    float32    `yaml:"far"`
}

type LightDesc struct {
	Type     string     `yaml:"type"`
	Position [4]float32 `yaml:"position"`
	Ambient  [3]float32 `yaml:"ambient"`
	Diffuse  [3]float32 `yaml:"diffuse"`
	Specular [3]float32 `yaml:"specular"`
	Enabled  bool       `yaml:"enabled"`
}

type ObjectDesc struct {
	Name     string       `yaml:"name"`
	Position [3]float32   `yaml:"position"`
	Scale    [3]float32   `yaml:"scale"`
	Rotation [3]float32   `yaml:"rotation"`
	Material MaterialDesc `yaml:"material"`
}

type MaterialDesc struct {
	Ka        [3]float32 `yaml:"ka"`
	Kd        [3]float32 `yaml:"kd"`
	Ks        [3]float32 `yaml:"ks"`
	Shininess float32    `yaml:"shininess"`
}

type OptionsDesc struct {
	Wireframe          bool   `yaml:"wireframe"`
	DrawLightPositions bool   `yaml:"drawLightPositions"`
	Mesh               string `yaml:"mesh"`
	Shading            string `yaml:"shading"`
}

func DefaultScene() *Scene {
	scene, err := DecodeScene(bytes.NewReader(defaultSceneYAML))
	if err != nil {
		panic(fmt.Sprintf("embedded scene is invalid: %v", err))
	}
	return scene
}

func LoadSceneFile(filename string) (*Scene, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open scene file %q: %w", filename, err)
	}
	defer file.Close()

	scene, err := DecodeScene(file)
	if err != nil {
		return nil, fmt.Errorf("could not load scene file %q: %w", filename, err)
	}
	return scene, nil
}

func DecodeScene(r io.Reader) (*Scene, error) {
	desc := SceneDesc{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&desc); err != nil {
		return nil, fmt.Errorf("could not unmarshal scene: %w", err)
	}
	return desc.Build()
}

// Build validates the description and converts it to a scene.
// Every light type and both the "Object" and "Ground" objects must be present exactly once.
func (desc *SceneDesc) Build() (*Scene, error) {
	scene := &Scene{}

	cd := desc.Camera
	scene.Camera = Camera{
		Eye:    cd.Eye,
		At:     cd.At,
		Up:     cd.Up,
		Fovy:   cd.Fovy,
		Aspect: cd.Aspect,
		Near:   cd.Near,
		Far:    cd.Far,
	}
	if scene.Camera.Aspect <= 0 {
		scene.Camera.Aspect = 1
	}
	scene.Camera.SetFar(cd.Far)
	scene.Camera.SetNear(cd.Near)

	var seen [MaxLights]bool
	for i, ld := range desc.Lights {
		t, err := ParseLightType(ld.Type)
		if err != nil {
			return nil, fmt.Errorf("light %d: %w", i, err)
		}
		if seen[t] {
			return nil, fmt.Errorf("light %d: duplicate %v light", i, t)
		}
		seen[t] = true
		scene.Lights[t] = Light{
			Type:     t,
			Position: ld.Position,
			Ambient:  ld.Ambient,
			Diffuse:  ld.Diffuse,
			Specular: ld.Specular,
			Enabled:  ld.Enabled,
		}
	}
	for t, ok := range seen {
		if !ok {
			return nil, fmt.Errorf("missing %v light", LightType(t))
		}
	}

	var haveObject, haveGround bool
	for _, od := range desc.Objects {
		obj := od.build()
		switch {
		case strings.EqualFold(od.Name, "object") && !haveObject:
			scene.Object, haveObject = obj, true
		case strings.EqualFold(od.Name, "ground") && !haveGround:
			scene.Ground, haveGround = obj, true
		default:
			return nil, fmt.Errorf("unexpected object %q", od.Name)
		}
	}
	if !haveObject || !haveGround {
		return nil, fmt.Errorf("scene needs an \"Object\" and a \"Ground\"")
	}

	scene.Options = Options{
		Wireframe:          desc.Options.Wireframe,
		DrawLightPositions: desc.Options.DrawLightPositions,
		Mesh:               ParseMeshKind(desc.Options.Mesh),
	}
	if desc.Options.Shading != "" {
		shading, ok := ParseShadingMode(desc.Options.Shading)
		if !ok {
			return nil, fmt.Errorf("unknown shading mode %q", desc.Options.Shading)
		}
		scene.Options.Shading = shading
	}

	return scene, nil
}

func (od *ObjectDesc) build() Object {
	scale := mgl32.Vec3(od.Scale)
	if scale == (mgl32.Vec3{}) {
		scale = mgl32.Vec3{1, 1, 1}
	}
	return Object{
		Name:     od.Name,
		Position: od.Position,
		Scale:    scale,
		Rotation: od.Rotation,
		Material: Material{
			Ka:        od.Material.Ka,
			Kd:        od.Material.Kd,
			Ks:        od.Material.Ks,
			Shininess: od.Material.Shininess,
		},
	}
}
