package main

import (
	"fmt"
	"log"

	"shading-gl/libscn"
	"shading-gl/libutil"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/inkyblackness/imgui-go/v4"
)

const (
	minFovyEdit  = 1
	maxFovyEdit  = 179
	minClipEdit  = 0.1
	maxClipEdit  = 20
	lightRange   = 10
	minScale     = 0.1
	minShininess = 1
	maxShininess = 100
	panelWidth   = 320
	panelMargin  = 10
	objectPanelY = 450
)

// Panel edits the scene in place. Initial is what "Reset scene" restores.
type Panel struct {
	Scene   *libscn.Scene
	Initial *libscn.Scene
}

func NewPanel(scene *libscn.Scene) (*Panel, error) {
	initial, err := scene.Clone()
	if err != nil {
		return nil, fmt.Errorf("could not copy initial scene: %w", err)
	}
	return &Panel{Scene: scene, Initial: initial}, nil
}

func (p *Panel) Draw() {
	imgui.SetNextWindowPosV(imgui.Vec2{X: panelMargin, Y: panelMargin}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	imgui.SetNextWindowSizeV(imgui.Vec2{X: panelWidth}, imgui.ConditionFirstUseEver)
	if imgui.Begin("scene") {
		p.drawOptions()
		p.drawCamera()
		p.drawLights()
	}
	imgui.End()

	imgui.SetNextWindowPosV(imgui.Vec2{X: panelMargin, Y: objectPanelY}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	imgui.SetNextWindowSizeV(imgui.Vec2{X: panelWidth}, imgui.ConditionFirstUseEver)
	if imgui.Begin("object") {
		p.drawObject()
	}
	imgui.End()
}

func (p *Panel) drawOptions() {
	opts := &p.Scene.Options
	if !imgui.CollapsingHeaderV("Options", imgui.TreeNodeFlagsDefaultOpen) {
		return
	}
	imgui.Checkbox("wireframe", &opts.Wireframe)
	imgui.Checkbox("draw light positions", &opts.DrawLightPositions)
	if imgui.Button("Reset scene") {
		p.Reset()
	}
}

// Reset restores the startup scene but keeps the aspect ratio of the current window
func (p *Panel) Reset() {
	aspect := p.Scene.Camera.Aspect
	if err := p.Scene.ResetTo(p.Initial); err != nil {
		log.Printf("Could not reset scene: %v\n", err)
	}
	p.Scene.Camera.Aspect = aspect
}

func (p *Panel) drawCamera() {
	cam := &p.Scene.Camera
	imgui.PushID("camera")
	defer imgui.PopID()
	if !imgui.CollapsingHeader("Camera") {
		return
	}

	imgui.SliderFloatV("fovy", &cam.Fovy, minFovyEdit, maxFovyEdit, "%.0f", imgui.SliderFlagsNone)
	imgui.Text(fmt.Sprintf("aspect %.3f", cam.Aspect))

	near, far := cam.Near, cam.Far
	if imgui.SliderFloatV("near", &near, minClipEdit, maxClipEdit, "%.1f", imgui.SliderFlagsNone) {
		cam.SetNear(near)
	}
	if imgui.SliderFloatV("far", &far, minClipEdit, maxClipEdit, "%.1f", imgui.SliderFlagsNone) {
		cam.SetFar(far)
	}

	if imgui.TreeNodef("Eye") {
		readOnlyVec3(cam.Eye)
		imgui.TreePop()
	}
	if imgui.TreeNodef("At") {
		readOnlyVec3(cam.At)
		imgui.TreePop()
	}
	if imgui.TreeNodef("Up") {
		readOnlyVec3(cam.Up)
		imgui.TreePop()
	}
}

func (p *Panel) drawLights() {
	imgui.PushID("lights")
	defer imgui.PopID()
	if !imgui.CollapsingHeader("Lights") {
		return
	}

	for i := range p.Scene.Lights {
		light := &p.Scene.Lights[i]
		if !imgui.TreeNodef("%v light", light.Type) {
			continue
		}
		imgui.PushID(light.Type.String())

		if imgui.TreeNodef("position") {
			for axis, label := range []string{"x", "y", "z"} {
				imgui.SliderFloatV(label, &light.Position[axis], -lightRange, lightRange, "%.1f", imgui.SliderFlagsNone)
			}
			imgui.TreePop()
		}

		colorEdit255("ambient", &light.Ambient)
		colorEdit255("diffuse", &light.Diffuse)
		colorEdit255("specular", &light.Specular)

		directional := light.Directional()
		if imgui.Checkbox("directional", &directional) {
			light.SetDirectional(directional)
		}
		imgui.Checkbox("active", &light.Enabled)

		imgui.PopID()
		imgui.TreePop()
	}
}

func (p *Panel) drawObject() {
	obj := &p.Scene.Object
	opts := &p.Scene.Options

	if imgui.BeginCombo("name", opts.Mesh.String()) {
		for _, kind := range libscn.MeshKinds() {
			if imgui.SelectableV(kind.String(), kind == opts.Mesh, 0, imgui.Vec2{}) {
				opts.Mesh = kind
			}
		}
		imgui.EndCombo()
	}

	imgui.PushID("transform")
	if imgui.CollapsingHeaderV("Transform", imgui.TreeNodeFlagsDefaultOpen) {
		imgui.DragFloat3("position", (*[3]float32)(&obj.Position))

		imgui.Text(fmt.Sprintf("rotation x %.1f", obj.Rotation[0]))
		imgui.DragFloat("rotation y", &obj.Rotation[1])
		imgui.Text(fmt.Sprintf("rotation z %.1f", obj.Rotation[2]))

		if imgui.DragFloat3("scale", (*[3]float32)(&obj.Scale)) {
			for axis := range obj.Scale {
				obj.Scale[axis] = libutil.Max(minScale, obj.Scale[axis])
			}
		}
	}
	imgui.PopID()

	imgui.PushID("material")
	if imgui.CollapsingHeaderV("Material", imgui.TreeNodeFlagsDefaultOpen) {
		if imgui.BeginCombo("shader", opts.Shading.String()) {
			for _, mode := range libscn.ShadingModes() {
				if imgui.SelectableV(mode.String(), mode == opts.Shading, 0, imgui.Vec2{}) {
					opts.Shading = mode
				}
			}
			imgui.EndCombo()
		}
		colorEdit255("Ka", &obj.Material.Ka)
		colorEdit255("Kd", &obj.Material.Kd)
		colorEdit255("Ks", &obj.Material.Ks)
		imgui.SliderFloatV("shininess", &obj.Material.Shininess, minShininess, maxShininess, "%.0f", imgui.SliderFlagsNone)
	}
	imgui.PopID()
}

// colorEdit255 edits a color stored in 0-255
func colorEdit255(label string, c *mgl32.Vec3) bool {
	edit := [3]float32(libutil.Unorm(*c))
	if !imgui.ColorEdit3(label, &edit) {
		return false
	}
	*c = mgl32.Vec3(edit).Mul(255)
	return true
}

func readOnlyVec3(v mgl32.Vec3) {
	imgui.Text(fmt.Sprintf("x %.2f  y %.2f  z %.2f", v[0], v[1], v[2]))
}
