package main

import (
	"fmt"
	"log"

	"shading-gl/libgl"
	"shading-gl/libscn"
	"shading-gl/libutil"

	"github.com/go-gl/gl/v4.5-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const markerScale = 0.2

var markerMaterial = libscn.Material{Ka: mgl32.Vec3{255, 255, 255}, Shininess: 1}

type Renderer struct {
	Programs map[libscn.ShadingMode]libgl.ShaderProgram
	Meshes   MeshSet
	stack    *libutil.MatrixStack
	// uniform names per light slot
	lightUniforms [libscn.MaxLights]lightUniformNames
}

type lightUniformNames struct {
	typ, position, ia, id, is string
}

func NewRenderer(programs map[libscn.ShadingMode]libgl.ShaderProgram, meshes MeshSet) *Renderer {
	r := &Renderer{
		Programs: programs,
		Meshes:   meshes,
		stack:    libutil.NewMatrixStack(),
	}
	for i := range r.lightUniforms {
		r.lightUniforms[i] = lightUniformNames{
			typ:      fmt.Sprintf("u_lightType[%d]", i),
			position: fmt.Sprintf("u_light[%d].position", i),
			ia:       fmt.Sprintf("u_light[%d].Ia", i),
			id:       fmt.Sprintf("u_light[%d].Id", i),
			is:       fmt.Sprintf("u_light[%d].Is", i),
		}
	}
	return r
}

func (r *Renderer) Draw(scene *libscn.Scene) {
	libgl.PushDebugGroup("Draw Scene")
	defer libgl.PopDebugGroup()

	libgl.State.SetEnabled(libgl.DepthTest, libgl.CullFace)
	libgl.State.CullBack()
	libgl.State.DepthFunc(libgl.DepthFuncLess)
	libgl.State.DepthMask(true)
	libgl.State.PolygonMode(gl.FILL)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	prog := r.Programs[scene.Options.Shading]
	if prog == nil {
		return
	}
	prog.Use()

	view := scene.Camera.ViewMatrix()
	prog.SetUniform("mProjection", scene.Camera.ProjectionMatrix())
	r.uploadLighting(prog, scene.Lighting(view))

	r.stack.Reset()
	r.stack.Load(view)

	if scene.Options.DrawLightPositions {
		r.drawLightMarkers(prog, scene)
	}

	libgl.PushDebugGroup("Object")
	r.stack.Push()
	r.multModel(&scene.Object, true)
	r.drawMesh(prog, r.Meshes.Get(scene.Options.Mesh), &scene.Object.Material, scene.Options.Wireframe)
	r.stack.Pop()
	libgl.PopDebugGroup()

	libgl.PushDebugGroup("Ground")
	r.stack.Push()
	r.multModel(&scene.Ground, false)
	r.drawMesh(prog, r.Meshes.Get(libscn.MeshCube), &scene.Ground.Material, false)
	r.stack.Pop()
	libgl.PopDebugGroup()

	if r.stack.Depth() != 1 {
		log.Panicf("matrix stack has depth %d after drawing the scene", r.stack.Depth())
	}
}

func (r *Renderer) uploadLighting(prog libgl.ShaderProgram, block libscn.LightingUniforms) {
	prog.SetUniform("u_num_lights", block.NumLights)
	for i, light := range block.Lights {
		names := r.lightUniforms[i]
		prog.SetUniform(names.typ, light.Type)
		if light.Type == libscn.LightTypeDisabled {
			continue
		}
		prog.SetUniform(names.position, light.Position)
		prog.SetUniform(names.ia, light.Ia)
		prog.SetUniform(names.id, light.Id)
		prog.SetUniform(names.is, light.Is)
	}
}

// drawLightMarkers expects the view matrix on top of the stack
func (r *Renderer) drawLightMarkers(prog libgl.ShaderProgram, scene *libscn.Scene) {
	sphere := r.Meshes.Get(libscn.MeshSphere)
	libgl.PushDebugGroup("Light Markers")
	defer libgl.PopDebugGroup()

	for i := range scene.Lights {
		light := &scene.Lights[i]
		if !light.Enabled {
			continue
		}
		r.stack.Push()
		switch light.Type {
		case libscn.LightCamera:
			r.stack.LoadIdentity()
		case libscn.LightObject:
			r.stack.Mult(scene.Object.Frame())
		}
		r.stack.MultTranslation(light.Position.Vec3())
		r.stack.MultScale(mgl32.Vec3{markerScale, markerScale, markerScale})

		mat := markerMaterial
		mat.Kd = light.Diffuse
		r.drawMesh(prog, sphere, &mat, false)
		r.stack.Pop()
	}
}

func (r *Renderer) multModel(obj *libscn.Object, rotate bool) {
	r.stack.MultTranslation(obj.Position)
	r.stack.MultScale(obj.Scale)
	if rotate {
		r.stack.MultRotationY(obj.Rotation[1])
		r.stack.MultRotationX(obj.Rotation[0])
		r.stack.MultRotationZ(obj.Rotation[2])
	}
}

// drawMesh draws with the top of the stack as model-view matrix. The material is in 0-255.
func (r *Renderer) drawMesh(prog libgl.ShaderProgram, mesh *GpuMesh, mat *libscn.Material, wireframe bool) {
	if mesh == nil {
		return
	}
	modelView := r.stack.Top()
	prog.SetUniform("mModelView", modelView)
	prog.SetUniform("mNormals", modelView.Inv().Transpose())
	prog.SetUniform("u_material.Ka", libutil.Unorm(mat.Ka))
	prog.SetUniform("u_material.Kd", libutil.Unorm(mat.Kd))
	prog.SetUniform("u_material.Ks", libutil.Unorm(mat.Ks))
	prog.SetUniform("u_material.shininess", mat.Shininess)
	mesh.Draw(wireframe)
}
