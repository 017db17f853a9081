package main

import (
	"fmt"
	"unsafe"

	"shading-gl/libgl"
	"shading-gl/libscn"

	"github.com/go-gl/gl/v4.5-core/gl"
)

// GpuMesh holds a mesh's vertices together with two index lists: triangles for solid drawing
// and unique edges for wireframe drawing.
type GpuMesh struct {
	Name          string
	vao           libgl.UnboundVertexArray
	vbo           libgl.UnboundBuffer
	triangles     libgl.UnboundBuffer
	edges         libgl.UnboundBuffer
	triangleCount int32
	edgeCount     int32
}

func UploadMesh(mesh *libscn.Mesh) *GpuMesh {
	gm := &GpuMesh{
		Name:          mesh.Name,
		vao:           libgl.NewVertexArray(),
		vbo:           libgl.NewBuffer(),
		triangles:     libgl.NewBuffer(),
		edges:         libgl.NewBuffer(),
		triangleCount: int32(len(mesh.Indices)),
	}

	edges := mesh.Edges()
	gm.edgeCount = int32(len(edges))

	gm.vbo.Allocate(mesh.Vertices, 0)
	gm.triangles.Allocate(mesh.Indices, 0)
	gm.edges.Allocate(edges, 0)

	stride := int(unsafe.Sizeof(libscn.Vertex{}))
	gm.vao.Layout(0, 0, 3, gl.FLOAT, false, int(unsafe.Offsetof(libscn.Vertex{}.Position)))
	gm.vao.Layout(0, 1, 3, gl.FLOAT, false, int(unsafe.Offsetof(libscn.Vertex{}.Normal)))
	gm.vao.BindBuffer(0, gm.vbo, 0, stride)
	gm.vao.BindElementBuffer(gm.triangles)

	gm.vao.SetDebugLabel(fmt.Sprintf("Mesh %v", mesh.Name))
	gm.vbo.SetDebugLabel(fmt.Sprintf("Mesh %v vertices", mesh.Name))
	gm.triangles.SetDebugLabel(fmt.Sprintf("Mesh %v triangles", mesh.Name))
	gm.edges.SetDebugLabel(fmt.Sprintf("Mesh %v edges", mesh.Name))
	return gm
}

// Draw issues one draw call, GL_LINES over the edge list when wireframe is set
func (gm *GpuMesh) Draw(wireframe bool) {
	gm.vao.Bind()
	if wireframe {
		gm.vao.BindElementBuffer(gm.edges)
		gl.DrawElements(gl.LINES, gm.edgeCount, gl.UNSIGNED_INT, nil)
		gm.vao.BindElementBuffer(gm.triangles)
		return
	}
	gl.DrawElements(gl.TRIANGLES, gm.triangleCount, gl.UNSIGNED_INT, nil)
}

func (gm *GpuMesh) Delete() {
	gm.vao.Delete()
	gm.vbo.Delete()
	gm.triangles.Delete()
	gm.edges.Delete()
}

// MeshSet maps every selectable mesh kind to its uploaded geometry
type MeshSet map[libscn.MeshKind]*GpuMesh

func UploadMeshes(meshes map[libscn.MeshKind]*libscn.Mesh) MeshSet {
	set := MeshSet{}
	for kind, mesh := range meshes {
		set[kind] = UploadMesh(mesh)
	}
	return set
}

// Get returns nil for MeshNone
func (set MeshSet) Get(kind libscn.MeshKind) *GpuMesh {
	return set[kind]
}

func (set MeshSet) Delete() {
	for _, gm := range set {
		gm.Delete()
	}
}
