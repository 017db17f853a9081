package libscn

import (
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/exp/slices"
)

type MeshKind int

const (
	MeshNone MeshKind = iota
	MeshBunny
	MeshCow
	MeshCylinder
	MeshTorus
	MeshSphere
	MeshCube
	MeshPyramid
)

var meshNames = []string{"", "Bunny", "Cow", "Cylinder", "Torus", "Sphere", "Cube", "Pyramid"}

// MeshKinds lists the selectable meshes in panel order
func MeshKinds() []MeshKind {
	return []MeshKind{MeshBunny, MeshCow, MeshCylinder, MeshTorus, MeshSphere, MeshCube, MeshPyramid}
}

func (k MeshKind) String() string {
	if k < 0 || int(k) >= len(meshNames) {
		return ""
	}
	return meshNames[k]
}

// ParseMeshKind returns MeshNone for unknown names
func ParseMeshKind(name string) MeshKind {
	i := slices.IndexFunc(meshNames, func(n string) bool {
		return n != "" && strings.EqualFold(n, name)
	})
	if i < 0 {
		return MeshNone
	}
	return MeshKind(i)
}

type ShadingMode int

const (
	ShadingGouraud ShadingMode = iota
	ShadingPhong
)

var shadingNames = []string{"Gouraud", "Phong"}

func ShadingModes() []ShadingMode {
	return []ShadingMode{ShadingGouraud, ShadingPhong}
}

func (m ShadingMode) String() string {
	if m < 0 || int(m) >= len(shadingNames) {
		return ""
	}
	return shadingNames[m]
}

func ParseShadingMode(name string) (ShadingMode, bool) {
	i := slices.IndexFunc(shadingNames, func(n string) bool {
		return strings.EqualFold(n, name)
	})
	if i < 0 {
		return ShadingGouraud, false
	}
	return ShadingMode(i), true
}

type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
}

type Mesh struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32
}

// Edges returns every triangle edge once, as pairs of vertex indices for line drawing
func (mesh *Mesh) Edges() []uint32 {
	type edge struct{ a, b uint32 }
	seen := make(map[edge]struct{}, len(mesh.Indices))
	lines := make([]uint32, 0, len(mesh.Indices)*2)
	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		tri := mesh.Indices[i : i+3]
		for j := 0; j < 3; j++ {
			a, b := tri[j], tri[(j+1)%3]
			if a > b {
				a, b = b, a
			}
			if _, ok := seen[edge{a, b}]; ok {
				continue
			}
			seen[edge{a, b}] = struct{}{}
			lines = append(lines, a, b)
		}
	}
	return lines
}

// ComputeNormals replaces the vertex normals with area weighted face normals
func (mesh *Mesh) ComputeNormals() {
	for i := range mesh.Vertices {
		mesh.Vertices[i].Normal = mgl32.Vec3{}
	}
	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		i0, i1, i2 := mesh.Indices[i], mesh.Indices[i+1], mesh.Indices[i+2]
		p0, p1, p2 := mesh.Vertices[i0].Position, mesh.Vertices[i1].Position, mesh.Vertices[i2].Position
		// not normalized, the length is twice the area
		n := p1.Sub(p0).Cross(p2.Sub(p0))
		mesh.Vertices[i0].Normal = mesh.Vertices[i0].Normal.Add(n)
		mesh.Vertices[i1].Normal = mesh.Vertices[i1].Normal.Add(n)
		mesh.Vertices[i2].Normal = mesh.Vertices[i2].Normal.Add(n)
	}
	for i := range mesh.Vertices {
		n := mesh.Vertices[i].Normal
		if n.LenSqr() > 0 {
			mesh.Vertices[i].Normal = n.Normalize()
		} else {
			mesh.Vertices[i].Normal = mgl32.Vec3{0, 1, 0}
		}
	}
}

func (mesh *Mesh) HasNormals() bool {
	for _, v := range mesh.Vertices {
		if v.Normal.LenSqr() > 1e-6 {
			return true
		}
	}
	return false
}

// FitUnitCube centers the mesh on the origin and scales its largest extent to 1
func (mesh *Mesh) FitUnitCube() {
	if len(mesh.Vertices) == 0 {
		return
	}
	lo, hi := mesh.Vertices[0].Position, mesh.Vertices[0].Position
	for _, v := range mesh.Vertices[1:] {
		for a := 0; a < 3; a++ {
			if v.Position[a] < lo[a] {
				lo[a] = v.Position[a]
			}
			if v.Position[a] > hi[a] {
				hi[a] = v.Position[a]
			}
		}
	}
	size := hi.Sub(lo)
	extent := size[0]
	if size[1] > extent {
		extent = size[1]
	}
	if size[2] > extent {
		extent = size[2]
	}
	if extent == 0 {
		return
	}
	center := lo.Add(size.Mul(0.5))
	for i := range mesh.Vertices {
		mesh.Vertices[i].Position = mesh.Vertices[i].Position.Sub(center).Mul(1 / extent)
	}
}
