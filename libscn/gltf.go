package libscn

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// LoadGLTF merges the triangle primitives of every mesh in a .gltf or .glb file into one mesh.
// Node transforms are ignored.
func LoadGLTF(filename string) (*Mesh, error) {
	doc, err := gltf.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open gltf file %q: %w", filename, err)
	}

	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	mesh := &Mesh{Name: name}
	hasNormals := true

	for _, gm := range doc.Meshes {
		for pi, prim := range gm.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles {
				continue
			}
			withNormals, err := appendPrimitive(doc, prim, mesh)
			if err != nil {
				return nil, fmt.Errorf("could not read primitive %d of mesh %q in %q: %w", pi, gm.Name, filename, err)
			}
			hasNormals = hasNormals && withNormals
		}
	}

	if len(mesh.Indices) == 0 {
		return nil, fmt.Errorf("gltf file %q contains no triangles", filename)
	}
	if !hasNormals {
		mesh.ComputeNormals()
	}
	return mesh, nil
}

func appendPrimitive(doc *gltf.Document, prim *gltf.Primitive, mesh *Mesh) (hasNormals bool, err error) {
	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return false, fmt.Errorf("no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return false, fmt.Errorf("positions: %w", err)
	}

	var normals [][3]float32
	if idx, ok := prim.Attributes[gltf.NORMAL]; ok {
		normals, err = modeler.ReadNormal(doc, doc.Accessors[idx], nil)
		if err != nil {
			return false, fmt.Errorf("normals: %w", err)
		}
	}
	hasNormals = len(normals) == len(positions)

	base := uint32(len(mesh.Vertices))
	for i, p := range positions {
		v := Vertex{Position: mgl32.Vec3(p)}
		if hasNormals {
			v.Normal = mgl32.Vec3(normals[i])
		}
		mesh.Vertices = append(mesh.Vertices, v)
	}

	if prim.Indices == nil {
		for i := 0; i+2 < len(positions); i += 3 {
			mesh.Indices = append(mesh.Indices, base+uint32(i), base+uint32(i+1), base+uint32(i+2))
		}
		return hasNormals, nil
	}

	indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
	if err != nil {
		return false, fmt.Errorf("indices: %w", err)
	}
	for i := 0; i+2 < len(indices); i += 3 {
		mesh.Indices = append(mesh.Indices, base+indices[i], base+indices[i+1], base+indices[i+2])
	}
	return hasNormals, nil
}
