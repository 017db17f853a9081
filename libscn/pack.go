package libscn

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Supported mesh file patterns, in order of preference
var meshPatterns = []string{"*.geo.lz4", "*.geo", "*.glb", "*.gltf", "*.obj"}

// MeshPack resolves mesh names to files in one or more asset directories.
// A mesh is named after its file name up to the first dot, lower case.
type MeshPack struct {
	MeshIndex map[string]string
}

func NewMeshPack() *MeshPack {
	return &MeshPack{MeshIndex: map[string]string{}}
}

// AddDir registers every mesh file in root. Later directories override earlier ones.
// A missing directory is not an error.
func (pack *MeshPack) AddDir(root string) error {
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil
	}
	for i := len(meshPatterns) - 1; i >= 0; i-- {
		matches, err := filepath.Glob(filepath.Join(root, meshPatterns[i]))
		if err != nil {
			return err
		}
		for _, match := range matches {
			name, _, _ := strings.Cut(filepath.Base(match), ".")
			pack.MeshIndex[strings.ToLower(name)] = match
		}
	}
	return nil
}

func (pack *MeshPack) LoadMesh(name string) (*Mesh, error) {
	filename, ok := pack.MeshIndex[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("mesh %q is not registered in this pack", name)
	}
	return LoadMeshFile(filename)
}

// LoadMeshFile picks the decoder by file extension. Meshes stored without normals get
// smooth normals.
func LoadMeshFile(filename string) (mesh *Mesh, err error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".glb", ".gltf":
		mesh, err = LoadGLTF(filename)
	case ".obj":
		mesh, err = LoadOBJ(filename)
	case ".geo", ".lz4":
		mesh, err = loadGeoFile(filename)
	default:
		return nil, fmt.Errorf("unsupported mesh file extension %q", ext)
	}
	if err != nil {
		return nil, err
	}
	if !mesh.HasNormals() {
		mesh.ComputeNormals()
	}
	return mesh, nil
}

func loadGeoFile(filename string) (*Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open mesh file %q: %w", filename, err)
	}
	defer file.Close()

	src, err := OpenMeshStream(file)
	if err != nil {
		return nil, fmt.Errorf("could not open mesh file %q: %w", filename, err)
	}
	mesh, err := DecodeMesh(src)
	if err != nil {
		return nil, fmt.Errorf("could not decode mesh file %q: %w", filename, err)
	}
	return mesh, nil
}

// Load returns the mesh for a selector value. Files in the pack take precedence over generated meshes.
func (pack *MeshPack) Load(kind MeshKind) (*Mesh, error) {
	if kind == MeshNone {
		return nil, fmt.Errorf("mesh kind %d has no geometry", kind)
	}
	if _, ok := pack.MeshIndex[strings.ToLower(kind.String())]; ok {
		return pack.LoadMesh(kind.String())
	}
	if mesh, ok := GenerateMesh(kind); ok {
		return mesh, nil
	}
	return nil, fmt.Errorf("mesh %q is not registered in this pack", kind)
}

// LoadAll loads every selectable mesh; meshes that cannot be loaded are replaced by the sphere.
func (pack *MeshPack) LoadAll() map[MeshKind]*Mesh {
	meshes := make(map[MeshKind]*Mesh, len(MeshKinds()))
	for _, kind := range MeshKinds() {
		mesh, err := pack.Load(kind)
		if err != nil {
			log.Printf("Using sphere for %v: %v\n", kind, err)
			mesh = GenerateSphere(24, 48)
			mesh.Name = strings.ToLower(kind.String())
		}
		meshes[kind] = mesh
	}
	return meshes
}
