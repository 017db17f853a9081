package libscn

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"shading-gl/libio"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pierrec/lz4/v4"
)

const MagicNumberGEO = 0xc9dae18c
const MagicNumberLZ4 = 0x184d2204

// Meshes with fewer indices store them as uint16
const shortIndexLimit = 0xffff

// Follows the magic number
type meshHeader struct {
	NameLength  uint32
	VertexCount uint32
	IndexCount  uint32
}

// Texture coordinates are kept in the file layout but unused by the shading models
type fileVertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	Uv       mgl32.Vec2
}

func asBinaryReader(r io.Reader) *libio.BinaryReader {
	if br, ok := r.(*libio.BinaryReader); ok {
		return br
	}
	return libio.NewBinaryReader(r)
}

func DecodeMesh(r io.Reader) (mesh *Mesh, err error) {
	br := asBinaryReader(r)
	defer func() {
		if br.Err != nil && err != nil {
			err = fmt.Errorf("%v: %w", err, br.Err)
		}
	}()

	var check uint32
	if !br.ReadUInt32(&check) {
		return nil, fmt.Errorf("expected mesh header; byte 0x%08x", br.LastIndex)
	}
	if check != MagicNumberGEO {
		return nil, fmt.Errorf("mesh header is corrupt; byte 0x%08x", br.LastIndex)
	}
	header := meshHeader{}
	if !br.ReadRef(&header) {
		return nil, fmt.Errorf("expected mesh header; byte 0x%08x", br.LastIndex)
	}
	if header.IndexCount%3 != 0 {
		return nil, fmt.Errorf("mesh index count %d is not a multiple of 3; byte 0x%08x", header.IndexCount, br.LastIndex)
	}

	name := make([]byte, header.NameLength)
	if !br.ReadRef(name) {
		return nil, fmt.Errorf("expected %d bytes for mesh name; byte 0x%08x", header.NameLength, br.LastIndex)
	}

	fileVertices := make([]fileVertex, header.VertexCount)
	if !br.ReadRef(fileVertices) {
		return nil, fmt.Errorf("expected %d mesh vertices; name %q, byte 0x%08x", header.VertexCount, name, br.LastIndex)
	}

	indices := make([]uint32, header.IndexCount)
	if header.IndexCount < shortIndexLimit {
		var short uint16
		for i := range indices {
			if !br.ReadUInt16(&short) {
				return nil, fmt.Errorf("expected %d mesh indices; name %q, byte 0x%08x", header.IndexCount, name, br.LastIndex)
			}
			indices[i] = uint32(short)
		}
		// indices are 4 byte aligned
		if header.IndexCount%2 == 1 && !br.Skip(2) {
			return nil, fmt.Errorf("expected index padding; name %q, byte 0x%08x", name, br.LastIndex)
		}
	} else if !br.ReadRef(indices) {
		return nil, fmt.Errorf("expected %d mesh indices; name %q, byte 0x%08x", header.IndexCount, name, br.LastIndex)
	}

	for i, idx := range indices {
		if idx >= header.VertexCount {
			return nil, fmt.Errorf("mesh index %d at %d is out of range; name %q", idx, i, name)
		}
	}

	mesh = &Mesh{
		Name:     string(name),
		Vertices: make([]Vertex, len(fileVertices)),
		Indices:  indices,
	}
	for i, v := range fileVertices {
		mesh.Vertices[i] = Vertex{Position: v.Position, Normal: v.Normal}
	}
	return mesh, nil
}

// DecodeMeshes reads meshes until the end of the stream
func DecodeMeshes(r io.Reader) ([]*Mesh, error) {
	buf := bufio.NewReader(r)
	br := libio.NewBinaryReader(buf)
	var meshes []*Mesh
	for {
		if _, err := buf.Peek(1); errors.Is(err, io.EOF) {
			return meshes, nil
		}
		mesh, err := DecodeMesh(br)
		if err != nil {
			return meshes, fmt.Errorf("could not decode mesh %d: %w", len(meshes), err)
		}
		meshes = append(meshes, mesh)
	}
}

func EncodeMesh(w io.Writer, mesh *Mesh) error {
	if len(mesh.Indices)%3 != 0 {
		return fmt.Errorf("mesh %q has %d indices, not a multiple of 3", mesh.Name, len(mesh.Indices))
	}
	shortIndices := len(mesh.Indices) < shortIndexLimit
	if shortIndices && len(mesh.Vertices) > 0x10000 {
		return fmt.Errorf("mesh %q has too many vertices (%d) for its index count (%d)", mesh.Name, len(mesh.Vertices), len(mesh.Indices))
	}

	bw := libio.NewBinaryWriter(w)
	bw.WriteUInt32(MagicNumberGEO)
	bw.WriteRef(meshHeader{
		NameLength:  uint32(len(mesh.Name)),
		VertexCount: uint32(len(mesh.Vertices)),
		IndexCount:  uint32(len(mesh.Indices)),
	})
	bw.WriteBytes([]byte(mesh.Name))

	fileVertices := make([]fileVertex, len(mesh.Vertices))
	for i, v := range mesh.Vertices {
		fileVertices[i] = fileVertex{Position: v.Position, Normal: v.Normal}
	}
	bw.WriteRef(fileVertices)

	if shortIndices {
		for _, v := range mesh.Indices {
			bw.WriteUInt16(uint16(v))
		}
		if len(mesh.Indices)%2 == 1 {
			bw.Pad(2)
		}
	} else {
		bw.WriteRef(mesh.Indices)
	}

	if bw.Err != nil {
		return fmt.Errorf("could not encode mesh %q: %w", mesh.Name, bw.Err)
	}
	return nil
}

// EncodeMeshesLZ4 writes the meshes back to back into a single lz4 frame
func EncodeMeshesLZ4(w io.Writer, meshes ...*Mesh) error {
	zw := lz4.NewWriter(w)
	for _, mesh := range meshes {
		if err := EncodeMesh(zw, mesh); err != nil {
			zw.Close()
			return err
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("could not finish lz4 frame: %w", err)
	}
	return nil
}

// OpenMeshStream detects an lz4 frame by its magic number and returns a reader of the raw mesh data
func OpenMeshStream(r io.Reader) (io.Reader, error) {
	buf := bufio.NewReader(r)
	head, err := buf.Peek(4)
	if err != nil {
		return nil, fmt.Errorf("could not read magic number: %w", err)
	}
	switch magic := binary.LittleEndian.Uint32(head); magic {
	case MagicNumberLZ4:
		return lz4.NewReader(buf), nil
	case MagicNumberGEO:
		return buf, nil
	default:
		return nil, fmt.Errorf("unknown magic number 0x%08x", magic)
	}
}
