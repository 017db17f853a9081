package libscn

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

type objRef struct {
	v, vn int
}

// DecodeOBJ reads the v, vn and f statements of a Wavefront OBJ stream into a single mesh.
// Polygons are fan triangulated; groups and materials are ignored.
func DecodeOBJ(r io.Reader, name string) (*Mesh, error) {
	var positions, normals []mgl32.Vec3
	mesh := &Mesh{Name: name}
	lookup := map[objRef]uint32{}
	hasNormals := true

	resolve := func(tok string, line int) (uint32, error) {
		ref, err := parseOBJRef(tok, len(positions), len(normals))
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", line, err)
		}
		if idx, ok := lookup[ref]; ok {
			return idx, nil
		}
		v := Vertex{Position: positions[ref.v]}
		if ref.vn >= 0 {
			v.Normal = normals[ref.vn]
		} else {
			hasNormals = false
		}
		idx := uint32(len(mesh.Vertices))
		mesh.Vertices = append(mesh.Vertices, v)
		lookup[ref] = idx
		return idx, nil
	}

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v", "vn":
			vec, err := parseOBJVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			if fields[0] == "v" {
				positions = append(positions, vec)
			} else {
				normals = append(normals, vec)
			}
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices", line)
			}
			first, err := resolve(fields[1], line)
			if err != nil {
				return nil, err
			}
			prev, err := resolve(fields[2], line)
			if err != nil {
				return nil, err
			}
			for _, tok := range fields[3:] {
				next, err := resolve(tok, line)
				if err != nil {
					return nil, err
				}
				mesh.Indices = append(mesh.Indices, first, prev, next)
				prev = next
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not scan obj: %w", err)
	}
	if len(mesh.Indices) == 0 {
		return nil, fmt.Errorf("obj %q contains no faces", name)
	}

	if !hasNormals {
		mesh.ComputeNormals()
	}
	return mesh, nil
}

func LoadOBJ(filename string) (*Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open obj file %q: %w", filename, err)
	}
	defer file.Close()

	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	mesh, err := DecodeOBJ(file, name)
	if err != nil {
		return nil, fmt.Errorf("could not decode obj file %q: %w", filename, err)
	}
	return mesh, nil
}

func parseOBJVec3(fields []string) (vec mgl32.Vec3, err error) {
	if len(fields) < 3 {
		return vec, fmt.Errorf("expected 3 components, got %d", len(fields))
	}
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return vec, err
		}
		vec[i] = float32(f)
	}
	return vec, nil
}

// parseOBJRef parses "v", "v/vt", "v//vn" or "v/vt/vn" into 0-based indices; vn is -1 when absent.
// Negative indices count back from the last element read so far.
func parseOBJRef(tok string, numPositions, numNormals int) (ref objRef, err error) {
	parts := strings.Split(tok, "/")
	ref.v, err = resolveOBJIndex(parts[0], numPositions)
	if err != nil {
		return ref, fmt.Errorf("vertex %q: %w", tok, err)
	}
	ref.vn = -1
	if len(parts) > 2 && parts[2] != "" {
		ref.vn, err = resolveOBJIndex(parts[2], numNormals)
		if err != nil {
			return ref, fmt.Errorf("normal %q: %w", tok, err)
		}
	}
	return ref, nil
}

func resolveOBJIndex(s string, count int) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		n = count + n
	} else {
		n--
	}
	if n < 0 || n >= count {
		return 0, fmt.Errorf("index out of range [1, %d]", count)
	}
	return n, nil
}
