package main

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"shading-gl/libgl"
	"shading-gl/libscn"
)

//go:embed assets/shaders
var embeddedAssets embed.FS

const (
	ProgramGouraud = "gouraud"
	ProgramPhong   = "phong"
	ProgramImGui   = "imgui"
)

// ShaderLibrary loads <name>.vert and <name>.frag from either the embedded assets or a directory on disk
type ShaderLibrary struct {
	FS      fs.FS
	Defines map[string]string
}

func NewShaderLibrary(dir string) (*ShaderLibrary, error) {
	lib := &ShaderLibrary{
		Defines: map[string]string{
			"MAX_LIGHTS": strconv.Itoa(libscn.MaxLights),
		},
	}
	if dir != "" {
		lib.FS = os.DirFS(dir)
		return lib, nil
	}
	sub, err := fs.Sub(embeddedAssets, "assets/shaders")
	if err != nil {
		return nil, err
	}
	lib.FS = sub
	return lib, nil
}

func (lib *ShaderLibrary) read(name string) (string, error) {
	data, err := fs.ReadFile(lib.FS, name)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (lib *ShaderLibrary) Source(name string) (libgl.ShaderSource, error) {
	src := libgl.ShaderSource{}
	var err error
	for _, stage := range []struct {
		ext string
		dst *string
	}{{".vert", &src.Vertex}, {".frag", &src.Fragment}} {
		filename := name + stage.ext
		*stage.dst, err = lib.read(filename)
		if err != nil {
			return src, fmt.Errorf("could not read shader %q: %w", filename, err)
		}
		*stage.dst, err = libgl.ResolveIncludes(*stage.dst, lib.read)
		if err != nil {
			return src, fmt.Errorf("could not preprocess shader %q: %w", filename, err)
		}
	}
	return src, nil
}

func (lib *ShaderLibrary) Load(name string) (libgl.ShaderProgram, error) {
	src, err := lib.Source(name)
	if err != nil {
		return nil, err
	}
	prog, err := libgl.NewProgram(name, src, lib.Defines)
	if err != nil {
		return nil, fmt.Errorf("could not build %v program: %w", name, err)
	}
	return prog, nil
}
