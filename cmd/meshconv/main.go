package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"shading-gl/libscn"
)

var args struct {
	in        string
	out       string
	name      string
	normalize bool
	quiet     bool
}

func printUsage() {
	exe := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage: %s -in <file> [arguments] [more input files]\n\n", exe)
	fmt.Fprintf(os.Stderr, "Converts Wavefront OBJ and glTF meshes to lz4 compressed .geo files.\n")
	fmt.Fprintf(os.Stderr, "The arguments are:\n\n")
	flag.PrintDefaults()
	os.Exit(1)
}

func main() {
	flag.StringVar(&args.in, "in", args.in, "the input mesh file")
	flag.StringVar(&args.in, "i", args.in, "shorthand for in")
	flag.StringVar(&args.out, "out", args.out, "the output file, defaults to the input name with .geo.lz4")
	flag.StringVar(&args.out, "o", args.out, "shorthand for out")
	flag.StringVar(&args.name, "name", args.name, "the mesh name, only valid for a single input")
	flag.BoolVar(&args.normalize, "normalize", args.normalize, "center the mesh and scale it to the unit cube")
	flag.BoolVar(&args.quiet, "quiet", args.quiet, "disables informational logging")
	flag.BoolVar(&args.quiet, "q", args.quiet, "shorthand for quiet")
	flag.Usage = printUsage
	flag.Parse()

	inputs := flag.Args()
	if args.in != "" {
		inputs = append([]string{args.in}, inputs...)
	}
	if len(inputs) == 0 {
		printUsage()
	}
	if args.name != "" && len(inputs) > 1 {
		harderr(fmt.Errorf("-name cannot be used with %d input files", len(inputs)))
	}

	meshes := make([]*libscn.Mesh, 0, len(inputs))
	for _, file := range inputs {
		mesh, err := libscn.LoadMeshFile(file)
		harderr(err)
		if args.name != "" {
			mesh.Name = args.name
		}
		if args.normalize {
			mesh.FitUnitCube()
		}
		info("Read %v: %d vertices, %d triangles\n", file, len(mesh.Vertices), len(mesh.Indices)/3)
		meshes = append(meshes, mesh)
	}

	out := args.out
	if out == "" {
		out = outputName(inputs[0])
	}
	err := writeMeshes(out, meshes)
	harderr(err)
	info("Wrote %v\n", out)
}

// outputName replaces every extension of the file, bunny.tar.obj becomes bunny.geo.lz4
func outputName(file string) string {
	dir, base := filepath.Split(file)
	if i := strings.IndexByte(base, '.'); i > 0 {
		base = base[:i]
	}
	return filepath.Join(dir, base+".geo.lz4")
}

func writeMeshes(filename string, meshes []*libscn.Mesh) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := libscn.EncodeMeshesLZ4(file, meshes...); err != nil {
		file.Close()
		return fmt.Errorf("could not encode %v: %w", filename, err)
	}
	return file.Close()
}

func info(format string, a ...any) {
	if args.quiet {
		return
	}
	fmt.Fprintf(os.Stdout, format, a...)
}

func harderr(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
