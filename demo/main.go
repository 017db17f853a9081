package main

import (
	"flag"
	"log"
	"runtime"
	"unsafe"

	"shading-gl/libgl"
	"shading-gl/libscn"
	"shading-gl/libutil"

	"github.com/go-gl/gl/v4.5-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

var Arguments struct {
	Scene                      string
	Assets                     string
	Shaders                    string
	Width, Height              int
	EnableCompatibilityProfile bool
	DisableShaderCache         bool
}

var shadingPrograms = map[libscn.ShadingMode]string{
	libscn.ShadingGouraud: ProgramGouraud,
	libscn.ShadingPhong:   ProgramPhong,
}

func main() {
	flag.StringVar(&Arguments.Scene, "scene", "", "YAML scene file, the built in scene is used when empty")
	flag.StringVar(&Arguments.Assets, "assets", "assets/models", "directory with mesh files, bunny and cow are drawn as spheres unless bunny.* and cow.* exist here (see cmd/meshconv)")
	flag.StringVar(&Arguments.Shaders, "shaders", "", "load shaders from this directory and reload them on change")
	flag.IntVar(&Arguments.Width, "width", 1280, "")
	flag.IntVar(&Arguments.Height, "height", 720, "")
	flag.BoolVar(&Arguments.EnableCompatibilityProfile, "enable-compatibility-profile", Arguments.EnableCompatibilityProfile, "")
	flag.BoolVar(&Arguments.DisableShaderCache, "disable-shader-cache", Arguments.DisableShaderCache, "")
	flag.Parse()

	libgl.ShaderCache.Disabled = Arguments.DisableShaderCache

	scene := libscn.DefaultScene()
	if Arguments.Scene != "" {
		var err error
		scene, err = libscn.LoadSceneFile(Arguments.Scene)
		check(err)
	}

	runtime.LockOSThread()
	err := glfw.Init()
	check(err)
	defer glfw.Terminate()

	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 5)
	glfw.WindowHint(glfw.OpenGLDebugContext, glfw.True)
	glfw.WindowHint(glfw.Samples, 4)
	if Arguments.EnableCompatibilityProfile {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCompatProfile)
	} else {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	}
	ctx, err := glfw.CreateWindow(Arguments.Width, Arguments.Height, "Gouraud vs Phong", nil, nil)
	check(err)
	ctx.MakeContextCurrent()
	glfw.SwapInterval(1)

	err = gl.InitWithProcAddrFunc(func(name string) unsafe.Pointer {
		addr := glfw.GetProcAddress(name)
		if addr == nil {
			return unsafe.Pointer(libutil.InvalidAddress)
		}
		return addr
	})
	check(err)

	libgl.EnableDebugOutput()
	libgl.State = libgl.NewStateManager()

	library, err := NewShaderLibrary(Arguments.Shaders)
	check(err)
	programs := map[libscn.ShadingMode]libgl.ShaderProgram{}
	for mode, name := range shadingPrograms {
		programs[mode], err = library.Load(name)
		check(err)
	}
	imguiShader, err := library.Load(ProgramImGui)
	check(err)

	var watcher *ShaderWatcher
	if Arguments.Shaders != "" {
		watcher, err = NewShaderWatcher(Arguments.Shaders)
		if err != nil {
			log.Printf("Could not watch shaders in %v: %v\n", Arguments.Shaders, err)
		} else {
			defer watcher.Close()
		}
	}

	pack := libscn.NewMeshPack()
	err = pack.AddDir(Arguments.Assets)
	check(err)
	meshes := UploadMeshes(pack.LoadAll())
	defer meshes.Delete()

	panel, err := NewPanel(scene)
	check(err)

	Input = NewInputManager(ctx)
	gui := NewImGui(ctx, imguiShader, Input.AddScroll)
	defer gui.Delete()
	camera := NewCameraController()
	renderer := NewRenderer(programs, meshes)

	resize := func(width, height int) {
		libgl.State.Viewport(0, 0, width, height)
		if height > 0 {
			scene.Camera.Aspect = float32(width) / float32(height)
		}
	}
	ctx.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		resize(width, height)
	})
	resize(ctx.GetFramebufferSize())

	for !ctx.ShouldClose() {
		glfw.PollEvents()
		Input.Update(ctx)

		if watcher != nil {
			reloadPrograms(library, watcher.Changed(), programs, gui)
		}

		camera.Update(&scene.Camera, Input.Frame(gui.WantsMouse()))
		c := camera.ClearColor
		libgl.State.ClearColor(c[0], c[1], c[2], c[3])

		fbWidth, fbHeight := ctx.GetFramebufferSize()
		libgl.State.Viewport(0, 0, fbWidth, fbHeight)
		renderer.Draw(scene)

		gui.NewFrame(ctx)
		panel.Draw()
		gui.Draw(ctx)

		ctx.SwapBuffers()
	}
}

// reloadPrograms rebuilds programs whose sources changed. A program that fails to build is
// kept as it was.
func reloadPrograms(library *ShaderLibrary, files []string, programs map[libscn.ShadingMode]libgl.ShaderProgram, gui *ImGui) {
	if len(files) == 0 {
		return
	}
	names := []string{ProgramGouraud, ProgramPhong, ProgramImGui}
	for _, name := range AffectedPrograms(files, names) {
		prog, err := library.Load(name)
		if err != nil {
			log.Printf("Could not reload %v: %v\n", name, err)
			continue
		}
		log.Printf("Reloaded %v\n", name)

		if name == ProgramImGui {
			old := gui.shader
			gui.SetShader(prog)
			old.Delete()
			continue
		}
		for mode, n := range shadingPrograms {
			if n != name {
				continue
			}
			programs[mode].Delete()
			programs[mode] = prog
		}
	}
}

func check(err error) {
	if err != nil {
		log.Panic(err)
	}
}
