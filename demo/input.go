package main

import (
	"shading-gl/libscn"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

type InputManager interface {
	CursorDelta() mgl32.Vec2
	ScrollDelta() mgl32.Vec2
	IsKeyDown(key glfw.Key) bool
	IsMouseDown(button glfw.MouseButton) bool
	IsMouseTap(button glfw.MouseButton) bool
	IsMouseRelease(button glfw.MouseButton) bool
	Modifiers() libscn.Modifiers
	Frame(captured bool) FrameInput
	AddScroll(x, y float64)
	Update(ctx *glfw.Window)
}

type input struct {
	curr inputState
	prev inputState
	// collected by the scroll callback between updates
	pendingScroll mgl32.Vec2
}

type inputState struct {
	cursorPos    mgl32.Vec2
	scroll       mgl32.Vec2
	keys         []bool
	mousebuttons []bool
}

var Input InputManager

func NewInputManager(ctx *glfw.Window) *input {
	i := &input{
		curr: inputState{
			keys:         make([]bool, glfw.KeyLast+1),
			mousebuttons: make([]bool, glfw.MouseButtonLast+1),
		},
		prev: inputState{
			keys:         make([]bool, glfw.KeyLast+1),
			mousebuttons: make([]bool, glfw.MouseButtonLast+1),
		},
	}

	i.Update(ctx)
	i.prev.cursorPos = i.curr.cursorPos
	copy(i.prev.keys, i.curr.keys)
	copy(i.prev.mousebuttons, i.curr.mousebuttons)

	return i
}

func (i *input) CursorDelta() mgl32.Vec2 {
	return i.curr.cursorPos.Sub(i.prev.cursorPos)
}

func (i *input) ScrollDelta() mgl32.Vec2 {
	return i.curr.scroll
}

func (i *input) AddScroll(x, y float64) {
	i.pendingScroll = i.pendingScroll.Add(mgl32.Vec2{float32(x), float32(y)})
}

func (i *input) IsKeyDown(key glfw.Key) bool {
	return i.curr.keys[key]
}

func (i *input) IsMouseDown(button glfw.MouseButton) bool {
	return i.curr.mousebuttons[button]
}

func (i *input) IsMouseTap(button glfw.MouseButton) bool {
	return i.curr.mousebuttons[button] && !i.prev.mousebuttons[button]
}

func (i *input) IsMouseRelease(button glfw.MouseButton) bool {
	return !i.curr.mousebuttons[button] && i.prev.mousebuttons[button]
}

func (i *input) Update(ctx *glfw.Window) {
	keys := i.prev.keys
	mousebuttons := i.prev.mousebuttons
	i.prev = i.curr
	cursorX, cursorY := ctx.GetCursorPos()

	for key := 32; key <= int(glfw.KeyLast); key++ {
		keys[key] = ctx.GetKey(glfw.Key(key)) != glfw.Release
	}

	for button := 0; button <= int(glfw.MouseButtonLast); button++ {
		mousebuttons[button] = ctx.GetMouseButton(glfw.MouseButton(button)) != glfw.Release
	}

	i.curr = inputState{
		cursorPos:    mgl32.Vec2{float32(cursorX), float32(cursorY)},
		scroll:       i.pendingScroll,
		keys:         keys,
		mousebuttons: mousebuttons,
	}
	i.pendingScroll = mgl32.Vec2{}
}

func (i *input) Modifiers() libscn.Modifiers {
	return libscn.Modifiers{
		Ctrl:  i.IsKeyDown(glfw.KeyLeftControl) || i.IsKeyDown(glfw.KeyRightControl),
		Super: i.IsKeyDown(glfw.KeyLeftSuper) || i.IsKeyDown(glfw.KeyRightSuper),
		Alt:   i.IsKeyDown(glfw.KeyLeftAlt) || i.IsKeyDown(glfw.KeyRightAlt),
	}
}

var (
	clearColorIdle     = mgl32.Vec4{0, 0.7, 1, 1}
	clearColorDragging = mgl32.Vec4{0, 0.3, 0.7, 1}
)

// Browser wheel events report about 100 units per notch, in the opposite direction of glfw
const scrollToWheelDelta = -100

// FrameInput is what the camera controller needs from one frame of input
type FrameInput struct {
	Pressed, Released bool
	CursorDelta       mgl32.Vec2
	ScrollY           float32
	Modifiers         libscn.Modifiers
	// the panel has the mouse
	Captured bool
}

// CameraController turns mouse drags into orbits and the wheel into zoom or dolly.
// A drag only starts outside the panels but continues over them.
type CameraController struct {
	Dragging   bool
	ClearColor mgl32.Vec4
}

func NewCameraController() *CameraController {
	return &CameraController{ClearColor: clearColorIdle}
}

func (cc *CameraController) Update(cam *libscn.Camera, in FrameInput) {
	if in.Pressed && !in.Captured && !cc.Dragging {
		cc.Dragging = true
		cc.ClearColor = clearColorDragging
	}
	// the press frame only anchors the drag
	if cc.Dragging && !in.Pressed {
		libscn.Orbit(cam, in.CursorDelta.X(), in.CursorDelta.Y())
	}
	if in.Released && cc.Dragging {
		cc.Dragging = false
		cc.ClearColor = clearColorIdle
	}
	if in.ScrollY != 0 && !in.Captured {
		libscn.Wheel(cam, in.ScrollY*scrollToWheelDelta, in.Modifiers)
	}
}

func (i *input) Frame(captured bool) FrameInput {
	return FrameInput{
		Pressed:     i.IsMouseTap(glfw.MouseButtonLeft),
		Released:    i.IsMouseRelease(glfw.MouseButtonLeft),
		CursorDelta: i.CursorDelta(),
		ScrollY:     i.ScrollDelta().Y(),
		Modifiers:   i.Modifiers(),
		Captured:    captured,
	}
}
