package main

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"VoxelGolang/game"
	"VoxelGolang/world"
)

// Pending input state, filled by GLFW callbacks between ticks and
// drained into one game.Input per tick.
var (
	lastX      float64
	lastY      float64
	firstMouse bool = true

	pendingLookX  float64
	pendingLookY  float64
	pendingJump   bool
	pendingSelect world.BlockType
	pendingAct    game.Action

	mouseSensitivity float64
	showDebug        bool = true
)

func keyCallback(window *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	switch key {
	case glfw.KeyEscape:
		window.SetShouldClose(true)
	case glfw.KeySpace:
		pendingJump = true
	case glfw.Key1:
		pendingSelect = world.Dirt
	case glfw.Key2:
		pendingSelect = world.Stone
	case glfw.Key3:
		pendingSelect = world.Wood
	case glfw.Key4:
		pendingSelect = world.Leaves
	case glfw.KeyF3:
		showDebug = !showDebug
	}
}

func mouseMoveCallback(window *glfw.Window, xPos, yPos float64) {
	if firstMouse {
		lastX = xPos
		lastY = yPos
		firstMouse = false
	}

	xoffset := xPos - lastX
	yoffset := lastY - yPos // Reversed since y-coordinates go from bottom to top
	lastX = xPos
	lastY = yPos

	pendingLookX += xoffset * mouseSensitivity
	pendingLookY += yoffset * mouseSensitivity
}

// mouseInputCallback queues one block edit per click; the session's
// cooldown decides whether it goes through.
func mouseInputCallback(window *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	if button == glfw.MouseButtonLeft {
		pendingAct = game.ActionBreak
	}
	if button == glfw.MouseButtonRight {
		pendingAct = game.ActionPlace
	}
}

// movement polls the held walk keys. W pushes along the view direction,
// S away from it, A and D sideways.
func movement(window *glfw.Window) (forward, strafe float32) {
	if window.GetKey(glfw.KeyW) == glfw.Press {
		forward++
	}
	if window.GetKey(glfw.KeyS) == glfw.Press {
		forward--
	}
	if window.GetKey(glfw.KeyA) == glfw.Press {
		strafe--
	}
	if window.GetKey(glfw.KeyD) == glfw.Press {
		strafe++
	}
	return forward, strafe
}

// drainInput folds everything the callbacks queued since the last tick,
// plus the currently held walk keys, into one tick's input. When a slow
// frame runs several ticks back to back, only the first sees the queued
// look deltas and clicks.
func drainInput(window *glfw.Window) game.Input {
	forward, strafe := movement(window)
	in := game.Input{
		Forward: forward,
		Strafe:  strafe,
		Jump:    pendingJump,
		LookX:   pendingLookX,
		LookY:   pendingLookY,
		Select:  pendingSelect,
		Act:     pendingAct,
	}
	pendingJump = false
	pendingLookX = 0
	pendingLookY = 0
	pendingSelect = world.Air
	pendingAct = game.ActionNone
	return in
}
