package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"VoxelGolang/config"
	"VoxelGolang/game"
	"VoxelGolang/world"
)

var (
	deltaTime       float32
	previousFrame   time.Time = time.Now()
	tickAccumulator float32
	fps             float64
	fpsString       string
	frameCount      int       = 0
	startTime       time.Time = time.Now() // for FPS display
)

// The simulation steps at a fixed rate no matter how fast frames come;
// leftover frame time is lerped for the camera.
var tickUpdateRate float32 = float32(1.0 / 60.0)

func initOpenGL3D() uint32 {
	if err := gl.Init(); err != nil {
		panic(err)
	}
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	gl.Enable(gl.DEPTH_TEST)
	vertexShader := loadShader("shaders/blockShaderVertex.vert", gl.VERTEX_SHADER)
	fragmentShader := loadShader("shaders/blockShaderFragment.frag", gl.FRAGMENT_SHADER)
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vertexShader)
	gl.AttachShader(prog, fragmentShader)
	gl.LinkProgram(prog)
	gl.DetachShader(prog, vertexShader)
	gl.DetachShader(prog, fragmentShader)

	return prog
}

func initOpenGL2D() uint32 {
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	vertexShader := loadShader("shaders/textShaderVertex.vert", gl.VERTEX_SHADER)
	fragmentShader := loadShader("shaders/textShaderFragment.frag", gl.FRAGMENT_SHADER)
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vertexShader)
	gl.AttachShader(prog, fragmentShader)
	gl.LinkProgram(prog)
	gl.DetachShader(prog, vertexShader)
	gl.DetachShader(prog, fragmentShader)

	return prog
}

func initProjectionMatrix(width, height int) mgl32.Mat4 {
	aspectRatio := float32(width) / float32(height)
	fieldOfView := float32(45)
	nearClipPlane := float32(0.1)
	farClipPlane := float32(50.0)

	return mgl32.Perspective(mgl32.DegToRad(fieldOfView), aspectRatio, nearClipPlane, farClipPlane)
}

func initViewMatrix(eye, front mgl32.Vec3) mgl32.Mat4 {
	return mgl32.LookAtV(eye, eye.Add(front), mgl32.Vec3{0, 1, 0})
}

func stringFromShaderFile(shaderFilePath string) string {
	file, err := os.Open(shaderFilePath)
	if err != nil {
		panic(err)
	}
	defer file.Close() //After string is successfully returned, close the file read

	content, err := io.ReadAll(file)
	if err != nil {
		panic(err)
	}

	return string(content)
}

func loadShader(shaderFilePath string, shaderType uint32) uint32 {

	shader := gl.CreateShader(shaderType)
	stringifiedShader := stringFromShaderFile(shaderFilePath)
	csources, free := gl.Strs(stringifiedShader + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()

	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := string(make([]byte, logLength))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))
		log.Printf("shader %s failed to compile: %s", shaderFilePath, infoLog)
		panic("Failed to compile shader")
	}

	return shader
}

func updateFPS() {
	var currentTime time.Time = time.Now()
	var timeElapsed time.Duration = currentTime.Sub(startTime)

	if timeElapsed >= (100 * time.Millisecond) {
		fps = float64(frameCount) / timeElapsed.Seconds()
		fpsString = "FPS: " + strconv.FormatFloat(mgl64.Round(fps, 1), 'f', -1, 32)
		frameCount = 0
		startTime = currentTime
	}
}

func OnWindowResize(w *glfw.Window, width int, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func lerp(a, b mgl32.Vec3, alpha float32) mgl32.Vec3 {
	return (b.Sub(a)).Mul(alpha).Add(a) // Linear interpolation between a and b
}

// positionReadout formats the feet position to one decimal, enough to
// line the player up with a cell.
func positionReadout(session *game.Session) string {
	p := session.Player.Position
	return fmt.Sprintf("Position: (%.1f, %.1f, %.1f)", p.X(), p.Y(), p.Z())
}

func main() {
	runtime.LockOSThread()

	cfg, err := config.Load("config.yaml")
	if errors.Is(err, os.ErrNotExist) {
		log.Println("config.yaml not found, using defaults")
		cfg = config.Default()
	} else if err != nil {
		log.Fatalf("load config: %v", err)
	}

	err = glfw.Init()
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		panic(err)
	}
	window.SetAspectRatio(cfg.Window.Width, cfg.Window.Height)
	window.MakeContextCurrent()
	window.SetFramebufferSizeCallback(OnWindowResize)
	if cfg.Window.Vsync {
		glfw.SwapInterval(1)
	}
	setWindowIcon(window, cfg.Window.Icon)

	//capture the mouse and route everything through the input layer
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	window.SetKeyCallback(keyCallback)
	window.SetCursorPosCallback(mouseMoveCallback)
	window.SetMouseButtonCallback(mouseInputCallback)
	mouseSensitivity = cfg.Input.Sensitivity

	opengl3d := initOpenGL3D()

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.UseProgram(opengl3d)

	projection := initProjectionMatrix(cfg.Window.Width, cfg.Window.Height)
	projectionLoc := gl.GetUniformLocation(opengl3d, gl.Str("projection\x00"))
	gl.UniformMatrix4fv(projectionLoc, 1, false, &projection[0])

	generator := world.Generator{
		Radius: cfg.World.Radius,
		Mode:   world.TerrainMode(cfg.World.Terrain),
		Seed:   cfg.World.Seed,
	}
	session := game.NewSession(generator.Generate())
	log.Printf("generated %s world: %d blocks", cfg.World.Terrain, session.World.Len())

	initCrosshair(cfg.Window.Width, cfg.Window.Height)

	opengl2d := initOpenGL2D()
	gl.UseProgram(opengl2d)

	ctx, dst := loadFont(cfg.Window.Font)
	initTextVAO()

	// Set up orthographic projection for 2D (UI)
	orthographicProjection := mgl32.Ortho(0, float32(cfg.Window.Width), float32(cfg.Window.Height), 0, -1, 1)
	projectionLoc2D := gl.GetUniformLocation(opengl2d, gl.Str("projection\x00"))
	gl.UniformMatrix4fv(projectionLoc2D, 1, false, &orthographicProjection[0])

	var positionString = positionReadout(session)
	var selectedString = "Selected Block: " + session.Player.Selected.String()
	var blockCountString = "Blocks: " + strconv.Itoa(session.World.Len())
	var controlsString = "WASD: Move | Mouse: Look | Left-click: Mine | Right-click: Place | 1-4: Block Type | Space: Jump | ESC: Quit"
	var textObjects []text = []text{
		createText(ctx, &fpsString, 24, true, mgl32.Vec2{10, 10}, dst, opengl2d),
		createText(ctx, &positionString, 24, true, mgl32.Vec2{10, 34}, dst, opengl2d),
		createText(ctx, &selectedString, 24, true, mgl32.Vec2{10, 58}, dst, opengl2d),
		createText(ctx, &blockCountString, 24, true, mgl32.Vec2{10, 82}, dst, opengl2d),
		createText(ctx, &controlsString, 18, false, mgl32.Vec2{10, float32(cfg.Window.Height) - 34}, dst, opengl2d),
	}

	previousEye := session.Player.Eye()
	currentEye := previousEye

	for !window.ShouldClose() {
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		deltaTime = float32(time.Since(previousFrame).Seconds())
		previousFrame = time.Now()
		tickAccumulator += deltaTime
		glfw.PollEvents()

		updateFPS()
		for tickAccumulator >= tickUpdateRate {
			previousEye = session.Player.Eye()
			session.Step(drainInput(window))
			currentEye = session.Player.Eye()

			if showDebug {
				positionString = positionReadout(session)
				selectedString = "Selected Block: " + session.Player.Selected.String()
				blockCountString = "Blocks: " + strconv.Itoa(session.World.Len())
			}
			tickAccumulator -= tickUpdateRate
		}
		lerpVal := tickAccumulator / tickUpdateRate
		if lerpVal < 0 {
			lerpVal = 0
		}
		if lerpVal > 1 {
			lerpVal = 1
		}
		eye := lerp(previousEye, currentEye, lerpVal)

		if session.World.Dirty() {
			uploadWorldMesh(session.World)
		}

		gl.Enable(gl.CULL_FACE)
		gl.Enable(gl.DEPTH_TEST)

		gl.UseProgram(opengl3d)

		view := initViewMatrix(eye, session.Player.ViewDir())
		viewLoc := gl.GetUniformLocation(opengl3d, gl.Str("view\x00"))
		gl.UniformMatrix4fv(viewLoc, 1, false, &view[0])

		drawWorld(opengl3d)
		drawCrosshair(opengl3d, cfg.Window.Width, cfg.Window.Height, projection)

		if showDebug {
			//UI RENDERING STAGE
			gl.Disable(gl.DEPTH_TEST)
			gl.Disable(gl.CULL_FACE)

			gl.UseProgram(opengl2d)

			for i, obj := range textObjects {
				model := mgl32.Translate3D(obj.Position[0], obj.Position[1], 0).Mul4(mgl32.Scale3D(512, 512, 1))
				modelLoc := gl.GetUniformLocation(opengl2d, gl.Str("model\x00"))
				gl.UniformMatrix4fv(modelLoc, 1, false, &model[0])
				if obj.Update {
					updateTextTexture(&textObjects[i], ctx, dst)
				}
				gl.BindTexture(gl.TEXTURE_2D, obj.Texture)
				gl.BindVertexArray(obj.VAO)
				gl.DrawArrays(gl.TRIANGLES, 0, 6)
			}
		}
		window.SwapBuffers()
		frameCount++
	}
}
