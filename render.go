package main

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"VoxelGolang/world"
)

// World mesh resources: one interleaved position+color buffer for the
// block faces, one for the black cell edges. Both are rebuilt whenever
// the store reports dirty.
var (
	worldVAO       uint32
	worldVBO       uint32
	worldVertCount int32
	edgeVAO        uint32
	edgeVBO        uint32
	edgeVertCount  int32
	crosshairVAO   uint32
	meshReady      bool
)

// Unit cube spanning [0,1] on each axis, 6 vertices per face. Face
// order has to line up with faceNeighbors below.
var cubeVertices []float32 = []float32{

	// Front face
	0, 0, 1, // Bottom-left
	1, 0, 1, // Bottom-right
	1, 1, 1, // Top-right
	0, 0, 1, // Bottom-left
	1, 1, 1, // Top-right
	0, 1, 1, // Top-left

	// Back face
	0, 0, 0, // Bottom-left
	0, 1, 0, // Top-left
	1, 1, 0, // Top-right
	0, 0, 0, // Bottom-left
	1, 1, 0, // Top-right
	1, 0, 0, // Bottom-right

	// Left face
	0, 0, 0, // Bottom-left
	0, 0, 1, // Bottom-right
	0, 1, 1, // Top-right
	0, 0, 0, // Bottom-left
	0, 1, 1, // Top-right
	0, 1, 0, // Top-left

	// Right face
	1, 0, 0, // Bottom-left
	1, 1, 0, // Top-left
	1, 1, 1, // Top-right
	1, 0, 0, // Bottom-left
	1, 1, 1, // Top-right
	1, 0, 1, // Bottom-right

	// Top face
	0, 1, 0, // Bottom-left
	0, 1, 1, // Bottom-right
	1, 1, 1, // Top-right
	0, 1, 0, // Bottom-left
	1, 1, 1, // Top-right
	1, 1, 0, // Top-left

	// Bottom face
	0, 0, 0, // Bottom-left
	1, 0, 0, // Bottom-right
	1, 0, 1, // Top-right
	0, 0, 0, // Bottom-left
	1, 0, 1, // Top-right
	0, 0, 1, // Top-left

}

// faceNeighbors gives, per face of cubeVertices, the cell that would
// press against it.
var faceNeighbors = [6]world.Coordinate{
	{X: 0, Y: 0, Z: 1},  // front
	{X: 0, Y: 0, Z: -1}, // back
	{X: -1, Y: 0, Z: 0}, // left
	{X: 1, Y: 0, Z: 0},  // right
	{X: 0, Y: 1, Z: 0},  // top
	{X: 0, Y: -1, Z: 0}, // bottom
}

// Cube corners and the 12 edges between them, for the outline pass.
var cubeCorners = [8][3]float32{
	{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
	{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
}
var cubeEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// buildWorldMesh walks the store once and packs every visible face into
// an interleaved position+color vertex list, plus black outline edges
// for every block that shows at least one face. Faces pressed against a
// solid neighbor are skipped; a block buried on all six sides
// contributes nothing.
func buildWorldMesh(store *world.Store) (faces, edges []float32) {
	store.Range(func(c world.Coordinate, t world.BlockType) {
		color := t.Color()
		exposed := false
		for face := 0; face < 6; face++ {
			n := faceNeighbors[face]
			if store.Solid(world.Coordinate{X: c.X + n.X, Y: c.Y + n.Y, Z: c.Z + n.Z}) {
				continue
			}
			exposed = true
			for i := face * 18; i < (face+1)*18; i += 3 {
				x := cubeVertices[i] + float32(c.X)
				y := cubeVertices[i+1] + float32(c.Y)
				z := cubeVertices[i+2] + float32(c.Z)
				faces = append(faces, x, y, z, color[0], color[1], color[2])
			}
		}
		if exposed {
			for _, e := range cubeEdges {
				for _, corner := range e {
					v := cubeCorners[corner]
					edges = append(edges,
						v[0]+float32(c.X), v[1]+float32(c.Y), v[2]+float32(c.Z),
						0, 0, 0)
				}
			}
		}
	})
	return faces, edges
}

// uploadWorldMesh rebuilds the GPU buffers from the store and marks it
// clean. Cheap to call every frame; it only does work after an edit.
func uploadWorldMesh(store *world.Store) {
	faces, edges := buildWorldMesh(store)
	if !meshReady {
		worldVAO, worldVBO = createColoredVAO()
		edgeVAO, edgeVBO = createColoredVAO()
		meshReady = true
	}
	worldVertCount = bufferColored(worldVAO, worldVBO, faces)
	edgeVertCount = bufferColored(edgeVAO, edgeVBO, edges)
	store.MarkClean()
}

// createColoredVAO sets up a VAO/VBO pair with the interleaved layout
// the block shader expects.
func createColoredVAO() (vao, vbo uint32) {
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	//position
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 6*4, nil)

	//color
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, 6*4, uintptr(3*4))

	return vao, vbo
}

func bufferColored(vao, vbo uint32, verts []float32) int32 {
	if len(verts) == 0 {
		return 0
	}
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 4*len(verts), gl.Ptr(verts), gl.STATIC_DRAW)
	return int32(len(verts) / 6)
}

// drawWorld renders the face mesh, then the outlines over it.
func drawWorld(program uint32) {
	gl.UseProgram(program)
	model := mgl32.Ident4()
	modelLoc := gl.GetUniformLocation(program, gl.Str("model\x00"))
	gl.UniformMatrix4fv(modelLoc, 1, false, &model[0])

	if worldVertCount > 0 {
		// push the filled faces back a hair so the edge lines win the
		// depth test
		gl.Enable(gl.POLYGON_OFFSET_FILL)
		gl.PolygonOffset(1, 1)
		gl.BindVertexArray(worldVAO)
		gl.DrawArrays(gl.TRIANGLES, 0, worldVertCount)
		gl.Disable(gl.POLYGON_OFFSET_FILL)
	}
	if edgeVertCount > 0 {
		gl.BindVertexArray(edgeVAO)
		gl.DrawArrays(gl.LINES, 0, edgeVertCount)
	}
}

// initCrosshair builds the two centered lines of the aiming cross in
// window coordinates.
func initCrosshair(width, height int) {
	cx, cy := float32(width)/2, float32(height)/2
	verts := []float32{
		cx - 10, cy, 0, 1, 1, 1,
		cx + 10, cy, 0, 1, 1, 1,
		cx, cy - 10, 0, 1, 1, 1,
		cx, cy + 10, 0, 1, 1, 1,
	}
	var vbo uint32
	crosshairVAO, vbo = createColoredVAO()
	bufferColored(crosshairVAO, vbo, verts)
}

// drawCrosshair swaps the block program into the window's orthographic
// space, draws the cross, and hands the perspective projection back.
func drawCrosshair(program uint32, width, height int, projection mgl32.Mat4) {
	gl.Disable(gl.DEPTH_TEST)
	gl.UseProgram(program)

	orthographic := mgl32.Ortho(0, float32(width), float32(height), 0, -1, 1)
	identity := mgl32.Ident4()
	projectionLoc := gl.GetUniformLocation(program, gl.Str("projection\x00"))
	viewLoc := gl.GetUniformLocation(program, gl.Str("view\x00"))
	modelLoc := gl.GetUniformLocation(program, gl.Str("model\x00"))
	gl.UniformMatrix4fv(projectionLoc, 1, false, &orthographic[0])
	gl.UniformMatrix4fv(viewLoc, 1, false, &identity[0])
	gl.UniformMatrix4fv(modelLoc, 1, false, &identity[0])

	gl.BindVertexArray(crosshairVAO)
	gl.DrawArrays(gl.LINES, 0, 4)

	gl.UniformMatrix4fv(projectionLoc, 1, false, &projection[0])
	gl.Enable(gl.DEPTH_TEST)
}
