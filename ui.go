package main

import (
	"image"
	"image/color"
	"image/draw"
	"log"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/golang/freetype"
	"golang.org/x/image/font/gofont/goregular"
)

// text is one HUD string: a texture the string is rasterized into and
// where to draw it. Content is a pointer so the owner can keep mutating
// the string; Update marks strings that change while running.
type text struct {
	VAO      uint32
	Texture  uint32
	Position mgl32.Vec2
	Update   bool
	FontSize float64
	Content  *string
}

var textVAO uint32

// loadFont sets up a freetype context over a shared canvas. An empty
// path, or a file that cannot be read, falls back to the bundled
// Go Regular face so the HUD always has something to draw with.
func loadFont(pathToFont string) (*freetype.Context, *image.RGBA) {
	fontData := goregular.TTF
	if pathToFont != "" {
		data, err := os.ReadFile(pathToFont)
		if err != nil {
			log.Printf("font %s unavailable, using Go Regular: %v", pathToFont, err)
		} else {
			fontData = data
		}
	}

	font, err := freetype.ParseFont(fontData)
	if err != nil {
		panic(err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, 512, 512))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{C: color.Transparent}, image.Point{}, draw.Src)
	ctx := freetype.NewContext()
	ctx.SetFont(font)
	ctx.SetDst(dst)
	ctx.SetClip(dst.Bounds())
	ctx.SetSrc(image.White)
	ctx.SetHinting(2) // For sharp text
	return ctx, dst
}

// initTextVAO builds the unit quad every text object stretches over its
// texture.
func initTextVAO() {
	vertices := []float32{
		0.0, 1.0, 0.0, 0.0, 1.0, // Top-left
		0.0, 0.0, 0.0, 0.0, 0.0, // Bottom-left
		1.0, 0.0, 0.0, 1.0, 0.0, // Bottom-right

		0.0, 1.0, 0.0, 0.0, 1.0, // Top-left
		1.0, 0.0, 0.0, 1.0, 0.0, // Bottom-right
		1.0, 1.0, 0.0, 1.0, 1.0,
	}

	gl.GenVertexArrays(1, &textVAO)
	gl.BindVertexArray(textVAO)

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 5*4, nil)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 5*4, uintptr(3*4))
}

// createText allocates a texture for one HUD string and renders its
// current content into it. Call initTextVAO first.
func createText(ctx *freetype.Context, content *string, fontSize float64, isUpdated bool, position mgl32.Vec2, dst *image.RGBA, program uint32) text {
	textTexture := uploadTextTexture(dst)
	gl.BindTexture(gl.TEXTURE_2D, textTexture) // Upload text as a texture
	textureLoc2D := gl.GetUniformLocation(program, gl.Str("TexCoord\x00"))
	gl.Uniform1i(textureLoc2D, 0)

	obj := text{
		VAO:      textVAO,
		Texture:  textTexture,
		Position: position,
		Update:   isUpdated,
		Content:  content,
		FontSize: fontSize,
	}
	updateTextTexture(&obj, ctx, dst)
	return obj
}

func clearImage(img *image.RGBA) {
	for i := range img.Pix {
		img.Pix[i] = 0
	}
}

func uploadTextTexture(img *image.RGBA) uint32 {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.TexImage2D(
		gl.TEXTURE_2D, 0, gl.RGBA,
		int32(img.Rect.Size().X), int32(img.Rect.Size().Y),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix),
	)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	return texture
}

// updateTextTexture redraws the string onto the shared canvas and
// uploads it over the text's texture. The canvas is cleared first, so
// each texture ends up holding only its own string.
func updateTextTexture(obj *text, ctx *freetype.Context, dst *image.RGBA) {
	clearImage(dst)
	ctx.SetFontSize(obj.FontSize)
	pt := freetype.Pt(4, 4+int(ctx.PointToFixed(obj.FontSize)>>6))

	if _, err := ctx.DrawString(*obj.Content, pt); err != nil {
		panic(err)
	}

	gl.BindTexture(gl.TEXTURE_2D, obj.Texture)
	gl.TexSubImage2D(
		gl.TEXTURE_2D,
		0,    // Mipmap level
		0, 0, // Offset in the texture
		int32(dst.Rect.Size().X), // Width of the updated area
		int32(dst.Rect.Size().Y), // Height of the updated area
		gl.RGBA,                  // Format (must match the allocation)
		gl.UNSIGNED_BYTE,         // Data type (must match the allocation)
		gl.Ptr(dst.Pix),          // New pixel data
	)
}
