package main

import (
	"image"
	"log"

	"github.com/go-gl/glfw/v3.3/glfw"
	"neilpa.me/go-stbi"
)

// setWindowIcon loads the configured icon if there is one. A missing
// file is not worth dying over; the window keeps the stock icon.
func setWindowIcon(window *glfw.Window, path string) {
	if path == "" {
		return
	}
	img, err := stbi.Load(path)
	if err != nil {
		log.Printf("icon %s unavailable: %v", path, err)
		return
	}
	window.SetIcon([]image.Image{img})
}
