package main

import (
	"fmt"

	"github.com/taigrr/retrocube/pkg/render"
	"github.com/taigrr/retrocube/pkg/scene"
)

// snapshot renders one frame of cfg at its initial pose and saves it.
func snapshot(cfg scene.Config, path string, factor int) error {
	r, err := cfg.Build()
	if err != nil {
		return err
	}
	r.Render()

	img := r.Framebuffer().ToImage()
	if factor > 1 {
		img = render.Upscale(img, factor)
	}
	if err := render.SaveImage(path, img); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
