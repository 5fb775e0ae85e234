package render

import (
	"sync"
)

// Renderer casts one ray per framebuffer pixel and shades the result.
//
// The camera, raycaster, material, lighting and framebuffer may be swapped or
// mutated between frames, never while Render is running.
type Renderer struct {
	// Background is written where no primitive is hit.
	Background Color

	// Workers is the number of goroutines Render splits the frame across.
	// Values below 2 render on the calling goroutine.
	Workers int

	camera    *Camera
	raycaster Raycaster
	material  Material
	lighting  Lighting
	fb        *Framebuffer
}

// NewRenderer creates a renderer drawing into fb. The camera's aspect ratio
// is set from fb.
func NewRenderer(cam *Camera, rc Raycaster, mat Material, light Lighting, fb *Framebuffer) *Renderer {
	r := &Renderer{
		Background: ColorBlack,
		Workers:    1,
		camera:     cam,
		raycaster:  rc,
		material:   mat,
		lighting:   light,
		fb:         fb,
	}
	r.syncAspect()
	return r
}

// Camera returns the active camera.
func (r *Renderer) Camera() *Camera { return r.camera }

// SetCamera replaces the camera and fits its aspect ratio to the framebuffer.
func (r *Renderer) SetCamera(cam *Camera) {
	r.camera = cam
	r.syncAspect()
}

// Raycaster returns the active primitive.
func (r *Renderer) Raycaster() Raycaster { return r.raycaster }

// SetRaycaster replaces the primitive.
func (r *Renderer) SetRaycaster(rc Raycaster) { r.raycaster = rc }

// Material returns the active material.
func (r *Renderer) Material() Material { return r.material }

// SetMaterial replaces the material.
func (r *Renderer) SetMaterial(m Material) { r.material = m }

// Lighting returns the active light model.
func (r *Renderer) Lighting() Lighting { return r.lighting }

// SetLighting replaces the light model.
func (r *Renderer) SetLighting(l Lighting) { r.lighting = l }

// Framebuffer returns the render target.
func (r *Renderer) Framebuffer() *Framebuffer { return r.fb }

// SetFramebuffer replaces the render target and refits the camera.
func (r *Renderer) SetFramebuffer(fb *Framebuffer) {
	r.fb = fb
	r.syncAspect()
}

// Resize reallocates the framebuffer and refits the camera.
func (r *Renderer) Resize(width, height int) {
	r.fb.Resize(width, height)
	r.syncAspect()
}

func (r *Renderer) syncAspect() {
	if r.camera == nil || r.fb == nil || r.fb.Height == 0 {
		return
	}
	r.camera.SetAspectRatio(r.fb.AspectRatio())
}

// Render draws one full frame into the framebuffer.
func (r *Renderer) Render() {
	w, h := r.fb.Width, r.fb.Height
	if w == 0 || h == 0 {
		return
	}

	// Rebuild lazy caches up front so the pixel loop only reads shared state.
	r.camera.Update()
	r.raycaster.Transform().Update()

	workers := min(r.Workers, h)
	if workers < 2 {
		r.renderRows(0, h)
		return
	}

	rowsPerWorker := h / workers
	var wg sync.WaitGroup
	for i := range workers {
		start := i * rowsPerWorker
		end := start + rowsPerWorker
		if i == workers-1 {
			end = h
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.renderRows(start, end)
		}()
	}
	wg.Wait()
}

func (r *Renderer) renderRows(start, end int) {
	w := float32(r.fb.Width)
	h := float32(r.fb.Height)
	for y := start; y < end; y++ {
		clipY := (h-float32(y))/h*2 - 1
		for x := 0; x < r.fb.Width; x++ {
			clipX := float32(x)/w*2 - 1
			r.fb.setPixel(x, y, r.RenderPixel(clipX, clipY))
		}
	}
}

// RenderPixel shades the ray through the NDC point (clipX, clipY).
func (r *Renderer) RenderPixel(clipX, clipY float32) Color {
	origin, dir := r.camera.RayOriginDirection(clipX, clipY)

	hit, ok := r.raycaster.Raycast(origin, dir)
	if !ok {
		return r.Background
	}
	base := r.material.SurfaceColor(hit.LocalPosition, hit.LocalNormal)
	return r.lighting.ApplyLight(base, hit.Position, hit.Normal)
}
