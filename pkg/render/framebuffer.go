// Package render implements the retrocube raycasting pipeline: camera rays,
// primitive intersection, procedural materials, lighting and the pixel buffer
// they are written to.
package render

import (
	"image"
)

// BytesPerPixel is the size of one Framebuffer pixel.
const BytesPerPixel = 4

// Framebuffer is a 2D array of pixels stored row-major, top row first, as
// B, G, R, A bytes.
type Framebuffer struct {
	Width  int
	Height int
	Pix    []byte // len(Pix) == Width*Height*BytesPerPixel
}

// NewFramebuffer creates a zero-filled framebuffer with the given dimensions.
// Negative dimensions are treated as zero.
func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{}
	fb.Resize(width, height)
	return fb
}

// Resize reallocates the pixel storage and zero-fills it.
func (fb *Framebuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	fb.Width = width
	fb.Height = height
	fb.Pix = make([]byte, width*height*BytesPerPixel)
}

// AspectRatio returns Width / Height.
func (fb *Framebuffer) AspectRatio() float32 {
	return float32(fb.Width) / float32(fb.Height)
}

// Clear fills the framebuffer with a solid color.
func (fb *Framebuffer) Clear(c Color) {
	for i := 0; i < len(fb.Pix); i += BytesPerPixel {
		fb.Pix[i+0] = c.B
		fb.Pix[i+1] = c.G
		fb.Pix[i+2] = c.R
		fb.Pix[i+3] = c.A
	}
}

// SetPixel sets a pixel at (x, y) to the given color.
// Bounds checking is performed.
func (fb *Framebuffer) SetPixel(x, y int, c Color) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.setPixel(x, y, c)
}

func (fb *Framebuffer) setPixel(x, y int, c Color) {
	i := (y*fb.Width + x) * BytesPerPixel
	fb.Pix[i+0] = c.B
	fb.Pix[i+1] = c.G
	fb.Pix[i+2] = c.R
	fb.Pix[i+3] = c.A
}

// GetPixel returns the color at (x, y).
// Returns transparent black if out of bounds.
func (fb *Framebuffer) GetPixel(x, y int) Color {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return Color{}
	}
	i := (y*fb.Width + x) * BytesPerPixel
	return Color{R: fb.Pix[i+2], G: fb.Pix[i+1], B: fb.Pix[i+0], A: fb.Pix[i+3]}
}

// ToImage converts the framebuffer to a standard Go image.NRGBA.
func (fb *Framebuffer) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for i := 0; i < len(fb.Pix); i += BytesPerPixel {
		img.Pix[i+0] = fb.Pix[i+2]
		img.Pix[i+1] = fb.Pix[i+1]
		img.Pix[i+2] = fb.Pix[i+0]
		img.Pix[i+3] = fb.Pix[i+3]
	}
	return img
}
