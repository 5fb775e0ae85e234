package render

import (
	"image/color"
	"testing"
)

func TestFramebufferBGRA(t *testing.T) {
	fb := NewFramebuffer(3, 2)
	if len(fb.Pix) != 3*2*4 {
		t.Fatalf("len(Pix) = %d, want 24", len(fb.Pix))
	}

	fb.SetPixel(1, 1, RGBA(10, 20, 30, 40))
	i := (1*3 + 1) * 4
	if got := fb.Pix[i : i+4]; got[0] != 30 || got[1] != 20 || got[2] != 10 || got[3] != 40 {
		t.Errorf("bytes = %v, want [30 20 10 40]", got)
	}
	if got := fb.GetPixel(1, 1); got != RGBA(10, 20, 30, 40) {
		t.Errorf("GetPixel = %v", got)
	}
}

func TestFramebufferBounds(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.SetPixel(-1, 0, ColorWhite)
	fb.SetPixel(0, 2, ColorWhite)
	for _, b := range fb.Pix {
		if b != 0 {
			t.Fatal("out of bounds write modified the buffer")
		}
	}
	if got := fb.GetPixel(5, 5); got != (Color{}) {
		t.Errorf("out of bounds read = %v, want transparent", got)
	}
}

func TestFramebufferResize(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.Clear(ColorWhite)
	fb.Resize(4, 3)

	if fb.Width != 4 || fb.Height != 3 || len(fb.Pix) != 48 {
		t.Fatalf("resized to %dx%d with %d bytes", fb.Width, fb.Height, len(fb.Pix))
	}
	for _, b := range fb.Pix {
		if b != 0 {
			t.Fatal("resize did not zero-fill")
		}
	}
	if got := fb.AspectRatio(); got != 4.0/3.0 {
		t.Errorf("AspectRatio = %v, want 4/3", got)
	}
}

func TestFramebufferToImage(t *testing.T) {
	fb := NewFramebuffer(2, 1)
	fb.SetPixel(0, 0, RGB(255, 128, 0))
	fb.SetPixel(1, 0, RGBA(1, 2, 3, 4))

	img := fb.ToImage()
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{255, 128, 0, 255}) {
		t.Errorf("pixel 0 = %v", got)
	}
	if got := img.NRGBAAt(1, 0); got != (color.NRGBA{1, 2, 3, 4}) {
		t.Errorf("pixel 1 = %v", got)
	}
}
