package render

import (
	"image/color"
	"testing"

	uv "github.com/charmbracelet/ultraviolet"
)

func TestFramebufferDraw(t *testing.T) {
	fb := NewFramebuffer(2, 4)
	fb.SetPixel(0, 0, ColorRed)
	fb.SetPixel(0, 1, ColorBlue)
	fb.SetPixel(1, 2, ColorGreen)

	scr := uv.NewScreenBuffer(2, 2)
	fb.Draw(scr, scr.Bounds())

	cell := scr.CellAt(0, 0)
	if cell == nil || cell.Content != "▀" {
		t.Fatalf("cell (0,0) = %+v, want half block", cell)
	}
	if cell.Style.Fg != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("fg = %v, want red", cell.Style.Fg)
	}
	if cell.Style.Bg != (color.NRGBA{0, 0, 255, 255}) {
		t.Errorf("bg = %v, want blue", cell.Style.Bg)
	}

	// Row 1 covers framebuffer rows 2 and 3; row 3 is still transparent.
	cell = scr.CellAt(1, 1)
	if cell.Style.Fg != (color.NRGBA{0, 255, 0, 255}) {
		t.Errorf("fg = %v, want green", cell.Style.Fg)
	}
	if cell.Style.Bg != nil {
		t.Errorf("bg = %v, want nil for transparent pixel", cell.Style.Bg)
	}
}

func TestTerminalRendererFramebufferSize(t *testing.T) {
	r := NewTerminalRenderer(nil, 80, 24)
	w, h := r.FramebufferSize()
	if w != 80 || h != 48 {
		t.Errorf("got %dx%d, want 80x48", w, h)
	}
}
