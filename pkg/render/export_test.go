package render

import (
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/HugoSmits86/nativewebp"
)

func testImage() *image.NRGBA {
	fb := NewFramebuffer(2, 2)
	fb.SetPixel(0, 0, ColorRed)
	fb.SetPixel(1, 0, ColorGreen)
	fb.SetPixel(0, 1, ColorBlue)
	fb.SetPixel(1, 1, ColorWhite)
	return fb.ToImage()
}

func TestUpscale(t *testing.T) {
	src := testImage()
	dst := Upscale(src, 3)

	if b := dst.Bounds(); b.Dx() != 6 || b.Dy() != 6 {
		t.Fatalf("bounds = %v, want 6x6", b)
	}
	for _, p := range []image.Point{{0, 0}, {2, 2}, {3, 0}, {5, 5}, {1, 4}} {
		want := src.NRGBAAt(p.X/3, p.Y/3)
		if got := dst.NRGBAAt(p.X, p.Y); got != want {
			t.Errorf("pixel %v = %v, want %v", p, got, want)
		}
	}

	if b := Upscale(src, 0).Bounds(); b.Dx() != 2 {
		t.Errorf("factor 0 gave %v, want unchanged size", b)
	}
}

func TestSaveImage(t *testing.T) {
	dir := t.TempDir()
	img := testImage()

	decoders := map[string]func(f *os.File) (image.Image, error){
		"frame.png":  func(f *os.File) (image.Image, error) { return png.Decode(f) },
		"frame.webp": func(f *os.File) (image.Image, error) { return nativewebp.Decode(f) },
	}

	for name, decode := range decoders {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := SaveImage(path, img); err != nil {
				t.Fatalf("SaveImage: %v", err)
			}

			f, err := os.Open(path)
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()

			got, err := decode(f)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			r, g, b, _ := got.At(1, 0).RGBA()
			if r != 0 || g != 0xffff || b != 0 {
				t.Errorf("pixel (1,0) = %v, want green", got.At(1, 0))
			}
		})
	}
}

func TestSaveImageTGA(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.TGA")
	if err := SaveImage(path, testImage()); err != nil {
		t.Fatalf("SaveImage: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() <= 18 {
		t.Errorf("file size %d, want header plus pixels", info.Size())
	}
}

func TestSaveImageUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.bmp")
	err := SaveImage(path, image.NewNRGBA(image.Rect(0, 0, 1, 1)))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("err = %v, want ErrUnsupportedFormat", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("unsupported format still created a file")
	}
}

func TestFromImage(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.SetPixel(0, 0, ColorRed)
	fb.SetPixel(1, 1, RGBA(10, 20, 30, 40))

	back := FromImage(fb.ToImage())
	if back.Width != 2 || back.Height != 2 {
		t.Fatalf("size = %dx%d", back.Width, back.Height)
	}
	for i := range fb.Pix {
		if back.Pix[i] != fb.Pix[i] {
			t.Fatalf("byte %d = %d, want %d", i, back.Pix[i], fb.Pix[i])
		}
	}

	gray := image.NewGray(image.Rect(5, 5, 7, 6))
	gray.Pix[1] = 200
	g := FromImage(gray)
	if g.Width != 2 || g.Height != 1 {
		t.Fatalf("gray size = %dx%d", g.Width, g.Height)
	}
	if got := g.GetPixel(1, 0); got != RGB(200, 200, 200) {
		t.Errorf("gray pixel = %v", got)
	}
	if got := g.GetPixel(0, 0); got != ColorBlack {
		t.Errorf("gray pixel = %v, want black", got)
	}
}
