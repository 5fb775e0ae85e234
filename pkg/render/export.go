package render

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/draw"
)

// ErrUnsupportedFormat is returned by SaveImage for unknown file extensions.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Upscale enlarges img by an integer factor with nearest-neighbour sampling,
// keeping the blocky look of low resolution frames.
func Upscale(img image.Image, factor int) *image.NRGBA {
	b := img.Bounds()
	factor = max(factor, 1)
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// FromImage copies img into a new framebuffer.
func FromImage(img image.Image) *Framebuffer {
	b := img.Bounds()
	src, ok := img.(*image.NRGBA)
	if !ok || b.Min != (image.Point{}) || src.Stride != b.Dx()*BytesPerPixel {
		src = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(src, src.Bounds(), img, b.Min, draw.Src)
	}

	fb := NewFramebuffer(b.Dx(), b.Dy())
	for i := 0; i < len(fb.Pix); i += BytesPerPixel {
		fb.Pix[i+0] = src.Pix[i+2]
		fb.Pix[i+1] = src.Pix[i+1]
		fb.Pix[i+2] = src.Pix[i+0]
		fb.Pix[i+3] = src.Pix[i+3]
	}
	return fb
}

// SaveImage writes img to path. The format is chosen by extension:
// .png, .webp or .tga.
func SaveImage(path string, img image.Image) error {
	ext := strings.ToLower(filepath.Ext(path))
	var encode func(f *os.File) error
	switch ext {
	case ".png":
		encode = func(f *os.File) error { return png.Encode(f, img) }
	case ".webp":
		encode = func(f *os.File) error { return nativewebp.Encode(f, img, nil) }
	case ".tga":
		encode = func(f *os.File) error { return tga.Encode(f, img) }
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encode(f); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", ext, err)
	}
	return f.Close()
}
