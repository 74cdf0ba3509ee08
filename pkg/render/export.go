package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"
)

// ToImage copies the color buffer into a new NRGBA image.
func (fb *Framebuffer) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for i, p := range fb.pixels {
		o := i * 4
		img.Pix[o] = p.R
		img.Pix[o+1] = p.G
		img.Pix[o+2] = p.B
		img.Pix[o+3] = p.A
	}
	return img
}

// Scaled returns the framebuffer enlarged by an integer factor with
// nearest-neighbour sampling, keeping pixel edges sharp. Factors below 1
// are treated as 1.
func (fb *Framebuffer) Scaled(factor int) *image.NRGBA {
	src := fb.ToImage()
	if factor <= 1 {
		return src
	}
	dst := image.NewNRGBA(image.Rect(0, 0, fb.Width*factor, fb.Height*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// EncodePNG writes img to w as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("png encode: %w", err)
	}
	return nil
}

// EncodeWebP writes img to w as lossless WebP.
func EncodeWebP(w io.Writer, img image.Image) error {
	if err := nativewebp.Encode(w, img, nil); err != nil {
		return fmt.Errorf("webp encode: %w", err)
	}
	return nil
}

// SavePNG writes the framebuffer to path as PNG.
func (fb *Framebuffer) SavePNG(path string) error {
	return saveWith(path, fb.ToImage(), EncodePNG)
}

// SaveWebP writes the framebuffer to path as WebP.
func (fb *Framebuffer) SaveWebP(path string) error {
	return saveWith(path, fb.ToImage(), EncodeWebP)
}

// Save writes the framebuffer to path, choosing the format from its
// extension (.png or .webp).
func (fb *Framebuffer) Save(path string) error {
	return SaveImage(path, fb.ToImage())
}

// SaveImage writes img to path, choosing the format from its extension
// (.png or .webp). Parent directories are created as needed.
func SaveImage(path string, img image.Image) error {
	var encode func(io.Writer, image.Image) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		encode = EncodePNG
	case ".webp":
		encode = EncodeWebP
	default:
		return fmt.Errorf("unsupported image format %q", ext)
	}
	return saveWith(path, img, encode)
}

func saveWith(path string, img image.Image, encode func(io.Writer, image.Image) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image: %w", err)
	}
	if err := encode(f, img); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close image: %w", err)
	}
	return nil
}
