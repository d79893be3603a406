package facets

import (
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// GrayImage writes hit intensities directly; misses take bg.
func (f *Frame) GrayImage(bg uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, f.Width, f.Height))
	for py := 0; py < f.Height; py++ {
		rowOff := py * img.Stride
		for px := 0; px < f.Width; px++ {
			v := bg
			if s := f.At(px, py); s.Hit {
				v = s.Value
			}
			img.Pix[rowOff+px] = v
		}
	}
	return img
}

// ColorImage shades hits through the palette; misses take p.Background.
func (f *Frame) ColorImage(p Palette, ambient uint8) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for py := 0; py < f.Height; py++ {
		rowOff := py * img.Stride
		for px := 0; px < f.Width; px++ {
			c := p.Background
			if s := f.At(px, py); s.Hit {
				c = p.Shade(s.Value, ambient)
			}
			o := rowOff + px*4
			img.Pix[o+ChR] = c.R
			img.Pix[o+ChG] = c.G
			img.Pix[o+ChB] = c.B
			img.Pix[o+3] = 255
		}
	}
	return img
}

// Encode writes img in the format named by ext (".png", ".gif", ".bmp", ".tif", ".tiff").
func Encode(w io.Writer, img image.Image, ext string) error {
	switch strings.ToLower(ext) {
	case ".png":
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		return enc.Encode(w, img)
	case ".gif":
		// Quantize to paletted for GIF
		pimg := image.NewPaletted(img.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(pimg, pimg.Bounds(), img, image.Point{})
		return gif.Encode(w, pimg, nil)
	case ".bmp":
		return bmp.Encode(w, img)
	case ".tif", ".tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	}
	return errors.Errorf("unsupported image format %q", ext)
}

// SaveImage encodes img to path, picking the format from the file extension.
func SaveImage(img image.Image, path string) error {
	ext := filepath.Ext(path)
	if ext == "" {
		return errors.Errorf("no image format extension in %q", path)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "create %s", dir)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if err := Encode(f, img, ext); err != nil {
		f.Close()
		return errors.Wrapf(err, "encode %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "close %s", path)
	}
	return nil
}
