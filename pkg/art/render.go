package art

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/wildfunctions/recursive_art/pkg/expr"
)

// Generate renders c into a new w x h image. Pixel (i, j) is evaluated at
// x = Remap(i, 0, w, -1, 1), y = Remap(j, 0, h, -1, 1).
func Generate(c Channels, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < w; i++ {
		x := Remap(float64(i), 0, float64(w), -1, 1)
		for j := 0; j < h; j++ {
			y := Remap(float64(j), 0, float64(h), -1, 1)
			img.SetRGBA(i, j, color.RGBA{
				R: ColorMap(expr.Evaluate(c.Red, x, y)),
				G: ColorMap(expr.Evaluate(c.Green, x, y)),
				B: ColorMap(expr.Evaluate(c.Blue, x, y)),
				A: 255,
			})
		}
	}
	return img
}

// Save encodes img as PNG at path, creating or truncating the file.
func Save(img image.Image, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}
