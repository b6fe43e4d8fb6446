package field

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"

	"flow-sketcher/internal/vec"
)

// LoadFromImage decodes a PNG or JPEG and converts it to a flow field.
// Each cell covers a resolution x resolution pixel block; the block's
// average luminance maps linearly onto an angle in [0, 2pi), so a black
// pixel flows east and brightening pixels rotate counterclockwise.
func LoadFromImage(path string, resolution int) (*FlowField, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("field: open %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("field: decode %s: %w", path, err)
	}

	bounds := img.Bounds()
	cols := bounds.Dx() / resolution
	rows := bounds.Dy() / resolution
	if cols == 0 || rows == 0 {
		return nil, fmt.Errorf("field: image %s smaller than one %dpx cell", path, resolution)
	}

	f := New(cols, rows, resolution)
	for cx := 0; cx < cols; cx++ {
		for cy := 0; cy < rows; cy++ {
			sum := 0.0
			for px := 0; px < resolution; px++ {
				for py := 0; py < resolution; py++ {
					x := bounds.Min.X + cx*resolution + px
					y := bounds.Min.Y + cy*resolution + py
					sum += luminance(img.At(x, y).RGBA())
				}
			}
			avg := sum / float64(resolution*resolution)
			f.vectors[cx][cy] = vec.FromAngle(avg * 2 * math.Pi)
		}
	}
	return f, nil
}

// luminance maps premultiplied 16-bit RGBA to [0, 1].
func luminance(r, g, b, _ uint32) float64 {
	// Rec. 601 weights, same intent as the usual gray conversion.
	return (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 65535.0
}
