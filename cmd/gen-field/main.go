package main

import (
	"image"
	"image/color"
	"image/png"
	"log"
	"math"
	"os"
)

// Generates assets/field.png, a luminance-encoded flow field: each
// pixel's gray level maps to an angle in [0, 2pi) when loaded by
// field.LoadFromImage.

func main() {
	width, height := 1200, 800
	img := image.NewGray(image.Rect(0, 0, width, height))

	centerX, centerY := float64(width)/2, float64(height)/2

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dx := float64(x) - centerX
			dy := float64(y) - centerY

			// Swirl around the center, with a radial ripple so the
			// flow isn't perfectly circular.
			r := math.Sqrt(dx*dx + dy*dy)
			angle := math.Atan2(dy, dx) + math.Pi/2 + 0.3*math.Sin(r/60)

			// Wrap into [0, 2pi) and encode as luminance.
			angle = math.Mod(angle, 2*math.Pi)
			if angle < 0 {
				angle += 2 * math.Pi
			}
			img.SetGray(x, y, color.Gray{Y: uint8(angle / (2 * math.Pi) * 255)})
		}
	}

	if err := os.MkdirAll("assets", 0o755); err != nil {
		log.Fatal(err)
	}
	f, err := os.Create("assets/field.png")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Fatal(err)
	}
}
