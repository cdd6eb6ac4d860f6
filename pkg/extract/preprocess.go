package extract

import (
	"image"
	"image/color"
	"os"

	"github.com/disintegration/imaging"
)

// preprocessForOCR prepares a local scan for Tesseract: grayscale, a
// contrast bump, upscale of small images, then a global threshold.
// Returns the path of a temp file, or the original path when the temp
// file cannot be created.
func preprocessForOCR(path string) (string, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return "", err
	}
	gray := imaging.Grayscale(img)
	gray = imaging.AdjustContrast(gray, 15)
	if gray.Bounds().Dy() < 900 {
		gray = imaging.Resize(gray, 0, 1300, imaging.Lanczos)
	}
	bin := binarize(gray, 210)

	tmpFile, err := os.CreateTemp("", "shiftscan-ocr-*.png")
	if err != nil {
		return path, nil
	}
	tmp := tmpFile.Name()
	_ = tmpFile.Close()
	if err := imaging.Save(bin, tmp); err != nil {
		_ = os.Remove(tmp)
		return path, nil
	}
	return tmp, nil
}

// binarize performs a simple global threshold on a grayscale image.
func binarize(img image.Image, threshold uint8) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bb, _ := img.At(x, y).RGBA()
			gray := uint8((r + g + bb) / 3 >> 8)
			var v uint8 = 255
			if gray <= threshold {
				v = 0
			}
			out.Set(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return out
}
