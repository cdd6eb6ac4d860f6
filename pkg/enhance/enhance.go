// Package enhance applies the contrast/brightness adjustments that make
// handwritten timesheets legible to the table-extraction service.
package enhance

import (
	"bytes"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// Adjust bumps contrast by 50% and brightness by 20%, the combination
// that works for the faded pencil entries these sheets arrive with.
func Adjust(img image.Image) *image.NRGBA {
	out := imaging.AdjustContrast(img, 50)
	return imaging.AdjustBrightness(out, 20)
}

// ProcessedKey derives the destination object key for an enhanced copy,
// e.g. "timesheets/week32.png" -> "timesheets/week32_processed.png".
func ProcessedKey(key string) string {
	ext := filepath.Ext(key)
	return strings.TrimSuffix(key, ext) + "_processed" + ext
}

// Bytes decodes an image, enhances it, and re-encodes it in the format
// implied by the destination key (png, tiff, jpeg default). Returns the
// encoded bytes and their content type.
func Bytes(data []byte, dstKey string) ([]byte, string, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}
	format, contentType := formatFor(dstKey)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, Adjust(img), format); err != nil {
		return nil, "", fmt.Errorf("encode image: %w", err)
	}
	return buf.Bytes(), contentType, nil
}

func formatFor(key string) (imaging.Format, string) {
	switch strings.ToLower(filepath.Ext(key)) {
	case ".png":
		return imaging.PNG, "image/png"
	case ".tiff", ".tif":
		return imaging.TIFF, "image/tiff"
	default:
		return imaging.JPEG, "image/jpeg"
	}
}
