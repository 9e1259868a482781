package ocr

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
)

// Preprocess loads a photo and prepares it for recognition: EXIF rotation is
// applied, the image is converted to grayscale, upscaled to at least
// minWidth pixels, contrast-boosted and sharpened. The result is PNG bytes.
func Preprocess(imagePath string, minWidth int) ([]byte, error) {
	img, err := imaging.Open(imagePath, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to open image %s: %w", imagePath, err)
	}

	out := imaging.Grayscale(img)
	if minWidth > 0 && out.Bounds().Dx() < minWidth {
		out = imaging.Resize(out, minWidth, 0, imaging.Lanczos)
	}
	out = imaging.AdjustContrast(out, 20)
	out = imaging.Sharpen(out, 0.8)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, out, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}
