// Package ocr connects text recognizers to the label parser: it turns a photo
// into positioned text blocks, parses them and validates the result.
package ocr

import (
	"context"
	"errors"

	"mspro-labs/cupnote/internal/labelparser"
)

// ErrTesseractUnavailable is returned by Tesseract in builds without cgo.
var ErrTesseractUnavailable = errors.New("tesseract is not available in this build (requires cgo)")

// Recognizer reads the text blocks printed in an image file.
type Recognizer interface {
	Recognize(ctx context.Context, imagePath string) ([]labelparser.Block, error)
}

// Tesseract recognizes text locally with libtesseract.
type Tesseract struct {
	Languages      []string
	TessdataPrefix string
	MinWidth       int
}

// NewTesseract returns a Tesseract recognizer. Images narrower than minWidth
// are upscaled before recognition.
func NewTesseract(languages []string, tessdataPrefix string, minWidth int) *Tesseract {
	if len(languages) == 0 {
		languages = []string{"eng"}
	}
	return &Tesseract{
		Languages:      languages,
		TessdataPrefix: tessdataPrefix,
		MinWidth:       minWidth,
	}
}

// Recognize preprocesses the image and returns one block per text block
// Tesseract finds, positioned by the top edge of its bounding box.
func (t *Tesseract) Recognize(ctx context.Context, imagePath string) ([]labelparser.Block, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return t.recognize(imagePath)
}
