//go:build cgo

package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"mspro-labs/cupnote/internal/labelparser"
)

func (t *Tesseract) recognize(imagePath string) ([]labelparser.Block, error) {
	data, err := Preprocess(imagePath, t.MinWidth)
	if err != nil {
		return nil, err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if t.TessdataPrefix != "" {
		if err := client.SetTessdataPrefix(t.TessdataPrefix); err != nil {
			return nil, fmt.Errorf("failed to set tessdata path: %w", err)
		}
	}
	if err := client.SetLanguage(t.Languages...); err != nil {
		return nil, fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetImageFromBytes(data); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_BLOCK)
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	blocks := make([]labelparser.Block, 0, len(boxes))
	for _, box := range boxes {
		text := strings.TrimSpace(box.Word)
		if text == "" {
			continue
		}
		y := float64(box.Box.Min.Y)
		blocks = append(blocks, labelparser.Block{Text: text, VerticalPosition: &y})
	}
	return blocks, nil
}
