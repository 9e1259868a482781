//go:build !cgo

package ocr

import "mspro-labs/cupnote/internal/labelparser"

func (t *Tesseract) recognize(string) ([]labelparser.Block, error) {
	return nil, ErrTesseractUnavailable
}
