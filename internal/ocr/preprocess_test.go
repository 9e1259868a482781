package ocr

import (
	"bytes"
	"context"
	"errors"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

func TestPreprocess_Upscales(t *testing.T) {
	path := filepath.Join(t.TempDir(), "label.png")
	src := imaging.New(200, 100, color.NRGBA{R: 200, G: 120, B: 40, A: 255})
	if err := imaging.Save(src, path); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	data, err := Preprocess(path, 400)
	if err != nil {
		t.Fatalf("Preprocess: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 400 || b.Dy() != 200 {
		t.Errorf("expected 400x200, got %dx%d", b.Dx(), b.Dy())
	}
	r, g, bl, _ := img.At(10, 10).RGBA()
	if r != g || g != bl {
		t.Errorf("expected grayscale pixel, got r=%d g=%d b=%d", r, g, bl)
	}
}

func TestPreprocess_KeepsWideImages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wide.png")
	if err := imaging.Save(imaging.New(500, 50, color.White), path); err != nil {
		t.Fatal(err)
	}
	data, err := Preprocess(path, 400)
	if err != nil {
		t.Fatalf("Preprocess: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 500 {
		t.Errorf("expected width to stay 500, got %d", img.Bounds().Dx())
	}
}

func TestPreprocess_MissingFile(t *testing.T) {
	if _, err := Preprocess(filepath.Join(t.TempDir(), "none.jpg"), 400); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestTesseract_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewTesseract(nil, "", 0).Recognize(ctx, "label.png"); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
