package ocr

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"mspro-labs/cupnote/internal/labelparser"
	"mspro-labs/cupnote/internal/models"
)

var logger = log.New(os.Stdout, "OCR: ", log.LstdFlags|log.Lshortfile)

// Recognition is the raw output of a recognizer for one image.
type Recognition struct {
	Text   string
	Blocks []labelparser.Block
}

// Service recognizes, parses and validates coffee labels.
type Service struct {
	parser     *labelparser.Parser
	recognizer Recognizer
	bounds     Bounds
}

// NewService wires a parser to a recognizer. recognizer may be nil when only
// the text entry points are used.
func NewService(parser *labelparser.Parser, recognizer Recognizer, bounds Bounds) *Service {
	if parser == nil {
		parser = labelparser.Default()
	}
	if bounds == nil {
		bounds = DefaultBounds()
	}
	return &Service{parser: parser, recognizer: recognizer, bounds: bounds}
}

// RecognizeText runs the recognizer on one image. On failure it returns an
// empty Recognition along with the error; a panicking recognizer is reported
// as an error too.
func (s *Service) RecognizeText(ctx context.Context, imagePath string) (rec Recognition, err error) {
	if s.recognizer == nil {
		return Recognition{}, errors.New("no recognizer configured")
	}
	defer func() {
		if r := recover(); r != nil {
			logger.Printf("Panic recognizing %s: %v", imagePath, r)
			rec, err = Recognition{}, fmt.Errorf("recognizer panicked on %s: %v", imagePath, r)
		}
	}()

	blocks, err := s.recognizer.Recognize(ctx, imagePath)
	if err != nil {
		return Recognition{}, fmt.Errorf("failed to recognize %s: %w", imagePath, err)
	}
	return Recognition{
		Text:   strings.Join(labelparser.OrderLines(blocks), "\n"),
		Blocks: blocks,
	}, nil
}

// RecognizeAndParse recognizes one image and returns the validated scan.
func (s *Service) RecognizeAndParse(ctx context.Context, imagePath string) (models.Scan, error) {
	rec, err := s.RecognizeText(ctx, imagePath)
	if err != nil {
		return models.Scan{Source: imagePath}, err
	}
	return models.Scan{
		Source:  imagePath,
		RawText: rec.Text,
		Info:    s.Validate(s.ParseBlocks(rec.Blocks)),
	}, nil
}

// ParseBlocks parses recognizer output without validating it.
func (s *Service) ParseBlocks(blocks []labelparser.Block) labelparser.ParsedCoffeeInfo {
	return s.parser.Parse(blocks)
}

// ParseCoffeeInfo parses a newline-joined transcript.
func (s *Service) ParseCoffeeInfo(text string) labelparser.ParsedCoffeeInfo {
	return s.parser.ParseText(text)
}

// Validate drops fields whose length is out of range.
func (s *Service) Validate(info labelparser.ParsedCoffeeInfo) labelparser.ParsedCoffeeInfo {
	return s.bounds.Validate(info)
}

// Parser returns the label parser the service runs.
func (s *Service) Parser() *labelparser.Parser {
	return s.parser
}

// ScanAll scans each photo with at most workers recognitions in flight.
// Successful scans come back in input order; failures are joined into the
// returned error and leave no entry.
func (s *Service) ScanAll(ctx context.Context, paths []string, workers int) ([]models.Scan, error) {
	if workers <= 0 {
		workers = 1
	}
	scans := make([]models.Scan, len(paths))
	errs := make([]error, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range paths {
		g.Go(func() error {
			logger.Printf("Scanning %s", path)
			scans[i], errs[i] = s.RecognizeAndParse(ctx, path)
			return nil
		})
	}
	_ = g.Wait()

	out := make([]models.Scan, 0, len(paths))
	for i := range paths {
		if errs[i] == nil {
			out = append(out, scans[i])
		}
	}
	return out, errors.Join(errs...)
}
