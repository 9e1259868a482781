package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"mspro-labs/cupnote/internal/ai"
	"mspro-labs/cupnote/internal/config"
	"mspro-labs/cupnote/internal/ocr"
)

var rootCmd = &cobra.Command{
	Use:   "cupnote",
	Short: "Read coffee bag labels into a tasting journal",
	Long: `cupnote recognizes the text on coffee bag photos, extracts roastery, name,
origin, variety, process, altitude and tasting notes, and keeps the results in a
local journal.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads env and YAML settings every command shares.
func loadConfig() (config.AppConfig, *config.FileConfig) {
	appCfg, err := config.GetAppConfig()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	fileCfg, err := config.LoadFileConfig(appCfg.ConfigPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return appCfg, fileCfg
}

// newService builds the parsing service. withRecognizer selects the OCR
// engine from the recognizer section; the returned func releases it.
func newService(ctx context.Context, fileCfg *config.FileConfig, withRecognizer bool) (*ocr.Service, func(), error) {
	parser, err := fileCfg.NewParser()
	if err != nil {
		return nil, nil, err
	}
	bounds := ocr.DefaultBounds().Merge(fileCfg.Limits)
	if !withRecognizer {
		return ocr.NewService(parser, nil, bounds), func() {}, nil
	}

	rc := fileCfg.Recognizer
	switch rc.Engine {
	case "tesseract":
		t := ocr.NewTesseract(rc.Languages, rc.Tessdata, rc.MinWidth)
		return ocr.NewService(parser, t, bounds), func() {}, nil
	case "gemini":
		client, err := ai.NewClient(ctx, rc.Model)
		if err != nil {
			return nil, nil, err
		}
		return ocr.NewService(parser, client, bounds), client.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown recognizer engine %q", rc.Engine)
	}
}
