package cmd

import (
	"context"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"mspro-labs/cupnote/internal/config"
	"mspro-labs/cupnote/internal/labelparser"
	"mspro-labs/cupnote/internal/models"
	"mspro-labs/cupnote/internal/scraper"
)

// scrapeCmd represents the scrape command
var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Import a roastery's product pages into the journal",
	Long:  `Opens the configured roastery shop, reads each product page as if it were a label, parses it and upserts the results into the local database.`,
	Run: func(cmd *cobra.Command, args []string) {
		runScrape()
	},
}

func init() {
	rootCmd.AddCommand(scrapeCmd)
}

func runScrape() {
	// 1. Load Config
	appCfg, fileCfg := loadConfig()
	siteCfg, err := config.LoadSiteConfig(appCfg.ConfigPath)
	if err != nil {
		log.Fatalf("Failed to load site config: %v", err)
	}
	svc, closeSvc, err := newService(context.Background(), fileCfg, false)
	if err != nil {
		log.Fatalf("Parser error: %v", err)
	}
	defer closeSvc()

	// 2. Run Scraper
	pages, err := scraper.Run(siteCfg)
	if err != nil {
		log.Fatalf("Scraping failed: %v", err)
	}
	log.Printf("Scraper found %d product pages.", len(pages))

	// 3. Parse each page like a label
	var scans []models.Scan
	for _, page := range pages {
		info := svc.Parser().ParseLines(page.Lines)
		if info.Roastery == "" && siteCfg.Roastery != "" {
			info = info.With(labelparser.FieldRoastery, siteCfg.Roastery)
		}
		info = svc.Validate(info)
		if info.IsEmpty() {
			log.Printf("Nothing parsed from %s", page.URL)
			continue
		}
		scans = append(scans, models.Scan{Source: page.URL, RawText: strings.Join(page.Lines, "\n"), Info: info})
	}

	if len(scans) == 0 {
		log.Println("No items to save. Exiting.")
		return
	}

	// 4. Save to DB
	saveScans(appCfg.DBPath, scans)
}
