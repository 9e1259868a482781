package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var (
	scanWorkers int
	scanNoSave  bool
)

var scanCmd = &cobra.Command{
	Use:   "scan <image>...",
	Short: "Recognize and parse coffee bag photos",
	Long:  `Runs the configured OCR engine on each photo, parses the label, validates the fields and stores the result in the journal.`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runScan(cmd, args)
	},
}

func init() {
	scanCmd.Flags().IntVarP(&scanWorkers, "workers", "w", 0, "parallel recognitions (default from config)")
	scanCmd.Flags().BoolVar(&scanNoSave, "no-save", false, "print results without journaling them")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, paths []string) {
	appCfg, fileCfg := loadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	svc, closeSvc, err := newService(ctx, fileCfg, true)
	if err != nil {
		log.Fatalf("Recognizer error: %v", err)
	}
	defer closeSvc()

	workers := scanWorkers
	if workers <= 0 {
		workers = fileCfg.Recognizer.Workers
	}

	scans, scanErr := svc.ScanAll(ctx, paths, workers)
	if scanErr != nil {
		log.Printf("⚠️ Warning: some photos failed: %v", scanErr)
	}
	out := cmd.OutOrStdout()
	for _, s := range scans {
		cmd.Printf("== %s\n", s.Source)
		printInfo(out, s.Info)
	}

	if len(scans) == 0 {
		log.Println("No scans to save. Exiting.")
		return
	}
	if !scanNoSave {
		saveScans(appCfg.DBPath, scans)
	}
}
