package cmd

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"mspro-labs/cupnote/internal/config"
	"mspro-labs/cupnote/internal/db"
)

var journalLimit int

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Manage saved scans",
}

var journalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved scans, newest first",
	Run: func(cmd *cobra.Command, args []string) {
		database := openJournal()
		defer database.Close()

		scans, err := db.ListScans(database, journalLimit)
		if err != nil {
			log.Fatalf("Failed to list scans: %v", err)
		}
		if len(scans) == 0 {
			fmt.Println("Journal is empty.")
			return
		}
		for _, s := range scans {
			fmt.Printf("%s  %-40s %-20s %s\n", s.UpdatedAt.Format("2006-01-02 15:04"), s.Title(), s.Info.Roastery, s.Source)
		}
	},
}

var journalShowCmd = &cobra.Command{
	Use:   "show <source>",
	Short: "Show one saved scan",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		database := openJournal()
		defer database.Close()

		s, err := db.GetScan(database, args[0])
		if errors.Is(err, db.ErrNotFound) {
			log.Fatalf("No scan saved for %q", args[0])
		}
		if err != nil {
			log.Fatalf("Failed to load scan: %v", err)
		}
		fmt.Printf("Source:  %s\nUpdated: %s\n\n", s.Source, s.UpdatedAt.Format("2006-01-02 15:04"))
		printInfo(cmd.OutOrStdout(), s.Info)
	},
}

var journalDeleteCmd = &cobra.Command{
	Use:   "delete <source>",
	Short: "Delete a saved scan",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		database := openJournal()
		defer database.Close()

		if err := db.DeleteScan(database, args[0]); err != nil {
			log.Fatalf("Failed to delete scan: %v", err)
		}
		fmt.Printf("Deleted %s\n", args[0])
	},
}

func init() {
	journalListCmd.Flags().IntVarP(&journalLimit, "limit", "n", 20, "maximum scans to list (0 = all)")
	journalCmd.AddCommand(journalListCmd, journalShowCmd, journalDeleteCmd)
	rootCmd.AddCommand(journalCmd)
}

func openJournal() *sql.DB {
	appCfg, err := config.GetAppConfig()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	database, err := db.Connect(appCfg.DBPath)
	if err != nil {
		log.Fatalf("Database error: %v", err)
	}
	return database
}
