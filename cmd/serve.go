package cmd

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"mspro-labs/cupnote/internal/db"
	"mspro-labs/cupnote/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Web UI server",
	Run: func(cmd *cobra.Command, args []string) {
		runServer()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServer() {
	// 1. Setup
	appCfg, fileCfg := loadConfig()
	database, err := db.Connect(appCfg.DBPath)
	if err != nil {
		log.Fatalf("Database error: %v", err)
	}
	defer database.Close()

	// 2. Parser only; the API takes text that was recognized on the client.
	svc, closeSvc, err := newService(context.Background(), fileCfg, false)
	if err != nil {
		log.Fatalf("Parser error: %v", err)
	}
	defer closeSvc()

	// 3. Pre-build Templates
	srv, err := web.NewServer(database, svc)
	if err != nil {
		log.Fatalf("Failed to parse templates: %v", err)
	}

	// 4. Start Server
	log.Printf("🌐 Web UI started at http://localhost%s", appCfg.Addr)
	server := &http.Server{
		Addr:         appCfg.Addr,
		Handler:      srv.Handler(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	log.Fatal(server.ListenAndServe())
}
