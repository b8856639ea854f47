package main

import (
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"

	"linemark/internal/bookmark"
	"linemark/internal/config"
	"linemark/internal/lsp"
	"linemark/internal/settings"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

func main() {
	configPath := flag.String("config", "", "path to the config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Set up logging
	commonlog.Configure(cfg.Verbosity, nil)

	// Create logs directory if it doesn't exist
	logsDir := filepath.Join(os.TempDir(), "linemark")
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		log.Fatalf("Failed to create logs directory: %v", err)
	}

	// Open log file
	logFile, err := os.OpenFile(
		filepath.Join(logsDir, "linemark.log"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer logFile.Close()

	// Set up multi-writer for logging
	multiWriter := io.MultiWriter(os.Stderr, logFile)
	log.SetOutput(multiWriter)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
	log.Println("Starting linemark LSP server...")

	// Open the settings store and load persisted bookmarks
	if err := os.MkdirAll(filepath.Dir(cfg.StorePath), 0755); err != nil {
		log.Fatalf("Failed to create store directory: %v", err)
	}
	persister, err := settings.NewSQLiteStore(cfg.StorePath)
	if err != nil {
		log.Fatalf("Failed to open settings store: %v", err)
	}
	defer persister.Close()

	store := bookmark.NewStore(persister)
	if err := store.Load(); err != nil {
		log.Fatalf("Failed to load bookmarks: %v", err)
	}

	// Initialize the server
	server, err := lsp.NewServer(store)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	// Run the server
	if err := server.RunStdio(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
