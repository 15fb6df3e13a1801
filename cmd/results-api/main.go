package main

import (
	"fmt"
	"os"

	"github.com/pevans/newspulse/config"
	"github.com/pevans/newspulse/logger"
	"github.com/pevans/newspulse/results"
)

func main() {
	cfg, err := config.Read()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	store, err := results.Open(cfg.Storage.Results)
	if err != nil {
		log.Error("Failed to open results store", logger.Error(err))
		os.Exit(1)
	}
	defer store.Close()

	router := results.NewAPIServer(store).SetupRouter()

	addr := cfg.API.Addr
	log.Info("Starting results API server",
		logger.String("url", fmt.Sprintf("http://%s/api/v1/results", addr)),
		logger.String("store", cfg.Storage.Results.Type),
	)

	if err := router.Run(addr); err != nil {
		log.Error("Server failed", logger.Error(err))
		os.Exit(1)
	}
}
