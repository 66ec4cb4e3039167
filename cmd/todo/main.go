package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-kratos/kratos/v2/log"

	"tabdo/internal/config"
	"tabdo/internal/logging"
	"tabdo/internal/mode"
	"tabdo/internal/storage"
	"tabdo/internal/task"
	"tabdo/internal/ui"
)

func main() {
	configPath := flag.String("config", config.ResolveConfigPath(), "path to config.toml")
	flag.Parse()

	cfg, err := config.LoadOrCreate(*configPath)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, logFile, err := logging.Open(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		fmt.Printf("failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	kv, err := storage.Open(cfg.Backend, cfg.DBPath)
	if err != nil {
		fmt.Printf("failed to open %s store: %v\n", cfg.Backend, err)
		os.Exit(1)
	}
	defer kv.Close()

	store := task.NewStore(storage.NewAdapter(kv, logger), logger)
	ctrl := mode.NewController(store, logger)
	log.NewHelper(logger).Infof("loaded %d tasks from %s (%s)", len(store.List()), cfg.DBPath, cfg.Backend)

	if err := ui.Run(store, ctrl, cfg); err != nil {
		fmt.Printf("error running program: %v\n", err)
		os.Exit(1)
	}
}
