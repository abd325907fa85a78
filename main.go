package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"gridsel/internal/config"
	"gridsel/internal/dataset"
	"gridsel/internal/eventbus"
	"gridsel/internal/ui"
)

func main() {
	var (
		dbPath     string
		table      string
		mode       string
		sampleRows int
		configPath string
	)
	flag.StringVar(&dbPath, "db", "", "SQLite database to load rows from (empty: generated sample data)")
	flag.StringVar(&table, "table", "", "Table to read when -db is set")
	flag.StringVar(&mode, "mode", "", "Selection mode: cell, row or range")
	flag.IntVar(&sampleRows, "rows", 0, "Number of sample rows when no database is given")
	flag.StringVar(&configPath, "config", "", "Config file path")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile("gridsel.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create event bus
	bus := eventbus.New()

	cfg := loadConfig(configPath)

	// Command line flags win over the config file
	if mode != "" {
		cfg.Mode = mode
	}
	if dbPath != "" {
		cfg.Dataset.Path = dbPath
	}
	if table != "" {
		cfg.Dataset.Table = table
	}
	if sampleRows > 0 {
		cfg.Sample.Rows = sampleRows
	}

	// The dataset service answers reload requests on the bus
	datasetSvc := dataset.NewService(bus, cfg.Dataset.Path, cfg.Dataset.Table, cfg.Sample.Rows)

	uiModel := ui.NewModel(bus, cfg)

	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithMouseCellMotion())
	uiModel.SetProgram(p)

	// Forward bus events into the Bubble Tea loop
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	bus.Subscribe(eventbus.EventRowsLoaded, forward)
	bus.Subscribe(eventbus.EventDatasetError, forward)

	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Load the dataset in the background
	go func() {
		if err := datasetSvc.Load(ctx); err != nil {
			log.Printf("Initial load failed: %v", err)
		}
	}()

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")

	close(eventChan)
	cancel()
}

// loadConfig reads the config file, falling back to defaults when it is
// missing or unreadable.
func loadConfig(path string) *config.Config {
	svc := config.NewConfigService()

	if path != "" {
		cfg, err := svc.LoadFromPath(path)
		if err != nil {
			log.Printf("Could not load config from %s: %v", path, err)
			return config.DefaultConfig()
		}
		return cfg
	}

	cfg, err := svc.Load()
	if err != nil {
		log.Printf("Using default config: %v", err)
		return config.DefaultConfig()
	}
	return cfg
}
