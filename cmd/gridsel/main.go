package main

import (
	"context"
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

// Minimal entrypoint: config file plus sample data, no flags. The root
// main.go is the full-featured launcher.
func main() {
	logFile, err := os.OpenFile("gridsel.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	bus := eventbus.New()

	cfg, err := config.NewConfigService().Load()
	if err != nil {
		log.Printf("Using default config: %v", err)
		cfg = config.DefaultConfig()
	}

	datasetSvc := dataset.NewService(bus, cfg.Dataset.Path, cfg.Dataset.Table, cfg.Sample.Rows)

	uiModel := ui.NewModel(bus, cfg)
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithMouseCellMotion())
	uiModel.SetProgram(p)

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

	go func() {
		if err := datasetSvc.Load(ctx); err != nil {
			log.Printf("Initial load failed: %v", err)
		}
	}()

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	close(eventChan)
	cancel()
}
