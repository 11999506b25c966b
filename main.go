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

	"dexsearch/internal/config"
	"dexsearch/internal/eventbus"
	"dexsearch/internal/source"
	"dexsearch/internal/ui"
)

func main() {
	// Parse command line arguments
	var (
		configPath  string
		sourceURL   string
		logPath     string
		writeConfig bool
	)
	flag.StringVar(&configPath, "config", "", "Path to the config file (default: per-user config dir)")
	flag.StringVar(&sourceURL, "source", "", "URL or file path of the record list (overrides source.url)")
	flag.StringVar(&sourceURL, "s", "", "URL or file path of the record list (shorthand)")
	flag.StringVar(&logPath, "log", "dexsearch.log", "Log file")
	flag.BoolVar(&writeConfig, "write-config", false, "Write the effective config file and exit")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
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
	defer bus.Close()
	subscribeLogging(bus)

	// Load configuration
	configSvc := config.NewConfigServiceWithBus(configPath, bus)
	cfg, err := configSvc.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if sourceURL != "" {
		cfg.Source.URL = sourceURL
	}

	if writeConfig {
		if err := configSvc.Save(cfg); err != nil {
			fmt.Printf("Error writing config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Config written to %s\n", configSvc.Path())
		return
	}

	timeout, err := cfg.RequestTimeout()
	if err != nil {
		fmt.Printf("Error in config: %v\n", err)
		os.Exit(1)
	}

	src, err := source.New(cfg.Source.URL, timeout)
	if err != nil {
		fmt.Printf("Error creating data source: %v\n", err)
		os.Exit(1)
	}
	log.Printf("Reading records from %s", src.Location())

	// Create UI model
	uiModel := ui.NewModel(ctx, cfg, src, bus)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithContext(ctx))
	uiModel.SetProgram(p)

	// Run the UI
	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")
}

// subscribeLogging writes a log line for every search lifecycle event
func subscribeLogging(bus eventbus.EventBus) {
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigLoadedEvent); ok {
			log.Printf("Config loaded from %s (source %s)", event.Path, event.SourceURL)
		}
	})
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigSavedEvent); ok {
			log.Printf("Config saved to %s", event.Path)
		}
	})
	bus.Subscribe(eventbus.EventSearchIssued, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SearchIssuedEvent); ok {
			log.Printf("Search #%d %q (max cp: %t)", event.Generation, event.Query, event.SortByMaxCP)
		}
	})
	bus.Subscribe(eventbus.EventResultsApplied, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ResultsAppliedEvent); ok {
			log.Printf("Search #%d %q: showing %d of %d records", event.Generation, event.Query, event.Shown, event.Fetched)
		}
	})
	bus.Subscribe(eventbus.EventSortModeChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SortModeChangedEvent); ok {
			log.Printf("Sort by max CP: %t", event.SortByMaxCP)
		}
	})
}
