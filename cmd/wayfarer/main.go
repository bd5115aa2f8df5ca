// Package main provides the Wayfarer travel journal application: capture
// photos, spoken notes, and text notes as you move between places, then
// generate a narrative travelogue stitching them together with map links.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/entrhq/wayfarer/pkg/config"
	"github.com/entrhq/wayfarer/pkg/executor/tui"
	"github.com/entrhq/wayfarer/pkg/journal"
	"github.com/entrhq/wayfarer/pkg/location"
	"github.com/entrhq/wayfarer/pkg/logging"
	"github.com/entrhq/wayfarer/pkg/transcribe"
)

const version = "0.1.0"

func main() {
	configPath := flag.String("config", "", "path to config file (default ~/.wayfarer/config.yaml)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("Wayfarer v%s\n", version)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	logger, logErr := logging.NewLogger("wayfarer")
	if logErr != nil {
		// Fallback logger already reported the problem; keep going.
		log.Printf("Warning: file logging unavailable: %v", logErr)
	}
	defer logger.Close()
	logger.Infof("Wayfarer v%s starting, session %s", version, logger.SessionID())

	// Graceful shutdown on interrupt.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	provider := location.NewScripted(cfg.Waypoints(), cfg.Journey.MoveInterval.Std())
	recognizer := transcribe.NewScriptedRecognizer(cfg.Speech.Utterances, cfg.Speech.SegmentInterval.Std())
	ctrl := journal.NewController(provider, recognizer, logger)

	executor := tui.NewExecutor(ctrl, cfg, logger)
	if err := executor.Run(ctx); err != nil {
		logger.Errorf("executor exited with error: %v", err)
		log.Fatalf("Error: %v", err)
	}
	logger.Infof("Wayfarer exiting")
}
