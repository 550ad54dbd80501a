package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"BankChat/internal/chatbot"
	"BankChat/internal/config"
	"BankChat/internal/telemetry"

	"github.com/google/uuid"
)

func main() {
	var cfg config.Config

	flag.StringVar(&cfg.UserID, "user", "", "Chat user identifier (generated when empty)")
	flag.BoolVar(&cfg.Debug, "debug", false, "Enable debug logging")
	flag.StringVar(&cfg.DBPath, "db", "bankchat.db", "Path to the transcript database")
	flag.Int64Var(&cfg.Seed, "seed", 0, "Random seed for canned replies (0 uses the clock)")
	flag.Parse()

	if cfg.UserID == "" {
		cfg.UserID = uuid.NewString()
	}

	logger, err := telemetry.InitLogger(cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	_, _, cleanup, err := telemetry.InitTelemetry(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize telemetry: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	db, err := telemetry.InitDB(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize database: %v\n", err)
		os.Exit(1)
	}

	bot := chatbot.New(cfg,
		chatbot.WithLogger(logger),
		chatbot.WithTranscriptDB(db),
	)

	if err := bot.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
