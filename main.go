package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/sunthewhat/cert-overlay-api/common/config"
	"github.com/sunthewhat/cert-overlay-api/common/gorm"
)

func main() {
	configPath := flag.String("config", config.DefaultConfigPath, "Path to config file")
	isPushDB := flag.Bool("PushDB", false, "Run database migration")
	isRunAfter := flag.Bool("Run", false, "Run after db process")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err, "path", *configPath)
		os.Exit(1)
	}
	initLogger(cfg.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *isPushDB {
		if cfg.ParticipantStore != "postgres" {
			slog.Error("PushDB requires the postgres participant store", "store", cfg.ParticipantStore)
			os.Exit(1)
		}

		db, err := gorm.InitGorm(cfg.Postgres)
		if err != nil {
			slog.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		err = gorm.PushDB(db, cfg.ParticipantCollection)
		gorm.Close(db)
		if err != nil {
			slog.Error("Failed to migrate database", "error", err)
			os.Exit(1)
		}

		if !*isRunAfter {
			return
		}
	}

	if err := run(ctx, cfg); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

func initLogger(production bool) {
	var handler slog.Handler
	if production {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	slog.SetDefault(slog.New(handler))
}
