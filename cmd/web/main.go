package main

import (
	"log"
	"os"

	"log/slog"

	"github.com/joho/godotenv"

	"marqet.co/app/internal/config"
	apphttp "marqet.co/app/internal/http"
	"marqet.co/app/internal/mailer"
)

func main() {
	// Load .env file (ignore error if not found - prod uses real env vars)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	}))

	var mail mailer.Service
	if cfg.SMTP.Host != "" {
		mail = mailer.NewSMTPMailer(cfg.SMTP)
	} else {
		logger.Warn("smtp not configured, contact messages are logged only")
	}

	r := apphttp.NewRouter(logger, cfg, mail)

	logger.Info("listening", "addr", cfg.HTTP.Addr, "catalog", cfg.Catalog.BaseURL)
	if err := r.Run(cfg.HTTP.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func logLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
