package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/pmurley/link-tracker/internal/bot"
	"github.com/pmurley/link-tracker/internal/cache"
	"github.com/pmurley/link-tracker/internal/config"
	"github.com/pmurley/link-tracker/internal/sheets"
	"github.com/pmurley/link-tracker/internal/tracker"
	"github.com/pmurley/link-tracker/internal/web"
	"github.com/pmurley/link-tracker/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	log := logger.New(cfg.LogLevel)

	// Misconfiguration is reported per request so the dashboard can show it.
	if err := cfg.Validate(); err != nil {
		log.Warn("Configuration incomplete", "error", err)
	}

	fetcher, err := sheets.New(cfg)
	if err != nil {
		log.Fatal("Failed to create sheet fetcher", "error", err)
	}

	service := tracker.NewService(fetcher, cfg.PageSize, log)
	sessions := cache.New(cfg.SessionTTL)
	handler := web.NewHandler(service, sessions, log)

	server := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           web.NewRouter(handler),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      cfg.FetchTimeout + 15*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening", "addr", server.Addr, "source", fetcher.Source())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server failed", "error", err)
		}
	}()

	var b *bot.Bot
	if cfg.DiscordToken != "" {
		b, err = bot.New(cfg, log, service)
		if err != nil {
			log.Fatal("Failed to create bot", "error", err)
		}
		if err := b.Start(); err != nil {
			log.Fatal("Failed to start bot", "error", err)
		}
	}

	log.Info("Link tracker is running. Press CTRL+C to exit.")
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	log.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Error during HTTP shutdown", "error", err)
	}
	if b != nil {
		if err := b.Stop(); err != nil {
			log.Error("Error during bot shutdown", "error", err)
		}
	}
	sessions.Flush()
}
