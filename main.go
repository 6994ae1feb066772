package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"cineverse/api"
	"cineverse/config"
	"cineverse/handlers"
	"cineverse/services/catalog"
	"cineverse/services/metadata"
	"cineverse/utils"
)

func main() {
	configPath := flag.String("config", "cineverse.toml", "path to the TOML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("[main] load config: %v", err)
	}

	if cfg.Server.LogFile != "" {
		log.SetOutput(io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   cfg.Server.LogFile,
			MaxSize:    20, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
		}))
	}

	if cfg.TMDB.APIKey == "" {
		log.Printf("[main] WARNING: no TMDB API key configured; serving catalog-only results")
	}

	cat, err := catalog.Load()
	if err != nil {
		log.Fatalf("[main] load catalog: %v", err)
	}
	log.Printf("[main] catalog loaded: %d browsable titles, languages=%v", len(cat.All()), cat.Languages())

	svc := metadata.NewService(cfg, cat)

	r := utils.NewRouter()
	r.Use(api.RequestLogging())
	handlers.NewMovieHandler(svc, cat).Register(r)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("[main] listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[main] serve: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("[main] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[main] shutdown: %v", err)
	}
}
