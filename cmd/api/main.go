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

	"seafreight/internal/config"
	"seafreight/internal/rate"
	"seafreight/internal/server"
)

func main() {
	cfg := config.Load()

	// Select rate provider from config
	est, err := rate.NewByName(cfg.RateProvider)
	if err != nil {
		log.Fatalf("invalid RATE_PROVIDER %q: %v", cfg.RateProvider, err)
	}
	r := server.New(est)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Printf("api listening on :%s (RATE_PROVIDER=%s)", cfg.Port, cfg.RateProvider)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Println("server error:", err)
		os.Exit(1)
	}
}
