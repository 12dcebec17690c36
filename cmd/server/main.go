// Package main is the entry point for the color table server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/subsurface-colortables/server/internal/api"
	"github.com/subsurface-colortables/server/internal/cache"
	"github.com/subsurface-colortables/server/internal/config"
	"github.com/subsurface-colortables/server/internal/render"
	"github.com/subsurface-colortables/server/internal/service"
	"github.com/subsurface-colortables/server/pkg/colortable"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "config/server.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting color table server on port %d", cfg.Server.Port)

	ctx := context.Background()

	cacheManager, err := cache.NewManager(cache.Config{
		PreviewCacheSizeMB: cfg.Cache.PreviewSizeMB,
		PreviewTTL:         time.Duration(cfg.Cache.PreviewTTLMinutes) * time.Minute,
		PayloadCacheSize:   cfg.Cache.PayloadCacheSize,
	})
	if err != nil {
		log.Fatalf("Failed to initialize cache: %v", err)
	}
	defer cacheManager.Close()

	previewRenderer := render.NewPreviewRenderer(render.Config{
		Width:  cfg.Preview.Width,
		Height: cfg.Preview.Height,
	})

	catalogue := colortable.Default()
	if _, ok := catalogue.Lookup(cfg.Preview.DefaultTable); !ok {
		log.Printf("Default table %q not in catalogue, falling back to %q",
			cfg.Preview.DefaultTable, catalogue.Names()[0])
	}
	log.Printf("Loaded %d color tables", catalogue.Len())

	svc := service.NewColorTableService(service.ColorTableServiceConfig{
		Catalogue:    catalogue,
		Cache:        cacheManager,
		Renderer:     previewRenderer,
		DefaultTable: cfg.Preview.DefaultTable,
	})

	// Set up HTTP router
	router := api.NewRouter(api.RouterConfig{
		Service:     svc,
		CORSOrigins: cfg.Server.CORSOrigins,
		Title:       cfg.Server.Title,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Server listening on http://localhost:%d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
