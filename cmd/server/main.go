package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/logicton/siteapi/api"
	dbfs "github.com/logicton/siteapi/db"
	"github.com/logicton/siteapi/internal/config"
	"github.com/logicton/siteapi/internal/content"
	"github.com/logicton/siteapi/internal/db"
	"github.com/logicton/siteapi/internal/repository/fsjson"
	"github.com/logicton/siteapi/internal/repository/sqlite"
	"github.com/logicton/siteapi/pkg/notify"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	var configPath = flag.String("config", "", "Path to config YAML file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	api.SetLogger(logger)
	notify.SetLogger(logger)

	log.Printf("Starting site API version %s (built at %s)", version, buildTime)

	ctx := context.Background()

	// Open database connection and run migrations
	conn, err := db.New(ctx, cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := db.Migrate(ctx, conn, dbfs.Migrations); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	validator, err := content.NewValidator(ctx)
	if err != nil {
		log.Fatalf("Failed to compile schemas: %v", err)
	}

	store, err := content.NewStore(cfg.ContentDir, logger)
	if err != nil {
		log.Fatalf("Failed to open content root: %v", err)
	}

	watcher, err := content.NewWatcher(store, logger, 0)
	if err != nil {
		log.Fatalf("Failed to watch content root: %v", err)
	}
	watcher.Start(ctx)

	fileRepo := fsjson.New(store, validator, logger)
	portfolioRepo := sqlite.New(conn, logger)

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	emailClient := notify.NewEmailClient(notify.EmailConfig{
		APIKey:  cfg.Notify.ResendAPIKey,
		From:    cfg.Notify.EmailFrom,
		To:      cfg.Notify.EmailTo,
		Timeout: cfg.Notify.Timeout,
	}, nil)
	lineClient := notify.NewLineClient(notify.LineConfig{
		Token:   cfg.Notify.LineToken,
		Timeout: cfg.Notify.Timeout,
	}, nil)
	dispatcher := notify.NewDispatcher(emailClient, lineClient)

	handler := api.SetupRoutes(cfg, version, buildTime, api.Deps{
		Company:           fileRepo,
		Team:              fileRepo,
		Services:          fileRepo,
		Portfolio:         portfolioRepo,
		SiteConfig:        fileRepo,
		Inquiries:         fileRepo,
		Validator:         validator,
		Notifier:          dispatcher,
		AdminPasswordHash: passwordHash,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.APITimeout,
		WriteTimeout: cfg.APITimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := watcher.Stop(); err != nil {
		log.Printf("Error stopping content watcher: %v", err)
	}

	// Close database connection
	if err := conn.Close(); err != nil {
		log.Printf("Error closing DB: %v", err)
	}

	log.Println("Server exited")
}
