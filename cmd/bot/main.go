package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diegoclair/hackathon-bot/internal/config"
	"github.com/diegoclair/hackathon-bot/internal/database"
	"github.com/diegoclair/hackathon-bot/internal/domain/service"
	"github.com/diegoclair/hackathon-bot/internal/handlers"
	"github.com/diegoclair/hackathon-bot/internal/notifier"
	"github.com/diegoclair/hackathon-bot/internal/sheets"
	"github.com/diegoclair/hackathon-bot/internal/tracking"
	"github.com/diegoclair/hackathon-bot/migrator/sqlite"
	"github.com/joho/godotenv"
	"github.com/slack-go/slack"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()
	if cfg.SlackBotToken == "" || cfg.SlackSigningSecret == "" {
		log.Fatal("SLACK_BOT_TOKEN and SLACK_SIGNING_SECRET are required")
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Println("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	dm := database.NewInstance(db)

	if cfg.LegacyConfigPath != "" {
		imported, err := database.ImportLegacyConfig(cfg.LegacyConfigPath, dm.Guild())
		if err != nil {
			log.Fatalf("Failed to import legacy config: %v", err)
		}
		log.Printf("Imported %d guild configs from %s", imported, cfg.LegacyConfigPath)
	}

	sheetsClient, err := sheets.New(context.Background(), cfg.GoogleCredentialsFile)
	if err != nil {
		log.Fatalf("Failed to initialize Google Sheets client: %v", err)
	}

	slackClient := slack.New(cfg.SlackBotToken)

	svc := service.NewInstance(dm, sheetsClient, notifier.NewSlack(slackClient), tracking.NewMemoryStore(), service.Settings{
		DefaultSpreadsheetID: cfg.DefaultSpreadsheetID,
		DefaultReminderDays:  cfg.DeadlineReminderDays,
		SheetRange:           cfg.SheetRange,
		PollInterval:         cfg.PollInterval,
		FetchTimeout:         cfg.FetchTimeout,
		ServiceAccountEmail:  sheetsClient.ServiceAccountEmail(),
	})

	svc.Poller.Start()

	handler := handlers.New(slackClient, svc.Hackathon, cfg.SlackSigningSecret)

	mux := http.NewServeMux()
	mux.HandleFunc("/slack/commands", handler.HandleSlashCommand)
	mux.HandleFunc("/health", handler.HandleHealth)

	httpSrv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("Shutting down...")

	svc.Poller.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(ctx); err != nil {
		log.Printf("Error shutting down server: %v", err)
	}

	log.Println("Bye")
}
