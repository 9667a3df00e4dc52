package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	slackapi "github.com/slack-go/slack"

	"github.com/agnikas07/HustleBot/internal/config"
	"github.com/agnikas07/HustleBot/internal/database"
	"github.com/agnikas07/HustleBot/internal/domain/service"
	"github.com/agnikas07/HustleBot/internal/handlers"
	"github.com/agnikas07/HustleBot/internal/sheets"
	"github.com/agnikas07/HustleBot/migrator/sqlite"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

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

	slackClient := slackapi.New(cfg.SlackBotToken)

	sheetClient, err := sheets.New(context.Background(), cfg.GoogleCredentialsFile, cfg.SpreadsheetID, cfg.WorksheetName)
	if err != nil {
		log.Fatalf("Failed to initialize sheets client: %v", err)
	}

	services := service.NewInstance(dm, slackClient, sheetClient, cfg, logger)
	services.Scheduler.Start()
	defer services.Scheduler.Stop()

	handler := handlers.New(services.Leaderboard, cfg.SlackSigningSecret, logger)

	http.HandleFunc("/slack/commands", handler.HandleSlashCommand)
	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})

	log.Printf("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
