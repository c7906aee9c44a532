// Doorman - Telegram registration bot for a gated community group
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"

	"github.com/communitylabs/doorman/internal/api"
	"github.com/communitylabs/doorman/internal/bot"
	"github.com/communitylabs/doorman/internal/config"
	"github.com/communitylabs/doorman/internal/shared"
	"github.com/communitylabs/doorman/internal/store"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize dependencies.
	recorder, err := store.NewSheetsRecorder(ctx, cfg.CredentialsFile, cfg.SpreadsheetID)
	if err != nil {
		slog.Error("Failed to initialize record store", "error", err)
		os.Exit(1)
	}

	// One-shot access check. Purely diagnostic: a failure here is logged
	// with its cause but never blocks startup.
	verifySheetAccess(ctx, recorder, cfg.SpreadsheetID)

	// Initialize services.
	sessions := bot.NewSessionManager()

	botAPI, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		slog.Error("Failed to connect to Telegram", "error", err)
		os.Exit(1)
	}
	slog.Info("Telegram bot authorized", "username", botAPI.Self.UserName)

	flow := bot.NewFlow(botAPI, sessions, recorder, cfg.InviteLink)

	// Setup the operational HTTP surface.
	healthHandler := api.NewHealthHandler(recorder, cfg)

	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	healthHandler.RegisterHealth(r)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Health server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Health server failed", "error", err)
		}
	}()

	// Start the long-poll update loop.
	u := tgbotapi.NewUpdate(0)
	u.Timeout = int(cfg.PollTimeout / time.Second)
	updates := botAPI.GetUpdatesChan(u)

	go func() {
		for update := range updates {
			flow.HandleUpdate(ctx, update)
		}
	}()
	slog.Info("Bot is online and waiting for users")

	// Wait for shutdown signal.
	<-ctx.Done()
	stop()

	slog.Info("Shutting down gracefully...")
	botAPI.StopReceivingUpdates()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Health server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Bot stopped successfully")
}

// verifySheetAccess tries to open the configured spreadsheet and logs the
// outcome. Mirrors the manual check an operator would run after sharing
// the sheet with the service account.
func verifySheetAccess(ctx context.Context, recorder store.Recorder, spreadsheetID string) {
	title, err := recorder.Describe(ctx)
	if err == nil {
		slog.Info("Spreadsheet access verified", "title", title)
		return
	}
	if shared.IsNotFoundError(err) {
		slog.Error("Spreadsheet not found; check GOOGLE_SHEET_ID and that the sheet is shared with the service account email",
			"spreadsheet_id", spreadsheetID, "error", err)
		return
	}
	slog.Error("Spreadsheet access check failed", "spreadsheet_id", spreadsheetID, "error", err)
}
