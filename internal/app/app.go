package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"pdf-chat/internal/api"
	"pdf-chat/internal/config"
	"pdf-chat/internal/document"
	"pdf-chat/internal/llm"
	"pdf-chat/internal/service"
	"pdf-chat/internal/session"
)

const (
	sweepInterval   = time.Minute
	shutdownTimeout = 15 * time.Second
)

// App holds the wired components of a running server.
type App struct {
	Server   *http.Server
	Sessions *session.Manager
}

// NewApp wires every component from cfg. It performs no network I/O.
func NewApp(cfg *config.Config) (*App, error) {
	if cfg == nil {
		return nil, errors.New("app: nil config")
	}

	provider := llm.NewOpenAIProvider(llm.Config{
		APIKey:  cfg.OpenAIAPIKey,
		BaseURL: cfg.OpenAIBaseURL,
	})
	generator := service.NewAnswerGenerator(provider, cfg.OpenAIModel)
	chatService := service.NewChatService(generator, cfg.TokenBudget)
	settingsService := service.NewSettingsService(cfg.DefaultTone, cfg.OpenAIModel, cfg.TokenBudget)

	extractor := document.NewPDFExtractor()
	sessions := session.NewManager(cfg.SessionIdleTimeout, func(id string) *session.State {
		return session.New(id, extractor, settingsService.DefaultTone())
	})

	chatHandler := api.NewChatHandler(chatService, settingsService, cfg.MaxUploadBytes)
	pageHandler := api.NewPageHandler(chatService, settingsService, cfg.MaxUploadBytes)
	router := api.NewRouter(chatHandler, pageHandler, sessions)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		WriteTimeout:      0, // Completions and uploads have no fixed upper bound
		IdleTimeout:       120 * time.Second,
	}

	return &App{Server: server, Sessions: sessions}, nil
}

// Run loads the configuration, serves until SIGINT or SIGTERM and returns the
// process exit code.
func Run(flags *pflag.FlagSet) int {
	cfg, err := config.LoadConfig(flags)
	if err != nil {
		// slog is not yet configured, so use the default logger for this critical error.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	setupLogger(cfg.LogLevel)

	logConfigSource()

	app, err := NewApp(cfg)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		return 1
	}
	slog.Info("Loaded application settings",
		"model", cfg.OpenAIModel,
		"token_budget", cfg.TokenBudget,
		"session_idle_timeout", cfg.SessionIdleTimeout.String(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Serve(ctx); err != nil {
		slog.Error("Server failed", "error", err)
		return 1
	}
	return 0
}

// Serve runs the HTTP server and the session sweeper until ctx is done, then
// shuts the server down gracefully.
func (a *App) Serve(ctx context.Context) error {
	go a.Sessions.Run(ctx, sweepInterval)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "addr", a.Server.Addr)
		if err := a.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.Server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return <-errCh
}

func logConfigSource() {
	configFileUsed := viper.ConfigFileUsed()
	if configFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", configFileUsed)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

func setupLogger(logLevel string) {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
