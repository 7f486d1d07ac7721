package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"debris-analyzer/config"
	"debris-analyzer/internal/api/httpapi"
	"debris-analyzer/internal/api/telegram"
	"debris-analyzer/internal/container"
	"debris-analyzer/internal/infrastructure/report"
	"debris-analyzer/internal/infrastructure/storage"
	"debris-analyzer/internal/infrastructure/vision"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API (and the Telegram bot when TELEGRAM_TOKEN is set)",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	detector := vision.NewGoCVDetector(cfg.MinContourArea)
	detector.SuppressNested = cfg.SuppressNested

	// Собираем сервисы приложения
	appContainer := container.New(storage.NewMemoryUserRepository(), detector, report.NewTextDescriber())

	var botDone <-chan struct{}
	if cfg.TelegramToken != "" {
		bot, err := telegram.NewBot(cfg.TelegramToken, appContainer)
		if err != nil {
			return fmt.Errorf("create bot: %w", err)
		}
		botDone = startBot(ctx, bot.Run)
	} else {
		log.Println("TELEGRAM_TOKEN is not set, bot is disabled")
		botDone = startBot(ctx, nil)
	}

	// Бот останавливается по отмене ctx, дожидаемся текущего обработчика
	defer func() {
		stop()
		<-botDone
	}()

	api := httpapi.NewServer(appContainer, httpapi.Options{
		MaxUploadBytes: cfg.MaxUploadBytes(),
		CORSOrigin:     cfg.CORSOrigin,
	})
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           api.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("HTTP API listening on %s", cfg.HTTPAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// startBot запускает цикл бота в отдельной горутине.
// Возвращённый канал закрывается, когда run завершился.
func startBot(ctx context.Context, run func(context.Context) error) <-chan struct{} {
	done := make(chan struct{})
	if run == nil {
		close(done)
		return done
	}
	go func() {
		defer close(done)
		log.Println("Bot is running...")
		if err := run(ctx); err != nil {
			log.Printf("Bot error: %v", err)
		}
	}()
	return done
}
