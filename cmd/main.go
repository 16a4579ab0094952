package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"mentor-chat/domain/event"
	"mentor-chat/httpapi"
	"mentor-chat/repositories"
	"mentor-chat/runtime"
	"mentor-chat/runtime/workers"
	"mentor-chat/services"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and centralizes error reporting.
// This pattern is preferred over calling os.Exit or panic directly because:
// 1. It ensures all 'defer' statements (like database cleanup) are executed before the program exits.
// 2. It improves testability by decoupling the initialization logic from the main entry point.
// 3. It provides a structured way to handle graceful shutdowns for HTTP and background workers.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := newLogger(config.LogLevel)

	displayZone, err := time.LoadLocation(config.DisplayZone)
	if err != nil {
		return fmt.Errorf("invalid DISPLAY_ZONE %q: %w", config.DisplayZone, err)
	}

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Repositories & Services
	roomRepository := repositories.NewRoomRepository(db, log)
	messageRepository := repositories.NewMessageRepository(db, log, config.MaxContentLength)
	memberRepository := repositories.NewMemberRepository(db)

	nicknames, err := services.NewNicknameResolver(memberRepository, config.NicknameTTL, log)
	if err != nil {
		return fmt.Errorf("nickname cache init failed: %w", err)
	}
	roomService := services.NewRoomService(
		roomRepository, messageRepository, memberRepository, nicknames,
		config.AdminID, displayZone, log)

	// 4. Fan-out pipeline under supervision
	registry := runtime.NewRegistry()
	events := make(chan event.DomainEvent, config.BufferSize)
	sup := workers.NewSupervisor(log)
	sup.Add(workers.NewEventFanout(log, registry, events, config.SinkTimeout))

	chatService := services.NewChatService(
		roomRepository, messageRepository, registry, events, config.PageSize, log)

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go sup.Run(ctx)

	// 6. HTTP Server
	server := httpapi.NewServer(log, chatService, roomService,
		[]byte(config.TokenSecret), config.ConnectionBufferSize)
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	httpServer := &http.Server{Addr: address, Handler: server.Router()}

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "address", address, "at", time.Now().UTC())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("http server error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 8. Final Cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Warn("http shutdown incomplete", "error", err)
	}
	sup.Stop()
	log.Info("Program stopped cleanly")

	return nil
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: l}))
}
