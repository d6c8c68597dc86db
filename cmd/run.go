package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"coinapi/api"
	"coinapi/config"
	"coinapi/events"
	"coinapi/service"
	"coinapi/store"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	cfg := config.Get()

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Select the document store: postgres when DATABASE_URL is set,
	// otherwise the JSON file store.
	var documentStore store.DocumentStore
	if cfg.DatabaseURL != "" {
		log.Info("Connecting to database...")
		pg, err := store.NewPostgresStore(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pg.Close()
		documentStore = pg
		log.Info("Database connection established")
	} else {
		documentStore = store.NewFileStore(cfg.DatabasePath)
		log.WithField("path", cfg.DatabasePath).Info("Using file-backed document store")
	}

	// Event bus with logging subscribers
	bus := events.NewBus()
	bus.Subscribe(events.EventTypeUserCreated, logUserCreated)
	bus.Subscribe(events.EventTypeCoinsTransferred, logCoinsTransferred)

	// One mutex serializes every load-mutate-save cycle across both services
	var storeMu sync.Mutex
	userService := service.NewUserService(documentStore, &storeMu, bus, cfg.StartingBalance)
	transferService := service.NewTransferService(documentStore, &storeMu, bus)

	router := api.NewRouter(userService, transferService)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.WithField("addr", server.Addr).Infof("Server is running in %s mode", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info("Shutdown completed")
	return nil
}

func logUserCreated(_ context.Context, event events.Event) {
	e, ok := event.(events.UserCreatedEvent)
	if !ok {
		return
	}
	log.WithFields(log.Fields{
		"userID":         e.UserID,
		"userName":       e.UserName,
		"initialBalance": e.InitialBalance,
	}).Info("User created")
}

func logCoinsTransferred(_ context.Context, event events.Event) {
	e, ok := event.(events.CoinsTransferredEvent)
	if !ok {
		return
	}
	log.WithFields(log.Fields{
		"from":        e.FromUserName,
		"to":          e.ToUserName,
		"amount":      e.Amount,
		"fromBalance": e.FromBalance,
		"toBalance":   e.ToBalance,
	}).Info("Coins transferred")
}
