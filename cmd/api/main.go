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

	"github.com/joho/godotenv"

	"github.com/Jadav-Gajanand-19/aiera-backend/internal/config"
	"github.com/Jadav-Gajanand-19/aiera-backend/internal/handler"
	"github.com/Jadav-Gajanand-19/aiera-backend/internal/model/persona"
	"github.com/Jadav-Gajanand-19/aiera-backend/internal/service/ai"
	chatstore "github.com/Jadav-Gajanand-19/aiera-backend/internal/service/chat"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	store, err := chatstore.Open(cfg.Store.Path)
	if err != nil {
		log.Fatalf("failed to open session store: %v", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("failed to close session store: %v", err)
		}
	}()
	log.Printf("session store ready at %s", store.Path())

	catalog := persona.NewMemoryCatalog(persona.Seed())

	var aiSvc *ai.Service
	if cfg.AI.Enabled() {
		aiSvc, err = ai.NewService(ctx, catalog, store, cfg.AI)
		if err != nil {
			log.Printf("warning: failed to initialize AI service: %v", err)
			log.Println("continuing without AI functionality - check the ARK model environment variables")
		} else {
			log.Println("AI service initialized successfully")
		}
	} else {
		log.Println("model credential not configured, skipping AI initialization")
	}

	router := handler.NewRouter(aiSvc)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Aira backend listening on %s", serverCfg.Addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
