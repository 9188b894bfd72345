package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hr-autoflow-api/internal/application/notification"
	"github.com/hr-autoflow-api/internal/application/session"
	"github.com/hr-autoflow-api/internal/config"
	"github.com/hr-autoflow-api/internal/infrastructure/directory"
	jwtinfra "github.com/hr-autoflow-api/internal/infrastructure/jwt"
	"github.com/hr-autoflow-api/internal/infrastructure/memory"
	"github.com/hr-autoflow-api/internal/infrastructure/mockdata"
	"github.com/hr-autoflow-api/internal/infrastructure/snapshot"
	transporthttp "github.com/hr-autoflow-api/internal/transport/http"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	// JWT provider (optional — graceful fallback if keys are missing).
	var jwtProvider *jwtinfra.Provider
	if p, err := jwtinfra.NewProvider(cfg); err == nil {
		jwtProvider = p
	} else {
		log.Printf("WARN: JWT provider not available: %v", err)
	}

	dir := directory.New(cfg.DemoPassword)
	source := mockdata.NewSource(time.Now().UTC())
	notifStore := memory.NewNotificationStore(source.Notifications(), cfg.NotificationCap, nil)
	snapStore := snapshot.NewStore(cfg.SessionSnapshotPath)

	var sessionSvc session.Service
	if jwtProvider != nil {
		sessionSvc = session.NewService(dir, snapStore, jwtProvider, cfg.LoginDelay)
	} else {
		sessionSvc = session.NewService(dir, snapStore, nil, cfg.LoginDelay)
	}
	// Restore must finish before the router serves its first request.
	sessionSvc.Restore()

	// Background synthetic notification feed, tied to the store's lifetime.
	genCtx, genCancel := context.WithCancel(context.Background())
	generator := notification.NewGenerator(notifStore, cfg.GeneratorInterval, cfg.GeneratorProbability, nil)
	generator.Start(genCtx)

	deps := &transporthttp.Deps{
		Directory:         dir,
		DataSource:        source,
		NotificationStore: notifStore,
		SessionService:    sessionSvc,
		JWTProvider:       jwtProvider,
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s)", cfg.AppPort, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	genCancel()
	generator.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
