// Command userservice runs the identity owner of the petcare platform:
// account registration, owner/vet lookups, and the internal auth-info
// endpoints the auth service reads during login.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/petcare-mx/platform/docs"
	"github.com/petcare-mx/platform/internal/api"
	"github.com/petcare-mx/platform/internal/infrastructure/config"
	mongodb "github.com/petcare-mx/platform/internal/infrastructure/db/mongo"
	"github.com/petcare-mx/platform/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadUser(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Service: "user-service",
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
	})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	e := api.NewUserRouter(cfg, db, log)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("user service listening")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
