// Command authservice runs the authentication boundary of the petcare
// platform: it validates credentials against the user service and
// issues the JWT tokens the other services verify.
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
	redisdb "github.com/petcare-mx/platform/internal/infrastructure/db/redis"
	"github.com/petcare-mx/platform/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadAuth(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Service: "auth-service",
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
	})

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	if err != nil {
		// The limiter degrades gracefully; login still works without it.
		log.Warn().Err(err).Msg("redis unavailable, login throttling disabled")
		rdb = nil
	} else {
		defer rdb.Close()
	}

	e := api.NewAuthRouter(cfg, rdb, log)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("auth service listening")
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
