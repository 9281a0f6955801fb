package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrobakowski/humanoid/internal/config"
	"github.com/mrobakowski/humanoid/internal/generator"
	"github.com/mrobakowski/humanoid/internal/handler"
	"github.com/mrobakowski/humanoid/internal/log"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		l := log.L()
		l.Fatal().Err(err).Msg("failed to load config")
	}

	log.Init(log.Config{
		Level:       cfg.Log.Level,
		Pretty:      cfg.Log.Pretty,
		ServiceName: "humanid-server",
	})
	logger := log.L()

	logger.Info().Msg("starting humanid-server")

	// Assemble the entity registry
	registry := make(map[string]generator.Generator, len(cfg.Entities))
	for _, e := range cfg.Entities {
		gen, err := generator.New(e.Scheme, e.Prefix, cfg.NanoID.Size, cfg.NanoID.Alphabet)
		if err != nil {
			logger.Fatal().Err(err).Str(log.FieldEntity, e.Name).Msg("failed to create generator")
		}
		registry[e.Name] = gen
		logger.Info().
			Str(log.FieldEntity, e.Name).
			Str(log.FieldPrefix, e.Prefix).
			Str(log.FieldScheme, e.Scheme).
			Msg("generator initialized")
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(log.GinMiddleware(logger), gin.Recovery())
	handler.New(registry).Register(engine)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: engine,
	}

	go func() {
		logger.Info().Str("addr", addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down humanid-server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("shutdown error")
	}
	logger.Info().Msg("humanid-server stopped")
}
