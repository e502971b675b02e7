package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Natoons/cynova/internal/config"
	"github.com/Natoons/cynova/internal/infra/db"
	"github.com/Natoons/cynova/internal/logger"
	"github.com/Natoons/cynova/internal/server"

	"github.com/rs/zerolog"
)

const shutdownTimeout = 10 * time.Second

func main() {
	//設定
	cfg, err := config.Load()
	if err != nil {
		l := zerolog.New(os.Stderr).With().Timestamp().Logger()
		l.Fatal().Err(err).Msg("load config")
	}

	log := logger.New(cfg)

	//DB接続
	gormDB, err := db.Connect(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}
	log.Info().Msg("database migrated")

	e := server.New(cfg, log, gormDB)

	//Server起動
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr()).Str("env", cfg.Env).Msg("server started")
		errCh <- server.Start(e, cfg.Addr())
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("server stopped")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx, e); err != nil {
		log.Error().Err(err).Msg("shutdown server")
	}
	if err := db.Close(gormDB); err != nil {
		log.Error().Err(err).Msg("close database")
	}
	log.Info().Msg("bye")
}
