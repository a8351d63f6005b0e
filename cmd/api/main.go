package main

import (
	"context"
	"database/sql"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	server "guestlink/internal/adapters/http_server"
	"guestlink/internal/adapters/observability"
	redisad "guestlink/internal/adapters/redis"
	"guestlink/internal/adapters/ws"
	"guestlink/internal/app"
	"guestlink/internal/auth"
	"guestlink/internal/shared"
	mysqlrepo "guestlink/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// db
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")

	// deps
	repo := mysqlrepo.New(db)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)
	hub := ws.NewHub(tokens)

	classifier := app.NewClassifier(repo, repo, repo, hub)
	requests := app.NewRequestService(repo, repo, hub)
	admin := app.NewAdminService(repo, repo, repo, cache)
	guest := app.NewGuestService(repo, repo, repo, cache, cfg.CacheTTL)
	authSvc := auth.NewService(repo, tokens)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		Auth:       authSvc,
		Verifier:   tokens,
		Classifier: classifier,
		Requests:   requests,
		Admin:      admin,
		Guest:      guest,
		WS:         hub.HandleWS,
		GuestRPS:   cfg.GuestRPS,
		GuestBurst: cfg.GuestBurst,
	})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown failed")
	}
	hub.Close()
	_ = db.Close()
}
