package main

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	server "hotel_booking/internal/adapters/http_server"
	"hotel_booking/internal/adapters/observability"
	redisad "hotel_booking/internal/adapters/redis"
	"hotel_booking/internal/app"
	"hotel_booking/internal/shared"
)

func main() {
	cfg := shared.Load(":8050")
	log.Logger = observability.NewLogger(cfg.AppEnv, "loyalty")

	store := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer store.Close()
	if err := store.Ping(context.Background()); err != nil {
		log.Fatal().Err(err).Str("addr", cfg.RedisAddr).Msg("redis ping failed")
	}
	log.Info().Msg("redis connection ok")

	svc := app.NewLoyaltyService(store)

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)
	srv := server.New()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountLoyalty(&server.LoyaltyHandlers{S: svc})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("loyalty service listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}
	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
