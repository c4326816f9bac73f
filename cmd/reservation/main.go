package main

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	server "hotel_booking/internal/adapters/http_server"
	"hotel_booking/internal/adapters/observability"
	"hotel_booking/internal/app"
	"hotel_booking/internal/shared"
	mysqlrepo "hotel_booking/internal/storage/mysql"
)

func main() {
	cfg := shared.Load(":8070")
	log.Logger = observability.NewLogger(cfg.AppEnv, "reservation")

	// db
	db, err := mysqlrepo.Open(context.Background(), cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer db.Close()
	log.Info().Msg("database connection ok")

	repo := mysqlrepo.NewReservationRepo(db)
	svc := app.NewReservationService(repo, repo)

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)
	srv := server.New()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountReservation(&server.ReservationHandlers{S: svc})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("reservation service listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}
	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
