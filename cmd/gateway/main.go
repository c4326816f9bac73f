package main

import (
	"net/http"

	"github.com/rs/zerolog/log"

	server "hotel_booking/internal/adapters/http_server"
	"hotel_booking/internal/adapters/observability"
	"hotel_booking/internal/adapters/upstream"
	"hotel_booking/internal/app"
	"hotel_booking/internal/shared"
)

func main() {
	cfg := shared.Load(":8080")

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, "gateway")

	hc := &http.Client{}
	g := app.NewGateway(
		upstream.NewReservationClient(cfg.ReservationURL, cfg.UpstreamRPS, hc),
		upstream.NewPaymentClient(cfg.PaymentURL, cfg.UpstreamRPS, hc),
		upstream.NewLoyaltyClient(cfg.LoyaltyURL, cfg.UpstreamRPS, hc),
		app.WithCompensation(cfg.Compensate),
	)
	if cfg.Compensate {
		log.Info().Msg("compensating writes enabled")
	}

	// http
	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)
	srv := server.New()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountGateway(&server.GatewayHandlers{G: g})

	log.Info().
		Str("addr", cfg.HTTPAddr).
		Str("reservation", cfg.ReservationURL).
		Str("payment", cfg.PaymentURL).
		Str("loyalty", cfg.LoyaltyURL).
		Msg("gateway listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
