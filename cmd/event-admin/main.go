package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"eventAdmin/internal/client/backend"
	"eventAdmin/internal/config"
	"eventAdmin/internal/dashboard"
	"eventAdmin/internal/http-server/handlers/event/bulkStatus"
	"eventAdmin/internal/http-server/handlers/event/changeStatus"
	"eventAdmin/internal/http-server/handlers/event/clearLocalEvents"
	"eventAdmin/internal/http-server/handlers/event/createEvent"
	"eventAdmin/internal/http-server/handlers/event/eventAnalytics"
	"eventAdmin/internal/http-server/handlers/event/eventStats"
	"eventAdmin/internal/http-server/handlers/event/getAllEvents"
	"eventAdmin/internal/http-server/handlers/event/getEventInfo"
	"eventAdmin/internal/http-server/handlers/event/groupBooking"
	"eventAdmin/internal/http-server/handlers/event/promoCode"
	"eventAdmin/internal/http-server/handlers/event/waitlist"
	"eventAdmin/internal/http-server/handlers/order/quote"
	"eventAdmin/internal/http-server/handlers/state/getState"
	"eventAdmin/internal/http-server/handlers/ticket/createTicket"
	"eventAdmin/internal/http-server/handlers/ticket/listTickets"
	"eventAdmin/internal/http-server/handlers/ticket/retireTicket"
	"eventAdmin/internal/http-server/handlers/ticket/ticketInventory"
	"eventAdmin/internal/http-server/handlers/ticket/ticketPrice"
	"eventAdmin/internal/http-server/handlers/venue/createVenue"
	"eventAdmin/internal/http-server/handlers/venue/listVenues"
	"eventAdmin/internal/http-server/middleware/auth"
	"eventAdmin/internal/http-server/middleware/mwlogger"
	"eventAdmin/internal/inventory"
	"eventAdmin/internal/lib/clock"
	"eventAdmin/internal/lib/logger/handlers/slogpretty"
	"eventAdmin/internal/lib/logger/sl"
	"eventAdmin/internal/storage/postgres"
	"eventAdmin/internal/store"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting event admin", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	clk := clock.NewSystem()
	acct := inventory.NewAccountant(log, clk)
	api := backend.New(log, cfg.Backend.URL, cfg.Backend.Timeout)

	svc := dashboard.New(log, api, storage, store.New(), acct, clk)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Group(func(r chi.Router) {
		r.Use(auth.New(log, clk, []byte(cfg.Auth.Secret)))

		r.Post("/events", createEvent.New(log, svc))
		r.Get("/events", getAllEvents.New(log, svc))
		r.Get("/events/stats", eventStats.New(log, svc))
		r.Delete("/events/local", clearLocalEvents.New(log, svc))
		r.Post("/events/bulk-status", bulkStatus.New(log, svc))

		r.Route("/events/{id}", func(r chi.Router) {
			r.Get("/", getEventInfo.New(log, svc))
			r.Post("/status", changeStatus.New(log, svc))
			r.Get("/analytics", eventAnalytics.New(log, svc))

			r.Post("/promo-codes", promoCode.NewAdd(log, svc))
			r.Post("/promo-codes/{code}/redeem", promoCode.NewRedeem(log, svc))

			r.Post("/group-bookings", groupBooking.NewRequest(log, svc))
			r.Post("/group-bookings/{bookingId}/decision", groupBooking.NewDecide(log, svc))

			r.Post("/waitlist", waitlist.NewJoin(log, svc))
			r.Delete("/waitlist/{entryId}", waitlist.NewLeave(log, svc))
			r.Post("/waitlist/{entryId}/notify", waitlist.NewNotify(log, svc))
		})

		r.Post("/tickets", createTicket.New(log, svc))
		r.Get("/tickets", listTickets.New(log, svc))
		r.Get("/tickets/{id}/price", ticketPrice.New(log, svc))
		r.Post("/tickets/{id}/reserve", ticketInventory.New(log, svc, inventory.OpReserve))
		r.Post("/tickets/{id}/confirm", ticketInventory.New(log, svc, inventory.OpConfirm))
		r.Post("/tickets/{id}/release", ticketInventory.New(log, svc, inventory.OpRelease))
		r.Post("/tickets/{id}/quantity", ticketInventory.New(log, svc, inventory.OpAdjust))
		r.Delete("/tickets/{id}", retireTicket.New(log, svc))

		r.Post("/venues", createVenue.New(log, svc))
		r.Get("/venues", listVenues.New(log, svc))

		r.Post("/orders/quote", quote.New(log, svc))
		r.Get("/state", getState.New(log, svc))
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	done := make(chan struct{})

	go func() {
		ticker := time.NewTicker(cfg.Inventory.PruneInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if n := acct.Prune(clk.Now().Add(-cfg.Inventory.IdempotencyTTL)); n > 0 {
					log.Debug("idempotency keys pruned", slog.Int("count", n))
				}
			case <-done:
				return
			}
		}
	}()

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop
	close(done)

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
