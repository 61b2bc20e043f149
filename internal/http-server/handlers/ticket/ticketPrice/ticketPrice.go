package ticketPrice

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"eventAdmin/internal/dashboard"
	"eventAdmin/internal/lib/api/response"
	"eventAdmin/internal/lib/logger/sl"
)

type PriceResponse struct {
	response.Response
	dashboard.PriceInfo
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PriceResolver
type PriceResolver interface {
	Price(ctx context.Context, id string, at time.Time) (dashboard.PriceInfo, error)
}

// New resolves the price of a ticket. The optional at query parameter is an
// RFC 3339 instant; without it the current time is used.
func New(log *slog.Logger, resolver PriceResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ticket.ticketPrice.New"

		ticketID := chi.URLParam(r, "id")
		log := log.With(slog.String("op", op), slog.String("ticket_id", ticketID))

		var at time.Time
		if raw := r.URL.Query().Get("at"); raw != "" {
			parsed, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				log.Error("invalid at parameter", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid at parameter"))
				return
			}
			at = parsed
		}

		info, err := resolver.Price(r.Context(), ticketID, at)
		if err != nil {
			log.Error("failed to resolve price", sl.Err(err))
			status, resp := response.FromError(err, "failed to resolve price")
			render.Status(r, status)
			render.JSON(w, r, resp)
			return
		}

		render.JSON(w, r, PriceResponse{
			Response:  response.OK(),
			PriceInfo: info,
		})
	}
}
