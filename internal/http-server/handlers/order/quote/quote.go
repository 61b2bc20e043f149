package quote

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"eventAdmin/internal/dashboard"
	"eventAdmin/internal/lib/api/response"
	"eventAdmin/internal/lib/logger/sl"
	"eventAdmin/internal/promo"
)

type QuoteResponse struct {
	response.Response
	Quote promo.Quote `json:"quote"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=OrderQuoter
type OrderQuoter interface {
	Quote(ctx context.Context, req dashboard.QuoteRequest) (promo.Quote, error)
}

// New prices an order without touching inventory or code usage.
func New(log *slog.Logger, quoter OrderQuoter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.order.quote.New"

		log := log.With(slog.String("op", op))

		var req dashboard.QuoteRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		q, err := quoter.Quote(r.Context(), req)
		if err != nil {
			log.Error("failed to quote order", sl.Err(err))
			status, resp := response.FromError(err, "failed to quote order")
			render.Status(r, status)
			render.JSON(w, r, resp)
			return
		}

		log.Debug("order quoted", slog.String("ticket_id", q.TicketID), slog.Float64("total", q.Total))

		render.JSON(w, r, QuoteResponse{
			Response: response.OK(),
			Quote:    q,
		})
	}
}
