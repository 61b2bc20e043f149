package createTicket

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"eventAdmin/internal/lib/api/response"
	"eventAdmin/internal/lib/logger/sl"
	"eventAdmin/internal/models"
)

type TicketResponse struct {
	response.Response
	Ticket models.Ticket `json:"ticket"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TicketCreator
type TicketCreator interface {
	CreateTicket(ctx context.Context, t models.Ticket, key string) (models.Ticket, error)
}

func New(log *slog.Logger, creator TicketCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ticket.createTicket.New"

		log := log.With(slog.String("op", op))

		var req models.Ticket

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.String("event_id", req.EventID), slog.String("name", req.Name))

		ticket, err := creator.CreateTicket(r.Context(), req, r.Header.Get("Idempotency-Key"))
		if err != nil {
			log.Error("failed to create ticket", sl.Err(err))
			status, resp := response.FromError(err, "failed to create ticket")
			render.Status(r, status)
			render.JSON(w, r, resp)
			return
		}

		log.Info("ticket created", slog.String("id", ticket.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, TicketResponse{
			Response: response.OK(),
			Ticket:   ticket,
		})
	}
}
