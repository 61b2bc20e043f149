package listTickets

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"eventAdmin/internal/lib/api/response"
	"eventAdmin/internal/lib/logger/sl"
	"eventAdmin/internal/models"
)

type TicketsResponse struct {
	response.Response
	Tickets []models.Ticket `json:"tickets"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TicketsLister
type TicketsLister interface {
	ListTickets(ctx context.Context) ([]models.Ticket, error)
}

func New(log *slog.Logger, lister TicketsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ticket.listTickets.New"

		log := log.With(slog.String("op", op))

		tickets, err := lister.ListTickets(r.Context())
		if err != nil {
			log.Error("failed to list tickets", sl.Err(err))
			status, resp := response.FromError(err, "failed to list tickets")
			render.Status(r, status)
			render.JSON(w, r, resp)
			return
		}

		if tickets == nil {
			tickets = []models.Ticket{}
		}

		log.Debug("tickets listed", slog.Int("count", len(tickets)))

		render.JSON(w, r, TicketsResponse{
			Response: response.OK(),
			Tickets:  tickets,
		})
	}
}
