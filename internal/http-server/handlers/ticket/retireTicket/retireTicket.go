package retireTicket

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"eventAdmin/internal/lib/api/response"
	"eventAdmin/internal/lib/logger/sl"
	"eventAdmin/internal/models"
)

type RetireResponse struct {
	response.Response
	Ticket  models.Ticket `json:"ticket"`
	Deleted bool          `json:"deleted"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TicketRetirer
type TicketRetirer interface {
	RetireTicket(ctx context.Context, id string) (models.Ticket, bool, error)
}

// New removes a ticket type that never sold and deactivates one that did.
func New(log *slog.Logger, retirer TicketRetirer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ticket.retireTicket.New"

		ticketID := chi.URLParam(r, "id")
		log := log.With(slog.String("op", op), slog.String("ticket_id", ticketID))

		ticket, deleted, err := retirer.RetireTicket(r.Context(), ticketID)
		if err != nil {
			log.Error("failed to retire ticket", sl.Err(err))
			status, resp := response.FromError(err, "failed to retire ticket")
			render.Status(r, status)
			render.JSON(w, r, resp)
			return
		}

		log.Info("ticket retired", slog.Bool("deleted", deleted))

		render.JSON(w, r, RetireResponse{
			Response: response.OK(),
			Ticket:   ticket,
			Deleted:  deleted,
		})
	}
}
