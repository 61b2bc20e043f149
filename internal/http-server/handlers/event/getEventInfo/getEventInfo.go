package getEventInfo

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"eventAdmin/internal/lib/api/response"
	"eventAdmin/internal/lib/logger/sl"
	"eventAdmin/internal/lifecycle"
	"eventAdmin/internal/models"
)

type EventInfoResponse struct {
	response.Response
	Event   *models.Event        `json:"event"`
	Tickets []models.Ticket      `json:"tickets"`
	Actions []models.EventStatus `json:"availableActions"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventGetter
type EventGetter interface {
	GetEvent(ctx context.Context, id string) (models.Event, error)
	EventTickets(ctx context.Context, id string) []models.Ticket
}

func New(log *slog.Logger, info EventGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getEventInfo.New"

		log := log.With(slog.String("op", op))

		eventID := chi.URLParam(r, "id")
		if eventID == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		log = log.With(slog.String("event_id", eventID))

		event, err := info.GetEvent(r.Context(), eventID)
		if err != nil {
			log.Error("failed to get event information", sl.Err(err))
			status, resp := response.FromError(err, "failed to get event information")
			render.Status(r, status)
			render.JSON(w, r, resp)
			return
		}

		tickets := info.EventTickets(r.Context(), eventID)

		log.Info("event info successfully received", slog.Int("tickets", len(tickets)))

		responseOK(w, r, &event, tickets)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, event *models.Event, tickets []models.Ticket) {
	if tickets == nil {
		tickets = []models.Ticket{}
	}
	render.JSON(w, r, EventInfoResponse{
		Response: response.OK(),
		Event:    event,
		Tickets:  tickets,
		Actions:  lifecycle.Allowed(event.Status),
	})
}
