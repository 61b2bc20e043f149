package getAllEvents

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"eventAdmin/internal/lib/api/response"
	"eventAdmin/internal/lib/logger/sl"
	"eventAdmin/internal/models"
	"eventAdmin/internal/store"
)

type EventsResponse struct {
	response.Response
	Events []models.Event `json:"events"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsGetter
type EventsGetter interface {
	ListEvents(ctx context.Context, q store.Query) ([]models.Event, error)
}

func New(log *slog.Logger, eventsGetter EventsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getAllEvents.New"

		log := log.With(slog.String("op", op))

		query := r.URL.Query()
		q := store.Query{
			Status: query.Get("status"),
			Type:   query.Get("type"),
			Search: query.Get("search"),
		}

		events, err := eventsGetter.ListEvents(r.Context(), q)
		if err != nil {
			log.Error("failed to get events", sl.Err(err))
			status, resp := response.FromError(err, "failed to get events")
			render.Status(r, status)
			render.JSON(w, r, resp)
			return
		}

		log.Info("events retrieved successfully", slog.Int("count", len(events)))

		responseOK(w, r, events)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, events []models.Event) {
	if events == nil {
		events = []models.Event{}
	}
	render.JSON(w, r, EventsResponse{
		Response: response.OK(),
		Events:   events,
	})
}
