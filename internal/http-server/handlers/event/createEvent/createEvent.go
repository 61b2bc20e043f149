package createEvent

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"eventAdmin/internal/lib/api/response"
	"eventAdmin/internal/lib/logger/sl"
	"eventAdmin/internal/models"
)

type EventResponse struct {
	response.Response
	Event models.Event `json:"event"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	CreateEvent(ctx context.Context, draft models.Event, key string) (models.Event, error)
}

func New(log *slog.Logger, creator EventCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log := log.With(
			slog.String("op", op),
		)

		var req models.Event

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		log.Info("request body decoded", slog.String("title", req.Title))

		event, err := creator.CreateEvent(r.Context(), req, r.Header.Get("Idempotency-Key"))
		if err != nil {
			log.Error("failed to create event", sl.Err(err))
			status, resp := response.FromError(err, "failed to create event")
			render.Status(r, status)
			render.JSON(w, r, resp)

			return
		}

		log.Info("event created", slog.String("id", event.ID))

		responseOK(w, r, event)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, event models.Event) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, EventResponse{
		Response: response.OK(),
		Event:    event,
	})
}
