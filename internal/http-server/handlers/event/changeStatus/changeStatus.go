package changeStatus

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"eventAdmin/internal/lib/api/response"
	"eventAdmin/internal/lib/logger/sl"
	"eventAdmin/internal/models"
)

type StatusRequest struct {
	Status models.EventStatus `json:"status" validate:"required,oneof=draft published cancelled completed archived"`
}

type EventResponse struct {
	response.Response
	Event models.Event `json:"event"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=StatusChanger
type StatusChanger interface {
	ChangeStatus(ctx context.Context, id string, target models.EventStatus) (models.Event, error)
}

func New(log *slog.Logger, changer StatusChanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.changeStatus.New"

		eventID := chi.URLParam(r, "id")
		log := log.With(slog.String("op", op), slog.String("event_id", eventID))

		var req StatusRequest

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

		event, err := changer.ChangeStatus(r.Context(), eventID, req.Status)
		if err != nil {
			log.Error("failed to change event status", sl.Err(err))
			status, resp := response.FromError(err, "failed to change event status")
			render.Status(r, status)
			render.JSON(w, r, resp)
			return
		}

		log.Info("event status changed", slog.String("status", string(event.Status)))

		render.JSON(w, r, EventResponse{
			Response: response.OK(),
			Event:    event,
		})
	}
}
