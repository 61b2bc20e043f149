package bulkStatus

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
	"eventAdmin/internal/models"
)

type BulkRequest struct {
	IDs    []string           `json:"ids" validate:"required,min=1,dive,required"`
	Status models.EventStatus `json:"status" validate:"required,oneof=draft published cancelled completed archived"`
}

type BulkResponse struct {
	response.Response
	dashboard.BulkResult
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BulkStatusChanger
type BulkStatusChanger interface {
	BulkChangeStatus(ctx context.Context, ids []string, target models.EventStatus) dashboard.BulkResult
}

func New(log *slog.Logger, changer BulkStatusChanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.bulkStatus.New"

		log := log.With(slog.String("op", op))

		var req BulkRequest

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

		result := changer.BulkChangeStatus(r.Context(), req.IDs, req.Status)

		log.Info("bulk status change applied",
			slog.String("status", string(req.Status)),
			slog.Int("succeeded", result.Summary.Succeeded),
			slog.Int("failed", result.Summary.Failed),
		)

		// Per-event failures are part of the payload, the request itself succeeded.
		render.JSON(w, r, BulkResponse{
			Response:   response.OK(),
			BulkResult: result,
		})
	}
}
