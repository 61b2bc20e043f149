package createVenue

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"eventAdmin/internal/lib/api/response"
	"eventAdmin/internal/lib/logger/sl"
	"eventAdmin/internal/models"
)

type VenueResponse struct {
	response.Response
	Venue models.Venue `json:"venue"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VenueCreator
type VenueCreator interface {
	CreateVenue(ctx context.Context, v models.Venue) (models.Venue, error)
}

func New(log *slog.Logger, creator VenueCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.venue.createVenue.New"

		log := log.With(slog.String("op", op))

		var v models.Venue

		err := render.DecodeJSON(r.Body, &v)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		created, err := creator.CreateVenue(r.Context(), v)
		if err != nil {
			log.Error("failed to create venue", sl.Err(err))
			status, resp := response.FromError(err, "failed to create venue")
			render.Status(r, status)
			render.JSON(w, r, resp)
			return
		}

		log.Info("venue created", slog.String("venue_id", created.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, VenueResponse{
			Response: response.OK(),
			Venue:    created,
		})
	}
}
