package listVenues

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"eventAdmin/internal/lib/api/response"
	"eventAdmin/internal/models"
)

type VenuesResponse struct {
	response.Response
	Venues []models.Venue `json:"venues"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VenuesLister
type VenuesLister interface {
	ListVenues(ctx context.Context, search string) []models.Venue
}

// New lists the organization's venues, narrowed by the search query
// parameter when present.
func New(log *slog.Logger, lister VenuesLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.venue.listVenues.New"

		search := r.URL.Query().Get("search")

		venues := lister.ListVenues(r.Context(), search)
		if venues == nil {
			venues = []models.Venue{}
		}

		log.Debug("venues listed", slog.String("op", op), slog.Int("count", len(venues)))

		render.JSON(w, r, VenuesResponse{
			Response: response.OK(),
			Venues:   venues,
		})
	}
}
