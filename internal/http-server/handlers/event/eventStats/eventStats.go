package eventStats

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"eventAdmin/internal/analytics"
	"eventAdmin/internal/lib/api/response"
)

type StatsResponse struct {
	response.Response
	Stats []analytics.StatusCount `json:"stats"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=StatsProvider
type StatsProvider interface {
	Stats(ctx context.Context) []analytics.StatusCount
}

func New(log *slog.Logger, provider StatsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.eventStats.New"

		stats := provider.Stats(r.Context())

		log.Debug("event stats computed", slog.String("op", op), slog.Int("statuses", len(stats)))

		render.JSON(w, r, StatsResponse{
			Response: response.OK(),
			Stats:    stats,
		})
	}
}
