package eventAnalytics

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"eventAdmin/internal/analytics"
	"eventAdmin/internal/lib/api/response"
	"eventAdmin/internal/lib/logger/sl"
)

type AnalyticsResponse struct {
	response.Response
	Analytics analytics.EventSummary `json:"analytics"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AnalyticsProvider
type AnalyticsProvider interface {
	Analytics(ctx context.Context, id string) (analytics.EventSummary, error)
}

func New(log *slog.Logger, provider AnalyticsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.eventAnalytics.New"

		eventID := chi.URLParam(r, "id")
		log := log.With(slog.String("op", op), slog.String("event_id", eventID))

		summary, err := provider.Analytics(r.Context(), eventID)
		if err != nil {
			log.Error("failed to build event analytics", sl.Err(err))
			status, resp := response.FromError(err, "failed to build event analytics")
			render.Status(r, status)
			render.JSON(w, r, resp)
			return
		}

		render.JSON(w, r, AnalyticsResponse{
			Response:  response.OK(),
			Analytics: summary,
		})
	}
}
