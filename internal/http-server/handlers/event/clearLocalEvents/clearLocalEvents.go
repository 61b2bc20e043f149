package clearLocalEvents

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"eventAdmin/internal/lib/api/response"
	"eventAdmin/internal/lib/logger/sl"
)

type ClearResponse struct {
	response.Response
	Cleared int64 `json:"cleared"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=LocalEventsClearer
type LocalEventsClearer interface {
	ClearLocalEvents(ctx context.Context) (int64, error)
}

func New(log *slog.Logger, clearer LocalEventsClearer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.clearLocalEvents.New"

		log := log.With(slog.String("op", op))

		n, err := clearer.ClearLocalEvents(r.Context())
		if err != nil {
			log.Error("failed to clear local events", sl.Err(err))
			status, resp := response.FromError(err, "failed to clear local events")
			render.Status(r, status)
			render.JSON(w, r, resp)
			return
		}

		log.Info("local events cleared", slog.Int64("count", n))

		render.JSON(w, r, ClearResponse{
			Response: response.OK(),
			Cleared:  n,
		})
	}
}
