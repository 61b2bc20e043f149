package getState

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"eventAdmin/internal/lib/api/response"
	"eventAdmin/internal/store"
)

type StateResponse struct {
	response.Response
	Requests map[store.Kind]store.RequestState `json:"requests"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=StateProvider
type StateProvider interface {
	State(ctx context.Context) map[store.Kind]store.RequestState
}

// New reports the loading and error state of every request class of the
// caller's organization.
func New(log *slog.Logger, provider StateProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.state.getState.New"

		requests := provider.State(r.Context())

		log.Debug("request state read", slog.String("op", op), slog.Int("kinds", len(requests)))

		render.JSON(w, r, StateResponse{
			Response: response.OK(),
			Requests: requests,
		})
	}
}
