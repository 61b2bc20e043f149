package ticketInventory

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"eventAdmin/internal/dashboard"
	"eventAdmin/internal/inventory"
	"eventAdmin/internal/lib/api/response"
	"eventAdmin/internal/lib/logger/sl"
)

// QuantityRequest carries the amount of an inventory operation. For the
// adjust operation it is a signed delta.
type QuantityRequest struct {
	Quantity int `json:"quantity" validate:"required"`
}

type InventoryResponse struct {
	response.Response
	dashboard.InventoryResult
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=InventoryManager
type InventoryManager interface {
	Inventory(ctx context.Context, id string, op inventory.Op, amount int, key string) (dashboard.InventoryResult, error)
}

// New serves one inventory operation. Retries carrying the same
// Idempotency-Key header are answered from the first result.
func New(log *slog.Logger, manager InventoryManager, operation inventory.Op) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ticket.ticketInventory.New"

		ticketID := chi.URLParam(r, "id")
		log := log.With(
			slog.String("op", op),
			slog.String("ticket_id", ticketID),
			slog.String("inventory_op", string(operation)),
		)

		var req QuantityRequest

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

		res, err := manager.Inventory(r.Context(), ticketID, operation, req.Quantity, r.Header.Get("Idempotency-Key"))
		if err != nil {
			log.Error("inventory operation failed", sl.Err(err))
			status, resp := response.FromError(err, "inventory operation failed")
			render.Status(r, status)
			render.JSON(w, r, resp)
			return
		}

		log.Info("inventory operation applied",
			slog.Int("quantity", req.Quantity),
			slog.Bool("replayed", res.Replayed),
			slog.Int("notified", len(res.Notified)),
		)

		render.JSON(w, r, InventoryResponse{
			Response:        response.OK(),
			InventoryResult: res,
		})
	}
}
