package promoCode

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"eventAdmin/internal/dashboard"
	"eventAdmin/internal/lib/api/response"
	"eventAdmin/internal/lib/logger/sl"
	"eventAdmin/internal/models"
)

type CodeResponse struct {
	response.Response
	PromotionalCode models.PromotionalCode `json:"promotionalCode"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PromoCodeAdder
type PromoCodeAdder interface {
	AddPromoCode(ctx context.Context, eventID string, code models.PromotionalCode) (models.PromotionalCode, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PromoCodeRedeemer
type PromoCodeRedeemer interface {
	RedeemPromoCode(ctx context.Context, eventID, code string, req dashboard.RedeemRequest) (models.PromotionalCode, error)
}

// NewAdd attaches a promotional code to the event in the URL. Entity rules
// are checked by the service.
func NewAdd(log *slog.Logger, adder PromoCodeAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.promoCode.NewAdd"

		eventID := chi.URLParam(r, "id")
		log := log.With(slog.String("op", op), slog.String("event_id", eventID))

		var code models.PromotionalCode

		err := render.DecodeJSON(r.Body, &code)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		added, err := adder.AddPromoCode(r.Context(), eventID, code)
		if err != nil {
			log.Error("failed to add promotional code", sl.Err(err))
			status, resp := response.FromError(err, "failed to add promotional code")
			render.Status(r, status)
			render.JSON(w, r, resp)
			return
		}

		log.Info("promotional code added", slog.String("code", added.Code))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, CodeResponse{
			Response:        response.OK(),
			PromotionalCode: added,
		})
	}
}

func NewRedeem(log *slog.Logger, redeemer PromoCodeRedeemer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.promoCode.NewRedeem"

		eventID := chi.URLParam(r, "id")
		code := chi.URLParam(r, "code")
		log := log.With(slog.String("op", op), slog.String("event_id", eventID), slog.String("code", code))

		var req dashboard.RedeemRequest

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

		redeemed, err := redeemer.RedeemPromoCode(r.Context(), eventID, code, req)
		if err != nil {
			log.Error("failed to redeem promotional code", sl.Err(err))
			status, resp := response.FromError(err, "failed to redeem promotional code")
			render.Status(r, status)
			render.JSON(w, r, resp)
			return
		}

		log.Info("promotional code redeemed", slog.Int("used", redeemed.UsedCount))

		render.JSON(w, r, CodeResponse{
			Response:        response.OK(),
			PromotionalCode: redeemed,
		})
	}
}
