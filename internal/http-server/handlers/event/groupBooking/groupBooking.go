package groupBooking

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

type DecisionRequest struct {
	Status models.GroupBookingStatus `json:"status" validate:"required,oneof=approved rejected"`
}

type BookingResponse struct {
	response.Response
	GroupBooking models.GroupBooking `json:"groupBooking"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=GroupBookingRequester
type GroupBookingRequester interface {
	RequestGroupBooking(ctx context.Context, eventID string, req dashboard.GroupBookingRequest) (models.GroupBooking, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=GroupBookingDecider
type GroupBookingDecider interface {
	DecideGroupBooking(ctx context.Context, eventID, bookingID string, status models.GroupBookingStatus) (models.GroupBooking, error)
}

func NewRequest(log *slog.Logger, requester GroupBookingRequester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.groupBooking.NewRequest"

		eventID := chi.URLParam(r, "id")
		log := log.With(slog.String("op", op), slog.String("event_id", eventID))

		var req dashboard.GroupBookingRequest

		if !decodeValid(w, r, log, &req) {
			return
		}

		booking, err := requester.RequestGroupBooking(r.Context(), eventID, req)
		if err != nil {
			log.Error("failed to request group booking", sl.Err(err))
			status, resp := response.FromError(err, "failed to request group booking")
			render.Status(r, status)
			render.JSON(w, r, resp)
			return
		}

		log.Info("group booking requested", slog.String("booking_id", booking.ID), slog.String("status", string(booking.Status)))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, BookingResponse{
			Response:     response.OK(),
			GroupBooking: booking,
		})
	}
}

func NewDecide(log *slog.Logger, decider GroupBookingDecider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.groupBooking.NewDecide"

		eventID := chi.URLParam(r, "id")
		bookingID := chi.URLParam(r, "bookingId")
		log := log.With(slog.String("op", op), slog.String("event_id", eventID), slog.String("booking_id", bookingID))

		var req DecisionRequest

		if !decodeValid(w, r, log, &req) {
			return
		}

		booking, err := decider.DecideGroupBooking(r.Context(), eventID, bookingID, req.Status)
		if err != nil {
			log.Error("failed to decide group booking", sl.Err(err))
			status, resp := response.FromError(err, "failed to decide group booking")
			render.Status(r, status)
			render.JSON(w, r, resp)
			return
		}

		log.Info("group booking decided", slog.String("status", string(booking.Status)))

		render.JSON(w, r, BookingResponse{
			Response:     response.OK(),
			GroupBooking: booking,
		})
	}
}

// decodeValid decodes and validates the body into dst, writing a 400 on
// failure. It reports whether the handler may go on.
func decodeValid(w http.ResponseWriter, r *http.Request, log *slog.Logger, dst any) bool {
	if err := render.DecodeJSON(r.Body, dst); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode request"))
		return false
	}

	if err := validator.New().Struct(dst); err != nil {
		var validateErr validator.ValidationErrors
		errors.As(err, &validateErr)

		log.Error("invalid request", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(validateErr))
		return false
	}

	return true
}
