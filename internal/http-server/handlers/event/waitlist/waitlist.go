package waitlist

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

type EntryResponse struct {
	response.Response
	Entry models.WaitlistEntry `json:"entry"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=WaitlistJoiner
type WaitlistJoiner interface {
	JoinWaitlist(ctx context.Context, eventID string, req dashboard.WaitlistRequest) (models.WaitlistEntry, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=WaitlistLeaver
type WaitlistLeaver interface {
	LeaveWaitlist(ctx context.Context, eventID, entryID string) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=WaitlistNotifier
type WaitlistNotifier interface {
	NotifyWaitlistEntry(ctx context.Context, eventID, entryID string) (models.WaitlistEntry, error)
}

func NewJoin(log *slog.Logger, joiner WaitlistJoiner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.waitlist.NewJoin"

		eventID := chi.URLParam(r, "id")
		log := log.With(slog.String("op", op), slog.String("event_id", eventID))

		var req dashboard.WaitlistRequest

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

		entry, err := joiner.JoinWaitlist(r.Context(), eventID, req)
		if err != nil {
			log.Error("failed to join waitlist", sl.Err(err))
			status, resp := response.FromError(err, "failed to join waitlist")
			render.Status(r, status)
			render.JSON(w, r, resp)
			return
		}

		log.Info("waitlist joined", slog.String("entry_id", entry.ID), slog.Int("position", entry.Position))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, EntryResponse{
			Response: response.OK(),
			Entry:    entry,
		})
	}
}

func NewLeave(log *slog.Logger, leaver WaitlistLeaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.waitlist.NewLeave"

		eventID := chi.URLParam(r, "id")
		entryID := chi.URLParam(r, "entryId")
		log := log.With(slog.String("op", op), slog.String("event_id", eventID), slog.String("entry_id", entryID))

		if err := leaver.LeaveWaitlist(r.Context(), eventID, entryID); err != nil {
			log.Error("failed to leave waitlist", sl.Err(err))
			status, resp := response.FromError(err, "failed to leave waitlist")
			render.Status(r, status)
			render.JSON(w, r, resp)
			return
		}

		log.Info("waitlist entry removed")

		render.JSON(w, r, response.OK())
	}
}

func NewNotify(log *slog.Logger, notifier WaitlistNotifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.waitlist.NewNotify"

		eventID := chi.URLParam(r, "id")
		entryID := chi.URLParam(r, "entryId")
		log := log.With(slog.String("op", op), slog.String("event_id", eventID), slog.String("entry_id", entryID))

		entry, err := notifier.NotifyWaitlistEntry(r.Context(), eventID, entryID)
		if err != nil {
			log.Error("failed to notify waitlist entry", sl.Err(err))
			status, resp := response.FromError(err, "failed to notify waitlist entry")
			render.Status(r, status)
			render.JSON(w, r, resp)
			return
		}

		log.Info("waitlist entry notified")

		render.JSON(w, r, EntryResponse{
			Response: response.OK(),
			Entry:    entry,
		})
	}
}
