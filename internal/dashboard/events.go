package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"eventAdmin/internal/analytics"
	"eventAdmin/internal/client/backend"
	"eventAdmin/internal/lib/logger/sl"
	"eventAdmin/internal/lib/session"
	"eventAdmin/internal/lifecycle"
	"eventAdmin/internal/models"
	"eventAdmin/internal/store"
	"eventAdmin/internal/validation"
)

// CreateEvent validates draft, creates it on the backend as a draft event of
// the caller's organization and keeps a local copy until the backend lists
// it. key identifies the submission; a second submission with the same key
// while the first is in flight fails with models.ErrDuplicateSubmission.
func (s *Service) CreateEvent(ctx context.Context, draft models.Event, key string) (ev models.Event, err error) {
	const op = "dashboard.CreateEvent"

	org := session.Organization(ctx)
	log := s.log.With(slog.String("op", op), slog.String("organization_id", org))

	ev = lifecycle.New(draft, org, s.clock.Now())
	if err = validation.Event(ev); err != nil {
		return models.Event{}, err
	}

	if key == "" {
		key = strings.ToLower(strings.TrimSpace(ev.Title))
	}

	tok, err := s.store.Acquire(store.KindEventCreate, org, key)
	if err != nil {
		return models.Event{}, err
	}
	defer func() { s.store.Release(tok, err) }()

	created, err := s.backend.CreateEvent(ctx, ev)
	if err != nil {
		log.Error("failed to create event", sl.Err(err))
		return models.Event{}, fmt.Errorf("%s: %w", op, err)
	}
	if created.ID == "" {
		created = ev
		created.ID = s.newID()
	}

	s.store.PutEvent(org, created)

	if lerr := s.local.SaveLocalEvent(ctx, org, created); lerr != nil {
		log.Warn("failed to keep local copy of event", slog.String("event_id", created.ID), sl.Err(lerr))
	}

	log.Info("event created", slog.String("event_id", created.ID))

	return created, nil
}

// ListEvents fetches the organization's events, merges in the local-only
// ones and filters them by q. A result that arrives after a newer listing
// was started is dropped with models.ErrSuperseded.
func (s *Service) ListEvents(ctx context.Context, q store.Query) ([]models.Event, error) {
	const op = "dashboard.ListEvents"

	org := session.Organization(ctx)
	log := s.log.With(slog.String("op", op), slog.String("organization_id", org))

	tok := s.store.Begin(store.KindEventList, org)

	remote, err := s.backend.ListEvents(ctx, backend.ListParams{Status: q.Status, Type: q.Type, Search: q.Search})
	if err != nil {
		log.Error("failed to list events", sl.Err(err))
		if ferr := s.store.Finish(tok, err); ferr != nil {
			return nil, ferr
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !s.store.Current(tok) {
		log.Debug("dropping superseded listing")
		return nil, s.store.Finish(tok, nil)
	}

	local, err := s.local.LocalEvents(ctx, org)
	if err != nil {
		log.Warn("failed to read local events", sl.Err(err))
		local = nil
	}

	if err = s.store.Finish(tok, nil); err != nil {
		log.Debug("dropping superseded listing")
		return nil, err
	}

	merged := store.Merge(remote, store.Filter(local, q))

	if q == (store.Query{}) {
		s.store.SetEvents(org, merged)
	} else {
		for _, ev := range merged {
			s.store.PutEvent(org, ev)
		}
	}

	if acked := store.Acknowledged(remote, local); len(acked) > 0 {
		n, derr := s.local.DeleteLocalEvents(ctx, org, acked)
		if derr != nil {
			log.Warn("failed to prune acknowledged local events", sl.Err(derr))
		} else {
			log.Debug("pruned acknowledged local events", slog.Int64("count", n))
		}
	}

	return merged, nil
}

func (s *Service) GetEvent(ctx context.Context, id string) (models.Event, error) {
	ev, err := s.event(ctx, session.Organization(ctx), id)
	if err != nil {
		return models.Event{}, fmt.Errorf("dashboard.GetEvent: %w", err)
	}
	return ev, nil
}

// ChangeStatus moves event id to target.
func (s *Service) ChangeStatus(ctx context.Context, id string, target models.EventStatus) (models.Event, error) {
	const op = "dashboard.ChangeStatus"

	now := s.clock.Now()
	ev, err := s.mutateEvent(ctx, id, func(ev models.Event) (models.Event, error) {
		return lifecycle.Transition(ev, target, now)
	})
	if err != nil {
		return models.Event{}, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("event status changed",
		slog.String("op", op),
		slog.String("event_id", id),
		slog.String("status", string(ev.Status)),
	)

	return ev, nil
}

type BulkResult struct {
	Outcomes []lifecycle.Outcome `json:"outcomes"`
	Summary  lifecycle.Summary   `json:"summary"`
}

// BulkChangeStatus applies target to every id on its own. Failures are
// reported per event and never stop the rest.
func (s *Service) BulkChangeStatus(ctx context.Context, ids []string, target models.EventStatus) BulkResult {
	outcomes := make([]lifecycle.Outcome, 0, len(ids))

	for _, id := range ids {
		o := lifecycle.Outcome{EventID: id, To: target}

		var from models.EventStatus
		ev, err := s.mutateEvent(ctx, id, func(ev models.Event) (models.Event, error) {
			from = ev.Status
			return lifecycle.Transition(ev, target, s.clock.Now())
		})
		o.From = from
		if err != nil {
			o.Err = err
			o.Error = err.Error()
		} else {
			o.Event = &ev
		}

		outcomes = append(outcomes, o)
	}

	return BulkResult{Outcomes: outcomes, Summary: lifecycle.Summarize(outcomes)}
}

// Stats counts the cached events of the organization per status.
func (s *Service) Stats(ctx context.Context) []analytics.StatusCount {
	return analytics.StatusCounts(s.store.Events(session.Organization(ctx)))
}

func (s *Service) Analytics(ctx context.Context, id string) (analytics.EventSummary, error) {
	org := session.Organization(ctx)

	ev, err := s.event(ctx, org, id)
	if err != nil {
		return analytics.EventSummary{}, fmt.Errorf("dashboard.Analytics: %w", err)
	}

	return analytics.Summarize(ev, s.store.TicketsForEvent(org, id), s.clock.Now()), nil
}

// ClearLocalEvents forgets every unsynced local event of the organization.
func (s *Service) ClearLocalEvents(ctx context.Context) (int64, error) {
	const op = "dashboard.ClearLocalEvents"

	org := session.Organization(ctx)

	ids, err := s.local.ClearLocalEvents(ctx, org)
	if err != nil {
		s.log.Error("failed to clear local events", slog.String("op", op), sl.Err(err))
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	evicted := s.store.DeleteEvents(org, ids)

	s.log.Info("local events cleared", slog.String("op", op), slog.Int("count", len(ids)), slog.Int("evicted", evicted))

	return int64(len(ids)), nil
}

// EventTickets returns the cached ticket types of event id.
func (s *Service) EventTickets(ctx context.Context, id string) []models.Ticket {
	return s.store.TicketsForEvent(session.Organization(ctx), id)
}
