// Package dashboard implements the organizer operations on top of the
// backend API, the in-process store and the local unsynced-event table.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"eventAdmin/internal/client/backend"
	"eventAdmin/internal/inventory"
	"eventAdmin/internal/lib/clock"
	"eventAdmin/internal/lib/logger/sl"
	"eventAdmin/internal/lib/session"
	"eventAdmin/internal/models"
	"eventAdmin/internal/store"
)

// Backend is the authoritative events API.
type Backend interface {
	CreateEvent(ctx context.Context, ev models.Event) (models.Event, error)
	ListEvents(ctx context.Context, p backend.ListParams) ([]models.Event, error)
	GetEvent(ctx context.Context, id string) (models.Event, error)
	UpdateEvent(ctx context.Context, ev models.Event) (models.Event, error)
	CreateTicket(ctx context.Context, t models.Ticket) (models.Ticket, error)
	ListTickets(ctx context.Context) ([]models.Ticket, error)
}

// LocalEvents persists events created here until the backend lists them.
type LocalEvents interface {
	SaveLocalEvent(ctx context.Context, org string, ev models.Event) error
	LocalEvents(ctx context.Context, org string) ([]models.Event, error)
	DeleteLocalEvents(ctx context.Context, org string, ids []string) (int64, error)
	ClearLocalEvents(ctx context.Context, org string) ([]string, error)
}

type Service struct {
	log     *slog.Logger
	backend Backend
	local   LocalEvents
	store   *store.Store
	acct    *inventory.Accountant
	clock   clock.Clock
	newID   func() string

	locks      keyedMutex
	// promoLocks serializes code additions per organization.
	promoLocks keyedMutex
}

type Option func(*Service)

// WithIDs replaces the uuid generator used for locally assigned ids.
func WithIDs(gen func() string) Option {
	return func(s *Service) { s.newID = gen }
}

func New(
	log *slog.Logger,
	b Backend,
	local LocalEvents,
	st *store.Store,
	acct *inventory.Accountant,
	clk clock.Clock,
	opts ...Option,
) *Service {
	s := &Service{
		log:     log,
		backend: b,
		local:   local,
		store:   st,
		acct:    acct,
		clock:   clk,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State reports the loading and error state of every request class for the
// caller's organization.
func (s *Service) State(ctx context.Context) map[store.Kind]store.RequestState {
	return s.store.State(session.Organization(ctx))
}

// event returns the cached event or fetches it from the backend.
func (s *Service) event(ctx context.Context, org, id string) (models.Event, error) {
	if ev, ok := s.store.Event(org, id); ok {
		return ev, nil
	}

	ev, err := s.backend.GetEvent(ctx, id)
	if err != nil {
		return models.Event{}, err
	}
	if ev.ID == "" {
		ev.ID = id
	}
	s.store.PutEvent(org, ev)

	return ev, nil
}

func (s *Service) ticket(org, id string) (models.Ticket, error) {
	t, ok := s.store.Ticket(org, id)
	if !ok {
		return models.Ticket{}, fmt.Errorf("ticket %q: %w", id, models.ErrNotFound)
	}
	return t, nil
}

// mutateEvent applies fn to event id and saves the result to the backend and
// the store. Mutations of one event are serialized.
func (s *Service) mutateEvent(ctx context.Context, id string, fn func(models.Event) (models.Event, error)) (models.Event, error) {
	org := session.Organization(ctx)

	unlock := s.locks.lock(org + "|" + id)
	defer unlock()

	ev, err := s.event(ctx, org, id)
	if err != nil {
		return models.Event{}, err
	}

	next, err := fn(ev)
	if err != nil {
		return models.Event{}, err
	}

	saved, err := s.save(ctx, org, next)
	if err != nil {
		return models.Event{}, err
	}

	s.store.PutEvent(org, saved)

	return saved, nil
}

// save writes ev to the backend. Events the backend does not know yet are
// local-only, so their persisted copy is updated instead.
func (s *Service) save(ctx context.Context, org string, ev models.Event) (models.Event, error) {
	const op = "dashboard.save"

	log := s.log.With(slog.String("op", op), slog.String("event_id", ev.ID))

	saved, err := s.backend.UpdateEvent(ctx, ev)
	if err == nil {
		if saved.ID == "" {
			saved = ev
		}
		return saved, nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		log.Error("failed to update event", sl.Err(err))
		return models.Event{}, fmt.Errorf("%s: %w", op, err)
	}

	if lerr := s.local.SaveLocalEvent(ctx, org, ev); lerr != nil {
		log.Error("failed to update local event", sl.Err(lerr))
		return models.Event{}, fmt.Errorf("%s: %w", op, lerr)
	}
	log.Debug("event is local-only, updated local copy")

	return ev, nil
}

// keyedMutex hands out one mutex per key and drops it once unused.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*refMutex
}

type refMutex struct {
	sync.Mutex
	refs int
}

func (k *keyedMutex) lock(key string) func() {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[string]*refMutex)
	}
	m, ok := k.locks[key]
	if !ok {
		m = &refMutex{}
		k.locks[key] = m
	}
	m.refs++
	k.mu.Unlock()

	m.Lock()

	return func() {
		m.Unlock()

		k.mu.Lock()
		m.refs--
		if m.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}
