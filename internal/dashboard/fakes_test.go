package dashboard

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"testing"
	"time"

	"eventAdmin/internal/client/backend"
	"eventAdmin/internal/inventory"
	"eventAdmin/internal/lib/clock"
	"eventAdmin/internal/lib/logger/handlers/slogdiscard"
	"eventAdmin/internal/lib/session"
	"eventAdmin/internal/models"
	"eventAdmin/internal/store"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type fakeBackend struct {
	mu sync.Mutex

	events  []models.Event
	tickets []models.Ticket

	createErr error
	listErr   error
	listHook  func()

	creates int
	updates int
	seq     int
}

func (f *fakeBackend) CreateEvent(_ context.Context, ev models.Event) (models.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.creates++
	if f.createErr != nil {
		return models.Event{}, f.createErr
	}
	f.seq++
	ev.ID = fmt.Sprintf("srv-%d", f.seq)
	f.events = append(f.events, ev.Clone())

	return ev, nil
}

func (f *fakeBackend) ListEvents(_ context.Context, p backend.ListParams) ([]models.Event, error) {
	if f.listHook != nil {
		f.listHook()
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.listErr != nil {
		return nil, f.listErr
	}
	return store.Filter(f.events, store.Query{Status: p.Status, Type: p.Type, Search: p.Search}), nil
}

func (f *fakeBackend) GetEvent(_ context.Context, id string) (models.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, ev := range f.events {
		if ev.ID == id {
			return ev.Clone(), nil
		}
	}
	return models.Event{}, models.ErrNotFound
}

func (f *fakeBackend) UpdateEvent(_ context.Context, ev models.Event) (models.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	idx := slices.IndexFunc(f.events, func(e models.Event) bool { return e.ID == ev.ID })
	if idx < 0 {
		return models.Event{}, models.ErrNotFound
	}
	f.updates++
	f.events[idx] = ev.Clone()

	return ev, nil
}

func (f *fakeBackend) CreateTicket(_ context.Context, t models.Ticket) (models.Ticket, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.seq++
	t.ID = fmt.Sprintf("tkt-%d", f.seq)
	f.tickets = append(f.tickets, t)

	return t, nil
}

func (f *fakeBackend) ListTickets(context.Context) ([]models.Ticket, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return slices.Clone(f.tickets), nil
}

type fakeLocal struct {
	mu     sync.Mutex
	events map[string][]models.Event
}

func newFakeLocal() *fakeLocal {
	return &fakeLocal{events: make(map[string][]models.Event)}
}

func (f *fakeLocal) SaveLocalEvent(_ context.Context, org string, ev models.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	list := f.events[org]
	if idx := slices.IndexFunc(list, func(e models.Event) bool { return e.ID == ev.ID }); idx >= 0 {
		list[idx] = ev
		return nil
	}
	f.events[org] = append(list, ev)
	return nil
}

func (f *fakeLocal) LocalEvents(_ context.Context, org string) ([]models.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return slices.Clone(f.events[org]), nil
}

func (f *fakeLocal) DeleteLocalEvents(_ context.Context, org string, ids []string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	before := len(f.events[org])
	f.events[org] = slices.DeleteFunc(f.events[org], func(e models.Event) bool { return slices.Contains(ids, e.ID) })
	return int64(before - len(f.events[org])), nil
}

func (f *fakeLocal) ClearLocalEvents(_ context.Context, org string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var ids []string
	for _, e := range f.events[org] {
		ids = append(ids, e.ID)
	}
	delete(f.events, org)
	return ids, nil
}

type fixture struct {
	svc     *Service
	backend *fakeBackend
	local   *fakeLocal
	store   *store.Store
	ctx     context.Context
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	log := slogdiscard.NewDiscardLogger()
	clk := clock.NewFixed(testNow)

	var (
		mu sync.Mutex
		n  int
	)
	ids := func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("id-%d", n)
	}

	f := &fixture{
		backend: &fakeBackend{},
		local:   newFakeLocal(),
		store:   store.New(),
		ctx:     session.WithOrganization(context.Background(), "org-1"),
	}
	f.svc = New(log, f.backend, f.local, f.store, inventory.NewAccountant(log, clk), clk, WithIDs(ids))

	return f
}

func validDraft(title string) models.Event {
	return models.Event{
		Title:           title,
		Description:     "An evening of talks",
		EventType:       models.EventTypeVirtual,
		VirtualEventURL: "https://meet.example.com/room",
		StartDate:       testNow.Add(24 * time.Hour),
		EndDate:         testNow.Add(26 * time.Hour),
		Timezone:        "Europe/Berlin",
		MaxAttendees:    100,
	}
}

// seedEvent puts ev into both the backend and the store.
func (f *fixture) seedEvent(ev models.Event) models.Event {
	f.backend.mu.Lock()
	f.backend.events = append(f.backend.events, ev.Clone())
	f.backend.mu.Unlock()

	f.store.PutEvent("org-1", ev)
	return ev
}

func (f *fixture) seedTicket(t models.Ticket) models.Ticket {
	f.store.PutTicket("org-1", t)
	return t
}

func onSaleTicket(id, eventID string, qty int) models.Ticket {
	return models.Ticket{
		ID:         id,
		EventID:    eventID,
		Name:       "General",
		Type:       models.TicketPaid,
		BasePrice:  50,
		Quantity:   qty,
		SalesStart: testNow.Add(-time.Hour),
		SalesEnd:   testNow.Add(time.Hour),
		IsActive:   true,
	}
}
