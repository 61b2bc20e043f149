package dashboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventAdmin/internal/models"
	"eventAdmin/internal/store"
)

func TestCreateEvent(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	draft := validDraft("Go Meetup")
	draft.Status = models.StatusPublished

	ev, err := f.svc.CreateEvent(f.ctx, draft, "")
	require.NoError(t, err)

	assert.Equal(t, "srv-1", ev.ID)
	assert.Equal(t, models.StatusDraft, ev.Status)
	assert.Equal(t, "org-1", ev.OrganizationID)
	assert.Equal(t, testNow, ev.CreatedAt)

	cached, ok := f.store.Event("org-1", ev.ID)
	require.True(t, ok)
	assert.Equal(t, "Go Meetup", cached.Title)

	local, _ := f.local.LocalEvents(f.ctx, "org-1")
	require.Len(t, local, 1)
	assert.Equal(t, ev.ID, local[0].ID)

	st := f.svc.State(f.ctx)[store.KindEventCreate]
	assert.False(t, st.Loading)
	assert.Empty(t, st.Error)
}

func TestCreateEventValidatesBeforeCallingBackend(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	draft := validDraft("")
	draft.VirtualEventURL = ""

	_, err := f.svc.CreateEvent(f.ctx, draft, "")

	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "title")
	assert.Contains(t, verr.Fields, "virtualEventUrl")
	assert.Zero(t, f.backend.creates)
}

func TestCreateEventRejectsDuplicateSubmission(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	tok, err := f.store.Acquire(store.KindEventCreate, "org-1", "submit-1")
	require.NoError(t, err)

	_, err = f.svc.CreateEvent(f.ctx, validDraft("Go Meetup"), "submit-1")
	require.ErrorIs(t, err, models.ErrDuplicateSubmission)
	assert.Zero(t, f.backend.creates)

	f.store.Release(tok, nil)

	_, err = f.svc.CreateEvent(f.ctx, validDraft("Go Meetup"), "submit-1")
	assert.NoError(t, err)
}

func TestCreateEventBackendFailure(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.backend.createErr = &models.NetworkError{Status: 500, Message: "Failed to create event"}

	_, err := f.svc.CreateEvent(f.ctx, validDraft("Go Meetup"), "")
	require.ErrorIs(t, err, models.ErrNetwork)

	st := f.svc.State(f.ctx)[store.KindEventCreate]
	assert.False(t, st.Loading)
	assert.Contains(t, st.Error, "Failed to create event")

	assert.Empty(t, f.store.Events("org-1"))
}

func TestListEventsMergesAndPrunesLocal(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	f.backend.events = []models.Event{
		{ID: "a", Title: "Backend A", Status: models.StatusPublished},
		{ID: "b", Title: "Backend B", Status: models.StatusDraft},
	}
	require.NoError(t, f.local.SaveLocalEvent(f.ctx, "org-1", models.Event{ID: "b", Title: "Local B"}))
	require.NoError(t, f.local.SaveLocalEvent(f.ctx, "org-1", models.Event{ID: "c", Title: "Local C", Status: models.StatusDraft}))

	events, err := f.svc.ListEvents(f.ctx, store.Query{})
	require.NoError(t, err)

	require.Len(t, events, 3)
	assert.Equal(t, "Backend B", events[1].Title)
	assert.Equal(t, "c", events[2].ID)

	local, _ := f.local.LocalEvents(f.ctx, "org-1")
	require.Len(t, local, 1, "acknowledged local copy is pruned")
	assert.Equal(t, "c", local[0].ID)

	assert.Len(t, f.store.Events("org-1"), 3)

	drafts, err := f.svc.ListEvents(f.ctx, store.Query{Status: "draft"})
	require.NoError(t, err)
	assert.Len(t, drafts, 2)

	stats := f.svc.Stats(f.ctx)
	require.Len(t, stats, len(models.Statuses))
	assert.Equal(t, models.StatusDraft, stats[0].Status)
	assert.Equal(t, 2, stats[0].Count)
}

func TestListEventsDropsSupersededResult(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.backend.events = []models.Event{{ID: "a"}}

	// a newer listing starts while the first one is in flight
	f.backend.listHook = func() {
		f.backend.listHook = nil
		f.store.Begin(store.KindEventList, "org-1")
	}

	_, err := f.svc.ListEvents(f.ctx, store.Query{})
	require.ErrorIs(t, err, models.ErrSuperseded)
	assert.Empty(t, f.store.Events("org-1"))
}

func TestListEventsRecordsError(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.backend.listErr = models.ErrUnauthorized

	_, err := f.svc.ListEvents(f.ctx, store.Query{})
	require.ErrorIs(t, err, models.ErrUnauthorized)

	st := f.svc.State(f.ctx)[store.KindEventList]
	assert.False(t, st.Loading)
	assert.NotEmpty(t, st.Error)
}

func TestGetEventFallsBackToBackend(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.backend.events = []models.Event{{ID: "remote", Title: "Remote"}}

	ev, err := f.svc.GetEvent(f.ctx, "remote")
	require.NoError(t, err)
	assert.Equal(t, "Remote", ev.Title)

	_, ok := f.store.Event("org-1", "remote")
	assert.True(t, ok)

	_, err = f.svc.GetEvent(f.ctx, "missing")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestChangeStatus(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.seedEvent(models.Event{ID: "e1", Status: models.StatusDraft})

	ev, err := f.svc.ChangeStatus(f.ctx, "e1", models.StatusPublished)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPublished, ev.Status)
	require.NotNil(t, ev.PublishedAt)
	assert.Equal(t, 1, f.backend.updates)

	_, err = f.svc.ChangeStatus(f.ctx, "e1", models.StatusArchived)
	var terr *models.TransitionError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, models.StatusPublished, terr.From)
	assert.Equal(t, 1, f.backend.updates)

	cached, _ := f.store.Event("org-1", "e1")
	assert.Equal(t, models.StatusPublished, cached.Status)
}

func TestChangeStatusOfLocalOnlyEvent(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.store.PutEvent("org-1", models.Event{ID: "local-1", Status: models.StatusDraft})

	ev, err := f.svc.ChangeStatus(f.ctx, "local-1", models.StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, ev.Status)

	local, _ := f.local.LocalEvents(f.ctx, "org-1")
	require.Len(t, local, 1)
	assert.Equal(t, models.StatusCancelled, local[0].Status)
}

func TestBulkChangeStatus(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.seedEvent(models.Event{ID: "e1", Status: models.StatusDraft})
	f.seedEvent(models.Event{ID: "e2", Status: models.StatusArchived})

	res := f.svc.BulkChangeStatus(f.ctx, []string{"e1", "e2", "missing"}, models.StatusPublished)

	require.Len(t, res.Outcomes, 3)
	assert.True(t, res.Outcomes[0].OK())
	assert.Equal(t, models.StatusDraft, res.Outcomes[0].From)

	assert.ErrorIs(t, res.Outcomes[1].Err, models.ErrInvalidTransition)
	assert.Equal(t, models.StatusArchived, res.Outcomes[1].From)
	assert.NotEmpty(t, res.Outcomes[1].Error)

	assert.ErrorIs(t, res.Outcomes[2].Err, models.ErrNotFound)

	assert.Equal(t, 1, res.Summary.Succeeded)
	assert.Equal(t, 2, res.Summary.Failed)
}

func TestClearLocalEvents(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	require.NoError(t, f.local.SaveLocalEvent(f.ctx, "org-1", models.Event{ID: "x"}))

	n, err := f.svc.ClearLocalEvents(f.ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	local, _ := f.local.LocalEvents(f.ctx, "org-1")
	assert.Empty(t, local)
}

func TestClearLocalEventsEvictsCachedCopies(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.seedEvent(models.Event{ID: "synced", Title: "Synced", Status: models.StatusDraft})
	require.NoError(t, f.local.SaveLocalEvent(f.ctx, "org-1", models.Event{ID: "local-only"}))
	f.store.PutEvent("org-1", models.Event{ID: "local-only"})

	n, err := f.svc.ClearLocalEvents(f.ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	_, ok := f.store.Event("org-1", "local-only")
	assert.False(t, ok)
	_, ok = f.store.Event("org-1", "synced")
	assert.True(t, ok)

	_, err = f.svc.GetEvent(f.ctx, "local-only")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestAnalytics(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.seedEvent(models.Event{ID: "e1", Status: models.StatusPublished})
	f.seedTicket(models.Ticket{ID: "t1", EventID: "e1", Quantity: 10, Sold: 4, BasePrice: 20})
	f.seedTicket(models.Ticket{ID: "t2", EventID: "other", Quantity: 10, Sold: 10})

	sum, err := f.svc.Analytics(f.ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, 10, sum.TotalCapacity)
	assert.Equal(t, 4, sum.TotalTicketsSold)
	require.Len(t, sum.Tickets, 1)

	_, err = f.svc.Analytics(f.ctx, "nope")
	assert.True(t, errors.Is(err, models.ErrNotFound))
}
