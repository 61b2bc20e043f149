package store

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventAdmin/internal/models"
)

func ids(events []models.Event) []string {
	out := make([]string, 0, len(events))
	for _, ev := range events {
		out = append(out, ev.ID)
	}
	return out
}

func TestMerge(t *testing.T) {
	t.Parallel()

	remote := []models.Event{{ID: "a", Title: "remote a"}, {ID: "b"}}
	local := []models.Event{{ID: "a", Title: "local a"}, {ID: "c"}}

	merged := Merge(remote, local)
	assert.Equal(t, []string{"a", "b", "c"}, ids(merged))
	assert.Equal(t, "remote a", merged[0].Title)

	// merging the result again changes nothing
	assert.Equal(t, ids(merged), ids(Merge(merged, local)))

	assert.Empty(t, Merge(nil, nil))
	assert.Equal(t, []string{"c"}, ids(Merge(nil, local[1:])))
}

func TestAcknowledged(t *testing.T) {
	t.Parallel()

	remote := []models.Event{{ID: "a"}, {ID: "b"}}
	local := []models.Event{{ID: "b"}, {ID: "z"}}

	assert.Equal(t, []string{"b"}, Acknowledged(remote, local))
	assert.Empty(t, Acknowledged(nil, local))
}

func TestQuery(t *testing.T) {
	t.Parallel()

	events := []models.Event{
		{ID: "1", Title: "Go Meetup", Status: models.StatusPublished, EventType: models.EventTypeInPerson},
		{ID: "2", Title: "Webinar", Description: "All about GO", Status: models.StatusDraft, EventType: models.EventTypeVirtual},
		{ID: "3", Title: "Concert", Status: models.StatusPublished, EventType: models.EventTypeHybrid},
	}

	tests := []struct {
		name string
		q    Query
		want []string
	}{
		{name: "empty", q: Query{}, want: []string{"1", "2", "3"}},
		{name: "all keyword", q: Query{Status: "all", Type: "all"}, want: []string{"1", "2", "3"}},
		{name: "status", q: Query{Status: "published"}, want: []string{"1", "3"}},
		{name: "type", q: Query{Type: "virtual"}, want: []string{"2"}},
		{name: "search title and description", q: Query{Search: "go"}, want: []string{"1", "2"}},
		{name: "combined", q: Query{Status: "published", Search: "go"}, want: []string{"1"}},
		{name: "no match", q: Query{Search: "opera"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ids(Filter(events, tt.q)))
		})
	}
}

func TestStoreReturnsCopies(t *testing.T) {
	t.Parallel()

	s := New()
	s.PutEvent("org", models.Event{ID: "e1", CustomTags: []string{"x"}})

	got, ok := s.Event("org", "e1")
	require.True(t, ok)
	got.CustomTags[0] = "mutated"

	again, _ := s.Event("org", "e1")
	assert.Equal(t, "x", again.CustomTags[0])

	_, ok = s.Event("other-org", "e1")
	assert.False(t, ok)
}

func TestUpdateTicket(t *testing.T) {
	t.Parallel()

	s := New()
	s.SetTickets("org", []models.Ticket{{ID: "t1", Name: "old"}})

	updated, err := s.UpdateTicket("org", "t1", func(tk models.Ticket) (models.Ticket, error) {
		tk.Name = "new"
		return tk, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Name)

	boom := errors.New("boom")
	_, err = s.UpdateTicket("org", "t1", func(tk models.Ticket) (models.Ticket, error) {
		tk.Name = "discarded"
		return tk, boom
	})
	require.ErrorIs(t, err, boom)

	stored, _ := s.Ticket("org", "t1")
	assert.Equal(t, "new", stored.Name)

	_, err = s.UpdateTicket("org", "missing", func(tk models.Ticket) (models.Ticket, error) { return tk, nil })
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestDeleteEvents(t *testing.T) {
	t.Parallel()

	s := New()
	s.SetEvents("org", []models.Event{{ID: "e1"}, {ID: "e2"}, {ID: "e3"}})
	s.SetEvents("other", []models.Event{{ID: "e1"}})

	assert.Equal(t, 2, s.DeleteEvents("org", []string{"e1", "e3", "missing"}))
	assert.Equal(t, []string{"e2"}, ids(s.Events("org")))
	assert.Equal(t, []string{"e1"}, ids(s.Events("other")))
	assert.Zero(t, s.DeleteEvents("org", nil))
}

func TestTickets(t *testing.T) {
	t.Parallel()

	s := New()
	s.SetTickets("org", []models.Ticket{
		{ID: "t1", EventID: "e1", Quantity: 10},
		{ID: "t2", EventID: "e2", Quantity: 5},
	})
	s.PutTicket("org", models.Ticket{ID: "t3", EventID: "e1"})

	assert.Len(t, s.Tickets("org"), 3)
	assert.Len(t, s.TicketsForEvent("org", "e1"), 2)

	next, err := s.UpdateTicket("org", "t1", func(tk models.Ticket) (models.Ticket, error) {
		tk.Sold = 4
		return tk, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 4, next.Sold)

	remove := func(tk models.Ticket) (models.Ticket, bool) { return tk, true }

	_, removed, err := s.RemoveTicket("org", "t2", remove)
	require.NoError(t, err)
	assert.True(t, removed)
	_, ok := s.Ticket("org", "t2")
	assert.False(t, ok)

	_, _, err = s.RemoveTicket("org", "t2", remove)
	assert.ErrorIs(t, err, models.ErrNotFound)

	kept, removed, err := s.RemoveTicket("org", "t1", func(tk models.Ticket) (models.Ticket, bool) {
		tk.IsActive = false
		return tk, false
	})
	require.NoError(t, err)
	assert.False(t, removed)
	assert.False(t, kept.IsActive)
	stored, ok := s.Ticket("org", "t1")
	require.True(t, ok)
	assert.Equal(t, 4, stored.Sold)
}

func TestRemoveTicketSeesConcurrentReservation(t *testing.T) {
	t.Parallel()

	for i := 0; i < 50; i++ {
		s := New()
		s.SetTickets("org", []models.Ticket{{ID: "t1", Quantity: 10, IsActive: true}})

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = s.UpdateTicket("org", "t1", func(tk models.Ticket) (models.Ticket, error) {
				tk.Reserved++
				return tk, nil
			})
		}()
		var removed bool
		go func() {
			defer wg.Done()
			_, removed, _ = s.RemoveTicket("org", "t1", func(tk models.Ticket) (models.Ticket, bool) {
				if tk.Sold > 0 || tk.Reserved > 0 {
					tk.IsActive = false
					return tk, false
				}
				return tk, true
			})
		}()
		wg.Wait()

		stored, ok := s.Ticket("org", "t1")
		if removed {
			assert.False(t, ok)
			continue
		}
		require.True(t, ok)
		assert.Equal(t, 1, stored.Reserved)
		assert.False(t, stored.IsActive)
	}
}


func TestConcurrentUpdatesDoNotLoseWrites(t *testing.T) {
	t.Parallel()

	s := New()
	s.PutTicket("org", models.Ticket{ID: "t1", Quantity: 1000})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.UpdateTicket("org", "t1", func(tk models.Ticket) (models.Ticket, error) {
				tk.Sold++
				return tk, nil
			})
		}()
	}
	wg.Wait()

	tk, _ := s.Ticket("org", "t1")
	assert.Equal(t, 50, tk.Sold)
}

func TestSequencedRequests(t *testing.T) {
	t.Parallel()

	s := New()

	first := s.Begin(KindEventList, "org")
	second := s.Begin(KindEventList, "org")
	assert.False(t, s.Current(first))
	assert.True(t, s.Current(second))
	assert.True(t, s.State("org")[KindEventList].Loading)

	// the second request completes first; the stale first one is discarded
	require.NoError(t, s.Finish(second, nil))
	assert.False(t, s.State("org")[KindEventList].Loading)

	err := s.Finish(first, errors.New("late failure"))
	require.ErrorIs(t, err, models.ErrSuperseded)
	assert.Empty(t, s.State("org")[KindEventList].Error)

	// other scopes are independent
	other := s.Begin(KindEventList, "org-2")
	assert.NoError(t, s.Finish(other, nil))
}

func TestFinishRecordsError(t *testing.T) {
	t.Parallel()

	s := New()
	tok := s.Begin(KindTicketList, "org")
	require.NoError(t, s.Finish(tok, errors.New("backend down")))

	st := s.State("org")[KindTicketList]
	assert.False(t, st.Loading)
	assert.Equal(t, "backend down", st.Error)

	// a new request clears the previous error
	s.Begin(KindTicketList, "org")
	assert.Empty(t, s.State("org")[KindTicketList].Error)
}

func TestAcquireRejectsDuplicateSubmission(t *testing.T) {
	t.Parallel()

	s := New()

	tok, err := s.Acquire(KindEventCreate, "org", "key-1")
	require.NoError(t, err)

	_, err = s.Acquire(KindEventCreate, "org", "key-1")
	require.ErrorIs(t, err, models.ErrDuplicateSubmission)

	other, err := s.Acquire(KindEventCreate, "org", "key-2")
	require.NoError(t, err)

	s.Release(tok, nil)
	assert.True(t, s.State("org")[KindEventCreate].Loading, "key-2 still in flight")

	s.Release(other, errors.New("rejected"))
	st := s.State("org")[KindEventCreate]
	assert.False(t, st.Loading)
	assert.Equal(t, "rejected", st.Error)

	_, err = s.Acquire(KindEventCreate, "org", "key-1")
	assert.NoError(t, err)
}

func TestStateListsEveryKind(t *testing.T) {
	t.Parallel()

	st := New().State("org")
	assert.Len(t, st, len(Kinds))
	for _, k := range Kinds {
		assert.Equal(t, RequestState{}, st[k])
	}
}
