// Package store is the dashboard's cache of events, tickets and venues, one
// partition per organization. Records go in and out as copies and every
// write replaces a whole record, so two completions never interleave field
// updates on the same object.
package store

import (
	"fmt"
	"slices"
	"sync"

	"eventAdmin/internal/models"
)

type Store struct {
	mu       sync.RWMutex
	events   map[string][]models.Event
	tickets  map[string][]models.Ticket
	venues   map[string][]models.Venue
	requests map[string]*requestSlot
}

func New() *Store {
	return &Store{
		events:   make(map[string][]models.Event),
		tickets:  make(map[string][]models.Ticket),
		venues:   make(map[string][]models.Venue),
		requests: make(map[string]*requestSlot),
	}
}

func cloneEvents(in []models.Event) []models.Event {
	out := make([]models.Event, len(in))
	for i, ev := range in {
		out[i] = ev.Clone()
	}
	return out
}

func cloneTickets(in []models.Ticket) []models.Ticket {
	out := make([]models.Ticket, len(in))
	for i, t := range in {
		out[i] = t.Clone()
	}
	return out
}

// SetEvents replaces the whole event collection of org.
func (s *Store) SetEvents(org string, events []models.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events[org] = cloneEvents(events)
}

func (s *Store) Events(org string) []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneEvents(s.events[org])
}

func (s *Store) Event(org, id string) (models.Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := slices.IndexFunc(s.events[org], func(ev models.Event) bool { return ev.ID == id })
	if idx < 0 {
		return models.Event{}, false
	}

	return s.events[org][idx].Clone(), true
}

// PutEvent inserts ev or replaces the record with the same id.
func (s *Store) PutEvent(org string, ev models.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.events[org]
	if idx := slices.IndexFunc(list, func(e models.Event) bool { return e.ID == ev.ID }); idx >= 0 {
		list[idx] = ev.Clone()
		return
	}
	s.events[org] = append(list, ev.Clone())
}

// DeleteEvents drops the events with the given ids and reports how many
// were present.
func (s *Store) DeleteEvents(org string, ids []string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.events[org])
	s.events[org] = slices.DeleteFunc(s.events[org], func(ev models.Event) bool {
		return slices.Contains(ids, ev.ID)
	})

	return before - len(s.events[org])
}

func (s *Store) SetTickets(org string, tickets []models.Ticket) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tickets[org] = cloneTickets(tickets)
}

func (s *Store) Tickets(org string) []models.Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneTickets(s.tickets[org])
}

func (s *Store) TicketsForEvent(org, eventID string) []models.Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Ticket
	for _, t := range s.tickets[org] {
		if t.EventID == eventID {
			out = append(out, t.Clone())
		}
	}

	return out
}

func (s *Store) Ticket(org, id string) (models.Ticket, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := slices.IndexFunc(s.tickets[org], func(t models.Ticket) bool { return t.ID == id })
	if idx < 0 {
		return models.Ticket{}, false
	}

	return s.tickets[org][idx].Clone(), true
}

func (s *Store) PutTicket(org string, t models.Ticket) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.tickets[org]
	if idx := slices.IndexFunc(list, func(x models.Ticket) bool { return x.ID == t.ID }); idx >= 0 {
		list[idx] = t.Clone()
		return
	}
	s.tickets[org] = append(list, t.Clone())
}

// UpdateTicket applies fn to the stored ticket under the write lock. The
// record is left untouched when fn fails.
func (s *Store) UpdateTicket(org, id string, fn func(models.Ticket) (models.Ticket, error)) (models.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.tickets[org]
	idx := slices.IndexFunc(list, func(t models.Ticket) bool { return t.ID == id })
	if idx < 0 {
		return models.Ticket{}, fmt.Errorf("ticket %q: %w", id, models.ErrNotFound)
	}

	next, err := fn(list[idx].Clone())
	if err != nil {
		return list[idx].Clone(), err
	}
	list[idx] = next.Clone()

	return next, nil
}

// RemoveTicket hands the stored ticket to fn and either deletes it or keeps
// fn's replacement, depending on fn's verdict, under one lock.
func (s *Store) RemoveTicket(org, id string, fn func(models.Ticket) (models.Ticket, bool)) (models.Ticket, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.tickets[org]
	idx := slices.IndexFunc(list, func(t models.Ticket) bool { return t.ID == id })
	if idx < 0 {
		return models.Ticket{}, false, fmt.Errorf("ticket %q: %w", id, models.ErrNotFound)
	}

	next, remove := fn(list[idx].Clone())
	if remove {
		s.tickets[org] = slices.Delete(list, idx, idx+1)
		return next, true, nil
	}
	list[idx] = next.Clone()

	return next, false, nil
}
