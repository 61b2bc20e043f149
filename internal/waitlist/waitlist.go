// Package waitlist keeps waiting entries ranked per ticket type. Positions
// are dense and start at 1 for every ticket type.
package waitlist

import (
	"fmt"
	"slices"

	"eventAdmin/internal/models"
)

// Join appends entry at the end of its ticket type's queue.
func Join(entries []models.WaitlistEntry, entry models.WaitlistEntry) ([]models.WaitlistEntry, models.WaitlistEntry, error) {
	if entry.RequestedQuantity <= 0 {
		return entries, entry, fmt.Errorf("waitlist request of %d: %w", entry.RequestedQuantity, models.ErrInvalidQuantity)
	}

	entry.Position = len(ForTicket(entries, entry.TicketTypeID)) + 1
	entry.Notified = false

	out := append(slices.Clone(entries), entry)

	return out, entry, nil
}

// Remove drops the entry with id and closes the gap it leaves in its queue.
func Remove(entries []models.WaitlistEntry, id string) ([]models.WaitlistEntry, error) {
	idx := slices.IndexFunc(entries, func(e models.WaitlistEntry) bool { return e.ID == id })
	if idx < 0 {
		return entries, fmt.Errorf("waitlist entry %q: %w", id, models.ErrNotFound)
	}

	removed := entries[idx]
	out := make([]models.WaitlistEntry, 0, len(entries)-1)

	for i, e := range entries {
		if i == idx {
			continue
		}
		if e.TicketTypeID == removed.TicketTypeID && e.Position > removed.Position {
			e.Position--
		}
		out = append(out, e)
	}

	return out, nil
}

// Notify flags the entry as notified. The flag never goes back.
func Notify(entries []models.WaitlistEntry, id string) ([]models.WaitlistEntry, error) {
	idx := slices.IndexFunc(entries, func(e models.WaitlistEntry) bool { return e.ID == id })
	if idx < 0 {
		return entries, fmt.Errorf("waitlist entry %q: %w", id, models.ErrNotFound)
	}

	out := slices.Clone(entries)
	out[idx].Notified = true

	return out, nil
}

// NotifyNext walks the queue of ticketTypeID in position order and flags
// unnotified entries while their requested quantities fit into available.
// It stops at the first entry that does not fit so nobody is skipped.
func NotifyNext(entries []models.WaitlistEntry, ticketTypeID string, available int) ([]models.WaitlistEntry, []models.WaitlistEntry) {
	out := slices.Clone(entries)

	var notified []models.WaitlistEntry
	for _, e := range ForTicket(out, ticketTypeID) {
		if e.Notified {
			continue
		}
		if e.RequestedQuantity > available {
			break
		}
		available -= e.RequestedQuantity

		i := slices.IndexFunc(out, func(x models.WaitlistEntry) bool { return x.ID == e.ID })
		out[i].Notified = true
		notified = append(notified, out[i])
	}

	return out, notified
}

// ForTicket returns the queue of ticketTypeID sorted by position.
func ForTicket(entries []models.WaitlistEntry, ticketTypeID string) []models.WaitlistEntry {
	var queue []models.WaitlistEntry
	for _, e := range entries {
		if e.TicketTypeID == ticketTypeID {
			queue = append(queue, e)
		}
	}

	slices.SortFunc(queue, func(a, b models.WaitlistEntry) int { return a.Position - b.Position })

	return queue
}
