// Package inventory keeps sold + reserved within the allocated quantity of a
// ticket type. The functions take a ticket value and return the replacement
// value; a rejected call returns the input unchanged.
package inventory

import (
	"fmt"
	"time"

	"eventAdmin/internal/models"
)

func Available(t models.Ticket) int {
	if n := t.Quantity - t.Sold - t.Reserved; n > 0 {
		return n
	}
	return 0
}

func Reserve(t models.Ticket, qty int) (models.Ticket, error) {
	if qty <= 0 {
		return t, fmt.Errorf("reserve %d: %w", qty, models.ErrInvalidQuantity)
	}
	if t.Sold+t.Reserved+qty > t.Quantity {
		return t, fmt.Errorf("reserve %d of %d available: %w", qty, Available(t), models.ErrInsufficientInventory)
	}

	next := t.Clone()
	next.Reserved += qty

	return next, nil
}

// ConfirmSale turns qty reserved units into sold units.
func ConfirmSale(t models.Ticket, qty int) (models.Ticket, error) {
	if qty <= 0 {
		return t, fmt.Errorf("confirm %d: %w", qty, models.ErrInvalidQuantity)
	}
	if qty > t.Reserved {
		return t, fmt.Errorf("confirm %d with %d reserved: %w", qty, t.Reserved, models.ErrInvalidState)
	}

	next := t.Clone()
	next.Reserved -= qty
	next.Sold += qty

	return next, nil
}

// ReleaseReservation gives qty reserved units back. A release larger than the
// outstanding reservations floors reserved at zero and reports clamped.
func ReleaseReservation(t models.Ticket, qty int) (next models.Ticket, clamped bool, err error) {
	if qty <= 0 {
		return t, false, fmt.Errorf("release %d: %w", qty, models.ErrInvalidQuantity)
	}

	next = t.Clone()
	if qty > next.Reserved {
		next.Reserved = 0
		return next, true, nil
	}
	next.Reserved -= qty

	return next, false, nil
}

// AdjustQuantity changes the allocated quantity by delta. Capacity never
// shrinks below the units already committed.
func AdjustQuantity(t models.Ticket, delta int) (models.Ticket, error) {
	quantity := t.Quantity + delta
	if quantity < 0 || quantity < t.Sold+t.Reserved {
		return t, fmt.Errorf("adjust quantity to %d with %d committed: %w", quantity, t.Sold+t.Reserved, models.ErrInvalidQuantity)
	}

	next := t.Clone()
	next.Quantity = quantity

	return next, nil
}

// CheckOrderQuantity enforces the per-order limits of the ticket settings.
// Zero limits mean unbounded.
func CheckOrderQuantity(t models.Ticket, qty int) error {
	if lo := t.Settings.MinQuantity; lo > 0 && qty < lo {
		return fmt.Errorf("order of %d below minimum %d: %w", qty, lo, models.ErrInvalidQuantity)
	}
	if hi := t.Settings.MaxQuantity; hi > 0 && qty > hi {
		return fmt.Errorf("order of %d above maximum %d: %w", qty, hi, models.ErrInvalidQuantity)
	}
	return nil
}

// Purchasable reports whether t can be sold at now for event ev.
func Purchasable(t models.Ticket, ev models.Event, now time.Time) bool {
	if !t.IsActive || ev.Status != models.StatusPublished {
		return false
	}
	return !now.Before(t.SalesStart) && !now.After(t.SalesEnd)
}

// Retire removes a ticket type. Once any unit is sold or held by a
// reservation the ticket must stay, so it is deactivated instead; deleted
// tells which happened.
func Retire(t models.Ticket, now time.Time) (next models.Ticket, deleted bool) {
	if t.Sold == 0 && t.Reserved == 0 {
		return t, true
	}

	next = t.Clone()
	next.IsActive = false
	next.UpdatedAt = now

	return next, false
}
