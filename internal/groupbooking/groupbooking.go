// Package groupbooking handles bulk ticket requests. Status only moves
// forward: pending -> approved or pending -> rejected.
package groupbooking

import (
	"fmt"
	"time"

	"eventAdmin/internal/models"
)

type RequestInput struct {
	ID                string
	GroupName         string
	ContactEmail      string
	ContactPhone      string
	RequestedQuantity int
	SpecialRequests   string
}

// Request opens a group booking for ticket t of event ev. The discount is
// taken from the ticket's group settings.
func Request(ev models.Event, t models.Ticket, in RequestInput, now time.Time) (models.GroupBooking, error) {
	if !ev.Settings.EnableGroupBooking || !t.Settings.AllowGroupBooking {
		return models.GroupBooking{}, fmt.Errorf("ticket %q: group booking disabled: %w", t.ID, models.ErrInvalidState)
	}
	if in.RequestedQuantity <= 0 || in.RequestedQuantity < t.Settings.GroupMinQuantity {
		return models.GroupBooking{}, fmt.Errorf("group of %d below minimum %d: %w",
			in.RequestedQuantity, t.Settings.GroupMinQuantity, models.ErrInvalidQuantity)
	}

	b := models.GroupBooking{
		ID:                 in.ID,
		EventID:            ev.ID,
		TicketTypeID:       t.ID,
		GroupName:          in.GroupName,
		ContactEmail:       in.ContactEmail,
		ContactPhone:       in.ContactPhone,
		RequestedQuantity:  in.RequestedQuantity,
		DiscountPercentage: t.Settings.GroupDiscountPercentage,
		SpecialRequests:    in.SpecialRequests,
		Status:             models.GroupBookingPending,
		CreatedAt:          now,
	}

	if ev.Settings.AutoApproveGroupBookings {
		return Decide(b, models.GroupBookingApproved, now)
	}

	return b, nil
}

// Decide settles a pending booking.
func Decide(b models.GroupBooking, status models.GroupBookingStatus, now time.Time) (models.GroupBooking, error) {
	if b.Status != models.GroupBookingPending {
		return b, fmt.Errorf("group booking %q already %s: %w", b.ID, b.Status, models.ErrInvalidState)
	}

	switch status {
	case models.GroupBookingApproved:
		at := now
		b.ApprovedAt = &at
	case models.GroupBookingRejected:
	default:
		return b, fmt.Errorf("group booking %q cannot move to %q: %w", b.ID, status, models.ErrInvalidState)
	}
	b.Status = status

	return b, nil
}
