package promo

import (
	"fmt"
	"time"

	"eventAdmin/internal/models"
	"eventAdmin/internal/pricing"
)

type QuoteInput struct {
	Ticket   models.Ticket
	Quantity int
	Code     *models.PromotionalCode
	Group    *models.GroupBooking
	Now      time.Time
}

type Quote struct {
	TicketID       string  `json:"ticketId"`
	Quantity       int     `json:"quantity"`
	UnitPrice      float64 `json:"unitPrice"`
	Subtotal       float64 `json:"subtotal"`
	Discount       float64 `json:"discount"`
	Total          float64 `json:"total"`
	PromoCode      string  `json:"promoCode,omitempty"`
	GroupBookingID string  `json:"groupBookingId,omitempty"`
}

// Price quotes an order. A promotional code and a group-booking discount
// are each validated on their own; applying both to one order is refused
// with models.ErrNotSupported since no combination rule exists.
func Price(in QuoteInput) (Quote, error) {
	if in.Quantity <= 0 {
		return Quote{}, fmt.Errorf("quote %d tickets: %w", in.Quantity, models.ErrInvalidQuantity)
	}
	if in.Code != nil && in.Group != nil {
		return Quote{}, fmt.Errorf("promotional code with group booking: %w", models.ErrNotSupported)
	}

	unit := pricing.Resolve(in.Ticket, in.Now)
	q := Quote{
		TicketID:  in.Ticket.ID,
		Quantity:  in.Quantity,
		UnitPrice: unit,
		Subtotal:  roundCents(unit * float64(in.Quantity)),
	}

	switch {
	case in.Code != nil:
		if err := Check(*in.Code, in.Ticket, in.Quantity, in.Now); err != nil {
			return Quote{}, err
		}
		q.PromoCode = in.Code.Code
		q.Discount = Discount(*in.Code, unit, in.Quantity)
	case in.Group != nil:
		g := in.Group
		if g.Status != models.GroupBookingApproved {
			return Quote{}, fmt.Errorf("group booking %q is %s: %w", g.ID, g.Status, models.ErrInvalidState)
		}
		if g.TicketTypeID != in.Ticket.ID || in.Quantity > g.RequestedQuantity {
			return Quote{}, fmt.Errorf("group booking %q does not cover this order: %w", g.ID, models.ErrInvalidQuantity)
		}
		q.GroupBookingID = g.ID
		q.Discount = roundCents(q.Subtotal * g.DiscountPercentage / 100)
	}

	q.Total = roundCents(q.Subtotal - q.Discount)

	return q, nil
}
