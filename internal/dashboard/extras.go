package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"eventAdmin/internal/client/backend"
	"eventAdmin/internal/groupbooking"
	"eventAdmin/internal/inventory"
	"eventAdmin/internal/lib/logger/sl"
	"eventAdmin/internal/lib/session"
	"eventAdmin/internal/models"
	"eventAdmin/internal/promo"
	"eventAdmin/internal/validation"
	"eventAdmin/internal/waitlist"
)

// AddPromoCode attaches a new code to event eventID. Codes are unique across
// all events of the organization.
func (s *Service) AddPromoCode(ctx context.Context, eventID string, code models.PromotionalCode) (models.PromotionalCode, error) {
	const op = "dashboard.AddPromoCode"

	org := session.Organization(ctx)
	now := s.clock.Now()

	code.Code = promo.Normalize(code.Code)
	code.ID = s.newID()
	code.UsedCount = 0
	code.CreatedAt = now

	if err := validation.PromoCode(code); err != nil {
		return models.PromotionalCode{}, err
	}

	unlock := s.promoLocks.lock(org)
	defer unlock()

	others, err := s.promoCodesInUse(ctx, org, eventID)
	if err != nil {
		s.log.Error("failed to collect promotional codes", slog.String("op", op), sl.Err(err))
		return models.PromotionalCode{}, fmt.Errorf("%s: %w", op, err)
	}

	_, err = s.mutateEvent(ctx, eventID, func(ev models.Event) (models.Event, error) {
		taken := append(slices.Clone(others), ev.PromotionalCodes...)

		if err := promo.EnsureUnique(code.Code, taken); err != nil {
			return ev, err
		}

		next := ev.Clone()
		next.PromotionalCodes = append(next.PromotionalCodes, code)
		next.UpdatedAt = now
		return next, nil
	})
	if err != nil {
		return models.PromotionalCode{}, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("promotional code added", slog.String("op", op), slog.String("event_id", eventID), slog.String("code", code.Code))

	return code, nil
}

// promoCodesInUse gathers the codes of every organization event except
// exceptID from the backend, the local table and the cache. A backend
// failure is returned rather than checking a partial set.
func (s *Service) promoCodesInUse(ctx context.Context, org, exceptID string) ([]models.PromotionalCode, error) {
	remote, err := s.backend.ListEvents(ctx, backend.ListParams{})
	if err != nil {
		return nil, err
	}
	local, err := s.local.LocalEvents(ctx, org)
	if err != nil {
		return nil, err
	}

	var codes []models.PromotionalCode
	for _, src := range [][]models.Event{remote, local, s.store.Events(org)} {
		for _, ev := range src {
			if ev.ID != exceptID {
				codes = append(codes, ev.PromotionalCodes...)
			}
		}
	}

	return codes, nil
}

type RedeemRequest struct {
	TicketID string `json:"ticketId" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gte=1"`
}

// RedeemPromoCode consumes one use of code for an order of the given ticket.
func (s *Service) RedeemPromoCode(ctx context.Context, eventID, code string, req RedeemRequest) (models.PromotionalCode, error) {
	const op = "dashboard.RedeemPromoCode"

	org := session.Organization(ctx)

	t, err := s.ticket(org, req.TicketID)
	if err != nil {
		return models.PromotionalCode{}, fmt.Errorf("%s: %w", op, err)
	}
	if t.EventID != eventID {
		return models.PromotionalCode{}, fmt.Errorf("%s: ticket %q of another event: %w", op, t.ID, models.ErrNotFound)
	}

	var redeemed models.PromotionalCode
	_, err = s.mutateEvent(ctx, eventID, func(ev models.Event) (models.Event, error) {
		idx := findCode(ev.PromotionalCodes, code)
		if idx < 0 {
			return ev, fmt.Errorf("code %q: %w", code, models.ErrNotFound)
		}

		next := ev.Clone()
		c, err := promo.Redeem(next.PromotionalCodes[idx], t, req.Quantity, s.clock.Now())
		if err != nil {
			return ev, err
		}
		next.PromotionalCodes[idx] = c
		next.UpdatedAt = s.clock.Now()
		redeemed = c

		return next, nil
	})
	if err != nil {
		return models.PromotionalCode{}, fmt.Errorf("%s: %w", op, err)
	}

	return redeemed, nil
}

func findCode(codes []models.PromotionalCode, code string) int {
	code = promo.Normalize(code)
	return slices.IndexFunc(codes, func(c models.PromotionalCode) bool { return promo.Normalize(c.Code) == code })
}

type QuoteRequest struct {
	TicketID       string `json:"ticketId" validate:"required"`
	Quantity       int    `json:"quantity" validate:"required,gte=1"`
	PromoCode      string `json:"promoCode,omitempty"`
	GroupBookingID string `json:"groupBookingId,omitempty"`
}

// Quote prices an order without changing anything.
func (s *Service) Quote(ctx context.Context, req QuoteRequest) (promo.Quote, error) {
	const op = "dashboard.Quote"

	org := session.Organization(ctx)

	t, err := s.ticket(org, req.TicketID)
	if err != nil {
		return promo.Quote{}, fmt.Errorf("%s: %w", op, err)
	}

	ev, err := s.event(ctx, org, t.EventID)
	if err != nil {
		return promo.Quote{}, fmt.Errorf("%s: %w", op, err)
	}

	in := promo.QuoteInput{Ticket: t, Quantity: req.Quantity, Now: s.clock.Now()}

	if req.PromoCode != "" {
		idx := findCode(ev.PromotionalCodes, req.PromoCode)
		if idx < 0 {
			return promo.Quote{}, fmt.Errorf("%s: code %q: %w", op, req.PromoCode, models.ErrNotFound)
		}
		in.Code = &ev.PromotionalCodes[idx]
	}
	if req.GroupBookingID != "" {
		idx := slices.IndexFunc(ev.GroupBookings, func(b models.GroupBooking) bool { return b.ID == req.GroupBookingID })
		if idx < 0 {
			return promo.Quote{}, fmt.Errorf("%s: group booking %q: %w", op, req.GroupBookingID, models.ErrNotFound)
		}
		in.Group = &ev.GroupBookings[idx]
	}

	// approved group bookings are sized by the organizer, not the per-order limits
	if in.Group == nil {
		if err = inventory.CheckOrderQuantity(t, req.Quantity); err != nil {
			return promo.Quote{}, fmt.Errorf("%s: %w", op, err)
		}
	}

	q, err := promo.Price(in)
	if err != nil {
		return promo.Quote{}, fmt.Errorf("%s: %w", op, err)
	}

	return q, nil
}

type GroupBookingRequest struct {
	TicketTypeID      string `json:"ticketTypeId" validate:"required"`
	GroupName         string `json:"groupName" validate:"required"`
	ContactEmail      string `json:"contactEmail" validate:"required,email"`
	ContactPhone      string `json:"contactPhone,omitempty"`
	RequestedQuantity int    `json:"requestedQuantity" validate:"required,gte=1"`
	SpecialRequests   string `json:"specialRequests,omitempty"`
}

func (s *Service) RequestGroupBooking(ctx context.Context, eventID string, req GroupBookingRequest) (models.GroupBooking, error) {
	const op = "dashboard.RequestGroupBooking"

	org := session.Organization(ctx)

	t, err := s.ticket(org, req.TicketTypeID)
	if err != nil {
		return models.GroupBooking{}, fmt.Errorf("%s: %w", op, err)
	}
	if t.EventID != eventID {
		return models.GroupBooking{}, fmt.Errorf("%s: ticket %q of another event: %w", op, t.ID, models.ErrNotFound)
	}

	var booking models.GroupBooking
	_, err = s.mutateEvent(ctx, eventID, func(ev models.Event) (models.Event, error) {
		now := s.clock.Now()
		b, err := groupbooking.Request(ev, t, groupbooking.RequestInput{
			ID:                s.newID(),
			GroupName:         req.GroupName,
			ContactEmail:      req.ContactEmail,
			ContactPhone:      req.ContactPhone,
			RequestedQuantity: req.RequestedQuantity,
			SpecialRequests:   req.SpecialRequests,
		}, now)
		if err != nil {
			return ev, err
		}

		next := ev.Clone()
		next.GroupBookings = append(next.GroupBookings, b)
		next.UpdatedAt = now
		booking = b

		return next, nil
	})
	if err != nil {
		return models.GroupBooking{}, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("group booking requested",
		slog.String("op", op),
		slog.String("booking_id", booking.ID),
		slog.String("status", string(booking.Status)),
	)

	return booking, nil
}

func (s *Service) DecideGroupBooking(ctx context.Context, eventID, bookingID string, status models.GroupBookingStatus) (models.GroupBooking, error) {
	const op = "dashboard.DecideGroupBooking"

	var decided models.GroupBooking
	_, err := s.mutateEvent(ctx, eventID, func(ev models.Event) (models.Event, error) {
		idx := slices.IndexFunc(ev.GroupBookings, func(b models.GroupBooking) bool { return b.ID == bookingID })
		if idx < 0 {
			return ev, fmt.Errorf("group booking %q: %w", bookingID, models.ErrNotFound)
		}

		now := s.clock.Now()
		b, err := groupbooking.Decide(ev.GroupBookings[idx], status, now)
		if err != nil {
			return ev, err
		}

		next := ev.Clone()
		next.GroupBookings[idx] = b
		next.UpdatedAt = now
		decided = b

		return next, nil
	})
	if err != nil {
		return models.GroupBooking{}, fmt.Errorf("%s: %w", op, err)
	}

	return decided, nil
}

type WaitlistRequest struct {
	TicketTypeID      string `json:"ticketTypeId" validate:"required"`
	Email             string `json:"email" validate:"required,email"`
	Name              string `json:"name" validate:"required"`
	Phone             string `json:"phone,omitempty"`
	RequestedQuantity int    `json:"requestedQuantity" validate:"required,gte=1"`
}

// JoinWaitlist queues a request for a ticket type of an event that allows
// waitlists.
func (s *Service) JoinWaitlist(ctx context.Context, eventID string, req WaitlistRequest) (models.WaitlistEntry, error) {
	const op = "dashboard.JoinWaitlist"

	org := session.Organization(ctx)

	t, err := s.ticket(org, req.TicketTypeID)
	if err != nil {
		return models.WaitlistEntry{}, fmt.Errorf("%s: %w", op, err)
	}
	if t.EventID != eventID {
		return models.WaitlistEntry{}, fmt.Errorf("%s: ticket %q of another event: %w", op, t.ID, models.ErrNotFound)
	}

	var joined models.WaitlistEntry
	_, err = s.mutateEvent(ctx, eventID, func(ev models.Event) (models.Event, error) {
		if !ev.Settings.AllowWaitlist {
			return ev, fmt.Errorf("event %q has no waitlist: %w", ev.ID, models.ErrInvalidState)
		}

		now := s.clock.Now()
		entries, e, err := waitlist.Join(ev.Waitlist, models.WaitlistEntry{
			ID:                s.newID(),
			EventID:           ev.ID,
			TicketTypeID:      t.ID,
			Email:             req.Email,
			Name:              req.Name,
			Phone:             req.Phone,
			RequestedQuantity: req.RequestedQuantity,
			CreatedAt:         now,
		})
		if err != nil {
			return ev, err
		}

		next := ev.Clone()
		next.Waitlist = entries
		next.UpdatedAt = now
		joined = e

		return next, nil
	})
	if err != nil {
		return models.WaitlistEntry{}, fmt.Errorf("%s: %w", op, err)
	}

	return joined, nil
}

func (s *Service) LeaveWaitlist(ctx context.Context, eventID, entryID string) error {
	_, err := s.mutateEvent(ctx, eventID, func(ev models.Event) (models.Event, error) {
		entries, err := waitlist.Remove(ev.Waitlist, entryID)
		if err != nil {
			return ev, err
		}

		next := ev.Clone()
		next.Waitlist = entries
		next.UpdatedAt = s.clock.Now()

		return next, nil
	})
	if err != nil {
		return fmt.Errorf("dashboard.LeaveWaitlist: %w", err)
	}

	return nil
}

func (s *Service) NotifyWaitlistEntry(ctx context.Context, eventID, entryID string) (models.WaitlistEntry, error) {
	var notified models.WaitlistEntry
	_, err := s.mutateEvent(ctx, eventID, func(ev models.Event) (models.Event, error) {
		entries, err := waitlist.Notify(ev.Waitlist, entryID)
		if err != nil {
			return ev, err
		}

		next := ev.Clone()
		next.Waitlist = entries
		next.UpdatedAt = s.clock.Now()
		notified = entries[slices.IndexFunc(entries, func(e models.WaitlistEntry) bool { return e.ID == entryID })]

		return next, nil
	})
	if err != nil {
		return models.WaitlistEntry{}, fmt.Errorf("dashboard.NotifyWaitlistEntry: %w", err)
	}

	return notified, nil
}
