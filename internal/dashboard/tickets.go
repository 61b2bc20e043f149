package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"eventAdmin/internal/inventory"
	"eventAdmin/internal/lib/logger/sl"
	"eventAdmin/internal/lib/session"
	"eventAdmin/internal/models"
	"eventAdmin/internal/pricing"
	"eventAdmin/internal/store"
	"eventAdmin/internal/validation"
	"eventAdmin/internal/waitlist"
)

// CreateTicket adds a ticket type to a draft or published event.
func (s *Service) CreateTicket(ctx context.Context, t models.Ticket, key string) (created models.Ticket, err error) {
	const op = "dashboard.CreateTicket"

	org := session.Organization(ctx)
	log := s.log.With(slog.String("op", op), slog.String("event_id", t.EventID))

	now := s.clock.Now()
	t.Sold, t.Reserved = 0, 0
	t.CreatedAt, t.UpdatedAt = now, now
	for i := range t.PricingTiers {
		if t.PricingTiers[i].ID == "" {
			t.PricingTiers[i].ID = s.newID()
		}
	}

	if err = validation.Ticket(t); err != nil {
		return models.Ticket{}, err
	}

	ev, err := s.event(ctx, org, t.EventID)
	if err != nil {
		return models.Ticket{}, fmt.Errorf("%s: %w", op, err)
	}
	if ev.Status != models.StatusDraft && ev.Status != models.StatusPublished {
		return models.Ticket{}, fmt.Errorf("%s: event %q is %s: %w", op, ev.ID, ev.Status, models.ErrInvalidState)
	}

	if key == "" {
		key = t.EventID + "|" + strings.ToLower(strings.TrimSpace(t.Name))
	}

	tok, err := s.store.Acquire(store.KindTicketCreate, org, key)
	if err != nil {
		return models.Ticket{}, err
	}
	defer func() { s.store.Release(tok, err) }()

	created, err = s.backend.CreateTicket(ctx, t)
	if err != nil {
		log.Error("failed to create ticket", sl.Err(err))
		return models.Ticket{}, fmt.Errorf("%s: %w", op, err)
	}
	if created.ID == "" {
		created = t
		created.ID = s.newID()
	}
	if created.EventID == "" {
		created.EventID = ev.ID
	}
	if created.EventTitle == "" {
		created.EventTitle = ev.Title
	}

	s.store.PutTicket(org, created)

	log.Info("ticket created", slog.String("ticket_id", created.ID))

	return created, nil
}

// ListTickets refreshes the organization's ticket cache from the backend.
func (s *Service) ListTickets(ctx context.Context) ([]models.Ticket, error) {
	const op = "dashboard.ListTickets"

	org := session.Organization(ctx)
	tok := s.store.Begin(store.KindTicketList, org)

	tickets, err := s.backend.ListTickets(ctx)
	if ferr := s.store.Finish(tok, err); ferr != nil {
		return nil, ferr
	}
	if err != nil {
		s.log.Error("failed to list tickets", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.store.SetTickets(org, tickets)

	return tickets, nil
}

type PriceInfo struct {
	TicketID  string              `json:"ticketId"`
	At        time.Time           `json:"at"`
	Price     float64             `json:"price"`
	Tier      *models.PricingTier `json:"tier,omitempty"`
	NextTier  *models.PricingTier `json:"nextTier,omitempty"`
	Available int                 `json:"available"`
	OnSale    bool                `json:"onSale"`
}

// Price resolves the price of ticket id at the given instant; a zero at
// means now.
func (s *Service) Price(ctx context.Context, id string, at time.Time) (PriceInfo, error) {
	org := session.Organization(ctx)

	t, err := s.ticket(org, id)
	if err != nil {
		return PriceInfo{}, err
	}
	if at.IsZero() {
		at = s.clock.Now()
	}

	info := PriceInfo{
		TicketID:  t.ID,
		At:        at,
		Price:     pricing.Resolve(t, at),
		Available: inventory.Available(t),
	}
	if tier, ok := pricing.Active(t, at); ok {
		info.Tier = &tier
	}
	if tier, ok := pricing.Next(t, at); ok {
		info.NextTier = &tier
	}
	if ev, ok := s.store.Event(org, t.EventID); ok {
		info.OnSale = inventory.Purchasable(t, ev, at)
	}

	return info, nil
}

type InventoryResult struct {
	Ticket   models.Ticket          `json:"ticket"`
	Replayed bool                   `json:"replayed"`
	Notified []models.WaitlistEntry `json:"notified,omitempty"`
}

// Inventory applies op with amount to ticket id. key is the caller's
// idempotency key; repeating a request with the same key returns the first
// result without counting again.
func (s *Service) Inventory(ctx context.Context, id string, op inventory.Op, amount int, key string) (InventoryResult, error) {
	const fn = "dashboard.Inventory"

	org := session.Organization(ctx)
	log := s.log.With(slog.String("op", fn), slog.String("ticket_id", id), slog.String("inventory_op", string(op)))

	t, err := s.ticket(org, id)
	if err != nil {
		return InventoryResult{}, err
	}

	ev, err := s.event(ctx, org, t.EventID)
	if err != nil {
		return InventoryResult{}, fmt.Errorf("%s: %w", fn, err)
	}

	if op == inventory.OpReserve {
		if !inventory.Purchasable(t, ev, s.clock.Now()) {
			return InventoryResult{}, fmt.Errorf("%s: ticket %q: %w", fn, id, models.ErrNotOnSale)
		}
		if err = inventory.CheckOrderQuantity(t, amount); err != nil {
			return InventoryResult{}, fmt.Errorf("%s: %w", fn, err)
		}
	}

	if key != "" {
		key = org + "|" + key
	}

	var res InventoryResult
	_, err = s.store.UpdateTicket(org, id, func(cur models.Ticket) (models.Ticket, error) {
		next, replayed, err := s.acct.Apply(key, op, cur, amount)
		if err != nil {
			return cur, err
		}
		res.Ticket, res.Replayed = next, replayed
		if replayed {
			return cur, nil
		}
		return next, nil
	})
	if err != nil {
		log.Info("inventory operation rejected", sl.Err(err))
		return InventoryResult{}, err
	}

	freed := op == inventory.OpRelease || (op == inventory.OpAdjust && amount > 0)
	if freed && !res.Replayed && ev.Settings.WaitlistAutoNotify {
		notified, nerr := s.notifyWaitlist(ctx, ev.ID, res.Ticket)
		if nerr != nil {
			log.Warn("failed to notify waitlist", sl.Err(nerr))
		}
		res.Notified = notified
	}

	return res, nil
}

func (s *Service) notifyWaitlist(ctx context.Context, eventID string, t models.Ticket) ([]models.WaitlistEntry, error) {
	if ev, ok := s.store.Event(session.Organization(ctx), eventID); ok {
		if _, pending := waitlist.NotifyNext(ev.Waitlist, t.ID, inventory.Available(t)); len(pending) == 0 {
			return nil, nil
		}
	}

	var notified []models.WaitlistEntry

	_, err := s.mutateEvent(ctx, eventID, func(ev models.Event) (models.Event, error) {
		next := ev.Clone()
		next.Waitlist, notified = waitlist.NotifyNext(ev.Waitlist, t.ID, inventory.Available(t))
		if len(notified) == 0 {
			return ev, nil
		}
		next.UpdatedAt = s.clock.Now()
		return next, nil
	})
	if err != nil {
		return nil, err
	}

	return notified, nil
}

// RetireTicket deletes an unsold ticket type and deactivates a sold one.
func (s *Service) RetireTicket(ctx context.Context, id string) (ticket models.Ticket, deleted bool, err error) {
	const op = "dashboard.RetireTicket"

	org := session.Organization(ctx)
	now := s.clock.Now()

	ticket, deleted, err = s.store.RemoveTicket(org, id, func(cur models.Ticket) (models.Ticket, bool) {
		return inventory.Retire(cur, now)
	})
	if err != nil {
		return models.Ticket{}, false, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("ticket retired", slog.String("op", op), slog.String("ticket_id", id), slog.Bool("deleted", deleted))

	return ticket, deleted, nil
}
