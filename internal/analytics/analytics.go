// Package analytics derives the dashboard figures from the cached records.
package analytics

import (
	"time"

	"eventAdmin/internal/inventory"
	"eventAdmin/internal/models"
	"eventAdmin/internal/pricing"
)

type StatusCount struct {
	Status models.EventStatus `json:"status"`
	Count  int                `json:"count"`
}

// StatusCounts returns one row per lifecycle status, zero rows included.
func StatusCounts(events []models.Event) []StatusCount {
	counts := make(map[models.EventStatus]int, len(models.Statuses))
	for _, ev := range events {
		counts[ev.Status]++
	}

	out := make([]StatusCount, 0, len(models.Statuses))
	for _, s := range models.Statuses {
		out = append(out, StatusCount{Status: s, Count: counts[s]})
	}

	return out
}

type TicketSales struct {
	TicketID     string  `json:"ticketTypeId"`
	Name         string  `json:"ticketTypeName"`
	Quantity     int     `json:"quantity"`
	Sold         int     `json:"sold"`
	Reserved     int     `json:"reserved"`
	Available    int     `json:"available"`
	CurrentPrice float64 `json:"currentPrice"`
	IsActive     bool    `json:"isActive"`
}

type PromoUsage struct {
	Code       string `json:"code"`
	UsedCount  int    `json:"usedCount"`
	UsageLimit int    `json:"usageLimit"`
}

type EventSummary struct {
	EventID          string             `json:"eventId"`
	Status           models.EventStatus `json:"status"`
	TotalCapacity    int                `json:"totalCapacity"`
	TotalTicketsSold int                `json:"totalTicketsSold"`
	TotalReserved    int                `json:"totalReserved"`
	SellThrough      float64            `json:"sellThrough"`
	Tickets          []TicketSales      `json:"ticketSalesBreakdown"`
	Promotions       []PromoUsage       `json:"promotionalCodeUsage"`
	WaitlistLength   int                `json:"waitlistLength"`
}

// Summarize builds the sales picture of ev from the given tickets.
// SellThrough is sold units over allocated units, in percent.
func Summarize(ev models.Event, tickets []models.Ticket, now time.Time) EventSummary {
	s := EventSummary{
		EventID:        ev.ID,
		Status:         ev.Status,
		Tickets:        make([]TicketSales, 0, len(tickets)),
		Promotions:     make([]PromoUsage, 0, len(ev.PromotionalCodes)),
		WaitlistLength: len(ev.Waitlist),
	}

	for _, t := range tickets {
		s.TotalCapacity += t.Quantity
		s.TotalTicketsSold += t.Sold
		s.TotalReserved += t.Reserved
		s.Tickets = append(s.Tickets, TicketSales{
			TicketID:     t.ID,
			Name:         t.Name,
			Quantity:     t.Quantity,
			Sold:         t.Sold,
			Reserved:     t.Reserved,
			Available:    inventory.Available(t),
			CurrentPrice: pricing.Resolve(t, now),
			IsActive:     t.IsActive,
		})
	}

	if s.TotalCapacity > 0 {
		s.SellThrough = float64(s.TotalTicketsSold) * 100 / float64(s.TotalCapacity)
	}

	for _, c := range ev.PromotionalCodes {
		s.Promotions = append(s.Promotions, PromoUsage{Code: c.Code, UsedCount: c.UsedCount, UsageLimit: c.UsageLimit})
	}

	return s
}
