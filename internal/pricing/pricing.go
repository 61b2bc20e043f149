// Package pricing resolves the price a ticket sells at for a given instant.
// Tiers are time-dependent, so the result is computed on every call and never
// written back to the ticket.
package pricing

import (
	"time"

	"eventAdmin/internal/models"
)

// Resolve returns the price of the winning active tier whose window contains
// now, or the ticket's base price when no tier applies.
func Resolve(t models.Ticket, now time.Time) float64 {
	if tier, ok := Active(t, now); ok {
		return tier.Price
	}
	return t.BasePrice
}

// Active returns the tier that currently sets the price.
func Active(t models.Ticket, now time.Time) (models.PricingTier, bool) {
	return pick(t.PricingTiers, func(p models.PricingTier) bool {
		return p.Contains(now)
	})
}

// Next returns the earliest active tier that has not started yet.
func Next(t models.Ticket, now time.Time) (models.PricingTier, bool) {
	return pick(t.PricingTiers, func(p models.PricingTier) bool {
		return p.StartDate.After(now)
	})
}

func pick(tiers []models.PricingTier, match func(models.PricingTier) bool) (models.PricingTier, bool) {
	var (
		best  models.PricingTier
		found bool
	)

	for _, tier := range tiers {
		if !tier.IsActive || !match(tier) {
			continue
		}
		if !found || before(tier, best) {
			best = tier
			found = true
		}
	}

	return best, found
}

// before orders tiers by start date, then price, then id.
func before(a, b models.PricingTier) bool {
	if !a.StartDate.Equal(b.StartDate) {
		return a.StartDate.Before(b.StartDate)
	}
	if a.Price != b.Price {
		return a.Price < b.Price
	}
	return a.ID < b.ID
}
