// Package promo validates, redeems and prices promotional codes.
package promo

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"eventAdmin/internal/models"
)

// Normalize returns the canonical form a code is stored and compared in.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// EnsureUnique fails when code is already taken inside the organization.
func EnsureUnique(code string, existing []models.PromotionalCode) error {
	code = Normalize(code)
	for _, c := range existing {
		if Normalize(c.Code) == code {
			return fmt.Errorf("code %q: %w", code, models.ErrDuplicateCode)
		}
	}
	return nil
}

// Check validates that code can be used for qty units of t at now, without
// consuming it.
func Check(code models.PromotionalCode, t models.Ticket, qty int, now time.Time) error {
	if !code.IsActive || now.Before(code.ValidFrom) || now.After(code.ValidUntil) {
		return fmt.Errorf("code %q: %w", code.Code, models.ErrPromoNotValid)
	}
	if code.UsedCount >= code.UsageLimit {
		return fmt.Errorf("code %q used %d/%d: %w", code.Code, code.UsedCount, code.UsageLimit, models.ErrUsageLimitReached)
	}
	if len(code.ApplicableTicketTypes) > 0 &&
		!slices.Contains(code.ApplicableTicketTypes, t.ID) &&
		!slices.Contains(code.ApplicableTicketTypes, string(t.Type)) {
		return fmt.Errorf("code %q for ticket %q: %w", code.Code, t.ID, models.ErrPromoNotApplicable)
	}
	if code.MinQuantity > 0 && qty < code.MinQuantity {
		return fmt.Errorf("code %q needs at least %d tickets: %w", code.Code, code.MinQuantity, models.ErrPromoNotApplicable)
	}
	if code.MaxQuantity > 0 && qty > code.MaxQuantity {
		return fmt.Errorf("code %q allows at most %d tickets: %w", code.Code, code.MaxQuantity, models.ErrPromoNotApplicable)
	}
	return nil
}

// Redeem consumes one use of code. Redemptions past the usage limit are
// rejected.
func Redeem(code models.PromotionalCode, t models.Ticket, qty int, now time.Time) (models.PromotionalCode, error) {
	if err := Check(code, t, qty, now); err != nil {
		return code, err
	}

	next := code
	next.ApplicableTicketTypes = slices.Clone(code.ApplicableTicketTypes)
	next.UsedCount++

	return next, nil
}

// Discount returns the amount code takes off qty units at unitPrice.
func Discount(code models.PromotionalCode, unitPrice float64, qty int) float64 {
	subtotal := unitPrice * float64(qty)

	var d float64
	switch code.Type {
	case models.PromoPercentage:
		d = subtotal * code.Value / 100
	case models.PromoFixedAmount:
		d = code.Value
	case models.PromoBuyXGetY:
		if code.BuyXGetY == nil || code.BuyXGetY.BuyQuantity <= 0 || code.BuyXGetY.GetQuantity <= 0 {
			return 0
		}
		bundle := code.BuyXGetY.BuyQuantity + code.BuyXGetY.GetQuantity
		free := (qty / bundle) * code.BuyXGetY.GetQuantity
		d = float64(free) * unitPrice
	}

	return roundCents(math.Max(0, math.Min(d, subtotal)))
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
