package models

import "time"

type TicketType string

const (
	TicketFree      TicketType = "free"
	TicketPaid      TicketType = "paid"
	TicketVIP       TicketType = "vip"
	TicketEarlyBird TicketType = "early-bird"
	TicketGroup     TicketType = "group"
	TicketSponsor   TicketType = "sponsor"
)

type PricingTier struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	IsActive  bool      `json:"isActive"`
}

// Contains reports whether at falls inside the tier window, bounds included.
func (p PricingTier) Contains(at time.Time) bool {
	return !at.Before(p.StartDate) && !at.After(p.EndDate)
}

type TicketSettings struct {
	MinQuantity             int     `json:"minQuantity"`
	MaxQuantity             int     `json:"maxQuantity"`
	Transferable            bool    `json:"transferable"`
	Refundable              bool    `json:"refundable"`
	RequiresApproval        bool    `json:"requiresApproval"`
	AllowGroupBooking       bool    `json:"allowGroupBooking"`
	GroupDiscountPercentage float64 `json:"groupDiscountPercentage,omitempty"`
	GroupMinQuantity        int     `json:"groupMinQuantity,omitempty"`
}

type Ticket struct {
	ID           string         `json:"id"`
	EventID      string         `json:"eventId"`
	EventTitle   string         `json:"eventTitle,omitempty"`
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	BasePrice    float64        `json:"basePrice"`
	PricingTiers []PricingTier  `json:"pricingTiers"`
	Quantity     int            `json:"quantity"`
	Sold         int            `json:"sold"`
	Reserved     int            `json:"reserved"`
	Type         TicketType     `json:"type"`
	SalesStart   time.Time      `json:"salesStart"`
	SalesEnd     time.Time      `json:"salesEnd"`
	IsActive     bool           `json:"isActive"`
	Settings     TicketSettings `json:"settings"`
	Benefits     []string       `json:"benefits"`
	Restrictions []string       `json:"restrictions"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

func (t Ticket) Clone() Ticket {
	c := t
	c.PricingTiers = cloneSlice(t.PricingTiers)
	c.Benefits = cloneSlice(t.Benefits)
	c.Restrictions = cloneSlice(t.Restrictions)
	return c
}
