package models

import "time"

type PromoType string

const (
	PromoPercentage  PromoType = "percentage"
	PromoFixedAmount PromoType = "fixed_amount"
	PromoBuyXGetY    PromoType = "buy_x_get_y"
)

type BuyXGetY struct {
	BuyQuantity int `json:"buyQuantity"`
	GetQuantity int `json:"getQuantity"`
}

type PromotionalCode struct {
	ID                    string    `json:"id"`
	Code                  string    `json:"code"`
	Type                  PromoType `json:"type"`
	Value                 float64   `json:"value"`
	Description           string    `json:"description"`
	UsageLimit            int       `json:"usageLimit"`
	UsedCount             int       `json:"usedCount"`
	MinQuantity           int       `json:"minQuantity,omitempty"`
	MaxQuantity           int       `json:"maxQuantity,omitempty"`
	ValidFrom             time.Time `json:"validFrom"`
	ValidUntil            time.Time `json:"validUntil"`
	ApplicableTicketTypes []string  `json:"applicableTicketTypes"`
	IsActive              bool      `json:"isActive"`
	CreatedAt             time.Time `json:"createdAt"`
	BuyXGetY              *BuyXGetY `json:"buyXGetY,omitempty"`
}
