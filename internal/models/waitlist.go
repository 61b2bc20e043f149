package models

import "time"

type WaitlistEntry struct {
	ID                string     `json:"id"`
	EventID           string     `json:"eventId"`
	TicketTypeID      string     `json:"ticketTypeId"`
	Email             string     `json:"email"`
	Name              string     `json:"name"`
	Phone             string     `json:"phone,omitempty"`
	RequestedQuantity int        `json:"requestedQuantity"`
	Position          int        `json:"position"`
	Notified          bool       `json:"notified"`
	CreatedAt         time.Time  `json:"createdAt"`
	ExpiresAt         *time.Time `json:"expiresAt,omitempty"`
}
