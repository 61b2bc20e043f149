package models

import "time"

type GroupBookingStatus string

const (
	GroupBookingPending  GroupBookingStatus = "pending"
	GroupBookingApproved GroupBookingStatus = "approved"
	GroupBookingRejected GroupBookingStatus = "rejected"
)

type GroupBooking struct {
	ID                 string             `json:"id"`
	EventID            string             `json:"eventId"`
	TicketTypeID       string             `json:"ticketTypeId"`
	GroupName          string             `json:"groupName"`
	ContactEmail       string             `json:"contactEmail"`
	ContactPhone       string             `json:"contactPhone"`
	RequestedQuantity  int                `json:"requestedQuantity"`
	DiscountPercentage float64            `json:"discountPercentage"`
	SpecialRequests    string             `json:"specialRequests,omitempty"`
	Status             GroupBookingStatus `json:"status"`
	CreatedAt          time.Time          `json:"createdAt"`
	ApprovedAt         *time.Time         `json:"approvedAt,omitempty"`
}
