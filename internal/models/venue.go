package models

import (
	"bytes"
	"encoding/json"
)

type ContactInfo struct {
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Website string `json:"website,omitempty"`
}

type Venue struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Address        string      `json:"address"`
	City           string      `json:"city"`
	State          string      `json:"state"`
	Country        string      `json:"country"`
	ZipCode        string      `json:"zipCode"`
	Latitude       float64     `json:"latitude"`
	Longitude      float64     `json:"longitude"`
	Capacity       int         `json:"capacity"`
	Amenities      []string    `json:"amenities"`
	Images         []string    `json:"images"`
	ContactInfo    ContactInfo `json:"contactInfo"`
	OrganizationID string      `json:"organizationId"`
}

func (v Venue) Clone() Venue {
	v.Amenities = cloneSlice(v.Amenities)
	v.Images = cloneSlice(v.Images)
	return v
}

type EventCategory struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Color          string `json:"color"`
	Icon           string `json:"icon"`
	IsDefault      bool   `json:"isDefault"`
	OrganizationID string `json:"organizationId,omitempty"`
}

// Categories is the canonical zero-or-more category list of an event.
// Payloads carrying a single category object are accepted as well.
type Categories []EventCategory

func (c *Categories) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*c = nil
		return nil
	case data[0] == '{':
		var one EventCategory
		if err := json.Unmarshal(data, &one); err != nil {
			return err
		}
		*c = Categories{one}
		return nil
	}

	var many []EventCategory
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*c = many

	return nil
}
