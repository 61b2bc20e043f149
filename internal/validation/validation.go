// Package validation rejects malformed events, tickets, promotional codes and
// venues before anything is stored or sent to the backend.
package validation

import (
	"errors"
	"reflect"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/go-playground/validator/v10"

	"eventAdmin/internal/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

type eventRules struct {
	Title            string    `json:"title" validate:"required"`
	ShortDescription string    `json:"shortDescription" validate:"max=160"`
	Timezone         string    `json:"timezone" validate:"omitempty,timezone"`
	EventType        string    `json:"eventType" validate:"required,oneof=in-person virtual hybrid"`
	Visibility       string    `json:"visibility" validate:"omitempty,oneof=public unlisted private"`
	VirtualEventURL  string    `json:"virtualEventUrl" validate:"omitempty,url"`
	ImageURL         string    `json:"imageUrl" validate:"omitempty,url"`
	MaxAttendees     int       `json:"maxAttendees" validate:"gte=0"`
	CurrentAttendees int       `json:"currentAttendees" validate:"gte=0,ltefield=MaxAttendees"`
	StartDate        time.Time `json:"startDate" validate:"required"`
	EndDate          time.Time `json:"endDate" validate:"required,gtefield=StartDate"`
}

type tierRules struct {
	Name      string    `json:"name" validate:"required"`
	Price     float64   `json:"price" validate:"gte=0"`
	StartDate time.Time `json:"startDate" validate:"required"`
	EndDate   time.Time `json:"endDate" validate:"required,gtefield=StartDate"`
}

type ticketRules struct {
	EventID      string      `json:"eventId" validate:"required"`
	Name         string      `json:"name" validate:"required"`
	BasePrice    float64     `json:"basePrice" validate:"gte=0"`
	Quantity     int         `json:"quantity" validate:"gte=0"`
	Sold         int         `json:"sold" validate:"gte=0"`
	Reserved     int         `json:"reserved" validate:"gte=0"`
	Type         string      `json:"type" validate:"required,oneof=free paid vip early-bird group sponsor"`
	SalesStart   time.Time   `json:"salesStart" validate:"required"`
	SalesEnd     time.Time   `json:"salesEnd" validate:"required,gtefield=SalesStart"`
	PricingTiers []tierRules `json:"pricingTiers" validate:"dive"`
	MinQuantity  int         `json:"minQuantity" validate:"gte=0"`
	MaxQuantity  int         `json:"maxQuantity" validate:"gte=0"`
}

type promoRules struct {
	Code       string    `json:"code" validate:"required,max=32"`
	Type       string    `json:"type" validate:"required,oneof=percentage fixed_amount buy_x_get_y"`
	Value      float64   `json:"value" validate:"gte=0"`
	UsageLimit int       `json:"usageLimit" validate:"gte=1"`
	UsedCount  int       `json:"usedCount" validate:"gte=0,ltefield=UsageLimit"`
	ValidFrom  time.Time `json:"validFrom" validate:"required"`
	ValidUntil time.Time `json:"validUntil" validate:"required,gtefield=ValidFrom"`
}

type venueRules struct {
	Name     string `json:"name" validate:"required"`
	Address  string `json:"address" validate:"required"`
	City     string `json:"city" validate:"required"`
	Capacity int    `json:"capacity" validate:"gte=0"`
	Email    string `json:"email" validate:"omitempty,email"`
	Website  string `json:"website" validate:"omitempty,url"`
}

// Event checks the shape of an event, including the placement rule: in-person
// needs a venue, virtual needs a URL, hybrid needs both.
func Event(ev models.Event) error {
	fields := collect(validate.Struct(eventRules{
		Title:            ev.Title,
		ShortDescription: ev.ShortDescription,
		Timezone:         ev.Timezone,
		EventType:        string(ev.EventType),
		Visibility:       string(ev.Visibility),
		VirtualEventURL:  ev.VirtualEventURL,
		ImageURL:         ev.ImageURL,
		MaxAttendees:     ev.MaxAttendees,
		CurrentAttendees: ev.CurrentAttendees,
		StartDate:        ev.StartDate,
		EndDate:          ev.EndDate,
	}))

	needsVenue := ev.EventType == models.EventTypeInPerson || ev.EventType == models.EventTypeHybrid
	needsURL := ev.EventType == models.EventTypeVirtual || ev.EventType == models.EventTypeHybrid

	if needsVenue && (ev.Venue == nil || strings.TrimSpace(ev.Venue.Name) == "") {
		fields["venue"] = "is required for " + string(ev.EventType) + " events"
	}
	if needsURL && ev.VirtualEventURL == "" {
		fields["virtualEventUrl"] = "is required for " + string(ev.EventType) + " events"
	}

	return result(fields)
}

func Ticket(t models.Ticket) error {
	tiers := make([]tierRules, 0, len(t.PricingTiers))
	for _, p := range t.PricingTiers {
		tiers = append(tiers, tierRules{Name: p.Name, Price: p.Price, StartDate: p.StartDate, EndDate: p.EndDate})
	}

	fields := collect(validate.Struct(ticketRules{
		EventID:      t.EventID,
		Name:         t.Name,
		BasePrice:    t.BasePrice,
		Quantity:     t.Quantity,
		Sold:         t.Sold,
		Reserved:     t.Reserved,
		Type:         string(t.Type),
		SalesStart:   t.SalesStart,
		SalesEnd:     t.SalesEnd,
		PricingTiers: tiers,
		MinQuantity:  t.Settings.MinQuantity,
		MaxQuantity:  t.Settings.MaxQuantity,
	}))

	if t.Sold+t.Reserved > t.Quantity {
		fields["quantity"] = "must cover sold and reserved units"
	}
	if t.Settings.MaxQuantity > 0 && t.Settings.MaxQuantity < t.Settings.MinQuantity {
		fields["maxQuantity"] = "must not be below minQuantity"
	}
	if t.Settings.AllowGroupBooking {
		if t.Settings.GroupMinQuantity < 1 {
			fields["groupMinQuantity"] = "is required when group booking is allowed"
		}
		if d := t.Settings.GroupDiscountPercentage; d < 0 || d > 100 {
			fields["groupDiscountPercentage"] = "must be between 0 and 100"
		}
	}

	return result(fields)
}

func PromoCode(c models.PromotionalCode) error {
	fields := collect(validate.Struct(promoRules{
		Code:       c.Code,
		Type:       string(c.Type),
		Value:      c.Value,
		UsageLimit: c.UsageLimit,
		UsedCount:  c.UsedCount,
		ValidFrom:  c.ValidFrom,
		ValidUntil: c.ValidUntil,
	}))

	switch c.Type {
	case models.PromoPercentage:
		if c.Value > 100 {
			fields["value"] = "must be at most 100 for percentage codes"
		}
	case models.PromoBuyXGetY:
		if c.BuyXGetY == nil || c.BuyXGetY.BuyQuantity < 1 || c.BuyXGetY.GetQuantity < 1 {
			fields["buyXGetY"] = "is required for buy_x_get_y codes"
		}
	}

	return result(fields)
}

func Venue(v models.Venue) error {
	fields := collect(validate.Struct(venueRules{
		Name:     strings.TrimSpace(v.Name),
		Address:  strings.TrimSpace(v.Address),
		City:     strings.TrimSpace(v.City),
		Capacity: v.Capacity,
		Email:    v.ContactInfo.Email,
		Website:  v.ContactInfo.Website,
	}))

	if v.Latitude < -90 || v.Latitude > 90 {
		fields["latitude"] = "must be between -90 and 90"
	}
	if v.Longitude < -180 || v.Longitude > 180 {
		fields["longitude"] = "must be between -180 and 180"
	}

	return result(fields)
}

func collect(err error) map[string]string {
	fields := make(map[string]string)
	if err == nil {
		return fields
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fields["_"] = err.Error()
		return fields
	}

	for _, fe := range verrs {
		fields[fieldPath(fe)] = describe(fe)
	}

	return fields
}

// fieldPath drops the rules struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "oneof":
		return "must be one of [" + fe.Param() + "]"
	case "gte":
		return "must be at least " + fe.Param()
	case "gtefield":
		return "must not be before " + lowerFirst(fe.Param())
	case "ltefield":
		return "must not exceed " + lowerFirst(fe.Param())
	case "timezone":
		return "must be an IANA time zone"
	case "url":
		return "must be a valid URL"
	case "email":
		return "must be a valid email address"
	}
	return "is not valid"
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func result(fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	return &models.ValidationError{Fields: fields}
}
