package validation

import (
	"errors"
	"strings"
	"testing"
	"time"

	"eventAdmin/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2025, 9, 1, 18, 0, 0, 0, time.UTC)

func validEvent() models.Event {
	return models.Event{
		Title:            "Go Meetup",
		ShortDescription: "Monthly meetup",
		Timezone:         "Europe/Berlin",
		EventType:        models.EventTypeInPerson,
		Venue:            &models.Venue{Name: "Hall A"},
		MaxAttendees:     100,
		CurrentAttendees: 10,
		StartDate:        start,
		EndDate:          start.Add(3 * time.Hour),
	}
}

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()

	var verr *models.ValidationError
	require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
	assert.ErrorIs(t, err, models.ErrValidation)

	return verr.Fields
}

func TestEvent(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		mutate     func(ev *models.Event)
		wantFields []string
	}{
		{name: "valid in-person", mutate: func(ev *models.Event) {}},
		{
			name: "valid virtual",
			mutate: func(ev *models.Event) {
				ev.EventType = models.EventTypeVirtual
				ev.Venue = nil
				ev.VirtualEventURL = "https://meet.example.com/go"
			},
		},
		{
			name: "hybrid needs url",
			mutate: func(ev *models.Event) {
				ev.EventType = models.EventTypeHybrid
			},
			wantFields: []string{"virtualEventUrl"},
		},
		{
			name: "in-person needs venue",
			mutate: func(ev *models.Event) {
				ev.Venue = nil
			},
			wantFields: []string{"venue"},
		},
		{
			name: "end before start",
			mutate: func(ev *models.Event) {
				ev.EndDate = ev.StartDate.Add(-time.Minute)
			},
			wantFields: []string{"endDate"},
		},
		{
			name: "short description too long",
			mutate: func(ev *models.Event) {
				ev.ShortDescription = strings.Repeat("é", models.ShortDescriptionLimit+1)
			},
			wantFields: []string{"shortDescription"},
		},
		{
			name: "short description at limit",
			mutate: func(ev *models.Event) {
				ev.ShortDescription = strings.Repeat("é", models.ShortDescriptionLimit)
			},
		},
		{
			name: "bad timezone",
			mutate: func(ev *models.Event) {
				ev.Timezone = "Mars/Olympus"
			},
			wantFields: []string{"timezone"},
		},
		{
			name: "attendees above max",
			mutate: func(ev *models.Event) {
				ev.CurrentAttendees = 101
			},
			wantFields: []string{"currentAttendees"},
		},
		{
			name: "missing title and type",
			mutate: func(ev *models.Event) {
				ev.Title = ""
				ev.EventType = ""
			},
			wantFields: []string{"title", "eventType"},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ev := validEvent()
			tc.mutate(&ev)

			err := Event(ev)
			if len(tc.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}

			fields := fieldsOf(t, err)
			for _, f := range tc.wantFields {
				assert.Contains(t, fields, f)
			}
		})
	}
}

func validTicket() models.Ticket {
	return models.Ticket{
		EventID:    "e1",
		Name:       "General Admission",
		BasePrice:  25,
		Quantity:   100,
		Type:       models.TicketPaid,
		SalesStart: start.Add(-30 * 24 * time.Hour),
		SalesEnd:   start,
		PricingTiers: []models.PricingTier{
			{Name: "Early", Price: 20, StartDate: start.Add(-30 * 24 * time.Hour), EndDate: start.Add(-20 * 24 * time.Hour), IsActive: true},
		},
	}
}

func TestTicket(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		mutate     func(tk *models.Ticket)
		wantFields []string
	}{
		{name: "valid", mutate: func(tk *models.Ticket) {}},
		{name: "negative price", mutate: func(tk *models.Ticket) { tk.BasePrice = -1 }, wantFields: []string{"basePrice"}},
		{name: "unknown type", mutate: func(tk *models.Ticket) { tk.Type = "student" }, wantFields: []string{"type"}},
		{name: "sales window inverted", mutate: func(tk *models.Ticket) { tk.SalesEnd = tk.SalesStart.Add(-time.Hour) }, wantFields: []string{"salesEnd"}},
		{name: "oversold", mutate: func(tk *models.Ticket) { tk.Sold = 90; tk.Reserved = 11 }, wantFields: []string{"quantity"}},
		{name: "negative tier price", mutate: func(tk *models.Ticket) { tk.PricingTiers[0].Price = -5 }, wantFields: []string{"pricingTiers[0].price"}},
		{
			name:       "group settings missing",
			mutate:     func(tk *models.Ticket) { tk.Settings.AllowGroupBooking = true },
			wantFields: []string{"groupMinQuantity"},
		},
		{
			name:       "max below min",
			mutate:     func(tk *models.Ticket) { tk.Settings.MinQuantity = 4; tk.Settings.MaxQuantity = 2 },
			wantFields: []string{"maxQuantity"},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tk := validTicket()
			tc.mutate(&tk)

			err := Ticket(tk)
			if len(tc.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}

			fields := fieldsOf(t, err)
			for _, f := range tc.wantFields {
				assert.Contains(t, fields, f)
			}
		})
	}
}

func TestPromoCode(t *testing.T) {
	t.Parallel()

	code := models.PromotionalCode{
		Code:       "EARLY20",
		Type:       models.PromoPercentage,
		Value:      20,
		UsageLimit: 100,
		ValidFrom:  start.Add(-time.Hour),
		ValidUntil: start,
	}
	assert.NoError(t, PromoCode(code))

	over := code
	over.Value = 120
	assert.Contains(t, fieldsOf(t, PromoCode(over)), "value")

	bxgy := code
	bxgy.Type = models.PromoBuyXGetY
	assert.Contains(t, fieldsOf(t, PromoCode(bxgy)), "buyXGetY")

	inverted := code
	inverted.ValidUntil = inverted.ValidFrom.Add(-time.Second)
	assert.Contains(t, fieldsOf(t, PromoCode(inverted)), "validUntil")
}

func TestVenue(t *testing.T) {
	t.Parallel()

	venue := models.Venue{
		Name:        "Tech Hub",
		Address:     "500 Howard St",
		City:        "San Francisco",
		Capacity:    200,
		Latitude:    37.78,
		Longitude:   -122.39,
		ContactInfo: models.ContactInfo{Email: "hello@techhub.example", Website: "https://techhub.example"},
	}
	assert.NoError(t, Venue(venue))

	tests := []struct {
		name   string
		mutate func(v *models.Venue)
		field  string
	}{
		{name: "blank name", mutate: func(v *models.Venue) { v.Name = "  " }, field: "name"},
		{name: "no address", mutate: func(v *models.Venue) { v.Address = "" }, field: "address"},
		{name: "no city", mutate: func(v *models.Venue) { v.City = "" }, field: "city"},
		{name: "negative capacity", mutate: func(v *models.Venue) { v.Capacity = -1 }, field: "capacity"},
		{name: "bad email", mutate: func(v *models.Venue) { v.ContactInfo.Email = "nope" }, field: "email"},
		{name: "bad website", mutate: func(v *models.Venue) { v.ContactInfo.Website = "not a url" }, field: "website"},
		{name: "latitude out of range", mutate: func(v *models.Venue) { v.Latitude = 91 }, field: "latitude"},
		{name: "longitude out of range", mutate: func(v *models.Venue) { v.Longitude = -181 }, field: "longitude"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v := venue
			tt.mutate(&v)
			assert.Contains(t, fieldsOf(t, Venue(v)), tt.field)
		})
	}
}
