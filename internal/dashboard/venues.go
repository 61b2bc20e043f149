package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"eventAdmin/internal/lib/session"
	"eventAdmin/internal/models"
	"eventAdmin/internal/validation"
)

// CreateVenue registers a venue for the caller's organization. Collections
// the caller left out come back empty rather than null.
func (s *Service) CreateVenue(ctx context.Context, v models.Venue) (models.Venue, error) {
	const op = "dashboard.CreateVenue"

	org := session.Organization(ctx)

	v.ID = s.newID()
	v.OrganizationID = org
	v.Name = strings.TrimSpace(v.Name)
	if v.Amenities == nil {
		v.Amenities = []string{}
	}
	if v.Images == nil {
		v.Images = []string{}
	}

	if err := validation.Venue(v); err != nil {
		return models.Venue{}, fmt.Errorf("%s: %w", op, err)
	}

	s.store.PutVenue(org, v)

	s.log.Info("venue created", slog.String("op", op), slog.String("venue_id", v.ID))

	return v.Clone(), nil
}

// ListVenues returns the organization's venues matching search on name, city
// or address.
func (s *Service) ListVenues(ctx context.Context, search string) []models.Venue {
	return s.store.Venues(session.Organization(ctx), search)
}
