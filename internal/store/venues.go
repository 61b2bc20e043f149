package store

import (
	"strings"

	"eventAdmin/internal/models"
)

// PutVenue appends v to the venue registry of org.
func (s *Store) PutVenue(org string, v models.Venue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.venues[org] = append(s.venues[org], v.Clone())
}

// Venues lists the venues of org whose name, city or address contains search,
// ignoring case. An empty search lists them all.
func (s *Store) Venues(org, search string) []models.Venue {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(search))

	out := make([]models.Venue, 0, len(s.venues[org]))
	for _, v := range s.venues[org] {
		if MatchVenue(v, needle) {
			out = append(out, v.Clone())
		}
	}

	return out
}

// MatchVenue expects needle already lowercased.
func MatchVenue(v models.Venue, needle string) bool {
	if needle == "" {
		return true
	}
	for _, field := range []string{v.Name, v.City, v.Address} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
