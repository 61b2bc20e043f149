package store

import (
	"strings"

	"eventAdmin/internal/models"
)

// Merge returns every authoritative event followed by the local-only events
// whose id the backend has not returned. Once the backend knows an event the
// local copy is superseded, so nothing is listed twice.
func Merge(authoritative, local []models.Event) []models.Event {
	seen := make(map[string]struct{}, len(authoritative))
	out := make([]models.Event, 0, len(authoritative)+len(local))

	for _, ev := range authoritative {
		seen[ev.ID] = struct{}{}
		out = append(out, ev)
	}
	for _, ev := range local {
		if _, ok := seen[ev.ID]; ok {
			continue
		}
		seen[ev.ID] = struct{}{}
		out = append(out, ev)
	}

	return out
}

// Acknowledged returns the ids of local events present in authoritative.
func Acknowledged(authoritative, local []models.Event) []string {
	known := make(map[string]struct{}, len(authoritative))
	for _, ev := range authoritative {
		known[ev.ID] = struct{}{}
	}

	var ids []string
	for _, ev := range local {
		if _, ok := known[ev.ID]; ok {
			ids = append(ids, ev.ID)
		}
	}

	return ids
}

// Query filters events. Empty or "all" status/type mean no filter; Search
// is a case-insensitive substring match over title and description.
type Query struct {
	Status string
	Type   string
	Search string
}

func (q Query) Match(ev models.Event) bool {
	if q.Status != "" && q.Status != "all" && string(ev.Status) != q.Status {
		return false
	}
	if q.Type != "" && q.Type != "all" && string(ev.EventType) != q.Type {
		return false
	}
	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		if !strings.Contains(strings.ToLower(ev.Title), needle) &&
			!strings.Contains(strings.ToLower(ev.Description), needle) {
			return false
		}
	}
	return true
}

func Filter(events []models.Event, q Query) []models.Event {
	out := make([]models.Event, 0, len(events))
	for _, ev := range events {
		if q.Match(ev) {
			out = append(out, ev)
		}
	}
	return out
}
