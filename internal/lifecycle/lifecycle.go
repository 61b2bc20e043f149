// Package lifecycle holds the event status workflow. Every function here is
// pure: it takes an event value and returns a new one, persistence is left to
// the caller.
package lifecycle

import (
	"time"

	"eventAdmin/internal/models"
)

var transitions = map[models.EventStatus][]models.EventStatus{
	models.StatusDraft:     {models.StatusPublished, models.StatusCancelled},
	models.StatusPublished: {models.StatusDraft, models.StatusCompleted, models.StatusCancelled},
	models.StatusCompleted: {models.StatusArchived, models.StatusPublished},
	models.StatusCancelled: {models.StatusDraft, models.StatusArchived},
	models.StatusArchived:  {models.StatusDraft},
}

// Allowed returns the statuses reachable from status in one step.
func Allowed(status models.EventStatus) []models.EventStatus {
	next := transitions[status]
	out := make([]models.EventStatus, len(next))
	copy(out, next)
	return out
}

// CanTransition reports whether from -> to is in the workflow table.
func CanTransition(from, to models.EventStatus) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// New builds the initial record of an event owned by organizationID.
// Whatever status the draft carries is replaced by draft.
func New(draft models.Event, organizationID string, now time.Time) models.Event {
	ev := draft.Clone()
	ev.OrganizationID = organizationID
	ev.Status = models.StatusDraft
	ev.CreatedAt = now
	ev.UpdatedAt = now
	ev.PublishedAt = nil
	ev.ArchivedAt = nil
	if ev.Visibility == "" {
		ev.Visibility = models.VisibilityPublic
	}

	return ev
}

// Transition moves ev to target. On rejection ev is returned untouched
// together with a *models.TransitionError.
func Transition(ev models.Event, target models.EventStatus, now time.Time) (models.Event, error) {
	if !CanTransition(ev.Status, target) {
		return ev, &models.TransitionError{From: ev.Status, To: target}
	}

	next := ev.Clone()
	next.Status = target
	next.UpdatedAt = now

	switch target {
	case models.StatusPublished:
		// publishedAt marks the first publication and survives later moves.
		if next.PublishedAt == nil {
			at := now
			next.PublishedAt = &at
		}
	case models.StatusArchived:
		at := now
		next.ArchivedAt = &at
	}

	return next, nil
}
