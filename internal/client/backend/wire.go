package backend

import (
	"encoding/json"
	"fmt"

	"eventAdmin/internal/models"
)

// The backend is document-oriented: records may carry "_id" instead of "id"
// and a ticket's eventId may be populated as {"_id", "title"}.

type eventAlias models.Event

type wireEvent struct {
	DocID string `json:"_id"`
	eventAlias
}

func (w wireEvent) event() models.Event {
	ev := models.Event(w.eventAlias)
	if ev.ID == "" {
		ev.ID = w.DocID
	}
	return ev
}

type ticketAlias models.Ticket

type wireTicket struct {
	DocID   string          `json:"_id"`
	EventID json.RawMessage `json:"eventId"`
	ticketAlias
}

type eventRef struct {
	ID    string `json:"id"`
	DocID string `json:"_id"`
	Title string `json:"title"`
}

func (w wireTicket) ticket() (models.Ticket, error) {
	t := models.Ticket(w.ticketAlias)
	if t.ID == "" {
		t.ID = w.DocID
	}

	if len(w.EventID) == 0 || string(w.EventID) == "null" {
		return t, nil
	}

	var id string
	if err := json.Unmarshal(w.EventID, &id); err == nil {
		t.EventID = id
		return t, nil
	}

	var ref eventRef
	if err := json.Unmarshal(w.EventID, &ref); err != nil {
		return models.Ticket{}, fmt.Errorf("ticket %q: unexpected eventId: %w", t.ID, err)
	}
	t.EventID = ref.ID
	if t.EventID == "" {
		t.EventID = ref.DocID
	}
	t.EventTitle = ref.Title

	return t, nil
}

func decodeEvents(in []wireEvent) []models.Event {
	out := make([]models.Event, 0, len(in))
	for _, w := range in {
		out = append(out, w.event())
	}
	return out
}

func decodeTickets(in []wireTicket) ([]models.Ticket, error) {
	out := make([]models.Ticket, 0, len(in))
	for _, w := range in {
		t, err := w.ticket()
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}
