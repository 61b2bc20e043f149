package lifecycle

import "eventAdmin/internal/models"

type Outcome struct {
	EventID string             `json:"eventId"`
	From    models.EventStatus `json:"from"`
	To      models.EventStatus `json:"to"`
	Event   *models.Event      `json:"event,omitempty"`
	Err     error              `json:"-"`
	Error   string             `json:"error,omitempty"`
}

func (o Outcome) OK() bool {
	return o.Err == nil
}

type Summary struct {
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

func Summarize(outcomes []Outcome) Summary {
	var s Summary
	for _, o := range outcomes {
		if o.OK() {
			s.Succeeded++
		} else {
			s.Failed++
		}
	}
	return s
}
