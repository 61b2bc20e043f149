package models

import "time"

type EventStatus string

const (
	StatusDraft     EventStatus = "draft"
	StatusPublished EventStatus = "published"
	StatusCancelled EventStatus = "cancelled"
	StatusCompleted EventStatus = "completed"
	StatusArchived  EventStatus = "archived"
)

// Statuses lists every lifecycle status in display order.
var Statuses = []EventStatus{StatusDraft, StatusPublished, StatusCompleted, StatusCancelled, StatusArchived}

type EventType string

const (
	EventTypeInPerson EventType = "in-person"
	EventTypeVirtual  EventType = "virtual"
	EventTypeHybrid   EventType = "hybrid"
)

type Visibility string

const (
	VisibilityPublic   Visibility = "public"
	VisibilityUnlisted Visibility = "unlisted"
	VisibilityPrivate  Visibility = "private"
)

const ShortDescriptionLimit = 160

type Event struct {
	ID               string      `json:"id"`
	OrganizationID   string      `json:"organizationId"`
	Title            string      `json:"title"`
	Description      string      `json:"description"`
	ShortDescription string      `json:"shortDescription"`
	ImageURL         string      `json:"imageUrl"`
	GalleryImages    []string    `json:"galleryImages"`
	CustomTags       []string    `json:"customTags"`
	StartDate        time.Time   `json:"startDate"`
	EndDate          time.Time   `json:"endDate"`
	Timezone         string      `json:"timezone"`
	EventType        EventType   `json:"eventType"`
	Venue            *Venue      `json:"venue,omitempty"`
	VirtualEventURL  string      `json:"virtualEventUrl,omitempty"`
	Category         Categories  `json:"category"`
	Status           EventStatus `json:"status"`
	Visibility       Visibility  `json:"visibility"`
	MaxAttendees     int         `json:"maxAttendees"`
	CurrentAttendees int         `json:"currentAttendees"`

	Tickets          []Ticket          `json:"tickets"`
	PromotionalCodes []PromotionalCode `json:"promotionalCodes"`
	GroupBookings    []GroupBooking    `json:"groupBookings"`
	Waitlist         []WaitlistEntry   `json:"waitlist"`

	Settings EventSettings `json:"settings"`
	SEO      SEO           `json:"seo"`

	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	ArchivedAt  *time.Time `json:"archivedAt,omitempty"`
}

type EventSettings struct {
	AllowWaitlist            bool `json:"allowWaitlist"`
	RequireApproval          bool `json:"requireApproval"`
	CollectAttendeeInfo      bool `json:"collectAttendeeInfo"`
	EnableQRCode             bool `json:"enableQRCode"`
	EnableSocialSharing      bool `json:"enableSocialSharing"`
	EnableComments           bool `json:"enableComments"`
	EnableGroupBooking       bool `json:"enableGroupBooking"`
	AutoApproveGroupBookings bool `json:"autoApproveGroupBookings"`
	WaitlistAutoNotify       bool `json:"waitlistAutoNotify"`
}

type SEO struct {
	MetaTitle       string   `json:"metaTitle,omitempty"`
	MetaDescription string   `json:"metaDescription,omitempty"`
	Keywords        []string `json:"keywords"`
}

// Clone returns a deep copy so callers can build a replacement record
// without touching the one held by the store.
func (e Event) Clone() Event {
	c := e
	c.GalleryImages = cloneSlice(e.GalleryImages)
	c.CustomTags = cloneSlice(e.CustomTags)
	c.Category = Categories(cloneSlice(e.Category))
	c.PromotionalCodes = cloneSlice(e.PromotionalCodes)
	c.GroupBookings = cloneSlice(e.GroupBookings)
	c.Waitlist = cloneSlice(e.Waitlist)
	c.SEO.Keywords = cloneSlice(e.SEO.Keywords)
	if e.Venue != nil {
		v := e.Venue.Clone()
		c.Venue = &v
	}
	if e.PublishedAt != nil {
		t := *e.PublishedAt
		c.PublishedAt = &t
	}
	if e.ArchivedAt != nil {
		t := *e.ArchivedAt
		c.ArchivedAt = &t
	}
	if e.Tickets != nil {
		c.Tickets = make([]Ticket, len(e.Tickets))
		for i, t := range e.Tickets {
			c.Tickets[i] = t.Clone()
		}
	}

	return c
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return append(make([]T, 0, len(s)), s...)
}
