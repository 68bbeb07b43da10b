package listings

import (
	"strings"
	"time"

	masker "github.com/ggwhite/go-masker"
)

const EventListingCreated = "listing.created"

type Event struct {
	Type       string  `json:"type"`
	Listing    Listing `json:"listing"`
	OccurredAt string  `json:"occurred_at"`
}

func NewCreatedEvent(l Listing, now time.Time) Event {
	return Event{
		Type:       EventListingCreated,
		Listing:    l,
		OccurredAt: FormatTime(now),
	}
}

func (e Event) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

func UnmarshalEvent(data []byte) (Event, error) {
	var e Event
	err := json.Unmarshal(data, &e)
	return e, err
}

// MaskContact hides most of an e-mail address or phone number so contacts can
// be logged.
func MaskContact(contact string) string {
	if strings.Contains(contact, "@") {
		return masker.Email(contact)
	}
	return masker.Telephone(contact)
}
