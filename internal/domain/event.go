package domain

import "time"

// Event is the read model of the externally managed event entity. The
// admission engine only consumes its capacity; creation and editing happen
// elsewhere in the product.
type Event struct {
	ID        string    `json:"id"`
	HostID    string    `json:"host_id"`
	Name      string    `json:"name"`
	Capacity  int32     `json:"capacity"`
	CreatedAt time.Time `json:"created_at"`
}

type ParticipantStatus string

const (
	ParticipantStatusAccepted ParticipantStatus = "ACCEPTED"
	ParticipantStatusRemoved  ParticipantStatus = "REMOVED"
)

// Participant is a confirmed roster entry. Accepted rows contribute their
// party size to the event's confirmed count.
type Participant struct {
	ID        string            `json:"id"`
	EventID   string            `json:"event_id"`
	UserID    string            `json:"user_id"`
	PartySize int32             `json:"party_size"`
	Status    ParticipantStatus `json:"status"`
}
