package domain

import "time"

type JoinRequestStatus string

const (
	JoinRequestStatusPending    JoinRequestStatus = "PENDING"
	JoinRequestStatusApproved   JoinRequestStatus = "APPROVED"
	JoinRequestStatusDeclined   JoinRequestStatus = "DECLINED"
	JoinRequestStatusWaitlisted JoinRequestStatus = "WAITLISTED"
	JoinRequestStatusExpired    JoinRequestStatus = "EXPIRED"
	JoinRequestStatusCancelled  JoinRequestStatus = "CANCELLED"
)

// ValidJoinRequestStatus reports whether s is one of the known statuses.
func ValidJoinRequestStatus(s JoinRequestStatus) bool {
	switch s {
	case JoinRequestStatusPending, JoinRequestStatusApproved, JoinRequestStatusDeclined,
		JoinRequestStatusWaitlisted, JoinRequestStatusExpired, JoinRequestStatusCancelled:
		return true
	}
	return false
}

// JoinRequest is a guest's request to join a capacity-constrained event.
// While PENDING it carries a hold: a tentative capacity reservation that
// lapses at HoldExpiresAt. HoldExpiresAt is null in every other status.
type JoinRequest struct {
	ID            string            `json:"id"`
	EventID       string            `json:"event_id"`
	UserID        string            `json:"user_id"`
	PartySize     int32             `json:"party_size"`
	Note          string            `json:"note"`
	Status        JoinRequestStatus `json:"status"`
	HoldExpiresAt *time.Time        `json:"hold_expires_at,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// Availability is the capacity picture for one event, derived from current
// rows in a single read. Available = Total - Confirmed - Held and may be
// negative when an event is already overbooked.
type Availability struct {
	Total     int32 `json:"total"`
	Confirmed int32 `json:"confirmed"`
	Held      int32 `json:"held"`
	Available int32 `json:"available"`
}

// MaxNoteLength caps the optional note attached to a join request.
const MaxNoteLength = 500
