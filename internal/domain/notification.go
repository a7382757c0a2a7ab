package domain

import "time"

type NotificationType string

const (
	NotificationTypeRequestApproved   NotificationType = "REQUEST_APPROVED"
	NotificationTypeRequestDeclined   NotificationType = "REQUEST_DECLINED"
	NotificationTypeRequestWaitlisted NotificationType = "REQUEST_WAITLISTED"
)

// Notification is the record handed to the dispatcher when a host resolves
// a join request. Delivery is best effort; the row itself is retained so the
// guest can read it in-app.
type Notification struct {
	ID        int64            `json:"id"`
	UserID    string           `json:"user_id"`
	EventID   string           `json:"event_id"`
	RequestID string           `json:"request_id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"created_at"`
}
