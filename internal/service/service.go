package service

import (
	"context"

	"potluck-backend/internal/domain"
)

// AdmissionService owns the join-request lifecycle: guests request to join,
// the request holds capacity until a deadline, and hosts resolve it. All
// cross-actor coordination lives in the store's compare-and-swap writes.
type AdmissionService interface {
	CreateJoinRequest(ctx context.Context, eventID, userID string, partySize int32, note string) (*domain.JoinRequest, error)
	ListRequests(ctx context.Context, eventID string, status domain.JoinRequestStatus, limit, offset int32) ([]domain.JoinRequest, *int32, error)
	ApproveRequest(ctx context.Context, requestID, hostID string) (*domain.JoinRequest, error)
	DeclineRequest(ctx context.Context, requestID, hostID string) (*domain.JoinRequest, error)
	WaitlistRequest(ctx context.Context, requestID, hostID string) (*domain.JoinRequest, error)
	CancelRequest(ctx context.Context, requestID, userID string) (*domain.JoinRequest, error)
	ExtendRequestHold(ctx context.Context, requestID, hostID string, minutes int32) (*domain.JoinRequest, error)
	ExpireHolds(ctx context.Context) (int64, error)
}

type AvailabilityService interface {
	GetEventAvailability(ctx context.Context, eventID string) (*domain.Availability, error)
}

// NotificationDispatcher is the best-effort side channel invoked when a host
// resolves a request. It never fails the caller; delivery problems are
// logged and dropped.
type NotificationDispatcher interface {
	RequestResolved(ctx context.Context, req *domain.JoinRequest, typ domain.NotificationType)
}

type NotificationService interface {
	GetNotifications(ctx context.Context, userID string, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, userID string, notificationID int64) error
}

type EmailService interface {
	SendRequestStatusEmail(ctx context.Context, toEmail, toName string, typ domain.NotificationType, eventName string) error
}
