package service

import (
	"context"
	"fmt"

	"potluck-backend/internal/domain"
	"potluck-backend/internal/logger"
	"potluck-backend/internal/repository"
)

type notificationDispatcher struct {
	noteRepo  repository.NotificationRepository
	userRepo  repository.UserRepository
	eventRepo repository.EventRepository
	emailSvc  EmailService
}

func NewNotificationDispatcher(
	noteRepo repository.NotificationRepository,
	userRepo repository.UserRepository,
	eventRepo repository.EventRepository,
	emailSvc EmailService,
) NotificationDispatcher {
	return &notificationDispatcher{
		noteRepo:  noteRepo,
		userRepo:  userRepo,
		eventRepo: eventRepo,
		emailSvc:  emailSvc,
	}
}

// RequestResolved records an in-app notification and sends an email to the
// request owner. Every step is best effort: failures are logged and never
// propagate to the host's call.
func (d *notificationDispatcher) RequestResolved(ctx context.Context, req *domain.JoinRequest, typ domain.NotificationType) {
	eventName := "the event"
	if ev, err := d.eventRepo.GetByID(ctx, req.EventID); err == nil {
		eventName = ev.Name
	}

	note := &domain.Notification{
		UserID:    req.UserID,
		EventID:   req.EventID,
		RequestID: req.ID,
		Type:      typ,
		Title:     notificationTitle(typ),
		Message:   fmt.Sprintf("Your request to join %s was %s.", eventName, notificationVerb(typ)),
	}
	if err := d.noteRepo.Create(ctx, note); err != nil {
		logger.Error("Failed to record notification", "request_id", req.ID, "type", typ, "error", err)
	}

	user, err := d.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		logger.Error("Failed to load notification recipient", "user_id", req.UserID, "error", err)
		return
	}
	if err := d.emailSvc.SendRequestStatusEmail(ctx, user.Email, user.Name, typ, eventName); err != nil {
		logger.Error("Failed to send notification email", "user_id", req.UserID, "type", typ, "error", err)
	}
}

type noopDispatcher struct{}

// NewNoopDispatcher returns a dispatcher that drops everything. Used by the
// sweeper, whose only transition (expiry) sends no notifications.
func NewNoopDispatcher() NotificationDispatcher {
	return noopDispatcher{}
}

func (noopDispatcher) RequestResolved(context.Context, *domain.JoinRequest, domain.NotificationType) {}

func notificationTitle(typ domain.NotificationType) string {
	switch typ {
	case domain.NotificationTypeRequestApproved:
		return "Request approved"
	case domain.NotificationTypeRequestDeclined:
		return "Request declined"
	case domain.NotificationTypeRequestWaitlisted:
		return "Request waitlisted"
	}
	return "Request updated"
}

func notificationVerb(typ domain.NotificationType) string {
	switch typ {
	case domain.NotificationTypeRequestApproved:
		return "approved"
	case domain.NotificationTypeRequestDeclined:
		return "declined"
	case domain.NotificationTypeRequestWaitlisted:
		return "waitlisted"
	}
	return "updated"
}
