package service

import (
	"context"

	"potluck-backend/internal/domain"
	"potluck-backend/internal/repository"
)

type notificationService struct {
	noteRepo repository.NotificationRepository
}

func NewNotificationService(noteRepo repository.NotificationRepository) NotificationService {
	return &notificationService{noteRepo: noteRepo}
}

func (s *notificationService) GetNotifications(ctx context.Context, userID string, limit, offset int32) ([]domain.Notification, int32, error) {
	if limit < 1 || limit > maxListLimit {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.noteRepo.List(ctx, userID, limit, offset)
}

func (s *notificationService) MarkAsRead(ctx context.Context, userID string, notificationID int64) error {
	return s.noteRepo.MarkAsRead(ctx, notificationID, userID)
}
