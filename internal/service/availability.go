package service

import (
	"context"

	"potluck-backend/internal/domain"
	"potluck-backend/internal/repository"
)

type availabilityService struct {
	eventRepo repository.EventRepository
}

func NewAvailabilityService(eventRepo repository.EventRepository) AvailabilityService {
	return &availabilityService{eventRepo: eventRepo}
}

// GetEventAvailability returns the event's capacity picture from a single
// atomic read. Overbooked events report a negative Available.
func (s *availabilityService) GetEventAvailability(ctx context.Context, eventID string) (*domain.Availability, error) {
	return s.eventRepo.GetAvailability(ctx, eventID)
}
