package http_test

import (
	"context"

	"potluck-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockAdmissionService struct {
	mock.Mock
}

func (m *MockAdmissionService) CreateJoinRequest(ctx context.Context, eventID, userID string, partySize int32, note string) (*domain.JoinRequest, error) {
	args := m.Called(ctx, eventID, userID, partySize, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JoinRequest), args.Error(1)
}

func (m *MockAdmissionService) ListRequests(ctx context.Context, eventID string, status domain.JoinRequestStatus, limit, offset int32) ([]domain.JoinRequest, *int32, error) {
	args := m.Called(ctx, eventID, status, limit, offset)
	var reqs []domain.JoinRequest
	if args.Get(0) != nil {
		reqs = args.Get(0).([]domain.JoinRequest)
	}
	var next *int32
	if args.Get(1) != nil {
		next = args.Get(1).(*int32)
	}
	return reqs, next, args.Error(2)
}

func (m *MockAdmissionService) ApproveRequest(ctx context.Context, requestID, hostID string) (*domain.JoinRequest, error) {
	return m.resolved(m.Called(ctx, requestID, hostID))
}

func (m *MockAdmissionService) DeclineRequest(ctx context.Context, requestID, hostID string) (*domain.JoinRequest, error) {
	return m.resolved(m.Called(ctx, requestID, hostID))
}

func (m *MockAdmissionService) WaitlistRequest(ctx context.Context, requestID, hostID string) (*domain.JoinRequest, error) {
	return m.resolved(m.Called(ctx, requestID, hostID))
}

func (m *MockAdmissionService) CancelRequest(ctx context.Context, requestID, userID string) (*domain.JoinRequest, error) {
	return m.resolved(m.Called(ctx, requestID, userID))
}

func (m *MockAdmissionService) ExtendRequestHold(ctx context.Context, requestID, hostID string, minutes int32) (*domain.JoinRequest, error) {
	return m.resolved(m.Called(ctx, requestID, hostID, minutes))
}

func (m *MockAdmissionService) ExpireHolds(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAdmissionService) resolved(args mock.Arguments) (*domain.JoinRequest, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JoinRequest), args.Error(1)
}

type MockAvailabilityService struct {
	mock.Mock
}

func (m *MockAvailabilityService) GetEventAvailability(ctx context.Context, eventID string) (*domain.Availability, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Availability), args.Error(1)
}

type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) GetNotifications(ctx context.Context, userID string, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, userID, limit, offset)
	var notes []domain.Notification
	if args.Get(0) != nil {
		notes = args.Get(0).([]domain.Notification)
	}
	return notes, args.Get(1).(int32), args.Error(2)
}

func (m *MockNotificationService) MarkAsRead(ctx context.Context, userID string, notificationID int64) error {
	args := m.Called(ctx, userID, notificationID)
	return args.Error(0)
}
