package service_test

import (
	"context"
	"time"

	"potluck-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockJoinRequestRepo
type MockJoinRequestRepo struct {
	mock.Mock
}

func (m *MockJoinRequestRepo) Create(ctx context.Context, req *domain.JoinRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockJoinRequestRepo) GetByID(ctx context.Context, id string) (*domain.JoinRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JoinRequest), args.Error(1)
}

func (m *MockJoinRequestRepo) TransitionStatus(ctx context.Context, id string, from []domain.JoinRequestStatus, to domain.JoinRequestStatus) (*domain.JoinRequest, error) {
	args := m.Called(ctx, id, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JoinRequest), args.Error(1)
}

func (m *MockJoinRequestRepo) ApproveWithCapacityCheck(ctx context.Context, id string, from []domain.JoinRequestStatus) (*domain.JoinRequest, error) {
	args := m.Called(ctx, id, from)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JoinRequest), args.Error(1)
}

func (m *MockJoinRequestRepo) ExtendHold(ctx context.Context, id string, until time.Time) (*domain.JoinRequest, error) {
	args := m.Called(ctx, id, until)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JoinRequest), args.Error(1)
}

func (m *MockJoinRequestRepo) ExpireBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockJoinRequestRepo) ListByEvent(ctx context.Context, eventID string, status domain.JoinRequestStatus, limit, offset int32) ([]domain.JoinRequest, int32, error) {
	args := m.Called(ctx, eventID, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int32), args.Error(2)
	}
	return args.Get(0).([]domain.JoinRequest), args.Get(1).(int32), args.Error(2)
}

// MockEventRepo
type MockEventRepo struct {
	mock.Mock
}

func (m *MockEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventRepo) GetAvailability(ctx context.Context, eventID string) (*domain.Availability, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Availability), args.Error(1)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockNotificationRepo) List(ctx context.Context, userID string, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int32), args.Error(2)
	}
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}

func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id int64, userID string) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendRequestStatusEmail(ctx context.Context, toEmail, toName string, typ domain.NotificationType, eventName string) error {
	args := m.Called(ctx, toEmail, toName, typ, eventName)
	return args.Error(0)
}

// MockDispatcher records resolved notifications.
type MockDispatcher struct {
	mock.Mock
}

func (m *MockDispatcher) RequestResolved(ctx context.Context, req *domain.JoinRequest, typ domain.NotificationType) {
	m.Called(ctx, req, typ)
}
