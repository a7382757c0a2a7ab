package repository

import (
	"context"
	"time"

	"potluck-backend/internal/domain"
)

// JoinRequestRepository exposes the atomic primitives the admission engine
// is built on. Every mutation is a single conditional statement; callers
// never read-then-write status in application code.
type JoinRequestRepository interface {
	// Create inserts a new pending request. Returns domain.ErrDuplicatePending
	// when a pending row already exists for the same (event, user) pair.
	Create(ctx context.Context, req *domain.JoinRequest) error

	// GetByID returns domain.ErrRequestNotFound when the row is absent.
	GetByID(ctx context.Context, id string) (*domain.JoinRequest, error)

	// TransitionStatus performs a compare-and-swap: the row moves to the
	// target status only if its current status is one of the expected
	// priors, clearing the hold deadline. A zero-row match returns
	// domain.ErrInvalidTransition; callers refine the diagnosis.
	TransitionStatus(ctx context.Context, id string, from []domain.JoinRequestStatus, to domain.JoinRequestStatus) (*domain.JoinRequest, error)

	// ApproveWithCapacityCheck is TransitionStatus to APPROVED with the
	// event's remaining capacity re-validated inside the same statement.
	// The approved row's own hold does not count against it. A zero-row
	// match returns domain.ErrInvalidTransition, which covers both a lost
	// transition and insufficient capacity; callers refine the diagnosis.
	ApproveWithCapacityCheck(ctx context.Context, id string, from []domain.JoinRequestStatus) (*domain.JoinRequest, error)

	// ExtendHold moves the hold deadline, guarded on status still being
	// PENDING. A zero-row match returns domain.ErrRequestNotFound.
	ExtendHold(ctx context.Context, id string, until time.Time) (*domain.JoinRequest, error)

	// ExpireBefore transitions every PENDING row whose hold deadline is
	// before cutoff to EXPIRED and returns the number of rows moved.
	ExpireBefore(ctx context.Context, cutoff time.Time) (int64, error)

	// ListByEvent returns requests ordered by creation time plus the total
	// count for the filter. An empty status matches all statuses.
	ListByEvent(ctx context.Context, eventID string, status domain.JoinRequestStatus, limit, offset int32) ([]domain.JoinRequest, int32, error)
}

// EventRepository reads the externally managed event and roster state.
type EventRepository interface {
	// GetByID returns domain.ErrEventNotFound for unknown events.
	GetByID(ctx context.Context, id string) (*domain.Event, error)

	// GetAvailability computes {total, confirmed, held} in one query and
	// returns domain.ErrEventNotFound for unknown events.
	GetAvailability(ctx context.Context, eventID string) (*domain.Availability, error)
}

// UserRepository reads the externally managed account records.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, userID string, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id int64, userID string) error
}
