package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"potluck-backend/internal/config"
	"potluck-backend/internal/domain"
	"potluck-backend/internal/logger"
	"potluck-backend/internal/repository"

	"github.com/google/uuid"
)

const (
	minExtensionMinutes = 5
	maxExtensionMinutes = 120

	defaultListLimit = 25
	maxListLimit     = 100
)

type admissionService struct {
	reqRepo    repository.JoinRequestRepository
	eventRepo  repository.EventRepository
	dispatcher NotificationDispatcher
	cfg        *config.Config
}

func NewAdmissionService(
	reqRepo repository.JoinRequestRepository,
	eventRepo repository.EventRepository,
	dispatcher NotificationDispatcher,
	cfg *config.Config,
) AdmissionService {
	return &admissionService{
		reqRepo:    reqRepo,
		eventRepo:  eventRepo,
		dispatcher: dispatcher,
		cfg:        cfg,
	}
}

func (s *admissionService) CreateJoinRequest(ctx context.Context, eventID, userID string, partySize int32, note string) (*domain.JoinRequest, error) {
	if partySize < 1 {
		return nil, domain.ErrInvalidPartySize
	}
	if utf8.RuneCountInString(note) > domain.MaxNoteLength {
		return nil, domain.ErrNoteTooLong
	}

	av, err := s.eventRepo.GetAvailability(ctx, eventID)
	if err != nil {
		return nil, err
	}
	// Available may already be <= 0; any request is too big for it then.
	if partySize > av.Available {
		return nil, fmt.Errorf("%w: need %d, have %d", domain.ErrInsufficientCapacity, partySize, av.Available)
	}

	holdExpiresAt := time.Now().Add(s.cfg.HoldTTL())
	req := &domain.JoinRequest{
		ID:            uuid.New().String(),
		EventID:       eventID,
		UserID:        userID,
		PartySize:     partySize,
		Note:          note,
		Status:        domain.JoinRequestStatusPending,
		HoldExpiresAt: &holdExpiresAt,
	}

	// The pending-row unique index is the dedupe guard; a duplicate surfaces
	// here as the storage conflict signal.
	if err := s.reqRepo.Create(ctx, req); err != nil {
		return nil, err
	}

	logger.Info("Join request created", "request_id", req.ID, "event_id", eventID, "user_id", userID, "party_size", partySize)
	return req, nil
}

func (s *admissionService) ListRequests(ctx context.Context, eventID string, status domain.JoinRequestStatus, limit, offset int32) ([]domain.JoinRequest, *int32, error) {
	if status != "" && !domain.ValidJoinRequestStatus(status) {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrInvalidStatus, status)
	}
	if limit == 0 {
		limit = defaultListLimit
	} else if limit < 1 {
		limit = 1
	} else if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, nil, err
	}

	reqs, total, err := s.reqRepo.ListByEvent(ctx, eventID, status, limit, offset)
	if err != nil {
		return nil, nil, err
	}

	var nextOffset *int32
	if offset+limit < total {
		next := offset + limit
		nextOffset = &next
	}
	return reqs, nextOffset, nil
}

var hostResolvePriors = []domain.JoinRequestStatus{
	domain.JoinRequestStatusPending,
	domain.JoinRequestStatusWaitlisted,
}

func (s *admissionService) ApproveRequest(ctx context.Context, requestID, hostID string) (*domain.JoinRequest, error) {
	req, err := s.reqRepo.ApproveWithCapacityCheck(ctx, requestID, hostResolvePriors)
	if errors.Is(err, domain.ErrInvalidTransition) {
		// The zero-row match also covers the in-statement capacity check
		// failing; tell the two apart with a diagnostic read.
		return nil, s.diagnoseApproveFailure(ctx, requestID)
	}
	if err != nil {
		return nil, err
	}

	logger.Info("Join request approved", "request_id", requestID, "host_id", hostID)
	s.dispatcher.RequestResolved(ctx, req, domain.NotificationTypeRequestApproved)
	return req, nil
}

func (s *admissionService) DeclineRequest(ctx context.Context, requestID, hostID string) (*domain.JoinRequest, error) {
	req, err := s.reqRepo.TransitionStatus(ctx, requestID, hostResolvePriors, domain.JoinRequestStatusDeclined)
	if errors.Is(err, domain.ErrInvalidTransition) {
		return nil, s.diagnoseLostTransition(ctx, requestID, hostResolvePriors)
	}
	if err != nil {
		return nil, err
	}

	logger.Info("Join request declined", "request_id", requestID, "host_id", hostID)
	s.dispatcher.RequestResolved(ctx, req, domain.NotificationTypeRequestDeclined)
	return req, nil
}

func (s *admissionService) WaitlistRequest(ctx context.Context, requestID, hostID string) (*domain.JoinRequest, error) {
	priors := []domain.JoinRequestStatus{domain.JoinRequestStatusPending}
	req, err := s.reqRepo.TransitionStatus(ctx, requestID, priors, domain.JoinRequestStatusWaitlisted)
	if errors.Is(err, domain.ErrInvalidTransition) {
		return nil, s.diagnoseLostTransition(ctx, requestID, priors)
	}
	if err != nil {
		return nil, err
	}

	logger.Info("Join request waitlisted", "request_id", requestID, "host_id", hostID)
	s.dispatcher.RequestResolved(ctx, req, domain.NotificationTypeRequestWaitlisted)
	return req, nil
}

func (s *admissionService) CancelRequest(ctx context.Context, requestID, userID string) (*domain.JoinRequest, error) {
	req, err := s.reqRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.UserID != userID {
		return nil, domain.ErrNotRequestOwner
	}
	// The sweep may not have run yet; a stale PENDING row past its deadline
	// is already expired from the owner's point of view.
	if req.HoldExpiresAt != nil && !time.Now().Before(*req.HoldExpiresAt) {
		return nil, domain.ErrHoldExpired
	}

	priors := []domain.JoinRequestStatus{domain.JoinRequestStatusPending}
	cancelled, err := s.reqRepo.TransitionStatus(ctx, requestID, priors, domain.JoinRequestStatusCancelled)
	if errors.Is(err, domain.ErrInvalidTransition) {
		return nil, s.diagnoseLostTransition(ctx, requestID, priors)
	}
	if err != nil {
		return nil, err
	}

	logger.Info("Join request cancelled", "request_id", requestID, "user_id", userID)
	return cancelled, nil
}

func (s *admissionService) ExtendRequestHold(ctx context.Context, requestID, hostID string, minutes int32) (*domain.JoinRequest, error) {
	if minutes < minExtensionMinutes || minutes > maxExtensionMinutes {
		return nil, domain.ErrInvalidExtension
	}

	until := time.Now().Add(time.Duration(minutes) * time.Minute)
	req, err := s.reqRepo.ExtendHold(ctx, requestID, until)
	if errors.Is(err, domain.ErrRequestNotFound) {
		return nil, fmt.Errorf("%w or not pending", domain.ErrRequestNotFound)
	}
	if err != nil {
		return nil, err
	}

	logger.Info("Join request hold extended", "request_id", requestID, "host_id", hostID, "minutes", minutes)
	return req, nil
}

func (s *admissionService) ExpireHolds(ctx context.Context) (int64, error) {
	count, err := s.reqRepo.ExpireBefore(ctx, time.Now())
	if err != nil {
		return 0, err
	}
	if count > 0 {
		logger.Info("Expired stale holds", "expired", count)
	}
	return count, nil
}

// diagnoseLostTransition turns a zero-row CAS match into a caller-facing
// error. The read is advisory only; the authoritative outcome is that the
// write did not happen.
func (s *admissionService) diagnoseLostTransition(ctx context.Context, requestID string, priors []domain.JoinRequestStatus) error {
	cur, err := s.reqRepo.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	return fmt.Errorf("%w: expected %s, got %s", domain.ErrInvalidTransition, priorsLabel(priors), cur.Status)
}

// diagnoseApproveFailure additionally distinguishes a capacity recheck
// failure: the row is still in an approvable status, so the conditional
// UPDATE can only have been rejected by the capacity predicate.
func (s *admissionService) diagnoseApproveFailure(ctx context.Context, requestID string) error {
	cur, err := s.reqRepo.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	for _, prior := range hostResolvePriors {
		if cur.Status == prior {
			av, err := s.eventRepo.GetAvailability(ctx, cur.EventID)
			if err != nil {
				return fmt.Errorf("%w: need %d", domain.ErrInsufficientCapacity, cur.PartySize)
			}
			return fmt.Errorf("%w: need %d, have %d", domain.ErrInsufficientCapacity, cur.PartySize, av.Available)
		}
	}
	return fmt.Errorf("%w: expected %s, got %s", domain.ErrInvalidTransition, priorsLabel(hostResolvePriors), cur.Status)
}

func priorsLabel(priors []domain.JoinRequestStatus) string {
	parts := make([]string, len(priors))
	for i, p := range priors {
		parts[i] = string(p)
	}
	return strings.Join(parts, " or ")
}
