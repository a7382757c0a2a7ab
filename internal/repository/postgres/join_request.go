package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"potluck-backend/internal/domain"
	"potluck-backend/internal/repository"

	"github.com/lib/pq"
)

const joinRequestColumns = "id, event_id, user_id, party_size, note, status, hold_expires_at, created_at, updated_at"

type joinRequestRepository struct {
	db *sql.DB
}

func NewJoinRequestRepository(db *sql.DB) repository.JoinRequestRepository {
	return &joinRequestRepository{db: db}
}

func scanJoinRequest(row interface {
	Scan(dest ...interface{}) error
}) (*domain.JoinRequest, error) {
	req := &domain.JoinRequest{}
	err := row.Scan(&req.ID, &req.EventID, &req.UserID, &req.PartySize, &req.Note, &req.Status, &req.HoldExpiresAt, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return req, nil
}

func statusStrings(statuses []domain.JoinRequestStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

func (r *joinRequestRepository) Create(ctx context.Context, req *domain.JoinRequest) error {
	// A partial unique index on (event_id, user_id) WHERE status = 'PENDING'
	// enforces one pending request per pair; the 23505 signal is the
	// storage-level dedupe.
	query := `INSERT INTO join_requests (id, event_id, user_id, party_size, note, status, hold_expires_at, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING created_at, updated_at`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		req.ID, req.EventID, req.UserID, req.PartySize, req.Note, req.Status, req.HoldExpiresAt, now, now,
	).Scan(&req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return domain.ErrDuplicatePending
		}
		return err
	}
	return nil
}

func (r *joinRequestRepository) GetByID(ctx context.Context, id string) (*domain.JoinRequest, error) {
	query := `SELECT ` + joinRequestColumns + ` FROM join_requests WHERE id = $1`
	req, err := scanJoinRequest(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRequestNotFound
	}
	if err != nil {
		return nil, err
	}
	return req, nil
}

func (r *joinRequestRepository) TransitionStatus(ctx context.Context, id string, from []domain.JoinRequestStatus, to domain.JoinRequestStatus) (*domain.JoinRequest, error) {
	query := `UPDATE join_requests
	          SET status = $1, hold_expires_at = NULL, updated_at = $2
	          WHERE id = $3 AND status = ANY($4)
	          RETURNING ` + joinRequestColumns
	req, err := scanJoinRequest(r.db.QueryRowContext(ctx, query, to, time.Now(), id, pq.Array(statusStrings(from))))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrInvalidTransition
	}
	if err != nil {
		return nil, err
	}
	return req, nil
}

func (r *joinRequestRepository) ApproveWithCapacityCheck(ctx context.Context, id string, from []domain.JoinRequestStatus) (*domain.JoinRequest, error) {
	// Capacity is re-validated in the same statement so that approval and
	// the availability check cannot interleave with a concurrent writer.
	// The row's own hold is excluded from the held sum: approving converts
	// that hold into confirmed seats rather than stacking on top of it.
	query := `UPDATE join_requests jr
	          SET status = $1, hold_expires_at = NULL, updated_at = $2
	          WHERE jr.id = $3 AND jr.status = ANY($4)
	            AND jr.party_size <= (
	              SELECT e.capacity
	                - COALESCE((SELECT SUM(p.party_size) FROM participants p
	                            WHERE p.event_id = e.id AND p.status = 'ACCEPTED'), 0)
	                - COALESCE((SELECT SUM(q.party_size) FROM join_requests q
	                            WHERE q.event_id = e.id AND q.status = 'PENDING'
	                              AND q.hold_expires_at > $2 AND q.id <> jr.id), 0)
	              FROM events e WHERE e.id = jr.event_id
	            )
	          RETURNING ` + joinRequestColumns
	req, err := scanJoinRequest(r.db.QueryRowContext(ctx, query, domain.JoinRequestStatusApproved, time.Now(), id, pq.Array(statusStrings(from))))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrInvalidTransition
	}
	if err != nil {
		return nil, err
	}
	return req, nil
}

func (r *joinRequestRepository) ExtendHold(ctx context.Context, id string, until time.Time) (*domain.JoinRequest, error) {
	query := `UPDATE join_requests
	          SET hold_expires_at = $1, updated_at = $2
	          WHERE id = $3 AND status = $4
	          RETURNING ` + joinRequestColumns
	req, err := scanJoinRequest(r.db.QueryRowContext(ctx, query, until, time.Now(), id, domain.JoinRequestStatusPending))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRequestNotFound
	}
	if err != nil {
		return nil, err
	}
	return req, nil
}

func (r *joinRequestRepository) ExpireBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `UPDATE join_requests
	          SET status = $1, hold_expires_at = NULL, updated_at = $2
	          WHERE status = $3 AND hold_expires_at < $4`
	res, err := r.db.ExecContext(ctx, query, domain.JoinRequestStatusExpired, time.Now(), domain.JoinRequestStatusPending, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *joinRequestRepository) ListByEvent(ctx context.Context, eventID string, status domain.JoinRequestStatus, limit, offset int32) ([]domain.JoinRequest, int32, error) {
	query := `SELECT ` + joinRequestColumns + ` FROM join_requests WHERE event_id = $1`

	args := []interface{}{eventID}
	argIdx := 2
	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, status)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY created_at ASC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var reqs []domain.JoinRequest
	for rows.Next() {
		req, err := scanJoinRequest(rows)
		if err != nil {
			return nil, 0, err
		}
		reqs = append(reqs, *req)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return reqs, count, nil
}
