package postgres

import (
	"database/sql"

	"potluck-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.JoinRequestRepository
	repository.EventRepository
	repository.UserRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		JoinRequestRepository:  NewJoinRequestRepository(db),
		EventRepository:        NewEventRepository(db),
		UserRepository:         NewUserRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}
