package repository

import (
	"context"

	"github.com/polkiloo/zoopark/internal/domain/model"
)

// UserRepository describes persistence operations for keeper accounts.
type UserRepository interface {
	Create(ctx context.Context, username, passwordHash string) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
}
