package user

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/court-booking/internal/models"
)

var (
	ErrNotFound  = errors.New("user not found")
	ErrDuplicate = errors.New("user already exists")
)

type Repository interface {
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByID(ctx context.Context, id string) (*models.User, error)

	// CreateUser returns ErrDuplicate when the id or email is taken.
	CreateUser(ctx context.Context, u *models.User) error
}
