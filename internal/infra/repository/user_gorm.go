package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	userdomain "github.com/BruksfildServices01/court-booking/internal/domain/user"
	"github.com/BruksfildServices01/court-booking/internal/httperr"
	"github.com/BruksfildServices01/court-booking/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) FindUserByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(email)).
		First(&u).Error; err != nil {
		return nil, translateUserError(err)
	}
	return &u, nil
}

func (r *UserGormRepository) FindUserByID(
	ctx context.Context,
	id string,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&u).Error; err != nil {
		return nil, translateUserError(err)
	}
	return &u, nil
}

func (r *UserGormRepository) CreateUser(
	ctx context.Context,
	u *models.User,
) error {
	if u.Role == "" {
		u.Role = models.RoleCustomer
	}
	return translateUserError(r.db.WithContext(ctx).Create(u).Error)
}

func translateUserError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return userdomain.ErrNotFound
	case httperr.IsUniqueViolation(err):
		return userdomain.ErrDuplicate
	default:
		return err
	}
}

var _ userdomain.Repository = (*UserGormRepository)(nil)
