package repository

import (
	"context"

	"gorm.io/gorm"
)

type SystemGormRepository struct {
	db *gorm.DB
}

func NewSystemGormRepository(db *gorm.DB) *SystemGormRepository {
	return &SystemGormRepository{db: db}
}

// Version returns the server's version() string.
func (r *SystemGormRepository) Version(ctx context.Context) (string, error) {
	var v string
	if err := r.db.WithContext(ctx).Raw("SELECT version()").Scan(&v).Error; err != nil {
		return "", err
	}
	return v, nil
}
