package repository

import (
	"context"

	"gorm.io/gorm"

	courtdomain "github.com/BruksfildServices01/court-booking/internal/domain/court"
	"github.com/BruksfildServices01/court-booking/internal/models"
)

type CourtGormRepository struct {
	db *gorm.DB
}

func NewCourtGormRepository(db *gorm.DB) *CourtGormRepository {
	return &CourtGormRepository{db: db}
}

// ListCourts matches sportType case-insensitively.
func (r *CourtGormRepository) ListCourts(
	ctx context.Context,
	sportType string,
) ([]models.Court, error) {

	q := r.db.WithContext(ctx)
	if sportType != "" {
		q = q.Where("LOWER(sport_type) = LOWER(?)", sportType)
	}

	courts := make([]models.Court, 0)
	if err := q.Order("court_no ASC, id ASC").Find(&courts).Error; err != nil {
		return nil, err
	}
	return courts, nil
}

func (r *CourtGormRepository) AddCourt(
	ctx context.Context,
	c *models.Court,
) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CourtGormRepository) MaxCourtNo(
	ctx context.Context,
	sportType string,
) (int, error) {

	var n int
	if err := r.db.WithContext(ctx).
		Model(&models.Court{}).
		Where("LOWER(sport_type) = LOWER(?)", sportType).
		Select("COALESCE(MAX(court_no), 0)").
		Scan(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

var _ courtdomain.Repository = (*CourtGormRepository)(nil)
