package court

import (
	"context"

	"github.com/BruksfildServices01/court-booking/internal/models"
)

type Repository interface {
	// ListCourts returns courts ordered by court number. An empty
	// sportType lists every court.
	ListCourts(ctx context.Context, sportType string) ([]models.Court, error)

	AddCourt(ctx context.Context, c *models.Court) error

	// MaxCourtNo is 0 when the sport has no courts yet.
	MaxCourtNo(ctx context.Context, sportType string) (int, error)
}
