package court

import (
	"context"
	"strings"

	courtdomain "github.com/BruksfildServices01/court-booking/internal/domain/court"
	"github.com/BruksfildServices01/court-booking/internal/httperr"
	"github.com/BruksfildServices01/court-booking/internal/models"
)

type SeedCourts struct {
	repo courtdomain.Repository
}

func NewSeedCourts(repo courtdomain.Repository) *SeedCourts {
	return &SeedCourts{repo: repo}
}

// Execute appends count courts of sportType, numbered after the highest
// court_no already stored for that sport.
func (uc *SeedCourts) Execute(ctx context.Context, sportType string, count int) ([]models.Court, error) {
	sportType = strings.ToLower(strings.TrimSpace(sportType))
	if sportType == "" {
		return nil, httperr.ErrValidation("missing_sport_type", "sport type is required")
	}
	if count <= 0 {
		return nil, httperr.ErrValidation("invalid_count", "count must be positive")
	}

	highest, err := uc.repo.MaxCourtNo(ctx, sportType)
	if err != nil {
		return nil, err
	}

	added := make([]models.Court, 0, count)
	for i := 1; i <= count; i++ {
		c := models.Court{SportType: sportType, CourtNo: highest + i}
		if err := uc.repo.AddCourt(ctx, &c); err != nil {
			return added, err
		}
		added = append(added, c)
	}
	return added, nil
}
