package factory

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/court-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/court-booking/internal/db"
	bookingdomain "github.com/BruksfildServices01/court-booking/internal/domain/booking"
	courtdomain "github.com/BruksfildServices01/court-booking/internal/domain/court"
	userdomain "github.com/BruksfildServices01/court-booking/internal/domain/user"
	"github.com/BruksfildServices01/court-booking/internal/infra/memory"
	infraRepo "github.com/BruksfildServices01/court-booking/internal/infra/repository"
)

type VersionSource interface {
	Version(ctx context.Context) (string, error)
}

// Store bundles the repositories the API needs, whatever backs them.
type Store struct {
	Bookings bookingdomain.Repository
	Users    userdomain.Repository
	Courts   courtdomain.Repository
	System   VersionSource

	close func() error
}

func (s *Store) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// NewStore selects the backend named by cfg.StorageType.
func NewStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Store, error) {
	switch cfg.StorageType {
	case config.StorageMemory:
		log.Warn().Msg("using in-memory storage, data is lost on restart")
		return NewMemoryStore(memory.New()), nil

	case config.StoragePostgres:
		db, err := dbpkg.NewDB(cfg, log)
		if err != nil {
			return nil, err
		}
		if err := db.WithContext(ctx).Exec("SELECT 1").Error; err != nil {
			_ = dbpkg.Close(db)
			return nil, fmt.Errorf("ping database: %w", err)
		}
		return &Store{
			Bookings: infraRepo.NewBookingGormRepository(db),
			Users:    infraRepo.NewUserGormRepository(db),
			Courts:   infraRepo.NewCourtGormRepository(db),
			System:   infraRepo.NewSystemGormRepository(db),
			close:    func() error { return dbpkg.Close(db) },
		}, nil

	default:
		return nil, fmt.Errorf("unsupported storage type %q", cfg.StorageType)
	}
}

func NewMemoryStore(m *memory.Store) *Store {
	return &Store{
		Bookings: m,
		Users:    m,
		Courts:   m,
		System:   m,
	}
}
