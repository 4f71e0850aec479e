package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/court-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/court-booking/internal/db"
	infraRepo "github.com/BruksfildServices01/court-booking/internal/infra/repository"
	"github.com/BruksfildServices01/court-booking/internal/logger"
	ucCourt "github.com/BruksfildServices01/court-booking/internal/usecase/court"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "migrate",
		Short:        "Database maintenance for the court booking API",
		SilenceUsage: true,
	}

	root.AddCommand(newUpCmd(), newSeedCourtsCmd())
	return root
}

func newUpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Create tables and booking constraints",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDB(cmd.Context(), func(db *gorm.DB, log zerolog.Logger) error {
				if err := dbpkg.Migrate(db); err != nil {
					return err
				}
				log.Info().Msg("schema up to date")
				return nil
			})
		},
	}
}

func newSeedCourtsCmd() *cobra.Command {
	var (
		sport string
		count int
	)

	cmd := &cobra.Command{
		Use:   "seed-courts",
		Short: "Add numbered courts for a sport",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDB(cmd.Context(), func(db *gorm.DB, log zerolog.Logger) error {
				courts, err := ucCourt.NewSeedCourts(infraRepo.NewCourtGormRepository(db)).
					Execute(cmd.Context(), sport, count)
				if err != nil {
					return err
				}
				for _, c := range courts {
					log.Info().
						Uint("court_id", c.ID).
						Str("sport_type", c.SportType).
						Int("court_no", c.CourtNo).
						Msg("court added")
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&sport, "sport", "", "sport type, e.g. tennis")
	cmd.Flags().IntVar(&count, "count", 1, "number of courts to add")
	_ = cmd.MarkFlagRequired("sport")
	return cmd
}

func withDB(ctx context.Context, fn func(db *gorm.DB, log zerolog.Logger) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(cfg.LogLevel, cfg.LogPretty)

	db, err := dbpkg.NewDB(cfg, log)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer func() {
		if err := dbpkg.Close(db); err != nil {
			log.Error().Err(err).Msg("failed to close database")
		}
	}()

	return fn(db.WithContext(ctx), log)
}
