package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/court-booking/internal/models"
)

// constraints back the booking rules in the database itself. The
// exclusion constraint rejects any two overlapping [start, end) ranges on
// the same court and date.
var constraints = []string{
	`CREATE EXTENSION IF NOT EXISTS btree_gist`,
	`DO $$ BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'bookings_time_order') THEN
			ALTER TABLE bookings ADD CONSTRAINT bookings_time_order CHECK (start_time < end_time);
		END IF;
	END $$`,
	`DO $$ BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'bookings_no_overlap') THEN
			ALTER TABLE bookings ADD CONSTRAINT bookings_no_overlap EXCLUDE USING gist (
				court_id WITH =,
				tsrange(booking_date + start_time, booking_date + end_time, '[)') WITH &&
			);
		END IF;
	END $$`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_court_date ON bookings (court_id, booking_date)`,
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Court{},
		&models.Booking{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	for _, stmt := range constraints {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("apply constraint: %w", err)
		}
	}
	return nil
}
