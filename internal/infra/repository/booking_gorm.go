package repository

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/court-booking/internal/domain/booking"
	"github.com/BruksfildServices01/court-booking/internal/dto"
	"github.com/BruksfildServices01/court-booking/internal/models"
)

// bookingColumns projects dates and times in their wire format.
const bookingColumns = `id, user_id, court_id,
	to_char(booking_date, 'YYYY-MM-DD') AS booking_date,
	to_char(start_time, 'HH24:MI') AS start_time,
	to_char(end_time, 'HH24:MI') AS end_time`

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Unit of work
// --------------------------------------------------

// Transaction runs fn in a SERIALIZABLE transaction. Nested calls use a
// savepoint on the outer transaction.
func (r *BookingGormRepository) Transaction(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&BookingGormRepository{db: tx})
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
}

// --------------------------------------------------
// Existence
// --------------------------------------------------

func (r *BookingGormRepository) UserExists(
	ctx context.Context,
	userID string,
) (bool, error) {

	var exists bool
	if err := r.db.WithContext(ctx).
		Raw("SELECT EXISTS (SELECT 1 FROM users WHERE id = ?)", userID).
		Scan(&exists).Error; err != nil {
		return false, err
	}
	return exists, nil
}

func (r *BookingGormRepository) CourtExists(
	ctx context.Context,
	courtID uint,
) (bool, error) {

	var exists bool
	if err := r.db.WithContext(ctx).
		Raw("SELECT EXISTS (SELECT 1 FROM courts WHERE id = ?)", courtID).
		Scan(&exists).Error; err != nil {
		return false, err
	}
	return exists, nil
}

// --------------------------------------------------
// Booking (write)
// --------------------------------------------------

func (r *BookingGormRepository) FindBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	res := r.db.WithContext(ctx).
		Raw("SELECT "+bookingColumns+" FROM bookings WHERE id = ?", id).
		Scan(&b)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrBookingNotFound
	}
	return &b, nil
}

// HasOverlap locks the overlapping rows so a concurrent writer in another
// serializable transaction fails instead of interleaving.
func (r *BookingGormRepository) HasOverlap(
	ctx context.Context,
	slot domain.Slot,
	excludeID uint,
) (bool, error) {

	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"court_id = ? AND booking_date = ? AND NOT (end_time <= ? OR start_time >= ?) AND id <> ?",
			slot.CourtID,
			slot.Date,
			slot.StartTime(),
			slot.EndTime(),
			excludeID,
		).
		Pluck("id", &ids).Error; err != nil {
		return false, err
	}

	return len(ids) > 0, nil
}

func (r *BookingGormRepository) InsertBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(b).Error
}

func (r *BookingGormRepository) UpdateBookingSlot(
	ctx context.Context,
	id uint,
	date string,
	start string,
	end string,
) (*models.Booking, error) {

	var b models.Booking
	res := r.db.WithContext(ctx).
		Raw(
			"UPDATE bookings SET booking_date = ?, start_time = ?, end_time = ? WHERE id = ? RETURNING "+bookingColumns,
			date, start, end, id,
		).
		Scan(&b)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrBookingNotFound
	}
	return &b, nil
}

func (r *BookingGormRepository) DeleteBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	res := r.db.WithContext(ctx).
		Raw("DELETE FROM bookings WHERE id = ? RETURNING "+bookingColumns, id).
		Scan(&b)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrBookingNotFound
	}
	return &b, nil
}

// --------------------------------------------------
// Booking (read)
// --------------------------------------------------

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).
		Table("bookings").
		Select(bookingColumns)

	switch {
	case filter.UserID != "":
		q = q.Where("user_id = ?", filter.UserID)
	case filter.CourtID != nil:
		q = q.Where("court_id = ?", *filter.CourtID)
	}

	out := make([]models.Booking, 0)
	if err := q.
		Order("bookings.booking_date ASC, bookings.start_time ASC, bookings.id ASC").
		Scan(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *BookingGormRepository) ListUserBookings(
	ctx context.Context,
	userID string,
) ([]dto.UserBookingDTO, error) {

	out := make([]dto.UserBookingDTO, 0)
	if err := r.db.WithContext(ctx).
		Raw(`
			SELECT b.id,
				to_char(b.booking_date, 'YYYY-MM-DD') AS booking_date,
				to_char(b.start_time, 'HH24:MI') AS start_time,
				to_char(b.end_time, 'HH24:MI') AS end_time,
				c.sport_type,
				c.court_no
			FROM bookings b
			JOIN courts c ON c.id = b.court_id
			WHERE b.user_id = ?
			ORDER BY b.booking_date DESC, b.start_time ASC, b.id ASC
		`, userID).
		Scan(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

var _ domain.Repository = (*BookingGormRepository)(nil)
