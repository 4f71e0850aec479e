package booking

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/court-booking/internal/dto"
	"github.com/BruksfildServices01/court-booking/internal/models"
)

var ErrBookingNotFound = errors.New("booking not found")

// ListFilter selects bookings by user or court. UserID wins when both
// are set; an empty filter lists everything.
type ListFilter struct {
	UserID  string
	CourtID *uint
}

type Repository interface {
	// Transaction runs fn inside one unit of work. The Repository passed
	// to fn is bound to it; fn returning an error rolls everything back.
	Transaction(
		ctx context.Context,
		fn func(tx Repository) error,
	) error

	// -------- Existence --------
	UserExists(ctx context.Context, userID string) (bool, error)
	CourtExists(ctx context.Context, courtID uint) (bool, error)

	// -------- Booking (write) --------
	FindBooking(ctx context.Context, id uint) (*models.Booking, error)

	// HasOverlap reports whether another booking on slot's court and date
	// intersects slot. excludeID skips one booking (0 skips none).
	HasOverlap(ctx context.Context, slot Slot, excludeID uint) (bool, error)

	InsertBooking(ctx context.Context, b *models.Booking) error

	UpdateBookingSlot(
		ctx context.Context,
		id uint,
		date string,
		start string,
		end string,
	) (*models.Booking, error)

	DeleteBooking(ctx context.Context, id uint) (*models.Booking, error)

	// -------- Booking (read) --------
	ListBookings(ctx context.Context, filter ListFilter) ([]models.Booking, error)
	ListUserBookings(ctx context.Context, userID string) ([]dto.UserBookingDTO, error)
}
