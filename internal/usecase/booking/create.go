package booking

import (
	"context"

	domain "github.com/BruksfildServices01/court-booking/internal/domain/booking"
	"github.com/BruksfildServices01/court-booking/internal/httperr"
	"github.com/BruksfildServices01/court-booking/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	UserID      string
	CourtID     string
	BookingDate string
	StartTime   string
	EndTime     string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo domain.Repository
}

func NewCreateBooking(repo domain.Repository) *CreateBooking {
	return &CreateBooking{repo: repo}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute validates the request and inserts the booking. The checks run
// in order (user, court, overlap) and the first failure wins.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (booking *models.Booking, err error) {
	defer func() { record("create", err) }()

	if in.UserID == "" || in.CourtID == "" || in.BookingDate == "" ||
		in.StartTime == "" || in.EndTime == "" {
		return nil, ErrMissingFields
	}

	courtID, err := parseCourtID(in.CourtID)
	if err != nil {
		return nil, err
	}

	slot, err := domain.NewSlot(courtID, in.BookingDate, in.StartTime, in.EndTime)
	if err != nil {
		return nil, err
	}

	err = inTx(ctx, uc.repo, func(tx domain.Repository) error {
		// --------------------------------------------------
		// 1. User
		// --------------------------------------------------
		ok, err := tx.UserExists(ctx, in.UserID)
		if err != nil {
			return err
		}
		if !ok {
			return httperr.ErrNotFound("user")
		}

		// --------------------------------------------------
		// 2. Court
		// --------------------------------------------------
		ok, err = tx.CourtExists(ctx, slot.CourtID)
		if err != nil {
			return err
		}
		if !ok {
			return httperr.ErrNotFound("court")
		}

		// --------------------------------------------------
		// 3. Overlap
		// --------------------------------------------------
		taken, err := tx.HasOverlap(ctx, slot, 0)
		if err != nil {
			return err
		}
		if taken {
			return ErrSlotTaken
		}

		// --------------------------------------------------
		// 4. Insert
		// --------------------------------------------------
		b := &models.Booking{
			UserID:      in.UserID,
			CourtID:     slot.CourtID,
			BookingDate: slot.Date,
			StartTime:   slot.StartTime(),
			EndTime:     slot.EndTime(),
		}
		if err := tx.InsertBooking(ctx, b); err != nil {
			return err
		}

		booking = b
		return nil
	})
	if err != nil {
		return nil, mapStoreError(err)
	}

	return booking, nil
}
