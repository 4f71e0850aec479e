package booking

import (
	"context"
	"errors"

	domain "github.com/BruksfildServices01/court-booking/internal/domain/booking"
	"github.com/BruksfildServices01/court-booking/internal/httperr"
	"github.com/BruksfildServices01/court-booking/internal/models"
)

type UpdateBookingInput struct {
	ID          uint
	BookingDate string
	StartTime   string
	EndTime     string
}

type UpdateBooking struct {
	repo domain.Repository
}

func NewUpdateBooking(repo domain.Repository) *UpdateBooking {
	return &UpdateBooking{repo: repo}
}

// Execute moves a booking to a new date and time on the same court. The
// new interval is checked against every other booking on that court.
func (uc *UpdateBooking) Execute(
	ctx context.Context,
	in UpdateBookingInput,
) (booking *models.Booking, err error) {
	defer func() { record("update", err) }()

	if in.BookingDate == "" || in.StartTime == "" || in.EndTime == "" {
		return nil, ErrMissingFields
	}

	err = inTx(ctx, uc.repo, func(tx domain.Repository) error {
		current, err := tx.FindBooking(ctx, in.ID)
		if errors.Is(err, domain.ErrBookingNotFound) {
			return httperr.ErrNotFound("booking")
		}
		if err != nil {
			return err
		}

		slot, err := domain.NewSlot(current.CourtID, in.BookingDate, in.StartTime, in.EndTime)
		if err != nil {
			return err
		}

		taken, err := tx.HasOverlap(ctx, slot, current.ID)
		if err != nil {
			return err
		}
		if taken {
			return ErrSlotTaken
		}

		updated, err := tx.UpdateBookingSlot(ctx, current.ID, slot.Date, slot.StartTime(), slot.EndTime())
		if errors.Is(err, domain.ErrBookingNotFound) {
			return httperr.ErrNotFound("booking")
		}
		if err != nil {
			return err
		}

		booking = updated
		return nil
	})
	if err != nil {
		return nil, mapStoreError(err)
	}

	return booking, nil
}
