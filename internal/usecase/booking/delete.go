package booking

import (
	"context"
	"errors"

	domain "github.com/BruksfildServices01/court-booking/internal/domain/booking"
	"github.com/BruksfildServices01/court-booking/internal/httperr"
	"github.com/BruksfildServices01/court-booking/internal/models"
)

type DeleteBooking struct {
	repo domain.Repository
}

func NewDeleteBooking(repo domain.Repository) *DeleteBooking {
	return &DeleteBooking{repo: repo}
}

// Execute removes the booking and returns the row as it was.
func (uc *DeleteBooking) Execute(
	ctx context.Context,
	id uint,
) (booking *models.Booking, err error) {
	defer func() { record("delete", err) }()

	err = inTx(ctx, uc.repo, func(tx domain.Repository) error {
		deleted, err := tx.DeleteBooking(ctx, id)
		if errors.Is(err, domain.ErrBookingNotFound) {
			return httperr.ErrNotFound("booking")
		}
		if err != nil {
			return err
		}
		booking = deleted
		return nil
	})
	if err != nil {
		return nil, err
	}

	return booking, nil
}
