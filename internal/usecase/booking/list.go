package booking

import (
	"context"

	domain "github.com/BruksfildServices01/court-booking/internal/domain/booking"
	"github.com/BruksfildServices01/court-booking/internal/dto"
	"github.com/BruksfildServices01/court-booking/internal/models"
)

type ListBookingsInput struct {
	UserID  string
	CourtID string
}

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

// Execute filters by user when UserID is set, otherwise by court when
// CourtID is set. Results are ordered by date ascending.
func (uc *ListBookings) Execute(
	ctx context.Context,
	in ListBookingsInput,
) ([]models.Booking, error) {
	var filter domain.ListFilter

	switch {
	case in.UserID != "":
		filter.UserID = in.UserID
	case in.CourtID != "":
		id, err := parseCourtID(in.CourtID)
		if err != nil {
			return nil, err
		}
		filter.CourtID = &id
	}

	out, err := uc.repo.ListBookings(ctx, filter)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Booking{}
	}
	return out, nil
}

type ListUserBookings struct {
	repo domain.Repository
}

func NewListUserBookings(repo domain.Repository) *ListUserBookings {
	return &ListUserBookings{repo: repo}
}

// Execute returns the user's bookings with court details, newest date
// first and earliest start first within a date.
func (uc *ListUserBookings) Execute(
	ctx context.Context,
	userID string,
) ([]dto.UserBookingDTO, error) {
	out, err := uc.repo.ListUserBookings(ctx, userID)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []dto.UserBookingDTO{}
	}
	return out, nil
}
