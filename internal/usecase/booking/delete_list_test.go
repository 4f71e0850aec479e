package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/court-booking/internal/domain/booking"
	"github.com/BruksfildServices01/court-booking/internal/dto"
	"github.com/BruksfildServices01/court-booking/internal/httperr"
)

func TestDeleteBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the deleted row", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Transaction", ctx).Return(nil)
		repo.On("DeleteBooking", ctx, uint(7)).Return(existingBooking(), nil)

		got, err := NewDeleteBooking(repo).Execute(ctx, 7)

		require.NoError(t, err)
		assert.Equal(t, existingBooking(), got)
	})

	t.Run("missing row is not found", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Transaction", ctx).Return(nil)
		repo.On("DeleteBooking", ctx, uint(7)).Return(nil, domain.ErrBookingNotFound)

		_, err := NewDeleteBooking(repo).Execute(ctx, 7)

		assert.Equal(t, httperr.KindNotFound, httperr.KindOf(err))
	})
}

func TestListBookings_FilterPrecedence(t *testing.T) {
	ctx := context.Background()
	courtID := uint(3)

	cases := []struct {
		name string
		in   ListBookingsInput
		want domain.ListFilter
	}{
		{"no filter", ListBookingsInput{}, domain.ListFilter{}},
		{"user only", ListBookingsInput{UserID: "u1"}, domain.ListFilter{UserID: "u1"}},
		{"court only", ListBookingsInput{CourtID: "3"}, domain.ListFilter{CourtID: &courtID}},
		{"user wins", ListBookingsInput{UserID: "u1", CourtID: "3"}, domain.ListFilter{UserID: "u1"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(MockRepository)
			repo.On("ListBookings", ctx, tc.want).Return(nil, nil)

			got, err := NewListBookings(repo).Execute(ctx, tc.in)

			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Empty(t, got)
			repo.AssertExpectations(t)
		})
	}
}

func TestListBookings_InvalidCourt(t *testing.T) {
	repo := new(MockRepository)

	_, err := NewListBookings(repo).Execute(context.Background(), ListBookingsInput{CourtID: "x"})

	assert.ErrorIs(t, err, ErrInvalidCourt)
}

func TestListUserBookings(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	rows := []dto.UserBookingDTO{{ID: 1, BookingDate: "2025-05-02", SportType: "tennis", CourtNo: 1}}
	repo.On("ListUserBookings", ctx, "u1").Return(rows, nil)

	got, err := NewListUserBookings(repo).Execute(ctx, "u1")

	require.NoError(t, err)
	assert.Equal(t, rows, got)
}
