package booking

import (
	"context"

	"github.com/stretchr/testify/mock"

	domain "github.com/BruksfildServices01/court-booking/internal/domain/booking"
	"github.com/BruksfildServices01/court-booking/internal/dto"
	"github.com/BruksfildServices01/court-booking/internal/models"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Transaction(ctx context.Context, fn func(tx domain.Repository) error) error {
	if err := m.Called(ctx).Error(0); err != nil {
		return err
	}
	return fn(m)
}

func (m *MockRepository) UserExists(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) CourtExists(ctx context.Context, courtID uint) (bool, error) {
	args := m.Called(ctx, courtID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) FindBooking(ctx context.Context, id uint) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if b := args.Get(0); b != nil {
		return b.(*models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) HasOverlap(ctx context.Context, slot domain.Slot, excludeID uint) (bool, error) {
	args := m.Called(ctx, slot, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) InsertBooking(ctx context.Context, b *models.Booking) error {
	args := m.Called(ctx, b)
	if args.Error(0) == nil {
		b.ID = 42
	}
	return args.Error(0)
}

func (m *MockRepository) UpdateBookingSlot(ctx context.Context, id uint, date, start, end string) (*models.Booking, error) {
	args := m.Called(ctx, id, date, start, end)
	if b := args.Get(0); b != nil {
		return b.(*models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) DeleteBooking(ctx context.Context, id uint) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if b := args.Get(0); b != nil {
		return b.(*models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) ListBookings(ctx context.Context, filter domain.ListFilter) ([]models.Booking, error) {
	args := m.Called(ctx, filter)
	if b := args.Get(0); b != nil {
		return b.([]models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) ListUserBookings(ctx context.Context, userID string) ([]dto.UserBookingDTO, error) {
	args := m.Called(ctx, userID)
	if b := args.Get(0); b != nil {
		return b.([]dto.UserBookingDTO), args.Error(1)
	}
	return nil, args.Error(1)
}
