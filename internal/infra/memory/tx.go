package memory

import (
	"context"
	"sort"

	domain "github.com/BruksfildServices01/court-booking/internal/domain/booking"
	"github.com/BruksfildServices01/court-booking/internal/dto"
	"github.com/BruksfildServices01/court-booking/internal/models"
)

// txRepo operates on a state the caller already owns.
type txRepo struct {
	st *state
}

func (r *txRepo) Transaction(ctx context.Context, fn func(tx domain.Repository) error) error {
	return fn(r)
}

func (r *txRepo) UserExists(ctx context.Context, userID string) (bool, error) {
	_, ok := r.st.users[userID]
	return ok, ctx.Err()
}

func (r *txRepo) CourtExists(ctx context.Context, courtID uint) (bool, error) {
	_, ok := r.st.courts[courtID]
	return ok, ctx.Err()
}

func (r *txRepo) FindBooking(ctx context.Context, id uint) (*models.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, ok := r.st.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return &b, nil
}

func (r *txRepo) HasOverlap(ctx context.Context, slot domain.Slot, excludeID uint) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	for _, b := range r.st.bookings {
		if b.ID == excludeID || b.CourtID != slot.CourtID || b.BookingDate != slot.Date {
			continue
		}
		existing, err := domain.NewInterval(b.StartTime, b.EndTime)
		if err != nil {
			return false, err
		}
		if domain.Overlaps(existing, slot.Interval) {
			return true, nil
		}
	}
	return false, nil
}

func (r *txRepo) InsertBooking(ctx context.Context, b *models.Booking) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b.ID = r.st.nextBookingID
	r.st.nextBookingID++
	r.st.bookings[b.ID] = *b
	return nil
}

func (r *txRepo) UpdateBookingSlot(ctx context.Context, id uint, date, start, end string) (*models.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, ok := r.st.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	b.BookingDate, b.StartTime, b.EndTime = date, start, end
	r.st.bookings[id] = b
	return &b, nil
}

func (r *txRepo) DeleteBooking(ctx context.Context, id uint) (*models.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, ok := r.st.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	delete(r.st.bookings, id)
	return &b, nil
}

func (r *txRepo) ListBookings(ctx context.Context, filter domain.ListFilter) ([]models.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]models.Booking, 0)
	for _, b := range r.st.bookings {
		switch {
		case filter.UserID != "":
			if b.UserID != filter.UserID {
				continue
			}
		case filter.CourtID != nil:
			if b.CourtID != *filter.CourtID {
				continue
			}
		}
		out = append(out, b)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].BookingDate != out[j].BookingDate {
			return out[i].BookingDate < out[j].BookingDate
		}
		if out[i].StartTime != out[j].StartTime {
			return out[i].StartTime < out[j].StartTime
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *txRepo) ListUserBookings(ctx context.Context, userID string) ([]dto.UserBookingDTO, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]dto.UserBookingDTO, 0)
	for _, b := range r.st.bookings {
		if b.UserID != userID {
			continue
		}
		c, ok := r.st.courts[b.CourtID]
		if !ok {
			continue
		}
		out = append(out, dto.UserBookingDTO{
			ID:          b.ID,
			BookingDate: b.BookingDate,
			StartTime:   b.StartTime,
			EndTime:     b.EndTime,
			SportType:   c.SportType,
			CourtNo:     c.CourtNo,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].BookingDate != out[j].BookingDate {
			return out[i].BookingDate > out[j].BookingDate
		}
		if out[i].StartTime != out[j].StartTime {
			return out[i].StartTime < out[j].StartTime
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
