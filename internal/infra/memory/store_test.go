package memory

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	domain "github.com/BruksfildServices01/court-booking/internal/domain/booking"
	userdomain "github.com/BruksfildServices01/court-booking/internal/domain/user"
	"github.com/BruksfildServices01/court-booking/internal/httperr"
	"github.com/BruksfildServices01/court-booking/internal/models"
	ucbooking "github.com/BruksfildServices01/court-booking/internal/usecase/booking"
)

type StoreSuite struct {
	suite.Suite
	ctx   context.Context
	store *Store
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = New()

	s.Require().NoError(s.store.CreateUser(s.ctx, &models.User{ID: "u1", Name: "Ann", Email: "ann@example.com"}))
	s.Require().NoError(s.store.CreateUser(s.ctx, &models.User{ID: "u2", Name: "Bob", Email: "bob@example.com"}))
	s.Require().NoError(s.store.AddCourt(s.ctx, &models.Court{SportType: "tennis", CourtNo: 2}))
	s.Require().NoError(s.store.AddCourt(s.ctx, &models.Court{SportType: "tennis", CourtNo: 1}))
	s.Require().NoError(s.store.AddCourt(s.ctx, &models.Court{SportType: "badminton", CourtNo: 1}))
}

func (s *StoreSuite) book(userID string, courtID uint, date, start, end string) *models.Booking {
	b := &models.Booking{UserID: userID, CourtID: courtID, BookingDate: date, StartTime: start, EndTime: end}
	s.Require().NoError(s.store.InsertBooking(s.ctx, b))
	return b
}

func (s *StoreSuite) TestUsers() {
	u, err := s.store.FindUserByEmail(s.ctx, "ANN@example.com")
	s.Require().NoError(err)
	s.Equal("u1", u.ID)
	s.Equal(models.RoleCustomer, u.Role)

	_, err = s.store.FindUserByID(s.ctx, "nobody")
	s.ErrorIs(err, userdomain.ErrNotFound)

	err = s.store.CreateUser(s.ctx, &models.User{ID: "u3", Email: "ann@example.com"})
	s.ErrorIs(err, userdomain.ErrDuplicate)

	err = s.store.CreateUser(s.ctx, &models.User{ID: "u1", Email: "other@example.com"})
	s.ErrorIs(err, userdomain.ErrDuplicate)
}

func (s *StoreSuite) TestListCourts() {
	all, err := s.store.ListCourts(s.ctx, "")
	s.Require().NoError(err)
	s.Len(all, 3)

	tennis, err := s.store.ListCourts(s.ctx, "tennis")
	s.Require().NoError(err)
	s.Require().Len(tennis, 2)
	s.Equal(1, tennis[0].CourtNo)
	s.Equal(2, tennis[1].CourtNo)

	none, err := s.store.ListCourts(s.ctx, "squash")
	s.Require().NoError(err)
	s.NotNil(none)
	s.Empty(none)

	highest, err := s.store.MaxCourtNo(s.ctx, "tennis")
	s.Require().NoError(err)
	s.Equal(2, highest)
}

func (s *StoreSuite) TestHasOverlap_ExcludesItself() {
	b := s.book("u1", 1, "2025-05-01", "09:00", "10:00")

	slot, err := domain.NewSlot(1, "2025-05-01", "09:30", "10:30")
	s.Require().NoError(err)

	taken, err := s.store.HasOverlap(s.ctx, slot, 0)
	s.Require().NoError(err)
	s.True(taken)

	taken, err = s.store.HasOverlap(s.ctx, slot, b.ID)
	s.Require().NoError(err)
	s.False(taken)

	other, err := domain.NewSlot(2, "2025-05-01", "09:30", "10:30")
	s.Require().NoError(err)
	taken, err = s.store.HasOverlap(s.ctx, other, 0)
	s.Require().NoError(err)
	s.False(taken)
}

func (s *StoreSuite) TestTransaction_RollsBackOnError() {
	boom := errors.New("boom")

	err := s.store.Transaction(s.ctx, func(tx domain.Repository) error {
		s.Require().NoError(tx.InsertBooking(s.ctx, &models.Booking{
			UserID: "u1", CourtID: 1, BookingDate: "2025-05-01", StartTime: "09:00", EndTime: "10:00",
		}))
		return boom
	})
	s.ErrorIs(err, boom)

	all, err := s.store.ListBookings(s.ctx, domain.ListFilter{})
	s.Require().NoError(err)
	s.Empty(all)
}

func (s *StoreSuite) TestListBookings_FilterAndOrder() {
	s.book("u1", 1, "2025-05-03", "09:00", "10:00")
	s.book("u2", 1, "2025-05-01", "11:00", "12:00")
	s.book("u1", 2, "2025-05-01", "08:00", "09:00")

	all, err := s.store.ListBookings(s.ctx, domain.ListFilter{})
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal("2025-05-01", all[0].BookingDate)
	s.Equal("08:00", all[0].StartTime)
	s.Equal("2025-05-03", all[2].BookingDate)

	mine, err := s.store.ListBookings(s.ctx, domain.ListFilter{UserID: "u1"})
	s.Require().NoError(err)
	s.Len(mine, 2)

	court := uint(1)
	onCourt, err := s.store.ListBookings(s.ctx, domain.ListFilter{CourtID: &court})
	s.Require().NoError(err)
	s.Len(onCourt, 2)
}

func (s *StoreSuite) TestListUserBookings_JoinsCourts() {
	s.book("u1", 1, "2025-05-01", "11:00", "12:00")
	s.book("u1", 3, "2025-05-01", "09:00", "10:00")
	s.book("u1", 2, "2025-05-04", "09:00", "10:00")
	s.book("u2", 1, "2025-05-09", "09:00", "10:00")

	rows, err := s.store.ListUserBookings(s.ctx, "u1")
	s.Require().NoError(err)
	s.Require().Len(rows, 3)

	s.Equal("2025-05-04", rows[0].BookingDate)
	s.Equal("09:00", rows[1].StartTime)
	s.Equal("badminton", rows[1].SportType)
	s.Equal("11:00", rows[2].StartTime)
	s.Equal("tennis", rows[2].SportType)
	s.Equal(2, rows[2].CourtNo)
}

func (s *StoreSuite) TestDeleteAndUpdate_NotFound() {
	_, err := s.store.DeleteBooking(s.ctx, 99)
	s.ErrorIs(err, domain.ErrBookingNotFound)

	_, err = s.store.UpdateBookingSlot(s.ctx, 99, "2025-05-01", "09:00", "10:00")
	s.ErrorIs(err, domain.ErrBookingNotFound)
}

func (s *StoreSuite) TestCanceledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.store.ListBookings(ctx, domain.ListFilter{})
	s.ErrorIs(err, context.Canceled)
}

// Random create attempts must never leave two overlapping bookings on the
// same court and date.
func TestStore_NoOverlapsAfterRandomCreates(t *testing.T) {
	ctx := context.Background()
	store := New()
	require.NoError(t, store.CreateUser(ctx, &models.User{ID: "u1", Email: "u1@example.com"}))
	require.NoError(t, store.AddCourt(ctx, &models.Court{SportType: "tennis", CourtNo: 1}))
	require.NoError(t, store.AddCourt(ctx, &models.Court{SportType: "tennis", CourtNo: 2}))

	create := ucbooking.NewCreateBooking(store)
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 400; i++ {
		start := rng.Intn(20) * 30
		length := (rng.Intn(4) + 1) * 30
		_, err := create.Execute(ctx, ucbooking.CreateBookingInput{
			UserID:      "u1",
			CourtID:     fmt.Sprint(rng.Intn(2) + 1),
			BookingDate: fmt.Sprintf("2025-05-0%d", rng.Intn(2)+1),
			StartTime:   fmt.Sprintf("%02d:%02d", 8+start/60, start%60),
			EndTime:     fmt.Sprintf("%02d:%02d", 8+(start+length)/60, (start+length)%60),
		})
		if err != nil {
			require.Equal(t, httperr.KindConflict, httperr.KindOf(err), "unexpected error %v", err)
		}
	}

	all, err := store.ListBookings(ctx, domain.ListFilter{})
	require.NoError(t, err)
	require.NotEmpty(t, all)

	for i := range all {
		for j := i + 1; j < len(all); j++ {
			a, b := all[i], all[j]
			if a.CourtID != b.CourtID || a.BookingDate != b.BookingDate {
				continue
			}
			ia, err := domain.NewInterval(a.StartTime, a.EndTime)
			require.NoError(t, err)
			ib, err := domain.NewInterval(b.StartTime, b.EndTime)
			require.NoError(t, err)
			assert.False(t, domain.Overlaps(ia, ib), "bookings %d and %d overlap", a.ID, b.ID)
		}
	}
}

func TestStore_ConcurrentCreatesForSameSlot(t *testing.T) {
	ctx := context.Background()
	store := New()
	require.NoError(t, store.CreateUser(ctx, &models.User{ID: "u1", Email: "u1@example.com"}))
	require.NoError(t, store.AddCourt(ctx, &models.Court{SportType: "tennis", CourtNo: 1}))

	create := ucbooking.NewCreateBooking(store)

	const workers = 25
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := create.Execute(ctx, ucbooking.CreateBookingInput{
				UserID: "u1", CourtID: "1", BookingDate: "2025-05-01", StartTime: "09:00", EndTime: "10:00",
			})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				successes++
			} else if httperr.KindOf(err) == httperr.KindConflict {
				conflicts++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, workers-1, conflicts)
}
