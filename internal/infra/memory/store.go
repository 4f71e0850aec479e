package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	domain "github.com/BruksfildServices01/court-booking/internal/domain/booking"
	courtdomain "github.com/BruksfildServices01/court-booking/internal/domain/court"
	userdomain "github.com/BruksfildServices01/court-booking/internal/domain/user"
	"github.com/BruksfildServices01/court-booking/internal/dto"
	"github.com/BruksfildServices01/court-booking/internal/models"
)

// Store is an in-memory implementation of the user, court and booking
// repositories. Transactions hold the store lock for their whole run, so
// they are serialised.
type Store struct {
	mu sync.Mutex
	st *state
}

type state struct {
	users      map[string]models.User
	emailIndex map[string]string
	courts     map[uint]models.Court
	bookings   map[uint]models.Booking

	nextCourtID   uint
	nextBookingID uint
}

func New() *Store {
	return &Store{st: newState()}
}

func newState() *state {
	return &state{
		users:         make(map[string]models.User),
		emailIndex:    make(map[string]string),
		courts:        make(map[uint]models.Court),
		bookings:      make(map[uint]models.Booking),
		nextCourtID:   1,
		nextBookingID: 1,
	}
}

func (s *state) clone() *state {
	c := &state{
		users:         make(map[string]models.User, len(s.users)),
		emailIndex:    make(map[string]string, len(s.emailIndex)),
		courts:        make(map[uint]models.Court, len(s.courts)),
		bookings:      make(map[uint]models.Booking, len(s.bookings)),
		nextCourtID:   s.nextCourtID,
		nextBookingID: s.nextBookingID,
	}
	for k, v := range s.users {
		if v.Password != nil {
			p := *v.Password
			v.Password = &p
		}
		c.users[k] = v
	}
	for k, v := range s.emailIndex {
		c.emailIndex[k] = v
	}
	for k, v := range s.courts {
		c.courts[k] = v
	}
	for k, v := range s.bookings {
		c.bookings[k] = v
	}
	return c
}

var (
	_ domain.Repository      = (*Store)(nil)
	_ userdomain.Repository  = (*Store)(nil)
	_ courtdomain.Repository = (*Store)(nil)
	_ domain.Repository      = (*txRepo)(nil)
)

func (s *Store) Version(ctx context.Context) (string, error) {
	return "in-memory store", ctx.Err()
}

// ===============================
// Bookings
// ===============================

// Transaction runs fn against a copy of the state and publishes it only
// when fn succeeds.
func (s *Store) Transaction(ctx context.Context, fn func(tx domain.Repository) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.st.clone()
	if err := fn(&txRepo{st: work}); err != nil {
		return err
	}
	s.st = work
	return nil
}

func (s *Store) locked(ctx context.Context, fn func(r *txRepo) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&txRepo{st: s.st})
}

func (s *Store) UserExists(ctx context.Context, userID string) (ok bool, err error) {
	err = s.locked(ctx, func(r *txRepo) error {
		ok, err = r.UserExists(ctx, userID)
		return err
	})
	return ok, err
}

func (s *Store) CourtExists(ctx context.Context, courtID uint) (ok bool, err error) {
	err = s.locked(ctx, func(r *txRepo) error {
		ok, err = r.CourtExists(ctx, courtID)
		return err
	})
	return ok, err
}

func (s *Store) FindBooking(ctx context.Context, id uint) (b *models.Booking, err error) {
	err = s.locked(ctx, func(r *txRepo) error {
		b, err = r.FindBooking(ctx, id)
		return err
	})
	return b, err
}

func (s *Store) HasOverlap(ctx context.Context, slot domain.Slot, excludeID uint) (ok bool, err error) {
	err = s.locked(ctx, func(r *txRepo) error {
		ok, err = r.HasOverlap(ctx, slot, excludeID)
		return err
	})
	return ok, err
}

func (s *Store) InsertBooking(ctx context.Context, b *models.Booking) error {
	return s.locked(ctx, func(r *txRepo) error {
		return r.InsertBooking(ctx, b)
	})
}

func (s *Store) UpdateBookingSlot(ctx context.Context, id uint, date, start, end string) (b *models.Booking, err error) {
	err = s.locked(ctx, func(r *txRepo) error {
		b, err = r.UpdateBookingSlot(ctx, id, date, start, end)
		return err
	})
	return b, err
}

func (s *Store) DeleteBooking(ctx context.Context, id uint) (b *models.Booking, err error) {
	err = s.locked(ctx, func(r *txRepo) error {
		b, err = r.DeleteBooking(ctx, id)
		return err
	})
	return b, err
}

func (s *Store) ListBookings(ctx context.Context, filter domain.ListFilter) (out []models.Booking, err error) {
	err = s.locked(ctx, func(r *txRepo) error {
		out, err = r.ListBookings(ctx, filter)
		return err
	})
	return out, err
}

func (s *Store) ListUserBookings(ctx context.Context, userID string) (out []dto.UserBookingDTO, err error) {
	err = s.locked(ctx, func(r *txRepo) error {
		out, err = r.ListUserBookings(ctx, userID)
		return err
	})
	return out, err
}

// ===============================
// Users
// ===============================

func (s *Store) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.st.emailIndex[strings.ToLower(email)]
	if !ok {
		return nil, userdomain.ErrNotFound
	}
	u := s.st.users[id]
	return &u, nil
}

func (s *Store) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.st.users[id]
	if !ok {
		return nil, userdomain.ErrNotFound
	}
	return &u, nil
}

func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	email := strings.ToLower(u.Email)
	if _, ok := s.st.users[u.ID]; ok {
		return userdomain.ErrDuplicate
	}
	if _, ok := s.st.emailIndex[email]; ok {
		return userdomain.ErrDuplicate
	}
	if u.Role == "" {
		u.Role = models.RoleCustomer
	}

	s.st.users[u.ID] = *u
	s.st.emailIndex[email] = u.ID
	return nil
}

// ===============================
// Courts
// ===============================

func (s *Store) ListCourts(ctx context.Context, sportType string) ([]models.Court, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Court, 0, len(s.st.courts))
	for _, c := range s.st.courts {
		if sportType != "" && !strings.EqualFold(c.SportType, sportType) {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CourtNo != out[j].CourtNo {
			return out[i].CourtNo < out[j].CourtNo
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Store) AddCourt(ctx context.Context, c *models.Court) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = s.st.nextCourtID
	s.st.nextCourtID++
	s.st.courts[c.ID] = *c
	return nil
}

func (s *Store) MaxCourtNo(ctx context.Context, sportType string) (int, error) {
	courts, err := s.ListCourts(ctx, sportType)
	if err != nil {
		return 0, err
	}
	highest := 0
	for _, c := range courts {
		if c.CourtNo > highest {
			highest = c.CourtNo
		}
	}
	return highest, nil
}
