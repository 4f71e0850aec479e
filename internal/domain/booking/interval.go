package booking

import "github.com/BruksfildServices01/court-booking/internal/httperr"

// Interval is the half-open range [Start, End).
type Interval struct {
	Start Clock
	End   Clock
}

// Overlaps reports whether a and b share any instant. Touching endpoints
// do not overlap, so back-to-back bookings are allowed. Inverted
// intervals are not rejected here.
func Overlaps(a, b Interval) bool {
	return !(a.End <= b.Start || a.Start >= b.End)
}

func NewInterval(start, end string) (Interval, error) {
	s, err := ParseClock(start)
	if err != nil {
		return Interval{}, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return Interval{}, err
	}
	if s >= e {
		return Interval{}, httperr.ErrValidation(
			"invalid_interval",
			"start_time must be before end_time",
		)
	}
	return Interval{Start: s, End: e}, nil
}
