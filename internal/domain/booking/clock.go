package booking

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/BruksfildServices01/court-booking/internal/httperr"
)

const DateLayout = "2006-01-02"

// ===============================
// Clock
// ===============================

// Clock is a wall-clock time of day with minute precision, stored as
// minutes since midnight.
type Clock int

// ParseClock accepts "HH:MM" or "HH:MM:SS" with zero seconds.
func ParseClock(s string) (Clock, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, invalidTime(s)
	}

	for _, p := range parts {
		if len(p) != 2 {
			return 0, invalidTime(s)
		}
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, invalidTime(s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, invalidTime(s)
	}
	if len(parts) == 3 && parts[2] != "00" {
		return 0, invalidTime(s)
	}

	return Clock(h*60 + m), nil
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

func invalidTime(s string) error {
	return httperr.ErrValidation("invalid_time", fmt.Sprintf("Invalid time %q, expected HH:MM", s))
}

// ParseDate validates a calendar date in YYYY-MM-DD form and returns it
// in canonical form.
func ParseDate(s string) (string, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return "", httperr.ErrValidation("invalid_date", fmt.Sprintf("Invalid date %q, expected YYYY-MM-DD", s))
	}
	return d.Format(DateLayout), nil
}
