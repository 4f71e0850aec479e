package dto

// UserBookingDTO is one row of a user's bookings joined with its court.
type UserBookingDTO struct {
	ID          uint   `json:"id"`
	BookingDate string `json:"booking_date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	SportType   string `json:"sport_type"`
	CourtNo     int    `json:"court_no"`
}
