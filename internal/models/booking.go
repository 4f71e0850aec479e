package models

// Booking stores wall-clock values as text on the Go side: BookingDate is
// "YYYY-MM-DD" and the times are "HH:MM".
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID string `gorm:"size:128;not null;index" json:"user_id"`
	User   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	CourtID uint  `gorm:"not null;index" json:"court_id"`
	Court   Court `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	BookingDate string `gorm:"type:date;not null" json:"booking_date"`
	StartTime   string `gorm:"type:time;not null" json:"start_time"`
	EndTime     string `gorm:"type:time;not null" json:"end_time"`
}
