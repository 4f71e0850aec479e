package models

type Court struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	SportType string `gorm:"size:50;not null;index" json:"sport_type"`
	CourtNo   int    `gorm:"not null" json:"court_no"`
}
