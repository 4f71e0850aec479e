package models

// User is created on signup or on the first sync from the external auth
// provider. Password is nil for externally provisioned users.
type User struct {
	ID       string  `gorm:"primaryKey;size:128" json:"id"`
	Name     string  `gorm:"size:100" json:"name"`
	Email    string  `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password *string `gorm:"size:255" json:"-"`
	Role     string  `gorm:"size:20;not null;default:'customer'" json:"role"`
}

const RoleCustomer = "customer"
