package models

import "time"

// User is a marketplace participant. Phone is the natural dedup key:
// registering an already known phone returns the existing row.
type User struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"size:255" json:"name"`
	Phone         string    `gorm:"size:32;not null;uniqueIndex" json:"phone"`
	UserType      string    `gorm:"size:20;default:'buyer'" json:"user_type"`
	City          string    `gorm:"size:100" json:"-"`
	District      string    `gorm:"size:100" json:"-"`
	Neighbourhood string    `gorm:"size:100" json:"-"`
	CreatedAt     time.Time `json:"-"`
}

// User types.
const (
	UserTypeBuyer  = "buyer"
	UserTypeSeller = "seller"
	UserTypeAgent  = "agent"
)
