package models

import (
	"time"

	"github.com/Ataalp23/emlak-talep-backend/internal/textlist"
)

// BuyerRequest is a buyer's want-ad: locality, budget window and the room
// layouts they would accept. RoomOptions round-trips through a comma-joined
// text column in insertion order.
type BuyerRequest struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	UserID        uint          `gorm:"not null;index" json:"-"`
	Title         string        `gorm:"size:255;not null" json:"title"`
	Description   string        `gorm:"type:text" json:"description"`
	City          string        `gorm:"size:100;not null;index" json:"city"`
	District      string        `gorm:"size:100;not null;index" json:"district"`
	Neighbourhood string        `gorm:"size:100;not null" json:"neighbourhood"`
	BudgetMin     float64       `gorm:"default:0" json:"budget_min"`
	BudgetMax     float64       `gorm:"not null" json:"budget_max"`
	RoomOptions   textlist.List `json:"room_options"`
	IsActive      bool          `gorm:"default:true" json:"is_active"`
	CreatedAt     time.Time     `json:"created_at"`
}
