package models

import (
	"time"

	"github.com/Ataalp23/emlak-talep-backend/internal/textlist"
)

// Offer is a seller's priced response to a BuyerRequest. Photos stays NULL
// when the seller attached none, so readers can tell "no photos given" from
// an explicitly cleared list.
type Offer struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	RequestID     uint          `gorm:"not null;index" json:"request_id"`
	SellerID      uint          `gorm:"not null;index" json:"seller_id"`
	Price         float64       `json:"price"`
	Message       string        `gorm:"type:text" json:"message"`
	Photos        textlist.List `json:"photos"`
	ContactShared bool          `gorm:"default:false" json:"contact_shared"`
	Status        string        `gorm:"size:20;default:'sent'" json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
}

// Offer statuses. Transitions are unconstrained: any offer may move to any
// of the three values at any time.
const (
	OfferStatusSent     = "sent"
	OfferStatusAccepted = "accepted"
	OfferStatusRejected = "rejected"
)

// ValidOfferStatus reports whether s is one of the recognized statuses.
func ValidOfferStatus(s string) bool {
	switch s {
	case OfferStatusSent, OfferStatusAccepted, OfferStatusRejected:
		return true
	}
	return false
}
