package services

import (
	"errors"

	"github.com/Ataalp23/emlak-talep-backend/internal/dto"
	"github.com/Ataalp23/emlak-talep-backend/internal/models"
	"github.com/Ataalp23/emlak-talep-backend/internal/textlist"
	"gorm.io/gorm"
)

// OfferService handles seller offers and their status lifecycle.
type OfferService struct {
	db *gorm.DB
}

func NewOfferService(db *gorm.DB) *OfferService {
	return &OfferService{db: db}
}

// Create persists a new offer against an existing request with status=sent.
// An absent or empty photo list is stored as NULL, not as an empty joined
// string, so reads keep the absent-vs-empty distinction.
func (s *OfferService) Create(requestID uint, in dto.CreateOfferRequest) (*models.Offer, error) {
	var req models.BuyerRequest
	if err := s.db.First(&req, requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Request"}
		}
		return nil, err
	}

	var seller models.User
	if err := s.db.First(&seller, in.SellerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Seller"}
		}
		return nil, err
	}

	var photos textlist.List
	if len(in.Photos) > 0 {
		photos = textlist.List(in.Photos)
	}

	offer := &models.Offer{
		RequestID:     requestID,
		SellerID:      in.SellerID,
		Price:         in.Price,
		Message:       in.Message,
		Photos:        photos,
		ContactShared: in.ContactShared,
		Status:        models.OfferStatusSent,
	}

	if err := s.db.Create(offer).Error; err != nil {
		return nil, err
	}
	return offer, nil
}

// ListForRequest returns all offers for an existing request, newest first.
func (s *OfferService) ListForRequest(requestID uint) ([]models.Offer, error) {
	var req models.BuyerRequest
	if err := s.db.First(&req, requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Request"}
		}
		return nil, err
	}

	offers := []models.Offer{}
	if err := s.db.Where("request_id = ?", requestID).Order("created_at DESC").Find(&offers).Error; err != nil {
		return nil, err
	}
	return offers, nil
}

// UpdateStatus overwrites the offer status unconditionally. Any offer may
// move to any of the three values at any time; only the value set is checked.
func (s *OfferService) UpdateStatus(offerID uint, status string) (*models.Offer, error) {
	var offer models.Offer
	if err := s.db.First(&offer, offerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Offer"}
		}
		return nil, err
	}

	if !models.ValidOfferStatus(status) {
		return nil, ErrInvalidStatus
	}

	if err := s.db.Model(&offer).Update("status", status).Error; err != nil {
		return nil, err
	}
	return &offer, nil
}
