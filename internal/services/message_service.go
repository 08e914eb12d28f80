package services

import (
	"errors"

	"github.com/Ataalp23/emlak-talep-backend/internal/dto"
	"github.com/Ataalp23/emlak-talep-backend/internal/models"
	"gorm.io/gorm"
)

// MessageService handles the chat thread attached to an offer.
type MessageService struct {
	db *gorm.DB
}

func NewMessageService(db *gorm.DB) *MessageService {
	return &MessageService{db: db}
}

func (s *MessageService) Create(offerID uint, in dto.CreateMessageRequest) (*models.Message, error) {
	if in.Body == "" {
		return nil, &ValidationError{Field: "body"}
	}

	var offer models.Offer
	if err := s.db.First(&offer, offerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Offer"}
		}
		return nil, err
	}

	var sender models.User
	if err := s.db.First(&sender, in.SenderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Sender"}
		}
		return nil, err
	}

	msg := &models.Message{
		OfferID:  offerID,
		SenderID: in.SenderID,
		Body:     in.Body,
	}

	if err := s.db.Create(msg).Error; err != nil {
		return nil, err
	}
	return msg, nil
}

// List returns the thread for an existing offer in chronological order.
func (s *MessageService) List(offerID uint) ([]models.Message, error) {
	var offer models.Offer
	if err := s.db.First(&offer, offerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Offer"}
		}
		return nil, err
	}

	msgs := []models.Message{}
	if err := s.db.Where("offer_id = ?", offerID).Order("created_at ASC").Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}
