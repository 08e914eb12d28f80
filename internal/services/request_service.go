package services

import (
	"errors"

	"github.com/Ataalp23/emlak-talep-backend/internal/dto"
	"github.com/Ataalp23/emlak-talep-backend/internal/models"
	"github.com/Ataalp23/emlak-talep-backend/internal/textlist"
	"gorm.io/gorm"
)

// RequestService handles buyer want-ads.
type RequestService struct {
	db *gorm.DB
}

func NewRequestService(db *gorm.DB) *RequestService {
	return &RequestService{db: db}
}

// Create persists a new active request for an existing user. The returned
// entity carries the caller's room_options slice as-is, so the same
// request/response cycle never sees a lossy round-trip.
func (s *RequestService) Create(in dto.CreateBuyerRequestRequest) (*models.BuyerRequest, error) {
	// Shape before references: a malformed body never reaches the store
	switch {
	case in.Title == "":
		return nil, &ValidationError{Field: "title"}
	case in.City == "":
		return nil, &ValidationError{Field: "city"}
	case in.District == "":
		return nil, &ValidationError{Field: "district"}
	case in.Neighbourhood == "":
		return nil, &ValidationError{Field: "neighbourhood"}
	case in.BudgetMax <= 0:
		return nil, &ValidationError{Field: "budget_max"}
	}
	if in.BudgetMin > in.BudgetMax {
		return nil, ErrBudgetRange
	}

	var owner models.User
	if err := s.db.First(&owner, in.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "User"}
		}
		return nil, err
	}

	rooms := textlist.List{}
	if in.RoomOptions != nil {
		rooms = textlist.List(in.RoomOptions)
	}

	req := &models.BuyerRequest{
		UserID:        in.UserID,
		Title:         in.Title,
		Description:   in.Description,
		City:          in.City,
		District:      in.District,
		Neighbourhood: in.Neighbourhood,
		BudgetMin:     in.BudgetMin,
		BudgetMax:     in.BudgetMax,
		RoomOptions:   rooms,
		IsActive:      true,
	}

	if err := s.db.Create(req).Error; err != nil {
		return nil, err
	}
	return req, nil
}

// ListActive returns active requests, newest first, optionally narrowed by
// exact-match city and district and by budget_max <= maxBudget. Any nonzero
// maxBudget applies the ceiling; zero means no budget filter.
func (s *RequestService) ListActive(city, district string, maxBudget float64) ([]models.BuyerRequest, error) {
	q := s.db.Where("is_active = ?", true)

	if city != "" {
		q = q.Where("city = ?", city)
	}
	if district != "" {
		q = q.Where("district = ?", district)
	}
	if maxBudget != 0 {
		q = q.Where("budget_max <= ?", maxBudget)
	}

	requests := []models.BuyerRequest{}
	if err := q.Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, err
	}

	for i := range requests {
		if requests[i].RoomOptions == nil {
			requests[i].RoomOptions = textlist.List{}
		}
	}
	return requests, nil
}

func (s *RequestService) Get(id uint) (*models.BuyerRequest, error) {
	var req models.BuyerRequest
	if err := s.db.First(&req, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Request"}
		}
		return nil, err
	}
	if req.RoomOptions == nil {
		req.RoomOptions = textlist.List{}
	}
	return &req, nil
}
