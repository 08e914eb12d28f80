package services

import (
	"errors"
	"strings"

	"github.com/Ataalp23/emlak-talep-backend/internal/dto"
	"github.com/Ataalp23/emlak-talep-backend/internal/models"
	"gorm.io/gorm"
)

// UserService handles registration and lookup of marketplace participants.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// RegisterOrFetch returns the user with the given phone, creating one if
// none exists. Registration is idempotent by phone: a duplicate registration
// is a merge, never an error. A concurrent first-time registration losing
// the race against the unique index is resolved by re-fetching the winner.
func (s *UserService) RegisterOrFetch(in dto.CreateUserRequest) (*models.User, error) {
	phone := strings.TrimSpace(in.Phone)
	if phone == "" {
		return nil, &ValidationError{Field: "phone"}
	}

	var existing models.User
	if err := s.db.Where("phone = ?", phone).First(&existing).Error; err == nil {
		return &existing, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	userType := in.UserType
	if userType == "" {
		userType = models.UserTypeBuyer
	}

	user := &models.User{
		Name:          in.Name,
		Phone:         phone,
		UserType:      userType,
		City:          in.City,
		District:      in.District,
		Neighbourhood: in.Neighbourhood,
	}

	if err := s.db.Create(user).Error; err != nil {
		// Likely the unique index on phone firing under a concurrent
		// registration; treat the conflict as "fetch existing".
		var winner models.User
		if ferr := s.db.Where("phone = ?", phone).First(&winner).Error; ferr == nil {
			return &winner, nil
		}
		return nil, err
	}

	return user, nil
}

func (s *UserService) Get(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "User"}
		}
		return nil, err
	}
	return &user, nil
}
