package dto

type CreateUserRequest struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	UserType      string `json:"user_type"`
	City          string `json:"city"`
	District      string `json:"district"`
	Neighbourhood string `json:"neighbourhood"`
}

type CreateBuyerRequestRequest struct {
	UserID        uint     `json:"user_id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	City          string   `json:"city"`
	District      string   `json:"district"`
	Neighbourhood string   `json:"neighbourhood"`
	BudgetMin     float64  `json:"budget_min"`
	BudgetMax     float64  `json:"budget_max"`
	RoomOptions   []string `json:"room_options"`
}

type CreateOfferRequest struct {
	SellerID      uint     `json:"seller_id"`
	Price         float64  `json:"price"`
	Message       string   `json:"message"`
	Photos        []string `json:"photos"`
	ContactShared bool     `json:"contact_shared"`
}

type CreateMessageRequest struct {
	SenderID uint   `json:"sender_id"`
	Body     string `json:"body"`
}
