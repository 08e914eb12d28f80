package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Ataalp23/emlak-talep-backend/internal/handlers"
	"github.com/Ataalp23/emlak-talep-backend/internal/models"
	"github.com/Ataalp23/emlak-talep-backend/internal/routes"
	"github.com/Ataalp23/emlak-talep-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.BuyerRequest{},
		&models.Offer{},
		&models.Message{},
	))

	app := fiber.New()
	routes.Setup(app,
		handlers.NewHealthHandler(db),
		handlers.NewUserHandler(services.NewUserService(db)),
		handlers.NewRequestHandler(services.NewRequestService(db)),
		handlers.NewOfferHandler(services.NewOfferService(db)),
		handlers.NewMessageHandler(services.NewMessageService(db)),
	)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func TestLiveness(t *testing.T) {
	app := setupTestApp(t)

	resp, raw := doJSON(t, app, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), "message")
}

func TestFullMarketplaceFlow(t *testing.T) {
	app := setupTestApp(t)

	// Buyer registers
	resp, raw := doJSON(t, app, http.MethodPost, "/users", fiber.Map{
		"name": "Ayşe", "phone": "+905551112233",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var buyer struct {
		ID       uint   `json:"id"`
		Phone    string `json:"phone"`
		UserType string `json:"user_type"`
	}
	require.NoError(t, json.Unmarshal(raw, &buyer))
	assert.Equal(t, uint(1), buyer.ID)
	assert.Equal(t, "buyer", buyer.UserType)

	// Registering the same phone again returns the same user
	resp, raw = doJSON(t, app, http.MethodPost, "/users", fiber.Map{"phone": "+905551112233"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var again struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(raw, &again))
	assert.Equal(t, buyer.ID, again.ID)

	// Buyer posts a request
	resp, raw = doJSON(t, app, http.MethodPost, "/requests", fiber.Map{
		"user_id":       buyer.ID,
		"title":         "Trilye'de müstakil",
		"city":          "Bursa",
		"district":      "Mudanya",
		"neighbourhood": "Trilye",
		"budget_max":    7000000,
		"room_options":  []string{"3+1", "2+1"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var request struct {
		ID          uint     `json:"id"`
		RoomOptions []string `json:"room_options"`
		IsActive    bool     `json:"is_active"`
	}
	require.NoError(t, json.Unmarshal(raw, &request))
	assert.Equal(t, []string{"3+1", "2+1"}, request.RoomOptions)
	assert.True(t, request.IsActive)

	// Reading it back keeps the room option order
	resp, raw = doJSON(t, app, http.MethodGet, fmt.Sprintf("/requests/%d", request.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(raw, &request))
	assert.Equal(t, []string{"3+1", "2+1"}, request.RoomOptions)

	// Seller registers and responds with an offer
	resp, raw = doJSON(t, app, http.MethodPost, "/users", fiber.Map{
		"phone": "+905559998877", "user_type": "seller",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var seller struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(raw, &seller))
	assert.Equal(t, uint(2), seller.ID)

	resp, raw = doJSON(t, app, http.MethodPost, fmt.Sprintf("/requests/%d/offers", request.ID), fiber.Map{
		"seller_id": seller.ID,
		"price":     6800000,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var offer struct {
		ID     uint     `json:"id"`
		Status string   `json:"status"`
		Photos []string `json:"photos"`
	}
	require.NoError(t, json.Unmarshal(raw, &offer))
	assert.Equal(t, "sent", offer.Status)
	assert.Nil(t, offer.Photos)

	// Buyer accepts
	resp, raw = doJSON(t, app, http.MethodPatch, fmt.Sprintf("/offers/%d?status=accepted", offer.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(raw, &offer))
	assert.Equal(t, "accepted", offer.Status)

	// Chat on the offer, both directions
	resp, _ = doJSON(t, app, http.MethodPost, fmt.Sprintf("/offers/%d/messages", offer.ID), fiber.Map{
		"sender_id": buyer.ID, "body": "Merhaba",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = doJSON(t, app, http.MethodPost, fmt.Sprintf("/offers/%d/messages", offer.ID), fiber.Map{
		"sender_id": seller.ID, "body": "Selam",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, raw = doJSON(t, app, http.MethodGet, fmt.Sprintf("/offers/%d/messages", offer.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var msgs []struct {
		SenderID uint   `json:"sender_id"`
		Body     string `json:"body"`
	}
	require.NoError(t, json.Unmarshal(raw, &msgs))
	require.Len(t, msgs, 2)
	assert.Equal(t, "Merhaba", msgs[0].Body)
	assert.Equal(t, "Selam", msgs[1].Body)
}

func TestNotFoundContract(t *testing.T) {
	app := setupTestApp(t)

	cases := []struct {
		method, path string
		body         interface{}
		message      string
	}{
		{http.MethodGet, "/users/99999", nil, "User not found"},
		{http.MethodGet, "/requests/99999", nil, "Request not found"},
		{http.MethodPost, "/requests", fiber.Map{"user_id": 99999, "title": "x", "city": "Bursa", "district": "Mudanya", "neighbourhood": "Trilye", "budget_max": 1}, "User not found"},
		{http.MethodPost, "/requests/99999/offers", fiber.Map{"seller_id": 1, "price": 1}, "Request not found"},
		{http.MethodGet, "/requests/99999/offers", nil, "Request not found"},
		{http.MethodPatch, "/offers/99999?status=accepted", nil, "Offer not found"},
		{http.MethodPost, "/offers/99999/messages", fiber.Map{"sender_id": 1, "body": "hi"}, "Offer not found"},
		{http.MethodGet, "/offers/99999/messages", nil, "Offer not found"},
	}

	for _, tc := range cases {
		resp, raw := doJSON(t, app, tc.method, tc.path, tc.body)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, "%s %s", tc.method, tc.path)
		assert.Contains(t, string(raw), tc.message)
	}
}

func TestUpdateOfferStatusRejectsUnknownValue(t *testing.T) {
	app := setupTestApp(t)

	// Seed one offer through the API
	_, raw := doJSON(t, app, http.MethodPost, "/users", fiber.Map{"phone": "+905551112233"})
	var buyer struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(raw, &buyer))

	_, raw = doJSON(t, app, http.MethodPost, "/users", fiber.Map{"phone": "+905559998877", "user_type": "seller"})
	var seller struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(raw, &seller))

	_, raw = doJSON(t, app, http.MethodPost, "/requests", fiber.Map{
		"user_id": buyer.ID, "title": "x", "city": "Bursa", "district": "Mudanya",
		"neighbourhood": "Trilye", "budget_max": 1000000,
	})
	var request struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(raw, &request))

	_, raw = doJSON(t, app, http.MethodPost, fmt.Sprintf("/requests/%d/offers", request.ID), fiber.Map{
		"seller_id": seller.ID, "price": 1,
	})
	var offer struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(raw, &offer))

	resp, raw := doJSON(t, app, http.MethodPatch, fmt.Sprintf("/offers/%d?status=archived", offer.ID), nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(raw), "Invalid status")

	// Status stayed at sent
	resp, raw = doJSON(t, app, http.MethodGet, fmt.Sprintf("/requests/%d/offers", request.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var offers []struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(raw, &offers))
	require.Len(t, offers, 1)
	assert.Equal(t, "sent", offers[0].Status)
}

func TestCreateUserRequiresPhone(t *testing.T) {
	app := setupTestApp(t)

	resp, raw := doJSON(t, app, http.MethodPost, "/users", fiber.Map{"name": "Ayşe"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(raw), "phone is required")

	// Nothing was registered under an empty phone
	resp, _ = doJSON(t, app, http.MethodGet, "/users/1", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateRequestRequiresFields(t *testing.T) {
	app := setupTestApp(t)

	_, raw := doJSON(t, app, http.MethodPost, "/users", fiber.Map{"phone": "+905551112233"})
	var buyer struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(raw, &buyer))

	resp, raw := doJSON(t, app, http.MethodPost, "/requests", fiber.Map{"user_id": buyer.ID})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(raw), "is required")

	resp, raw = doJSON(t, app, http.MethodGet, "/requests", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, "[]", string(raw))
}

func TestListRequestsInvalidMaxBudget(t *testing.T) {
	app := setupTestApp(t)

	resp, raw := doJSON(t, app, http.MethodGet, "/requests?max_budget=abc", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(raw), "Invalid max_budget")
}

func TestListRequestsBudgetFilter(t *testing.T) {
	app := setupTestApp(t)

	_, raw := doJSON(t, app, http.MethodPost, "/users", fiber.Map{"phone": "+905551112233"})
	var buyer struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(raw, &buyer))

	for _, budget := range []float64{3000000, 5000000, 8000000} {
		resp, _ := doJSON(t, app, http.MethodPost, "/requests", fiber.Map{
			"user_id": buyer.ID, "title": "x", "city": "Bursa", "district": "Mudanya",
			"neighbourhood": "Trilye", "budget_max": budget,
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, raw := doJSON(t, app, http.MethodGet, "/requests?max_budget=5000000", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var results []struct {
		BudgetMax float64 `json:"budget_max"`
	}
	require.NoError(t, json.Unmarshal(raw, &results))
	require.Len(t, results, 2)
	for _, r := range results {
		assert.LessOrEqual(t, r.BudgetMax, float64(5000000))
	}
}
