package routes

import (
	"time"

	"github.com/Ataalp23/emlak-talep-backend/internal/handlers"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	healthHandler *handlers.HealthHandler,
	userHandler *handlers.UserHandler,
	requestHandler *handlers.RequestHandler,
	offerHandler *handlers.OfferHandler,
	messageHandler *handlers.MessageHandler,
) {
	// Liveness + health (not rate limited)
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.Check)

	// General rate limiter: 60 req/min per IP
	app.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Users
	app.Post("/users", userHandler.Create)
	app.Get("/users/:id", userHandler.Get)

	// Buyer requests
	app.Post("/requests", requestHandler.Create)
	app.Get("/requests", requestHandler.List)
	app.Get("/requests/:id", requestHandler.Get)

	// Offers
	app.Post("/requests/:id/offers", offerHandler.Create)
	app.Get("/requests/:id/offers", offerHandler.ListForRequest)
	app.Patch("/offers/:id", offerHandler.UpdateStatus)

	// Messages
	app.Post("/offers/:id/messages", messageHandler.Create)
	app.Get("/offers/:id/messages", messageHandler.List)
}
