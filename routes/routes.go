package routes

import (
	"os"

	"tour-contact/cache"
	inquiryController "tour-contact/controllers/inquiry"
	"tour-contact/httpServices/mailer"
	"tour-contact/logger"
	"tour-contact/metrics"
	"tour-contact/middleware"
	inquiryService "tour-contact/services/inquiry"
	"tour-contact/services/notifier"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@tourtravels.example.com"
	}

	mailClient := mailer.NewClientFromEnv()
	inquiryNotifier := notifier.New(mailClient, adminEmail)
	cacheStore := cache.NewMemory()
	asyncLogger := logger.NewAsyncLogger(db)

	service := inquiryService.NewService(db, cacheStore, inquiryNotifier)
	controller := inquiryController.NewInquiryController(service, asyncLogger)

	// Start the async request logger processing goroutine
	go asyncLogger.ProcessLog()

	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(metrics.Middleware())

	// Health and operational endpoints
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "tour-contact",
		})
	})
	app.Get("/metrics", metrics.Handler())

	/*=============================================================================
	| Contact Inquiry Routes
	===============================================================================*/
	api := app.Group("/api/contact")
	inquiries := api.Group("/inquiries")

	// Public routes
	inquiries.Get("/", controller.List)
	inquiries.Post("/", controller.Create)
	inquiries.Get("/statistics", middleware.RequireAdmin(), controller.Statistics)
	inquiries.Get("/recent", controller.Recent)
	inquiries.Get("/:id", controller.Get)

	// Administrative routes (guard active only when ADMIN_JWT_SECRET is set)
	inquiries.Put("/:id", middleware.RequireAdmin(), controller.Update)
	inquiries.Patch("/:id", middleware.RequireAdmin(), controller.PartialUpdate)
	inquiries.Delete("/:id", middleware.RequireAdmin(), controller.Delete)
	inquiries.Post("/:id/update-status", middleware.RequireAdmin(), controller.UpdateStatus)
}
