package router

import (
	"net/http"

	bookingHandler "rental-service/internal/module/booking/handler"
	bookingIssueHandler "rental-service/internal/module/bookingissue/handler"
	carHandler "rental-service/internal/module/car/handler"
	locationHandler "rental-service/internal/module/location/handler"
	maintenanceHandler "rental-service/internal/module/maintenance/handler"
	paymentHandler "rental-service/internal/module/payment/handler"
	refundHandler "rental-service/internal/module/refund/handler"
	reviewHandler "rental-service/internal/module/review/handler"
	userHandler "rental-service/internal/module/user/handler"
	"rental-service/internal/pkg/lookup"
	"rental-service/internal/pkg/middleware"
	"rental-service/internal/pkg/scheduler"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

type Handlers struct {
	Booking      *bookingHandler.BookingHandler
	Car          *carHandler.CarHandler
	Payment      *paymentHandler.PaymentHandler
	Refund       *refundHandler.RefundHandler
	Review       *reviewHandler.ReviewHandler
	Maintenance  *maintenanceHandler.MaintenanceHandler
	BookingIssue *bookingIssueHandler.BookingIssueHandler
	User         *userHandler.UserHandler
	Location     *locationHandler.LocationHandler
}

func Initialize(app *fiber.App, h Handlers, m *middleware.Middleware, monitoring http.Handler) *fiber.App {
	// health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("OK")
	})

	admin := m.RequireRoles(lookup.RoleAdmin)
	staff := m.RequireRoles(lookup.RoleAdmin, lookup.RoleRentalAgent)
	customer := m.RequireRoles(lookup.RoleCustomer)
	anyone := m.RequireRoles(lookup.RoleAdmin, lookup.RoleRentalAgent, lookup.RoleCustomer)

	if monitoring != nil {
		app.All(scheduler.MonitoringPath+"/*", m.ValidateToken, admin, adaptor.HTTPHandler(monitoring))
	}

	v1 := app.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.Post("/register", h.User.Register)
	auth.Post("/register-by-admin", m.ValidateToken, admin, h.User.RegisterByAdmin)
	auth.Post("/login", h.User.Login)

	cars := v1.Group("/cars")
	cars.Get("/", h.Car.GetAll)
	cars.Post("/search", h.Car.Search)
	cars.Get("/:id", h.Car.GetByID)
	cars.Get("/:id/availability", h.Car.CheckAvailability)
	cars.Post("/", m.ValidateToken, staff, h.Car.Create)
	cars.Put("/:id", m.ValidateToken, staff, h.Car.Update)
	cars.Patch("/:id/status", m.ValidateToken, staff, h.Car.SetStatus)
	cars.Delete("/:id", m.ValidateToken, staff, h.Car.Delete)

	bookings := v1.Group("/bookings")
	bookings.Post("/quote", h.Booking.Quote)
	bookings.Post("/", m.ValidateToken, customer, h.Booking.CreateBooking)
	bookings.Get("/mine", m.ValidateToken, customer, h.Booking.GetMine)
	bookings.Get("/", m.ValidateToken, staff, h.Booking.GetAll)
	bookings.Get("/:id", m.ValidateToken, staff, h.Booking.GetByID)
	bookings.Post("/:id/cancel", m.ValidateToken, customer, h.Booking.Cancel)
	bookings.Patch("/:id/status", m.ValidateToken, staff, h.Booking.UpdateStatus)
	bookings.Delete("/:id", m.ValidateToken, admin, h.Booking.Delete)

	payments := v1.Group("/payments", m.ValidateToken)
	payments.Post("/", anyone, h.Payment.Pay)
	payments.Get("/mine", customer, h.Payment.GetMine)
	payments.Get("/", staff, h.Payment.GetAll)
	payments.Get("/:id", staff, h.Payment.GetByID)

	refunds := v1.Group("/refunds", m.ValidateToken)
	refunds.Post("/request", customer, h.Refund.Request)
	refunds.Get("/mine", customer, h.Refund.GetMine)
	refunds.Get("/", staff, h.Refund.GetAll)
	refunds.Get("/:id", staff, h.Refund.GetByID)
	refunds.Post("/:id/approve", staff, h.Refund.Approve)
	refunds.Post("/:id/reject", staff, h.Refund.Reject)

	reviews := v1.Group("/reviews")
	reviews.Get("/car/:id", h.Review.GetByCar)
	reviews.Get("/mine", m.ValidateToken, customer, h.Review.GetMine)
	reviews.Post("/", m.ValidateToken, customer, h.Review.Create)
	reviews.Get("/:id", m.ValidateToken, staff, h.Review.GetByID)
	reviews.Put("/:id", m.ValidateToken, customer, h.Review.Update)
	reviews.Delete("/:id", m.ValidateToken, anyone, h.Review.Delete)

	maintenance := v1.Group("/maintenancerequests", m.ValidateToken)
	maintenance.Post("/", anyone, h.Maintenance.Create)
	maintenance.Get("/open", staff, h.Maintenance.GetOpen)
	maintenance.Get("/car/:id", staff, h.Maintenance.GetByCar)
	maintenance.Get("/mine", anyone, h.Maintenance.GetMine)
	maintenance.Get("/:id", staff, h.Maintenance.GetByID)
	maintenance.Patch("/:id/resolve", staff, h.Maintenance.Resolve)

	issues := v1.Group("/bookingissues", m.ValidateToken)
	issues.Post("/", customer, h.BookingIssue.Create)
	issues.Get("/mine", customer, h.BookingIssue.GetMine)
	issues.Get("/", staff, h.BookingIssue.GetAll)
	issues.Get("/booking/:id", staff, h.BookingIssue.GetByBooking)
	issues.Patch("/:id/status", staff, h.BookingIssue.UpdateStatus)

	users := v1.Group("/users", m.ValidateToken)
	users.Get("/me", h.User.Me)
	users.Post("/", admin, h.User.RegisterByAdmin)
	users.Get("/", admin, h.User.GetAll)
	users.Get("/:id", admin, h.User.GetByID)
	users.Put("/:id", admin, h.User.Update)
	users.Delete("/:id", admin, h.User.Delete)
	users.Patch("/:id/role", admin, h.User.ChangeRole)
	users.Patch("/:id/status", admin, h.User.SetActive)

	locations := v1.Group("/locations")
	locations.Get("/", h.Location.GetAll)
	locations.Get("/:id", h.Location.GetByID)
	locations.Post("/", m.ValidateToken, staff, h.Location.Create)
	locations.Put("/:id", m.ValidateToken, staff, h.Location.Update)
	locations.Delete("/:id", m.ValidateToken, staff, h.Location.Delete)

	return app
}
