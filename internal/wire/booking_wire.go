package wire

import (
	"room-booking/internal/adaptor"
	"room-booking/internal/data/repository"
	"room-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// POST /api/bookings - Reserve slots in a room
		r.Post("/api/bookings", bookingHandler.CreateBooking)

		// GET /api/bookings - View own booking history
		r.Get("/api/bookings", bookingHandler.GetUserBookings)

		// DELETE /api/bookings/{id} - Cancel own booking
		r.Delete("/api/bookings/{id}", bookingHandler.DeleteBooking)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/bookings", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		// GET /api/admin/bookings - View every booking
		r.Get("/", bookingHandler.GetAllBookings)

		// PATCH /api/admin/bookings/{id}/status - Approve or reject
		r.Patch("/{id}/status", bookingHandler.UpdateBookingStatus)

		// POST /api/admin/bookings/sweep - Mark ended bookings completed
		r.Post("/sweep", bookingHandler.SweepCompleted)
	})
}
