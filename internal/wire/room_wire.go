package wire

import (
	"time"

	"room-booking/internal/adaptor"
	"room-booking/internal/data/repository"
	"room-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

func wireRoom(
	r chi.Router,
	roomHandler *adaptor.RoomHandler,
	repo *repository.Repository,
	store *cache.Cache,
	cacheTTL time.Duration,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// The room catalog changes rarely; serve it through the response cache.
	r.With(middleware.Cache(store, cacheTTL)).Get("/api/rooms", roomHandler.GetRooms)
	r.With(middleware.Cache(store, cacheTTL)).Get("/api/rooms/{id}", roomHandler.GetRoomByID)

	// Availability views are read fresh: a cached grid would show slots as
	// free after someone books them.
	r.Get("/api/rooms/{id}/slots", roomHandler.TimeSlots)
	r.Post("/api/rooms/available", roomHandler.AvailableRooms)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/rooms", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Post("/", roomHandler.CreateRoom)
		r.Put("/{id}", roomHandler.UpdateRoom)
		r.Delete("/{id}", roomHandler.DeleteRoom)
	})
}
