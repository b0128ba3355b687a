package usecase

import (
	"room-booking/internal/data/repository"
	"room-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Room    RoomService
	Booking BookingService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	notifier := NewLogNotifier(log)

	return &Service{
		Auth:    NewAuthService(repo, config, log),
		Room:    NewRoomService(repo, log),
		Booking: NewBookingService(repo, notifier, log),
	}
}
