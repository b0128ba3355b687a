package usecase

import (
	"context"

	"room-booking/internal/data/entity"

	"go.uber.org/zap"
)

// Notifier is the outbound notification boundary. It is invoked only after a
// booking change has been committed; implementations must not fail the
// request path.
type Notifier interface {
	BookingSubmitted(ctx context.Context, booking *entity.Booking, user *entity.User, room *entity.Room)
	BookingDecided(ctx context.Context, booking *entity.Booking, status entity.BookingStatus)
}

// logNotifier records notifications in the application log instead of
// delivering them. Stands in for the mail sender in development.
type logNotifier struct {
	log *zap.Logger
}

func NewLogNotifier(log *zap.Logger) Notifier {
	return &logNotifier{log: log.With(zap.String("service", "notifier"))}
}

func (n *logNotifier) BookingSubmitted(ctx context.Context, booking *entity.Booking, user *entity.User, room *entity.Room) {
	n.log.Info("Booking submitted notification",
		zap.String("booking_id", booking.ID.String()),
		zap.String("user", user.Email),
		zap.String("room", room.Name),
		zap.String("date", booking.Date),
		zap.String("status", string(booking.Status)),
	)
}

func (n *logNotifier) BookingDecided(ctx context.Context, booking *entity.Booking, status entity.BookingStatus) {
	n.log.Info("Booking decision notification",
		zap.String("booking_id", booking.ID.String()),
		zap.String("status", string(status)),
	)
}
