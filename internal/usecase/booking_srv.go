package usecase

import (
	"context"
	"fmt"
	"time"

	"room-booking/internal/data/entity"
	"room-booking/internal/data/repository"
	"room-booking/internal/dto/request"
	"room-booking/internal/dto/response"
	"room-booking/internal/scheduler"
	"room-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	// CreateBooking runs the admission checks and persists the booking on
	// success. The returned booking carries the initial status the
	// scheduler decided.
	CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingResponse, error)

	GetUserBookings(ctx context.Context, userID string) ([]response.BookingResponse, error)
	GetAllBookings(ctx context.Context) ([]response.BookingResponse, error)
	DeleteBooking(ctx context.Context, userID string, isAdmin bool, bookingID string) error

	// Decide is the admin approve/reject action.
	Decide(ctx context.Context, bookingID string, status string) (*response.BookingResponse, error)

	// CompleteExpired promotes approved bookings whose end has passed to
	// completed.
	CompleteExpired(ctx context.Context) (*response.SweepResponse, error)
}

type bookingService struct {
	repo     *repository.Repository
	notifier Notifier
	log      *zap.Logger
	now      func() time.Time
}

func NewBookingService(repo *repository.Repository, notifier Notifier, log *zap.Logger) BookingService {
	return &bookingService{
		repo:     repo,
		notifier: notifier,
		log:      log.With(zap.String("service", "booking")),
		now:      time.Now,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	roomUUID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return nil, fmt.Errorf("invalid room ID format %s: %w", req.RoomID, err)
	}

	user, err := s.repo.User.FindByID(ctx, userUUID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, ErrNotFound
	}

	room, err := s.repo.Room.FindByID(ctx, roomUUID)
	if err != nil {
		return nil, fmt.Errorf("find room: %w", err)
	}
	if room == nil {
		return nil, ErrNotFound
	}

	roomBookings, err := s.repo.Booking.FindActiveByRoomAndDate(ctx, roomUUID, req.Date)
	if err != nil {
		s.log.Error("Failed to load room bookings",
			zap.Error(err),
			zap.String("room_id", req.RoomID),
			zap.String("date", req.Date))
		return nil, fmt.Errorf("load room bookings: %w", err)
	}

	monthStart, monthEnd, err := monthBounds(req.Date)
	if err != nil {
		return nil, err
	}
	userBookings, err := s.repo.Booking.FindActiveByUserBetween(ctx, userUUID, monthStart, monthEnd)
	if err != nil {
		s.log.Error("Failed to load user month bookings",
			zap.Error(err),
			zap.String("user_id", userID))
		return nil, fmt.Errorf("load user bookings: %w", err)
	}

	slots := make([]scheduler.TimeRange, len(req.TimeSlots))
	for i, slot := range req.TimeSlots {
		slots[i] = scheduler.TimeRange{Start: slot.StartTime, End: slot.EndTime}
	}

	admitted, err := scheduler.Admit(scheduler.Request{
		User: scheduler.User{ID: userID, Role: scheduler.Role(user.Role)},
		Room: scheduler.Room{
			ID:               req.RoomID,
			Name:             room.Name,
			Capacity:         room.Capacity,
			RequiresApproval: room.RequiresApproval,
		},
		Date:    req.Date,
		Slots:   slots,
		Purpose: req.Purpose,
	}, windows(roomBookings), windows(userBookings), s.now())
	if err != nil {
		s.log.Warn("Booking not admitted",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("room_id", req.RoomID),
			zap.String("date", req.Date))
		return nil, err
	}

	now := s.now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		RoomID:    roomUUID,
		UserID:    userUUID,
		Date:      admitted.Date,
		StartTime: admitted.Start,
		EndTime:   admitted.End,
		TimeSlots: admitted.Slots,
		Purpose:   admitted.Purpose,
		Status:    entity.BookingStatus(admitted.Status),
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("room_id", req.RoomID))
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("user_id", userID),
		zap.String("room", room.Name),
		zap.String("date", booking.Date),
		zap.String("envelope", booking.StartTime+"-"+booking.EndTime),
		zap.Float64("duration_hours", admitted.DurationHours),
		zap.String("status", string(booking.Status)),
	)

	s.notifier.BookingSubmitted(ctx, booking, user, room)

	resp := response.BookingToResponse(booking, room, user)
	return &resp, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID string) ([]response.BookingResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	bookings, err := s.repo.Booking.FindByUserID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to get user bookings", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("get user bookings: %w", err)
	}

	return s.buildBookingResponses(ctx, bookings), nil
}

func (s *bookingService) GetAllBookings(ctx context.Context) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get bookings", zap.Error(err))
		return nil, fmt.Errorf("get bookings: %w", err)
	}

	return s.buildBookingResponses(ctx, bookings), nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, userID string, isAdmin bool, bookingID string) error {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return ErrNotFound
	}

	if !isAdmin && booking.UserID.String() != userID {
		return ErrForbidden
	}

	if err := s.repo.Booking.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete booking", zap.Error(err), zap.String("booking_id", bookingID))
		return fmt.Errorf("delete booking: %w", err)
	}

	return nil
}

func (s *bookingService) Decide(ctx context.Context, bookingID string, status string) (*response.BookingResponse, error) {
	decided := entity.BookingStatus(status)
	if decided != entity.BookingStatusApproved && decided != entity.BookingStatusRejected {
		return nil, ErrInvalidStatus
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, ErrNotFound
	}

	if err := s.repo.Booking.UpdateStatus(ctx, id, decided); err != nil {
		s.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID),
			zap.String("status", status))
		return nil, fmt.Errorf("update booking status: %w", err)
	}
	booking.Status = decided

	s.log.Info("Booking decided",
		zap.String("booking_id", bookingID),
		zap.String("status", status))

	s.notifier.BookingDecided(ctx, booking, decided)

	room, _ := s.repo.Room.FindByID(ctx, booking.RoomID)
	user, _ := s.repo.User.FindByID(ctx, booking.UserID)

	resp := response.BookingToResponse(booking, room, user)
	return &resp, nil
}

func (s *bookingService) CompleteExpired(ctx context.Context) (*response.SweepResponse, error) {
	now := s.now()
	currentDate := now.Format(scheduler.DateLayout)
	currentTime := now.Format("15:04")

	updated, err := s.repo.Booking.CompleteExpired(ctx, currentDate, currentTime)
	if err != nil {
		s.log.Error("Failed to run completion sweep", zap.Error(err))
		return nil, fmt.Errorf("complete expired bookings: %w", err)
	}

	if updated > 0 {
		s.log.Info("Bookings marked completed", zap.Int64("count", updated))
	}

	return &response.SweepResponse{
		UpdatedCount: updated,
		CurrentDate:  currentDate,
		CurrentTime:  currentTime,
	}, nil
}

func (s *bookingService) buildBookingResponses(ctx context.Context, bookings []*entity.Booking) []response.BookingResponse {
	responses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		room, _ := s.repo.Room.FindByID(ctx, booking.RoomID)
		user, _ := s.repo.User.FindByID(ctx, booking.UserID)
		responses[i] = response.BookingToResponse(booking, room, user)
	}
	return responses
}

// monthBounds returns the first and last calendar day of the month containing
// date, in DateLayout.
func monthBounds(date string) (string, string, error) {
	day, err := time.Parse(scheduler.DateLayout, date)
	if err != nil {
		return "", "", &scheduler.ValidationError{Reason: "invalid date " + date}
	}

	first := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	return first.Format(scheduler.DateLayout), last.Format(scheduler.DateLayout), nil
}
