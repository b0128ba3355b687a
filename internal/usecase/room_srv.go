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

type RoomService interface {
	CreateRoom(ctx context.Context, req *request.CreateRoomRequest) (*response.RoomResponse, error)
	UpdateRoom(ctx context.Context, roomID string, req *request.UpdateRoomRequest) (*response.RoomResponse, error)
	DeleteRoom(ctx context.Context, roomID string) error
	GetRooms(ctx context.Context) ([]response.RoomResponse, error)
	GetRoomByID(ctx context.Context, roomID string) (*response.RoomResponse, error)

	// TimeSlots is the read path of the availability engine: the daily grid
	// for one room and date with each slot marked takeable or not.
	TimeSlots(ctx context.Context, req *request.TimeSlotsRequest) ([]response.TimeSlotStatusResponse, error)

	// AvailableRooms checks every room against a requested slot selection.
	AvailableRooms(ctx context.Context, req *request.AvailableRoomsRequest) ([]response.RoomAvailabilityResponse, error)
}

type roomService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRoomService(repo *repository.Repository, log *zap.Logger) RoomService {
	return &roomService{
		repo: repo,
		log:  log.With(zap.String("service", "room")),
	}
}

func (s *roomService) CreateRoom(ctx context.Context, req *request.CreateRoomRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create room validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.Room.FindByName(ctx, req.Name)
	if err != nil {
		s.log.Error("Failed to check room name", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("check room name: %w", err)
	}
	if existing != nil {
		return nil, ErrRoomNameTaken
	}

	// Unless the request decides, sensitivity follows the room name.
	requiresApproval := scheduler.RequiresApprovalByName(req.Name)
	if req.RequiresApproval != nil {
		requiresApproval = *req.RequiresApproval
	}

	now := time.Now()
	room := &entity.Room{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:             req.Name,
		Description:      req.Description,
		Capacity:         req.Capacity,
		Amenities:        req.Amenities,
		Images:           req.Images,
		RequiresApproval: requiresApproval,
	}

	if err := s.repo.Room.Create(ctx, room); err != nil {
		s.log.Error("Failed to create room", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create room: %w", err)
	}

	s.log.Info("Room created",
		zap.String("room_id", room.ID.String()),
		zap.String("name", room.Name),
		zap.Bool("requires_approval", room.RequiresApproval))

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) UpdateRoom(ctx context.Context, roomID string, req *request.UpdateRoomRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update room validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(roomID)
	if err != nil {
		return nil, fmt.Errorf("invalid room ID format %s: %w", roomID, err)
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find room: %w", err)
	}
	if room == nil {
		return nil, ErrNotFound
	}

	requiresApproval := scheduler.RequiresApprovalByName(req.Name)
	if req.RequiresApproval != nil {
		requiresApproval = *req.RequiresApproval
	}

	room.Name = req.Name
	room.Description = req.Description
	room.Capacity = req.Capacity
	room.Amenities = req.Amenities
	room.Images = req.Images
	room.RequiresApproval = requiresApproval
	room.UpdatedAt = time.Now()

	if err := s.repo.Room.Update(ctx, room); err != nil {
		s.log.Error("Failed to update room", zap.Error(err), zap.String("room_id", roomID))
		return nil, fmt.Errorf("update room: %w", err)
	}

	s.log.Info("Room updated", zap.String("room_id", roomID))

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) DeleteRoom(ctx context.Context, roomID string) error {
	id, err := uuid.Parse(roomID)
	if err != nil {
		return fmt.Errorf("invalid room ID format %s: %w", roomID, err)
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find room: %w", err)
	}
	if room == nil {
		return ErrNotFound
	}

	if err := s.repo.Room.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete room", zap.Error(err), zap.String("room_id", roomID))
		return fmt.Errorf("delete room: %w", err)
	}

	return nil
}

func (s *roomService) GetRooms(ctx context.Context) ([]response.RoomResponse, error) {
	rooms, err := s.repo.Room.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get rooms", zap.Error(err))
		return nil, fmt.Errorf("get rooms: %w", err)
	}

	responses := make([]response.RoomResponse, len(rooms))
	for i, room := range rooms {
		responses[i] = response.RoomToResponse(room)
	}

	return responses, nil
}

func (s *roomService) GetRoomByID(ctx context.Context, roomID string) (*response.RoomResponse, error) {
	id, err := uuid.Parse(roomID)
	if err != nil {
		return nil, fmt.Errorf("invalid room ID format %s: %w", roomID, err)
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find room: %w", err)
	}
	if room == nil {
		return nil, ErrNotFound
	}

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) TimeSlots(ctx context.Context, req *request.TimeSlotsRequest) ([]response.TimeSlotStatusResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Time slots validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return nil, fmt.Errorf("invalid room ID format %s: %w", req.RoomID, err)
	}

	room, err := s.repo.Room.FindByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("find room: %w", err)
	}
	if room == nil {
		return nil, ErrNotFound
	}

	bookings, err := s.repo.Booking.FindActiveByRoomAndDate(ctx, roomID, req.Date)
	if err != nil {
		s.log.Error("Failed to load bookings for slot view",
			zap.Error(err),
			zap.String("room_id", req.RoomID),
			zap.String("date", req.Date))
		return nil, fmt.Errorf("load bookings: %w", err)
	}

	statuses, err := scheduler.SlotAvailability(windows(bookings))
	if err != nil {
		return nil, fmt.Errorf("compute slot availability: %w", err)
	}

	return response.SlotStatusesToResponse(statuses), nil
}

func (s *roomService) AvailableRooms(ctx context.Context, req *request.AvailableRoomsRequest) ([]response.RoomAvailabilityResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Available rooms validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	rooms, err := s.repo.Room.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get rooms", zap.Error(err))
		return nil, fmt.Errorf("get rooms: %w", err)
	}

	bookings, err := s.repo.Booking.FindActiveByDate(ctx, req.Date)
	if err != nil {
		s.log.Error("Failed to load bookings", zap.Error(err), zap.String("date", req.Date))
		return nil, fmt.Errorf("load bookings: %w", err)
	}

	byRoom := make(map[uuid.UUID][]scheduler.BookingWindow)
	for _, b := range bookings {
		byRoom[b.RoomID] = append(byRoom[b.RoomID], b.Window())
	}

	requested := make([]scheduler.TimeRange, len(req.TimeSlots))
	for i, slot := range req.TimeSlots {
		requested[i] = scheduler.TimeRange{Start: slot.StartTime, End: slot.EndTime}
	}

	responses := make([]response.RoomAvailabilityResponse, len(rooms))
	for i, room := range rooms {
		result, err := scheduler.ComputeAvailability(requested, byRoom[room.ID])
		if err != nil {
			return nil, fmt.Errorf("compute availability for room %s: %w", room.ID.String(), err)
		}

		responses[i] = response.RoomAvailabilityResponse{
			RoomResponse: response.RoomToResponse(room),
			IsAvailable:  result.Available,
		}
	}

	s.log.Info("Room availability computed",
		zap.String("date", req.Date),
		zap.Int("rooms", len(rooms)),
		zap.Int("slots", len(req.TimeSlots)))

	return responses, nil
}

func windows(bookings []*entity.Booking) []scheduler.BookingWindow {
	out := make([]scheduler.BookingWindow, len(bookings))
	for i, b := range bookings {
		out[i] = b.Window()
	}
	return out
}
