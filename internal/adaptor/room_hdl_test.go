package adaptor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"room-booking/internal/dto/request"
	"room-booking/internal/dto/response"
	"room-booking/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubRoomService struct {
	slotsFn     func(ctx context.Context, req *request.TimeSlotsRequest) ([]response.TimeSlotStatusResponse, error)
	availableFn func(ctx context.Context, req *request.AvailableRoomsRequest) ([]response.RoomAvailabilityResponse, error)
}

func (s *stubRoomService) CreateRoom(context.Context, *request.CreateRoomRequest) (*response.RoomResponse, error) {
	return nil, nil
}

func (s *stubRoomService) UpdateRoom(context.Context, string, *request.UpdateRoomRequest) (*response.RoomResponse, error) {
	return nil, nil
}

func (s *stubRoomService) DeleteRoom(context.Context, string) error { return nil }

func (s *stubRoomService) GetRooms(context.Context) ([]response.RoomResponse, error) {
	return nil, nil
}

func (s *stubRoomService) GetRoomByID(context.Context, string) (*response.RoomResponse, error) {
	return nil, usecase.ErrNotFound
}

func (s *stubRoomService) TimeSlots(ctx context.Context, req *request.TimeSlotsRequest) ([]response.TimeSlotStatusResponse, error) {
	return s.slotsFn(ctx, req)
}

func (s *stubRoomService) AvailableRooms(ctx context.Context, req *request.AvailableRoomsRequest) ([]response.RoomAvailabilityResponse, error) {
	return s.availableFn(ctx, req)
}

// routes the request through chi so URL params resolve.
func serveWithRouter(handler *RoomHandler, method, target string, body string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Get("/api/rooms/{id}", handler.GetRoomByID)
	r.Get("/api/rooms/{id}/slots", handler.TimeSlots)
	r.Post("/api/rooms/available", handler.AvailableRooms)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	r.ServeHTTP(rec, req)
	return rec
}

func TestTimeSlotsHandler(t *testing.T) {
	roomID := uuid.NewString()
	handler := NewRoomHandler(&stubRoomService{
		slotsFn: func(_ context.Context, req *request.TimeSlotsRequest) ([]response.TimeSlotStatusResponse, error) {
			assert.Equal(t, roomID, req.RoomID)
			assert.Equal(t, "2026-03-15", req.Date)
			return []response.TimeSlotStatusResponse{
				{StartTime: "09:00", EndTime: "09:30", IsAvailable: true},
			}, nil
		},
	}, zap.NewNop())

	rec := serveWithRouter(handler, http.MethodGet, "/api/rooms/"+roomID+"/slots?date=2026-03-15", "")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []response.TimeSlotStatusResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.True(t, body.Data[0].IsAvailable)
}

func TestTimeSlotsHandlerMissingDate(t *testing.T) {
	handler := NewRoomHandler(&stubRoomService{}, zap.NewNop())

	rec := serveWithRouter(handler, http.MethodGet, "/api/rooms/"+uuid.NewString()+"/slots", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAvailableRoomsHandler(t *testing.T) {
	handler := NewRoomHandler(&stubRoomService{
		availableFn: func(_ context.Context, req *request.AvailableRoomsRequest) ([]response.RoomAvailabilityResponse, error) {
			require.Len(t, req.TimeSlots, 1)
			return []response.RoomAvailabilityResponse{
				{RoomResponse: response.RoomResponse{Name: "Focus Room"}, IsAvailable: true},
			}, nil
		},
	}, zap.NewNop())

	rec := serveWithRouter(handler, http.MethodPost, "/api/rooms/available",
		`{"date": "2026-03-15", "timeSlots": [{"startTime": "09:00", "endTime": "09:30"}]}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetRoomByIDHandlerNotFound(t *testing.T) {
	handler := NewRoomHandler(&stubRoomService{}, zap.NewNop())

	rec := serveWithRouter(handler, http.MethodGet, "/api/rooms/"+uuid.NewString(), "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
