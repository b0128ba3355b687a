package usecase

import (
	"context"
	"strings"
	"time"

	"room-booking/internal/data/entity"
	"room-booking/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// In-memory repositories backing the service tests.

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

type fakeSessionRepo struct {
	sessions map[uuid.UUID]*entity.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[uuid.UUID]*entity.Session)}
}

func (r *fakeSessionRepo) Create(_ context.Context, session *entity.Session) error {
	r.sessions[session.Token] = session
	return nil
}

func (r *fakeSessionRepo) FindValidSession(_ context.Context, token string) (*entity.Session, error) {
	id, err := uuid.Parse(token)
	if err != nil {
		return nil, nil
	}
	s, ok := r.sessions[id]
	if !ok || s.RevokedAt != nil || s.ExpiresAt.Before(time.Now()) {
		return nil, nil
	}
	return s, nil
}

func (r *fakeSessionRepo) Revoke(_ context.Context, token string) error {
	id, err := uuid.Parse(token)
	if err != nil {
		return nil
	}
	if s, ok := r.sessions[id]; ok {
		now := time.Now()
		s.RevokedAt = &now
	}
	return nil
}

func (r *fakeSessionRepo) RevokeAllUserSessions(_ context.Context, userID uuid.UUID) error {
	now := time.Now()
	for _, s := range r.sessions {
		if s.UserID == userID {
			s.RevokedAt = &now
		}
	}
	return nil
}

type fakeRoomRepo struct {
	rooms map[uuid.UUID]*entity.Room
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{rooms: make(map[uuid.UUID]*entity.Room)}
}

func (r *fakeRoomRepo) Create(_ context.Context, room *entity.Room) error {
	r.rooms[room.ID] = room
	return nil
}

func (r *fakeRoomRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Room, error) {
	return r.rooms[id], nil
}

func (r *fakeRoomRepo) FindByName(_ context.Context, name string) (*entity.Room, error) {
	for _, room := range r.rooms {
		if strings.EqualFold(room.Name, name) {
			return room, nil
		}
	}
	return nil, nil
}

func (r *fakeRoomRepo) FindAll(_ context.Context) ([]*entity.Room, error) {
	out := make([]*entity.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		out = append(out, room)
	}
	return out, nil
}

func (r *fakeRoomRepo) Update(_ context.Context, room *entity.Room) error {
	r.rooms[room.ID] = room
	return nil
}

func (r *fakeRoomRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.rooms, id)
	return nil
}

type fakeBookingRepo struct {
	bookings map[uuid.UUID]*entity.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[uuid.UUID]*entity.Booking)}
}

func (r *fakeBookingRepo) Create(_ context.Context, booking *entity.Booking) error {
	r.bookings[booking.ID] = booking
	return nil
}

func (r *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	return r.bookings[id], nil
}

func (r *fakeBookingRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) FindAll(_ context.Context) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range r.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeBookingRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.bookings, id)
	return nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	if b, ok := r.bookings[bookingID]; ok {
		b.Status = status
	}
	return nil
}

func (r *fakeBookingRepo) FindActiveByRoomAndDate(_ context.Context, roomID uuid.UUID, date string) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range r.bookings {
		if b.RoomID == roomID && b.Date == date && active(b.Status) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) FindActiveByDate(_ context.Context, date string) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range r.bookings {
		if b.Date == date && active(b.Status) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) FindActiveByUserBetween(_ context.Context, userID uuid.UUID, fromDate, toDate string) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range r.bookings {
		if b.UserID == userID && b.Date >= fromDate && b.Date <= toDate && active(b.Status) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) CompleteExpired(_ context.Context, currentDate, currentTime string) (int64, error) {
	var count int64
	for _, b := range r.bookings {
		if b.Status != entity.BookingStatusApproved {
			continue
		}
		if b.Date < currentDate || (b.Date == currentDate && b.EndTime <= currentTime) {
			b.Status = entity.BookingStatusCompleted
			count++
		}
	}
	return count, nil
}

func active(status entity.BookingStatus) bool {
	return status == entity.BookingStatusPending || status == entity.BookingStatusApproved
}

func newFakeRepository() *repository.Repository {
	return &repository.Repository{
		User:    newFakeUserRepo(),
		Session: newFakeSessionRepo(),
		Room:    newFakeRoomRepo(),
		Booking: newFakeBookingRepo(),
	}
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
