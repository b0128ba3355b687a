package usecase

import "errors"

var (
	// ErrNotFound is returned when a referenced user, room, or booking does
	// not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden is returned when the acting user may not perform the
	// operation.
	ErrForbidden = errors.New("forbidden")
	// ErrEmailTaken is returned when registering with an email that already
	// has an account.
	ErrEmailTaken = errors.New("email already registered")
	// ErrRoomNameTaken is returned when creating a room with a name that is
	// already in use.
	ErrRoomNameTaken = errors.New("room name already in use")
	// ErrInvalidCredentials is returned on login with a wrong email or
	// password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidStatus is returned when an admin decision is neither
	// approved nor rejected.
	ErrInvalidStatus = errors.New("status must be approved or rejected")
)
