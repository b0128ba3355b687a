package response

import (
	"time"

	"room-booking/internal/data/entity"
)

type UserResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	StartupName string          `json:"startupName"`
	Role        entity.UserRole `json:"role"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type AuthResponse struct {
	User      UserResponse `json:"user"`
	Token     string       `json:"token,omitempty"`
	ExpiresAt *time.Time   `json:"expiresAt,omitempty"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:          user.ID.String(),
		Name:        user.Name,
		Email:       user.Email,
		StartupName: user.StartupName,
		Role:        user.Role,
		CreatedAt:   user.CreatedAt,
	}
}
