package dto

import (
	"github.com/VamsiKrishnaThota03/imf-gadget-api/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
}

// AuthResponse represents the register/login payload
type AuthResponse struct {
	User  UserDTO `json:"user"`
	Token string  `json:"token"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:       user.ID,
		Username: user.Username,
	}
}

// ToAuthResponse builds the register/login payload
func ToAuthResponse(user models.User, token string) AuthResponse {
	return AuthResponse{
		User:  ToUserDTO(user),
		Token: token,
	}
}
