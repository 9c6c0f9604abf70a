package authService

import (
	"strings"

	"github.com/Fahmimenjadihengker/YourMoment-sub001/internal/api/auth"
	"github.com/Fahmimenjadihengker/YourMoment-sub001/internal/entity"
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// MakeUserData builds the claims read back by the token middleware.
func MakeUserData(user entity.User) map[string]interface{} {
	return map[string]interface{}{
		"id":       user.ID,
		"email":    user.Email,
		"username": user.Name,
	}
}

func makeUserResponse(user entity.User) auth.UserResponse {
	return auth.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
