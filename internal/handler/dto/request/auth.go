package request

import (
	"gin-storefront/internal/domain/user"
)

// LoginRequest is the POST /api/auth/login body. Binding rejects malformed
// input before the domain constructors see it.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"alice@example.com"`
	Password string `json:"password" binding:"required,min=8" example:"password123"`
}

func (r LoginRequest) Credentials() (user.Credentials, error) {
	return user.NewCredentials(r.Email, r.Password)
}
