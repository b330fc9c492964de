package response

import (
	"github.com/google/uuid"

	"gin-storefront/internal/usecase/commands"
)

const MsgProfileUpdated = "Profile updated successfully"

type ProfileUser struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type UpdateProfileResponse struct {
	Message string      `json:"message"`
	User    ProfileUser `json:"user"`
}

func NewUpdateProfileResponse(s *commands.UserSnapshot) UpdateProfileResponse {
	return UpdateProfileResponse{
		Message: MsgProfileUpdated,
		User: ProfileUser{
			ID:    s.ID,
			Name:  s.Name,
			Email: s.Email,
		},
	}
}
