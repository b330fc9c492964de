package api

import (
	"net/http"

	reqdto "gin-storefront/internal/handler/dto/request"
	resdto "gin-storefront/internal/handler/dto/response"
	"gin-storefront/internal/handler/httperr"
	"gin-storefront/internal/handler/middleware"
	"gin-storefront/internal/pkg/errs"
	"gin-storefront/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	profileCommands commands.ProfileCommands
}

func NewUserHandler(profileCommands commands.ProfileCommands) *UserHandler {
	return &UserHandler{profileCommands: profileCommands}
}

// @Summary Update profile
// @Description Rename the signed-in user
// @Tags user
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.UpdateProfileRequest true "New name"
// @Success 200 {object} resdto.UpdateProfileResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /user/update-profile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.Response{Error: middleware.MsgUnauthorized})
		return
	}

	var req reqdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	updated, err := h.profileCommands.UpdateProfile(c.Request.Context(), identity, req.Name)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrNameRequired):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Name is required")
		case errs.Is(err, commands.ErrNameTooLong):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Name must be at most 100 characters")
		case errs.Is(err, commands.ErrProfileNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found")
		default:
			httperr.AbortInternal(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.NewUpdateProfileResponse(updated))
}
