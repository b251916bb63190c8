package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wanderstay/travel-api/internal/core/ports"
)

type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type updateUsernameRequest struct {
	Username string `json:"username" validate:"required,min=1,max=64"`
}

type updateAvatarRequest struct {
	AvatarURL string `json:"avatar_url" validate:"required,url"`
}

// Profile returns the caller's own account.
//
// @Summary      Get my profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  map[string]string
// @Router       /users/me [get]
func (h *UserHandler) Profile(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.service.Profile(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateUsername changes the caller's display name.
//
// @Summary      Update my username
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateUsernameRequest  true  "New username"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Router       /users/me/name [put]
func (h *UserHandler) UpdateUsername(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateUsernameRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	user, err := h.service.UpdateUsername(c.Request().Context(), userID, req.Username)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateAvatar changes the caller's avatar image.
//
// @Summary      Update my avatar
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateAvatarRequest  true  "New avatar URL"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Router       /users/me/avatar [put]
func (h *UserHandler) UpdateAvatar(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateAvatarRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	user, err := h.service.UpdateAvatar(c.Request().Context(), userID, req.AvatarURL)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}
