package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/photocards/internal/application"
	"github.com/oksasatya/photocards/pkg/response"
)

type UserHandler struct {
	Service *application.UserService
}

func NewUserHandler(svc *application.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

// List GET /users
func (h *UserHandler) List(c *gin.Context) error {
	users, err := h.Service.ListUsers(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, http.StatusOK, toUserResponses(users))
	return nil
}

// Get GET /users/:id
func (h *UserHandler) Get(c *gin.Context) error {
	var p userIDParam
	if err := bindURI(c, &p); err != nil {
		return err
	}
	u, err := h.Service.GetUser(c.Request.Context(), p.ID)
	if err != nil {
		return err
	}
	response.Success(c, http.StatusOK, toUserResponse(u))
	return nil
}

// Me GET /users/me
func (h *UserHandler) Me(c *gin.Context) error {
	uid, err := currentUserID(c)
	if err != nil {
		return err
	}
	u, err := h.Service.GetSelf(c.Request.Context(), uid)
	if err != nil {
		return err
	}
	response.Success(c, http.StatusOK, toUserResponse(u))
	return nil
}

// UpdateProfile PATCH /users/me
func (h *UserHandler) UpdateProfile(c *gin.Context) error {
	uid, err := currentUserID(c)
	if err != nil {
		return err
	}
	var req updateProfileRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	u, err := h.Service.UpdateProfile(c.Request.Context(), uid, req.Name, req.About)
	if err != nil {
		return err
	}
	response.Success(c, http.StatusOK, toUserResponse(u))
	return nil
}

// UpdateAvatar PATCH /users/me/avatar
func (h *UserHandler) UpdateAvatar(c *gin.Context) error {
	uid, err := currentUserID(c)
	if err != nil {
		return err
	}
	var req updateAvatarRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	u, err := h.Service.UpdateAvatar(c.Request.Context(), uid, req.Avatar)
	if err != nil {
		return err
	}
	response.Success(c, http.StatusOK, toUserResponse(u))
	return nil
}
