package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/photocards/internal/application"
	"github.com/oksasatya/photocards/pkg/response"
)

type AuthHandler struct {
	Service *application.UserService
}

func NewAuthHandler(svc *application.UserService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

// Signup POST /signup
func (h *AuthHandler) Signup(c *gin.Context) error {
	var req signupRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	u, err := h.Service.CreateUser(c.Request.Context(), application.CreateUserInput{
		Name:     req.Name,
		About:    req.About,
		Avatar:   req.Avatar,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	response.Success(c, http.StatusCreated, toUserResponse(u))
	return nil
}

// Signin POST /signin
func (h *AuthHandler) Signin(c *gin.Context) error {
	var req signinRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	token, err := h.Service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	c.JSON(http.StatusOK, response.TokenResponse{Token: token})
	return nil
}
