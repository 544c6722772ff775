package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/photocards/internal/interface/http"
)

// AuthModule serves the public signup and signin routes
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.POST("/signup", handlers.Handle(m.Handler.Signup))
	rg.POST("/signin", handlers.Handle(m.Handler.Signin))
}
