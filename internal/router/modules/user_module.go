package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/photocards/internal/interface/http"
	"github.com/oksasatya/photocards/internal/interface/middleware"
	"github.com/oksasatya/photocards/pkg/helpers"
)

// UserModule wires profile routes under /users, all behind Auth.
type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	users.Use(middleware.Auth(m.JWT))
	{
		users.GET("", handlers.Handle(m.Handler.List))
		users.GET("/me", handlers.Handle(m.Handler.Me))
		users.PATCH("/me", handlers.Handle(m.Handler.UpdateProfile))
		users.PATCH("/me/avatar", handlers.Handle(m.Handler.UpdateAvatar))
		users.GET("/:id", handlers.Handle(m.Handler.Get))
	}
}
