package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/photocards/internal/interface/http"
	"github.com/oksasatya/photocards/internal/interface/middleware"
	"github.com/oksasatya/photocards/pkg/helpers"
)

type CardModule struct {
	Handler *handlers.CardHandler
	JWT     *helpers.JWTManager
}

func NewCardModule(h *handlers.CardHandler, jwt *helpers.JWTManager) *CardModule {
	return &CardModule{Handler: h, JWT: jwt}
}

func (m *CardModule) Register(rg *gin.RouterGroup) {
	cards := rg.Group("/cards")
	cards.Use(middleware.Auth(m.JWT))
	{
		cards.GET("", handlers.Handle(m.Handler.List))
		cards.POST("", handlers.Handle(m.Handler.Create))
		cards.DELETE("/:cardId", handlers.Handle(m.Handler.Delete))
		cards.PUT("/:cardId/likes", handlers.Handle(m.Handler.Like))
		cards.DELETE("/:cardId/likes", handlers.Handle(m.Handler.Dislike))
	}
}
