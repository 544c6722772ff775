package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/photocards/internal/application"
	"github.com/oksasatya/photocards/internal/container"
	handlers "github.com/oksasatya/photocards/internal/interface/http"
	"github.com/oksasatya/photocards/internal/interface/middleware"
	"github.com/oksasatya/photocards/internal/router/modules"
	"github.com/oksasatya/photocards/pkg/apperror"
	"github.com/oksasatya/photocards/pkg/validation"
)

// Module describes a feature module that can register its routes on a RouterGroup
type Module interface {
	Register(rg *gin.RouterGroup)
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}
	return cfg
}

// NewEngine builds the gin engine with global middleware and every module
// wired from c.
func NewEngine(c *container.Container) *gin.Engine {
	validation.Init()

	users := application.NewUserService(c.Users, c.JWT, c.Cfg.BcryptCost, c.Logger)
	cards := application.NewCardService(c.Cards, c.Logger)

	r := gin.New()
	r.Use(middleware.RequestIDMiddleware(), middleware.RealIP())
	if c.Cfg.HTTPLogEnabled || c.Cfg.Env == "development" {
		r.Use(middleware.RequestLogger(c.Logger))
	}
	r.Use(
		cors.New(corsConfig(c.Cfg.CORSOrigins())),
		middleware.ErrorHandler(c.Logger),
		middleware.Recovery(),
	)
	r.NoRoute(handlers.Handle(func(*gin.Context) error {
		return apperror.NotFound("page not found")
	}))

	reg := NewRegistry(r, "/")
	reg.Add(
		modules.NewAuthModule(handlers.NewAuthHandler(users)),
		modules.NewUserModule(handlers.NewUserHandler(users), c.JWT),
		modules.NewCardModule(handlers.NewCardHandler(cards), c.JWT),
		modules.NewDebugModule(c.Cfg.CrashTestEnabled, c.Cfg.DebugMetricsEnabled),
	)
	reg.RegisterAll()
	return r
}
