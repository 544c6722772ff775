package container

import (
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/oksasatya/photocards/config"
	repo "github.com/oksasatya/photocards/internal/domain/repository"
	"github.com/oksasatya/photocards/internal/infrastructure/memory"
	"github.com/oksasatya/photocards/internal/infrastructure/mongodb"
	"github.com/oksasatya/photocards/pkg/helpers"
)

// Container carries the components built at startup. The router reads
// everything it needs from here; there are no package-level singletons.
type Container struct {
	Cfg    *config.Config
	Logger *logrus.Logger
	JWT    *helpers.JWTManager
	Users  repo.UserRepository
	Cards  repo.CardRepository
}

// NewMongo backs the repositories with db
func NewMongo(cfg *config.Config, logger *logrus.Logger, jwt *helpers.JWTManager, db *mongo.Database) *Container {
	return &Container{
		Cfg:    cfg,
		Logger: logger,
		JWT:    jwt,
		Users:  mongodb.NewUserRepository(db),
		Cards:  mongodb.NewCardRepository(db),
	}
}

// NewMemory backs the repositories with an in-process store
func NewMemory(cfg *config.Config, logger *logrus.Logger, jwt *helpers.JWTManager) *Container {
	store := memory.NewStore()
	return &Container{
		Cfg:    cfg,
		Logger: logger,
		JWT:    jwt,
		Users:  store.Users(),
		Cards:  store.Cards(),
	}
}
