package repository

import (
	"context"

	"github.com/oksasatya/photocards/internal/domain/entity"
)

// CardRepository stores cards. AddLike and RemoveLike must be atomic per card.
type CardRepository interface {
	Create(ctx context.Context, c *entity.Card) error
	GetByID(ctx context.Context, id string) (*entity.Card, error)
	List(ctx context.Context) ([]entity.Card, error)
	// DeleteOwned removes the card only when owner matches and returns the removed document.
	DeleteOwned(ctx context.Context, id, owner string) (*entity.Card, error)
	AddLike(ctx context.Context, id, userID string) (*entity.Card, error)
	RemoveLike(ctx context.Context, id, userID string) (*entity.Card, error)
}
