package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/photocards/internal/domain/entity"
	repo "github.com/oksasatya/photocards/internal/domain/repository"
	"github.com/oksasatya/photocards/pkg/apperror"
	"github.com/oksasatya/photocards/pkg/helpers"
	"github.com/oksasatya/photocards/pkg/validation"
)

const (
	msgInvalidCardData = "invalid data passed when creating a card"
	msgCardNotFound    = "card with the given id not found"
	msgForeignCard     = "cannot delete another user's card"
)

type CardService struct {
	Repo   repo.CardRepository
	Logger logrus.FieldLogger
}

func NewCardService(repo repo.CardRepository, logger logrus.FieldLogger) *CardService {
	return &CardService{Repo: repo, Logger: logger}
}

func cardError(err error) error {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		return apperror.NotFound(msgCardNotFound)
	case errors.Is(err, repo.ErrInvalidID):
		return apperror.BadRequest(msgInvalidID, nil)
	default:
		return apperror.Internal(err)
	}
}

func (s *CardService) CreateCard(ctx context.Context, owner, name, link string) (*entity.Card, error) {
	c := &entity.Card{Name: name, Link: link, Owner: owner}
	if err := validation.Struct(c); err != nil {
		return nil, apperror.BadRequest(msgInvalidCardData, validation.ToDetails(err))
	}
	if err := s.Repo.Create(ctx, c); err != nil {
		if errors.Is(err, repo.ErrInvalidDocument) || errors.Is(err, repo.ErrInvalidID) {
			return nil, apperror.BadRequest(msgInvalidCardData, nil)
		}
		return nil, apperror.Internal(err)
	}
	return c, nil
}

func (s *CardService) ListCards(ctx context.Context) ([]entity.Card, error) {
	cards, err := s.Repo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return cards, nil
}

// DeleteCard removes cardID when requester owns it and returns the removed card.
func (s *CardService) DeleteCard(ctx context.Context, cardID, requester string) (*entity.Card, error) {
	c, err := s.Repo.GetByID(ctx, cardID)
	if err != nil {
		return nil, cardError(err)
	}
	if !c.IsOwnedBy(requester) {
		return nil, apperror.Forbidden(msgForeignCard)
	}
	// the owner filter keeps the delete safe if the card vanished in between
	removed, err := s.Repo.DeleteOwned(ctx, cardID, requester)
	if err != nil {
		return nil, cardError(err)
	}
	if s.Logger != nil {
		helpers.LogInfo(s.Logger, "card deleted", helpers.UserFields(requester, cardID))
	}
	return removed, nil
}

func (s *CardService) LikeCard(ctx context.Context, cardID, userID string) (*entity.Card, error) {
	c, err := s.Repo.AddLike(ctx, cardID, userID)
	if err != nil {
		return nil, cardError(err)
	}
	return c, nil
}

func (s *CardService) DislikeCard(ctx context.Context, cardID, userID string) (*entity.Card, error) {
	c, err := s.Repo.RemoveLike(ctx, cardID, userID)
	if err != nil {
		return nil, cardError(err)
	}
	return c, nil
}
