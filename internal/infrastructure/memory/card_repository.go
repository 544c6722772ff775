package memory

import (
	"context"
	"slices"
	"time"

	"github.com/oksasatya/photocards/internal/domain/entity"
	"github.com/oksasatya/photocards/internal/domain/repository"
	"github.com/oksasatya/photocards/pkg/validation"
)

type cardRecord struct {
	card entity.Card
}

type CardRepository struct {
	s *Store
}

func cloneCard(c entity.Card) *entity.Card {
	c.Likes = slices.Clone(c.Likes)
	if c.Likes == nil {
		c.Likes = []string{}
	}
	return &c
}

func (r *CardRepository) Create(_ context.Context, c *entity.Card) error {
	if err := validation.Struct(c); err != nil {
		return repository.ErrInvalidDocument
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c.ID = newID()
	c.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	if c.Likes == nil {
		c.Likes = []string{}
	}
	r.s.cards[c.ID] = cardRecord{card: *cloneCard(*c)}
	r.s.order = append(r.s.order, c.ID)
	return nil
}

func (r *CardRepository) GetByID(_ context.Context, id string) (*entity.Card, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rec, ok := r.s.cards[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneCard(rec.card), nil
}

func (r *CardRepository) List(_ context.Context) ([]entity.Card, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entity.Card, 0, len(r.s.order))
	for _, id := range r.s.order {
		out = append(out, *cloneCard(r.s.cards[id].card))
	}
	return out, nil
}

func (r *CardRepository) DeleteOwned(_ context.Context, id, owner string) (*entity.Card, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rec, ok := r.s.cards[id]
	if !ok || rec.card.Owner != owner {
		return nil, repository.ErrNotFound
	}
	delete(r.s.cards, id)
	r.s.order = slices.DeleteFunc(r.s.order, func(v string) bool { return v == id })
	return cloneCard(rec.card), nil
}

func (r *CardRepository) updateLikes(id, userID string, mutate func(c *entity.Card)) (*entity.Card, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	if err := checkID(userID); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rec, ok := r.s.cards[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	mutate(&rec.card)
	r.s.cards[id] = rec
	return cloneCard(rec.card), nil
}

func (r *CardRepository) AddLike(_ context.Context, id, userID string) (*entity.Card, error) {
	return r.updateLikes(id, userID, func(c *entity.Card) {
		if !c.LikedBy(userID) {
			c.Likes = append(c.Likes, userID)
		}
	})
}

func (r *CardRepository) RemoveLike(_ context.Context, id, userID string) (*entity.Card, error) {
	return r.updateLikes(id, userID, func(c *entity.Card) {
		c.Likes = slices.DeleteFunc(c.Likes, func(v string) bool { return v == userID })
	})
}

var _ repository.CardRepository = (*CardRepository)(nil)
