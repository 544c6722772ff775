package entity

import (
	"slices"
	"time"
)

// Card is a photo post. Owner is fixed at creation; Likes is a set of user ids.
type Card struct {
	ID        string
	Name      string `validate:"required,min=2,max=30"`
	Link      string `validate:"required,urlpattern"`
	Owner     string `validate:"required,objectid"`
	Likes     []string
	CreatedAt time.Time
}

// IsOwnedBy reports whether userID created the card
func (c *Card) IsOwnedBy(userID string) bool {
	return c.Owner == userID
}

// LikedBy reports whether userID is in the likes set
func (c *Card) LikedBy(userID string) bool {
	return slices.Contains(c.Likes, userID)
}
