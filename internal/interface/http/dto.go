package handlers

import (
	"time"

	"github.com/oksasatya/photocards/internal/domain/entity"
)

type signupRequest struct {
	Name     string `json:"name" binding:"omitempty,min=2,max=30"`
	About    string `json:"about" binding:"omitempty,min=2,max=30"`
	Avatar   string `json:"avatar" binding:"omitempty,urlpattern"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,max=72"`
}

type signinRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type updateProfileRequest struct {
	Name  string `json:"name" binding:"required,min=2,max=30"`
	About string `json:"about" binding:"required,min=2,max=30"`
}

type updateAvatarRequest struct {
	Avatar string `json:"avatar" binding:"required,urlpattern"`
}

type createCardRequest struct {
	Name string `json:"name" binding:"required,min=2,max=30"`
	Link string `json:"link" binding:"required,urlpattern"`
}

type userIDParam struct {
	ID string `uri:"id" binding:"required,objectid"`
}

type cardIDParam struct {
	CardID string `uri:"cardId" binding:"required,objectid"`
}

// UserResponse is the wire shape of a user. Email is present only on
// the caller's own profile.
type UserResponse struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	About  string `json:"about"`
	Avatar string `json:"avatar"`
	Email  string `json:"email,omitempty"`
}

type CardResponse struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Link      string    `json:"link"`
	Owner     string    `json:"owner"`
	Likes     []string  `json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
}

// CardEnvelope is the body of DELETE /cards/:cardId
type CardEnvelope struct {
	Card CardResponse `json:"card"`
}

func toUserResponse(u *entity.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, About: u.About, Avatar: u.Avatar, Email: u.Email}
}

func toUserResponses(users []entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	return out
}

func toCardResponse(c *entity.Card) CardResponse {
	likes := c.Likes
	if likes == nil {
		likes = []string{}
	}
	return CardResponse{ID: c.ID, Name: c.Name, Link: c.Link, Owner: c.Owner, Likes: likes, CreatedAt: c.CreatedAt}
}

func toCardResponses(cards []entity.Card) []CardResponse {
	out := make([]CardResponse, 0, len(cards))
	for i := range cards {
		out = append(out, toCardResponse(&cards[i]))
	}
	return out
}
