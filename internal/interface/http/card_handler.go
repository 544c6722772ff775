package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/photocards/internal/application"
	"github.com/oksasatya/photocards/internal/domain/entity"
	"github.com/oksasatya/photocards/pkg/response"
)

type CardHandler struct {
	Service *application.CardService
}

func NewCardHandler(svc *application.CardService) *CardHandler {
	return &CardHandler{Service: svc}
}

// List GET /cards
func (h *CardHandler) List(c *gin.Context) error {
	cards, err := h.Service.ListCards(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, http.StatusOK, toCardResponses(cards))
	return nil
}

// Create POST /cards
func (h *CardHandler) Create(c *gin.Context) error {
	uid, err := currentUserID(c)
	if err != nil {
		return err
	}
	var req createCardRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	card, err := h.Service.CreateCard(c.Request.Context(), uid, req.Name, req.Link)
	if err != nil {
		return err
	}
	response.Success(c, http.StatusCreated, toCardResponse(card))
	return nil
}

// Delete DELETE /cards/:cardId
func (h *CardHandler) Delete(c *gin.Context) error {
	uid, err := currentUserID(c)
	if err != nil {
		return err
	}
	var p cardIDParam
	if err := bindURI(c, &p); err != nil {
		return err
	}
	card, err := h.Service.DeleteCard(c.Request.Context(), p.CardID, uid)
	if err != nil {
		return err
	}
	c.JSON(http.StatusOK, CardEnvelope{Card: toCardResponse(card)})
	return nil
}

// Like PUT /cards/:cardId/likes
func (h *CardHandler) Like(c *gin.Context) error {
	return h.toggleLike(c, h.Service.LikeCard)
}

// Dislike DELETE /cards/:cardId/likes
func (h *CardHandler) Dislike(c *gin.Context) error {
	return h.toggleLike(c, h.Service.DislikeCard)
}

func (h *CardHandler) toggleLike(c *gin.Context, op func(ctx context.Context, cardID, userID string) (*entity.Card, error)) error {
	uid, err := currentUserID(c)
	if err != nil {
		return err
	}
	var p cardIDParam
	if err := bindURI(c, &p); err != nil {
		return err
	}
	card, err := op(c.Request.Context(), p.CardID, uid)
	if err != nil {
		return err
	}
	response.Success(c, http.StatusOK, toCardResponse(card))
	return nil
}
