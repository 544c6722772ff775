package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// DataResponse wraps successful payloads as { "data": ... }
type DataResponse[T any] struct {
	Data T `json:"data"`
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
	Details   any    `json:"details,omitempty"`
}

// TokenResponse is returned by /signin
type TokenResponse struct {
	Token string `json:"token"`
}

func Success[T any](ctx *gin.Context, status int, data T) {
	if status == 0 {
		status = http.StatusOK
	}
	ctx.JSON(status, DataResponse[T]{Data: data})
}

func Error(ctx *gin.Context, status int, message string, details any) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	ctx.JSON(status, ErrorResponse{
		Message:   message,
		RequestID: ctx.GetString("request_id"),
		Details:   details,
	})
}
