package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/photocards/internal/interface/middleware"
	"github.com/oksasatya/photocards/pkg/apperror"
	"github.com/oksasatya/photocards/pkg/validation"
)

const msgValidationFailed = "validation failed"

// Handle adapts an error-returning handler to gin. Errors are pushed onto
// c.Errors and rendered by the error handler middleware.
func Handle(fn func(c *gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := fn(c); err != nil {
			_ = c.Error(err)
			c.Abort()
		}
	}
}

func bindError(err error) error {
	return apperror.BadRequest(msgValidationFailed, validation.ToDetails(err))
}

func bindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return bindError(err)
	}
	return nil
}

func bindURI(c *gin.Context, dst any) error {
	if err := c.ShouldBindUri(dst); err != nil {
		return bindError(err)
	}
	return nil
}

func currentUserID(c *gin.Context) (string, error) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if uid == "" {
		return "", apperror.Unauthorized("authorization required")
	}
	return uid, nil
}
