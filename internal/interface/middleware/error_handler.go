package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/photocards/pkg/apperror"
	"github.com/oksasatya/photocards/pkg/helpers"
	"github.com/oksasatya/photocards/pkg/response"
)

// ErrorHandler renders the last error pushed onto c.Errors. Application
// errors keep their status and message; anything else is logged and
// returned as a bare 500.
func ErrorHandler(logger logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		appErr, ok := apperror.As(err)
		if !ok || appErr.Kind == apperror.KindInternal {
			helpers.LogError(logger, "request failed", err, helpers.RequestFields(c))
			response.Error(c, http.StatusInternalServerError, "internal server error", nil)
			return
		}
		response.Error(c, appErr.Status(), appErr.Message, appErr.Details)
	}
}

// Recovery turns panics into errors for ErrorHandler
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		_ = c.Error(fmt.Errorf("panic: %v", recovered))
		c.Abort()
	})
}
