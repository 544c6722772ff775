package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/photocards/pkg/apperror"
	"github.com/oksasatya/photocards/pkg/helpers"
)

// CtxUserIDKey holds the authenticated user id in the Gin context
const CtxUserIDKey = helpers.CtxUserIDKey

const msgAuthRequired = "authorization required"

// Auth validates the bearer token in the Authorization header and stores the
// user id under CtxUserIDKey. A missing header, a non-Bearer scheme and a
// bad token all fail with the same 401.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			_ = c.Error(apperror.Unauthorized(msgAuthRequired))
			c.Abort()
			return
		}
		claims, err := jwt.VerifyToken(token)
		if err != nil {
			_ = c.Error(apperror.Unauthorized(msgAuthRequired).Wrap(err))
			c.Abort()
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}
