package helpers

import (
	"io"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Log field keys. request_id and real_ip double as the Gin context keys
// the middleware stores them under.
const (
	FieldRequestID = "request_id"
	FieldRealIP    = "real_ip"
	FieldUserID    = "user_id"
	FieldCardID    = "card_id"
)

// CtxUserIDKey is the Gin context key holding the authenticated user id
const CtxUserIDKey = "userID"

// NewLogger creates the process logger: text for development, JSON elsewhere.
func NewLogger(appName, env string) *logrus.Logger {
	return newLogger(os.Stdout, appName, env)
}

func newLogger(w io.Writer, appName, env string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	if strings.EqualFold(env, "development") {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetLevel(logrus.InfoLevel)
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	logger.WithFields(logrus.Fields{"app": appName, "env": env}).Info("logger initialized")
	return logger
}

// RequestFields collects the per-request fields every HTTP log line carries.
// user_id is present only after Auth has run.
func RequestFields(c *gin.Context) logrus.Fields {
	fields := logrus.Fields{
		"method":       c.Request.Method,
		"path":         c.Request.URL.Path,
		FieldRequestID: c.GetString(FieldRequestID),
		FieldRealIP:    c.GetString(FieldRealIP),
	}
	if uid := c.GetString(CtxUserIDKey); uid != "" {
		fields[FieldUserID] = uid
	}
	return fields
}

// UserFields tags a log line with the acting user and, optionally, a card
func UserFields(userID, cardID string) logrus.Fields {
	fields := logrus.Fields{FieldUserID: userID}
	if cardID != "" {
		fields[FieldCardID] = cardID
	}
	return fields
}

func LogError(logger logrus.FieldLogger, msg string, err error, fields logrus.Fields) {
	entry := logger.WithFields(fields)
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Error(msg)
}

func LogInfo(logger logrus.FieldLogger, msg string, fields logrus.Fields) {
	logger.WithFields(fields).Info(msg)
}
