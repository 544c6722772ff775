package middleware

import (
	"expvar"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/photocards/pkg/helpers"
)

var requestsByStatus = expvar.NewMap("http_requests_by_status")

// RequestLogger logs one line per request and counts responses by status.
func RequestLogger(logger logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		requestsByStatus.Add(strconv.Itoa(status), 1)

		entry := logger.WithFields(helpers.RequestFields(c)).WithFields(logrus.Fields{
			"status":     status,
			"latency_ms": time.Since(start).Milliseconds(),
		})
		if status >= 500 {
			entry.Error("request")
			return
		}
		entry.Info("request")
	}
}
