package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/contacts-backend/internal/http/response"
	"github.com/yungbote/contacts-backend/internal/pkg/ctxutil"
	"github.com/yungbote/contacts-backend/internal/pkg/logger"
)

// RequestLogger writes one access line per request carrying the request ids
// and, for failed contact/group calls, the error code the handler answered
// with. 5xx lines log at error level, 4xx and duplicate notices at warn.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	if log == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		status := c.Writer.Status()
		kv := append(ctxutil.LogFields(c.Request.Context()),
			"method", c.Request.Method,
			"route", route,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		if id := c.Param("contactId"); id != "" {
			kv = append(kv, "contact_id", id)
		}
		if id := c.Param("groupId"); id != "" {
			kv = append(kv, "group_id", id)
		}
		code := c.GetString(response.ErrorCodeKey)
		if code != "" {
			kv = append(kv, "error_code", code)
		}

		switch {
		case status >= 500:
			log.Error("HTTP request", kv...)
		case status >= 400 || code != "":
			log.Warn("HTTP request", kv...)
		default:
			log.Info("HTTP request", kv...)
		}
	}
}
