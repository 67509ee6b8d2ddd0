package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/yungbote/contacts-backend/internal/pkg/ctxutil"
)

const (
	HeaderTraceID   = "X-Trace-Id"
	HeaderRequestID = "X-Request-Id"

	maxRequestIDLen = 128
)

// AttachRequestIDs puts a request id and trace id on the request context and
// echoes both as response headers. A caller-supplied X-Request-Id is kept when
// it is short and made of [A-Za-z0-9._-]; otherwise a fresh one is issued.
// The trace id follows the active span when otelgin has started one.
func AttachRequestIDs() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		ids := ctxutil.RequestIDs{
			RequestID: clientRequestID(c.GetHeader(HeaderRequestID)),
		}
		if ids.RequestID == "" {
			ids.RequestID = uuid.NewString()
		}
		if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
			ids.TraceID = sc.TraceID().String()
		} else if tid := clientRequestID(c.GetHeader(HeaderTraceID)); tid != "" {
			ids.TraceID = tid
		} else {
			ids.TraceID = ids.RequestID
		}

		c.Request = c.Request.WithContext(ctxutil.WithRequestIDs(ctx, ids))
		c.Header(HeaderRequestID, ids.RequestID)
		c.Header(HeaderTraceID, ids.TraceID)
		c.Next()
	}
}

func clientRequestID(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || len(raw) > maxRequestIDLen {
		return ""
	}
	for _, r := range raw {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.':
		default:
			return ""
		}
	}
	return raw
}
